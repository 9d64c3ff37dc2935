package repository

import (
	"context"

	"github.com/Kevin2407/gestion-proveedores/internal/model"

	"gorm.io/gorm"
)

// ProveedorRepository covers the supplier row, its Persona/Direccion satellites
// and every per-table step of the cascade delete. The service owns the step
// ordering; reordering the deletes here would break foreign keys.
type ProveedorRepository interface {
	DB() *gorm.DB
	CreatePersona(ctx context.Context, tx *gorm.DB, p *model.Persona) error
	CreateDireccion(ctx context.Context, tx *gorm.DB, d *model.Direccion) error
	Create(ctx context.Context, tx *gorm.DB, p *model.Proveedor) error
	UpdatePersona(ctx context.Context, tx *gorm.DB, p *model.Persona) error
	ReplaceDireccion(ctx context.Context, tx *gorm.DB, personaID int, d *model.Direccion) error
	Update(ctx context.Context, tx *gorm.DB, p *model.Proveedor) (int64, error)
	FindByID(ctx context.Context, id int) (*model.Proveedor, error)
	List(ctx context.Context) ([]model.Proveedor, error)

	DeleteDetallesByProveedor(ctx context.Context, tx *gorm.DB, proveedorID int) error
	DeleteOrdenesByProveedor(ctx context.Context, tx *gorm.DB, proveedorID int) error
	DeleteCalificacionesByProveedor(ctx context.Context, tx *gorm.DB, proveedorID int) error
	DeleteDireccionByPersona(ctx context.Context, tx *gorm.DB, personaID int) error
	Delete(ctx context.Context, tx *gorm.DB, proveedorID int) (int64, error)
	DeletePersona(ctx context.Context, tx *gorm.DB, personaID int) error
}

type proveedorRepo struct{ db *gorm.DB }

func NewProveedorRepository(db *gorm.DB) ProveedorRepository { return &proveedorRepo{db: db} }

func (r *proveedorRepo) DB() *gorm.DB { return r.db }

func (r *proveedorRepo) CreatePersona(ctx context.Context, tx *gorm.DB, p *model.Persona) error {
	return tx.WithContext(ctx).Create(p).Error
}

func (r *proveedorRepo) CreateDireccion(ctx context.Context, tx *gorm.DB, d *model.Direccion) error {
	return tx.WithContext(ctx).Create(d).Error
}

func (r *proveedorRepo) Create(ctx context.Context, tx *gorm.DB, p *model.Proveedor) error {
	return tx.WithContext(ctx).Create(p).Error
}

func (r *proveedorRepo) UpdatePersona(ctx context.Context, tx *gorm.DB, p *model.Persona) error {
	return tx.WithContext(ctx).Model(&model.Persona{}).
		Where("id_persona = ?", p.ID).
		Select("nombre", "correo", "telefono").
		Updates(p).Error
}

// ReplaceDireccion drops whatever address the persona has and writes the new
// one (nil d just drops it). Full replace keeps the 0..1 invariant trivial.
func (r *proveedorRepo) ReplaceDireccion(ctx context.Context, tx *gorm.DB, personaID int, d *model.Direccion) error {
	if err := tx.WithContext(ctx).Where("id_persona = ?", personaID).Delete(&model.Direccion{}).Error; err != nil {
		return err
	}
	if d == nil {
		return nil
	}
	d.PersonaID = personaID
	return tx.WithContext(ctx).Create(d).Error
}

func (r *proveedorRepo) Update(ctx context.Context, tx *gorm.DB, p *model.Proveedor) (int64, error) {
	res := tx.WithContext(ctx).Model(&model.Proveedor{}).
		Where("id_proveedor = ?", p.ID).
		Select("cuit", "fecha_alta").
		Updates(p)
	return res.RowsAffected, res.Error
}

func (r *proveedorRepo) FindByID(ctx context.Context, id int) (*model.Proveedor, error) {
	var p model.Proveedor
	err := r.db.WithContext(ctx).
		Preload("Persona.Direccion").
		First(&p, "id_proveedor = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *proveedorRepo) List(ctx context.Context) ([]model.Proveedor, error) {
	var proveedores []model.Proveedor
	err := r.db.WithContext(ctx).
		Joins("Persona").
		Preload("Persona.Direccion").
		Order(`"Persona".nombre ASC`).
		Find(&proveedores).Error
	return proveedores, err
}

// ── Cascade steps (children before parents) ──────────────────────────────────

func (r *proveedorRepo) DeleteDetallesByProveedor(ctx context.Context, tx *gorm.DB, proveedorID int) error {
	sub := tx.Model(&model.OrdenDeCompra{}).Select("id_orden").Where("id_proveedor = ?", proveedorID)
	return tx.WithContext(ctx).Where("id_orden IN (?)", sub).Delete(&model.DetalleOC{}).Error
}

func (r *proveedorRepo) DeleteOrdenesByProveedor(ctx context.Context, tx *gorm.DB, proveedorID int) error {
	return tx.WithContext(ctx).Where("id_proveedor = ?", proveedorID).Delete(&model.OrdenDeCompra{}).Error
}

func (r *proveedorRepo) DeleteCalificacionesByProveedor(ctx context.Context, tx *gorm.DB, proveedorID int) error {
	return tx.WithContext(ctx).Where("id_proveedor = ?", proveedorID).Delete(&model.Calificacion{}).Error
}

func (r *proveedorRepo) DeleteDireccionByPersona(ctx context.Context, tx *gorm.DB, personaID int) error {
	return tx.WithContext(ctx).Where("id_persona = ?", personaID).Delete(&model.Direccion{}).Error
}

func (r *proveedorRepo) Delete(ctx context.Context, tx *gorm.DB, proveedorID int) (int64, error) {
	res := tx.WithContext(ctx).Where("id_proveedor = ?", proveedorID).Delete(&model.Proveedor{})
	return res.RowsAffected, res.Error
}

func (r *proveedorRepo) DeletePersona(ctx context.Context, tx *gorm.DB, personaID int) error {
	return tx.WithContext(ctx).Where("id_persona = ?", personaID).Delete(&model.Persona{}).Error
}
