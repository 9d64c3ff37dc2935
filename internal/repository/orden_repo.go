package repository

import (
	"context"

	"github.com/Kevin2407/gestion-proveedores/internal/model"

	"gorm.io/gorm"
)

// OrdenRepository exposes the order header and detalle statements individually
// so the service layer can sequence them inside one transaction.
type OrdenRepository interface {
	DB() *gorm.DB // exposes the DB for transaction creation in service layer
	CreateHeader(ctx context.Context, tx *gorm.DB, o *model.OrdenDeCompra) error
	UpdateHeader(ctx context.Context, tx *gorm.DB, o *model.OrdenDeCompra) (int64, error)
	DeleteHeader(ctx context.Context, tx *gorm.DB, ordenID int) (int64, error)
	CreateDetalles(ctx context.Context, tx *gorm.DB, detalles []model.DetalleOC) error
	DeleteDetalles(ctx context.Context, tx *gorm.DB, ordenID int) error
	FindByID(ctx context.Context, id int) (*model.OrdenDeCompra, error)
	List(ctx context.Context) ([]model.OrdenDeCompra, error)
}

type ordenRepo struct{ db *gorm.DB }

func NewOrdenRepository(db *gorm.DB) OrdenRepository { return &ordenRepo{db: db} }

func (r *ordenRepo) DB() *gorm.DB { return r.db }

func (r *ordenRepo) CreateHeader(ctx context.Context, tx *gorm.DB, o *model.OrdenDeCompra) error {
	return tx.WithContext(ctx).Create(o).Error
}

// UpdateHeader replaces every header field by id and reports rows affected.
// Select forces fecha_entrega to be written even when nil.
func (r *ordenRepo) UpdateHeader(ctx context.Context, tx *gorm.DB, o *model.OrdenDeCompra) (int64, error) {
	res := tx.WithContext(ctx).Model(&model.OrdenDeCompra{}).
		Where("id_orden = ?", o.ID).
		Select("fecha_pedido", "fecha_entrega", "monto_total", "estado", "id_proveedor").
		Updates(o)
	return res.RowsAffected, res.Error
}

func (r *ordenRepo) DeleteHeader(ctx context.Context, tx *gorm.DB, ordenID int) (int64, error) {
	res := tx.WithContext(ctx).Where("id_orden = ?", ordenID).Delete(&model.OrdenDeCompra{})
	return res.RowsAffected, res.Error
}

func (r *ordenRepo) CreateDetalles(ctx context.Context, tx *gorm.DB, detalles []model.DetalleOC) error {
	return tx.WithContext(ctx).Create(&detalles).Error
}

func (r *ordenRepo) DeleteDetalles(ctx context.Context, tx *gorm.DB, ordenID int) error {
	return tx.WithContext(ctx).Where("id_orden = ?", ordenID).Delete(&model.DetalleOC{}).Error
}

func (r *ordenRepo) FindByID(ctx context.Context, id int) (*model.OrdenDeCompra, error) {
	var o model.OrdenDeCompra
	err := r.db.WithContext(ctx).
		Preload("Detalles", func(db *gorm.DB) *gorm.DB { return db.Order("id_detalle ASC") }).
		Preload("Detalles.Producto").
		Preload("Proveedor.Persona").
		First(&o, "id_orden = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// List returns every order newest first, detalles nested in id order.
func (r *ordenRepo) List(ctx context.Context) ([]model.OrdenDeCompra, error) {
	var ordenes []model.OrdenDeCompra
	err := r.db.WithContext(ctx).
		Preload("Detalles", func(db *gorm.DB) *gorm.DB { return db.Order("id_detalle ASC") }).
		Preload("Detalles.Producto").
		Preload("Proveedor.Persona").
		Order("fecha_pedido DESC, id_orden DESC").
		Find(&ordenes).Error
	return ordenes, err
}
