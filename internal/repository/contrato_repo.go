package repository

import (
	"context"

	"github.com/Kevin2407/gestion-proveedores/internal/model"

	"gorm.io/gorm"
)

type ContratoRepository interface {
	Create(ctx context.Context, c *model.Contrato) error
	FindByID(ctx context.Context, id int) (*model.Contrato, error)
	List(ctx context.Context) ([]model.Contrato, error)
	ListByProveedor(ctx context.Context, proveedorID int) ([]model.Contrato, error)
	Update(ctx context.Context, c *model.Contrato) (int64, error)
	Delete(ctx context.Context, id int) (int64, error)
}

type contratoRepo struct{ db *gorm.DB }

func NewContratoRepository(db *gorm.DB) ContratoRepository { return &contratoRepo{db: db} }

func (r *contratoRepo) Create(ctx context.Context, c *model.Contrato) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *contratoRepo) FindByID(ctx context.Context, id int) (*model.Contrato, error) {
	var c model.Contrato
	err := r.db.WithContext(ctx).Preload("Proveedor.Persona").First(&c, "id_contrato = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *contratoRepo) List(ctx context.Context) ([]model.Contrato, error) {
	var contratos []model.Contrato
	err := r.db.WithContext(ctx).
		Preload("Proveedor.Persona").
		Order("fecha_inicio DESC").
		Find(&contratos).Error
	return contratos, err
}

func (r *contratoRepo) ListByProveedor(ctx context.Context, proveedorID int) ([]model.Contrato, error) {
	var contratos []model.Contrato
	err := r.db.WithContext(ctx).
		Preload("Proveedor.Persona").
		Where("id_proveedor = ?", proveedorID).
		Order("fecha_inicio DESC").
		Find(&contratos).Error
	return contratos, err
}

func (r *contratoRepo) Update(ctx context.Context, c *model.Contrato) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Contrato{}).
		Where("id_contrato = ?", c.ID).
		Select("nombre_contrato", "fecha_inicio", "fecha_vencimiento", "monto_anual", "ruta_archivo", "id_proveedor").
		Updates(c)
	return res.RowsAffected, res.Error
}

func (r *contratoRepo) Delete(ctx context.Context, id int) (int64, error) {
	res := r.db.WithContext(ctx).Where("id_contrato = ?", id).Delete(&model.Contrato{})
	return res.RowsAffected, res.Error
}
