package repository

import (
	"context"

	"github.com/Kevin2407/gestion-proveedores/internal/model"

	"gorm.io/gorm"
)

type CalificacionRepository interface {
	Create(ctx context.Context, c *model.Calificacion) error
	FindByID(ctx context.Context, id int) (*model.Calificacion, error)
	List(ctx context.Context) ([]model.Calificacion, error)
	Update(ctx context.Context, c *model.Calificacion) (int64, error)
	Delete(ctx context.Context, id int) (int64, error)
}

type calificacionRepo struct{ db *gorm.DB }

func NewCalificacionRepository(db *gorm.DB) CalificacionRepository {
	return &calificacionRepo{db: db}
}

func (r *calificacionRepo) Create(ctx context.Context, c *model.Calificacion) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *calificacionRepo) FindByID(ctx context.Context, id int) (*model.Calificacion, error) {
	var c model.Calificacion
	err := r.db.WithContext(ctx).Preload("Proveedor.Persona").First(&c, "id_calificacion = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *calificacionRepo) List(ctx context.Context) ([]model.Calificacion, error) {
	var calificaciones []model.Calificacion
	err := r.db.WithContext(ctx).
		Preload("Proveedor.Persona").
		Order("fecha_evaluacion DESC, id_calificacion DESC").
		Find(&calificaciones).Error
	return calificaciones, err
}

func (r *calificacionRepo) Update(ctx context.Context, c *model.Calificacion) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Calificacion{}).
		Where("id_calificacion = ?", c.ID).
		Select("puntaje", "comentarios", "fecha_evaluacion", "id_proveedor").
		Updates(c)
	return res.RowsAffected, res.Error
}

func (r *calificacionRepo) Delete(ctx context.Context, id int) (int64, error) {
	res := r.db.WithContext(ctx).Where("id_calificacion = ?", id).Delete(&model.Calificacion{})
	return res.RowsAffected, res.Error
}
