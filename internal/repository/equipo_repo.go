package repository

import (
	"context"

	"github.com/Kevin2407/gestion-proveedores/internal/model"

	"gorm.io/gorm"
)

// ── Tipo de equipo ───────────────────────────────────────────────────────────

type TipoEquipoRepository interface {
	Create(ctx context.Context, t *model.TipoEquipo) error
	FindByID(ctx context.Context, id int) (*model.TipoEquipo, error)
	List(ctx context.Context) ([]model.TipoEquipo, error)
	Update(ctx context.Context, t *model.TipoEquipo) (int64, error)
	Delete(ctx context.Context, id int) (int64, error)
}

type tipoEquipoRepo struct{ db *gorm.DB }

func NewTipoEquipoRepository(db *gorm.DB) TipoEquipoRepository { return &tipoEquipoRepo{db: db} }

func (r *tipoEquipoRepo) Create(ctx context.Context, t *model.TipoEquipo) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *tipoEquipoRepo) FindByID(ctx context.Context, id int) (*model.TipoEquipo, error) {
	var t model.TipoEquipo
	err := r.db.WithContext(ctx).First(&t, "id_tipoequipo = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *tipoEquipoRepo) List(ctx context.Context) ([]model.TipoEquipo, error) {
	var tipos []model.TipoEquipo
	err := r.db.WithContext(ctx).Order("nombre_categoria ASC").Find(&tipos).Error
	return tipos, err
}

func (r *tipoEquipoRepo) Update(ctx context.Context, t *model.TipoEquipo) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.TipoEquipo{}).
		Where("id_tipoequipo = ?", t.ID).
		Select("nombre_categoria", "descripcion").
		Updates(t)
	return res.RowsAffected, res.Error
}

func (r *tipoEquipoRepo) Delete(ctx context.Context, id int) (int64, error) {
	res := r.db.WithContext(ctx).Where("id_tipoequipo = ?", id).Delete(&model.TipoEquipo{})
	return res.RowsAffected, res.Error
}

// ── Equipo adquirido ─────────────────────────────────────────────────────────

type EquipoRepository interface {
	Create(ctx context.Context, e *model.EquipoAdquirido) error
	FindByID(ctx context.Context, id int) (*model.EquipoAdquirido, error)
	List(ctx context.Context) ([]model.EquipoAdquirido, error)
	Update(ctx context.Context, e *model.EquipoAdquirido) (int64, error)
	Delete(ctx context.Context, id int) (int64, error)
}

type equipoRepo struct{ db *gorm.DB }

func NewEquipoRepository(db *gorm.DB) EquipoRepository { return &equipoRepo{db: db} }

func (r *equipoRepo) Create(ctx context.Context, e *model.EquipoAdquirido) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *equipoRepo) FindByID(ctx context.Context, id int) (*model.EquipoAdquirido, error) {
	var e model.EquipoAdquirido
	err := r.db.WithContext(ctx).Preload("TipoEquipo").First(&e, "id_equipo = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *equipoRepo) List(ctx context.Context) ([]model.EquipoAdquirido, error) {
	var equipos []model.EquipoAdquirido
	err := r.db.WithContext(ctx).
		Preload("TipoEquipo").
		Order("modelo ASC").
		Find(&equipos).Error
	return equipos, err
}

func (r *equipoRepo) Update(ctx context.Context, e *model.EquipoAdquirido) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.EquipoAdquirido{}).
		Where("id_equipo = ?", e.ID).
		Select("modelo", "numero_serie", "fecha_vencimiento_garantia", "estado", "id_detalle", "id_tipoequipo").
		Updates(e)
	return res.RowsAffected, res.Error
}

func (r *equipoRepo) Delete(ctx context.Context, id int) (int64, error) {
	res := r.db.WithContext(ctx).Where("id_equipo = ?", id).Delete(&model.EquipoAdquirido{})
	return res.RowsAffected, res.Error
}
