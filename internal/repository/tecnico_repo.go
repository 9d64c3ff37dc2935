package repository

import (
	"context"

	"github.com/Kevin2407/gestion-proveedores/internal/model"

	"gorm.io/gorm"
)

// TecnicoRepository handles the technician, its Persona row and the
// Tecnico_Especialidad association set (full-replace on update).
type TecnicoRepository interface {
	DB() *gorm.DB
	CreatePersona(ctx context.Context, tx *gorm.DB, p *model.Persona) error
	Create(ctx context.Context, tx *gorm.DB, t *model.Tecnico) error
	UpdatePersona(ctx context.Context, tx *gorm.DB, p *model.Persona) error
	Update(ctx context.Context, tx *gorm.DB, t *model.Tecnico) (int64, error)
	CreateEspecialidades(ctx context.Context, tx *gorm.DB, tecnicoID int, especialidadIDs []int) error
	DeleteEspecialidades(ctx context.Context, tx *gorm.DB, tecnicoID int) error
	FindByID(ctx context.Context, id int) (*model.Tecnico, error)
	List(ctx context.Context) ([]model.Tecnico, error)
	ListEspecialidades(ctx context.Context) ([]model.Especialidad, error)
	CountEspecialidades(ctx context.Context, ids []int) (int64, error)
	Delete(ctx context.Context, tx *gorm.DB, tecnicoID int) (int64, error)
	DeletePersona(ctx context.Context, tx *gorm.DB, personaID int) error
}

type tecnicoRepo struct{ db *gorm.DB }

func NewTecnicoRepository(db *gorm.DB) TecnicoRepository { return &tecnicoRepo{db: db} }

func (r *tecnicoRepo) DB() *gorm.DB { return r.db }

func (r *tecnicoRepo) CreatePersona(ctx context.Context, tx *gorm.DB, p *model.Persona) error {
	return tx.WithContext(ctx).Create(p).Error
}

func (r *tecnicoRepo) Create(ctx context.Context, tx *gorm.DB, t *model.Tecnico) error {
	// Associations are written explicitly via CreateEspecialidades.
	return tx.WithContext(ctx).Omit("Especialidades").Create(t).Error
}

func (r *tecnicoRepo) UpdatePersona(ctx context.Context, tx *gorm.DB, p *model.Persona) error {
	return tx.WithContext(ctx).Model(&model.Persona{}).
		Where("id_persona = ?", p.ID).
		Select("nombre", "correo", "telefono").
		Updates(p).Error
}

func (r *tecnicoRepo) Update(ctx context.Context, tx *gorm.DB, t *model.Tecnico) (int64, error) {
	res := tx.WithContext(ctx).Model(&model.Tecnico{}).
		Where("id_tecnico = ?", t.ID).
		Select("matricula").
		Updates(t)
	return res.RowsAffected, res.Error
}

func (r *tecnicoRepo) CreateEspecialidades(ctx context.Context, tx *gorm.DB, tecnicoID int, especialidadIDs []int) error {
	if len(especialidadIDs) == 0 {
		return nil
	}
	rows := make([]model.TecnicoEspecialidad, 0, len(especialidadIDs))
	for _, id := range especialidadIDs {
		rows = append(rows, model.TecnicoEspecialidad{TecnicoID: tecnicoID, EspecialidadID: id})
	}
	return tx.WithContext(ctx).Create(&rows).Error
}

func (r *tecnicoRepo) DeleteEspecialidades(ctx context.Context, tx *gorm.DB, tecnicoID int) error {
	return tx.WithContext(ctx).Where("id_tecnico = ?", tecnicoID).Delete(&model.TecnicoEspecialidad{}).Error
}

func (r *tecnicoRepo) FindByID(ctx context.Context, id int) (*model.Tecnico, error) {
	var t model.Tecnico
	err := r.db.WithContext(ctx).
		Preload("Persona").
		Preload("Especialidades", func(db *gorm.DB) *gorm.DB { return db.Order("nombre ASC") }).
		First(&t, "id_tecnico = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *tecnicoRepo) List(ctx context.Context) ([]model.Tecnico, error) {
	var tecnicos []model.Tecnico
	err := r.db.WithContext(ctx).
		Joins("Persona").
		Preload("Especialidades", func(db *gorm.DB) *gorm.DB { return db.Order("nombre ASC") }).
		Order(`"Persona".nombre ASC`).
		Find(&tecnicos).Error
	return tecnicos, err
}

func (r *tecnicoRepo) ListEspecialidades(ctx context.Context) ([]model.Especialidad, error) {
	var especialidades []model.Especialidad
	err := r.db.WithContext(ctx).Order("nombre ASC").Find(&especialidades).Error
	return especialidades, err
}

func (r *tecnicoRepo) CountEspecialidades(ctx context.Context, ids []int) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Especialidad{}).
		Where("id_especialidad IN ?", ids).
		Count(&n).Error
	return n, err
}

func (r *tecnicoRepo) Delete(ctx context.Context, tx *gorm.DB, tecnicoID int) (int64, error) {
	res := tx.WithContext(ctx).Where("id_tecnico = ?", tecnicoID).Delete(&model.Tecnico{})
	return res.RowsAffected, res.Error
}

func (r *tecnicoRepo) DeletePersona(ctx context.Context, tx *gorm.DB, personaID int) error {
	return tx.WithContext(ctx).Where("id_persona = ?", personaID).Delete(&model.Persona{}).Error
}
