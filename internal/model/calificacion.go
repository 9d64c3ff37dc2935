package model

import "time"

// Calificacion is a supplier rating: puntaje 1..5 plus optional comment.
type Calificacion struct {
	ID              int       `gorm:"column:id_calificacion;primaryKey;autoIncrement"`
	Puntaje         int       `gorm:"column:puntaje;not null"`
	Comentarios     *string   `gorm:"column:comentarios"`
	FechaEvaluacion time.Time `gorm:"column:fecha_evaluacion;type:date;not null"`
	ProveedorID     int       `gorm:"column:id_proveedor;not null;index"`

	Proveedor *Proveedor `gorm:"foreignKey:ProveedorID"`
}

func (Calificacion) TableName() string { return "Calificacion" }
