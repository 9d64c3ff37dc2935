package model

import "time"

// TipoEquipo is the equipment category catalog.
type TipoEquipo struct {
	ID          int     `gorm:"column:id_tipoequipo;primaryKey;autoIncrement"`
	Nombre      string  `gorm:"column:nombre_categoria;uniqueIndex;not null"`
	Descripcion *string `gorm:"column:descripcion"`
}

func (TipoEquipo) TableName() string { return "Tipo_Equipo" }

// EquipoAdquirido is a physical unit acquired through an order line item,
// tracked for warranty and operational status.
type EquipoAdquirido struct {
	ID                       int        `gorm:"column:id_equipo;primaryKey;autoIncrement"`
	Modelo                   string     `gorm:"column:modelo;not null"`
	NumeroSerie              string     `gorm:"column:numero_serie;not null"`
	FechaVencimientoGarantia *time.Time `gorm:"column:fecha_vencimiento_garantia;type:date"`
	Estado                   string     `gorm:"column:estado;not null"`
	DetalleID                *int       `gorm:"column:id_detalle"`
	TipoEquipoID             int        `gorm:"column:id_tipoequipo;not null"`

	TipoEquipo *TipoEquipo `gorm:"foreignKey:TipoEquipoID"`
	Detalle    *DetalleOC  `gorm:"foreignKey:DetalleID"`
}

func (EquipoAdquirido) TableName() string { return "Equipo_Adquirido" }
