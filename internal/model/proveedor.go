package model

import "time"

// Proveedor is a supplier. Identity and contact data live in the linked
// Persona row; the optional address hangs off that Persona.
type Proveedor struct {
	ID        int       `gorm:"column:id_proveedor;primaryKey;autoIncrement"`
	CUIT      string    `gorm:"column:cuit;uniqueIndex;not null"`
	FechaAlta time.Time `gorm:"column:fecha_alta;type:date;not null"`
	PersonaID int       `gorm:"column:id_persona;not null"`

	Persona        *Persona        `gorm:"foreignKey:PersonaID"`
	Contratos      []Contrato      `gorm:"foreignKey:ProveedorID"`
	Ordenes        []OrdenDeCompra `gorm:"foreignKey:ProveedorID"`
	Calificaciones []Calificacion  `gorm:"foreignKey:ProveedorID"`
}

func (Proveedor) TableName() string { return "Proveedor" }
