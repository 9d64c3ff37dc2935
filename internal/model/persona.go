package model

// Persona is the identity/contact record shared by proveedores and tecnicos.
type Persona struct {
	ID       int     `gorm:"column:id_persona;primaryKey;autoIncrement"`
	Nombre   string  `gorm:"column:nombre;not null"`
	Correo   *string `gorm:"column:correo"`
	Telefono *string `gorm:"column:telefono"`

	Direccion *Direccion `gorm:"foreignKey:PersonaID"`
}

func (Persona) TableName() string { return "Persona" }

// Direccion is the optional postal address linked to a Persona (0..1).
type Direccion struct {
	ID           int     `gorm:"column:id_direccion;primaryKey;autoIncrement"`
	Calle        string  `gorm:"column:calle;not null"`
	Ciudad       string  `gorm:"column:ciudad;not null"`
	CodigoPostal *string `gorm:"column:codigo_postal"`
	PersonaID    int     `gorm:"column:id_persona;not null;index"`
}

func (Direccion) TableName() string { return "Direccion" }
