package model

// Tecnico is an authorized technician. Like Proveedor, its identity lives in a
// Persona row; specialties are a many-to-many through Tecnico_Especialidad.
type Tecnico struct {
	ID        int     `gorm:"column:id_tecnico;primaryKey;autoIncrement"`
	Matricula *string `gorm:"column:matricula"`
	PersonaID int     `gorm:"column:id_persona;not null"`

	Persona        *Persona       `gorm:"foreignKey:PersonaID"`
	Especialidades []Especialidad `gorm:"many2many:Tecnico_Especialidad;foreignKey:ID;joinForeignKey:id_tecnico;References:ID;joinReferences:id_especialidad"`
}

func (Tecnico) TableName() string { return "Tecnico" }

// Especialidad is a technician skill category.
type Especialidad struct {
	ID     int    `gorm:"column:id_especialidad;primaryKey;autoIncrement"`
	Nombre string `gorm:"column:nombre;uniqueIndex;not null"`
}

func (Especialidad) TableName() string { return "Especialidad" }

// TecnicoEspecialidad is the join row. Modeled explicitly because updates use
// full-replace semantics (delete all rows for the tecnico, reinsert).
type TecnicoEspecialidad struct {
	TecnicoID      int `gorm:"column:id_tecnico;primaryKey"`
	EspecialidadID int `gorm:"column:id_especialidad;primaryKey"`
}

func (TecnicoEspecialidad) TableName() string { return "Tecnico_Especialidad" }
