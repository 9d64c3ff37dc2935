package model

// Producto is the product catalog referenced by order detalles.
type Producto struct {
	ID          int     `gorm:"column:id_producto;primaryKey;autoIncrement"`
	Nombre      string  `gorm:"column:nombre_producto;uniqueIndex;not null"`
	Descripcion *string `gorm:"column:descripcion"`
}

func (Producto) TableName() string { return "Producto" }
