package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Contrato is a supplier-scoped service contract.
type Contrato struct {
	ID               int             `gorm:"column:id_contrato;primaryKey;autoIncrement"`
	Nombre           string          `gorm:"column:nombre_contrato;not null"`
	FechaInicio      time.Time       `gorm:"column:fecha_inicio;type:date;not null"`
	FechaVencimiento time.Time       `gorm:"column:fecha_vencimiento;type:date;not null"`
	MontoAnual       decimal.Decimal `gorm:"column:monto_anual;type:numeric(12,2);not null"`
	RutaArchivo      *string         `gorm:"column:ruta_archivo"`
	ProveedorID      int             `gorm:"column:id_proveedor;not null;index"`

	Proveedor *Proveedor `gorm:"foreignKey:ProveedorID"`
}

func (Contrato) TableName() string { return "Contrato" }
