package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados of an OrdenDeCompra (free-form column in the schema, these are the
// values the UI actually writes).
const (
	OrdenPendiente = "pendiente"
	OrdenAprobada  = "aprobada"
	OrdenEntregada = "entregada"
	OrdenCancelada = "cancelada"
)

// OrdenDeCompra is the purchase-order header. MontoTotal must equal the sum of
// its detalles' subtotals at the time of write.
type OrdenDeCompra struct {
	ID           int             `gorm:"column:id_orden;primaryKey;autoIncrement"`
	FechaPedido  time.Time       `gorm:"column:fecha_pedido;type:date;not null"`
	FechaEntrega *time.Time      `gorm:"column:fecha_entrega;type:date"`
	MontoTotal   decimal.Decimal `gorm:"column:monto_total;type:numeric(12,2);not null"`
	Estado       string          `gorm:"column:estado;not null"`
	ProveedorID  int             `gorm:"column:id_proveedor;not null;index"`

	Proveedor *Proveedor  `gorm:"foreignKey:ProveedorID"`
	Detalles  []DetalleOC `gorm:"foreignKey:OrdenID"`
}

func (OrdenDeCompra) TableName() string { return "Orden_De_Compra" }

// DetalleOC is one product line inside an order. Subtotal is
// cantidad x precio_unitario rounded to 2 decimals.
type DetalleOC struct {
	ID             int             `gorm:"column:id_detalle;primaryKey;autoIncrement"`
	OrdenID        int             `gorm:"column:id_orden;not null;index"`
	ProductoID     int             `gorm:"column:id_producto;not null"`
	Cantidad       int             `gorm:"column:cantidad;not null"`
	PrecioUnitario decimal.Decimal `gorm:"column:precio_unitario;type:numeric(10,2);not null"`
	Subtotal       decimal.Decimal `gorm:"column:subtotal;type:numeric(10,2);not null"`

	Producto *Producto `gorm:"foreignKey:ProductoID"`
}

func (DetalleOC) TableName() string { return "Detalle_OC" }
