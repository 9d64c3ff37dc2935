package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// ItemOrdenRequest is one requested line. Subtotal is normally derived
// (cantidad x precio_unitario, rounded to 2); when the caller sends an explicit
// subtotal it is stored as given — callers should not rely on that.
type ItemOrdenRequest struct {
	ProductoID     int              `json:"id_producto"`
	Cantidad       int              `json:"cantidad"`
	PrecioUnitario decimal.Decimal  `json:"precio_unitario"`
	Subtotal       *decimal.Decimal `json:"subtotal,omitempty"`
}

type CrearOrdenRequest struct {
	ProveedorID  int                `json:"id_proveedor"`
	FechaPedido  string             `json:"fecha_pedido"`  // YYYY-MM-DD
	FechaEntrega *string            `json:"fecha_entrega"` // YYYY-MM-DD
	Estado       string             `json:"estado"`
	Items        []ItemOrdenRequest `json:"items"`
}

type ActualizarOrdenRequest struct {
	OrdenID int `json:"id_orden"`
	CrearOrdenRequest
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type DetalleResponse struct {
	ID             int             `json:"id_detalle"`
	ProductoID     int             `json:"id_producto"`
	ProductoNombre string          `json:"producto_nombre"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

type OrdenResponse struct {
	ID              int               `json:"id_orden"`
	FechaPedido     string            `json:"fecha_pedido"`
	FechaEntrega    *string           `json:"fecha_entrega"`
	MontoTotal      decimal.Decimal   `json:"monto_total"`
	Estado          string            `json:"estado"`
	ProveedorID     int               `json:"id_proveedor"`
	ProveedorNombre string            `json:"proveedor_nombre"`
	Detalles        []DetalleResponse `json:"detalles"`
}
