package dto

import "github.com/shopspring/decimal"

// ReporteTotales is the headline counters block of the dashboard.
type ReporteTotales struct {
	TotalProveedores       int64           `json:"total_proveedores"`
	TotalTecnicos          int64           `json:"total_tecnicos"`
	TotalProductos         int64           `json:"total_productos"`
	TotalOrdenes           int64           `json:"total_ordenes"`
	TotalCalificaciones    int64           `json:"total_calificaciones"`
	TotalFallas            int64           `json:"total_fallas"`
	PromedioCalificaciones float64         `json:"promedio_calificaciones"`
	GastoMesActual         decimal.Decimal `json:"gasto_mes_actual"`
}

type MejorCalificacion struct {
	ProveedorID     int     `json:"id_proveedor"`
	Nombre          string  `json:"nombre"`
	Puntaje         int     `json:"puntaje"`
	FechaEvaluacion string  `json:"fecha_evaluacion"`
	Comentarios     *string `json:"comentarios"`
}

type ProveedorSinFallas struct {
	ProveedorID int     `json:"id_proveedor"`
	Nombre      string  `json:"nombre"`
	Correo      *string `json:"correo"`
	Telefono    *string `json:"telefono"`
	FechaAlta   string  `json:"fecha_alta"`
}

type OrdenesPorEstado struct {
	Estado     string          `json:"estado"`
	Cantidad   int64           `json:"cantidad"`
	MontoTotal decimal.Decimal `json:"monto_total"`
}

type OrdenReciente struct {
	OrdenID         int             `json:"id_orden"`
	FechaPedido     string          `json:"fecha_pedido"`
	MontoTotal      decimal.Decimal `json:"monto_total"`
	Estado          string          `json:"estado"`
	ProveedorNombre string          `json:"proveedor_nombre"`
}

// ReporteResponse assembles every independent query into one payload.
type ReporteResponse struct {
	Totales               ReporteTotales       `json:"totales"`
	MejoresCalificaciones []MejorCalificacion  `json:"mejoresCalificaciones"`
	ProveedoresSinFallas  []ProveedorSinFallas `json:"proveedoresSinFallas"`
	OrdenesPorEstado      []OrdenesPorEstado   `json:"ordenesPorEstado"`
	OrdenesRecientes      []OrdenReciente      `json:"ordenesRecientes"`
}
