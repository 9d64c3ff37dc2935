package dto

import "github.com/shopspring/decimal"

type CrearContratoRequest struct {
	Nombre           string          `json:"nombre_contrato"   validate:"required,min=1"`
	FechaInicio      string          `json:"fecha_inicio"      validate:"required"`
	FechaVencimiento string          `json:"fecha_vencimiento" validate:"required"`
	MontoAnual       decimal.Decimal `json:"monto_anual"       validate:"required"`
	RutaArchivo      *string         `json:"ruta_archivo"`
	ProveedorID      int             `json:"id_proveedor"      validate:"required,gt=0"`
}

type ActualizarContratoRequest struct {
	ContratoID int `json:"id_contrato" validate:"required,gt=0"`
	CrearContratoRequest
}

type ContratoResponse struct {
	ID               int             `json:"id_contrato"`
	Nombre           string          `json:"nombre_contrato"`
	FechaInicio      string          `json:"fecha_inicio"`
	FechaVencimiento string          `json:"fecha_vencimiento"`
	MontoAnual       decimal.Decimal `json:"monto_anual"`
	RutaArchivo      *string         `json:"ruta_archivo,omitempty"`
	ProveedorID      int             `json:"id_proveedor"`
	ProveedorNombre  string          `json:"proveedor_nombre"`
}
