package dto

// ─── Tipo de equipo ──────────────────────────────────────────────────────────

type CrearTipoEquipoRequest struct {
	Nombre      string  `json:"nombre_categoria" validate:"required,min=1"`
	Descripcion *string `json:"descripcion"`
}

type ActualizarTipoEquipoRequest struct {
	TipoEquipoID int `json:"id_tipoequipo" validate:"required,gt=0"`
	CrearTipoEquipoRequest
}

type TipoEquipoResponse struct {
	ID          int     `json:"id_tipoequipo"`
	Nombre      string  `json:"nombre_categoria"`
	Descripcion *string `json:"descripcion,omitempty"`
}

// ─── Equipo adquirido ────────────────────────────────────────────────────────

type CrearEquipoRequest struct {
	Modelo                   string  `json:"modelo"        validate:"required,min=1"`
	NumeroSerie              string  `json:"numero_serie"  validate:"required,min=1"`
	FechaVencimientoGarantia *string `json:"fecha_vencimiento_garantia"`
	Estado                   string  `json:"estado"        validate:"required"`
	DetalleID                *int    `json:"id_detalle"`
	TipoEquipoID             int     `json:"id_tipoequipo" validate:"required,gt=0"`
}

type ActualizarEquipoRequest struct {
	EquipoID int `json:"id_equipo" validate:"required,gt=0"`
	CrearEquipoRequest
}

type EquipoResponse struct {
	ID                       int     `json:"id_equipo"`
	Modelo                   string  `json:"modelo"`
	NumeroSerie              string  `json:"numero_serie"`
	FechaVencimientoGarantia *string `json:"fecha_vencimiento_garantia,omitempty"`
	Estado                   string  `json:"estado"`
	DetalleID                *int    `json:"id_detalle,omitempty"`
	TipoEquipoID             int     `json:"id_tipoequipo"`
	TipoEquipo               string  `json:"tipo_equipo"`
}
