package dto

// ─── Request DTO ─────────────────────────────────────────────────────────────

// FallaRequest covers create and update. Pointer fields distinguish "absent"
// from "explicit null/empty" so partial updates only touch provided fields.
type FallaRequest struct {
	FallaID         *int    `json:"id_falla"`
	ProveedorID     *int    `json:"id_proveedor"`
	Descripcion     *string `json:"descripcion"`
	FechaRegistro   *string `json:"fecha_registro"`
	Estado          *string `json:"estado"`
	Criticidad      *string `json:"criticidad"`
	Acciones        *string `json:"acciones"`
	FechaResolucion *string `json:"fecha_resolucion"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// FallaResponse mirrors the original payload: fields backed by a column the
// table does not have come back as null rather than failing.
type FallaResponse struct {
	ID                int         `json:"id_falla"`
	ProveedorID       int         `json:"id_proveedor"`
	ProveedorNombre   *string     `json:"proveedor_nombre"`
	ProveedorCorreo   *string     `json:"proveedor_correo"`
	ProveedorTelefono *string     `json:"proveedor_telefono"`
	Descripcion       interface{} `json:"descripcion"`
	FechaRegistro     interface{} `json:"fecha_registro"`
	Estado            interface{} `json:"estado"`
	Criticidad        interface{} `json:"criticidad"`
	Acciones          interface{} `json:"acciones"`
	FechaResolucion   interface{} `json:"fecha_resolucion"`
}

// FallaSchemaResponse is the ?mode=schema probe: which optional logical fields
// the backing table actually supports.
type FallaSchemaResponse struct {
	HasDescription    bool `json:"hasDescription"`
	HasDate           bool `json:"hasDate"`
	HasStatus         bool `json:"hasStatus"`
	HasSeverity       bool `json:"hasSeverity"`
	HasActions        bool `json:"hasActions"`
	HasResolutionDate bool `json:"hasResolutionDate"`
}
