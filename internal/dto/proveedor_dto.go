package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// DireccionInput is the optional address written alongside the Persona row.
type DireccionInput struct {
	Calle        string  `json:"calle"        validate:"required,min=1"`
	Ciudad       string  `json:"ciudad"       validate:"required,min=1"`
	CodigoPostal *string `json:"codigo_postal"`
}

type CrearProveedorRequest struct {
	Nombre    string          `json:"nombre"     validate:"required,min=2"`
	CUIT      string          `json:"cuit"       validate:"required"`
	FechaAlta string          `json:"fecha_alta" validate:"required"` // YYYY-MM-DD
	Correo    *string         `json:"correo"     validate:"omitempty,email"`
	Telefono  *string         `json:"telefono"`
	Direccion *DireccionInput `json:"direccion"`
}

type ActualizarProveedorRequest struct {
	ProveedorID int `json:"id_proveedor" validate:"required,gt=0"`
	CrearProveedorRequest
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type DireccionResponse struct {
	Calle        string  `json:"calle"`
	Ciudad       string  `json:"ciudad"`
	CodigoPostal *string `json:"codigo_postal,omitempty"`
}

type ProveedorResponse struct {
	ID        int                `json:"id_proveedor"`
	Nombre    string             `json:"nombre"`
	CUIT      string             `json:"cuit"`
	FechaAlta string             `json:"fecha_alta"`
	Correo    *string            `json:"correo"`
	Telefono  *string            `json:"telefono"`
	Direccion *DireccionResponse `json:"direccion,omitempty"`
}
