package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearTecnicoRequest struct {
	Nombre         string  `json:"nombre"          validate:"required,min=2"`
	Correo         *string `json:"correo"          validate:"omitempty,email"`
	Telefono       *string `json:"telefono"`
	Matricula      *string `json:"matricula"`
	Especialidades []int   `json:"especialidades"` // ids from the Especialidad catalog
}

type ActualizarTecnicoRequest struct {
	TecnicoID int `json:"id_tecnico" validate:"required,gt=0"`
	CrearTecnicoRequest
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type EspecialidadResponse struct {
	ID     int    `json:"id_especialidad"`
	Nombre string `json:"nombre"`
}

type TecnicoResponse struct {
	ID             int                    `json:"id_tecnico"`
	Nombre         string                 `json:"nombre"`
	Correo         *string                `json:"correo"`
	Telefono       *string                `json:"telefono"`
	Matricula      *string                `json:"matricula,omitempty"`
	Especialidades []EspecialidadResponse `json:"especialidades"`
}
