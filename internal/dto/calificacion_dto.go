package dto

type CrearCalificacionRequest struct {
	Puntaje         int     `json:"puntaje"          validate:"required,min=1,max=5"`
	Comentarios     *string `json:"comentarios"`
	FechaEvaluacion string  `json:"fecha_evaluacion" validate:"required"`
	ProveedorID     int     `json:"id_proveedor"     validate:"required,gt=0"`
}

type ActualizarCalificacionRequest struct {
	CalificacionID int `json:"id_calificacion" validate:"required,gt=0"`
	CrearCalificacionRequest
}

type CalificacionResponse struct {
	ID              int     `json:"id_calificacion"`
	Puntaje         int     `json:"puntaje"`
	Comentarios     *string `json:"comentarios,omitempty"`
	FechaEvaluacion string  `json:"fecha_evaluacion"`
	ProveedorID     int     `json:"id_proveedor"`
	ProveedorNombre string  `json:"proveedor_nombre"`
}
