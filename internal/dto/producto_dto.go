package dto

type CrearProductoRequest struct {
	Nombre      string  `json:"nombre_producto" validate:"required,min=1"`
	Descripcion *string `json:"descripcion"`
}

type ActualizarProductoRequest struct {
	ProductoID int `json:"id_producto" validate:"required,gt=0"`
	CrearProductoRequest
}

type ProductoResponse struct {
	ID          int     `json:"id_producto"`
	Nombre      string  `json:"nombre_producto"`
	Descripcion *string `json:"descripcion,omitempty"`
}
