package handler

import (
	"fmt"

	"github.com/Kevin2407/gestion-proveedores/internal/dto"
	"github.com/Kevin2407/gestion-proveedores/internal/service"

	"github.com/gin-gonic/gin"
)

type ProveedoresHandler struct{ svc service.ProveedorService }

func NewProveedoresHandler(svc service.ProveedorService) *ProveedoresHandler {
	return &ProveedoresHandler{svc: svc}
}

// Listar godoc
// @Summary      Listar proveedores
// @Description  Devuelve todos los proveedores con sus datos de contacto y direccion, ordenados por nombre.
// @Tags         proveedores
// @Produce      json
// @Success      200  {object} dto.Envelope{data=[]dto.ProveedorResponse}
// @Router       /api/providers [get]
func (h *ProveedoresHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, resp)
}

// Crear godoc
// @Summary      Registrar proveedor
// @Description  Crea la Persona, la Direccion opcional y el Proveedor en una sola transaccion.
// @Tags         proveedores
// @Accept       json
// @Produce      json
// @Param        body body dto.CrearProveedorRequest true "Datos del proveedor"
// @Success      201  {object} dto.Envelope{data=dto.ProveedorResponse}
// @Failure      400  {object} dto.Envelope
// @Router       /api/providers [post]
func (h *ProveedoresHandler) Crear(c *gin.Context) {
	var req dto.CrearProveedorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, resp)
}

// Actualizar godoc
// @Summary      Actualizar proveedor
// @Description  Reemplaza los datos de contacto y la direccion del proveedor indicado en el body.
// @Tags         proveedores
// @Accept       json
// @Produce      json
// @Param        body body dto.ActualizarProveedorRequest true "Datos del proveedor"
// @Success      200  {object} dto.Envelope{data=dto.ProveedorResponse}
// @Failure      404  {object} dto.Envelope
// @Router       /api/providers [put]
func (h *ProveedoresHandler) Actualizar(c *gin.Context) {
	var req dto.ActualizarProveedorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, resp)
}

// Eliminar godoc
// @Summary      Eliminar proveedor
// @Description  Borra el proveedor y todo lo que cuelga de el: detalles, ordenes, calificaciones, fallas, direccion y persona.
// @Tags         proveedores
// @Produce      json
// @Param        id query int true "id_proveedor"
// @Success      200  {object} dto.Envelope
// @Failure      404  {object} dto.Envelope
// @Router       /api/providers [delete]
func (h *ProveedoresHandler) Eliminar(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, fmt.Sprintf("Proveedor %d eliminado correctamente", id))
}
