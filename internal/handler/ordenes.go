package handler

import (
	"fmt"

	"github.com/Kevin2407/gestion-proveedores/internal/dto"
	"github.com/Kevin2407/gestion-proveedores/internal/service"

	"github.com/gin-gonic/gin"
)

type OrdenesHandler struct{ svc service.OrdenService }

func NewOrdenesHandler(svc service.OrdenService) *OrdenesHandler {
	return &OrdenesHandler{svc: svc}
}

// Listar godoc
// @Summary      Listar ordenes de compra
// @Description  Devuelve todas las ordenes con sus items anidados, mas recientes primero.
// @Tags         ordenes
// @Produce      json
// @Success      200  {object} dto.Envelope{data=[]dto.OrdenResponse}
// @Router       /api/orders [get]
func (h *OrdenesHandler) Listar(c *gin.Context) {
	if c.Query("id") != "" {
		id, ok := queryID(c)
		if !ok {
			return
		}
		resp, err := h.svc.Obtener(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		respondOK(c, resp)
		return
	}

	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, resp)
}

// Crear godoc
// @Summary      Registrar orden de compra
// @Description  Valida los items, inserta cabecera y detalles en una transaccion y devuelve la orden releida de la base.
// @Tags         ordenes
// @Accept       json
// @Produce      json
// @Param        body body dto.CrearOrdenRequest true "Cabecera e items de la orden"
// @Success      201  {object} dto.Envelope{data=dto.OrdenResponse}
// @Failure      400  {object} dto.Envelope
// @Router       /api/orders [post]
func (h *OrdenesHandler) Crear(c *gin.Context) {
	var req dto.CrearOrdenRequest
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
// @Summary      Actualizar orden de compra
// @Description  Reemplaza la cabecera y el conjunto completo de items de la orden indicada en el body.
// @Tags         ordenes
// @Accept       json
// @Produce      json
// @Param        body body dto.ActualizarOrdenRequest true "Cabecera e items de la orden"
// @Success      200  {object} dto.Envelope{data=dto.OrdenResponse}
// @Failure      404  {object} dto.Envelope
// @Router       /api/orders [put]
func (h *OrdenesHandler) Actualizar(c *gin.Context) {
	var req dto.ActualizarOrdenRequest
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
// @Summary      Eliminar orden de compra
// @Description  Borra los detalles y luego la cabecera; 404 si la orden no existe.
// @Tags         ordenes
// @Produce      json
// @Param        id query int true "id_orden"
// @Success      200  {object} dto.Envelope
// @Failure      404  {object} dto.Envelope
// @Router       /api/orders [delete]
func (h *OrdenesHandler) Eliminar(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, fmt.Sprintf("Orden %d eliminada correctamente", id))
}
