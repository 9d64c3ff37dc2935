package handler

import (
	"fmt"

	"github.com/Kevin2407/gestion-proveedores/internal/dto"
	"github.com/Kevin2407/gestion-proveedores/internal/service"

	"github.com/gin-gonic/gin"
)

type CalificacionesHandler struct{ svc service.CalificacionService }

func NewCalificacionesHandler(svc service.CalificacionService) *CalificacionesHandler {
	return &CalificacionesHandler{svc: svc}
}

// Listar godoc
// @Summary      Listar calificaciones
// @Description  Devuelve las evaluaciones de proveedores, mas recientes primero.
// @Tags         calificaciones
// @Produce      json
// @Success      200  {object} dto.Envelope{data=[]dto.CalificacionResponse}
// @Router       /api/ratings [get]
func (h *CalificacionesHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, resp)
}

// Crear godoc
// @Summary      Registrar calificacion
// @Description  Registra una evaluacion 1..5 de un proveedor existente.
// @Tags         calificaciones
// @Accept       json
// @Produce      json
// @Param        body body dto.CrearCalificacionRequest true "Datos de la calificacion"
// @Success      201  {object} dto.Envelope{data=dto.CalificacionResponse}
// @Failure      400  {object} dto.Envelope
// @Router       /api/ratings [post]
func (h *CalificacionesHandler) Crear(c *gin.Context) {
	var req dto.CrearCalificacionRequest
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
// @Summary      Actualizar calificacion
// @Tags         calificaciones
// @Accept       json
// @Produce      json
// @Param        body body dto.ActualizarCalificacionRequest true "Datos de la calificacion"
// @Success      200  {object} dto.Envelope{data=dto.CalificacionResponse}
// @Failure      404  {object} dto.Envelope
// @Router       /api/ratings [put]
func (h *CalificacionesHandler) Actualizar(c *gin.Context) {
	var req dto.ActualizarCalificacionRequest
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
// @Summary      Eliminar calificacion
// @Tags         calificaciones
// @Produce      json
// @Param        id query int true "id_calificacion"
// @Success      200  {object} dto.Envelope
// @Failure      404  {object} dto.Envelope
// @Router       /api/ratings [delete]
func (h *CalificacionesHandler) Eliminar(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, fmt.Sprintf("Calificacion %d eliminada correctamente", id))
}
