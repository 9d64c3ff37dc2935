package handler

import (
	"fmt"

	"github.com/Kevin2407/gestion-proveedores/internal/dto"
	"github.com/Kevin2407/gestion-proveedores/internal/service"

	"github.com/gin-gonic/gin"
)

// ── Equipos adquiridos ───────────────────────────────────────────────────────

type EquiposHandler struct{ svc service.EquipoService }

func NewEquiposHandler(svc service.EquipoService) *EquiposHandler {
	return &EquiposHandler{svc: svc}
}

// Listar godoc
// @Summary      Listar equipos adquiridos
// @Tags         equipos
// @Produce      json
// @Success      200  {object} dto.Envelope{data=[]dto.EquipoResponse}
// @Router       /api/equipment [get]
func (h *EquiposHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, resp)
}

// Crear godoc
// @Summary      Registrar equipo adquirido
// @Description  Alta de una unidad fisica, opcionalmente vinculada a la linea de orden que la origino.
// @Tags         equipos
// @Accept       json
// @Produce      json
// @Param        body body dto.CrearEquipoRequest true "Datos del equipo"
// @Success      201  {object} dto.Envelope{data=dto.EquipoResponse}
// @Failure      400  {object} dto.Envelope
// @Router       /api/equipment [post]
func (h *EquiposHandler) Crear(c *gin.Context) {
	var req dto.CrearEquipoRequest
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
// @Summary      Actualizar equipo adquirido
// @Tags         equipos
// @Accept       json
// @Produce      json
// @Param        body body dto.ActualizarEquipoRequest true "Datos del equipo"
// @Success      200  {object} dto.Envelope{data=dto.EquipoResponse}
// @Failure      404  {object} dto.Envelope
// @Router       /api/equipment [put]
func (h *EquiposHandler) Actualizar(c *gin.Context) {
	var req dto.ActualizarEquipoRequest
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
// @Summary      Eliminar equipo adquirido
// @Tags         equipos
// @Produce      json
// @Param        id query int true "id_equipo"
// @Success      200  {object} dto.Envelope
// @Failure      404  {object} dto.Envelope
// @Router       /api/equipment [delete]
func (h *EquiposHandler) Eliminar(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, fmt.Sprintf("Equipo %d eliminado correctamente", id))
}

// ── Tipos de equipo ──────────────────────────────────────────────────────────

type TiposEquipoHandler struct{ svc service.TipoEquipoService }

func NewTiposEquipoHandler(svc service.TipoEquipoService) *TiposEquipoHandler {
	return &TiposEquipoHandler{svc: svc}
}

// Listar godoc
// @Summary      Listar tipos de equipo
// @Tags         equipos
// @Produce      json
// @Success      200  {object} dto.Envelope{data=[]dto.TipoEquipoResponse}
// @Router       /api/equipment-types [get]
func (h *TiposEquipoHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, resp)
}

// Crear godoc
// @Summary      Registrar tipo de equipo
// @Tags         equipos
// @Accept       json
// @Produce      json
// @Param        body body dto.CrearTipoEquipoRequest true "Datos de la categoria"
// @Success      201  {object} dto.Envelope{data=dto.TipoEquipoResponse}
// @Failure      400  {object} dto.Envelope
// @Router       /api/equipment-types [post]
func (h *TiposEquipoHandler) Crear(c *gin.Context) {
	var req dto.CrearTipoEquipoRequest
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
// @Summary      Actualizar tipo de equipo
// @Tags         equipos
// @Accept       json
// @Produce      json
// @Param        body body dto.ActualizarTipoEquipoRequest true "Datos de la categoria"
// @Success      200  {object} dto.Envelope{data=dto.TipoEquipoResponse}
// @Failure      404  {object} dto.Envelope
// @Router       /api/equipment-types [put]
func (h *TiposEquipoHandler) Actualizar(c *gin.Context) {
	var req dto.ActualizarTipoEquipoRequest
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
// @Summary      Eliminar tipo de equipo
// @Tags         equipos
// @Produce      json
// @Param        id query int true "id_tipoequipo"
// @Success      200  {object} dto.Envelope
// @Failure      404  {object} dto.Envelope
// @Router       /api/equipment-types [delete]
func (h *TiposEquipoHandler) Eliminar(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, fmt.Sprintf("Tipo de equipo %d eliminado correctamente", id))
}
