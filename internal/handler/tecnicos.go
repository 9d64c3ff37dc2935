package handler

import (
	"fmt"

	"github.com/Kevin2407/gestion-proveedores/internal/dto"
	"github.com/Kevin2407/gestion-proveedores/internal/service"

	"github.com/gin-gonic/gin"
)

type TecnicosHandler struct{ svc service.TecnicoService }

func NewTecnicosHandler(svc service.TecnicoService) *TecnicosHandler {
	return &TecnicosHandler{svc: svc}
}

// Listar godoc
// @Summary      Listar tecnicos
// @Description  Devuelve todos los tecnicos con sus especialidades anidadas.
// @Tags         tecnicos
// @Produce      json
// @Success      200  {object} dto.Envelope{data=[]dto.TecnicoResponse}
// @Router       /api/technicians [get]
func (h *TecnicosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, resp)
}

// Crear godoc
// @Summary      Registrar tecnico
// @Description  Crea la Persona y el Tecnico, y asocia las especialidades indicadas, en una transaccion.
// @Tags         tecnicos
// @Accept       json
// @Produce      json
// @Param        body body dto.CrearTecnicoRequest true "Datos del tecnico"
// @Success      201  {object} dto.Envelope{data=dto.TecnicoResponse}
// @Failure      400  {object} dto.Envelope
// @Router       /api/technicians [post]
func (h *TecnicosHandler) Crear(c *gin.Context) {
	var req dto.CrearTecnicoRequest
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
// @Summary      Actualizar tecnico
// @Description  Actualiza los datos y reemplaza el conjunto completo de especialidades.
// @Tags         tecnicos
// @Accept       json
// @Produce      json
// @Param        body body dto.ActualizarTecnicoRequest true "Datos del tecnico"
// @Success      200  {object} dto.Envelope{data=dto.TecnicoResponse}
// @Failure      404  {object} dto.Envelope
// @Router       /api/technicians [put]
func (h *TecnicosHandler) Actualizar(c *gin.Context) {
	var req dto.ActualizarTecnicoRequest
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
// @Summary      Eliminar tecnico
// @Tags         tecnicos
// @Produce      json
// @Param        id query int true "id_tecnico"
// @Success      200  {object} dto.Envelope
// @Failure      404  {object} dto.Envelope
// @Router       /api/technicians [delete]
func (h *TecnicosHandler) Eliminar(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, fmt.Sprintf("Tecnico %d eliminado correctamente", id))
}

// ListarEspecialidades godoc
// @Summary      Listar especialidades
// @Description  Catalogo de especialidades disponible para asignar a tecnicos.
// @Tags         tecnicos
// @Produce      json
// @Success      200  {object} dto.Envelope{data=[]dto.EspecialidadResponse}
// @Router       /api/specialties [get]
func (h *TecnicosHandler) ListarEspecialidades(c *gin.Context) {
	resp, err := h.svc.ListarEspecialidades(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, resp)
}
