package handler

import (
	"fmt"
	"strconv"

	"github.com/Kevin2407/gestion-proveedores/internal/apierror"
	"github.com/Kevin2407/gestion-proveedores/internal/dto"
	"github.com/Kevin2407/gestion-proveedores/internal/service"

	"github.com/gin-gonic/gin"
)

type ContratosHandler struct{ svc service.ContratoService }

func NewContratosHandler(svc service.ContratoService) *ContratosHandler {
	return &ContratosHandler{svc: svc}
}

// Listar godoc
// @Summary      Listar contratos
// @Description  Devuelve los contratos mas recientes primero; ?id_proveedor= filtra por proveedor.
// @Tags         contratos
// @Produce      json
// @Param        id_proveedor query int false "Filtrar por proveedor"
// @Success      200  {object} dto.Envelope{data=[]dto.ContratoResponse}
// @Router       /api/contracts [get]
func (h *ContratosHandler) Listar(c *gin.Context) {
	var proveedorID *int
	if raw := c.Query("id_proveedor"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			respondError(c, apierror.Validation("id_proveedor invalido: %s", raw))
			return
		}
		proveedorID = &id
	}

	resp, err := h.svc.Listar(c.Request.Context(), proveedorID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, resp)
}

// Crear godoc
// @Summary      Registrar contrato
// @Tags         contratos
// @Accept       json
// @Produce      json
// @Param        body body dto.CrearContratoRequest true "Datos del contrato"
// @Success      201  {object} dto.Envelope{data=dto.ContratoResponse}
// @Failure      400  {object} dto.Envelope
// @Router       /api/contracts [post]
func (h *ContratosHandler) Crear(c *gin.Context) {
	var req dto.CrearContratoRequest
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
// @Summary      Actualizar contrato
// @Tags         contratos
// @Accept       json
// @Produce      json
// @Param        body body dto.ActualizarContratoRequest true "Datos del contrato"
// @Success      200  {object} dto.Envelope{data=dto.ContratoResponse}
// @Failure      404  {object} dto.Envelope
// @Router       /api/contracts [put]
func (h *ContratosHandler) Actualizar(c *gin.Context) {
	var req dto.ActualizarContratoRequest
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
// @Summary      Eliminar contrato
// @Tags         contratos
// @Produce      json
// @Param        id query int true "id_contrato"
// @Success      200  {object} dto.Envelope
// @Failure      404  {object} dto.Envelope
// @Router       /api/contracts [delete]
func (h *ContratosHandler) Eliminar(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, fmt.Sprintf("Contrato %d eliminado correctamente", id))
}
