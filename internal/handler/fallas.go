package handler

import (
	"fmt"

	"github.com/Kevin2407/gestion-proveedores/internal/apierror"
	"github.com/Kevin2407/gestion-proveedores/internal/dto"
	"github.com/Kevin2407/gestion-proveedores/internal/service"

	"github.com/gin-gonic/gin"
)

type FallasHandler struct{ svc service.FallaService }

func NewFallasHandler(svc service.FallaService) *FallasHandler {
	return &FallasHandler{svc: svc}
}

// Listar godoc
// @Summary      Listar fallas de proveedores
// @Description  Devuelve los incidentes registrados. ?mode=schema devuelve que campos soporta la tabla; ?id= devuelve uno solo.
// @Tags         fallas
// @Produce      json
// @Param        mode query string false "schema para consultar columnas disponibles"
// @Param        id   query int    false "id_falla"
// @Success      200  {object} dto.Envelope{data=[]dto.FallaResponse}
// @Router       /api/supplier-failures [get]
func (h *FallasHandler) Listar(c *gin.Context) {
	if c.Query("mode") == "schema" {
		resp, err := h.svc.Esquema(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		respondOK(c, resp)
		return
	}

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
// @Summary      Registrar falla de proveedor
// @Description  Inserta un incidente usando solo las columnas que la tabla realmente tiene.
// @Tags         fallas
// @Accept       json
// @Produce      json
// @Param        body body dto.FallaRequest true "Datos de la falla"
// @Success      201  {object} dto.Envelope{data=dto.FallaResponse}
// @Failure      400  {object} dto.Envelope
// @Router       /api/supplier-failures [post]
func (h *FallasHandler) Crear(c *gin.Context) {
	var req dto.FallaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apierror.Validation("JSON invalido: %s", err.Error()))
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
// @Summary      Actualizar falla de proveedor
// @Description  Actualizacion parcial: solo se tocan los campos presentes en el body.
// @Tags         fallas
// @Accept       json
// @Produce      json
// @Param        body body dto.FallaRequest true "Campos a actualizar (id_falla obligatorio)"
// @Success      200  {object} dto.Envelope{data=dto.FallaResponse}
// @Failure      404  {object} dto.Envelope
// @Router       /api/supplier-failures [put]
func (h *FallasHandler) Actualizar(c *gin.Context) {
	var req dto.FallaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apierror.Validation("JSON invalido: %s", err.Error()))
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
// @Summary      Eliminar falla de proveedor
// @Tags         fallas
// @Produce      json
// @Param        id query int true "id_falla"
// @Success      200  {object} dto.Envelope
// @Failure      404  {object} dto.Envelope
// @Router       /api/supplier-failures [delete]
func (h *FallasHandler) Eliminar(c *gin.Context) {
	id, ok := queryID(c)
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, fmt.Sprintf("Falla %d eliminada correctamente", id))
}
