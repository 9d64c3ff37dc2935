package handler

import (
	"github.com/Kevin2407/gestion-proveedores/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportesHandler struct{ svc service.ReporteService }

func NewReportesHandler(svc service.ReporteService) *ReportesHandler {
	return &ReportesHandler{svc: svc}
}

// Dashboard godoc
// @Summary      Reporte de gestion
// @Description  Totales, mejores calificaciones, proveedores sin fallas, ordenes por estado y ordenes recientes en un solo payload.
// @Tags         reportes
// @Produce      json
// @Success      200  {object} dto.Envelope{data=dto.ReporteResponse}
// @Router       /api/reports [get]
func (h *ReportesHandler) Dashboard(c *gin.Context) {
	resp, err := h.svc.Dashboard(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, resp)
}
