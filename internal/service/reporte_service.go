package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Kevin2407/gestion-proveedores/internal/dto"
	"github.com/Kevin2407/gestion-proveedores/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const reporteCacheKey = "reportes:dashboard"

// ReporteService assembles the management dashboard. With a redis client
// configured the full payload is cached for the configured TTL; cache failures
// only log, the dashboard always falls through to the database.
type ReporteService interface {
	Dashboard(ctx context.Context) (*dto.ReporteResponse, error)
}

type reporteService struct {
	reportes repository.ReporteRepository
	cache    *redis.Client
	cacheTTL time.Duration
}

func NewReporteService(reportes repository.ReporteRepository, cache *redis.Client, cacheTTL time.Duration) ReporteService {
	return &reporteService{reportes: reportes, cache: cache, cacheTTL: cacheTTL}
}

func (s *reporteService) Dashboard(ctx context.Context) (*dto.ReporteResponse, error) {
	if cached := s.fromCache(ctx); cached != nil {
		return cached, nil
	}

	totales, err := s.reportes.Totales(ctx)
	if err != nil {
		return nil, err
	}
	mejores, err := s.reportes.MejoresCalificaciones(ctx)
	if err != nil {
		return nil, err
	}
	sinFallas, err := s.reportes.ProveedoresSinFallas(ctx)
	if err != nil {
		return nil, err
	}
	porEstado, err := s.reportes.OrdenesPorEstado(ctx)
	if err != nil {
		return nil, err
	}
	recientes, err := s.reportes.OrdenesRecientes(ctx, 5)
	if err != nil {
		return nil, err
	}

	resp := &dto.ReporteResponse{
		Totales:               *totales,
		MejoresCalificaciones: mejores,
		ProveedoresSinFallas:  sinFallas,
		OrdenesPorEstado:      porEstado,
		OrdenesRecientes:      recientes,
	}
	s.toCache(ctx, resp)
	return resp, nil
}

func (s *reporteService) fromCache(ctx context.Context) *dto.ReporteResponse {
	if s.cache == nil {
		return nil
	}
	raw, err := s.cache.Get(ctx, reporteCacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Warn().Err(err).Msg("reporte cache read failed")
		}
		return nil
	}
	var resp dto.ReporteResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		log.Warn().Err(err).Msg("reporte cache payload corrupt, ignoring")
		return nil
	}
	return &resp
}

func (s *reporteService) toCache(ctx context.Context, resp *dto.ReporteResponse) {
	if s.cache == nil || s.cacheTTL <= 0 {
		return
	}
	raw, err := json.Marshal(resp)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, reporteCacheKey, raw, s.cacheTTL).Err(); err != nil {
		log.Warn().Err(err).Msg("reporte cache write failed")
	}
}
