package service

import (
	"context"
	"errors"

	"github.com/Kevin2407/gestion-proveedores/internal/apierror"
	"github.com/Kevin2407/gestion-proveedores/internal/dto"
	"github.com/Kevin2407/gestion-proveedores/internal/model"
	"github.com/Kevin2407/gestion-proveedores/internal/repository"

	"gorm.io/gorm"
)

// ── Tipo de equipo ───────────────────────────────────────────────────────────

type TipoEquipoService interface {
	Crear(ctx context.Context, req dto.CrearTipoEquipoRequest) (*dto.TipoEquipoResponse, error)
	Actualizar(ctx context.Context, req dto.ActualizarTipoEquipoRequest) (*dto.TipoEquipoResponse, error)
	Eliminar(ctx context.Context, tipoEquipoID int) error
	Obtener(ctx context.Context, tipoEquipoID int) (*dto.TipoEquipoResponse, error)
	Listar(ctx context.Context) ([]dto.TipoEquipoResponse, error)
}

type tipoEquipoService struct {
	tipos repository.TipoEquipoRepository
}

func NewTipoEquipoService(tipos repository.TipoEquipoRepository) TipoEquipoService {
	return &tipoEquipoService{tipos: tipos}
}

func (s *tipoEquipoService) Crear(ctx context.Context, req dto.CrearTipoEquipoRequest) (*dto.TipoEquipoResponse, error) {
	tipo := &model.TipoEquipo{Nombre: req.Nombre, Descripcion: req.Descripcion}
	if err := s.tipos.Create(ctx, tipo); err != nil {
		return nil, err
	}
	resp := toTipoEquipoResponse(tipo)
	return &resp, nil
}

func (s *tipoEquipoService) Actualizar(ctx context.Context, req dto.ActualizarTipoEquipoRequest) (*dto.TipoEquipoResponse, error) {
	tipo := &model.TipoEquipo{ID: req.TipoEquipoID, Nombre: req.Nombre, Descripcion: req.Descripcion}
	rows, err := s.tipos.Update(ctx, tipo)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, apierror.NotFound("tipo de equipo %d no encontrado", req.TipoEquipoID)
	}
	return s.Obtener(ctx, req.TipoEquipoID)
}

func (s *tipoEquipoService) Eliminar(ctx context.Context, tipoEquipoID int) error {
	rows, err := s.tipos.Delete(ctx, tipoEquipoID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return apierror.NotFound("tipo de equipo %d no encontrado", tipoEquipoID)
	}
	return nil
}

func (s *tipoEquipoService) Obtener(ctx context.Context, tipoEquipoID int) (*dto.TipoEquipoResponse, error) {
	t, err := s.tipos.FindByID(ctx, tipoEquipoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("tipo de equipo %d no encontrado", tipoEquipoID)
		}
		return nil, err
	}
	resp := toTipoEquipoResponse(t)
	return &resp, nil
}

func (s *tipoEquipoService) Listar(ctx context.Context) ([]dto.TipoEquipoResponse, error) {
	tipos, err := s.tipos.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TipoEquipoResponse, 0, len(tipos))
	for i := range tipos {
		out = append(out, toTipoEquipoResponse(&tipos[i]))
	}
	return out, nil
}

func toTipoEquipoResponse(t *model.TipoEquipo) dto.TipoEquipoResponse {
	return dto.TipoEquipoResponse{ID: t.ID, Nombre: t.Nombre, Descripcion: t.Descripcion}
}

// ── Equipo adquirido ─────────────────────────────────────────────────────────

type EquipoService interface {
	Crear(ctx context.Context, req dto.CrearEquipoRequest) (*dto.EquipoResponse, error)
	Actualizar(ctx context.Context, req dto.ActualizarEquipoRequest) (*dto.EquipoResponse, error)
	Eliminar(ctx context.Context, equipoID int) error
	Obtener(ctx context.Context, equipoID int) (*dto.EquipoResponse, error)
	Listar(ctx context.Context) ([]dto.EquipoResponse, error)
}

type equipoService struct {
	equipos repository.EquipoRepository
	tipos   repository.TipoEquipoRepository
}

func NewEquipoService(equipos repository.EquipoRepository, tipos repository.TipoEquipoRepository) EquipoService {
	return &equipoService{equipos: equipos, tipos: tipos}
}

func (s *equipoService) buildEquipo(ctx context.Context, req dto.CrearEquipoRequest) (*model.EquipoAdquirido, error) {
	garantia, err := parseDatePtr("fecha_vencimiento_garantia", req.FechaVencimientoGarantia)
	if err != nil {
		return nil, err
	}

	if _, err := s.tipos.FindByID(ctx, req.TipoEquipoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.Validation("el tipo de equipo %d no existe", req.TipoEquipoID)
		}
		return nil, err
	}

	return &model.EquipoAdquirido{
		Modelo:                   req.Modelo,
		NumeroSerie:              req.NumeroSerie,
		FechaVencimientoGarantia: garantia,
		Estado:                   req.Estado,
		DetalleID:                req.DetalleID,
		TipoEquipoID:             req.TipoEquipoID,
	}, nil
}

func (s *equipoService) Crear(ctx context.Context, req dto.CrearEquipoRequest) (*dto.EquipoResponse, error) {
	equipo, err := s.buildEquipo(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := s.equipos.Create(ctx, equipo); err != nil {
		return nil, err
	}
	return s.Obtener(ctx, equipo.ID)
}

func (s *equipoService) Actualizar(ctx context.Context, req dto.ActualizarEquipoRequest) (*dto.EquipoResponse, error) {
	equipo, err := s.buildEquipo(ctx, req.CrearEquipoRequest)
	if err != nil {
		return nil, err
	}
	equipo.ID = req.EquipoID

	rows, err := s.equipos.Update(ctx, equipo)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, apierror.NotFound("equipo %d no encontrado", req.EquipoID)
	}
	return s.Obtener(ctx, req.EquipoID)
}

func (s *equipoService) Eliminar(ctx context.Context, equipoID int) error {
	rows, err := s.equipos.Delete(ctx, equipoID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return apierror.NotFound("equipo %d no encontrado", equipoID)
	}
	return nil
}

func (s *equipoService) Obtener(ctx context.Context, equipoID int) (*dto.EquipoResponse, error) {
	e, err := s.equipos.FindByID(ctx, equipoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("equipo %d no encontrado", equipoID)
		}
		return nil, err
	}
	resp := toEquipoResponse(e)
	return &resp, nil
}

func (s *equipoService) Listar(ctx context.Context) ([]dto.EquipoResponse, error) {
	equipos, err := s.equipos.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EquipoResponse, 0, len(equipos))
	for i := range equipos {
		out = append(out, toEquipoResponse(&equipos[i]))
	}
	return out, nil
}

func toEquipoResponse(e *model.EquipoAdquirido) dto.EquipoResponse {
	resp := dto.EquipoResponse{
		ID:                       e.ID,
		Modelo:                   e.Modelo,
		NumeroSerie:              e.NumeroSerie,
		FechaVencimientoGarantia: formatDatePtr(e.FechaVencimientoGarantia),
		Estado:                   e.Estado,
		DetalleID:                e.DetalleID,
		TipoEquipoID:             e.TipoEquipoID,
	}
	if e.TipoEquipo != nil {
		resp.TipoEquipo = e.TipoEquipo.Nombre
	}
	return resp
}
