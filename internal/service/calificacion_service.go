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

type CalificacionService interface {
	Crear(ctx context.Context, req dto.CrearCalificacionRequest) (*dto.CalificacionResponse, error)
	Actualizar(ctx context.Context, req dto.ActualizarCalificacionRequest) (*dto.CalificacionResponse, error)
	Eliminar(ctx context.Context, calificacionID int) error
	Obtener(ctx context.Context, calificacionID int) (*dto.CalificacionResponse, error)
	Listar(ctx context.Context) ([]dto.CalificacionResponse, error)
}

type calificacionService struct {
	calificaciones repository.CalificacionRepository
	proveedores    repository.ProveedorRepository
}

func NewCalificacionService(calificaciones repository.CalificacionRepository, proveedores repository.ProveedorRepository) CalificacionService {
	return &calificacionService{calificaciones: calificaciones, proveedores: proveedores}
}

func (s *calificacionService) buildCalificacion(ctx context.Context, req dto.CrearCalificacionRequest) (*model.Calificacion, error) {
	if req.Puntaje < 1 || req.Puntaje > 5 {
		return nil, apierror.Validation("puntaje debe estar entre 1 y 5")
	}
	fecha, err := parseDate("fecha_evaluacion", req.FechaEvaluacion)
	if err != nil {
		return nil, err
	}

	if _, err := s.proveedores.FindByID(ctx, req.ProveedorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.Validation("el proveedor %d no existe", req.ProveedorID)
		}
		return nil, err
	}

	return &model.Calificacion{
		Puntaje:         req.Puntaje,
		Comentarios:     req.Comentarios,
		FechaEvaluacion: fecha,
		ProveedorID:     req.ProveedorID,
	}, nil
}

func (s *calificacionService) Crear(ctx context.Context, req dto.CrearCalificacionRequest) (*dto.CalificacionResponse, error) {
	calificacion, err := s.buildCalificacion(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := s.calificaciones.Create(ctx, calificacion); err != nil {
		return nil, err
	}
	return s.Obtener(ctx, calificacion.ID)
}

func (s *calificacionService) Actualizar(ctx context.Context, req dto.ActualizarCalificacionRequest) (*dto.CalificacionResponse, error) {
	calificacion, err := s.buildCalificacion(ctx, req.CrearCalificacionRequest)
	if err != nil {
		return nil, err
	}
	calificacion.ID = req.CalificacionID

	rows, err := s.calificaciones.Update(ctx, calificacion)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, apierror.NotFound("calificacion %d no encontrada", req.CalificacionID)
	}
	return s.Obtener(ctx, req.CalificacionID)
}

func (s *calificacionService) Eliminar(ctx context.Context, calificacionID int) error {
	rows, err := s.calificaciones.Delete(ctx, calificacionID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return apierror.NotFound("calificacion %d no encontrada", calificacionID)
	}
	return nil
}

func (s *calificacionService) Obtener(ctx context.Context, calificacionID int) (*dto.CalificacionResponse, error) {
	c, err := s.calificaciones.FindByID(ctx, calificacionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("calificacion %d no encontrada", calificacionID)
		}
		return nil, err
	}
	resp := toCalificacionResponse(c)
	return &resp, nil
}

func (s *calificacionService) Listar(ctx context.Context) ([]dto.CalificacionResponse, error) {
	calificaciones, err := s.calificaciones.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CalificacionResponse, 0, len(calificaciones))
	for i := range calificaciones {
		out = append(out, toCalificacionResponse(&calificaciones[i]))
	}
	return out, nil
}

func toCalificacionResponse(c *model.Calificacion) dto.CalificacionResponse {
	resp := dto.CalificacionResponse{
		ID:              c.ID,
		Puntaje:         c.Puntaje,
		Comentarios:     c.Comentarios,
		FechaEvaluacion: formatDate(c.FechaEvaluacion),
		ProveedorID:     c.ProveedorID,
	}
	if c.Proveedor != nil && c.Proveedor.Persona != nil {
		resp.ProveedorNombre = c.Proveedor.Persona.Nombre
	}
	return resp
}
