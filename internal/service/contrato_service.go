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

type ContratoService interface {
	Crear(ctx context.Context, req dto.CrearContratoRequest) (*dto.ContratoResponse, error)
	Actualizar(ctx context.Context, req dto.ActualizarContratoRequest) (*dto.ContratoResponse, error)
	Eliminar(ctx context.Context, contratoID int) error
	Obtener(ctx context.Context, contratoID int) (*dto.ContratoResponse, error)
	Listar(ctx context.Context, proveedorID *int) ([]dto.ContratoResponse, error)
}

type contratoService struct {
	contratos   repository.ContratoRepository
	proveedores repository.ProveedorRepository
}

func NewContratoService(contratos repository.ContratoRepository, proveedores repository.ProveedorRepository) ContratoService {
	return &contratoService{contratos: contratos, proveedores: proveedores}
}

func (s *contratoService) buildContrato(ctx context.Context, req dto.CrearContratoRequest) (*model.Contrato, error) {
	fechaInicio, err := parseDate("fecha_inicio", req.FechaInicio)
	if err != nil {
		return nil, err
	}
	fechaVencimiento, err := parseDate("fecha_vencimiento", req.FechaVencimiento)
	if err != nil {
		return nil, err
	}
	if fechaVencimiento.Before(fechaInicio) {
		return nil, apierror.Validation("fecha_vencimiento no puede ser anterior a fecha_inicio")
	}
	if req.MontoAnual.IsNegative() {
		return nil, apierror.Validation("monto_anual no puede ser negativo")
	}

	if _, err := s.proveedores.FindByID(ctx, req.ProveedorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.Validation("el proveedor %d no existe", req.ProveedorID)
		}
		return nil, err
	}

	return &model.Contrato{
		Nombre:           req.Nombre,
		FechaInicio:      fechaInicio,
		FechaVencimiento: fechaVencimiento,
		MontoAnual:       req.MontoAnual,
		RutaArchivo:      req.RutaArchivo,
		ProveedorID:      req.ProveedorID,
	}, nil
}

func (s *contratoService) Crear(ctx context.Context, req dto.CrearContratoRequest) (*dto.ContratoResponse, error) {
	contrato, err := s.buildContrato(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := s.contratos.Create(ctx, contrato); err != nil {
		return nil, err
	}
	return s.Obtener(ctx, contrato.ID)
}

func (s *contratoService) Actualizar(ctx context.Context, req dto.ActualizarContratoRequest) (*dto.ContratoResponse, error) {
	contrato, err := s.buildContrato(ctx, req.CrearContratoRequest)
	if err != nil {
		return nil, err
	}
	contrato.ID = req.ContratoID

	rows, err := s.contratos.Update(ctx, contrato)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, apierror.NotFound("contrato %d no encontrado", req.ContratoID)
	}
	return s.Obtener(ctx, req.ContratoID)
}

func (s *contratoService) Eliminar(ctx context.Context, contratoID int) error {
	rows, err := s.contratos.Delete(ctx, contratoID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return apierror.NotFound("contrato %d no encontrado", contratoID)
	}
	return nil
}

func (s *contratoService) Obtener(ctx context.Context, contratoID int) (*dto.ContratoResponse, error) {
	c, err := s.contratos.FindByID(ctx, contratoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("contrato %d no encontrado", contratoID)
		}
		return nil, err
	}
	resp := toContratoResponse(c)
	return &resp, nil
}

func (s *contratoService) Listar(ctx context.Context, proveedorID *int) ([]dto.ContratoResponse, error) {
	var (
		contratos []model.Contrato
		err       error
	)
	if proveedorID != nil {
		contratos, err = s.contratos.ListByProveedor(ctx, *proveedorID)
	} else {
		contratos, err = s.contratos.List(ctx)
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.ContratoResponse, 0, len(contratos))
	for i := range contratos {
		out = append(out, toContratoResponse(&contratos[i]))
	}
	return out, nil
}

func toContratoResponse(c *model.Contrato) dto.ContratoResponse {
	resp := dto.ContratoResponse{
		ID:               c.ID,
		Nombre:           c.Nombre,
		FechaInicio:      formatDate(c.FechaInicio),
		FechaVencimiento: formatDate(c.FechaVencimiento),
		MontoAnual:       c.MontoAnual,
		RutaArchivo:      c.RutaArchivo,
		ProveedorID:      c.ProveedorID,
	}
	if c.Proveedor != nil && c.Proveedor.Persona != nil {
		resp.ProveedorNombre = c.Proveedor.Persona.Nombre
	}
	return resp
}
