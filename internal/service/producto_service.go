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

type ProductoService interface {
	Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error)
	Actualizar(ctx context.Context, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error)
	Eliminar(ctx context.Context, productoID int) error
	Obtener(ctx context.Context, productoID int) (*dto.ProductoResponse, error)
	Listar(ctx context.Context) ([]dto.ProductoResponse, error)
}

type productoService struct {
	productos repository.ProductoRepository
}

func NewProductoService(productos repository.ProductoRepository) ProductoService {
	return &productoService{productos: productos}
}

func (s *productoService) Crear(ctx context.Context, req dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	producto := &model.Producto{Nombre: req.Nombre, Descripcion: req.Descripcion}
	if err := s.productos.Create(ctx, producto); err != nil {
		return nil, err
	}
	resp := toProductoResponse(producto)
	return &resp, nil
}

func (s *productoService) Actualizar(ctx context.Context, req dto.ActualizarProductoRequest) (*dto.ProductoResponse, error) {
	producto := &model.Producto{ID: req.ProductoID, Nombre: req.Nombre, Descripcion: req.Descripcion}
	rows, err := s.productos.Update(ctx, producto)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, apierror.NotFound("producto %d no encontrado", req.ProductoID)
	}
	return s.Obtener(ctx, req.ProductoID)
}

func (s *productoService) Eliminar(ctx context.Context, productoID int) error {
	rows, err := s.productos.Delete(ctx, productoID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return apierror.NotFound("producto %d no encontrado", productoID)
	}
	return nil
}

func (s *productoService) Obtener(ctx context.Context, productoID int) (*dto.ProductoResponse, error) {
	p, err := s.productos.FindByID(ctx, productoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("producto %d no encontrado", productoID)
		}
		return nil, err
	}
	resp := toProductoResponse(p)
	return &resp, nil
}

func (s *productoService) Listar(ctx context.Context) ([]dto.ProductoResponse, error) {
	productos, err := s.productos.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductoResponse, 0, len(productos))
	for i := range productos {
		out = append(out, toProductoResponse(&productos[i]))
	}
	return out, nil
}

func toProductoResponse(p *model.Producto) dto.ProductoResponse {
	return dto.ProductoResponse{ID: p.ID, Nombre: p.Nombre, Descripcion: p.Descripcion}
}
