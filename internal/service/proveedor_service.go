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

// ProveedorService writes the Persona/Direccion/Proveedor trio atomically and
// owns the multi-table cascade that tears a supplier down.
type ProveedorService interface {
	Crear(ctx context.Context, req dto.CrearProveedorRequest) (*dto.ProveedorResponse, error)
	Actualizar(ctx context.Context, req dto.ActualizarProveedorRequest) (*dto.ProveedorResponse, error)
	Eliminar(ctx context.Context, proveedorID int) error
	Obtener(ctx context.Context, proveedorID int) (*dto.ProveedorResponse, error)
	Listar(ctx context.Context) ([]dto.ProveedorResponse, error)
}

type proveedorService struct {
	proveedores repository.ProveedorRepository
	fallas      repository.FallaRepository
}

func NewProveedorService(proveedores repository.ProveedorRepository, fallas repository.FallaRepository) ProveedorService {
	return &proveedorService{proveedores: proveedores, fallas: fallas}
}

func (s *proveedorService) Crear(ctx context.Context, req dto.CrearProveedorRequest) (*dto.ProveedorResponse, error) {
	fechaAlta, err := parseDate("fecha_alta", req.FechaAlta)
	if err != nil {
		return nil, err
	}

	proveedor := &model.Proveedor{CUIT: req.CUIT, FechaAlta: fechaAlta}
	err = runTx(ctx, s.proveedores.DB(), func(tx *gorm.DB) error {
		persona := &model.Persona{Nombre: req.Nombre, Correo: req.Correo, Telefono: req.Telefono}
		if err := s.proveedores.CreatePersona(ctx, tx, persona); err != nil {
			return err
		}
		if req.Direccion != nil {
			dir := &model.Direccion{
				Calle:        req.Direccion.Calle,
				Ciudad:       req.Direccion.Ciudad,
				CodigoPostal: req.Direccion.CodigoPostal,
				PersonaID:    persona.ID,
			}
			if err := s.proveedores.CreateDireccion(ctx, tx, dir); err != nil {
				return err
			}
		}
		proveedor.PersonaID = persona.ID
		return s.proveedores.Create(ctx, tx, proveedor)
	})
	if err != nil {
		return nil, err
	}

	return s.Obtener(ctx, proveedor.ID)
}

func (s *proveedorService) Actualizar(ctx context.Context, req dto.ActualizarProveedorRequest) (*dto.ProveedorResponse, error) {
	fechaAlta, err := parseDate("fecha_alta", req.FechaAlta)
	if err != nil {
		return nil, err
	}

	existing, err := s.findProveedor(ctx, req.ProveedorID)
	if err != nil {
		return nil, err
	}

	err = runTx(ctx, s.proveedores.DB(), func(tx *gorm.DB) error {
		persona := &model.Persona{ID: existing.PersonaID, Nombre: req.Nombre, Correo: req.Correo, Telefono: req.Telefono}
		if err := s.proveedores.UpdatePersona(ctx, tx, persona); err != nil {
			return err
		}

		var dir *model.Direccion
		if req.Direccion != nil {
			dir = &model.Direccion{
				Calle:        req.Direccion.Calle,
				Ciudad:       req.Direccion.Ciudad,
				CodigoPostal: req.Direccion.CodigoPostal,
			}
		}
		if err := s.proveedores.ReplaceDireccion(ctx, tx, existing.PersonaID, dir); err != nil {
			return err
		}

		rows, err := s.proveedores.Update(ctx, tx, &model.Proveedor{ID: req.ProveedorID, CUIT: req.CUIT, FechaAlta: fechaAlta})
		if err != nil {
			return err
		}
		if rows == 0 {
			return apierror.NotFound("proveedor %d no encontrado", req.ProveedorID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Obtener(ctx, req.ProveedorID)
}

// Eliminar tears down a supplier and everything hanging off it in dependency
// order: detalles, ordenes, calificaciones, fallas, direccion, proveedor,
// persona. Contracts are not part of the cascade; deleting a supplier that
// still has contracts fails on the foreign key and the driver error surfaces.
func (s *proveedorService) Eliminar(ctx context.Context, proveedorID int) error {
	existing, err := s.findProveedor(ctx, proveedorID)
	if err != nil {
		return err
	}

	return runTx(ctx, s.proveedores.DB(), func(tx *gorm.DB) error {
		if err := s.proveedores.DeleteDetallesByProveedor(ctx, tx, proveedorID); err != nil {
			return err
		}
		if err := s.proveedores.DeleteOrdenesByProveedor(ctx, tx, proveedorID); err != nil {
			return err
		}
		if err := s.proveedores.DeleteCalificacionesByProveedor(ctx, tx, proveedorID); err != nil {
			return err
		}
		if err := s.fallas.DeleteByProveedor(ctx, tx, proveedorID); err != nil {
			return err
		}
		if err := s.proveedores.DeleteDireccionByPersona(ctx, tx, existing.PersonaID); err != nil {
			return err
		}
		rows, err := s.proveedores.Delete(ctx, tx, proveedorID)
		if err != nil {
			return err
		}
		if rows == 0 {
			return apierror.NotFound("proveedor %d no encontrado", proveedorID)
		}
		return s.proveedores.DeletePersona(ctx, tx, existing.PersonaID)
	})
}

func (s *proveedorService) Obtener(ctx context.Context, proveedorID int) (*dto.ProveedorResponse, error) {
	p, err := s.findProveedor(ctx, proveedorID)
	if err != nil {
		return nil, err
	}
	resp := toProveedorResponse(p)
	return &resp, nil
}

func (s *proveedorService) Listar(ctx context.Context) ([]dto.ProveedorResponse, error) {
	proveedores, err := s.proveedores.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProveedorResponse, 0, len(proveedores))
	for i := range proveedores {
		out = append(out, toProveedorResponse(&proveedores[i]))
	}
	return out, nil
}

func (s *proveedorService) findProveedor(ctx context.Context, id int) (*model.Proveedor, error) {
	p, err := s.proveedores.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("proveedor %d no encontrado", id)
		}
		return nil, err
	}
	return p, nil
}

func toProveedorResponse(p *model.Proveedor) dto.ProveedorResponse {
	resp := dto.ProveedorResponse{
		ID:        p.ID,
		CUIT:      p.CUIT,
		FechaAlta: formatDate(p.FechaAlta),
	}
	if p.Persona != nil {
		resp.Nombre = p.Persona.Nombre
		resp.Correo = p.Persona.Correo
		resp.Telefono = p.Persona.Telefono
		if p.Persona.Direccion != nil {
			resp.Direccion = &dto.DireccionResponse{
				Calle:        p.Persona.Direccion.Calle,
				Ciudad:       p.Persona.Direccion.Ciudad,
				CodigoPostal: p.Persona.Direccion.CodigoPostal,
			}
		}
	}
	return resp
}
