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

// TecnicoService manages technicians and their specialty set. Updates replace
// the full Tecnico_Especialidad association list, never patch it.
type TecnicoService interface {
	Crear(ctx context.Context, req dto.CrearTecnicoRequest) (*dto.TecnicoResponse, error)
	Actualizar(ctx context.Context, req dto.ActualizarTecnicoRequest) (*dto.TecnicoResponse, error)
	Eliminar(ctx context.Context, tecnicoID int) error
	Obtener(ctx context.Context, tecnicoID int) (*dto.TecnicoResponse, error)
	Listar(ctx context.Context) ([]dto.TecnicoResponse, error)
	ListarEspecialidades(ctx context.Context) ([]dto.EspecialidadResponse, error)
}

type tecnicoService struct {
	tecnicos repository.TecnicoRepository
}

func NewTecnicoService(tecnicos repository.TecnicoRepository) TecnicoService {
	return &tecnicoService{tecnicos: tecnicos}
}

// validarEspecialidades rejects ids missing from the Especialidad catalog
// before any transaction opens.
func (s *tecnicoService) validarEspecialidades(ctx context.Context, ids []int) error {
	seen := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		if id <= 0 {
			return apierror.Validation("especialidades: ids deben ser mayores a cero")
		}
		if _, dup := seen[id]; dup {
			return apierror.Validation("especialidades: id %d repetido", id)
		}
		seen[id] = struct{}{}
	}
	if len(ids) == 0 {
		return nil
	}
	count, err := s.tecnicos.CountEspecialidades(ctx, ids)
	if err != nil {
		return err
	}
	if count != int64(len(ids)) {
		return apierror.Validation("especialidades: alguna de las especialidades no existe")
	}
	return nil
}

func (s *tecnicoService) Crear(ctx context.Context, req dto.CrearTecnicoRequest) (*dto.TecnicoResponse, error) {
	if err := s.validarEspecialidades(ctx, req.Especialidades); err != nil {
		return nil, err
	}

	tecnico := &model.Tecnico{Matricula: req.Matricula}
	err := runTx(ctx, s.tecnicos.DB(), func(tx *gorm.DB) error {
		persona := &model.Persona{Nombre: req.Nombre, Correo: req.Correo, Telefono: req.Telefono}
		if err := s.tecnicos.CreatePersona(ctx, tx, persona); err != nil {
			return err
		}
		tecnico.PersonaID = persona.ID
		if err := s.tecnicos.Create(ctx, tx, tecnico); err != nil {
			return err
		}
		return s.tecnicos.CreateEspecialidades(ctx, tx, tecnico.ID, req.Especialidades)
	})
	if err != nil {
		return nil, err
	}

	return s.Obtener(ctx, tecnico.ID)
}

func (s *tecnicoService) Actualizar(ctx context.Context, req dto.ActualizarTecnicoRequest) (*dto.TecnicoResponse, error) {
	if err := s.validarEspecialidades(ctx, req.Especialidades); err != nil {
		return nil, err
	}

	existing, err := s.findTecnico(ctx, req.TecnicoID)
	if err != nil {
		return nil, err
	}

	err = runTx(ctx, s.tecnicos.DB(), func(tx *gorm.DB) error {
		persona := &model.Persona{ID: existing.PersonaID, Nombre: req.Nombre, Correo: req.Correo, Telefono: req.Telefono}
		if err := s.tecnicos.UpdatePersona(ctx, tx, persona); err != nil {
			return err
		}
		rows, err := s.tecnicos.Update(ctx, tx, &model.Tecnico{ID: req.TecnicoID, Matricula: req.Matricula})
		if err != nil {
			return err
		}
		if rows == 0 {
			return apierror.NotFound("tecnico %d no encontrado", req.TecnicoID)
		}
		if err := s.tecnicos.DeleteEspecialidades(ctx, tx, req.TecnicoID); err != nil {
			return err
		}
		return s.tecnicos.CreateEspecialidades(ctx, tx, req.TecnicoID, req.Especialidades)
	})
	if err != nil {
		return nil, err
	}

	return s.Obtener(ctx, req.TecnicoID)
}

func (s *tecnicoService) Eliminar(ctx context.Context, tecnicoID int) error {
	existing, err := s.findTecnico(ctx, tecnicoID)
	if err != nil {
		return err
	}

	return runTx(ctx, s.tecnicos.DB(), func(tx *gorm.DB) error {
		if err := s.tecnicos.DeleteEspecialidades(ctx, tx, tecnicoID); err != nil {
			return err
		}
		rows, err := s.tecnicos.Delete(ctx, tx, tecnicoID)
		if err != nil {
			return err
		}
		if rows == 0 {
			return apierror.NotFound("tecnico %d no encontrado", tecnicoID)
		}
		return s.tecnicos.DeletePersona(ctx, tx, existing.PersonaID)
	})
}

func (s *tecnicoService) Obtener(ctx context.Context, tecnicoID int) (*dto.TecnicoResponse, error) {
	t, err := s.findTecnico(ctx, tecnicoID)
	if err != nil {
		return nil, err
	}
	resp := toTecnicoResponse(t)
	return &resp, nil
}

func (s *tecnicoService) Listar(ctx context.Context) ([]dto.TecnicoResponse, error) {
	tecnicos, err := s.tecnicos.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TecnicoResponse, 0, len(tecnicos))
	for i := range tecnicos {
		out = append(out, toTecnicoResponse(&tecnicos[i]))
	}
	return out, nil
}

func (s *tecnicoService) ListarEspecialidades(ctx context.Context) ([]dto.EspecialidadResponse, error) {
	especialidades, err := s.tecnicos.ListEspecialidades(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EspecialidadResponse, 0, len(especialidades))
	for _, e := range especialidades {
		out = append(out, dto.EspecialidadResponse{ID: e.ID, Nombre: e.Nombre})
	}
	return out, nil
}

func (s *tecnicoService) findTecnico(ctx context.Context, id int) (*model.Tecnico, error) {
	t, err := s.tecnicos.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("tecnico %d no encontrado", id)
		}
		return nil, err
	}
	return t, nil
}

func toTecnicoResponse(t *model.Tecnico) dto.TecnicoResponse {
	resp := dto.TecnicoResponse{
		ID:             t.ID,
		Matricula:      t.Matricula,
		Especialidades: make([]dto.EspecialidadResponse, 0, len(t.Especialidades)),
	}
	if t.Persona != nil {
		resp.Nombre = t.Persona.Nombre
		resp.Correo = t.Persona.Correo
		resp.Telefono = t.Persona.Telefono
	}
	for _, e := range t.Especialidades {
		resp.Especialidades = append(resp.Especialidades, dto.EspecialidadResponse{ID: e.ID, Nombre: e.Nombre})
	}
	return resp
}
