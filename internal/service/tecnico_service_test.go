package service

import (
	"context"
	"testing"

	"github.com/Kevin2407/gestion-proveedores/internal/apierror"
	"github.com/Kevin2407/gestion-proveedores/internal/dto"
	"github.com/Kevin2407/gestion-proveedores/internal/model"
	"github.com/Kevin2407/gestion-proveedores/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

// stubTecnicoRepo is an in-memory TecnicoRepository over a known specialty
// catalog.
type stubTecnicoRepo struct {
	tecnicos       map[int]*model.Tecnico
	personas       map[int]*model.Persona
	asociaciones   map[int][]int // tecnico id -> especialidad ids
	especialidades map[int]model.Especialidad
	tecnicoSeq     int
	personaSeq     int
}

func newStubTecnicoRepo(catalogo ...model.Especialidad) *stubTecnicoRepo {
	r := &stubTecnicoRepo{
		tecnicos:       make(map[int]*model.Tecnico),
		personas:       make(map[int]*model.Persona),
		asociaciones:   make(map[int][]int),
		especialidades: make(map[int]model.Especialidad),
	}
	for _, e := range catalogo {
		r.especialidades[e.ID] = e
	}
	return r
}

func (r *stubTecnicoRepo) DB() *gorm.DB { return nil }

func (r *stubTecnicoRepo) CreatePersona(_ context.Context, _ *gorm.DB, p *model.Persona) error {
	r.personaSeq++
	p.ID = r.personaSeq
	r.personas[p.ID] = p
	return nil
}

func (r *stubTecnicoRepo) Create(_ context.Context, _ *gorm.DB, t *model.Tecnico) error {
	r.tecnicoSeq++
	t.ID = r.tecnicoSeq
	r.tecnicos[t.ID] = t
	return nil
}

func (r *stubTecnicoRepo) UpdatePersona(_ context.Context, _ *gorm.DB, p *model.Persona) error {
	if existing, ok := r.personas[p.ID]; ok {
		existing.Nombre = p.Nombre
		existing.Correo = p.Correo
		existing.Telefono = p.Telefono
	}
	return nil
}

func (r *stubTecnicoRepo) Update(_ context.Context, _ *gorm.DB, t *model.Tecnico) (int64, error) {
	existing, ok := r.tecnicos[t.ID]
	if !ok {
		return 0, nil
	}
	existing.Matricula = t.Matricula
	return 1, nil
}

func (r *stubTecnicoRepo) CreateEspecialidades(_ context.Context, _ *gorm.DB, tecnicoID int, ids []int) error {
	r.asociaciones[tecnicoID] = append(r.asociaciones[tecnicoID], ids...)
	return nil
}

func (r *stubTecnicoRepo) DeleteEspecialidades(_ context.Context, _ *gorm.DB, tecnicoID int) error {
	delete(r.asociaciones, tecnicoID)
	return nil
}

func (r *stubTecnicoRepo) FindByID(_ context.Context, id int) (*model.Tecnico, error) {
	t, ok := r.tecnicos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *t
	if persona, ok := r.personas[t.PersonaID]; ok {
		pc := *persona
		cp.Persona = &pc
	}
	cp.Especialidades = nil
	for _, eid := range r.asociaciones[id] {
		cp.Especialidades = append(cp.Especialidades, r.especialidades[eid])
	}
	return &cp, nil
}

func (r *stubTecnicoRepo) List(_ context.Context) ([]model.Tecnico, error) {
	var out []model.Tecnico
	for id := range r.tecnicos {
		t, _ := r.FindByID(context.Background(), id)
		out = append(out, *t)
	}
	return out, nil
}

func (r *stubTecnicoRepo) ListEspecialidades(_ context.Context) ([]model.Especialidad, error) {
	var out []model.Especialidad
	for _, e := range r.especialidades {
		out = append(out, e)
	}
	return out, nil
}

func (r *stubTecnicoRepo) CountEspecialidades(_ context.Context, ids []int) (int64, error) {
	var n int64
	for _, id := range ids {
		if _, ok := r.especialidades[id]; ok {
			n++
		}
	}
	return n, nil
}

func (r *stubTecnicoRepo) Delete(_ context.Context, _ *gorm.DB, tecnicoID int) (int64, error) {
	if _, ok := r.tecnicos[tecnicoID]; !ok {
		return 0, nil
	}
	delete(r.tecnicos, tecnicoID)
	return 1, nil
}

func (r *stubTecnicoRepo) DeletePersona(_ context.Context, _ *gorm.DB, personaID int) error {
	delete(r.personas, personaID)
	return nil
}

var _ repository.TecnicoRepository = (*stubTecnicoRepo)(nil)

func newTecnicoServiceForTest() (TecnicoService, *stubTecnicoRepo) {
	repo := newStubTecnicoRepo(
		model.Especialidad{ID: 1, Nombre: "Electricidad"},
		model.Especialidad{ID: 2, Nombre: "Refrigeracion"},
		model.Especialidad{ID: 3, Nombre: "Redes"},
	)
	return NewTecnicoService(repo), repo
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestCrearTecnicoConEspecialidades(t *testing.T) {
	svc, repo := newTecnicoServiceForTest()

	resp, err := svc.Crear(context.Background(), dto.CrearTecnicoRequest{
		Nombre:         "Laura Gomez",
		Matricula:      ptr("MAT-100"),
		Especialidades: []int{1, 3},
	})
	require.NoError(t, err)

	assert.Equal(t, "Laura Gomez", resp.Nombre)
	require.Len(t, resp.Especialidades, 2)
	assert.Len(t, repo.asociaciones[resp.ID], 2)
}

func TestCrearTecnicoEspecialidadInexistente(t *testing.T) {
	svc, repo := newTecnicoServiceForTest()

	_, err := svc.Crear(context.Background(), dto.CrearTecnicoRequest{
		Nombre:         "Laura Gomez",
		Especialidades: []int{1, 99},
	})
	require.Error(t, err)
	assert.True(t, apierror.IsValidation(err))
	assert.Empty(t, repo.tecnicos)
}

func TestCrearTecnicoEspecialidadRepetida(t *testing.T) {
	svc, _ := newTecnicoServiceForTest()

	_, err := svc.Crear(context.Background(), dto.CrearTecnicoRequest{
		Nombre:         "Laura Gomez",
		Especialidades: []int{1, 1},
	})
	require.Error(t, err)
	assert.True(t, apierror.IsValidation(err))
}

func TestActualizarTecnicoReemplazaEspecialidades(t *testing.T) {
	svc, repo := newTecnicoServiceForTest()

	creado, err := svc.Crear(context.Background(), dto.CrearTecnicoRequest{
		Nombre:         "Laura Gomez",
		Especialidades: []int{1, 2},
	})
	require.NoError(t, err)

	resp, err := svc.Actualizar(context.Background(), dto.ActualizarTecnicoRequest{
		TecnicoID: creado.ID,
		CrearTecnicoRequest: dto.CrearTecnicoRequest{
			Nombre:         "Laura Gomez",
			Especialidades: []int{3},
		},
	})
	require.NoError(t, err)

	require.Len(t, resp.Especialidades, 1, "el conjunto anterior debe reemplazarse completo")
	assert.Equal(t, "Redes", resp.Especialidades[0].Nombre)
	assert.Equal(t, []int{3}, repo.asociaciones[creado.ID])
}

func TestActualizarTecnicoSinEspecialidadesLasQuita(t *testing.T) {
	svc, repo := newTecnicoServiceForTest()

	creado, err := svc.Crear(context.Background(), dto.CrearTecnicoRequest{
		Nombre:         "Laura Gomez",
		Especialidades: []int{1, 2},
	})
	require.NoError(t, err)

	resp, err := svc.Actualizar(context.Background(), dto.ActualizarTecnicoRequest{
		TecnicoID:           creado.ID,
		CrearTecnicoRequest: dto.CrearTecnicoRequest{Nombre: "Laura Gomez"},
	})
	require.NoError(t, err)

	assert.Empty(t, resp.Especialidades)
	assert.Empty(t, repo.asociaciones[creado.ID])
}

func TestEliminarTecnicoBorraAsociacionesYPersona(t *testing.T) {
	svc, repo := newTecnicoServiceForTest()

	creado, err := svc.Crear(context.Background(), dto.CrearTecnicoRequest{
		Nombre:         "Laura Gomez",
		Especialidades: []int{1},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Eliminar(context.Background(), creado.ID))
	assert.Empty(t, repo.tecnicos)
	assert.Empty(t, repo.asociaciones)
	assert.Empty(t, repo.personas)
}

func TestEliminarTecnicoInexistente(t *testing.T) {
	svc, _ := newTecnicoServiceForTest()

	err := svc.Eliminar(context.Background(), 9)
	require.Error(t, err)
	assert.True(t, apierror.IsNotFound(err))
}
