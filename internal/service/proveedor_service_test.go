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

// stubProveedorRepo is an in-memory ProveedorRepository that records every
// cascade step in call order.
type stubProveedorRepo struct {
	proveedores map[int]*model.Proveedor
	personas    map[int]*model.Persona
	direcciones map[int]*model.Direccion // by persona id
	provSeq     int
	personaSeq  int
	calls       []string
}

func newStubProveedorRepo() *stubProveedorRepo {
	return &stubProveedorRepo{
		proveedores: make(map[int]*model.Proveedor),
		personas:    make(map[int]*model.Persona),
		direcciones: make(map[int]*model.Direccion),
	}
}

func (r *stubProveedorRepo) DB() *gorm.DB { return nil }

func (r *stubProveedorRepo) CreatePersona(_ context.Context, _ *gorm.DB, p *model.Persona) error {
	r.personaSeq++
	p.ID = r.personaSeq
	r.personas[p.ID] = p
	return nil
}

func (r *stubProveedorRepo) CreateDireccion(_ context.Context, _ *gorm.DB, d *model.Direccion) error {
	r.direcciones[d.PersonaID] = d
	return nil
}

func (r *stubProveedorRepo) Create(_ context.Context, _ *gorm.DB, p *model.Proveedor) error {
	r.provSeq++
	p.ID = r.provSeq
	r.proveedores[p.ID] = p
	return nil
}

func (r *stubProveedorRepo) UpdatePersona(_ context.Context, _ *gorm.DB, p *model.Persona) error {
	existing, ok := r.personas[p.ID]
	if ok {
		existing.Nombre = p.Nombre
		existing.Correo = p.Correo
		existing.Telefono = p.Telefono
	}
	return nil
}

func (r *stubProveedorRepo) ReplaceDireccion(_ context.Context, _ *gorm.DB, personaID int, d *model.Direccion) error {
	delete(r.direcciones, personaID)
	if d != nil {
		d.PersonaID = personaID
		r.direcciones[personaID] = d
	}
	return nil
}

func (r *stubProveedorRepo) Update(_ context.Context, _ *gorm.DB, p *model.Proveedor) (int64, error) {
	existing, ok := r.proveedores[p.ID]
	if !ok {
		return 0, nil
	}
	existing.CUIT = p.CUIT
	existing.FechaAlta = p.FechaAlta
	return 1, nil
}

func (r *stubProveedorRepo) FindByID(_ context.Context, id int) (*model.Proveedor, error) {
	p, ok := r.proveedores[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	if persona, ok := r.personas[p.PersonaID]; ok {
		pc := *persona
		if dir, ok := r.direcciones[persona.ID]; ok {
			pc.Direccion = dir
		}
		cp.Persona = &pc
	} else if p.Persona != nil {
		cp.Persona = p.Persona
	}
	return &cp, nil
}

func (r *stubProveedorRepo) List(_ context.Context) ([]model.Proveedor, error) {
	var out []model.Proveedor
	for id := range r.proveedores {
		p, _ := r.FindByID(context.Background(), id)
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProveedorRepo) DeleteDetallesByProveedor(_ context.Context, _ *gorm.DB, _ int) error {
	r.calls = append(r.calls, "detalles")
	return nil
}

func (r *stubProveedorRepo) DeleteOrdenesByProveedor(_ context.Context, _ *gorm.DB, _ int) error {
	r.calls = append(r.calls, "ordenes")
	return nil
}

func (r *stubProveedorRepo) DeleteCalificacionesByProveedor(_ context.Context, _ *gorm.DB, _ int) error {
	r.calls = append(r.calls, "calificaciones")
	return nil
}

func (r *stubProveedorRepo) DeleteDireccionByPersona(_ context.Context, _ *gorm.DB, personaID int) error {
	r.calls = append(r.calls, "direccion")
	delete(r.direcciones, personaID)
	return nil
}

func (r *stubProveedorRepo) Delete(_ context.Context, _ *gorm.DB, proveedorID int) (int64, error) {
	r.calls = append(r.calls, "proveedor")
	if _, ok := r.proveedores[proveedorID]; !ok {
		return 0, nil
	}
	delete(r.proveedores, proveedorID)
	return 1, nil
}

func (r *stubProveedorRepo) DeletePersona(_ context.Context, _ *gorm.DB, personaID int) error {
	r.calls = append(r.calls, "persona")
	delete(r.personas, personaID)
	return nil
}

var _ repository.ProveedorRepository = (*stubProveedorRepo)(nil)

// ── Tests ─────────────────────────────────────────────────────────────────────

func newProveedorServiceForTest() (ProveedorService, *stubProveedorRepo, *stubFallaRepo) {
	provRepo := newStubProveedorRepo()
	fallaRepo := newStubFallaRepo(fullFallaColumns())
	fallaRepo.onDeleteByProveedor = func(int) {
		provRepo.calls = append(provRepo.calls, "fallas")
	}
	return NewProveedorService(provRepo, fallaRepo), provRepo, fallaRepo
}

func TestCrearProveedorConDireccion(t *testing.T) {
	svc, repo, _ := newProveedorServiceForTest()

	cp := "1900"
	resp, err := svc.Crear(context.Background(), dto.CrearProveedorRequest{
		Nombre:    "Suministros SA",
		CUIT:      "30-11111111-1",
		FechaAlta: "2024-01-15",
		Direccion: &dto.DireccionInput{Calle: "Calle 7 1234", Ciudad: "La Plata", CodigoPostal: &cp},
	})
	require.NoError(t, err)

	assert.Equal(t, "Suministros SA", resp.Nombre)
	assert.Equal(t, "2024-01-15", resp.FechaAlta)
	require.NotNil(t, resp.Direccion)
	assert.Equal(t, "La Plata", resp.Direccion.Ciudad)
	assert.Len(t, repo.personas, 1)
	assert.Len(t, repo.direcciones, 1)
}

func TestCrearProveedorFechaInvalida(t *testing.T) {
	svc, repo, _ := newProveedorServiceForTest()

	_, err := svc.Crear(context.Background(), dto.CrearProveedorRequest{
		Nombre:    "Suministros SA",
		CUIT:      "30-11111111-1",
		FechaAlta: "15-01-2024",
	})
	require.Error(t, err)
	assert.True(t, apierror.IsValidation(err))
	assert.Empty(t, repo.personas)
}

func TestActualizarProveedorReemplazaDireccion(t *testing.T) {
	svc, repo, _ := newProveedorServiceForTest()

	creado, err := svc.Crear(context.Background(), dto.CrearProveedorRequest{
		Nombre:    "Suministros SA",
		CUIT:      "30-11111111-1",
		FechaAlta: "2024-01-15",
		Direccion: &dto.DireccionInput{Calle: "Calle 7 1234", Ciudad: "La Plata"},
	})
	require.NoError(t, err)

	resp, err := svc.Actualizar(context.Background(), dto.ActualizarProveedorRequest{
		ProveedorID: creado.ID,
		CrearProveedorRequest: dto.CrearProveedorRequest{
			Nombre:    "Suministros SRL",
			CUIT:      "30-11111111-1",
			FechaAlta: "2024-01-15",
			Direccion: &dto.DireccionInput{Calle: "Av. 13 500", Ciudad: "Berisso"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Suministros SRL", resp.Nombre)
	require.NotNil(t, resp.Direccion)
	assert.Equal(t, "Berisso", resp.Direccion.Ciudad)
	assert.Len(t, repo.direcciones, 1)
}

func TestEliminarProveedorRespetaOrdenDeCascada(t *testing.T) {
	svc, repo, fallaRepo := newProveedorServiceForTest()

	creado, err := svc.Crear(context.Background(), dto.CrearProveedorRequest{
		Nombre:    "Suministros SA",
		CUIT:      "30-11111111-1",
		FechaAlta: "2024-01-15",
		Direccion: &dto.DireccionInput{Calle: "Calle 7 1234", Ciudad: "La Plata"},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Eliminar(context.Background(), creado.ID))

	assert.Equal(t, []string{"detalles", "ordenes", "calificaciones", "fallas", "direccion", "proveedor", "persona"}, repo.calls)
	assert.Equal(t, []int{creado.ID}, fallaRepo.deletedProveedores)
	assert.Empty(t, repo.proveedores)
	assert.Empty(t, repo.personas)
	assert.Empty(t, repo.direcciones)
}

func TestEliminarProveedorInexistenteNoBorraNada(t *testing.T) {
	svc, repo, fallaRepo := newProveedorServiceForTest()

	err := svc.Eliminar(context.Background(), 99)
	require.Error(t, err)
	assert.True(t, apierror.IsNotFound(err))
	assert.Empty(t, repo.calls)
	assert.Empty(t, fallaRepo.deletedProveedores)
}
