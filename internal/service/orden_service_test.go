package service

import (
	"context"
	"sync"
	"testing"

	"github.com/Kevin2407/gestion-proveedores/internal/apierror"
	"github.com/Kevin2407/gestion-proveedores/internal/dto"
	"github.com/Kevin2407/gestion-proveedores/internal/model"
	"github.com/Kevin2407/gestion-proveedores/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

// stubOrdenRepo is an in-memory OrdenRepository.
type stubOrdenRepo struct {
	mu        sync.Mutex
	ordenes   map[int]*model.OrdenDeCompra
	detalles  map[int][]model.DetalleOC
	ordenSeq  int
	detSeq    int
	proveedor *model.Proveedor // attached on reads
}

func newStubOrdenRepo(p *model.Proveedor) *stubOrdenRepo {
	return &stubOrdenRepo{
		ordenes:   make(map[int]*model.OrdenDeCompra),
		detalles:  make(map[int][]model.DetalleOC),
		proveedor: p,
	}
}

func (r *stubOrdenRepo) DB() *gorm.DB { return nil }

func (r *stubOrdenRepo) CreateHeader(_ context.Context, _ *gorm.DB, o *model.OrdenDeCompra) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ordenSeq++
	o.ID = r.ordenSeq
	cp := *o
	r.ordenes[o.ID] = &cp
	return nil
}

func (r *stubOrdenRepo) UpdateHeader(_ context.Context, _ *gorm.DB, o *model.OrdenDeCompra) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.ordenes[o.ID]; !ok {
		return 0, nil
	}
	cp := *o
	r.ordenes[o.ID] = &cp
	return 1, nil
}

func (r *stubOrdenRepo) DeleteHeader(_ context.Context, _ *gorm.DB, ordenID int) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.ordenes[ordenID]; !ok {
		return 0, nil
	}
	delete(r.ordenes, ordenID)
	return 1, nil
}

func (r *stubOrdenRepo) CreateDetalles(_ context.Context, _ *gorm.DB, detalles []model.DetalleOC) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range detalles {
		r.detSeq++
		detalles[i].ID = r.detSeq
		r.detalles[detalles[i].OrdenID] = append(r.detalles[detalles[i].OrdenID], detalles[i])
	}
	return nil
}

func (r *stubOrdenRepo) DeleteDetalles(_ context.Context, _ *gorm.DB, ordenID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.detalles, ordenID)
	return nil
}

func (r *stubOrdenRepo) FindByID(_ context.Context, id int) (*model.OrdenDeCompra, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.ordenes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *o
	cp.Detalles = append([]model.DetalleOC(nil), r.detalles[id]...)
	cp.Proveedor = r.proveedor
	return &cp, nil
}

func (r *stubOrdenRepo) List(_ context.Context) ([]model.OrdenDeCompra, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.OrdenDeCompra
	for id, o := range r.ordenes {
		cp := *o
		cp.Detalles = append([]model.DetalleOC(nil), r.detalles[id]...)
		cp.Proveedor = r.proveedor
		out = append(out, cp)
	}
	return out, nil
}

var _ repository.OrdenRepository = (*stubOrdenRepo)(nil)

// ── Helpers ───────────────────────────────────────────────────────────────────

func testProveedor() *model.Proveedor {
	return &model.Proveedor{
		ID:        1,
		CUIT:      "30-11111111-1",
		PersonaID: 1,
		Persona:   &model.Persona{ID: 1, Nombre: "Suministros SA"},
	}
}

func newOrdenServiceForTest(t *testing.T) (OrdenService, *stubOrdenRepo, *stubProveedorRepo) {
	t.Helper()
	provRepo := newStubProveedorRepo()
	prov := testProveedor()
	provRepo.proveedores[prov.ID] = prov
	ordenRepo := newStubOrdenRepo(prov)
	return NewOrdenService(ordenRepo, provRepo), ordenRepo, provRepo
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestCrearOrdenCalculaTotales(t *testing.T) {
	svc, _, _ := newOrdenServiceForTest(t)

	resp, err := svc.Crear(context.Background(), dto.CrearOrdenRequest{
		ProveedorID: 1,
		FechaPedido: "2024-05-10",
		Estado:      model.OrdenPendiente,
		Items: []dto.ItemOrdenRequest{
			{ProductoID: 1, Cantidad: 2, PrecioUnitario: dec("150.00")},
			{ProductoID: 2, Cantidad: 3, PrecioUnitario: dec("10.50")},
		},
	})
	require.NoError(t, err)

	require.Len(t, resp.Detalles, 2)
	assert.True(t, resp.Detalles[0].Subtotal.Equal(dec("300.00")), "subtotal: %s", resp.Detalles[0].Subtotal)
	assert.True(t, resp.Detalles[1].Subtotal.Equal(dec("31.50")), "subtotal: %s", resp.Detalles[1].Subtotal)
	assert.True(t, resp.MontoTotal.Equal(dec("331.50")), "monto_total: %s", resp.MontoTotal)
	assert.Equal(t, "Suministros SA", resp.ProveedorNombre)
	assert.Equal(t, "2024-05-10", resp.FechaPedido)
}

func TestCrearOrdenRespetaSubtotalExplicito(t *testing.T) {
	svc, _, _ := newOrdenServiceForTest(t)

	explicito := dec("99.99")
	resp, err := svc.Crear(context.Background(), dto.CrearOrdenRequest{
		ProveedorID: 1,
		FechaPedido: "2024-05-10",
		Estado:      model.OrdenPendiente,
		Items: []dto.ItemOrdenRequest{
			{ProductoID: 1, Cantidad: 2, PrecioUnitario: dec("150.00"), Subtotal: &explicito},
		},
	})
	require.NoError(t, err)

	assert.True(t, resp.Detalles[0].Subtotal.Equal(explicito))
	assert.True(t, resp.MontoTotal.Equal(explicito))
}

func TestCrearOrdenSinItemsFallaAntesDeEscribir(t *testing.T) {
	svc, ordenRepo, _ := newOrdenServiceForTest(t)

	_, err := svc.Crear(context.Background(), dto.CrearOrdenRequest{
		ProveedorID: 1,
		FechaPedido: "2024-05-10",
		Items:       nil,
	})
	require.Error(t, err)
	assert.True(t, apierror.IsValidation(err))
	assert.Empty(t, ordenRepo.ordenes, "no debe escribirse nada")
}

func TestCrearOrdenSinEstado(t *testing.T) {
	svc, ordenRepo, _ := newOrdenServiceForTest(t)

	_, err := svc.Crear(context.Background(), dto.CrearOrdenRequest{
		ProveedorID: 1,
		FechaPedido: "2024-05-10",
		Items:       []dto.ItemOrdenRequest{{ProductoID: 1, Cantidad: 1, PrecioUnitario: dec("1.00")}},
	})
	require.Error(t, err)
	assert.True(t, apierror.IsValidation(err))
	assert.Contains(t, err.Error(), "estado")
	assert.Empty(t, ordenRepo.ordenes, "no debe escribirse nada")
}

func TestCrearOrdenPrecioUnitarioCero(t *testing.T) {
	svc, _, _ := newOrdenServiceForTest(t)

	_, err := svc.Crear(context.Background(), dto.CrearOrdenRequest{
		ProveedorID: 1,
		FechaPedido: "2024-05-10",
		Estado:      model.OrdenPendiente,
		Items:       []dto.ItemOrdenRequest{{ProductoID: 1, Cantidad: 1, PrecioUnitario: dec("0.00")}},
	})
	require.Error(t, err)
	assert.True(t, apierror.IsValidation(err))
	assert.Contains(t, err.Error(), "precio_unitario")
}

func TestCrearOrdenProveedorInexistente(t *testing.T) {
	svc, _, _ := newOrdenServiceForTest(t)

	_, err := svc.Crear(context.Background(), dto.CrearOrdenRequest{
		ProveedorID: 99,
		FechaPedido: "2024-05-10",
		Estado:      model.OrdenPendiente,
		Items:       []dto.ItemOrdenRequest{{ProductoID: 1, Cantidad: 1, PrecioUnitario: dec("1.00")}},
	})
	require.Error(t, err)
	assert.True(t, apierror.IsValidation(err))
}

func TestCrearOrdenFechaInvalida(t *testing.T) {
	svc, _, _ := newOrdenServiceForTest(t)

	_, err := svc.Crear(context.Background(), dto.CrearOrdenRequest{
		ProveedorID: 1,
		FechaPedido: "10/05/2024",
		Estado:      model.OrdenPendiente,
		Items:       []dto.ItemOrdenRequest{{ProductoID: 1, Cantidad: 1, PrecioUnitario: dec("1.00")}},
	})
	require.Error(t, err)
	assert.True(t, apierror.IsValidation(err))
}

func TestActualizarOrdenReemplazaItems(t *testing.T) {
	svc, ordenRepo, _ := newOrdenServiceForTest(t)

	creada, err := svc.Crear(context.Background(), dto.CrearOrdenRequest{
		ProveedorID: 1,
		FechaPedido: "2024-05-10",
		Estado:      model.OrdenPendiente,
		Items: []dto.ItemOrdenRequest{
			{ProductoID: 1, Cantidad: 2, PrecioUnitario: dec("150.00")},
			{ProductoID: 2, Cantidad: 1, PrecioUnitario: dec("50.00")},
		},
	})
	require.NoError(t, err)

	resp, err := svc.Actualizar(context.Background(), dto.ActualizarOrdenRequest{
		OrdenID: creada.ID,
		CrearOrdenRequest: dto.CrearOrdenRequest{
			ProveedorID: 1,
			FechaPedido: "2024-05-11",
			Estado:      model.OrdenAprobada,
			Items: []dto.ItemOrdenRequest{
				{ProductoID: 3, Cantidad: 1, PrecioUnitario: dec("25.00")},
			},
		},
	})
	require.NoError(t, err)

	require.Len(t, resp.Detalles, 1, "los items anteriores deben desaparecer")
	assert.Equal(t, 3, resp.Detalles[0].ProductoID)
	assert.True(t, resp.MontoTotal.Equal(dec("25.00")))
	assert.Equal(t, model.OrdenAprobada, resp.Estado)
	assert.Len(t, ordenRepo.detalles[creada.ID], 1)
}

func TestActualizarOrdenInexistente(t *testing.T) {
	svc, _, _ := newOrdenServiceForTest(t)

	_, err := svc.Actualizar(context.Background(), dto.ActualizarOrdenRequest{
		OrdenID: 42,
		CrearOrdenRequest: dto.CrearOrdenRequest{
			ProveedorID: 1,
			FechaPedido: "2024-05-10",
			Estado:      model.OrdenPendiente,
			Items:       []dto.ItemOrdenRequest{{ProductoID: 1, Cantidad: 1, PrecioUnitario: dec("1.00")}},
		},
	})
	require.Error(t, err)
	assert.True(t, apierror.IsNotFound(err))
}

func TestEliminarOrdenInexistenteNoTocaOtras(t *testing.T) {
	svc, ordenRepo, _ := newOrdenServiceForTest(t)

	creada, err := svc.Crear(context.Background(), dto.CrearOrdenRequest{
		ProveedorID: 1,
		FechaPedido: "2024-05-10",
		Estado:      model.OrdenPendiente,
		Items:       []dto.ItemOrdenRequest{{ProductoID: 1, Cantidad: 1, PrecioUnitario: dec("1.00")}},
	})
	require.NoError(t, err)

	err = svc.Eliminar(context.Background(), creada.ID+100)
	require.Error(t, err)
	assert.True(t, apierror.IsNotFound(err))

	assert.Contains(t, ordenRepo.ordenes, creada.ID, "la orden existente debe sobrevivir")
}

func TestEliminarOrdenBorraItemsYCabecera(t *testing.T) {
	svc, ordenRepo, _ := newOrdenServiceForTest(t)

	creada, err := svc.Crear(context.Background(), dto.CrearOrdenRequest{
		ProveedorID: 1,
		FechaPedido: "2024-05-10",
		Estado:      model.OrdenPendiente,
		Items:       []dto.ItemOrdenRequest{{ProductoID: 1, Cantidad: 1, PrecioUnitario: dec("1.00")}},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Eliminar(context.Background(), creada.ID))
	assert.Empty(t, ordenRepo.ordenes)
	assert.Empty(t, ordenRepo.detalles[creada.ID])
}

func TestCrearOrdenesConcurrentesNoMezclanItems(t *testing.T) {
	svc, _, _ := newOrdenServiceForTest(t)

	var wg sync.WaitGroup
	resultados := make([]*dto.OrdenResponse, 2)
	errores := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			resultados[n], errores[n] = svc.Crear(context.Background(), dto.CrearOrdenRequest{
				ProveedorID: 1,
				FechaPedido: "2024-05-10",
				Estado:      model.OrdenPendiente,
				Items: []dto.ItemOrdenRequest{
					{ProductoID: n + 1, Cantidad: n + 1, PrecioUnitario: dec("10.00")},
				},
			})
		}(i)
	}
	wg.Wait()

	for i := 0; i < 2; i++ {
		require.NoError(t, errores[i])
		require.Len(t, resultados[i].Detalles, 1)
		assert.Equal(t, i+1, resultados[i].Detalles[0].ProductoID, "cada orden ve solo sus items")
	}
	assert.NotEqual(t, resultados[0].ID, resultados[1].ID)
}
