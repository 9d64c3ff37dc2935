package service

import (
	"context"
	"errors"

	"github.com/Kevin2407/gestion-proveedores/internal/apierror"
	"github.com/Kevin2407/gestion-proveedores/internal/dto"
	"github.com/Kevin2407/gestion-proveedores/internal/model"
	"github.com/Kevin2407/gestion-proveedores/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrdenService owns the purchase-order write path: input is validated before
// any transaction opens, header and detalles are written atomically, and the
// response is re-read after commit so it reflects what the database stored.
type OrdenService interface {
	Crear(ctx context.Context, req dto.CrearOrdenRequest) (*dto.OrdenResponse, error)
	Actualizar(ctx context.Context, req dto.ActualizarOrdenRequest) (*dto.OrdenResponse, error)
	Eliminar(ctx context.Context, ordenID int) error
	Obtener(ctx context.Context, ordenID int) (*dto.OrdenResponse, error)
	Listar(ctx context.Context) ([]dto.OrdenResponse, error)
}

type ordenService struct {
	ordenes     repository.OrdenRepository
	proveedores repository.ProveedorRepository
}

func NewOrdenService(ordenes repository.OrdenRepository, proveedores repository.ProveedorRepository) OrdenService {
	return &ordenService{ordenes: ordenes, proveedores: proveedores}
}

// buildOrden validates the request and materialises the header plus its
// detalle rows. MontoTotal is the sum of line subtotals rounded to 2 decimals.
func (s *ordenService) buildOrden(ctx context.Context, req dto.CrearOrdenRequest) (*model.OrdenDeCompra, []model.DetalleOC, error) {
	if req.ProveedorID <= 0 {
		return nil, nil, apierror.Validation("id_proveedor es obligatorio")
	}
	if len(req.Items) == 0 {
		return nil, nil, apierror.Validation("la orden debe tener al menos un item")
	}
	if req.Estado == "" {
		return nil, nil, apierror.Validation("estado es obligatorio")
	}

	fechaPedido, err := parseDate("fecha_pedido", req.FechaPedido)
	if err != nil {
		return nil, nil, err
	}
	fechaEntrega, err := parseDatePtr("fecha_entrega", req.FechaEntrega)
	if err != nil {
		return nil, nil, err
	}

	if _, err := s.proveedores.FindByID(ctx, req.ProveedorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apierror.Validation("el proveedor %d no existe", req.ProveedorID)
		}
		return nil, nil, err
	}

	total := decimal.Zero
	detalles := make([]model.DetalleOC, 0, len(req.Items))
	for i, item := range req.Items {
		if item.ProductoID <= 0 {
			return nil, nil, apierror.Validation("items[%d]: id_producto es obligatorio", i)
		}
		if item.Cantidad <= 0 {
			return nil, nil, apierror.Validation("items[%d]: cantidad debe ser mayor a cero", i)
		}
		if !item.PrecioUnitario.IsPositive() {
			return nil, nil, apierror.Validation("items[%d]: precio_unitario debe ser mayor a cero", i)
		}

		// An explicit subtotal wins over the derived one.
		subtotal := item.PrecioUnitario.Mul(decimal.NewFromInt(int64(item.Cantidad))).Round(2)
		if item.Subtotal != nil {
			subtotal = *item.Subtotal
		}
		total = total.Add(subtotal)

		detalles = append(detalles, model.DetalleOC{
			ProductoID:     item.ProductoID,
			Cantidad:       item.Cantidad,
			PrecioUnitario: item.PrecioUnitario,
			Subtotal:       subtotal,
		})
	}

	orden := &model.OrdenDeCompra{
		FechaPedido:  fechaPedido,
		FechaEntrega: fechaEntrega,
		MontoTotal:   total.Round(2),
		Estado:       req.Estado,
		ProveedorID:  req.ProveedorID,
	}
	return orden, detalles, nil
}

func (s *ordenService) Crear(ctx context.Context, req dto.CrearOrdenRequest) (*dto.OrdenResponse, error) {
	orden, detalles, err := s.buildOrden(ctx, req)
	if err != nil {
		return nil, err
	}

	err = runTx(ctx, s.ordenes.DB(), func(tx *gorm.DB) error {
		if err := s.ordenes.CreateHeader(ctx, tx, orden); err != nil {
			return err
		}
		for i := range detalles {
			detalles[i].OrdenID = orden.ID
		}
		return s.ordenes.CreateDetalles(ctx, tx, detalles)
	})
	if err != nil {
		return nil, err
	}

	return s.Obtener(ctx, orden.ID)
}

// Actualizar replaces the header fields and the full set of detalles.
func (s *ordenService) Actualizar(ctx context.Context, req dto.ActualizarOrdenRequest) (*dto.OrdenResponse, error) {
	if req.OrdenID <= 0 {
		return nil, apierror.Validation("id_orden es obligatorio")
	}
	orden, detalles, err := s.buildOrden(ctx, req.CrearOrdenRequest)
	if err != nil {
		return nil, err
	}
	orden.ID = req.OrdenID

	err = runTx(ctx, s.ordenes.DB(), func(tx *gorm.DB) error {
		rows, err := s.ordenes.UpdateHeader(ctx, tx, orden)
		if err != nil {
			return err
		}
		if rows == 0 {
			return apierror.NotFound("orden %d no encontrada", req.OrdenID)
		}
		if err := s.ordenes.DeleteDetalles(ctx, tx, req.OrdenID); err != nil {
			return err
		}
		for i := range detalles {
			detalles[i].OrdenID = req.OrdenID
		}
		return s.ordenes.CreateDetalles(ctx, tx, detalles)
	})
	if err != nil {
		return nil, err
	}

	return s.Obtener(ctx, req.OrdenID)
}

// Eliminar removes detalles first, then the header. A header with zero rows
// affected means the order never existed.
func (s *ordenService) Eliminar(ctx context.Context, ordenID int) error {
	if ordenID <= 0 {
		return apierror.Validation("id_orden es obligatorio")
	}
	return runTx(ctx, s.ordenes.DB(), func(tx *gorm.DB) error {
		if err := s.ordenes.DeleteDetalles(ctx, tx, ordenID); err != nil {
			return err
		}
		rows, err := s.ordenes.DeleteHeader(ctx, tx, ordenID)
		if err != nil {
			return err
		}
		if rows == 0 {
			return apierror.NotFound("orden %d no encontrada", ordenID)
		}
		return nil
	})
}

func (s *ordenService) Obtener(ctx context.Context, ordenID int) (*dto.OrdenResponse, error) {
	orden, err := s.ordenes.FindByID(ctx, ordenID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("orden %d no encontrada", ordenID)
		}
		return nil, err
	}
	resp := toOrdenResponse(orden)
	return &resp, nil
}

func (s *ordenService) Listar(ctx context.Context) ([]dto.OrdenResponse, error) {
	ordenes, err := s.ordenes.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrdenResponse, 0, len(ordenes))
	for i := range ordenes {
		out = append(out, toOrdenResponse(&ordenes[i]))
	}
	return out, nil
}

func toOrdenResponse(o *model.OrdenDeCompra) dto.OrdenResponse {
	resp := dto.OrdenResponse{
		ID:           o.ID,
		FechaPedido:  formatDate(o.FechaPedido),
		FechaEntrega: formatDatePtr(o.FechaEntrega),
		MontoTotal:   o.MontoTotal,
		Estado:       o.Estado,
		ProveedorID:  o.ProveedorID,
		Detalles:     make([]dto.DetalleResponse, 0, len(o.Detalles)),
	}
	if o.Proveedor != nil && o.Proveedor.Persona != nil {
		resp.ProveedorNombre = o.Proveedor.Persona.Nombre
	}
	for _, d := range o.Detalles {
		item := dto.DetalleResponse{
			ID:             d.ID,
			ProductoID:     d.ProductoID,
			Cantidad:       d.Cantidad,
			PrecioUnitario: d.PrecioUnitario,
			Subtotal:       d.Subtotal,
		}
		if d.Producto != nil {
			item.ProductoNombre = d.Producto.Nombre
		}
		resp.Detalles = append(resp.Detalles, item)
	}
	return resp
}
