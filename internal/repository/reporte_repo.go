package repository

import (
	"context"
	"fmt"

	"github.com/Kevin2407/gestion-proveedores/internal/dto"

	"gorm.io/gorm"
)

// ReporteRepository runs the independent dashboard read queries. The two
// queries touching Falla_Proveedor go through the resolved dynamic schema.
type ReporteRepository interface {
	Totales(ctx context.Context) (*dto.ReporteTotales, error)
	MejoresCalificaciones(ctx context.Context) ([]dto.MejorCalificacion, error)
	ProveedoresSinFallas(ctx context.Context) ([]dto.ProveedorSinFallas, error)
	OrdenesPorEstado(ctx context.Context) ([]dto.OrdenesPorEstado, error)
	OrdenesRecientes(ctx context.Context, limit int) ([]dto.OrdenReciente, error)
}

type reporteRepo struct {
	db     *gorm.DB
	fallas FallaRepository
}

func NewReporteRepository(db *gorm.DB, fallas FallaRepository) ReporteRepository {
	return &reporteRepo{db: db, fallas: fallas}
}

func (r *reporteRepo) Totales(ctx context.Context) (*dto.ReporteTotales, error) {
	var t dto.ReporteTotales
	err := r.db.WithContext(ctx).Raw(fmt.Sprintf(`
		SELECT
			(SELECT COUNT(*) FROM "Proveedor")      AS total_proveedores,
			(SELECT COUNT(*) FROM "Tecnico")        AS total_tecnicos,
			(SELECT COUNT(*) FROM "Producto")       AS total_productos,
			(SELECT COUNT(*) FROM "Orden_De_Compra") AS total_ordenes,
			(SELECT COUNT(*) FROM "Calificacion")   AS total_calificaciones,
			(SELECT COUNT(*) FROM %q)               AS total_fallas,
			(SELECT COALESCE(AVG(puntaje::float), 0) FROM "Calificacion") AS promedio_calificaciones,
			(SELECT COALESCE(SUM(monto_total), 0) FROM "Orden_De_Compra"
			  WHERE date_trunc('month', fecha_pedido) = date_trunc('month', CURRENT_DATE)) AS gasto_mes_actual
	`, fallaTable)).Scan(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *reporteRepo) MejoresCalificaciones(ctx context.Context) ([]dto.MejorCalificacion, error) {
	var rows []dto.MejorCalificacion
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			p.id_proveedor AS proveedor_id,
			per.nombre,
			c.puntaje,
			to_char(c.fecha_evaluacion, 'YYYY-MM-DD') AS fecha_evaluacion,
			c.comentarios
		FROM "Proveedor" p
			INNER JOIN "Persona" per ON p.id_persona = per.id_persona
			INNER JOIN "Calificacion" c ON p.id_proveedor = c.id_proveedor
		WHERE c.puntaje = (SELECT MAX(c2.puntaje) FROM "Calificacion" c2)
		ORDER BY c.fecha_evaluacion DESC, c.id_calificacion DESC
	`).Scan(&rows).Error
	return rows, err
}

func (r *reporteRepo) ProveedoresSinFallas(ctx context.Context) ([]dto.ProveedorSinFallas, error) {
	schema, err := r.fallas.Schema(ctx)
	if err != nil {
		return nil, err
	}
	provCol, err := quoteIdent(schema.Provider)
	if err != nil {
		return nil, err
	}

	var rows []dto.ProveedorSinFallas
	err = r.db.WithContext(ctx).Raw(fmt.Sprintf(`
		SELECT
			p.id_proveedor AS proveedor_id,
			per.nombre,
			per.correo,
			per.telefono,
			to_char(p.fecha_alta, 'YYYY-MM-DD') AS fecha_alta
		FROM "Proveedor" p
			INNER JOIN "Persona" per ON p.id_persona = per.id_persona
		WHERE NOT EXISTS (
			SELECT 1 FROM %q f WHERE f.%s = p.id_proveedor
		)
		ORDER BY per.nombre ASC
	`, fallaTable, provCol)).Scan(&rows).Error
	return rows, err
}

func (r *reporteRepo) OrdenesPorEstado(ctx context.Context) ([]dto.OrdenesPorEstado, error) {
	var rows []dto.OrdenesPorEstado
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			estado,
			COUNT(*) AS cantidad,
			COALESCE(SUM(monto_total), 0) AS monto_total
		FROM "Orden_De_Compra"
		GROUP BY estado
	`).Scan(&rows).Error
	return rows, err
}

func (r *reporteRepo) OrdenesRecientes(ctx context.Context, limit int) ([]dto.OrdenReciente, error) {
	var rows []dto.OrdenReciente
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			o.id_orden AS orden_id,
			to_char(o.fecha_pedido, 'YYYY-MM-DD') AS fecha_pedido,
			o.monto_total,
			o.estado,
			per.nombre AS proveedor_nombre
		FROM "Orden_De_Compra" o
			INNER JOIN "Proveedor" p ON o.id_proveedor = p.id_proveedor
			INNER JOIN "Persona" per ON p.id_persona = per.id_persona
		ORDER BY o.fecha_pedido DESC, o.id_orden DESC
		LIMIT ?
	`, limit).Scan(&rows).Error
	return rows, err
}
