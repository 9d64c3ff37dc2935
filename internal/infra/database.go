package infra

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Kevin2407/gestion-proveedores/internal/model"
)

// NewDatabase establishes a GORM connection backed by pgx. The schema belongs
// to the database, not this application: no migration runs here. Pool sizing
// comes from configuration so the ceiling is an operational decision.
func NewDatabase(dsn string, maxOpen, maxIdle int) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)

	return db, nil
}

// RunMigrations creates or updates every table for local development
// (cmd/server -migrate). Falla_Proveedor has no model because its columns are
// discovered at runtime, so it gets a bootstrap DDL with the full column set.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Persona{},
		&model.Direccion{},
		&model.Proveedor{},
		&model.Contrato{},
		&model.Producto{},
		&model.OrdenDeCompra{},
		&model.DetalleOC{},
		&model.Tecnico{},
		&model.Especialidad{},
		&model.TecnicoEspecialidad{},
		&model.Calificacion{},
		&model.TipoEquipo{},
		&model.EquipoAdquirido{},
	); err != nil {
		return err
	}

	return db.Exec(`
		CREATE TABLE IF NOT EXISTS "Falla_Proveedor" (
			id_falla         SERIAL PRIMARY KEY,
			id_proveedor     INT NOT NULL REFERENCES "Proveedor"(id_proveedor),
			descripcion      TEXT,
			fecha_registro   DATE,
			estado           VARCHAR(50),
			criticidad       VARCHAR(50),
			acciones         TEXT,
			fecha_resolucion DATE
		)
	`).Error
}
