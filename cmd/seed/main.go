// Seeds the reference catalogs (especialidades, tipos de equipo, productos)
// so a fresh database is usable right away. Safe to re-run: existing names
// are skipped.
package main

import (
	"os"
	"time"

	"github.com/Kevin2407/gestion-proveedores/internal/config"
	"github.com/Kevin2407/gestion-proveedores/internal/infra"
	"github.com/Kevin2407/gestion-proveedores/internal/model"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL, cfg.DBMaxOpen, cfg.DBMaxIdle)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	if err := infra.RunMigrations(db); err != nil {
		log.Fatal().Err(err).Msg("migrations failed")
	}

	especialidades := []model.Especialidad{
		{Nombre: "Electricidad"},
		{Nombre: "Refrigeracion"},
		{Nombre: "Redes y comunicaciones"},
		{Nombre: "Mantenimiento general"},
		{Nombre: "Soporte informatico"},
	}
	if err := upsert(db, "nombre", &especialidades); err != nil {
		log.Fatal().Err(err).Msg("seed especialidades failed")
	}

	tipos := []model.TipoEquipo{
		{Nombre: "Notebook", Descripcion: ptr("Equipos portatiles de oficina")},
		{Nombre: "Impresora", Descripcion: ptr("Impresoras y multifuncion")},
		{Nombre: "Servidor", Descripcion: ptr("Equipamiento de sala de servidores")},
		{Nombre: "Climatizacion", Descripcion: ptr("Aires acondicionados y ventilacion")},
	}
	if err := upsert(db, "nombre_categoria", &tipos); err != nil {
		log.Fatal().Err(err).Msg("seed tipos de equipo failed")
	}

	productos := []model.Producto{
		{Nombre: "Notebook 14 pulgadas", Descripcion: ptr("Equipo estandar de oficina")},
		{Nombre: "Toner negro", Descripcion: ptr("Consumible de impresora laser")},
		{Nombre: "Switch 24 puertos", Descripcion: nil},
		{Nombre: "Resma A4", Descripcion: ptr("Papel de oficina 75g")},
	}
	if err := upsert(db, "nombre_producto", &productos); err != nil {
		log.Fatal().Err(err).Msg("seed productos failed")
	}

	log.Info().Msg("seed completed")
}

func ptr(s string) *string { return &s }

// upsert inserts rows skipping conflicts on the given unique column.
func upsert(db *gorm.DB, column string, rows interface{}) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: column}},
		DoNothing: true,
	}).Create(rows).Error
}
