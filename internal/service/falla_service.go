package service

import (
	"context"
	"time"

	"github.com/Kevin2407/gestion-proveedores/internal/apierror"
	"github.com/Kevin2407/gestion-proveedores/internal/dto"
	"github.com/Kevin2407/gestion-proveedores/internal/repository"

	"gorm.io/gorm"
)

// FallaService records supplier incidents against whatever column set the
// Falla_Proveedor table actually has. Optional logical fields whose backing
// column is missing are silently dropped on write and come back null on read.
type FallaService interface {
	Crear(ctx context.Context, req dto.FallaRequest) (*dto.FallaResponse, error)
	Actualizar(ctx context.Context, req dto.FallaRequest) (*dto.FallaResponse, error)
	Eliminar(ctx context.Context, fallaID int) error
	Obtener(ctx context.Context, fallaID int) (*dto.FallaResponse, error)
	Listar(ctx context.Context) ([]dto.FallaResponse, error)
	Esquema(ctx context.Context) (*dto.FallaSchemaResponse, error)
}

type fallaService struct {
	fallas repository.FallaRepository
}

func NewFallaService(fallas repository.FallaRepository) FallaService {
	return &fallaService{fallas: fallas}
}

// buildFields translates the provided request fields into column/value pairs,
// keeping only the ones the table can store. Dates are parsed up front so a
// bad format fails before the write.
func buildFields(s *repository.FallaSchema, req dto.FallaRequest) ([]repository.FallaField, error) {
	var fields []repository.FallaField
	add := func(col string, value interface{}) {
		if col != "" {
			fields = append(fields, repository.FallaField{Column: col, Value: value})
		}
	}

	if req.Descripcion != nil {
		add(s.Description, *req.Descripcion)
	}
	if req.FechaRegistro != nil {
		t, err := parseDate("fecha_registro", *req.FechaRegistro)
		if err != nil {
			return nil, err
		}
		add(s.Date, t)
	}
	if req.Estado != nil {
		add(s.Status, *req.Estado)
	}
	if req.Criticidad != nil {
		add(s.Severity, *req.Criticidad)
	}
	if req.Acciones != nil {
		add(s.Actions, *req.Acciones)
	}
	if req.FechaResolucion != nil {
		if *req.FechaResolucion == "" {
			add(s.ResolutionDate, nil)
		} else {
			t, err := parseDate("fecha_resolucion", *req.FechaResolucion)
			if err != nil {
				return nil, err
			}
			add(s.ResolutionDate, t)
		}
	}
	return fields, nil
}

func (s *fallaService) Crear(ctx context.Context, req dto.FallaRequest) (*dto.FallaResponse, error) {
	schema, err := s.fallas.Schema(ctx)
	if err != nil {
		return nil, err
	}

	if req.ProveedorID == nil || *req.ProveedorID <= 0 {
		return nil, apierror.Validation("id_proveedor es obligatorio")
	}
	if schema.Description != "" && (req.Descripcion == nil || *req.Descripcion == "") {
		return nil, apierror.Validation("descripcion es obligatoria")
	}
	if schema.Date != "" && (req.FechaRegistro == nil || *req.FechaRegistro == "") {
		return nil, apierror.Validation("fecha_registro es obligatoria")
	}

	fields, err := buildFields(schema, req)
	if err != nil {
		return nil, err
	}
	fields = append([]repository.FallaField{{Column: schema.Provider, Value: *req.ProveedorID}}, fields...)

	var newID int
	err = runTx(ctx, s.fallas.DB(), func(tx *gorm.DB) error {
		id, err := s.fallas.Insert(ctx, tx, fields)
		if err != nil {
			return err
		}
		newID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Obtener(ctx, newID)
}

// Actualizar is a partial update: only fields present in the request are
// touched, and only when the table has a column for them.
func (s *fallaService) Actualizar(ctx context.Context, req dto.FallaRequest) (*dto.FallaResponse, error) {
	schema, err := s.fallas.Schema(ctx)
	if err != nil {
		return nil, err
	}
	if req.FallaID == nil || *req.FallaID <= 0 {
		return nil, apierror.Validation("id_falla es obligatorio")
	}

	fields, err := buildFields(schema, req)
	if err != nil {
		return nil, err
	}
	if req.ProveedorID != nil {
		if *req.ProveedorID <= 0 {
			return nil, apierror.Validation("id_proveedor debe ser mayor a cero")
		}
		fields = append([]repository.FallaField{{Column: schema.Provider, Value: *req.ProveedorID}}, fields...)
	}
	if len(fields) == 0 {
		return nil, apierror.Validation("no hay campos para actualizar")
	}

	err = runTx(ctx, s.fallas.DB(), func(tx *gorm.DB) error {
		rows, err := s.fallas.Update(ctx, tx, *req.FallaID, fields)
		if err != nil {
			return err
		}
		if rows == 0 {
			return apierror.NotFound("falla %d no encontrada", *req.FallaID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Obtener(ctx, *req.FallaID)
}

func (s *fallaService) Eliminar(ctx context.Context, fallaID int) error {
	if fallaID <= 0 {
		return apierror.Validation("id_falla es obligatorio")
	}
	rows, err := s.fallas.Delete(ctx, fallaID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return apierror.NotFound("falla %d no encontrada", fallaID)
	}
	return nil
}

func (s *fallaService) Obtener(ctx context.Context, fallaID int) (*dto.FallaResponse, error) {
	schema, err := s.fallas.Schema(ctx)
	if err != nil {
		return nil, err
	}
	row, err := s.fallas.FindByID(ctx, fallaID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, apierror.NotFound("falla %d no encontrada", fallaID)
	}
	resp := toFallaResponse(schema, row)
	return &resp, nil
}

func (s *fallaService) Listar(ctx context.Context) ([]dto.FallaResponse, error) {
	schema, err := s.fallas.Schema(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := s.fallas.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.FallaResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, toFallaResponse(schema, row))
	}
	return out, nil
}

func (s *fallaService) Esquema(ctx context.Context) (*dto.FallaSchemaResponse, error) {
	schema, err := s.fallas.Schema(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.FallaSchemaResponse{
		HasDescription:    schema.Description != "",
		HasDate:           schema.Date != "",
		HasStatus:         schema.Status != "",
		HasSeverity:       schema.Severity != "",
		HasActions:        schema.Actions != "",
		HasResolutionDate: schema.ResolutionDate != "",
	}, nil
}

func toFallaResponse(s *repository.FallaSchema, row map[string]interface{}) dto.FallaResponse {
	return dto.FallaResponse{
		ID:                asInt(row[s.ID]),
		ProveedorID:       asInt(row[s.Provider]),
		ProveedorNombre:   asStringPtr(row["proveedor_nombre"]),
		ProveedorCorreo:   asStringPtr(row["proveedor_correo"]),
		ProveedorTelefono: asStringPtr(row["proveedor_telefono"]),
		Descripcion:       fieldValue(row, s.Description),
		FechaRegistro:     fieldValue(row, s.Date),
		Estado:            fieldValue(row, s.Status),
		Criticidad:        fieldValue(row, s.Severity),
		Acciones:          fieldValue(row, s.Actions),
		FechaResolucion:   fieldValue(row, s.ResolutionDate),
	}
}

// fieldValue reads a dynamic column off the row, formatting dates the same way
// the fixed-schema endpoints do.
func fieldValue(row map[string]interface{}, col string) interface{} {
	if col == "" {
		return nil
	}
	v := row[col]
	if t, ok := v.(time.Time); ok {
		return formatDate(t)
	}
	return v
}

func asInt(v interface{}) int {
	switch n := v.(type) {
	case int:
		return n
	case int32:
		return int(n)
	case int64:
		return int(n)
	}
	return 0
}

func asStringPtr(v interface{}) *string {
	if s, ok := v.(string); ok {
		return &s
	}
	return nil
}
