package repository

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"gorm.io/gorm"
)

// FallaField is one column/value pair for a dynamic insert or update, in the
// order the service wants it written.
type FallaField struct {
	Column string
	Value  interface{}
}

// FallaRepository works against Falla_Proveedor through the schema resolved at
// first use. Rows come back as raw maps because the column set is not known at
// compile time; the service layer maps them onto the logical fields.
type FallaRepository interface {
	DB() *gorm.DB
	Schema(ctx context.Context) (*FallaSchema, error)
	List(ctx context.Context) ([]map[string]interface{}, error)
	FindByID(ctx context.Context, id int) (map[string]interface{}, error)
	Insert(ctx context.Context, tx *gorm.DB, fields []FallaField) (int, error)
	Update(ctx context.Context, tx *gorm.DB, id int, fields []FallaField) (int64, error)
	Delete(ctx context.Context, id int) (int64, error)
	DeleteByProveedor(ctx context.Context, tx *gorm.DB, proveedorID int) error
}

type fallaRepo struct {
	db *gorm.DB

	once      sync.Once
	schema    *FallaSchema
	schemaErr error
}

func NewFallaRepository(db *gorm.DB) FallaRepository { return &fallaRepo{db: db} }

func (r *fallaRepo) DB() *gorm.DB { return r.db }

// Schema resolves the physical column set exactly once per process and reuses
// it for every subsequent request.
func (r *fallaRepo) Schema(ctx context.Context) (*FallaSchema, error) {
	r.once.Do(func() {
		var cols []string
		err := r.db.WithContext(ctx).
			Table("information_schema.columns").
			Where("table_name = ?", fallaTable).
			Pluck("column_name", &cols).Error
		if err != nil {
			r.schemaErr = err
			return
		}
		r.schema, r.schemaErr = resolveFallaSchema(cols)
	})
	return r.schema, r.schemaErr
}

// baseSelect joins the falla row to its supplier's Persona for contact data.
// Every interpolated identifier is catalog-sourced and quote-checked.
func (r *fallaRepo) baseSelect(s *FallaSchema) (string, error) {
	provCol, err := quoteIdent(s.Provider)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(`SELECT f.*, per.nombre AS proveedor_nombre, per.correo AS proveedor_correo, per.telefono AS proveedor_telefono
		FROM %q f
		INNER JOIN "Proveedor" p ON f.%s = p.id_proveedor
		INNER JOIN "Persona" per ON p.id_persona = per.id_persona`, fallaTable, provCol), nil
}

func (r *fallaRepo) List(ctx context.Context) ([]map[string]interface{}, error) {
	s, err := r.Schema(ctx)
	if err != nil {
		return nil, err
	}
	query, err := r.baseSelect(s)
	if err != nil {
		return nil, err
	}

	var orderPieces []string
	if s.Date != "" {
		col, err := quoteIdent(s.Date)
		if err != nil {
			return nil, err
		}
		orderPieces = append(orderPieces, "f."+col+" DESC")
	}
	idCol, err := quoteIdent(s.ID)
	if err != nil {
		return nil, err
	}
	orderPieces = append(orderPieces, "f."+idCol+" DESC")
	query += " ORDER BY " + strings.Join(orderPieces, ", ")

	var rows []map[string]interface{}
	if err := r.db.WithContext(ctx).Raw(query).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// FindByID returns nil (no error) when the row does not exist.
func (r *fallaRepo) FindByID(ctx context.Context, id int) (map[string]interface{}, error) {
	s, err := r.Schema(ctx)
	if err != nil {
		return nil, err
	}
	query, err := r.baseSelect(s)
	if err != nil {
		return nil, err
	}
	idCol, err := quoteIdent(s.ID)
	if err != nil {
		return nil, err
	}

	var rows []map[string]interface{}
	if err := r.db.WithContext(ctx).Raw(query+" WHERE f."+idCol+" = ?", id).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

func (r *fallaRepo) Insert(ctx context.Context, tx *gorm.DB, fields []FallaField) (int, error) {
	s, err := r.Schema(ctx)
	if err != nil {
		return 0, err
	}
	idCol, err := quoteIdent(s.ID)
	if err != nil {
		return 0, err
	}

	cols := make([]string, 0, len(fields))
	marks := make([]string, 0, len(fields))
	args := make([]interface{}, 0, len(fields))
	for _, f := range fields {
		col, err := quoteIdent(f.Column)
		if err != nil {
			return 0, err
		}
		cols = append(cols, col)
		marks = append(marks, "?")
		args = append(args, f.Value)
	}

	query := fmt.Sprintf("INSERT INTO %q (%s) VALUES (%s) RETURNING %s",
		fallaTable, strings.Join(cols, ", "), strings.Join(marks, ", "), idCol)

	var newID int
	if err := tx.WithContext(ctx).Raw(query, args...).Scan(&newID).Error; err != nil {
		return 0, err
	}
	return newID, nil
}

func (r *fallaRepo) Update(ctx context.Context, tx *gorm.DB, id int, fields []FallaField) (int64, error) {
	s, err := r.Schema(ctx)
	if err != nil {
		return 0, err
	}
	idCol, err := quoteIdent(s.ID)
	if err != nil {
		return 0, err
	}

	sets := make([]string, 0, len(fields))
	args := make([]interface{}, 0, len(fields)+1)
	for _, f := range fields {
		col, err := quoteIdent(f.Column)
		if err != nil {
			return 0, err
		}
		sets = append(sets, col+" = ?")
		args = append(args, f.Value)
	}
	args = append(args, id)

	query := fmt.Sprintf("UPDATE %q SET %s WHERE %s = ?", fallaTable, strings.Join(sets, ", "), idCol)
	res := tx.WithContext(ctx).Exec(query, args...)
	return res.RowsAffected, res.Error
}

func (r *fallaRepo) Delete(ctx context.Context, id int) (int64, error) {
	s, err := r.Schema(ctx)
	if err != nil {
		return 0, err
	}
	idCol, err := quoteIdent(s.ID)
	if err != nil {
		return 0, err
	}
	res := r.db.WithContext(ctx).Exec(fmt.Sprintf("DELETE FROM %q WHERE %s = ?", fallaTable, idCol), id)
	return res.RowsAffected, res.Error
}

// DeleteByProveedor is the incident step of the supplier cascade delete.
func (r *fallaRepo) DeleteByProveedor(ctx context.Context, tx *gorm.DB, proveedorID int) error {
	s, err := r.Schema(ctx)
	if err != nil {
		return err
	}
	provCol, err := quoteIdent(s.Provider)
	if err != nil {
		return err
	}
	return tx.WithContext(ctx).Exec(fmt.Sprintf("DELETE FROM %q WHERE %s = ?", fallaTable, provCol), proveedorID).Error
}
