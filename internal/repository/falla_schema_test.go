package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveFallaSchemaCompleto(t *testing.T) {
	schema, err := resolveFallaSchema([]string{
		"id_falla", "id_proveedor", "descripcion", "fecha_registro",
		"estado", "criticidad", "acciones", "fecha_resolucion",
	})
	require.NoError(t, err)

	assert.Equal(t, "id_falla", schema.ID)
	assert.Equal(t, "id_proveedor", schema.Provider)
	assert.Equal(t, "descripcion", schema.Description)
	assert.Equal(t, "fecha_registro", schema.Date)
	assert.Equal(t, "estado", schema.Status)
	assert.Equal(t, "criticidad", schema.Severity)
	assert.Equal(t, "acciones", schema.Actions)
	assert.Equal(t, "fecha_resolucion", schema.ResolutionDate)
}

func TestResolveFallaSchemaColumnasOpcionalesAusentes(t *testing.T) {
	schema, err := resolveFallaSchema([]string{"id_falla", "id_proveedor", "detalle", "fecha_falla"})
	require.NoError(t, err)

	assert.Equal(t, "detalle", schema.Description)
	assert.Equal(t, "fecha_falla", schema.Date)
	assert.Empty(t, schema.Status)
	assert.Empty(t, schema.Severity)
	assert.Empty(t, schema.Actions)
	assert.Empty(t, schema.ResolutionDate)
}

func TestResolveFallaSchemaPrefiereElPrimerAlias(t *testing.T) {
	schema, err := resolveFallaSchema([]string{
		"id_falla", "id_proveedor", "fecha_falla", "fecha_registro", "gravedad", "criticidad",
	})
	require.NoError(t, err)

	assert.Equal(t, "fecha_registro", schema.Date)
	assert.Equal(t, "criticidad", schema.Severity)
}

func TestResolveFallaSchemaSinProveedor(t *testing.T) {
	_, err := resolveFallaSchema([]string{"id_falla", "descripcion"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "id_proveedor")
}

func TestResolveFallaSchemaSinIdentificador(t *testing.T) {
	_, err := resolveFallaSchema([]string{"id_proveedor", "descripcion"})
	require.Error(t, err)
}

func TestResolveFallaSchemaSinColumnas(t *testing.T) {
	_, err := resolveFallaSchema(nil)
	require.Error(t, err)
}

func TestQuoteIdent(t *testing.T) {
	quoted, err := quoteIdent("fecha_registro")
	require.NoError(t, err)
	assert.Equal(t, `"fecha_registro"`, quoted)

	for _, name := range []string{"", "1col", `x";drop table y;--`, "a b", "col-umn"} {
		_, err := quoteIdent(name)
		assert.Error(t, err, name)
	}
}
