package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Kevin2407/gestion-proveedores/internal/apierror"
	"github.com/Kevin2407/gestion-proveedores/internal/dto"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureLog redirects the global logger into a buffer for the duration of the
// test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })
	return &buf
}

func TestErrorHandlerRegistraFalloDeRollback(t *testing.T) {
	buf := captureLog(t)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/ordenes", func(c *gin.Context) {
		err := &apierror.RollbackError{
			Original: errors.New("insert detalle: deadlock detected"),
			Rollback: errors.New("connection reset by peer"),
		}
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, dto.Envelope{Success: false, Error: err.Error()})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ordenes", nil))

	var env dto.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, "insert detalle: deadlock detected", env.Error,
		"el cliente solo ve el error original")
	assert.NotContains(t, w.Body.String(), "connection reset by peer")

	assert.Contains(t, buf.String(), `"rollback_error":"connection reset by peer"`)
	assert.Contains(t, buf.String(), "insert detalle: deadlock detected")
}

func TestErrorHandlerEscribeSoloSiNadieRespondio(t *testing.T) {
	captureLog(t)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/sin-respuesta", func(c *gin.Context) {
		_ = c.Error(errors.New("algo fallo"))
	})
	r.GET("/con-respuesta", func(c *gin.Context) {
		_ = c.Error(apierror.Validation("cuit invalido"))
		c.JSON(http.StatusBadRequest, dto.Envelope{Success: false, Error: "cuit invalido"})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/sin-respuesta", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/con-respuesta", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code,
		"la respuesta del handler no debe sobreescribirse")
}
