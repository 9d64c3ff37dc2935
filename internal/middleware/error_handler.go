package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/Kevin2407/gestion-proveedores/internal/apierror"
	"github.com/Kevin2407/gestion-proveedores/internal/dto"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ErrorHandler logs every error the handlers attached to the context. Handlers
// write their own envelope responses; this middleware only writes one itself
// when an error was attached but nothing was sent to the client.
//
// A failed rollback rides along inside RollbackError: the client only sees the
// original error, the secondary failure is logged here as rollback_error.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last()
		evt := log.Error().
			Str("request_id", c.GetString(RequestIDKey)).
			Str("path", c.FullPath()).
			Str("method", c.Request.Method).
			Err(err.Err)
		var rbe *apierror.RollbackError
		if errors.As(err.Err, &rbe) {
			evt = evt.Str("rollback_error", rbe.Rollback.Error())
		}
		evt.Msg("request failed")

		if !c.Writer.Written() {
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				dto.Envelope{Success: false, Error: err.Err.Error()})
		}
	}
}

// Recovery handles panics and converts them into 500 responses. Stack traces
// are never exposed to clients.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().
					Str("request_id", c.GetString(RequestIDKey)).
					Interface("panic", r).
					Msg("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					dto.Envelope{Success: false, Error: "Error interno del servidor"})
			}
		}()
		c.Next()
	}
}

// Logger logs each request with method, path, status, latency, and request_id.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info().
			Str("request_id", c.GetString(RequestIDKey)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}
