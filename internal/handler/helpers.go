package handler

import (
	"net/http"
	"reflect"
	"strconv"

	"github.com/Kevin2407/gestion-proveedores/internal/apierror"
	"github.com/Kevin2407/gestion-proveedores/internal/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		respondError(c, apierror.Validation("JSON invalido: %s", err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		if fes, ok := err.(validator.ValidationErrors); ok && len(fes) > 0 {
			respondError(c, apierror.Validation("campo %s invalido (%s)", fes[0].Field(), fes[0].Tag()))
			return false
		}
		respondError(c, apierror.Validation(err.Error()))
		return false
	}
	return true
}

// queryID reads the ?id= query parameter as a positive integer.
func queryID(c *gin.Context) (int, bool) {
	raw := c.Query("id")
	if raw == "" {
		respondError(c, apierror.Validation("el parametro id es obligatorio"))
		return 0, false
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		respondError(c, apierror.Validation("id invalido: %s", raw))
		return 0, false
	}
	return id, true
}

func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, dto.Envelope{Success: true, Data: data})
}

func respondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, dto.Envelope{Success: true, Data: data})
}

func respondMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, dto.Envelope{Success: true, Message: message})
}

// respondError maps the service error taxonomy onto status codes: 400 for
// validation, 404 for missing targets, 500 otherwise with the underlying
// error text echoed in the envelope.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case apierror.IsValidation(err):
		status = http.StatusBadRequest
	case apierror.IsNotFound(err):
		status = http.StatusNotFound
	}
	_ = c.Error(err)
	c.JSON(status, dto.Envelope{Success: false, Error: err.Error()})
}
