package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"clinic-api/internal/apperr"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error   apperr.Kind       `json:"error"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// fail writes err as a structured error response and aborts the chain.
// Internal errors are logged and replaced by a generic message.
func (h *Handler) fail(c *gin.Context, err error) {
	e := apperr.From(err)
	if e.Kind == apperr.KindInternal {
		h.log.Error("request failed",
			zap.String("request_id", c.GetString(requestIDKey)),
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	}
	c.AbortWithStatusJSON(e.Status(), ErrorResponse{
		Error:   e.Kind,
		Message: e.Message,
		Fields:  e.Fields,
	})
}

var registerValidators sync.Once

// setupValidator makes validator report `medical_history` instead of
// `MedicalHistory` and adds the `notblank` tag for whitespace-only strings.
func setupValidator() {
	registerValidators.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
			panic(err)
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return f.Name
			}
			return name
		})
	})
}

// bindJSON decodes and validates the request body into dst.
func bindJSON(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		return bindError(err)
	}
	return nil
}

func bindError(err error) error {
	var (
		verrs     validator.ValidationErrors
		typeErr   *json.UnmarshalTypeError
		syntaxErr *json.SyntaxError
	)
	switch {
	case errors.As(err, &verrs):
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = fieldMessage(fe)
		}
		return apperr.ValidationFields(fields)
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			return apperr.Validation("Expected a JSON object.")
		}
		return apperr.ValidationField(field, fmt.Sprintf("Expected a value of type %s.", typeErr.Type))
	case errors.As(err, &syntaxErr):
		return apperr.Validation("Malformed JSON request body.")
	case errors.Is(err, io.EOF):
		return apperr.Validation("Request body is required.")
	default:
		return apperr.Validation("Malformed JSON request body.")
	}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "notblank":
		return "This field may not be blank."
	case "email":
		return "Enter a valid email address."
	case "max":
		return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
	case "min":
		return fmt.Sprintf("Ensure this field has at least %s characters.", fe.Param())
	case "gte":
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", fe.Param())
	default:
		return "Invalid value."
	}
}

// parseID reads a positive integer path parameter. Anything else is reported
// as notFound, the same as an id that matches no visible record.
func parseID(c *gin.Context, name, notFound string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, apperr.NotFound(notFound)
	}
	return uint(id), nil
}
