package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/rafreid/palefo-mock-api/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerParamNames sync.Once

// useParamNames makes validation errors carry the query, path or JSON name
// a client sent instead of the Go field name
func useParamNames() {
	registerParamNames.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			for _, key := range []string{"form", "uri", "json"} {
				name, _, _ := strings.Cut(field.Tag.Get(key), ",")
				if name != "" && name != "-" {
					return name
				}
			}
			return field.Name
		})
	})
}

// respondError writes err as {"detail": ...} with the matching status code
func respondError(c *gin.Context, err error) {
	var validationErr *services.ValidationError
	var notFoundErr *services.NotFoundError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"detail": validationErr.Detail})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"detail": notFoundErr.Detail})
	default:
		log.Printf("%s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal server error"})
	}
}

// respondBindError reports a malformed path, query or body
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"detail": bindErrorDetail(err)})
}

func bindErrorDetail(err error) string {
	var fieldErrs validator.ValidationErrors
	var numErr *strconv.NumError
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError

	switch {
	case errors.As(err, &fieldErrs) && len(fieldErrs) > 0:
		return fieldErrorDetail(fieldErrs[0])
	case errors.As(err, &numErr):
		return fmt.Sprintf("Invalid value %q", numErr.Num)
	case errors.As(err, &typeErr):
		return fmt.Sprintf("%s must be a %s", typeErr.Field, typeErr.Type)
	case errors.As(err, &syntaxErr):
		return "Invalid request body"
	default:
		return "Invalid request"
	}
}

func fieldErrorDetail(fe validator.FieldError) string {
	name := fe.Field()
	switch fe.Tag() {
	case "required":
		return name + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s", name, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", name, fe.Param())
	default:
		return name + " is invalid"
	}
}
