package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FieldError par (campo, mensaje) de una regla incumplida.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// dateLayouts formatos aceptados para fechas calendario (date_of_joining).
var dateLayouts = []string{"2006-01-02", time.RFC3339}

var validate = newValidator()

// newValidator registra los tags propios de la API además de los estándar:
//   - objectid: identificador válido del store (hex de 24 caracteres)
//   - isodate:  fecha calendario ISO (YYYY-MM-DD o RFC 3339 completa)
//
// Los nombres de campo en los errores salen del tag json, no del nombre Go.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	mustRegister(v, "objectid", func(fl validator.FieldLevel) bool {
		_, err := primitive.ObjectIDFromHex(fl.Field().String())
		return err == nil
	})
	mustRegister(v, "isodate", func(fl validator.FieldLevel) bool {
		_, err := ParseDate(fl.Field().String())
		return err == nil
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic("registrar regla " + tag + ": " + err.Error())
	}
}

// ParseDate interpreta una fecha calendario ISO; acepta también una marca
// RFC 3339 completa, de la que solo conserva la fecha (en UTC).
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(dateLayouts[0], s); err == nil {
		return t, nil
	}
	t, err := time.Parse(dateLayouts[1], s)
	if err != nil {
		return time.Time{}, fmt.Errorf("fecha inválida %q", s)
	}
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}

// Struct evalúa todas las reglas declaradas en los tags validate del struct y
// devuelve la lista de (campo, mensaje); nil si todo pasa.
func Struct(s any) []FieldError {
	return toFieldErrors(validate.Struct(s))
}

// ID valida que value sea un identificador válido del store. field es el
// nombre con el que se reporta (parámetro de ruta o de query).
func ID(field, value string) []FieldError {
	if err := validate.Var(value, "required,objectid"); err != nil {
		return []FieldError{{Field: field, Message: messageForTag("objectid", "", reflect.String)}}
	}
	return nil
}

func toFieldErrors(err error) []FieldError {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Field: "", Message: "invalid payload"}}
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field:   fe.Field(),
			Message: messageForTag(fe.Tag(), fe.Param(), fe.Kind()),
		})
	}
	return out
}

// messageForTag mensajes estables por regla; no exponen detalle interno.
func messageForTag(tag, param string, kind reflect.Kind) string {
	switch tag {
	case "required":
		return "is required"
	case "required_without":
		return "either email or username is required"
	case "email":
		return "must be a valid email"
	case "isodate":
		return "must be an ISO date (YYYY-MM-DD)"
	case "objectid":
		return "must be a valid id"
	case "min":
		if kind == reflect.String {
			if param == "1" {
				return "must not be empty"
			}
			return fmt.Sprintf("must be at least %s characters", param)
		}
		return fmt.Sprintf("must be at least %s", param)
	default:
		return fmt.Sprintf("failed rule %s", tag)
	}
}
