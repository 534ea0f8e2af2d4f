package dto

import "github.com/jhoicas/empleados-api/pkg/validation"

// ErrorResponse cuerpo de error uniforme de la API: {status:false, message}.
// Status queda en false por valor cero; solo se rellena Message.
type ErrorResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
}

// ValidationErrorResponse cuerpo de error de validación: {status:false, errors:[{field,message}]}.
type ValidationErrorResponse struct {
	Status bool                    `json:"status"`
	Errors []validation.FieldError `json:"errors"`
}

// MessageResponse confirmación simple.
type MessageResponse struct {
	Message string `json:"message"`
}
