package dto

import "time"

// CreateEmployeeRequest entrada para crear un empleado (JSON o multipart; los
// tags form cubren el caso multipart con imagen adjunta).
type CreateEmployeeRequest struct {
	FirstName     string   `json:"first_name" form:"first_name" validate:"required"`
	LastName      string   `json:"last_name" form:"last_name" validate:"required"`
	Email         string   `json:"email" form:"email" validate:"required,email"`
	Position      string   `json:"position" form:"position" validate:"required"`
	Salary        *float64 `json:"salary" form:"salary" validate:"required,min=0"`
	DateOfJoining string   `json:"date_of_joining" form:"date_of_joining" validate:"required,isodate"`
	Department    string   `json:"department" form:"department" validate:"required"`
}

// UpdateEmployeeRequest entrada parcial: todo opcional, pero si un campo viene
// debe cumplir la misma regla que en el create.
type UpdateEmployeeRequest struct {
	FirstName     *string  `json:"first_name" form:"first_name" validate:"omitempty,min=1"`
	LastName      *string  `json:"last_name" form:"last_name" validate:"omitempty,min=1"`
	Email         *string  `json:"email" form:"email" validate:"omitempty,email"`
	Position      *string  `json:"position" form:"position" validate:"omitempty,min=1"`
	Salary        *float64 `json:"salary" form:"salary" validate:"omitempty,min=0"`
	DateOfJoining *string  `json:"date_of_joining" form:"date_of_joining" validate:"omitempty,isodate"`
	Department    *string  `json:"department" form:"department" validate:"omitempty,min=1"`
}

// EmployeeResponse salida de un empleado. El _id interno del store nunca se
// expone: sale renombrado como employee_id (mapeo explícito, lista fija de campos).
type EmployeeResponse struct {
	EmployeeID       string    `json:"employee_id"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	Email            string    `json:"email"`
	Position         string    `json:"position"`
	Salary           float64   `json:"salary"`
	DateOfJoining    string    `json:"date_of_joining"`
	Department       string    `json:"department"`
	ProfileImagePath string    `json:"profile_image_path,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// CreateEmployeeResponse confirmación del create con el id generado.
type CreateEmployeeResponse struct {
	Message    string `json:"message"`
	EmployeeID string `json:"employee_id"`
}
