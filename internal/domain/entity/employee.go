package entity

import "time"

// Employee registro de empleado (colección employees).
// Email es único a nivel del store.
type Employee struct {
	ID               string
	FirstName        string
	LastName         string
	Email            string // siempre en minúsculas
	Position         string
	Salary           float64 // no negativo
	DateOfJoining    time.Time
	Department       string
	ProfileImagePath string // ruta pública de la imagen subida; vacío si no hay
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
