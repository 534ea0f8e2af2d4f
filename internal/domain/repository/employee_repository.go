package repository

import (
	"context"
	"time"

	"github.com/jhoicas/empleados-api/internal/domain/entity"
)

// EmployeeFilter criterios de búsqueda para Find.
type EmployeeFilter struct {
	// Department filtra por subcadena, sin distinguir mayúsculas. Vacío = todos.
	Department string
}

// EmployeeUpdate conjunto parcial de campos para UpdateByID.
// Solo los punteros no nulos se aplican.
type EmployeeUpdate struct {
	FirstName        *string
	LastName         *string
	Email            *string
	Position         *string
	Salary           *float64
	DateOfJoining    *time.Time
	Department       *string
	ProfileImagePath *string
}

// EmployeeRepository define el puerto de persistencia para Employee (DIP).
// UpdateByID y DeleteByID devuelven (nil, nil) cuando el id no resuelve.
// Una violación de unicidad en Create/UpdateByID se reporta como domain.ErrDuplicate.
type EmployeeRepository interface {
	Find(ctx context.Context, filter EmployeeFilter) ([]*entity.Employee, error)
	FindByID(ctx context.Context, id string) (*entity.Employee, error)
	// Create persiste el empleado y devuelve el id generado por el store.
	Create(ctx context.Context, emp *entity.Employee) (string, error)
	UpdateByID(ctx context.Context, id string, upd EmployeeUpdate) (*entity.Employee, error)
	DeleteByID(ctx context.Context, id string) (*entity.Employee, error)
}
