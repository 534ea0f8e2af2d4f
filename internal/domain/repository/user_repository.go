package repository

import (
	"context"

	"github.com/jhoicas/empleados-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Los métodos Find* devuelven (nil, nil) cuando el registro no existe.
type UserRepository interface {
	// Create persiste el usuario y devuelve el id generado por el store.
	Create(ctx context.Context, user *entity.User) (string, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	// ExistsByEmailOrUsername chequeo previo de existencia para el signup ($or).
	ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error)
}
