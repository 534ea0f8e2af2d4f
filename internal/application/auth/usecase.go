package auth

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/empleados-api/internal/application/dto"
	"github.com/jhoicas/empleados-api/internal/domain"
	"github.com/jhoicas/empleados-api/internal/domain/entity"
	"github.com/jhoicas/empleados-api/internal/domain/repository"
	"github.com/jhoicas/empleados-api/pkg/jwt"
)

// bcryptCost factor de trabajo apto para login interactivo.
const bcryptCost = 10

// tokenTTL vida del token de sesión.
const tokenTTL = time.Hour

// Config controla la emisión de tokens en el login.
type Config struct {
	JWTEnabled bool
	JWTSecret  string
}

// UseCase casos de uso de autenticación: signup y login.
type UseCase struct {
	users repository.UserRepository
	cfg   Config
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(users repository.UserRepository, cfg Config) *UseCase {
	return &UseCase{users: users, cfg: cfg}
}

// Signup crea un usuario: chequeo previo de existencia por email o username,
// hash bcrypt y persistencia. Devuelve domain.ErrDuplicate si ya existe; el
// índice único del store cubre la carrera entre el chequeo y el insert.
// El password en texto plano no se persiste ni se loguea nunca.
func (uc *UseCase) Signup(ctx context.Context, in dto.SignupRequest) (string, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	username := strings.TrimSpace(in.Username)

	exists, err := uc.users.ExistsByEmailOrUsername(ctx, email, username)
	if err != nil {
		return "", err
	}
	if exists {
		return "", domain.ErrDuplicate
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return "", err
	}
	return uc.users.Create(ctx, &entity.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	})
}

// Login busca por email si viene, si no por username, y verifica el password
// contra el hash. Usuario inexistente y password incorrecto devuelven el mismo
// domain.ErrUnauthorized para no permitir enumerar usuarios. Con la emisión
// habilitada incluye un JWT de una hora ligado al id y email del usuario.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	var (
		user *entity.User
		err  error
	)
	if in.Email != "" {
		user, err = uc.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(in.Email)))
	} else {
		user, err = uc.users.FindByUsername(ctx, strings.TrimSpace(in.Username))
	}
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	out := &dto.LoginResponse{Message: "Login successful."}
	if uc.cfg.JWTEnabled {
		token, err := jwt.Generate(uc.cfg.JWTSecret, user.ID, user.Email, tokenTTL)
		if err != nil {
			return nil, err
		}
		out.JWTToken = token
	}
	return out, nil
}
