package auth_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/empleados-api/internal/application/auth"
	"github.com/jhoicas/empleados-api/internal/application/dto"
	"github.com/jhoicas/empleados-api/internal/domain"
	"github.com/jhoicas/empleados-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/empleados-api/pkg/jwt"
)

// fakeUserRepo implementación en memoria del puerto UserRepository.
type fakeUserRepo struct {
	seq   int
	users map[string]*entity.User // por id
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(ctx context.Context, u *entity.User) (string, error) {
	for _, existing := range r.users {
		if existing.Email == u.Email || existing.Username == u.Username {
			return "", domain.ErrDuplicate
		}
	}
	r.seq++
	id := fmt.Sprintf("%024x", r.seq)
	cp := *u
	cp.ID = id
	r.users[id] = &cp
	return id, nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error) {
	for _, u := range r.users {
		if u.Email == email || u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func signup(t *testing.T, uc *auth.UseCase, username, email, password string) string {
	t.Helper()
	id, err := uc.Signup(context.Background(), dto.SignupRequest{
		Username: username,
		Email:    email,
		Password: password,
	})
	require.NoError(t, err)
	return id
}

func TestSignup_PersisteHashYNoElPasswordPlano(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewUseCase(repo, auth.Config{})

	id := signup(t, uc, "ann", "Ann@X.com", "secret1")
	require.NotEmpty(t, id)

	u := repo.users[id]
	require.NotNil(t, u)
	assert.Equal(t, "ann@x.com", u.Email, "el email se guarda en minúsculas")
	assert.NotEqual(t, "secret1", u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret1")))
}

func TestSignup_DuplicadoPorEmailOUsername(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewUseCase(repo, auth.Config{})
	signup(t, uc, "ann", "ann@x.com", "secret1")

	_, err := uc.Signup(context.Background(), dto.SignupRequest{Username: "otra", Email: "ann@x.com", Password: "secret1"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = uc.Signup(context.Background(), dto.SignupRequest{Username: "ann", Email: "otra@x.com", Password: "secret1"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	assert.Len(t, repo.users, 1, "el duplicado no debe crear registros")
}

func TestLogin_PorEmailYPorUsername(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewUseCase(repo, auth.Config{})
	signup(t, uc, "ann", "ann@x.com", "secret1")

	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ann@x.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "Login successful.", out.Message)
	assert.Empty(t, out.JWTToken, "sin emisión habilitada no hay token")

	out, err = uc.Login(context.Background(), dto.LoginRequest{Username: "ann", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "Login successful.", out.Message)
}

func TestLogin_ErrorUniforme(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewUseCase(repo, auth.Config{})
	signup(t, uc, "ann", "ann@x.com", "secret1")

	// password incorrecto y usuario inexistente devuelven exactamente el mismo error
	_, errWrongPass := uc.Login(context.Background(), dto.LoginRequest{Email: "ann@x.com", Password: "equivocado"})
	_, errNoUser := uc.Login(context.Background(), dto.LoginRequest{Email: "nadie@x.com", Password: "secret1"})

	assert.ErrorIs(t, errWrongPass, domain.ErrUnauthorized)
	assert.ErrorIs(t, errNoUser, domain.ErrUnauthorized)
	assert.Equal(t, errWrongPass, errNoUser)
}

func TestLogin_EmisionDeTokenHabilitada(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewUseCase(repo, auth.Config{JWTEnabled: true, JWTSecret: "super-secret"})
	id := signup(t, uc, "ann", "ann@x.com", "secret1")

	out, err := uc.Login(context.Background(), dto.LoginRequest{Email: "ann@x.com", Password: "secret1"})
	require.NoError(t, err)
	require.NotEmpty(t, out.JWTToken)

	// el token queda ligado al id y email del usuario
	userID, email, err := pkgjwt.Parse("super-secret", out.JWTToken)
	require.NoError(t, err)
	assert.Equal(t, id, userID)
	assert.Equal(t, "ann@x.com", email)
}
