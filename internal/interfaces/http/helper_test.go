package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/empleados-api/internal/application/auth"
	"github.com/jhoicas/empleados-api/internal/application/employee"
	"github.com/jhoicas/empleados-api/internal/domain"
	"github.com/jhoicas/empleados-api/internal/domain/entity"
	"github.com/jhoicas/empleados-api/internal/domain/repository"
	apphttp "github.com/jhoicas/empleados-api/internal/interfaces/http"
	"github.com/jhoicas/empleados-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia y blob storage
// ──────────────────────────────────────────────────────────────────────────────

// fakeEmployeeRepo implementa repository.EmployeeRepository. calls cuenta los
// accesos al store para verificar que la validación corta antes de llegar a él.
type fakeEmployeeRepo struct {
	seq   int
	items map[string]*entity.Employee
	order []string
	calls int
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{items: map[string]*entity.Employee{}}
}

func (r *fakeEmployeeRepo) Find(ctx context.Context, filter repository.EmployeeFilter) ([]*entity.Employee, error) {
	r.calls++
	var out []*entity.Employee
	needle := strings.ToLower(filter.Department)
	for _, id := range r.order {
		e := r.items[id]
		if needle == "" || strings.Contains(strings.ToLower(e.Department), needle) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeEmployeeRepo) FindByID(ctx context.Context, id string) (*entity.Employee, error) {
	r.calls++
	return r.items[id], nil
}

func (r *fakeEmployeeRepo) Create(ctx context.Context, emp *entity.Employee) (string, error) {
	r.calls++
	for _, e := range r.items {
		if e.Email == emp.Email {
			return "", domain.ErrDuplicate
		}
	}
	r.seq++
	id := fmt.Sprintf("%024x", r.seq)
	cp := *emp
	cp.ID = id
	r.items[id] = &cp
	r.order = append(r.order, id)
	return id, nil
}

func (r *fakeEmployeeRepo) UpdateByID(ctx context.Context, id string, upd repository.EmployeeUpdate) (*entity.Employee, error) {
	r.calls++
	e, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	if upd.Email != nil {
		for otherID, other := range r.items {
			if otherID != id && other.Email == *upd.Email {
				return nil, domain.ErrDuplicate
			}
		}
		e.Email = *upd.Email
	}
	if upd.FirstName != nil {
		e.FirstName = *upd.FirstName
	}
	if upd.LastName != nil {
		e.LastName = *upd.LastName
	}
	if upd.Position != nil {
		e.Position = *upd.Position
	}
	if upd.Salary != nil {
		e.Salary = *upd.Salary
	}
	if upd.DateOfJoining != nil {
		e.DateOfJoining = *upd.DateOfJoining
	}
	if upd.Department != nil {
		e.Department = *upd.Department
	}
	if upd.ProfileImagePath != nil {
		e.ProfileImagePath = *upd.ProfileImagePath
	}
	return e, nil
}

func (r *fakeEmployeeRepo) DeleteByID(ctx context.Context, id string) (*entity.Employee, error) {
	r.calls++
	e, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	delete(r.items, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return e, nil
}

// fakeUserRepo implementa repository.UserRepository.
type fakeUserRepo struct {
	seq   int
	users map[string]*entity.User
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

// fakeFileStore implementa employee.FileStore sin tocar el disco.
type fakeFileStore struct {
	seq   int
	saved []string
}

func (s *fakeFileStore) Save(ctx context.Context, name string, content io.Reader) (string, error) {
	if _, err := io.Copy(io.Discard, content); err != nil {
		return "", err
	}
	s.seq++
	path := fmt.Sprintf("/uploaded/fake-%d-%s", s.seq, name)
	s.saved = append(s.saved, path)
	return path, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type testEnv struct {
	app   *fiber.App
	emp   *fakeEmployeeRepo
	users *fakeUserRepo
	files *fakeFileStore
}

// newTestEnv construye la app Fiber completa (router + error handler central)
// sobre los fakes en memoria.
func newTestEnv(t *testing.T, authCfg auth.Config) *testEnv {
	t.Helper()
	env := &testEnv{
		emp:   newFakeEmployeeRepo(),
		users: newFakeUserRepo(),
		files: &fakeFileStore{},
	}
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	env.app = fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler(log)})
	apphttp.Router(env.app, apphttp.RouterDeps{
		AuthUC:     auth.NewUseCase(env.users, authCfg),
		EmployeeUC: employee.NewUseCase(env.emp, env.files),
		UploadDir:  t.TempDir(),
	})
	return env
}

// doJSON lanza una petición con cuerpo JSON (nil = sin cuerpo).
func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// doMultipart lanza una petición multipart con campos de formulario y un
// archivo opcional en la parte profileImage.
func doMultipart(t *testing.T, app *fiber.App, method, path string, fields map[string]string, fileName string) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if fileName != "" {
		fw, err := w.CreateFormFile("profileImage", fileName)
		require.NoError(t, err)
		_, err = fw.Write([]byte("bytes-de-imagen"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// decodeBody decodifica el cuerpo JSON en un mapa genérico.
func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// jsonDecode decodifica el cuerpo JSON en out.
func jsonDecode(resp *http.Response, out any) error {
	defer resp.Body.Close()
	return json.NewDecoder(resp.Body).Decode(out)
}

// readBody devuelve el cuerpo crudo.
func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(raw)
}

// validEmployeeBody cuerpo de create válido y con email único por llamada.
func validEmployeeBody(email string) map[string]any {
	return map[string]any{
		"first_name":      "Ann",
		"last_name":       "Lee",
		"email":           email,
		"position":        "Dev",
		"salary":          50000,
		"date_of_joining": "2023-01-01",
		"department":      "Engineering",
	}
}
