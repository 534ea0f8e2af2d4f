package employee

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/empleados-api/internal/application/dto"
	"github.com/jhoicas/empleados-api/internal/domain"
	"github.com/jhoicas/empleados-api/internal/domain/entity"
	"github.com/jhoicas/empleados-api/internal/domain/repository"
	"github.com/jhoicas/empleados-api/pkg/validation"
)

// UseCase operaciones CRUD y búsqueda de empleados.
type UseCase struct {
	repo  repository.EmployeeRepository
	files FileStore
}

// NewUseCase construye el caso de uso de empleados.
func NewUseCase(repo repository.EmployeeRepository, files FileStore) *UseCase {
	return &UseCase{repo: repo, files: files}
}

// List devuelve todos los empleados.
func (uc *UseCase) List(ctx context.Context) ([]dto.EmployeeResponse, error) {
	return uc.Search(ctx, "")
}

// Search filtra por subcadena de department sin distinguir mayúsculas;
// con department vacío se comporta igual que List.
func (uc *UseCase) Search(ctx context.Context, department string) ([]dto.EmployeeResponse, error) {
	list, err := uc.repo.Find(ctx, repository.EmployeeFilter{Department: department})
	if err != nil {
		return nil, err
	}
	// [] y no null en el JSON cuando no hay resultados
	out := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		out = append(out, toEmployeeResponse(e))
	}
	return out, nil
}

// Create persiste un empleado validado. Si viene imagen, primero la guarda en
// el blob store y adjunta la ruta como profile_image_path; si el insert
// posterior falla, el archivo queda huérfano (limitación aceptada, no hay
// rollback del blob). Email duplicado -> domain.ErrDuplicate.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateEmployeeRequest, image *FileUpload) (string, error) {
	date, err := validation.ParseDate(in.DateOfJoining)
	if err != nil {
		return "", fmt.Errorf("date_of_joining: %w", err)
	}
	emp := &entity.Employee{
		FirstName:     strings.TrimSpace(in.FirstName),
		LastName:      strings.TrimSpace(in.LastName),
		Email:         strings.ToLower(strings.TrimSpace(in.Email)),
		Position:      in.Position,
		Salary:        *in.Salary,
		DateOfJoining: date,
		Department:    in.Department,
	}
	if image != nil {
		path, err := uc.saveImage(ctx, image)
		if err != nil {
			return "", err
		}
		emp.ProfileImagePath = path
	}
	return uc.repo.Create(ctx, emp)
}

// GetByID devuelve el empleado o domain.ErrNotFound.
func (uc *UseCase) GetByID(ctx context.Context, id string) (*dto.EmployeeResponse, error) {
	emp, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrNotFound
	}
	resp := toEmployeeResponse(emp)
	return &resp, nil
}

// Update aplica un conjunto parcial de campos ya validados; una imagen
// adjunta reemplaza profile_image_path. domain.ErrNotFound si el id no
// resuelve, domain.ErrDuplicate si el nuevo email ya existe.
func (uc *UseCase) Update(ctx context.Context, id string, in dto.UpdateEmployeeRequest, image *FileUpload) error {
	upd := repository.EmployeeUpdate{
		FirstName:  in.FirstName,
		LastName:   in.LastName,
		Position:   in.Position,
		Salary:     in.Salary,
		Department: in.Department,
	}
	if in.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*in.Email))
		upd.Email = &email
	}
	if in.DateOfJoining != nil {
		date, err := validation.ParseDate(*in.DateOfJoining)
		if err != nil {
			return fmt.Errorf("date_of_joining: %w", err)
		}
		upd.DateOfJoining = &date
	}
	if image != nil {
		path, err := uc.saveImage(ctx, image)
		if err != nil {
			return err
		}
		upd.ProfileImagePath = &path
	}

	emp, err := uc.repo.UpdateByID(ctx, id, upd)
	if err != nil {
		return err
	}
	if emp == nil {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina por id; domain.ErrNotFound si no resuelve, con lo que un
// segundo delete del mismo id responde 404.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	emp, err := uc.repo.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if emp == nil {
		return domain.ErrNotFound
	}
	return nil
}

func (uc *UseCase) saveImage(ctx context.Context, image *FileUpload) (string, error) {
	defer image.Content.Close()
	path, err := uc.files.Save(ctx, image.Name, image.Content)
	if err != nil {
		return "", fmt.Errorf("guardar imagen: %w", err)
	}
	return path, nil
}

// toEmployeeResponse mapeo explícito entidad -> respuesta con lista fija de
// campos; el id interno sale como employee_id.
func toEmployeeResponse(e *entity.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		EmployeeID:       e.ID,
		FirstName:        e.FirstName,
		LastName:         e.LastName,
		Email:            e.Email,
		Position:         e.Position,
		Salary:           e.Salary,
		DateOfJoining:    e.DateOfJoining.Format("2006-01-02"),
		Department:       e.Department,
		ProfileImagePath: e.ProfileImagePath,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}
