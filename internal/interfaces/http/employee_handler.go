package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/empleados-api/internal/application/dto"
	"github.com/jhoicas/empleados-api/internal/application/employee"
	"github.com/jhoicas/empleados-api/internal/domain"
	"github.com/jhoicas/empleados-api/pkg/validation"
)

// profileImageField nombre de la parte multipart con la imagen de perfil.
const profileImageField = "profileImage"

// EmployeeHandler maneja el CRUD y la búsqueda de empleados.
type EmployeeHandler struct {
	uc *employee.UseCase
}

// NewEmployeeHandler construye el handler de empleados.
func NewEmployeeHandler(uc *employee.UseCase) *EmployeeHandler {
	return &EmployeeHandler{uc: uc}
}

// List godoc
// @Summary      Listar empleados
// @Tags         emp
// @Produce      json
// @Success      200  {array}  dto.EmployeeResponse
// @Router       /api/v1/emp/employees [get]
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Search godoc
// @Summary      Buscar empleados por departamento (subcadena, sin distinguir mayúsculas)
// @Tags         emp
// @Produce      json
// @Param        department  query  string  false  "Texto a buscar"
// @Success      200  {array}  dto.EmployeeResponse
// @Router       /api/v1/emp/employees/search [get]
func (h *EmployeeHandler) Search(c *fiber.Ctx) error {
	out, err := h.uc.Search(c.UserContext(), c.Query("department"))
	if err != nil {
		return err
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear empleado
// @Tags         emp
// @Accept       json
// @Accept       multipart/form-data
// @Produce      json
// @Param        body  body  dto.CreateEmployeeRequest  true  "Datos del empleado"
// @Success      201   {object}  dto.CreateEmployeeResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/emp/employees [post]
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Invalid request body"})
	}
	if errs := validation.Struct(in); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{Errors: errs})
	}
	image, err := formImage(c)
	if err != nil {
		return err
	}
	id, err := h.uc.Create(c.UserContext(), in, image)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Message: "Employee email already exists"})
		}
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreateEmployeeResponse{
		Message:    "Employee created successfully.",
		EmployeeID: id,
	})
}

// GetByID godoc
// @Summary      Obtener empleado por id
// @Tags         emp
// @Produce      json
// @Param        eid  path  string  true  "ID del empleado"
// @Success      200  {object}  dto.EmployeeResponse
// @Failure      400  {object}  dto.ValidationErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/emp/employees/{eid} [get]
func (h *EmployeeHandler) GetByID(c *fiber.Ctx) error {
	eid := c.Params("eid")
	if errs := validation.ID("eid", eid); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{Errors: errs})
	}
	out, err := h.uc.GetByID(c.UserContext(), eid)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "Employee not found"})
		}
		return err
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar empleado (campos parciales, imagen opcional)
// @Tags         emp
// @Accept       json
// @Accept       multipart/form-data
// @Produce      json
// @Param        eid   path  string  true  "ID del empleado"
// @Param        body  body  dto.UpdateEmployeeRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/emp/employees/{eid} [put]
func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	eid := c.Params("eid")
	if errs := validation.ID("eid", eid); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{Errors: errs})
	}
	var in dto.UpdateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Invalid request body"})
	}
	if errs := validation.Struct(in); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{Errors: errs})
	}
	image, err := formImage(c)
	if err != nil {
		return err
	}
	if err := h.uc.Update(c.UserContext(), eid, in, image); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "Employee not found"})
		}
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Message: "Employee email already exists"})
		}
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Employee details updated successfully."})
}

// Delete godoc
// @Summary      Eliminar empleado (id por query, asimetría esperada por el cliente)
// @Tags         emp
// @Param        eid  query  string  true  "ID del empleado"
// @Success      204  "sin cuerpo"
// @Failure      400  {object}  dto.ValidationErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/emp/employees [delete]
func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	eid := c.Query("eid")
	if errs := validation.ID("eid", eid); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{Errors: errs})
	}
	if err := h.uc.Delete(c.UserContext(), eid); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "Employee not found"})
		}
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// formImage devuelve la parte profileImage abierta para lectura, o nil si la
// petición no la trae (JSON o multipart sin archivo).
func formImage(c *fiber.Ctx) (*employee.FileUpload, error) {
	fh, err := c.FormFile(profileImageField)
	if err != nil || fh == nil {
		return nil, nil
	}
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	return &employee.FileUpload{Name: fh.Filename, Content: f}, nil
}
