package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/empleados-api/internal/application/auth"
	"github.com/jhoicas/empleados-api/internal/application/dto"
	"github.com/jhoicas/empleados-api/internal/application/employee"
	"github.com/jhoicas/empleados-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.UseCase
	EmployeeUC *employee.UseCase
	// UploadDir directorio físico servido (solo lectura) bajo /uploaded.
	UploadDir string
}

// Router registra las rutas de la API: /health, los assets subidos y los
// grupos user y emp bajo el prefijo versionado /api/v1. Cierra con el
// catch-all 404 de forma uniforme.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	app.Static("/uploaded", deps.UploadDir)

	api := app.Group("/api/v1")

	user := api.Group("/user")
	userHandler := NewUserHandler(deps.AuthUC)
	user.Post("/signup", userHandler.Signup)
	user.Post("/login", userHandler.Login)

	emp := api.Group("/emp")
	empHandler := NewEmployeeHandler(deps.EmployeeUC)
	emp.Get("/employees", empHandler.List)
	// /search antes que /:eid para que no lo capture el parámetro de ruta
	emp.Get("/employees/search", empHandler.Search)
	emp.Post("/employees", empHandler.Create)
	emp.Get("/employees/:eid", empHandler.GetByID)
	emp.Put("/employees/:eid", empHandler.Update)
	emp.Delete("/employees", empHandler.Delete)

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "Route not found"})
	})
}

// ErrorHandler formateador central de errores no manejados: loguea el error y
// responde {status:false, message} con el status declarado (fiber.Error) o 500
// genérico, sin filtrar detalle interno al cliente.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Server Error"

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code = fiberErr.Code
			message = fiberErr.Message
		}

		log.Error().
			Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", code).
			Msg("error no manejado")

		return c.Status(code).JSON(dto.ErrorResponse{Message: message})
	}
}
