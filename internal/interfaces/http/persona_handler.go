package http

import (
	"errors"
	"strconv"

	"github.com/TamyKittyCat/crud-personas2/internal/application"
	"github.com/TamyKittyCat/crud-personas2/internal/domain"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type PersonaHandler struct {
	service *application.PersonaService
}

// NewPersonaHandler crea una nueva instancia del handler de personas
func NewPersonaHandler(service *application.PersonaService) *PersonaHandler {
	return &PersonaHandler{
		service: service,
	}
}

// RegisterRoutes registra las rutas de personas y la ruta de prueba bajo /api
func RegisterRoutes(api fiber.Router, h *PersonaHandler) {
	personas := api.Group("/personas")
	personas.Get("/", h.List)
	personas.Post("/", h.Create)
	personas.Put("/:id", h.Update)
	personas.Delete("/:id", h.Delete)

	api.Get("/test", func(c *fiber.Ctx) error {
		return c.SendString("El servidor está funcionando correctamente")
	})
}

// List devuelve todas las personas registradas
func (h *PersonaHandler) List(c *fiber.Ctx) error {
	personas, err := h.service.List(c.UserContext())
	if err != nil {
		logrus.WithError(err).Error("Error al listar personas")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to retrieve data",
		})
	}

	return c.JSON(personas)
}

// Create registra una nueva persona y devuelve la fila creada
func (h *PersonaHandler) Create(c *fiber.Ctx) error {
	var req application.PersonaRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}

	persona, err := h.service.Create(c.UserContext(), req)
	if err != nil {
		var vErr *application.ValidationError
		if errors.As(err, &vErr) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":    "Datos de persona inválidos",
				"detalles": vErr.Campos,
			})
		}
		logrus.WithError(err).Error("Error al registrar persona")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to insert data",
			"details": err.Error(),
		})
	}

	return c.JSON(persona)
}

// Update reemplaza los datos de la persona con el ID dado
func (h *PersonaHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	var req application.PersonaRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}

	persona, err := h.service.Update(c.UserContext(), id, req)
	if err != nil {
		var vErr *application.ValidationError
		if errors.As(err, &vErr) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":    "Datos de persona inválidos",
				"detalles": vErr.Campos,
			})
		}
		if errors.Is(err, domain.ErrPersonaNoEncontrada) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Persona no encontrada",
			})
		}
		logrus.WithError(err).WithField("ID", id).Error("Error al actualizar persona")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to update data",
			"details": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Persona actualizada exitosamente",
		"persona": persona,
	})
}

// Delete elimina la persona con el ID dado y devuelve sus valores previos
func (h *PersonaHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	persona, err := h.service.Delete(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, domain.ErrPersonaNoEncontrada) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Persona no encontrada",
			})
		}
		logrus.WithError(err).WithField("ID", id).Error("Error al eliminar persona")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to delete data",
			"details": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Persona eliminada exitosamente",
		"persona": persona,
	})
}
