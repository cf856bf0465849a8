package lookup

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"rh-portal/app/services"
	"rh-portal/app/session"
)

// Handler exposes the address lookup consumed by the employee form's CEP
// blur handler.
type Handler struct {
	cep *services.CEPClient
}

func SetupLookupRoutes(app *fiber.App, sessions *session.Store, cep *services.CEPClient) {
	h := &Handler{cep: cep}

	api := app.Group("/api/cep")
	api.Use(sessions.Middleware)
	api.Get("/:cep", h.LookupCEPAPI)
}

// LookupCEPAPI resolves a postal code. Failures surface as a field-local
// message; they never block the rest of the form.
func (h *Handler) LookupCEPAPI(c *fiber.Ctx) error {
	address, err := h.cep.Lookup(c.Context(), c.Params("cep"))
	if errors.Is(err, services.ErrCEPNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "CEP não encontrado"})
	}
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Falha ao consultar o CEP"})
	}
	return c.JSON(address)
}
