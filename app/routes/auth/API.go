package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"rh-portal/app/apiclient"
	"rh-portal/app/utils"
)

// LoginAPI forwards the credentials to the records API and, on success,
// stores the issued token and principal for the session.
func (h *Handler) LoginAPI(c *fiber.Ctx) error {
	type LoginRequest struct {
		Login    string `json:"login"`
		Password string `json:"password"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Requisição inválida"})
	}
	if req.Login == "" || req.Password == "" {
		return utils.ValidationFail(c, map[string]string{
			"login":    "Campo obrigatório",
			"password": "Campo obrigatório",
		})
	}

	client := apiclient.New(h.apiBase, "")
	token, principal, err := client.Login(c.Context(), req.Login, req.Password)
	if errors.Is(err, apiclient.ErrUnauthorized) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Usuário ou senha inválidos"})
	}
	if err != nil {
		return utils.APIFail(c, h.sessions, err)
	}
	if token == "" || principal == nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Resposta de login inválida do servidor"})
	}

	if err := h.sessions.Login(c, token, principal); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Falha ao iniciar a sessão"})
	}

	return c.JSON(fiber.Map{
		"message":  "Login realizado com sucesso",
		"redirect": "/dashboard",
	})
}

// LogoutAPI clears the session from any authenticated view.
func (h *Handler) LogoutAPI(c *fiber.Ctx) error {
	h.sessions.Logout(c)
	return c.Redirect("/auth/login")
}
