package auth

import (
	"github.com/gofiber/fiber/v2"

	"rh-portal/app/session"
)

// Handler serves the login view and the session lifecycle endpoints.
type Handler struct {
	sessions *session.Store
	apiBase  string
}

func SetupAuthRoutes(app *fiber.App, sessions *session.Store, apiBase string) {
	h := &Handler{sessions: sessions, apiBase: apiBase}

	grp := app.Group("/auth")
	grp.Get("/login", h.ShowLoginPage)
	grp.Post("/logout", h.LogoutAPI)

	app.Post("/api/auth/login", h.LoginAPI)
}

func (h *Handler) ShowLoginPage(c *fiber.Ctx) error {
	// Already logged in with a readable session: straight to the panel.
	if principal, _ := h.sessions.Current(c); principal != nil {
		return c.Redirect("/dashboard")
	}

	return c.Render("auth/login", fiber.Map{
		"Title": "Login - Painel de Funcionários",
	}, "")
}
