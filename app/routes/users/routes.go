package users

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"rh-portal/app/apiclient"
	"rh-portal/app/session"
)

// pageSize is the fixed page length of the management table.
const pageSize = 5

// Handler serves the admin-only account management view.
type Handler struct {
	sessions *session.Store
	apiBase  string
}

func SetupUsersRoutes(app *fiber.App, sessions *session.Store, apiBase string) {
	h := &Handler{sessions: sessions, apiBase: apiBase}

	grp := app.Group("/usuarios")
	grp.Use(sessions.Middleware, sessions.RequireAdmin)
	grp.Get("/", h.UsersPage)

	api := app.Group("/api/admin-users")
	api.Use(sessions.Middleware, sessions.RequireAdmin)
	api.Post("/", h.CreateUserAPI)
	api.Put("/:id", h.UpdateUserAPI)
	api.Delete("/:id", h.DeleteUserAPI)
}

func (h *Handler) client(c *fiber.Ctx) *apiclient.Client {
	return apiclient.New(h.apiBase, session.Token(c))
}

func (h *Handler) UsersPage(c *fiber.Ctx) error {
	principal := session.Principal(c)

	bind := fiber.Map{
		"Title":       "Gerenciar Usuários - Painel de Funcionários",
		"CurrentPage": "usuarios",
		"Principal":   principal,
	}

	all, _, err := h.client(c).ListAdminUsers(c.Context())
	if errors.Is(err, apiclient.ErrUnauthorized) {
		h.sessions.Logout(c)
		return c.Redirect("/auth/login")
	}
	if err != nil {
		bind["LoadError"] = "Falha ao buscar usuários."
		return c.Render("users/index", bind)
	}

	page := c.QueryInt("page", 1)
	paged, page, totalPages := paginate(all, page, pageSize)

	bind["Users"] = paged
	bind["AllUsers"] = all
	bind["Page"] = page
	bind["TotalPages"] = totalPages
	bind["HasPrev"] = page > 1
	bind["HasNext"] = page < totalPages
	bind["PrevPage"] = page - 1
	bind["NextPage"] = page + 1
	return c.Render("users/index", bind)
}
