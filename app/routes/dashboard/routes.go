package dashboard

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"

	"rh-portal/app/apiclient"
	"rh-portal/app/authz"
	"rh-portal/app/filter"
	"rh-portal/app/models"
	"rh-portal/app/session"
)

// Handler serves the employee panel: the filterable roster, the export
// download and the employee mutation endpoints.
type Handler struct {
	sessions *session.Store
	apiBase  string
}

func SetupDashboardRoutes(app *fiber.App, sessions *session.Store, apiBase string) {
	h := &Handler{sessions: sessions, apiBase: apiBase}

	grp := app.Group("/dashboard")
	grp.Use(sessions.Middleware)
	grp.Get("/", h.DashboardPage)
	grp.Get("/export/:format", h.ExportEmployees)

	api := app.Group("/api/employees")
	api.Use(sessions.Middleware)
	api.Post("/", h.CreateEmployeeAPI)
	api.Put("/:id", h.UpdateEmployeeAPI)
	api.Delete("/:id", h.DeleteEmployeeAPI)
}

func (h *Handler) client(c *fiber.Ctx) *apiclient.Client {
	return apiclient.New(h.apiBase, session.Token(c))
}

// row is one rendered table line, cells ordered like EmployeeFields.
type row struct {
	ID       string
	FullName string
	Cells    []string
}

// activeFilters reads the quick-search term and the per-field constraint map
// from the query string (f_<field> parameters).
func activeFilters(c *fiber.Ctx) (string, map[string]string) {
	quick := c.Query("search")
	byField := map[string]string{}
	for _, f := range models.EmployeeFields {
		if v := c.Query("f_" + f.Name); v != "" {
			byField[f.Name] = v
		}
	}
	return quick, byField
}

func (h *Handler) DashboardPage(c *fiber.Ctx) error {
	principal := session.Principal(c)
	quick, byField := activeFilters(c)

	bind := fiber.Map{
		"Title":        "Painel de Funcionários",
		"CurrentPage":  "dashboard",
		"Principal":    principal,
		"Fields":       models.EmployeeFields,
		"Search":       quick,
		"Filters":      byField,
		"FilterActive": filter.Active(quick, byField),
		"ShowFilters":  c.Query("filters") == "1" || len(byField) > 0,
		"Statuses":     models.FunctionalStatuses,
		"Links":        models.InstitutionalLinks,
		"CanCreate":    authz.HasPermission(principal, authz.EmployeeCreate),
		"CanEdit":      authz.HasPermission(principal, authz.EmployeeEdit),
		"CanDelete":    authz.HasPermission(principal, authz.EmployeeDelete),
	}

	employees, err := h.client(c).ListEmployees(c.Context())
	if errors.Is(err, apiclient.ErrUnauthorized) {
		h.sessions.Logout(c)
		return c.Redirect("/auth/login")
	}
	if err != nil {
		// Inline error state with a manual retry, not a transient alert.
		bind["LoadError"] = "Falha ao buscar dados dos funcionários."
		return c.Render("dashboard/index", bind)
	}

	filtered := filter.Employees(employees, quick, byField)
	rows := make([]row, 0, len(filtered))
	for i := range filtered {
		fields := filtered[i].FieldMap()
		cells := make([]string, len(models.EmployeeFields))
		for j, f := range models.EmployeeFields {
			cells[j] = fields[f.Name]
		}
		rows = append(rows, row{ID: filtered[i].ID, FullName: filtered[i].FullName, Cells: cells})
	}

	bind["Rows"] = rows
	bind["Employees"] = filtered
	bind["Total"] = len(employees)
	bind["Shown"] = len(filtered)
	return c.Render("dashboard/index", bind)
}

// ExportEmployees forwards the active filters to the upstream export and
// serves the file under a date-stamped name.
func (h *Handler) ExportEmployees(c *fiber.Ctx) error {
	format := c.Params("format")
	ext, ok := map[string]string{"csv": "csv", "excel": "xlsx", "pdf": "pdf"}[format]
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "Formato de exportação inválido")
	}

	principal := session.Principal(c)
	if !authz.HasPermission(principal, authz.EmployeeEdit) {
		return fiber.NewError(fiber.StatusForbidden, "Você não tem permissão para exportar")
	}

	quick, byField := activeFilters(c)
	query := url.Values{}
	if quick != "" {
		query.Set("search", quick)
	}
	for name, v := range byField {
		query.Set(name, v)
	}

	data, contentType, err := h.client(c).ExportEmployees(c.Context(), format, query)
	if errors.Is(err, apiclient.ErrUnauthorized) {
		h.sessions.Logout(c)
		return c.Redirect("/auth/login")
	}
	if err != nil {
		return fiber.NewError(fiber.StatusBadGateway, fmt.Sprintf("Falha ao exportar para %s", format))
	}

	filename := fmt.Sprintf("funcionarios_%s.%s", time.Now().Format("2006-01-02"), ext)
	if contentType != "" {
		c.Set(fiber.HeaderContentType, contentType)
	}
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

