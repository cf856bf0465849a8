package employees

import (
	"errors"
	"strings"
	"sync"

	"github.com/gofiber/fiber/v2"

	"rh-portal/app/apiclient"
	"rh-portal/app/authz"
	"rh-portal/app/filter"
	"rh-portal/app/models"
	"rh-portal/app/session"
)

// Handler serves the per-employee workspace: the tabbed detail view and the
// document/annotation mutation endpoints.
type Handler struct {
	sessions *session.Store
	apiBase  string
}

func SetupEmployeesRoutes(app *fiber.App, sessions *session.Store, apiBase string) {
	h := &Handler{sessions: sessions, apiBase: apiBase}

	grp := app.Group("/funcionarios")
	grp.Use(sessions.Middleware)
	grp.Get("/:id", h.DetailPage)

	api := app.Group("/api/employees/:id")
	api.Use(sessions.Middleware)
	api.Post("/documents", h.UploadDocumentsAPI)
	api.Put("/documents/:docId", h.UpdateDocumentAPI)
	api.Delete("/documents/:docId", h.DeleteDocumentAPI)
	api.Post("/annotations", h.CreateAnnotationAPI)
	api.Put("/annotations/:noteId", h.UpdateAnnotationAPI)
	api.Delete("/annotations/:noteId", h.DeleteAnnotationAPI)
}

func (h *Handler) client(c *fiber.Ctx) *apiclient.Client {
	return apiclient.New(h.apiBase, session.Token(c))
}

// serverRoot is where uploaded files are served from (the API host without
// its /api prefix).
func (h *Handler) serverRoot() string {
	return strings.TrimSuffix(h.apiBase, "/api")
}

type detailField struct {
	Label string
	Value string
}

var tabs = map[string]bool{"details": true, "documents": true, "annotations": true, "history": true}

func (h *Handler) DetailPage(c *fiber.Ctx) error {
	principal := session.Principal(c)
	id := c.Params("id")

	tab := c.Query("tab", "details")
	if !tabs[tab] {
		tab = "details"
	}

	// Employee and history load in parallel; the history endpoint failing
	// only empties that tab.
	client := h.client(c)
	var (
		wg         sync.WaitGroup
		employee   *models.Employee
		history    []models.HistoryEntry
		empErr     error
		historyErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		employee, empErr = client.GetEmployee(c.Context(), id)
	}()
	go func() {
		defer wg.Done()
		history, historyErr = client.GetHistory(c.Context(), id)
	}()
	wg.Wait()

	if errors.Is(empErr, apiclient.ErrUnauthorized) {
		h.sessions.Logout(c)
		return c.Redirect("/auth/login")
	}

	bind := fiber.Map{
		"Title":       "Funcionário - Painel de Funcionários",
		"CurrentPage": "funcionarios",
		"Principal":   principal,
		"Tab":         tab,
		"ServerRoot":  h.serverRoot(),
		"Statuses":    models.FunctionalStatuses,
		"Links":       models.InstitutionalLinks,
		"Categories":  models.AnnotationCategories,
		"Labels":      models.FieldLabels,

		"CanEditEmployee":     authz.HasPermission(principal, authz.EmployeeEdit),
		"CanDeleteEmployee":   authz.HasPermission(principal, authz.EmployeeDelete),
		"CanCreateDocument":   authz.HasPermission(principal, authz.DocumentCreate),
		"CanEditDocument":     authz.HasPermission(principal, authz.DocumentEdit),
		"CanDeleteDocument":   authz.HasPermission(principal, authz.DocumentDelete),
		"CanCreateAnnotation": authz.HasPermission(principal, authz.AnnotationCreate),
		"CanEditAnnotation":   authz.HasPermission(principal, authz.AnnotationEdit),
		"CanDeleteAnnotation": authz.HasPermission(principal, authz.AnnotationDelete),
	}

	if empErr != nil || employee == nil {
		bind["LoadError"] = "Falha ao buscar dados do funcionário."
		return c.Render("employees/detail", bind)
	}
	if historyErr != nil {
		history = nil
	}

	docSearch := c.Query("docSearch")
	noteSearch := c.Query("noteSearch")

	fields := employee.FieldMap()
	details := make([]detailField, 0, len(models.DetailFieldOrder))
	for _, name := range models.DetailFieldOrder {
		details = append(details, detailField{Label: models.FieldLabels[name], Value: fields[name]})
	}

	bind["Employee"] = employee
	bind["Details"] = details
	bind["Documents"] = filter.Documents(employee.Documents, docSearch)
	bind["Annotations"] = filter.Annotations(employee.Annotations, noteSearch)
	bind["History"] = history
	bind["DocSearch"] = docSearch
	bind["NoteSearch"] = noteSearch
	return c.Render("employees/detail", bind)
}
