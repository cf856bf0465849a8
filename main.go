package main

import (
	"encoding/json"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"

	"rh-portal/app/config"
	"rh-portal/app/routes/auth"
	"rh-portal/app/routes/dashboard"
	"rh-portal/app/routes/employees"
	"rh-portal/app/routes/lookup"
	"rh-portal/app/routes/users"
	"rh-portal/app/services"
	"rh-portal/app/session"
)

// customErrorHandler renders error pages for web requests and JSON for the
// /api surface.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	if strings.HasPrefix(c.Path(), "/api") {
		return c.Status(code).JSON(fiber.Map{
			"error": err.Error(),
			"code":  code,
		})
	}

	switch code {
	case 404:
		return c.Status(404).Render("404", fiber.Map{
			"Title": "Página não encontrada - Painel de Funcionários",
		})
	case 403:
		return c.Status(403).Render("error", fiber.Map{
			"Title":        "Acesso negado - Painel de Funcionários",
			"ErrorCode":    "403",
			"ErrorTitle":   "Acesso negado",
			"ErrorMessage": "Você não tem permissão para acessar este recurso.",
		})
	case 500:
		return c.Status(500).Render("500", fiber.Map{
			"Title":     "Erro interno - Painel de Funcionários",
			"ShowRetry": true,
		})
	default:
		return c.Status(code).Render("error", fiber.Map{
			"Title":        "Erro - Painel de Funcionários",
			"ErrorCode":    code,
			"ErrorTitle":   "Ocorreu um erro",
			"ErrorMessage": err.Error(),
		})
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config error: ", err)
	}

	sessions := session.NewStore(cfg.SessionSecret, cfg.SessionTTL())
	cep := services.NewCEPClient(cfg.CEPBaseURL)

	engine := html.New("./app/templates", ".html")
	engine.AddFunc("json", func(v interface{}) (string, error) {
		b, err := json.Marshal(v)
		return string(b), err
	})

	app := fiber.New(fiber.Config{
		Views:             engine,
		ViewsLayout:       "layouts/main",
		PassLocalsToViews: true,
		ErrorHandler:      customErrorHandler,
	})

	app.Use(logger.New())
	app.Use(cors.New())

	app.Static("/static", "./static")

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/dashboard")
	})

	auth.SetupAuthRoutes(app, sessions, cfg.APIBaseURL)
	dashboard.SetupDashboardRoutes(app, sessions, cfg.APIBaseURL)
	employees.SetupEmployeesRoutes(app, sessions, cfg.APIBaseURL)
	users.SetupUsersRoutes(app, sessions, cfg.APIBaseURL)
	lookup.SetupLookupRoutes(app, sessions, cep)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Página não encontrada")
	})

	log.Println("Server starting on", cfg.Addr)
	log.Fatal(app.Listen(cfg.Addr))
}
