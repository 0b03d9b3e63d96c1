package router

import (
	"path/filepath"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/static"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	"github.com/Sid-4215/marketbloom-backend/config"
	"github.com/Sid-4215/marketbloom-backend/internal/api/http/handler"
	"github.com/Sid-4215/marketbloom-backend/internal/api/http/middleware"
	"github.com/Sid-4215/marketbloom-backend/internal/service/submission"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg           *config.Config
	SubmissionSvc submission.Service
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

// Register mounts all routes. API routes go first so the SPA fallback never
// shadows them.
func (r *Router) Register(app *fiber.App) {
	apiKeyGate := middleware.SharedSecret(
		middleware.HeaderOrQuery("x-api-key", "apiKey"),
		r.p.Cfg.Auth.APIKey,
	)
	adminGate := middleware.SharedSecret(
		middleware.Bearer(),
		r.p.Cfg.Auth.AdminSecret,
	)

	contactH := handler.NewContactHandler(r.p.SubmissionSvc)
	adminH := handler.NewAdminHandler(r.p.Cfg.Auth, r.p.SubmissionSvc)

	api := app.Group("/api")
	api.Get("/health", handler.Health)
	api.Post("/contact", apiKeyGate, contactH.Submit)
	api.Post("/admin/login", apiKeyGate, adminH.Login)
	api.Get("/submissions", adminGate, adminH.List)
	api.Delete("/submissions/:id", adminGate, adminH.Delete)

	if r.p.Cfg.Metrics.Enabled {
		path := r.p.Cfg.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}

	r.registerStaticRoutes(app)
}

func (r *Router) registerStaticRoutes(app *fiber.App) {
	cfg := r.p.Cfg.Static

	app.Get("/admin", func(c fiber.Ctx) error {
		return c.SendFile(cfg.AdminPage)
	})

	app.Use("/", static.New(cfg.Dir))

	// SPA fallback: anything unmatched gets the front-end entry document.
	app.Use(func(c fiber.Ctx) error {
		return c.SendFile(filepath.Join(cfg.Dir, cfg.Index))
	})
}
