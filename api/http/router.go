package http

import (
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	swagger "github.com/gofiber/swagger"

	"github.com/harizal/portfolio/api/http/handlers"
	"github.com/harizal/portfolio/api/http/presenter"
)

// Handlers groups everything Register mounts.
type Handlers struct {
	Auth    *handlers.AuthHandler
	Profile *handlers.ProfileHandler
	Editor  *handlers.EditorHandler
	Contact *handlers.ContactHandler
	Health  *handlers.HealthHandler
}

// Limits configures the fixed-window limiters, counted per client IP.
type Limits struct {
	LoginMax     int
	LoginWindow  time.Duration
	PublicMax    int
	PublicWindow time.Duration
}

// Register wires all HTTP routes onto given Fiber app. The SPA fallback is
// registered last so it never shadows an API route.
func Register(app *fiber.App, h Handlers, authMW fiber.Handler, limits Limits, staticDir string) {
	loginLimit := newLimiter(limits.LoginMax, limits.LoginWindow, "Too many login attempts, please try again later")
	publicLimit := newLimiter(limits.PublicMax, limits.PublicWindow, "Too many requests, please try again later")

	// Health and readiness endpoints for probes/monitoring
	v1 := app.Group("/api/v1")
	v1.Get("/health", h.Health.Health)
	v1.Get("/ready", h.Health.Ready)

	app.Post("/login", loginLimit, h.Auth.Login)
	app.Post("/verify", loginLimit, h.Auth.Verify)

	app.Get("/get-data", publicLimit, h.Profile.Get)
	app.Post("/contact-request", publicLimit, h.Contact.Submit)

	app.Post("/update-data", authMW, h.Profile.Update)
	app.Get("/get-requests", authMW, h.Contact.List)
	app.Delete("/delete-request/:id", authMW, h.Contact.Delete)

	admin := app.Group("/admin", authMW)
	admin.Get("/form", h.Editor.Form)
	admin.Post("/form", h.Editor.Save)

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	if staticDir != "" {
		index := filepath.Join(staticDir, "index.html")
		app.Static("/", staticDir)
		app.Get("/*", func(c *fiber.Ctx) error {
			return c.SendFile(index)
		})
	}
}

func newLimiter(limit int, window time.Duration, message string) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        limit,
		Expiration: window,
		LimitReached: func(c *fiber.Ctx) error {
			return presenter.Error(c, fiber.StatusTooManyRequests, message)
		},
	})
}
