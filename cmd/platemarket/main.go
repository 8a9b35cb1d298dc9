package main

import (
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"platemarket/internal/config"
	"platemarket/internal/http/handlers"
	applog "platemarket/internal/log"
	"platemarket/internal/repos"
	"platemarket/internal/services"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	// Catalog is loaded once; submissions never touch it
	catalog, err := services.LoadCatalog(repos.NewListingRepo(db))
	if err != nil {
		log.Fatal(err)
	}
	derived := services.RecentNotices(catalog.All(), time.Now(), cfg.RecentWindow)
	log.Printf("[catalog] %d listings, %d recent within %s", catalog.Len(), len(derived), cfg.RecentWindow)

	// Favorites storage
	var storage services.StorageFor
	switch cfg.FavoritesBackend {
	case "redis":
		kv := repos.NewRedisKV(repos.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword), "")
		storage = func(sid string) services.Storage { return kv.Scope(sid) }
	default:
		kv := repos.NewKVRepo(db)
		storage = func(sid string) services.Storage { return kv.Scope(sid) }
	}
	log.Printf("[favorites] backend=%s", cfg.FavoritesBackend)
	sessions := services.NewSessions(storage, derived, services.SessionLimits{
		Capacity: cfg.SessionCapacity,
		TTL:      cfg.SessionTTL,
	})

	// Templates & app
	engine := handlers.NewViews(cfg.TemplatesDir)
	engine.Reload(true)

	app := fiber.New(fiber.Config{
		Views: engine,
		// Session ids and listing ids outlive the request
		Immutable:    true,
		ErrorHandler: handlers.ErrorHandler,
	})
	// Global body size guard
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        60,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(string(c.Request().URI().Path()), "/static/")
		},
	}))
	app.Use(csrf.New(csrf.Config{
		KeyLookup:      "form:csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		CookieSecure:   cfg.CookieSecure,
		ContextKey:     "csrf",
		// JSON clients are not browsers posting forms
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(string(c.Request().URI().Path()), "/api/")
		},
		ErrorHandler: handlers.CSRFErrorHandler,
	}))
	app.Use(func(c *fiber.Ctx) error {
		if tok, ok := c.Locals("csrf").(string); ok {
			c.Locals("CSRFToken", tok)
		}
		return c.Next()
	})

	// ---------- Static assets ----------
	log.Printf("[static] /static -> %s", cfg.StaticDir)
	app.Static("/static", cfg.StaticDir)

	// Submissions are throttled harder than browsing
	app.Post("/add", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.submission.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).Render("notfound", fiber.Map{"Message": "Слишком много объявлений. Попробуйте позже."})
		},
	}))

	// ---------- App handlers ----------
	deps := handlers.NewDeps(db, catalog, sessions)
	deps.SecureCookies = cfg.CookieSecure
	handlers.Register(app, deps)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true, "listings": catalog.Len(), "sessions": sessions.Len()})
	})
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Страница не найдена"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
