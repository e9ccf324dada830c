package server

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"

	"alfredoptarigan/resume-vibes/internal/handlers"
	"alfredoptarigan/resume-vibes/internal/views"
)

// Multipart framing and the job description ride on top of the PDF itself.
const formOverhead = 1 << 20

type Handlers struct {
	Page    *handlers.PageHandler
	Analyze *handlers.AnalyzeHandler
	Models  *handlers.ModelsHandler
	History *handlers.HistoryHandler
}

type Options struct {
	MaxFileSize  int64
	WriteTimeout time.Duration
	AccessLog    bool
}

// New builds the fiber app with middleware and routes registered.
func New(h Handlers, opts Options) *fiber.App {
	engine := html.NewFileSystem(http.FS(views.FS), ".html")

	app := fiber.New(fiber.Config{
		AppName:      "Resume Vibes",
		Views:        engine,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: opts.WriteTimeout,
		BodyLimit:    int(opts.MaxFileSize) + formOverhead,
		ErrorHandler: customErrorHandler,
	})

	app.Use(recover.New())
	if opts.AccessLog {
		app.Use(logger.New(logger.Config{
			Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
			TimeFormat: "2006-01-02 15:04:05",
		}))
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	app.Get("/", h.Page.HandleIndex)
	app.Post("/analyze", h.Analyze.HandleAnalyzePage)

	api := app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Post("/analyze", h.Analyze.HandleAnalyzeAPI)
	api.Get("/models", h.Models.HandleListModels)
	api.Get("/analyses", h.History.HandleRecent)

	return app
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
