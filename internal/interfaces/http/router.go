package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bin-labels/docs"
	"github.com/jhoicas/bin-labels/internal/application/labels"
	"github.com/jhoicas/bin-labels/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	LabelUC        *labels.LabelUseCase
	Log            *logger.Logger
	MaxUploadBytes int
	CSVEncoding    string
}

// Router registra la interfaz HTML y las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	labelsHandler := NewLabelsHandler(deps.LabelUC, deps.Log, deps.MaxUploadBytes, deps.CSVEncoding)
	pageHandler := NewPageHandler(labelsHandler)

	// Interfaz HTML
	app.Get("/", pageHandler.Index)
	app.Get("/preview", pageHandler.Preview)
	app.Post("/preview/config", pageHandler.PreviewConfig)

	api := app.Group("/api")

	// Documento OpenAPI registrado en swag
	api.Get("/openapi.json", func(c *fiber.Ctx) error {
		c.Type("json", "utf-8")
		return c.SendString(docs.SwaggerInfo.ReadDoc())
	})

	// Etiquetas de ubicación
	lbl := api.Group("/labels")
	lbl.Post("/uniform", labelsHandler.Uniform)
	lbl.Post("/uniform/export", labelsHandler.UniformExport)
	lbl.Post("/config", labelsHandler.Config)
	lbl.Post("/config/export", labelsHandler.ConfigExport)
	lbl.Post("/sheet", labelsHandler.Sheet)
	lbl.Get("/decode/:label", labelsHandler.Decode)
}
