// @title        Bin Labels API
// @version      1.0
// @description  Generador de etiquetas de ubicación de bodega (pasillo, bahía, nivel, posición).
// @BasePath     /
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/bin-labels/internal/application/labels"
	"github.com/jhoicas/bin-labels/internal/infrastructure/pdf"
	"github.com/jhoicas/bin-labels/internal/infrastructure/sheets"
	"github.com/jhoicas/bin-labels/internal/infrastructure/tabular"
	"github.com/jhoicas/bin-labels/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/bin-labels/internal/interfaces/http"
	"github.com/jhoicas/bin-labels/pkg/config"
	"github.com/jhoicas/bin-labels/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Int("max_records", cfg.Labels.MaxRecords).
		Msg("iniciando aplicación")

	ctx := context.Background()

	exporters := labels.Exporters{
		labels.FormatCSV:  tabular.NewCSVExporter(),
		labels.FormatXLSX: xlsx.NewExporter(),
		labels.FormatPDF:  pdf.NewLabelSheetGenerator(cfg.Labels.MaxPDFLabels),
	}

	// Google Sheets es opcional: sin credenciales la ruta responde 503.
	var sheetSource labels.ConfigSource
	if cfg.Sheets.Enabled() {
		src, err := sheets.NewConfigSource(ctx, sheets.Config{
			CredentialsPath: cfg.Sheets.CredentialsPath,
			SpreadsheetID:   cfg.Sheets.SpreadsheetID,
			DefaultRange:    cfg.Sheets.DefaultRange,
		}, log.Named("sheets"))
		if err != nil {
			log.Fatal().Err(err).Msg("cliente de Google Sheets")
		}
		sheetSource = src
		log.Info().Str("spreadsheet_id", cfg.Sheets.SpreadsheetID).Msg("Google Sheets habilitado")
	}

	labelUC := labels.NewLabelUseCase(cfg.Labels.MaxRecords, exporters, sheetSource, log.Named("labels"))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 60, // exportaciones grandes (PDF/XLSX)
		IdleTimeout:  time.Second * 60,
		// margen para el resto del multipart; el tope del archivo lo aplica el handler
		BodyLimit: cfg.Labels.MaxUploadBytes() + 1024*1024,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Named("http")))

	// Swagger UI en local: http://localhost:<port>/docs (solo si existe el swagger.json)
	if _, err := os.Stat(cfg.Docs.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.Docs.SwaggerFile,
			Path:     "docs",
			Title:    "Bin Labels API",
		}))
	} else {
		log.Warn().Str("file", cfg.Docs.SwaggerFile).Msg("swagger.json no encontrado, /docs deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		LabelUC:        labelUC,
		Log:            log.Named("http"),
		MaxUploadBytes: cfg.Labels.MaxUploadBytes(),
		CSVEncoding:    cfg.Labels.CSVEncoding,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
