package http_test

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/bin-labels/internal/interfaces/http"
	"github.com/jhoicas/bin-labels/pkg/logger"
)

func getPage(t *testing.T, app *fiber.App, target string) (int, string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil), -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestPage_Index(t *testing.T) {
	status, body := getPage(t, buildTestApp(nil), "/")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, `action="/preview"`)
	assert.Contains(t, body, `action="/preview/config"`)
	assert.NotContains(t, body, "<table>")
}

func TestPage_PreviewUniforme(t *testing.T) {
	status, body := getPage(t, buildTestApp(nil),
		"/preview?aisles=2&bays_per_aisle=3&shelves_per_bay=4&bins_per_shelf=5&limit=10")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, "120 ubicaciones")
	assert.Contains(t, body, "M01-01-A01")
	assert.NotContains(t, body, "M01-01-C01", "fuera de la primera página")
	assert.Contains(t, body, "offset=10", "enlace a la página siguiente")
	assert.NotContains(t, body, "anterior")
}

func TestPage_PreviewError(t *testing.T) {
	status, body := getPage(t, buildTestApp(nil),
		"/preview?aisles=0&bays_per_aisle=3&shelves_per_bay=4&bins_per_shelf=5")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, body, "[VALIDATION]")
}

func TestPage_PreviewConfig(t *testing.T) {
	resp := doUpload(t, buildTestApp(nil), "/preview/config", "bahias.csv",
		[]byte("aisle,bay,shelves,bins\n1,1,1,2\n"), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "bin_labels_from_csv.csv")
	assert.Contains(t, string(body), "M01-01-A02")
}

func TestPage_PreviewConfigSinColumnas(t *testing.T) {
	resp := doUpload(t, buildTestApp(nil), "/preview/config", "bahias.csv",
		[]byte("aisle,bay\n1,1\n"), nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "[SCHEMA]")
	assert.Contains(t, string(body), "bins, shelves")
}

// ──────────────────────────────────────────────────────────────────────────────
// RequestLogger
// ──────────────────────────────────────────────────────────────────────────────

func TestRequestLogger_RegistraEstado(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "test", Level: "info", Output: &buf})

	app := fiber.New()
	app.Use(apphttp.RequestLogger(log))
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })
	app.Get("/missing", func(c *fiber.Ctx) error { return fiber.ErrNotFound })

	_, err := app.Test(httptest.NewRequest(http.MethodGet, "/ok", nil), -1)
	require.NoError(t, err)
	_, err = app.Test(httptest.NewRequest(http.MethodGet, "/missing", nil), -1)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"path":"/ok"`)
	assert.Contains(t, lines[0], `"status":204`)
	assert.Contains(t, lines[1], `"status":404`)
}
