package http

import (
	"bytes"
	"embed"
	"html/template"
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bin-labels/internal/application/dto"
	"github.com/jhoicas/bin-labels/internal/application/labels"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.gohtml"))

// pageData datos de la página con los dos formularios y la tabla de vista previa.
type pageData struct {
	Title         string
	Uniform       dto.UniformRequest
	Result        *dto.LabelsResponse
	Error         string
	ErrorCode     string
	SheetsEnabled bool
	PrevURL       string
	NextURL       string
}

// PageHandler sirve la interfaz HTML: formularios, vista previa y enlaces de descarga.
type PageHandler struct {
	labels *LabelsHandler
}

// NewPageHandler construye el handler reutilizando la lectura de archivos del LabelsHandler.
func NewPageHandler(labelsHandler *LabelsHandler) *PageHandler {
	return &PageHandler{labels: labelsHandler}
}

// Index muestra los formularios vacíos con valores de ejemplo.
// GET /
func (h *PageHandler) Index(c *fiber.Ctx) error {
	return h.render(c, fiber.StatusOK, &pageData{
		Uniform: dto.UniformRequest{Aisles: 2, BaysPerAisle: 3, ShelvesPerBay: 4, BinsPerShelf: 5},
	})
}

// Preview genera la bodega uniforme de la query y muestra una página de la tabla.
// GET /preview?aisles=&bays_per_aisle=&shelves_per_bay=&bins_per_shelf=&limit=&offset=
func (h *PageHandler) Preview(c *fiber.Ctx) error {
	data := &pageData{}
	if err := c.QueryParser(&data.Uniform); err != nil {
		data.Error, data.ErrorCode = "parámetros inválidos", "VALIDATION"
		return h.render(c, fiber.StatusBadRequest, data)
	}
	batch, err := h.labels.uc.GenerateUniform(c.Context(), data.Uniform)
	if err != nil {
		return h.renderError(c, data, err)
	}

	page := pageFrom(c)
	data.Result = labels.ToLabelsResponse(batch, page)
	data.PrevURL, data.NextURL = pageLinks(data.Uniform, data.Result.Page)
	return h.render(c, fiber.StatusOK, data)
}

// PreviewConfig genera las ubicaciones del archivo subido y muestra la primera página.
// POST /preview/config
func (h *PageHandler) PreviewConfig(c *fiber.Ctx) error {
	data := &pageData{}
	table, err := h.labels.readUpload(c)
	if err != nil {
		return h.renderError(c, data, err)
	}
	batch, err := h.labels.uc.GenerateFromTable(c.Context(), table)
	if err != nil {
		return h.renderError(c, data, err)
	}
	data.Result = labels.ToLabelsResponse(batch, pageFrom(c))
	return h.render(c, fiber.StatusOK, data)
}

func (h *PageHandler) renderError(c *fiber.Ctx, data *pageData, err error) error {
	status, code := statusFor(err)
	data.ErrorCode = code
	data.Error = err.Error()
	if status == fiber.StatusInternalServerError {
		h.labels.log.Error().Err(err).Str("path", c.Path()).Msg("error interno")
		data.Error = "error interno, intente más tarde"
	}
	return h.render(c, status, data)
}

func (h *PageHandler) render(c *fiber.Ctx, status int, data *pageData) error {
	data.Title = "Etiquetas de ubicación"
	data.SheetsEnabled = h.labels.uc.SheetsEnabled()

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return err
	}
	c.Type("html", "utf-8")
	return c.Status(status).Send(buf.Bytes())
}

// pageLinks arma los enlaces anterior/siguiente conservando los parámetros del formulario.
func pageLinks(in dto.UniformRequest, page dto.PageResponse) (prev, next string) {
	link := func(offset int) string {
		q := url.Values{}
		q.Set("aisles", strconv.Itoa(in.Aisles))
		q.Set("bays_per_aisle", strconv.Itoa(in.BaysPerAisle))
		q.Set("shelves_per_bay", strconv.Itoa(in.ShelvesPerBay))
		q.Set("bins_per_shelf", strconv.Itoa(in.BinsPerShelf))
		q.Set("limit", strconv.Itoa(page.Limit))
		q.Set("offset", strconv.Itoa(offset))
		return "/preview?" + q.Encode()
	}
	if page.Offset > 0 {
		prevOffset := page.Offset - page.Limit
		if prevOffset < 0 {
			prevOffset = 0
		}
		prev = link(prevOffset)
	}
	if page.Offset+page.Limit < page.Total {
		next = link(page.Offset + page.Limit)
	}
	return prev, next
}
