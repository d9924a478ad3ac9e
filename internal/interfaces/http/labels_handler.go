package http

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bin-labels/internal/application/dto"
	"github.com/jhoicas/bin-labels/internal/application/labels"
	"github.com/jhoicas/bin-labels/internal/domain"
	"github.com/jhoicas/bin-labels/pkg/logger"
)

// LabelsHandler maneja la generación, exportación y decodificación de etiquetas de ubicación.
type LabelsHandler struct {
	uc             *labels.LabelUseCase
	log            *logger.Logger
	maxUploadBytes int
	csvEncoding    string
}

// NewLabelsHandler construye el handler. maxUploadBytes <= 0 no limita el archivo subido.
func NewLabelsHandler(uc *labels.LabelUseCase, log *logger.Logger, maxUploadBytes int, csvEncoding string) *LabelsHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &LabelsHandler{uc: uc, log: log, maxUploadBytes: maxUploadBytes, csvEncoding: csvEncoding}
}

// Uniform godoc
// @Summary      Generar ubicaciones de una bodega uniforme
// @Tags         labels
// @Accept       json
// @Produce      json
// @Param        body    body   dto.UniformRequest  true   "aisles, bays_per_aisle, shelves_per_bay, bins_per_shelf (>= 1)"
// @Param        limit   query  int                 false  "Tamaño de página (default 100, máx 1000)"
// @Param        offset  query  int                 false  "Desplazamiento"
// @Success      200  {object}  dto.LabelsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      413  {object}  dto.ErrorResponse
// @Router       /api/labels/uniform [post]
func (h *LabelsHandler) Uniform(c *fiber.Ctx) error {
	var in dto.UniformRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	batch, err := h.uc.GenerateUniform(c.Context(), in)
	if err != nil {
		return errorResponse(c, h.log, err)
	}
	return c.JSON(labels.ToLabelsResponse(batch, pageFrom(c)))
}

// Config godoc
// @Summary      Generar ubicaciones desde una configuración por bahía
// @Description  Acepta multipart con el campo file (.csv o .xlsx) y encoding opcional, o JSON {"rows":[...]}.
// @Description  Columnas requeridas: aisle, bay, shelves, bins (sin distinguir mayúsculas).
// @Tags         labels
// @Accept       json,mpfd
// @Produce      json
// @Param        file      formData  file    false  "Archivo de configuración (.csv o .xlsx)"
// @Param        encoding  formData  string  false  "utf-8 (default), windows-1252, iso-8859-1"
// @Param        body      body      dto.ConfigRowsRequest  false  "Filas JSON"
// @Param        limit     query     int     false  "Tamaño de página (default 100, máx 1000)"
// @Param        offset    query     int     false  "Desplazamiento"
// @Success      200  {object}  dto.LabelsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      413  {object}  dto.ErrorResponse
// @Router       /api/labels/config [post]
func (h *LabelsHandler) Config(c *fiber.Ctx) error {
	batch, err := h.generateConfig(c)
	if err != nil {
		return errorResponse(c, h.log, err)
	}
	return c.JSON(labels.ToLabelsResponse(batch, pageFrom(c)))
}

// Sheet godoc
// @Summary      Generar ubicaciones desde Google Sheets
// @Description  Lee el rango indicado (o el configurado por defecto); la primera fila es el encabezado.
// @Tags         labels
// @Accept       json
// @Produce      json
// @Param        body    body   dto.SheetRequest  false  "range, ej. Bahias!A1:D200"
// @Param        limit   query  int               false  "Tamaño de página (default 100, máx 1000)"
// @Param        offset  query  int               false  "Desplazamiento"
// @Success      200  {object}  dto.LabelsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/labels/sheet [post]
func (h *LabelsHandler) Sheet(c *fiber.Ctx) error {
	var in dto.SheetRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
	}
	batch, err := h.uc.GenerateFromSheet(c.Context(), in.Range)
	if err != nil {
		return errorResponse(c, h.log, err)
	}
	return c.JSON(labels.ToLabelsResponse(batch, pageFrom(c)))
}

// UniformExport godoc
// @Summary      Descargar ubicaciones de una bodega uniforme
// @Tags         labels
// @Accept       json,x-www-form-urlencoded
// @Produce      text/csv,application/pdf,application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        body    body   dto.UniformRequest  true   "aisles, bays_per_aisle, shelves_per_bay, bins_per_shelf (>= 1)"
// @Param        format  query  string              false  "csv (default), xlsx, pdf"
// @Success      200  {file}    file
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      413  {object}  dto.ErrorResponse
// @Router       /api/labels/uniform/export [post]
func (h *LabelsHandler) UniformExport(c *fiber.Ctx) error {
	format, err := labels.ParseFormat(formatFrom(c))
	if err != nil {
		return errorResponse(c, h.log, err)
	}
	var in dto.UniformRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	batch, err := h.uc.GenerateUniform(c.Context(), in)
	if err != nil {
		return errorResponse(c, h.log, err)
	}
	return h.sendExport(c, batch, format)
}

// ConfigExport godoc
// @Summary      Descargar ubicaciones de una configuración por bahía
// @Tags         labels
// @Accept       json,mpfd
// @Produce      text/csv,application/pdf,application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        file      formData  file    false  "Archivo de configuración (.csv o .xlsx)"
// @Param        encoding  formData  string  false  "utf-8 (default), windows-1252, iso-8859-1"
// @Param        body      body      dto.ConfigRowsRequest  false  "Filas JSON"
// @Param        format    query     string  false  "csv (default), xlsx, pdf"
// @Success      200  {file}    file
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      413  {object}  dto.ErrorResponse
// @Router       /api/labels/config/export [post]
func (h *LabelsHandler) ConfigExport(c *fiber.Ctx) error {
	format, err := labels.ParseFormat(formatFrom(c))
	if err != nil {
		return errorResponse(c, h.log, err)
	}
	batch, err := h.generateConfig(c)
	if err != nil {
		return errorResponse(c, h.log, err)
	}
	return h.sendExport(c, batch, format)
}

// Decode godoc
// @Summary      Descomponer una etiqueta de ubicación
// @Tags         labels
// @Produce      json
// @Param        label  path  string  true  "Etiqueta, ej. M01-02-AB03"
// @Success      200  {object}  dto.BinRecordResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/labels/decode/{label} [get]
func (h *LabelsHandler) Decode(c *fiber.Ctx) error {
	out, err := h.uc.Decode(c.Params("label"))
	if err != nil {
		return errorResponse(c, h.log, err)
	}
	return c.JSON(out)
}

// generateConfig genera el lote por bahía desde un archivo multipart o desde filas JSON.
func (h *LabelsHandler) generateConfig(c *fiber.Ctx) (*labels.Batch, error) {
	if isMultipart(c) {
		table, err := h.readUpload(c)
		if err != nil {
			return nil, err
		}
		return h.uc.GenerateFromTable(c.Context(), table)
	}
	var in dto.ConfigRowsRequest
	if err := c.BodyParser(&in); err != nil {
		return nil, fmt.Errorf("%w: cuerpo inválido", domain.ErrInvalidInput)
	}
	return h.uc.GenerateFromRows(c.Context(), in.Rows)
}

func (h *LabelsHandler) sendExport(c *fiber.Ctx, batch *labels.Batch, format labels.Format) error {
	file, err := h.uc.Export(c.Context(), batch, format)
	if err != nil {
		return errorResponse(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, file.Name))
	return c.Send(file.Content)
}

func pageFrom(c *fiber.Ctx) dto.PageRequest {
	var page dto.PageRequest
	_ = c.QueryParser(&page) // valores inválidos quedan en cero y Normalize aplica el default
	return page
}

// formatFrom toma el formato de la query o, en formularios HTML, del campo format.
func formatFrom(c *fiber.Ctx) string {
	if f := c.Query("format"); f != "" {
		return f
	}
	if isMultipart(c) || strings.HasPrefix(string(c.Request().Header.ContentType()), fiber.MIMEApplicationForm) {
		return c.FormValue("format")
	}
	return ""
}

func isMultipart(c *fiber.Ctx) bool {
	return strings.HasPrefix(string(c.Request().Header.ContentType()), fiber.MIMEMultipartForm)
}
