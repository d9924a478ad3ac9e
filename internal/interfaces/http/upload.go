package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bin-labels/internal/domain"
	"github.com/jhoicas/bin-labels/internal/domain/entity"
	"github.com/jhoicas/bin-labels/internal/infrastructure/tabular"
)

// readUpload lee el campo multipart "file" como tabla de configuración.
// El campo "encoding" sobrescribe la codificación CSV configurada.
func (h *LabelsHandler) readUpload(c *fiber.Ctx) (*entity.ConfigTable, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return nil, fmt.Errorf("%w: falta el archivo (campo file)", domain.ErrInvalidInput)
	}
	if h.maxUploadBytes > 0 && fh.Size > int64(h.maxUploadBytes) {
		return nil, fmt.Errorf("%w: el archivo pesa %d bytes (máximo %d)", domain.ErrFileTooLarge, fh.Size, h.maxUploadBytes)
	}

	encoding := c.FormValue("encoding")
	if encoding == "" {
		encoding = h.csvEncoding
	}

	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("abrir archivo subido: %w", err)
	}
	defer f.Close()

	return tabular.ReadUpload(fh.Filename, f, encoding)
}
