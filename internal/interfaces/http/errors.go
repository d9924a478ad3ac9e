package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bin-labels/internal/application/dto"
	"github.com/jhoicas/bin-labels/internal/domain"
	"github.com/jhoicas/bin-labels/pkg/logger"
)

// statusFor traduce un error de dominio a código HTTP y código de error de la API.
func statusFor(err error) (int, string) {
	var schemaErr *domain.SchemaError
	switch {
	case errors.As(err, &schemaErr):
		return fiber.StatusBadRequest, "SCHEMA"
	case errors.Is(err, domain.ErrAmbiguousColumn):
		return fiber.StatusBadRequest, "AMBIGUOUS_COLUMN"
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, "VALIDATION"
	case errors.Is(err, domain.ErrMalformedTable):
		return fiber.StatusBadRequest, "INVALID_FILE"
	case errors.Is(err, domain.ErrUnsupportedFormat):
		return fiber.StatusBadRequest, "UNSUPPORTED_FORMAT"
	case errors.Is(err, domain.ErrTooManyRecords):
		return fiber.StatusRequestEntityTooLarge, "TOO_MANY_RECORDS"
	case errors.Is(err, domain.ErrFileTooLarge):
		return fiber.StatusRequestEntityTooLarge, "FILE_TOO_LARGE"
	case errors.Is(err, domain.ErrInvalidLabel):
		return fiber.StatusBadRequest, "INVALID_LABEL"
	case errors.Is(err, domain.ErrSheetsDisabled):
		return fiber.StatusServiceUnavailable, "SHEETS_DISABLED"
	default:
		return fiber.StatusInternalServerError, "INTERNAL"
	}
}

// errorResponse responde el error como dto.ErrorResponse. Los errores internos se registran
// y no exponen el detalle al cliente.
func errorResponse(c *fiber.Ctx, log *logger.Logger, err error) error {
	status, code := statusFor(err)
	msg := err.Error()
	if status == fiber.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Path()).Msg("error interno")
		msg = "error interno, intente más tarde"
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: msg})
}
