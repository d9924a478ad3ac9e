package domain

import (
	"errors"
	"sort"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrTooManyRecords    = errors.New("la solicitud supera el máximo de ubicaciones permitido")
	ErrUnsupportedFormat = errors.New("formato no soportado")
	ErrMalformedTable    = errors.New("archivo de configuración ilegible")
	ErrAmbiguousColumn   = errors.New("columna requerida duplicada")
	ErrInvalidLabel      = errors.New("etiqueta de ubicación inválida")
	ErrSheetsDisabled    = errors.New("Google Sheets no está configurado")
	ErrFileTooLarge      = errors.New("el archivo supera el tamaño máximo permitido")
)

// SchemaError indica que la configuración por bahía no trae todas las columnas requeridas.
type SchemaError struct {
	Missing []string
}

// NewSchemaError construye el error con las columnas faltantes ordenadas alfabéticamente.
func NewSchemaError(missing []string) *SchemaError {
	sorted := append([]string(nil), missing...)
	sort.Strings(sorted)
	return &SchemaError{Missing: sorted}
}

func (e *SchemaError) Error() string {
	return "faltan columnas en la configuración: " + strings.Join(e.Missing, ", ")
}
