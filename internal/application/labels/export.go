package labels

import (
	"fmt"
	"strings"

	"github.com/jhoicas/bin-labels/internal/domain"
)

// Format formato del archivo exportado.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
	FormatPDF  Format = "pdf"
)

var contentTypes = map[Format]string{
	FormatCSV:  "text/csv; charset=utf-8",
	FormatXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	FormatPDF:  "application/pdf",
}

// ParseFormat interpreta el formato pedido; vacío equivale a CSV.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if f == "" {
		return FormatCSV, nil
	}
	if _, ok := contentTypes[f]; !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, s)
	}
	return f, nil
}

// ContentType devuelve el MIME type del formato.
func (f Format) ContentType() string {
	return contentTypes[f]
}

// ExportFile archivo listo para descargar.
type ExportFile struct {
	Name        string
	ContentType string
	Content     []byte
}

// Mode modo de generación.
type Mode string

const (
	ModeUniform Mode = "uniform"
	ModeConfig  Mode = "config"
)

// FileName nombre sugerido del archivo exportado para el modo y formato.
// CSV: bin_labels.csv (uniforme) y bin_labels_from_csv.csv (por bahía).
func (m Mode) FileName(f Format) string {
	base := "bin_labels"
	if m == ModeConfig {
		base = "bin_labels_from_csv"
	}
	return base + "." + string(f)
}
