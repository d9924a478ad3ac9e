package tabular

import (
	"bytes"
	"context"
	"fmt"

	"github.com/gocarina/gocsv"

	"github.com/jhoicas/bin-labels/internal/application/labels"
	"github.com/jhoicas/bin-labels/internal/domain/entity"
)

var _ labels.Exporter = (*CSVExporter)(nil)

// csvRow fija el encabezado exacto del archivo: aisle,bay,shelf,bin,label.
type csvRow struct {
	Aisle int    `csv:"aisle"`
	Bay   int    `csv:"bay"`
	Shelf string `csv:"shelf"`
	Bin   int    `csv:"bin"`
	Label string `csv:"label"`
}

// CSVExporter exporta las ubicaciones a CSV (una fila por ubicación, separador coma).
type CSVExporter struct{}

// NewCSVExporter construye el exportador.
func NewCSVExporter() *CSVExporter { return &CSVExporter{} }

// Export serializa todas las ubicaciones con su etiqueta derivada.
func (e *CSVExporter) Export(_ context.Context, records []entity.BinRecord) ([]byte, error) {
	rows := make([]csvRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, csvRow{Aisle: r.Aisle, Bay: r.Bay, Shelf: r.Shelf, Bin: r.Bin, Label: r.Label()})
	}
	var buf bytes.Buffer
	if err := gocsv.Marshal(rows, &buf); err != nil {
		return nil, fmt.Errorf("csv: serializar: %w", err)
	}
	return buf.Bytes(), nil
}
