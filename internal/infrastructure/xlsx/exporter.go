// Package xlsx exporta la tabla de ubicaciones a Excel y lee configuraciones por bahía desde Excel.
package xlsx

import (
	"context"
	"fmt"

	excelize "github.com/xuri/excelize/v2"

	"github.com/jhoicas/bin-labels/internal/application/labels"
	"github.com/jhoicas/bin-labels/internal/domain/entity"
)

var _ labels.Exporter = (*Exporter)(nil)

// SheetName hoja donde se escriben las ubicaciones.
const SheetName = "Etiquetas"

// headers mismo orden de columnas que la exportación CSV.
var headers = []string{"aisle", "bay", "shelf", "bin", "label"}

var widths = []float64{8, 8, 8, 8, 16}

// Exporter genera un libro .xlsx con una fila por ubicación.
type Exporter struct{}

// NewExporter construye el exportador.
func NewExporter() *Exporter { return &Exporter{} }

// Export escribe encabezado en negrita y las ubicaciones (pasillo, bahía y posición como números).
func (e *Exporter) Export(_ context.Context, records []entity.BinRecord) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}
	if err := writeHeaders(f); err != nil {
		return nil, fmt.Errorf("xlsx: encabezados: %w", err)
	}
	if err := writeRows(f, records); err != nil {
		return nil, fmt.Errorf("xlsx: filas: %w", err)
	}
	if err := setWidths(f); err != nil {
		return nil, fmt.Errorf("xlsx: anchos: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: escribir: %w", err)
	}
	return buf.Bytes(), nil
}

func writeHeaders(f *excelize.File) error {
	style, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return err
	}
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStr(SheetName, cell, h); err != nil {
			return err
		}
		if err := f.SetCellStyle(SheetName, cell, cell, style); err != nil {
			return err
		}
	}
	return nil
}

func writeRows(f *excelize.File, records []entity.BinRecord) error {
	for i, r := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2) // fila 1 es el encabezado
		if err != nil {
			return err
		}
		row := []interface{}{r.Aisle, r.Bay, r.Shelf, r.Bin, r.Label()}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("ubicación %s: %w", r.Label(), err)
		}
	}
	return nil
}

func setWidths(f *excelize.File) error {
	for col, w := range widths {
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(SheetName, name, name, w); err != nil {
			return err
		}
	}
	return nil
}
