// Package pdf genera la hoja imprimible de etiquetas de ubicación.
//
// Layout de la página A4 (tres etiquetas por fila):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: título + cantidad de ubicaciones                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  [QR] M01-01-A01   │  [QR] M01-01-A02   │  [QR] M01-01-A03   │
//	│       Pasillo/Bahía│       Pasillo/Bahía│       Pasillo/Bahía│
//	│  ...                                                         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/bin-labels/internal/application/labels"
	"github.com/jhoicas/bin-labels/internal/domain"
	"github.com/jhoicas/bin-labels/internal/domain/entity"
)

var _ labels.Exporter = (*LabelSheetGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// labelsPerRow etiquetas por fila; cada una ocupa 4 de las 12 columnas de la grilla.
const labelsPerRow = 3

// ── Generator ─────────────────────────────────────────────────────────────────

// LabelSheetGenerator implementa labels.Exporter usando Maroto v2.
type LabelSheetGenerator struct {
	maxLabels int
}

// NewLabelSheetGenerator construye el generador. maxLabels <= 0 no limita la cantidad de etiquetas.
func NewLabelSheetGenerator(maxLabels int) *LabelSheetGenerator {
	return &LabelSheetGenerator{maxLabels: maxLabels}
}

// Export genera el PDF y devuelve sus bytes.
func (g *LabelSheetGenerator) Export(_ context.Context, records []entity.BinRecord) ([]byte, error) {
	if g.maxLabels > 0 && len(records) > g.maxLabels {
		return nil, fmt.Errorf("%w: la hoja PDF admite hasta %d etiquetas (%d solicitadas)",
			domain.ErrTooManyRecords, g.maxLabels, len(records))
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(8).WithRightMargin(8).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Etiquetas de ubicación", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(len(records)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(labelRows(records)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y total de ubicaciones (der).
func headerRow(total int) core.Row {
	return row.New(12).Add(
		col.New(8).Add(
			text.New("ETIQUETAS DE UBICACIÓN", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New(fmt.Sprintf("%d ubicaciones", total), props.Text{
				Size: 9, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

// labelRows: una fila cada tres etiquetas, con QR del texto de la etiqueta.
func labelRows(records []entity.BinRecord) []core.Row {
	rows := make([]core.Row, 0, len(records)/labelsPerRow+1)
	for start := 0; start < len(records); start += labelsPerRow {
		end := start + labelsPerRow
		if end > len(records) {
			end = len(records)
		}
		cols := make([]core.Col, 0, labelsPerRow*2)
		for _, r := range records[start:end] {
			cols = append(cols, labelCols(r)...)
		}
		// completar la fila para que la última no quede estirada
		for i := end - start; i < labelsPerRow; i++ {
			cols = append(cols, col.New(4))
		}
		rows = append(rows, row.New(28).Add(cols...))
	}
	return rows
}

func labelCols(r entity.BinRecord) []core.Col {
	label := r.Label()
	return []core.Col{
		col.New(1).Add(code.NewQr(label, props.Rect{
			Percent: 90,
			Center:  true,
		})),
		col.New(3).Add(
			text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 12, Top: 6, Left: 2,
			}),
			text.New(fmt.Sprintf("Pasillo %d · Bahía %d", r.Aisle, r.Bay),
				props.Text{Size: 7, Top: 13, Left: 2, Color: colorGray}),
			text.New(fmt.Sprintf("Nivel %s · Posición %d", r.Shelf, r.Bin),
				props.Text{Size: 7, Top: 17, Left: 2, Color: colorGray}),
		),
	}
}
