package labels_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bin-labels/internal/application/dto"
	"github.com/jhoicas/bin-labels/internal/application/labels"
	"github.com/jhoicas/bin-labels/internal/domain"
	"github.com/jhoicas/bin-labels/internal/domain/entity"
	"github.com/jhoicas/bin-labels/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de prueba
// ──────────────────────────────────────────────────────────────────────────────

type fakeExporter struct {
	got []entity.BinRecord
	err error
}

func (f *fakeExporter) Export(_ context.Context, records []entity.BinRecord) ([]byte, error) {
	f.got = records
	if f.err != nil {
		return nil, f.err
	}
	return []byte("ok"), nil
}

type fakeSheets struct {
	table *entity.ConfigTable
	rng   string
}

func (f *fakeSheets) ReadTable(_ context.Context, sheetRange string) (*entity.ConfigTable, error) {
	f.rng = sheetRange
	return f.table, nil
}

func newUseCase(maxRecords int, exp *fakeExporter, sheets labels.ConfigSource) *labels.LabelUseCase {
	exporters := labels.Exporters{}
	if exp != nil {
		exporters[labels.FormatCSV] = exp
	}
	return labels.NewLabelUseCase(maxRecords, exporters, sheets, logger.Nop())
}

func threeBayTable() *entity.ConfigTable {
	return &entity.ConfigTable{
		Columns: []string{"Aisle", "BAY", "shelves", "Bins", "notes"},
		Rows: [][]string{
			{"2", "1", "5", "12", "fondo"},
			{"1", "1", "4", "10", ""},
			{"1", "2", "3", "8", ""},
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Modo uniforme
// ──────────────────────────────────────────────────────────────────────────────

func TestGenerateUniform_UnaUbicacion(t *testing.T) {
	uc := newUseCase(0, nil, nil)
	batch, err := uc.GenerateUniform(context.Background(), dto.UniformRequest{
		Aisles: 1, BaysPerAisle: 1, ShelvesPerBay: 1, BinsPerShelf: 1,
	})
	require.NoError(t, err)
	require.Len(t, batch.Records, 1)
	assert.Equal(t, "M01-01-A01", batch.Records[0].Label())
	assert.Equal(t, labels.ModeUniform, batch.Mode)
	assert.Equal(t, "bin_labels.csv", batch.FileName)
	assert.NotEmpty(t, batch.ID)
}

func TestGenerateUniform_ParametroNoPositivo(t *testing.T) {
	uc := newUseCase(0, nil, nil)
	_, err := uc.GenerateUniform(context.Background(), dto.UniformRequest{
		Aisles: 1, BaysPerAisle: 0, ShelvesPerBay: 1, BinsPerShelf: 1,
	})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestGenerateUniform_SuperaTope(t *testing.T) {
	uc := newUseCase(100, nil, nil)
	_, err := uc.GenerateUniform(context.Background(), dto.UniformRequest{
		Aisles: 2, BaysPerAisle: 2, ShelvesPerBay: 5, BinsPerShelf: 6,
	})
	assert.True(t, errors.Is(err, domain.ErrTooManyRecords))

	batch, err := uc.GenerateUniform(context.Background(), dto.UniformRequest{
		Aisles: 2, BaysPerAisle: 2, ShelvesPerBay: 5, BinsPerShelf: 5,
	})
	require.NoError(t, err, "exactamente el tope está permitido")
	assert.Len(t, batch.Records, 100)
}

func TestGenerateUniform_DesbordeRechazadoSinTope(t *testing.T) {
	uc := newUseCase(0, nil, nil)
	huge := int(^uint(0) >> 2)
	_, err := uc.GenerateUniform(context.Background(), dto.UniformRequest{
		Aisles: huge, BaysPerAisle: huge, ShelvesPerBay: 1, BinsPerShelf: 1,
	})
	assert.True(t, errors.Is(err, domain.ErrTooManyRecords))
}

// ──────────────────────────────────────────────────────────────────────────────
// Modo por bahía
// ──────────────────────────────────────────────────────────────────────────────

func TestGenerateFromTable_EjemploTresBahias(t *testing.T) {
	uc := newUseCase(0, nil, nil)
	batch, err := uc.GenerateFromTable(context.Background(), threeBayTable())
	require.NoError(t, err)
	require.Len(t, batch.Records, 124)
	assert.Equal(t, "M01-01-A01", batch.Records[0].Label())
	assert.Equal(t, "M01-02-A01", batch.Records[40].Label())
	assert.Equal(t, "M02-01-A01", batch.Records[64].Label())
	assert.Equal(t, "bin_labels_from_csv.csv", batch.FileName)
}

func TestGenerateFromTable_FaltaBins(t *testing.T) {
	uc := newUseCase(0, nil, nil)
	_, err := uc.GenerateFromTable(context.Background(), &entity.ConfigTable{
		Columns: []string{"aisle", "bay", "shelves"},
		Rows:    [][]string{{"1", "1", "2"}},
	})
	var schemaErr *domain.SchemaError
	require.True(t, errors.As(err, &schemaErr))
	assert.Contains(t, err.Error(), "bins")
}

func TestGenerateFromTable_CeldasFlexibles(t *testing.T) {
	uc := newUseCase(0, nil, nil)
	batch, err := uc.GenerateFromTable(context.Background(), &entity.ConfigTable{
		Columns: []string{"aisle", "bay", "shelves", "bins"},
		Rows:    [][]string{{" 3 ", "07", "2.0", "1"}},
	})
	require.NoError(t, err)
	require.Len(t, batch.Records, 2)
	assert.Equal(t, "M03-07-A01", batch.Records[0].Label())
	assert.Equal(t, "M03-07-B01", batch.Records[1].Label())
}

func TestGenerateFromTable_CeldaInvalida(t *testing.T) {
	uc := newUseCase(0, nil, nil)
	for _, cell := range []string{"", "abc", "2.5"} {
		_, err := uc.GenerateFromTable(context.Background(), &entity.ConfigTable{
			Columns: []string{"aisle", "bay", "shelves", "bins"},
			Rows:    [][]string{{"1", "1", "1", "1"}, {"1", "2", cell, "1"}},
		})
		require.True(t, errors.Is(err, domain.ErrInvalidInput), "celda %q", cell)
		assert.Contains(t, err.Error(), "fila 2")
	}
}

func TestGenerateFromTable_FilaCorta(t *testing.T) {
	uc := newUseCase(0, nil, nil)
	_, err := uc.GenerateFromTable(context.Background(), &entity.ConfigTable{
		Columns: []string{"aisle", "bay", "shelves", "bins"},
		Rows:    [][]string{{"1", "1"}},
	})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestGenerateFromTable_SuperaTope(t *testing.T) {
	uc := newUseCase(123, nil, nil)
	_, err := uc.GenerateFromTable(context.Background(), threeBayTable())
	assert.True(t, errors.Is(err, domain.ErrTooManyRecords))
}

func TestGenerateFromRows_JSON(t *testing.T) {
	uc := newUseCase(0, nil, nil)
	batch, err := uc.GenerateFromRows(context.Background(), []map[string]any{
		{"aisle": float64(1), "bay": float64(2), "Shelves": float64(1), "bins": "2"},
		{"aisle": float64(1), "bay": float64(1), "Shelves": float64(1), "bins": float64(1), "zone": "A"},
	})
	require.NoError(t, err)
	require.Len(t, batch.Records, 3)
	assert.Equal(t, "M01-01-A01", batch.Records[0].Label())
	assert.Equal(t, "M01-02-A02", batch.Records[2].Label())
}

func TestGenerateFromRows_ColumnaAmbigua(t *testing.T) {
	uc := newUseCase(0, nil, nil)
	_, err := uc.GenerateFromRows(context.Background(), []map[string]any{
		{"aisle": 1, "Aisle": 2, "bay": 1, "shelves": 1, "bins": 1},
	})
	assert.True(t, errors.Is(err, domain.ErrAmbiguousColumn))
}

func TestGenerateFromSheet(t *testing.T) {
	uc := newUseCase(0, nil, nil)
	_, err := uc.GenerateFromSheet(context.Background(), "Bahias!A1:D10")
	assert.True(t, errors.Is(err, domain.ErrSheetsDisabled))
	assert.False(t, uc.SheetsEnabled())

	sheets := &fakeSheets{table: threeBayTable()}
	uc = newUseCase(0, nil, sheets)
	batch, err := uc.GenerateFromSheet(context.Background(), "Bahias!A1:D10")
	require.NoError(t, err)
	assert.Len(t, batch.Records, 124)
	assert.Equal(t, "Bahias!A1:D10", sheets.rng)
}

// ──────────────────────────────────────────────────────────────────────────────
// Exportación, paginación y decodificación
// ──────────────────────────────────────────────────────────────────────────────

func TestExport_UsaExportadorYNombreDelModo(t *testing.T) {
	exp := &fakeExporter{}
	uc := newUseCase(0, exp, nil)
	batch, err := uc.GenerateFromTable(context.Background(), threeBayTable())
	require.NoError(t, err)

	file, err := uc.Export(context.Background(), batch, labels.FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "bin_labels_from_csv.csv", file.Name)
	assert.Equal(t, "text/csv; charset=utf-8", file.ContentType)
	assert.Equal(t, []byte("ok"), file.Content)
	assert.Len(t, exp.got, 124, "se exporta el lote completo, no una página")
}

func TestExport_FormatoSinExportador(t *testing.T) {
	uc := newUseCase(0, &fakeExporter{}, nil)
	batch, err := uc.GenerateUniform(context.Background(), dto.UniformRequest{
		Aisles: 1, BaysPerAisle: 1, ShelvesPerBay: 1, BinsPerShelf: 1,
	})
	require.NoError(t, err)
	_, err = uc.Export(context.Background(), batch, labels.FormatPDF)
	assert.True(t, errors.Is(err, domain.ErrUnsupportedFormat))
}

func TestExport_ErrorDelExportador(t *testing.T) {
	boom := errors.New("disco lleno")
	uc := newUseCase(0, &fakeExporter{err: boom}, nil)
	batch, err := uc.GenerateUniform(context.Background(), dto.UniformRequest{
		Aisles: 1, BaysPerAisle: 1, ShelvesPerBay: 1, BinsPerShelf: 1,
	})
	require.NoError(t, err)
	_, err = uc.Export(context.Background(), batch, labels.FormatCSV)
	assert.True(t, errors.Is(err, boom))
}

func TestParseFormat(t *testing.T) {
	f, err := labels.ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, labels.FormatCSV, f)

	f, err = labels.ParseFormat(" XLSX ")
	require.NoError(t, err)
	assert.Equal(t, labels.FormatXLSX, f)

	_, err = labels.ParseFormat("docx")
	assert.True(t, errors.Is(err, domain.ErrUnsupportedFormat))
}

func TestModeFileName(t *testing.T) {
	assert.Equal(t, "bin_labels.pdf", labels.ModeUniform.FileName(labels.FormatPDF))
	assert.Equal(t, "bin_labels_from_csv.xlsx", labels.ModeConfig.FileName(labels.FormatXLSX))
}

func TestToLabelsResponse_Paginacion(t *testing.T) {
	uc := newUseCase(0, nil, nil)
	batch, err := uc.GenerateUniform(context.Background(), dto.UniformRequest{
		Aisles: 1, BaysPerAisle: 1, ShelvesPerBay: 2, BinsPerShelf: 3,
	})
	require.NoError(t, err)

	resp := labels.ToLabelsResponse(batch, dto.PageRequest{Limit: 4, Offset: 2})
	assert.Equal(t, 6, resp.Page.Total)
	require.Len(t, resp.Items, 4)
	assert.Equal(t, "M01-01-A03", resp.Items[0].Label)
	assert.Equal(t, "M01-01-B03", resp.Items[3].Label)

	resp = labels.ToLabelsResponse(batch, dto.PageRequest{Offset: 50})
	assert.Empty(t, resp.Items)
	assert.Equal(t, dto.DefaultPageLimit, resp.Page.Limit)
}

func TestDecode(t *testing.T) {
	uc := newUseCase(0, nil, nil)
	out, err := uc.Decode("M03-07-C05")
	require.NoError(t, err)
	assert.Equal(t, dto.BinRecordResponse{Aisle: 3, Bay: 7, Shelf: "C", Bin: 5, Label: "M03-07-C05"}, *out)

	_, err = uc.Decode("bodega-1")
	assert.True(t, errors.Is(err, domain.ErrInvalidLabel))
}
