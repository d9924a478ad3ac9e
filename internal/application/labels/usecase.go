package labels

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/bin-labels/internal/application/dto"
	"github.com/jhoicas/bin-labels/internal/domain"
	"github.com/jhoicas/bin-labels/internal/domain/binlabel"
	"github.com/jhoicas/bin-labels/internal/domain/entity"
	"github.com/jhoicas/bin-labels/pkg/logger"
)

// Batch resultado de una solicitud de generación. No se persiste.
type Batch struct {
	ID       string
	Mode     Mode
	Records  []entity.BinRecord
	FileName string
}

// LabelUseCase casos de uso de generación y exportación de etiquetas de ubicación.
// El tope de ubicaciones se aplica aquí, antes de invocar al dominio.
type LabelUseCase struct {
	maxRecords int
	exporters  Exporters
	sheets     ConfigSource
	log        *logger.Logger
}

// NewLabelUseCase construye el caso de uso. maxRecords <= 0 desactiva el tope;
// sheets puede ser nil (Google Sheets deshabilitado).
func NewLabelUseCase(maxRecords int, exporters Exporters, sheets ConfigSource, log *logger.Logger) *LabelUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &LabelUseCase{
		maxRecords: maxRecords,
		exporters:  exporters,
		sheets:     sheets,
		log:        log,
	}
}

// SheetsEnabled indica si hay una fuente de Google Sheets configurada.
func (uc *LabelUseCase) SheetsEnabled() bool {
	return uc.sheets != nil
}

// GenerateUniform genera las ubicaciones de una bodega uniforme.
func (uc *LabelUseCase) GenerateUniform(ctx context.Context, in dto.UniformRequest) (*Batch, error) {
	if in.Aisles < 1 || in.BaysPerAisle < 1 || in.ShelvesPerBay < 1 || in.BinsPerShelf < 1 {
		return nil, fmt.Errorf("%w: aisles, bays_per_aisle, shelves_per_bay y bins_per_shelf deben ser >= 1",
			domain.ErrInvalidInput)
	}
	total, ok := binlabel.CountUniform(in.Aisles, in.BaysPerAisle, in.ShelvesPerBay, in.BinsPerShelf)
	if err := uc.checkCeiling(ModeUniform, total, ok); err != nil {
		return nil, err
	}
	records := binlabel.BuildUniform(in.Aisles, in.BaysPerAisle, in.ShelvesPerBay, in.BinsPerShelf)
	return uc.newBatch(ModeUniform, records), nil
}

// GenerateFromTable valida y decodifica una tabla de configuración por bahía y genera sus ubicaciones.
// Cualquier error aborta la solicitud; nunca se devuelve una salida parcial.
func (uc *LabelUseCase) GenerateFromTable(ctx context.Context, table *entity.ConfigTable) (*Batch, error) {
	rows, err := DecodeBayConfigs(table)
	if err != nil {
		uc.log.Warn().Err(err).Msg("configuración por bahía rechazada")
		return nil, err
	}
	return uc.GenerateFromConfig(ctx, rows)
}

// GenerateFromConfig genera las ubicaciones de filas ya tipadas.
func (uc *LabelUseCase) GenerateFromConfig(ctx context.Context, rows []entity.BayConfig) (*Batch, error) {
	total, ok := binlabel.CountFromConfig(rows)
	if err := uc.checkCeiling(ModeConfig, total, ok); err != nil {
		return nil, err
	}
	return uc.newBatch(ModeConfig, binlabel.BuildFromConfig(rows)), nil
}

// GenerateFromRows genera ubicaciones a partir de filas JSON sin tipar.
func (uc *LabelUseCase) GenerateFromRows(ctx context.Context, rows []map[string]any) (*Batch, error) {
	table, err := TableFromRows(rows)
	if err != nil {
		return nil, err
	}
	return uc.GenerateFromTable(ctx, table)
}

// GenerateFromSheet lee la configuración por bahía desde Google Sheets y genera sus ubicaciones.
func (uc *LabelUseCase) GenerateFromSheet(ctx context.Context, sheetRange string) (*Batch, error) {
	if uc.sheets == nil {
		return nil, domain.ErrSheetsDisabled
	}
	table, err := uc.sheets.ReadTable(ctx, sheetRange)
	if err != nil {
		return nil, err
	}
	return uc.GenerateFromTable(ctx, table)
}

// Export serializa el lote completo en el formato pedido.
func (uc *LabelUseCase) Export(ctx context.Context, batch *Batch, format Format) (*ExportFile, error) {
	exporter, ok := uc.exporters[format]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, format)
	}
	content, err := exporter.Export(ctx, batch.Records)
	if err != nil {
		return nil, fmt.Errorf("exportar %s: %w", format, err)
	}
	uc.log.Info().
		Str("batch_id", batch.ID).
		Str("format", string(format)).
		Int("bytes", len(content)).
		Msg("lote exportado")
	return &ExportFile{
		Name:        batch.Mode.FileName(format),
		ContentType: format.ContentType(),
		Content:     content,
	}, nil
}

// Decode descompone una etiqueta en pasillo, bahía, nivel y posición.
func (uc *LabelUseCase) Decode(label string) (*dto.BinRecordResponse, error) {
	r, err := binlabel.Parse(label)
	if err != nil {
		return nil, err
	}
	out := ToRecordResponse(r)
	return &out, nil
}

func (uc *LabelUseCase) checkCeiling(mode Mode, total int, ok bool) error {
	if ok && (uc.maxRecords <= 0 || total <= uc.maxRecords) {
		return nil
	}
	uc.log.Warn().
		Str("mode", string(mode)).
		Int("records", total).
		Int("max_records", uc.maxRecords).
		Msg("solicitud supera el tope de ubicaciones")
	if !ok {
		return fmt.Errorf("%w (máximo %d)", domain.ErrTooManyRecords, uc.maxRecords)
	}
	return fmt.Errorf("%w: %d solicitadas, máximo %d", domain.ErrTooManyRecords, total, uc.maxRecords)
}

func (uc *LabelUseCase) newBatch(mode Mode, records []entity.BinRecord) *Batch {
	b := &Batch{
		ID:       uuid.New().String(),
		Mode:     mode,
		Records:  records,
		FileName: mode.FileName(FormatCSV),
	}
	uc.log.Info().
		Str("batch_id", b.ID).
		Str("mode", string(mode)).
		Int("records", len(records)).
		Msg("ubicaciones generadas")
	return b
}

// ToRecordResponse convierte una ubicación a su DTO, derivando la etiqueta.
func ToRecordResponse(r entity.BinRecord) dto.BinRecordResponse {
	return dto.BinRecordResponse{
		Aisle: r.Aisle,
		Bay:   r.Bay,
		Shelf: r.Shelf,
		Bin:   r.Bin,
		Label: r.Label(),
	}
}

// ToLabelsResponse arma la página pedida del lote.
func ToLabelsResponse(b *Batch, page dto.PageRequest) *dto.LabelsResponse {
	page.Normalize()
	from, to := page.Window(len(b.Records))
	items := make([]dto.BinRecordResponse, 0, to-from)
	for _, r := range b.Records[from:to] {
		items = append(items, ToRecordResponse(r))
	}
	return &dto.LabelsResponse{
		BatchID:  b.ID,
		Mode:     string(b.Mode),
		FileName: b.FileName,
		Items:    items,
		Page:     dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: len(b.Records)},
	}
}
