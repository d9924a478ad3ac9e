package sheets

import (
	"context"
	"fmt"

	"github.com/spf13/cast"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/jhoicas/bin-labels/internal/application/labels"
	"github.com/jhoicas/bin-labels/internal/domain"
	"github.com/jhoicas/bin-labels/internal/domain/entity"
	"github.com/jhoicas/bin-labels/pkg/logger"
)

var _ labels.ConfigSource = (*ConfigSource)(nil)

// Config datos de acceso a la planilla con la configuración por bahía.
type Config struct {
	CredentialsPath string
	SpreadsheetID   string
	DefaultRange    string
}

// ConfigSource lee la configuración por bahía desde Google Sheets (solo lectura).
type ConfigSource struct {
	service       *sheetsapi.Service
	spreadsheetID string
	defaultRange  string
	log           *logger.Logger
}

// NewConfigSource inicializa el cliente de Sheets con la cuenta de servicio indicada.
func NewConfigSource(ctx context.Context, cfg Config, log *logger.Logger) (*ConfigSource, error) {
	if cfg.SpreadsheetID == "" {
		return nil, fmt.Errorf("sheets: spreadsheet id vacío")
	}
	if log == nil {
		log = logger.Nop()
	}

	service, err := sheetsapi.NewService(ctx,
		option.WithCredentialsFile(cfg.CredentialsPath),
		option.WithScopes(sheetsapi.SpreadsheetsReadonlyScope),
	)
	if err != nil {
		return nil, fmt.Errorf("sheets: inicializar cliente: %w", err)
	}

	return &ConfigSource{
		service:       service,
		spreadsheetID: cfg.SpreadsheetID,
		defaultRange:  cfg.DefaultRange,
		log:           log,
	}, nil
}

// ReadTable lee el rango (o el rango por defecto si viene vacío); la primera fila es el encabezado.
func (s *ConfigSource) ReadTable(ctx context.Context, sheetRange string) (*entity.ConfigTable, error) {
	if sheetRange == "" {
		sheetRange = s.defaultRange
	}
	if sheetRange == "" {
		return nil, fmt.Errorf("%w: rango de la planilla vacío", domain.ErrInvalidInput)
	}

	resp, err := s.service.Spreadsheets.Values.Get(s.spreadsheetID, sheetRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("sheets: leer rango %s: %w", sheetRange, err)
	}

	table, err := ToConfigTable(resp.Values)
	if err != nil {
		return nil, fmt.Errorf("rango %s: %w", sheetRange, err)
	}
	s.log.Debug().Str("range", sheetRange).Int("rows", len(table.Rows)).Msg("configuración leída desde sheets")
	return table, nil
}

// ToConfigTable convierte los valores crudos de la API en una ConfigTable.
// Sheets omite las celdas vacías al final de cada fila; DecodeBayConfigs las trata como vacías.
func ToConfigTable(values [][]interface{}) (*entity.ConfigTable, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: rango sin datos", domain.ErrMalformedTable)
	}

	header, err := toStrings(values[0])
	if err != nil {
		return nil, fmt.Errorf("%w: encabezado: %v", domain.ErrMalformedTable, err)
	}

	table := &entity.ConfigTable{Columns: header, Rows: make([][]string, 0, len(values)-1)}
	for i, raw := range values[1:] {
		if len(raw) == 0 {
			continue
		}
		row, err := toStrings(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: fila %d: %v", domain.ErrMalformedTable, i+1, err)
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

func toStrings(cells []interface{}) ([]string, error) {
	out := make([]string, len(cells))
	for i, c := range cells {
		s, err := cast.ToStringE(c)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}
