package labels

import (
	"context"

	"github.com/jhoicas/bin-labels/internal/domain/entity"
)

// Exporter serializa la tabla completa de ubicaciones a un archivo descargable.
type Exporter interface {
	Export(ctx context.Context, records []entity.BinRecord) ([]byte, error)
}

// Exporters asocia cada formato con su exportador.
type Exporters map[Format]Exporter

// ConfigSource lee una configuración por bahía desde una fuente externa (Google Sheets).
type ConfigSource interface {
	ReadTable(ctx context.Context, sheetRange string) (*entity.ConfigTable, error)
}
