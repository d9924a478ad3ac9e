package tabular

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/jhoicas/bin-labels/internal/domain"
	"github.com/jhoicas/bin-labels/internal/domain/entity"
	"github.com/jhoicas/bin-labels/internal/infrastructure/xlsx"
)

// ReadUpload lee un archivo de configuración según su extensión: .xlsx con excelize,
// .xls se rechaza y cualquier otra se interpreta como CSV en la codificación indicada.
func ReadUpload(filename string, r io.Reader, encoding string) (*entity.ConfigTable, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		return xlsx.ReadConfig(r)
	case ".xls":
		return nil, fmt.Errorf("%w: %s (guarde el libro como .xlsx o .csv)", domain.ErrUnsupportedFormat, filename)
	default:
		return ReadCSV(r, encoding)
	}
}
