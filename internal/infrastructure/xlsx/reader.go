package xlsx

import (
	"fmt"
	"io"

	excelize "github.com/xuri/excelize/v2"

	"github.com/jhoicas/bin-labels/internal/domain"
	"github.com/jhoicas/bin-labels/internal/domain/entity"
)

// ReadConfig lee la primera hoja de un libro .xlsx: la primera fila es el encabezado.
// Las filas completamente vacías se descartan.
func ReadConfig(r io.Reader) (*entity.ConfigTable, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedTable, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: libro sin hojas", domain.ErrMalformedTable)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: hoja %q: %v", domain.ErrMalformedTable, sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: hoja %q vacía", domain.ErrMalformedTable, sheets[0])
	}

	table := &entity.ConfigTable{Columns: rows[0]}
	for _, row := range rows[1:] {
		if isBlank(row) {
			continue
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

func isBlank(row []string) bool {
	for _, v := range row {
		if v != "" {
			return false
		}
	}
	return true
}
