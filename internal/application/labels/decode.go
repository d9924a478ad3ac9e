package labels

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cast"

	"github.com/jhoicas/bin-labels/internal/domain"
	"github.com/jhoicas/bin-labels/internal/domain/binlabel"
	"github.com/jhoicas/bin-labels/internal/domain/entity"
)

// maxCellInt límite de enteros representables sin pérdida al venir de un float.
const maxCellInt = 1 << 53

// DecodeBayConfigs valida las columnas de la tabla y convierte cada fila en un BayConfig.
//
// Retorna:
//   - *domain.SchemaError          si falta alguna columna requerida.
//   - domain.ErrAmbiguousColumn    si una columna requerida está duplicada.
//   - domain.ErrInvalidInput       si una celda requerida está vacía o no es entera.
func DecodeBayConfigs(table *entity.ConfigTable) ([]entity.BayConfig, error) {
	if table == nil {
		return nil, fmt.Errorf("%w: tabla vacía", domain.ErrInvalidInput)
	}
	index, err := binlabel.RequireColumns(table.Columns)
	if err != nil {
		return nil, err
	}

	rows := make([]entity.BayConfig, 0, len(table.Rows))
	for i, raw := range table.Rows {
		values := make(map[string]any, len(index))
		for name, col := range index {
			cell := ""
			if col < len(raw) {
				cell = raw[col]
			}
			values[name] = cell
		}

		var cfg entity.BayConfig
		dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			DecodeHook: cellToInt,
			Result:     &cfg,
		})
		if err != nil {
			return nil, fmt.Errorf("decoder: %w", err)
		}
		if err := dec.Decode(values); err != nil {
			return nil, fmt.Errorf("%w: fila %d: %v", domain.ErrInvalidInput, i+1, err)
		}
		rows = append(rows, cfg)
	}
	return rows, nil
}

// cellToInt convierte celdas de texto ("3", " 3 ", "3.0") a int para mapstructure.
func cellToInt(_ reflect.Type, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.Int {
		return data, nil
	}
	s, ok := data.(string)
	if !ok {
		return cast.ToIntE(data)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.New("celda vacía")
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := cast.ToFloat64E(s)
	if err != nil || math.IsInf(f, 0) || f != math.Trunc(f) || math.Abs(f) > maxCellInt {
		return nil, fmt.Errorf("%q no es un entero", s)
	}
	return int(f), nil
}

// TableFromRows arma una ConfigTable a partir de filas JSON. Las columnas son la unión de
// claves de todas las filas en orden alfabético; una clave ausente en una fila queda vacía.
func TableFromRows(rows []map[string]any) (*entity.ConfigTable, error) {
	seen := make(map[string]bool)
	var columns []string
	for _, r := range rows {
		for k := range r {
			if !seen[k] {
				seen[k] = true
				columns = append(columns, k)
			}
		}
	}
	sort.Strings(columns)

	table := &entity.ConfigTable{Columns: columns, Rows: make([][]string, 0, len(rows))}
	for i, r := range rows {
		cells := make([]string, len(columns))
		for c, name := range columns {
			v, ok := r[name]
			if !ok || v == nil {
				continue
			}
			s, err := cast.ToStringE(v)
			if err != nil {
				return nil, fmt.Errorf("%w: fila %d, columna %q: %v", domain.ErrInvalidInput, i+1, name, err)
			}
			cells[c] = s
		}
		table.Rows = append(table.Rows, cells)
	}
	return table, nil
}
