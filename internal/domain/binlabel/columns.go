package binlabel

import (
	"fmt"
	"strings"

	"github.com/jhoicas/bin-labels/internal/domain"
)

// RequiredColumns son las columnas que toda configuración por bahía debe traer.
var RequiredColumns = []string{"aisle", "bay", "shelves", "bins"}

// RequireColumns verifica (sin distinguir mayúsculas) que estén todas las columnas requeridas.
// Devuelve el índice de cada columna requerida dentro de columns.
//
// Si falta alguna devuelve *domain.SchemaError. Si una columna requerida aparece dos veces
// tras pasar a minúsculas (ej. "Aisle" y "aisle") devuelve domain.ErrAmbiguousColumn:
// no se elige ninguna de las dos.
func RequireColumns(columns []string) (map[string]int, error) {
	required := make(map[string]bool, len(RequiredColumns))
	for _, c := range RequiredColumns {
		required[c] = true
	}

	index := make(map[string]int, len(RequiredColumns))
	for i, c := range columns {
		name := strings.ToLower(strings.TrimSpace(c))
		if !required[name] {
			continue
		}
		if prev, dup := index[name]; dup {
			return nil, fmt.Errorf("%w: %q y %q", domain.ErrAmbiguousColumn, columns[prev], c)
		}
		index[name] = i
	}

	var missing []string
	for _, c := range RequiredColumns {
		if _, ok := index[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, domain.NewSchemaError(missing)
	}
	return index, nil
}
