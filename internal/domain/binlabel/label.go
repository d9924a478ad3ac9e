package binlabel

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/jhoicas/bin-labels/internal/domain"
	"github.com/jhoicas/bin-labels/internal/domain/entity"
)

// labelPattern admite campos numéricos más anchos que 2 dígitos y pasillo/bahía negativos.
var labelPattern = regexp.MustCompile(`^M(-?\d+)-(-?\d+)-([A-Z]+)(\d+)$`)

// Format arma la etiqueta de una ubicación: M{pasillo:02}-{bahía:02}-{nivel}{posición:02}.
// Ej: (3, 7, "C", 5) → "M03-07-C05".
func Format(aisle, bay int, shelf string, bin int) string {
	return entity.BinRecord{Aisle: aisle, Bay: bay, Shelf: shelf, Bin: bin}.Label()
}

// Parse descompone una etiqueta en sus cuatro campos (inverso de Format).
func Parse(label string) (entity.BinRecord, error) {
	m := labelPattern.FindStringSubmatch(label)
	if m == nil {
		return entity.BinRecord{}, fmt.Errorf("%w: %q", domain.ErrInvalidLabel, label)
	}
	aisle, err := strconv.Atoi(m[1])
	if err != nil {
		return entity.BinRecord{}, fmt.Errorf("%w: pasillo %q", domain.ErrInvalidLabel, m[1])
	}
	bay, err := strconv.Atoi(m[2])
	if err != nil {
		return entity.BinRecord{}, fmt.Errorf("%w: bahía %q", domain.ErrInvalidLabel, m[2])
	}
	bin, err := strconv.Atoi(m[4])
	if err != nil {
		return entity.BinRecord{}, fmt.Errorf("%w: posición %q", domain.ErrInvalidLabel, m[4])
	}
	return entity.BinRecord{Aisle: aisle, Bay: bay, Shelf: m[3], Bin: bin}, nil
}
