package binlabel

import (
	"math"
	"sort"

	"github.com/jhoicas/bin-labels/internal/domain/entity"
)

// BuildUniform expande una bodega uniforme en el orden pasillo → bahía → nivel → posición.
// Los cuatro parámetros deben ser >= 1; la validación es responsabilidad del llamador.
func BuildUniform(aisles, baysPerAisle, shelvesPerBay, binsPerShelf int) []entity.BinRecord {
	shelves := ShelfLetters(shelvesPerBay)
	total, ok := CountUniform(aisles, baysPerAisle, shelvesPerBay, binsPerShelf)
	if !ok {
		total = 0
	}
	records := make([]entity.BinRecord, 0, total)
	for a := 1; a <= aisles; a++ {
		for b := 1; b <= baysPerAisle; b++ {
			for _, s := range shelves {
				for n := 1; n <= binsPerShelf; n++ {
					records = append(records, entity.BinRecord{Aisle: a, Bay: b, Shelf: s, Bin: n})
				}
			}
		}
	}
	return records
}

// BuildFromConfig expande una configuración por bahía. Las filas se recorren ordenadas por
// (pasillo, bahía) de forma estable; los duplicados se expanden ambos. Niveles o posiciones
// no positivos no generan ubicaciones. No modifica rows.
func BuildFromConfig(rows []entity.BayConfig) []entity.BinRecord {
	sorted := append([]entity.BayConfig(nil), rows...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Aisle != sorted[j].Aisle {
			return sorted[i].Aisle < sorted[j].Aisle
		}
		return sorted[i].Bay < sorted[j].Bay
	})

	total, ok := CountFromConfig(rows)
	if !ok {
		total = 0
	}
	records := make([]entity.BinRecord, 0, total)
	for _, r := range sorted {
		for _, s := range ShelfLetters(r.Shelves) {
			for n := 1; n <= r.Bins; n++ {
				records = append(records, entity.BinRecord{Aisle: r.Aisle, Bay: r.Bay, Shelf: s, Bin: n})
			}
		}
	}
	return records
}

// CountUniform calcula cuántas ubicaciones produce BuildUniform.
// ok es false si el producto desborda int. Conteos no positivos dan 0.
func CountUniform(aisles, baysPerAisle, shelvesPerBay, binsPerShelf int) (total int, ok bool) {
	total = 1
	for _, f := range []int{aisles, baysPerAisle, shelvesPerBay, binsPerShelf} {
		if f <= 0 {
			return 0, true
		}
		if total > math.MaxInt/f {
			return 0, false
		}
		total *= f
	}
	return total, true
}

// CountFromConfig suma niveles × posiciones de cada bahía (ignorando valores no positivos).
// ok es false si la suma desborda int.
func CountFromConfig(rows []entity.BayConfig) (total int, ok bool) {
	for _, r := range rows {
		if r.Shelves <= 0 || r.Bins <= 0 {
			continue
		}
		if r.Shelves > math.MaxInt/r.Bins {
			return 0, false
		}
		n := r.Shelves * r.Bins
		if total > math.MaxInt-n {
			return 0, false
		}
		total += n
	}
	return total, true
}
