package entity

import "fmt"

// BinRecord representa una ubicación generada (pasillo, bahía, nivel y posición).
// La etiqueta no se almacena: siempre se deriva de los cuatro campos.
type BinRecord struct {
	Aisle int
	Bay   int
	Shelf string
	Bin   int
}

// Label devuelve la etiqueta M{pasillo}-{bahía}-{nivel}{posición}, ej. M03-07-C05.
// El ancho de 2 dígitos es mínimo: 100 se escribe "100".
func (r BinRecord) Label() string {
	return fmt.Sprintf("M%02d-%02d-%s%02d", r.Aisle, r.Bay, r.Shelf, r.Bin)
}
