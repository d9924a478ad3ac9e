// Package binlabel contiene la lógica de dominio para generar etiquetas de ubicación de bodega:
// la secuencia de letras de niveles (estilo columnas de hoja de cálculo) y la expansión
// pasillo × bahía × nivel × posición.
package binlabel

// ShelfLetters devuelve las primeras n letras de nivel: A…Z, AA…AZ, BA…
// Es base 26 biyectiva (dígitos 1–26, sin cero). Para n < 1 devuelve una secuencia vacía.
func ShelfLetters(n int) []string {
	if n < 1 {
		return []string{}
	}
	letters := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		letters = append(letters, ShelfName(i))
	}
	return letters
}

// ShelfName convierte una posición 1-based en su nombre de nivel (1→A, 26→Z, 27→AA).
// Para i < 1 devuelve "".
func ShelfName(i int) string {
	var buf []byte
	for i > 0 {
		rem := (i - 1) % 26
		buf = append(buf, byte('A'+rem))
		i = (i - 1) / 26
	}
	// los dígitos salen del menos significativo al más significativo
	for l, r := 0, len(buf)-1; l < r; l, r = l+1, r-1 {
		buf[l], buf[r] = buf[r], buf[l]
	}
	return string(buf)
}
