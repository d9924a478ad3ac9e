package binlabel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bin-labels/internal/domain/binlabel"
)

func TestShelfLetters_NoPositivoDevuelveVacio(t *testing.T) {
	assert.Empty(t, binlabel.ShelfLetters(0))
	assert.Empty(t, binlabel.ShelfLetters(-5))
	assert.NotNil(t, binlabel.ShelfLetters(0), "debe ser una secuencia vacía, no nil")
}

func TestShelfLetters_Transiciones(t *testing.T) {
	l26 := binlabel.ShelfLetters(26)
	require.Len(t, l26, 26)
	assert.Equal(t, "A", l26[0])
	assert.Equal(t, "Z", l26[25])

	l27 := binlabel.ShelfLetters(27)
	assert.Equal(t, "AA", l27[26], "después de Z viene AA, no BA")

	l52 := binlabel.ShelfLetters(52)
	assert.Equal(t, "AZ", l52[51])

	l53 := binlabel.ShelfLetters(53)
	assert.Equal(t, "BA", l53[52])
}

func TestShelfName_Valores(t *testing.T) {
	cases := map[int]string{
		0:     "",
		1:     "A",
		26:    "Z",
		27:    "AA",
		702:   "ZZ",
		703:   "AAA",
		16384: "XFD", // última columna de Excel
	}
	for in, want := range cases {
		assert.Equal(t, want, binlabel.ShelfName(in), "ShelfName(%d)", in)
	}
}

// TestShelfLetters_LongitudYUnicidad: para n >= 1 hay exactamente n elementos distintos.
func TestShelfLetters_LongitudYUnicidad(t *testing.T) {
	for _, n := range []int{1, 2, 25, 26, 27, 51, 52, 53, 700, 703, 1000} {
		letters := binlabel.ShelfLetters(n)
		require.Len(t, letters, n)

		seen := make(map[string]bool, n)
		for _, l := range letters {
			assert.False(t, seen[l], "letra repetida %q con n=%d", l, n)
			seen[l] = true
		}
	}
}

// TestShelfLetters_Prefijo: la secuencia de n es prefijo de la de n+k.
func TestShelfLetters_Prefijo(t *testing.T) {
	short := binlabel.ShelfLetters(30)
	long := binlabel.ShelfLetters(80)
	assert.Equal(t, short, long[:30])
}
