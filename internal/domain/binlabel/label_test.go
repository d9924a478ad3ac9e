package binlabel_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bin-labels/internal/domain"
	"github.com/jhoicas/bin-labels/internal/domain/binlabel"
	"github.com/jhoicas/bin-labels/internal/domain/entity"
)

func TestFormat_EjemploExacto(t *testing.T) {
	assert.Equal(t, "M03-07-C05", binlabel.Format(3, 7, "C", 5))
}

// El ancho de 2 dígitos es mínimo: los valores grandes no se truncan.
func TestFormat_AnchoMinimoNoTrunca(t *testing.T) {
	assert.Equal(t, "M100-07-C05", binlabel.Format(100, 7, "C", 5))
	assert.Equal(t, "M01-123-AA1000", binlabel.Format(1, 123, "AA", 1000))
}

func TestFormat_CeroYNegativos(t *testing.T) {
	assert.Equal(t, "M00-00-A01", binlabel.Format(0, 0, "A", 1))
	assert.Equal(t, "M-3-07-A01", binlabel.Format(-3, 7, "A", 1))
	assert.Equal(t, "M-12--1-B02", binlabel.Format(-12, -1, "B", 2))
}

func TestBinRecord_LabelIgualAFormat(t *testing.T) {
	r := entity.BinRecord{Aisle: 12, Bay: 4, Shelf: "AB", Bin: 9}
	assert.Equal(t, binlabel.Format(12, 4, "AB", 9), r.Label())
}

func TestParse_RoundTrip(t *testing.T) {
	records := binlabel.BuildUniform(3, 4, 28, 3)
	records = append(records,
		entity.BinRecord{Aisle: 100, Bay: 250, Shelf: "ZZ", Bin: 1234},
		entity.BinRecord{Aisle: -3, Bay: 0, Shelf: "A", Bin: 0},
		entity.BinRecord{Aisle: -12, Bay: -1, Shelf: "BA", Bin: 7},
	)
	for _, r := range records {
		got, err := binlabel.Parse(r.Label())
		require.NoError(t, err, "label %s", r.Label())
		assert.Equal(t, r, got, "label %s", r.Label())
	}
}

func TestParse_EtiquetasInvalidas(t *testing.T) {
	for _, in := range []string{"", "M03-07-05", "X03-07-C05", "M03-07-c05", "M03-07-C", "M03_07_C05", "M03-07-C05 "} {
		_, err := binlabel.Parse(in)
		assert.True(t, errors.Is(err, domain.ErrInvalidLabel), "se esperaba ErrInvalidLabel para %q", in)
	}
}
