package pdf_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bin-labels/internal/domain"
	"github.com/jhoicas/bin-labels/internal/domain/binlabel"
	"github.com/jhoicas/bin-labels/internal/infrastructure/pdf"
)

func TestLabelSheetGenerator_GeneraPDF(t *testing.T) {
	// 7 etiquetas: dos filas completas y una con una sola etiqueta
	out, err := pdf.NewLabelSheetGenerator(0).Export(context.Background(), binlabel.BuildUniform(1, 1, 1, 7))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "debe empezar con la firma %PDF")
}

func TestLabelSheetGenerator_SinUbicaciones(t *testing.T) {
	out, err := pdf.NewLabelSheetGenerator(10).Export(context.Background(), nil)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestLabelSheetGenerator_SuperaMaximo(t *testing.T) {
	_, err := pdf.NewLabelSheetGenerator(5).Export(context.Background(), binlabel.BuildUniform(1, 1, 2, 3))
	assert.True(t, errors.Is(err, domain.ErrTooManyRecords))
}
