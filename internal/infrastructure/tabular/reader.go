// Package tabular lee la configuración por bahía desde CSV y exporta la tabla de ubicaciones a CSV.
package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/jhoicas/bin-labels/internal/domain"
	"github.com/jhoicas/bin-labels/internal/domain/entity"
)

// Codificaciones aceptadas para archivos CSV subidos. Excel en Windows suele guardar en windows-1252.
const (
	EncodingUTF8        = "utf-8"
	EncodingWindows1252 = "windows-1252"
	EncodingLatin1      = "iso-8859-1"
)

// decoder devuelve un lector que transcodifica a UTF-8 (y quita el BOM si viene en UTF-8).
func decoder(r io.Reader, encoding string) (io.Reader, error) {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "", EncodingUTF8, "utf8":
		return transform.NewReader(r, unicode.UTF8BOM.NewDecoder()), nil
	case EncodingWindows1252, "cp1252":
		return transform.NewReader(r, charmap.Windows1252.NewDecoder()), nil
	case EncodingLatin1, "latin1", "iso8859-1":
		return transform.NewReader(r, charmap.ISO8859_1.NewDecoder()), nil
	default:
		return nil, fmt.Errorf("%w: codificación %q", domain.ErrUnsupportedFormat, encoding)
	}
}

// ReadCSV lee un CSV con encabezado y devuelve la tabla sin interpretar.
// Un CSV ilegible (comillas sin cerrar, filas con distinta cantidad de campos) devuelve
// domain.ErrMalformedTable.
func ReadCSV(r io.Reader, encoding string) (*entity.ConfigTable, error) {
	in, err := decoder(r, encoding)
	if err != nil {
		return nil, err
	}

	cr := csv.NewReader(in)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: archivo vacío", domain.ErrMalformedTable)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedTable, err)
	}

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedTable, err)
	}
	return &entity.ConfigTable{Columns: header, Rows: rows}, nil
}
