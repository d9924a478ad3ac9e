// binlabels genera la tabla de ubicaciones de una bodega sin levantar el servidor HTTP.
//
// Uso:
//
//	binlabels --aisles 2 --bays 3 --shelves 4 --bins 5 [--format csv|xlsx|pdf] [--output archivo]
//	binlabels --config bahias.csv [--encoding windows-1252] [--format xlsx]
//
// Sin --output se usa el nombre por defecto del modo (bin_labels.csv, bin_labels_from_csv.csv);
// --output - escribe en la salida estándar.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/jhoicas/bin-labels/internal/application/dto"
	"github.com/jhoicas/bin-labels/internal/application/labels"
	"github.com/jhoicas/bin-labels/internal/infrastructure/pdf"
	"github.com/jhoicas/bin-labels/internal/infrastructure/tabular"
	"github.com/jhoicas/bin-labels/internal/infrastructure/xlsx"
	"github.com/jhoicas/bin-labels/pkg/logger"
)

const (
	defaultMaxRecords   = 200000
	defaultMaxPDFLabels = 5000
)

type options struct {
	uniform    dto.UniformRequest
	configPath string
	format     string
	output     string
	encoding   string
	maxRecords int
	maxPDF     int
	verbose    bool
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "binlabels: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	var opts options
	fs := pflag.NewFlagSet("binlabels", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&opts.uniform.Aisles, "aisles", 0, "cantidad de pasillos (modo uniforme)")
	fs.IntVar(&opts.uniform.BaysPerAisle, "bays", 0, "bahías por pasillo")
	fs.IntVar(&opts.uniform.ShelvesPerBay, "shelves", 0, "niveles por bahía")
	fs.IntVar(&opts.uniform.BinsPerShelf, "bins", 0, "posiciones por nivel")
	fs.StringVarP(&opts.configPath, "config", "c", "", "archivo .csv o .xlsx con aisle, bay, shelves, bins")
	fs.StringVarP(&opts.format, "format", "f", "csv", "formato de salida: csv, xlsx, pdf")
	fs.StringVarP(&opts.output, "output", "o", "", "archivo de salida ('-' = stdout)")
	fs.StringVar(&opts.encoding, "encoding", tabular.EncodingUTF8, "codificación del CSV de configuración")
	fs.IntVar(&opts.maxRecords, "max-records", defaultMaxRecords, "tope de ubicaciones (0 = sin tope)")
	fs.IntVar(&opts.maxPDF, "max-pdf-labels", defaultMaxPDFLabels, "tope de etiquetas en PDF (0 = sin tope)")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "log detallado en stderr")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("argumentos inesperados: %v", fs.Args())
	}
	uniformSet := fs.Changed("aisles") || fs.Changed("bays") || fs.Changed("shelves") || fs.Changed("bins")
	if uniformSet == (opts.configPath != "") {
		return nil, errors.New("indique --config o bien --aisles/--bays/--shelves/--bins")
	}
	return &opts, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	format, err := labels.ParseFormat(opts.format)
	if err != nil {
		return err
	}

	log := logger.Nop()
	if opts.verbose {
		log = logger.New(logger.Config{Env: "development", Level: "debug", Output: stderr})
	}

	uc := labels.NewLabelUseCase(opts.maxRecords, labels.Exporters{
		labels.FormatCSV:  tabular.NewCSVExporter(),
		labels.FormatXLSX: xlsx.NewExporter(),
		labels.FormatPDF:  pdf.NewLabelSheetGenerator(opts.maxPDF),
	}, nil, log)

	batch, err := generate(ctx, uc, opts)
	if err != nil {
		return err
	}
	file, err := uc.Export(ctx, batch, format)
	if err != nil {
		return err
	}

	switch opts.output {
	case "-":
		_, err = stdout.Write(file.Content)
		return err
	case "":
		opts.output = file.Name
	}
	if err := os.WriteFile(opts.output, file.Content, 0644); err != nil {
		return fmt.Errorf("guardar %s: %w", opts.output, err)
	}
	fmt.Fprintf(stderr, "%d ubicaciones -> %s\n", len(batch.Records), opts.output)
	return nil
}

func generate(ctx context.Context, uc *labels.LabelUseCase, opts *options) (*labels.Batch, error) {
	if opts.configPath == "" {
		return uc.GenerateUniform(ctx, opts.uniform)
	}
	f, err := os.Open(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("abrir configuración: %w", err)
	}
	defer f.Close()

	table, err := tabular.ReadUpload(opts.configPath, f, opts.encoding)
	if err != nil {
		return nil, err
	}
	return uc.GenerateFromTable(ctx, table)
}
