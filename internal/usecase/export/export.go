package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"kastle-collection-reports/pkg/id"
)

type Format string

const (
	FormatCSV   Format = "csv"
	FormatExcel Format = "excel"
	FormatPDF   Format = "pdf"
)

// ErrUnsupportedFormat covers formats the exporter does not render; pdf is
// declared in the interface but has no renderer here.
var ErrUnsupportedFormat = errors.New("export: unsupported format")

// Artifact points at a rendered report download.
type Artifact struct {
	URL string `json:"url"`
}

// Table is one report section flattened for tabular output.
type Table struct {
	Name   string
	Header []string
	Rows   [][]any
}

// Document is the format-independent shape both report payloads flatten
// into before rendering.
type Document struct {
	Title  string
	Tables []Table
}

// Usecase renders report documents into downloadable files under a local
// artifact directory and returns their public URL.
type Usecase struct {
	dir     string
	baseURL string
}

func NewUsecase(dir, baseURL string) *Usecase {
	return &Usecase{dir: dir, baseURL: baseURL}
}

func (f Format) Valid() bool {
	switch f {
	case FormatCSV, FormatExcel, FormatPDF:
		return true
	}
	return false
}

// Export renders doc in the requested format. The artifact name is random
// so concurrent exports never collide.
func (u *Usecase) Export(ctx context.Context, doc Document, format Format) (*Artifact, error) {
	if err := os.MkdirAll(u.dir, 0o755); err != nil {
		return nil, fmt.Errorf("artifact dir: %w", err)
	}

	var name string
	var render func(path string) error
	switch format {
	case FormatCSV:
		name = id.NewID32() + ".csv"
		render = func(path string) error { return writeCSV(path, doc) }
	case FormatExcel:
		name = id.NewID32() + ".xlsx"
		render = func(path string) error { return writeExcel(path, doc) }
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	if err := render(filepath.Join(u.dir, name)); err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}
	return &Artifact{URL: u.baseURL + "/" + name}, nil
}
