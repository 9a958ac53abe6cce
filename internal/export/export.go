package export

import (
	"fmt"
	"strings"

	"github.com/yingtu35/linkrot/internal/model"
)

type Exporter interface {
	// Export writes the records to the specified file, replacing it
	Export(records []model.BrokenLinkRecord, filename string) error
}

// New returns the exporter for format, "csv" or "json".
func New(format string) (Exporter, error) {
	switch strings.ToLower(format) {
	case "", "csv":
		return NewCSVExporter(), nil
	case "json":
		return NewJsonExporter(), nil
	}
	return nil, fmt.Errorf("unknown report format %q", format)
}
