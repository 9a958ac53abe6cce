package export

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/yingtu35/linkrot/internal/model"
)

type BrokenLinkRow struct {
	SourceSite  string `csv:"Source Site"`
	OriginalURL string `csv:"Original URL"`
	FinalURL    string `csv:"Final URL"`
	StatusCode  int    `csv:"Status Code"`
	Status      string `csv:"Status"`
}

type CSVExporter struct{}

func NewCSVExporter() Exporter {
	return &CSVExporter{}
}

func (e *CSVExporter) Export(records []model.BrokenLinkRecord, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("export csv %s: %w", filename, err)
	}
	defer file.Close()

	rows := e.transformData(records)

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return fmt.Errorf("export csv %s: %w", filename, err)
	}
	return file.Close()
}

func (e *CSVExporter) transformData(records []model.BrokenLinkRecord) []BrokenLinkRow {
	rows := make([]BrokenLinkRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, BrokenLinkRow{
			SourceSite:  r.SourceSite,
			OriginalURL: r.OriginalURL,
			FinalURL:    r.FinalURL,
			StatusCode:  r.StatusCode,
			Status:      r.Classification.String(),
		})
	}
	return rows
}
