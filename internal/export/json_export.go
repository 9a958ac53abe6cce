package export

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/yingtu35/linkrot/internal/model"
)

type Report struct {
	Count       int                      `json:"count"`
	BrokenLinks []model.BrokenLinkRecord `json:"broken_links"`
}

type JsonExporter struct{}

func NewJsonExporter() Exporter {
	return &JsonExporter{}
}

func (e *JsonExporter) Export(records []model.BrokenLinkRecord, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("export json %s: %w", filename, err)
	}
	defer file.Close()

	resultJson, err := json.MarshalIndent(Report{
		Count:       len(records),
		BrokenLinks: records,
	}, "", "    ")
	if err != nil {
		return fmt.Errorf("export json %s: %w", filename, err)
	}
	resultJson = append(resultJson, '\n')

	if _, err := file.Write(resultJson); err != nil {
		return fmt.Errorf("export json %s: %w", filename, err)
	}
	return file.Close()
}
