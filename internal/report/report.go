package report

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/rodaine/table"

	"github.com/yingtu35/linkrot/internal/export"
	"github.com/yingtu35/linkrot/internal/model"
)

// Aggregator collects the non-OK check results of every seed in the order
// they were added.
type Aggregator struct {
	records []model.BrokenLinkRecord
	checked int
}

func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// Add records result under seed when it is not OK. It returns true if the
// result was kept.
func (a *Aggregator) Add(seed string, result model.LinkCheckResult) bool {
	a.checked++
	if result.Classification == model.OK {
		return false
	}
	a.records = append(a.records, model.BrokenLinkRecord{
		SourceSite:     seed,
		OriginalURL:    result.OriginalURL,
		FinalURL:       result.FinalURL,
		StatusCode:     result.StatusCode,
		Classification: result.Classification,
	})
	return true
}

// Records returns a copy of the kept records.
func (a *Aggregator) Records() []model.BrokenLinkRecord {
	return slices.Clone(a.records)
}

// Empty reports whether no broken or blocked link was found.
func (a *Aggregator) Empty() bool {
	return len(a.records) == 0
}

// Checked returns how many results were added, OK ones included.
func (a *Aggregator) Checked() int {
	return a.checked
}

// Write exports the records to filename. Nothing is written when there are
// no records; the returned bool tells whether a file was produced.
func (a *Aggregator) Write(exporter export.Exporter, filename string) (bool, error) {
	if a.Empty() {
		return false, nil
	}
	if err := exporter.Export(a.records, filename); err != nil {
		return false, fmt.Errorf("report: %w", err)
	}
	return true, nil
}

// Print renders the records as a table on w, or os.Stdout if w is nil.
func (a *Aggregator) Print(w io.Writer) {
	if w == nil {
		w = os.Stdout
	}
	if a.Empty() {
		fmt.Fprintln(w, "No broken links found")
		return
	}

	tbl := table.New("Source Site", "Original URL", "Final URL", "Status Code", "Status").
		WithWriter(w)
	for _, r := range a.records {
		tbl.AddRow(r.SourceSite, r.OriginalURL, r.FinalURL, r.StatusCode, r.Classification)
	}
	tbl.Print()
}
