package webscraper

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/yingtu35/linkrot/internal/model"
	"github.com/yingtu35/linkrot/internal/platform/errs"
	"github.com/yingtu35/linkrot/internal/platform/runid"
	"github.com/yingtu35/linkrot/internal/report"
)

// LinkChecker checks the links a crawl found. Results are returned in the
// order of urls.
type LinkChecker interface {
	CheckAll(ctx context.Context, seed string, urls []string, progress model.ProgressFunc) []model.LinkCheckResult
}

// SeedState is the outcome of one seed.
type SeedState struct {
	Seed   string
	Status model.SeedStatus
	Links  int   // candidate links found by the crawl
	Err    error // why the seed was skipped
}

type DeadLinkHunter struct {
	fetcher  Fetcher
	checker  LinkChecker
	logger   *slog.Logger
	progress model.ProgressFunc

	seeds   []SeedState
	results *report.Aggregator
}

// NewDeadLinkHunter returns a hunter that crawls with fetcher and checks
// links with checker. progress may be nil.
func NewDeadLinkHunter(
	fetcher Fetcher, checker LinkChecker, logger *slog.Logger, progress model.ProgressFunc,
) *DeadLinkHunter {
	return &DeadLinkHunter{
		fetcher:  fetcher,
		checker:  checker,
		logger:   logger,
		progress: progress,
		results:  report.NewAggregator(),
	}
}

// StartHunting runs every seed in order and returns the aggregated report.
// Unreachable seeds are skipped; nothing network related stops the run.
func (d *DeadLinkHunter) StartHunting(ctx context.Context, seeds []string) *report.Aggregator {
	d.seeds = make([]SeedState, len(seeds))
	for i, seed := range seeds {
		d.seeds[i] = SeedState{Seed: seed, Status: model.SeedPending}
	}

	for i := range d.seeds {
		d.hunt(ctx, &d.seeds[i])
	}
	return d.results
}

// Statuses returns the state of every seed of the last run.
func (d *DeadLinkHunter) Statuses() []SeedState {
	return append([]SeedState(nil), d.seeds...)
}

// GetResults returns the report accumulated so far.
func (d *DeadLinkHunter) GetResults() *report.Aggregator {
	return d.results
}

// PrintResults writes the broken links table to w.
func (d *DeadLinkHunter) PrintResults(w io.Writer) {
	d.results.Print(w)
}

func (d *DeadLinkHunter) hunt(ctx context.Context, state *SeedState) {
	seed := state.Seed
	logger := d.logger.With("seed", seed, "run_id", runid.FromContext(ctx))

	d.progress.Notify(model.Event{Kind: model.EventSeedStarted, Seed: seed})

	if err := d.probe(ctx, seed); err != nil {
		state.Status = model.SeedSkipped
		state.Err = err

		attrs := []any{"error", err}
		var appErr *errs.AppError
		if errors.As(err, &appErr) && appErr.UpstreamStatus != 0 {
			attrs = append(attrs, "target_status", appErr.UpstreamStatus)
		}
		logger.Warn("site is not accessible, skipping", attrs...)

		d.progress.Notify(model.Event{
			Kind:   model.EventSeedSkipped,
			Seed:   seed,
			Reason: err.Error(),
		})
		return
	}

	state.Status = model.SeedCrawling
	links, err := Crawl(ctx, d.fetcher, seed, d.logger, d.progress)
	if err != nil {
		state.Status = model.SeedSkipped
		state.Err = err
		logger.Warn("crawl failed, skipping", "error", err)
		return
	}
	state.Links = len(links)

	state.Status = model.SeedChecking
	var broken int
	for _, result := range d.checker.CheckAll(ctx, seed, links, d.progress) {
		if d.results.Add(seed, result) {
			broken++
		}
	}

	state.Status = model.SeedDone
	logger.Info("seed done", "links", len(links), "broken", broken)
	d.progress.Notify(model.Event{
		Kind:  model.EventSeedDone,
		Seed:  seed,
		Done:  broken,
		Total: len(links),
	})
}

// probe fetches the seed once to make sure the site is up before crawling.
func (d *DeadLinkHunter) probe(ctx context.Context, seed string) error {
	u, err := url.Parse(seed)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return &errs.AppError{
			Kind:    errs.InvalidInput,
			Message: "invalid seed URL, expected an absolute http(s) URL",
			Cause:   err,
		}
	}

	resp, err := d.fetcher.Fetch(ctx, seed)
	if err != nil {
		kind := errs.KindOf(err)
		if kind != errs.Timeout {
			kind = errs.Unreachable
		}
		return &errs.AppError{
			Kind:    kind,
			Message: "site is not accessible",
			Cause:   err,
		}
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return &errs.AppError{
			Kind:           errs.Unreachable,
			UpstreamStatus: resp.StatusCode,
			Message:        fmt.Sprintf("site returned status %d", resp.StatusCode),
		}
	}
	return nil
}
