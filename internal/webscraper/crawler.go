package webscraper

import (
	"context"
	"log/slog"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/yingtu35/linkrot/internal/model"
	"github.com/yingtu35/linkrot/internal/platform/errs"
	"github.com/yingtu35/linkrot/internal/platform/runid"
	"github.com/yingtu35/linkrot/pkg/domain"
)

// Crawl discovers every page reachable from startURL on the same host,
// fetching each page once, and returns every http(s) link found on those
// pages, external ones included, sorted.
//
// Pages that fail to fetch are skipped without error. Crawl only fails
// when startURL has no host.
func Crawl(
	ctx context.Context, fetcher Fetcher, startURL string,
	logger *slog.Logger, progress model.ProgressFunc,
) ([]string, error) {
	host, err := domain.GetHost(startURL)
	if err != nil {
		return nil, &errs.AppError{
			Kind:    errs.InvalidInput,
			Message: "invalid seed URL " + startURL,
			Cause:   err,
		}
	}
	logger = logger.With("seed", startURL, "run_id", runid.FromContext(ctx))

	frontier := NewFrontier(startURL)
	candidates := mapset.NewThreadUnsafeSet[string]()

	for {
		url, ok := frontier.Pop()
		if !ok {
			break
		}
		if !frontier.MarkVisited(url) {
			continue
		}

		logger.Debug("fetching page", "url", url)
		resp, err := fetcher.Fetch(ctx, url)
		if err != nil {
			logger.Debug("error fetching page", "url", url, "error", err, "kind", errs.KindOf(err))
			continue
		}

		for _, link := range Extract(url, resp.Body) {
			candidates.Add(link)
			if domain.IsSameDomain(host, link) {
				frontier.Offer(link)
			}
		}

		progress.Notify(model.Event{
			Kind:  model.EventPageFetched,
			Seed:  startURL,
			URL:   url,
			Done:  frontier.VisitedCount(),
			Total: candidates.Cardinality(),
		})
	}

	links := candidates.ToSlice()
	slices.Sort(links)

	logger.Info("crawl finished", "pages", frontier.VisitedCount(), "links", len(links))
	progress.Notify(model.Event{
		Kind:  model.EventCrawlDone,
		Seed:  startURL,
		Done:  frontier.VisitedCount(),
		Total: len(links),
	})
	return links, nil
}
