package linkcheck

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/yingtu35/linkrot/internal/model"
	"github.com/yingtu35/linkrot/internal/platform/errs"
	"github.com/yingtu35/linkrot/internal/platform/runid"
)

// Fetcher retrieves a URL, following redirects.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*model.Response, error)
}

// Checker probes links and classifies them.
//
// Results are remembered for the lifetime of the Checker, so a link shared
// by several seeds is fetched once per run.
type Checker struct {
	fetcher     Fetcher
	policy      Policy
	concurrency int
	logger      *slog.Logger

	flightGroup singleflight.Group // collapses concurrent checks of one URL

	cacheMu sync.Mutex
	cache   map[string]model.LinkCheckResult
}

// NewChecker returns a Checker that runs at most concurrency checks at a
// time in CheckAll. Values below 1 mean one check at a time.
func NewChecker(fetcher Fetcher, policy Policy, concurrency int, logger *slog.Logger) *Checker {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Checker{
		fetcher:     fetcher,
		policy:      policy,
		concurrency: concurrency,
		logger:      logger,
		cache:       make(map[string]model.LinkCheckResult),
	}
}

// Check fetches url and classifies the response.
// A transport failure yields a broken result with status 0 and no final URL.
func (c *Checker) Check(ctx context.Context, url string) model.LinkCheckResult {
	c.cacheMu.Lock()
	result, ok := c.cache[url]
	c.cacheMu.Unlock()
	if ok {
		return result
	}

	val, _, _ := c.flightGroup.Do(url, func() (interface{}, error) {
		result := c.check(ctx, url)
		if ctx.Err() == nil {
			c.cacheMu.Lock()
			c.cache[url] = result
			c.cacheMu.Unlock()
		}
		return result, nil
	})
	return val.(model.LinkCheckResult)
}

func (c *Checker) check(ctx context.Context, url string) model.LinkCheckResult {
	logger := c.logger.With("url", url, "run_id", runid.FromContext(ctx))

	resp, err := c.fetcher.Fetch(ctx, url)
	if err != nil {
		logger.Debug("link unreachable", "error", err, "kind", errs.KindOf(err))
		return model.LinkCheckResult{
			OriginalURL:    url,
			Classification: model.Broken,
		}
	}

	result := model.LinkCheckResult{
		OriginalURL: url,
		FinalURL:    resp.FinalURL,
		StatusCode:  resp.StatusCode,
	}
	if c.policy.BlockedStatus != 0 && resp.StatusCode == c.policy.BlockedStatus {
		logger.Debug("blocked by site", "status", resp.StatusCode)
		result.Classification = model.Blocked
		return result
	}

	result.Classification = Classify(c.policy, resp.StatusCode, resp.Body, url)
	if result.Classification == model.Broken {
		logger.Debug("broken link", "status", resp.StatusCode, "final_url", resp.FinalURL)
	}
	return result
}

// CheckAll checks every URL and returns the results in the order of urls.
// The progress function, if any, sees one EventLinkChecked per URL; calls
// are serialized.
func (c *Checker) CheckAll(
	ctx context.Context, seed string, urls []string, progress model.ProgressFunc,
) []model.LinkCheckResult {
	results := make([]model.LinkCheckResult, len(urls))

	var (
		progressMu sync.Mutex
		done       int
	)

	var g errgroup.Group
	g.SetLimit(c.concurrency)
	for i, url := range urls {
		g.Go(func() error {
			results[i] = c.Check(ctx, url)

			progressMu.Lock()
			done++
			progress.Notify(model.Event{
				Kind:  model.EventLinkChecked,
				Seed:  seed,
				URL:   url,
				Done:  done,
				Total: len(urls),
			})
			progressMu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return results
}
