package webscraper

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"git.sr.ht/~shulhan/pakakeh.go/lib/test"

	"github.com/yingtu35/linkrot/internal/model"
	"github.com/yingtu35/linkrot/internal/platform/errs"
	"github.com/yingtu35/linkrot/internal/platform/logger"
)

func TestCrawl(t *testing.T) {
	site := newFakeSite(map[string]fakePage{
		"http://example.com": {status: 200, body: `
			<a href="/a">A</a>
			<a href="/b">B</a>`},
		"http://example.com/a": {status: 200, body: "Welcome"},
		"http://example.com/b": {status: 404},
	})

	links, err := Crawl(context.Background(), site, "http://example.com", logger.Discard(), nil)
	if err != nil {
		t.Fatal(err)
	}

	exp := []string{"http://example.com/a", "http://example.com/b"}
	test.Assert(t, "candidates", exp, links)

	for _, u := range []string{"http://example.com", "http://example.com/a", "http://example.com/b"} {
		if n := site.count(u); n != 1 {
			t.Errorf("%s fetched %d times, want 1", u, n)
		}
	}
}

func TestCrawl_FetchesEachPageOnce(t *testing.T) {
	// Every page links to every other page, itself included.
	var nav string
	for i := range 10 {
		nav += fmt.Sprintf(`<a href="/p%d">%d</a><a href="http://example.com/p%d#frag">again</a>`, i, i, i)
	}
	pages := map[string]fakePage{
		"http://example.com": {status: 200, body: nav},
	}
	for i := range 10 {
		pages[fmt.Sprintf("http://example.com/p%d", i)] = fakePage{status: 200, body: nav}
	}
	site := newFakeSite(pages)

	links, err := Crawl(context.Background(), site, "http://example.com", logger.Discard(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(links) != 10 {
		t.Errorf("got %d candidates, want 10: %v", len(links), links)
	}
	if len(site.order) != 11 {
		t.Errorf("got %d fetches, want 11: %v", len(site.order), site.order)
	}
	for u, n := range site.calls {
		if n != 1 {
			t.Errorf("%s fetched %d times", u, n)
		}
	}
}

func TestCrawl_OnlyFollowsSameHost(t *testing.T) {
	site := newFakeSite(map[string]fakePage{
		"http://example.com": {status: 200, body: `
			<a href="http://other.com/page">External</a>
			<a href="http://www.example.com/page">Subdomain</a>
			<a href="https://example.com:8443/page">Other port</a>
			<a href="/inside">Inside</a>`},
		"http://example.com/inside": {status: 200, body: `<a href="http://other.com/deep">Deep</a>`},
		"http://other.com/page":     {status: 200, body: `<a href="http://other.com/never">Never</a>`},
	})

	links, err := Crawl(context.Background(), site, "http://example.com", logger.Discard(), nil)
	if err != nil {
		t.Fatal(err)
	}

	exp := []string{
		"http://example.com/inside",
		"http://other.com/deep",
		"http://other.com/page",
		"http://www.example.com/page",
		"https://example.com:8443/page",
	}
	test.Assert(t, "candidates", exp, links)

	for _, u := range []string{"http://other.com/page", "http://www.example.com/page", "https://example.com:8443/page"} {
		if n := site.count(u); n != 0 {
			t.Errorf("%s fetched %d times during discovery, want 0", u, n)
		}
	}
}

func TestCrawl_SkipsFailedPages(t *testing.T) {
	site := newFakeSite(map[string]fakePage{
		"http://example.com": {status: 200, body: `
			<a href="/down">Down</a>
			<a href="/up">Up</a>`},
		"http://example.com/down":   {err: context.DeadlineExceeded},
		"http://example.com/up":     {status: 200, body: `<a href="/deeper">Deeper</a>`},
		"http://example.com/deeper": {status: 200},
	})

	links, err := Crawl(context.Background(), site, "http://example.com", logger.Discard(), nil)
	if err != nil {
		t.Fatal(err)
	}
	exp := []string{"http://example.com/deeper", "http://example.com/down", "http://example.com/up"}
	test.Assert(t, "candidates", exp, links)

	if n := site.count("http://example.com/down"); n != 1 {
		t.Errorf("failed page fetched %d times, want 1 (no retry)", n)
	}
}

func TestCrawl_ParsesErrorPages(t *testing.T) {
	site := newFakeSite(map[string]fakePage{
		"http://example.com":         {status: 200, body: `<a href="/missing">Missing</a>`},
		"http://example.com/missing": {status: 404, body: `<a href="/home">Home</a>`},
		"http://example.com/home":    {status: 200},
	})

	links, err := Crawl(context.Background(), site, "http://example.com", logger.Discard(), nil)
	if err != nil {
		t.Fatal(err)
	}
	exp := []string{"http://example.com/home", "http://example.com/missing"}
	test.Assert(t, "candidates", exp, links)
}

func TestCrawl_EmptyHrefIsSelfLink(t *testing.T) {
	site := newFakeSite(map[string]fakePage{
		"http://example.com": {status: 200, body: `<a href="">Home</a>`},
	})

	links, err := Crawl(context.Background(), site, "http://example.com", logger.Discard(), nil)
	if err != nil {
		t.Fatal(err)
	}
	test.Assert(t, "candidates", []string{"http://example.com"}, links)
	test.Assert(t, "fetches", 1, site.count("http://example.com"))
}

func TestCrawl_InvalidSeed(t *testing.T) {
	_, err := Crawl(context.Background(), newFakeSite(nil), "not-a-url", logger.Discard(), nil)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	var appErr *errs.AppError
	if !errors.As(err, &appErr) || appErr.Kind != errs.InvalidInput {
		t.Errorf("err = %v, want InvalidInput AppError", err)
	}
}

func TestCrawl_Progress(t *testing.T) {
	site := newFakeSite(map[string]fakePage{
		"http://example.com":   {status: 200, body: `<a href="/a">A</a><a href="http://other.com">O</a>`},
		"http://example.com/a": {status: 200},
	})

	var kinds []model.EventKind
	var last model.Event
	progress := func(ev model.Event) {
		kinds = append(kinds, ev.Kind)
		last = ev
	}

	_, err := Crawl(context.Background(), site, "http://example.com", logger.Discard(), progress)
	if err != nil {
		t.Fatal(err)
	}

	exp := []model.EventKind{model.EventPageFetched, model.EventPageFetched, model.EventCrawlDone}
	test.Assert(t, "event kinds", exp, kinds)
	if last.Done != 2 || last.Total != 2 {
		t.Errorf("crawl done event = %+v, want 2 pages and 2 links", last)
	}
}
