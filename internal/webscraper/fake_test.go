package webscraper

import (
	"context"
	"errors"
	"sync"

	"github.com/yingtu35/linkrot/internal/model"
)

var errNoSuchHost = errors.New("dial tcp: lookup: no such host")

type fakePage struct {
	status   int
	body     string
	finalURL string
	err      error
}

// fakeSite is an in-memory web. It counts every fetch per URL.
type fakeSite struct {
	pages map[string]fakePage

	mu    sync.Mutex
	calls map[string]int
	order []string
}

func newFakeSite(pages map[string]fakePage) *fakeSite {
	return &fakeSite{pages: pages, calls: make(map[string]int)}
}

func (s *fakeSite) Fetch(_ context.Context, url string) (*model.Response, error) {
	s.mu.Lock()
	s.calls[url]++
	s.order = append(s.order, url)
	s.mu.Unlock()

	page, ok := s.pages[url]
	if !ok {
		return nil, errNoSuchHost
	}
	if page.err != nil {
		return nil, page.err
	}
	final := page.finalURL
	if final == "" {
		final = url
	}
	return &model.Response{FinalURL: final, StatusCode: page.status, Body: []byte(page.body)}, nil
}

func (s *fakeSite) count(url string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[url]
}
