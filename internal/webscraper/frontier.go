package webscraper

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// Frontier holds the pages of one seed crawl that are still to be fetched,
// together with the pages already fetched. It is not safe for concurrent
// use.
type Frontier struct {
	queue   []string
	queued  mapset.Set[string]
	visited mapset.Set[string]
}

// NewFrontier returns a Frontier holding only seed. Nothing is visited yet.
func NewFrontier(seed string) *Frontier {
	f := &Frontier{
		queued:  mapset.NewThreadUnsafeSet[string](),
		visited: mapset.NewThreadUnsafeSet[string](),
	}
	f.queue = append(f.queue, seed)
	f.queued.Add(seed)
	return f
}

// Pop removes and returns the oldest queued URL. It returns false once the
// Frontier is empty.
func (f *Frontier) Pop() (string, bool) {
	if len(f.queue) == 0 {
		return "", false
	}
	url := f.queue[0]
	f.queue[0] = ""
	f.queue = f.queue[1:]
	f.queued.Remove(url)
	return url, true
}

// MarkVisited records url as fetched. It returns true only the first time a
// URL is marked; callers must not fetch when it returns false.
func (f *Frontier) MarkVisited(url string) bool {
	return f.visited.Add(url)
}

// IsVisited reports whether url has been marked visited.
func (f *Frontier) IsVisited(url string) bool {
	return f.visited.Contains(url)
}

// Offer queues url unless it has been visited or is already queued.
func (f *Frontier) Offer(url string) bool {
	if f.visited.Contains(url) || f.queued.Contains(url) {
		return false
	}
	f.queue = append(f.queue, url)
	f.queued.Add(url)
	return true
}

// Len returns the number of queued URLs.
func (f *Frontier) Len() int {
	return len(f.queue)
}

// VisitedCount returns the number of pages marked visited.
func (f *Frontier) VisitedCount() int {
	return f.visited.Cardinality()
}
