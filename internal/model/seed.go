package model

// SeedStatus tracks where a seed is in its run.
type SeedStatus int

const (
	SeedPending SeedStatus = iota
	SeedSkipped
	SeedCrawling
	SeedChecking
	SeedDone
)

func (s SeedStatus) String() string {
	switch s {
	case SeedSkipped:
		return "skipped"
	case SeedCrawling:
		return "crawling"
	case SeedChecking:
		return "checking"
	case SeedDone:
		return "done"
	default:
		return "pending"
	}
}

// EventKind identifies a progress notification.
type EventKind int

const (
	EventSeedStarted EventKind = iota
	EventSeedSkipped
	EventPageFetched
	EventCrawlDone
	EventLinkChecked
	EventSeedDone
)

// Event is delivered to progress observers. It carries no state the crawl
// depends on.
type Event struct {
	Kind EventKind
	Seed string
	URL  string

	// Done and Total count checked links during the checking phase, and
	// fetched pages and found links during the crawl.
	Done  int
	Total int

	// Reason explains a skipped seed.
	Reason string
}

// ProgressFunc observes crawl and check progress.
type ProgressFunc func(Event)

// Notify calls fn with ev if fn is set.
func (fn ProgressFunc) Notify(ev Event) {
	if fn != nil {
		fn(ev)
	}
}
