package main

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/yingtu35/linkrot/internal/model"
)

var spinnerFrames = []rune{'|', '/', '-', '\\'}

// progressPrinter renders crawl and check progress. Notices go to out; the
// spinner and counters go to status, which may be nil to keep them quiet.
type progressPrinter struct {
	out    io.Writer
	status io.Writer

	mu    sync.Mutex
	frame int
}

func newProgressPrinter(out, status io.Writer) *progressPrinter {
	return &progressPrinter{out: out, status: status}
}

func (p *progressPrinter) handle(ev model.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch ev.Kind {
	case model.EventSeedStarted:
		fmt.Fprintf(p.out, "\nCrawling site from: %s\n", ev.Seed)

	case model.EventSeedSkipped:
		line := strings.Repeat("=", 50)
		fmt.Fprintf(p.out, "\n%s\n🚫 Site is not accessible at this moment.\nReason: %s\n%s\n\n",
			line, ev.Reason, line)

	case model.EventPageFetched:
		if p.status == nil {
			return
		}
		p.frame = (p.frame + 1) % len(spinnerFrames)
		fmt.Fprintf(p.status, "\rCrawling links... %c (%d pages, %d links)",
			spinnerFrames[p.frame], ev.Done, ev.Total)

	case model.EventCrawlDone:
		if p.status != nil {
			fmt.Fprintf(p.status, "\rCrawling links... done!%s\n", strings.Repeat(" ", 30))
		}
		fmt.Fprintf(p.out, "Found %d links. Checking...\n", ev.Total)

	case model.EventLinkChecked:
		if p.status == nil {
			return
		}
		fmt.Fprintf(p.status, "\rChecking links: %d/%d", ev.Done, ev.Total)
		if ev.Done == ev.Total {
			fmt.Fprintln(p.status)
		}

	case model.EventSeedDone:
		fmt.Fprintf(p.out, "Checked %d links, %d not OK\n", ev.Total, ev.Done)
	}
}
