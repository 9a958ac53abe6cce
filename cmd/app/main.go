package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/yingtu35/linkrot/internal/export"
	"github.com/yingtu35/linkrot/internal/linkcheck"
	"github.com/yingtu35/linkrot/internal/platform/config"
	"github.com/yingtu35/linkrot/internal/platform/logger"
	"github.com/yingtu35/linkrot/internal/platform/runid"
	"github.com/yingtu35/linkrot/internal/webscraper"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return exitError
	}

	fs := flag.NewFlagSet("linkrot", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: linkrot [flags] [start_url]\n\n"+
			"Crawl a site and check all anchor links.\n\n")
		fs.PrintDefaults()
	}

	var (
		optURL         = fs.String("url", "", "The starting URL to crawl")
		optURLFile     = fs.String("url-file", "", "File containing a list of URLs to crawl (one per line)")
		optOutput      = fs.String("output", "report.csv", "Report output file")
		optFormat      = fs.String("format", "csv", "Report format: csv or json")
		optPolicy      = fs.String("policy", "", "JSON file with phrases, allowed_domains and blocked_status")
		optConcurrency = fs.Int("concurrency", cfg.LinkCheckConcurrency, "Number of links checked at the same time")
		optTimeout     = fs.Duration("timeout", cfg.FetchTimeout, "Timeout of each HTTP request")
		optLogLevel    = fs.String("log-level", cfg.LogLevel, "Log level: DEBUG, INFO, WARN or ERROR")
		optQuiet       = fs.Bool("quiet", false, "Do not show the progress indicator")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	cfg.LinkCheckConcurrency = *optConcurrency
	cfg.FetchTimeout = *optTimeout
	cfg.LogLevel = *optLogLevel
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return exitUsage
	}

	exporter, err := export.New(*optFormat)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return exitUsage
	}

	// Gather URLs to process
	var seeds []string
	startURL := *optURL
	if startURL == "" {
		startURL = fs.Arg(0)
	}
	switch {
	case *optURLFile != "":
		seeds, err = config.ReadSeedFile(*optURLFile)
		if err != nil {
			fmt.Fprintf(stderr, "Error reading URL file: %v\n", err)
			return exitError
		}
	case startURL != "":
		seeds = []string{startURL}
	default:
		fmt.Fprintln(stderr, "You must provide either a start_url or --url-file.")
		fs.Usage()
		return exitUsage
	}

	policy, err := config.LoadPolicy(*optPolicy)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return exitError
	}

	log := logger.NewWithWriter(stderr, cfg.LogLevel)
	id := runid.New()
	ctx = runid.NewContext(ctx, id)
	log.Info("run started", "run_id", id, "seeds", len(seeds))

	var status io.Writer = stderr
	if *optQuiet {
		status = nil
	}
	progress := newProgressPrinter(stdout, status)

	fetcher := webscraper.NewHTTPClient(cfg.FetchTimeout, cfg.MaxBodyBytes, cfg.UserAgent)
	checker := linkcheck.NewChecker(fetcher, policy, cfg.LinkCheckConcurrency, log)
	dlh := webscraper.NewDeadLinkHunter(fetcher, checker, log, progress.handle)

	start := time.Now()
	results := dlh.StartHunting(ctx, seeds)
	elapsed := time.Since(start)

	written, err := results.Write(exporter, *optOutput)
	if err != nil {
		log.Error("report not written", "run_id", id, "file", *optOutput, "error", err)
		fmt.Fprintf(stderr, "Error writing report: %v\n", err)
		return exitError
	}
	if !written {
		// No report file means no broken links, so drop an older one.
		if err := os.Remove(*optOutput); err != nil && !errors.Is(err, os.ErrNotExist) {
			log.Error("stale report not removed", "run_id", id, "file", *optOutput, "error", err)
			fmt.Fprintf(stderr, "Error removing old report: %v\n", err)
			return exitError
		}
	}

	line := strings.Repeat("=", 50)
	if !written {
		fmt.Fprintf(stdout, "\n%s\n%s\n%s\n\n", line, center("🎉 No broken links found! 🎉", 50), line)
	} else {
		fmt.Fprintln(stdout)
		dlh.PrintResults(stdout)
		fmt.Fprintf(stdout, "\nBroken links report written to %s\n", *optOutput)
	}

	log.Info("run finished", "run_id", id, "checked", results.Checked(),
		"not_ok", len(results.Records()), "elapsed", elapsed.String())
	return exitOK
}

func center(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + s
}
