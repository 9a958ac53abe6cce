package webscraper

import "time"

const (
	DefaultTimeout      = 10 * time.Second // per request, redirects and body included
	DefaultMaxBodyBytes = 10 << 20         // response bodies are cut at 10 MiB
	DefaultUserAgent    = "linkrot/1.0 (+https://github.com/yingtu35/linkrot)"

	maxRedirects = 10
)
