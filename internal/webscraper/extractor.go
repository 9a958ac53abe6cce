package webscraper

import (
	"bytes"
	"net/url"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/yingtu35/linkrot/pkg/domain"
)

// Extract returns the absolute http(s) targets of every anchor in body,
// resolved against pageURL, in document order and without duplicates.
// Fragments are dropped and an empty href resolves to pageURL. Hrefs that
// do not parse are skipped; a body that is not HTML yields what the parser
// could recover.
func Extract(pageURL string, body []byte) []string {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil
	}

	doc, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return nil
	}

	seen := mapset.NewThreadUnsafeSet[string]()
	var links []string
	for n := range doc.Descendants() {
		if n.Type != html.ElementNode || n.DataAtom != atom.A {
			continue
		}
		for _, a := range n.Attr {
			if a.Key != "href" {
				continue
			}
			link, ok := resolveLink(base, a.Val)
			if ok && seen.Add(link) {
				links = append(links, link)
			}
			break
		}
	}

	return links
}

func resolveLink(base *url.URL, href string) (string, bool) {
	// An empty href refers to the page itself.
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return "", false
	}

	resolved := base.ResolveReference(ref)
	if !domain.IsHTTP(resolved) || resolved.Host == "" {
		return "", false
	}
	resolved.Fragment = ""
	resolved.RawFragment = ""
	return resolved.String(), true
}
