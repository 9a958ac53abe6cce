package linkcheck

import (
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// DefaultBlockedStatus is the status some sites answer automated clients
// with instead of the page.
const DefaultBlockedStatus = 999

// defaultPhrases are page texts that mark a 200 response as an error page.
// Phrases with a typographic apostrophe also appear with a plain one.
var defaultPhrases = []string{
	"404 not found",
	"page not found",
	"error 404",
	"500 internal server error",
	"bad gateway",
	"service unavailable",
	"forbidden",
	"access denied",
	"site can’t be reached",
	"site can't be reached",
	"temporarily unavailable",
	"not available",
	"problem loading page",
	"application error",
	"this content isn't available at the moment",
	"this content isn’t available at the moment",
	"this account doesn’t exist",
	"this account doesn't exist",
	"hmm...this page doesn’t exist",
	"hmm...this page doesn't exist",
	"this page doesn’t exist",
	"this page doesn't exist",
	"hmm...this page doesn’t exist. try searching for something else",
	"hmm...this page doesn't exist. try searching for something else",
	"sorry, this page isn't available.",
	"sorry, this page isn’t available.",
}

// defaultAllowedDomains serve valid pages whose markup looks like an error
// page.
var defaultAllowedDomains = []string{
	"github.com",
}

// Policy holds the data the classifier decides with.
type Policy struct {
	// Phrases are matched against the lower-cased body of 200 responses.
	Phrases mapset.Set[string]

	// AllowedDomains are never content sniffed. A link matches when its
	// host equals an entry or is a subdomain of it.
	AllowedDomains mapset.Set[string]

	// BlockedStatus is reported as blocked instead of being classified.
	// Zero disables it.
	BlockedStatus int
}

// NewPolicy builds a Policy. Phrases and domains are lower-cased, blank
// entries are ignored.
func NewPolicy(phrases, allowedDomains []string, blockedStatus int) Policy {
	return Policy{
		Phrases:        lowerSet(phrases),
		AllowedDomains: lowerSet(allowedDomains),
		BlockedStatus:  blockedStatus,
	}
}

// DefaultPolicy returns the built-in phrases, allow-list and blocked status.
func DefaultPolicy() Policy {
	return NewPolicy(defaultPhrases, defaultAllowedDomains, DefaultBlockedStatus)
}

// DefaultPhrases returns a copy of the built-in soft-404 phrases.
func DefaultPhrases() []string {
	return append([]string(nil), defaultPhrases...)
}

// DefaultAllowedDomains returns a copy of the built-in allow-list.
func DefaultAllowedDomains() []string {
	return append([]string(nil), defaultAllowedDomains...)
}

func lowerSet(values []string) mapset.Set[string] {
	set := mapset.NewSet[string]()
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "" {
			continue
		}
		set.Add(v)
	}
	return set
}
