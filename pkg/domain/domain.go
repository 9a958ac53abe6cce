package domain

import (
	"errors"
	"net/url"
	"strings"
)

var errNoHost = errors.New("URL has no host")

// GetHost returns the host of a given URL, port included, exactly as it
// appears in the URL.
func GetHost(u string) (string, error) {
	parsedUrl, err := url.Parse(u)
	if err != nil {
		return "", errors.New("error parsing URL")
	}
	if parsedUrl.Host == "" {
		return "", errNoHost
	}
	return parsedUrl.Host, nil
}

// IsSameDomain reports whether u lives on exactly the given host.
// No subdomain or scheme normalization is applied: "www.example.com" and
// "example.com" are different domains.
func IsSameDomain(host string, u string) bool {
	h, err := GetHost(u)
	return err == nil && host == h
}

// IsHTTP reports whether the scheme of u begins with "http".
func IsHTTP(u *url.URL) bool {
	return strings.HasPrefix(u.Scheme, "http")
}

// MatchesAny reports whether the hostname of u equals one of the domains or
// is a subdomain of one of them.
func MatchesAny(u string, domains []string) bool {
	parsedUrl, err := url.Parse(u)
	if err != nil {
		return false
	}
	hostname := strings.ToLower(parsedUrl.Hostname())
	if hostname == "" {
		return false
	}
	for _, d := range domains {
		d = strings.ToLower(strings.TrimPrefix(d, "."))
		if d == "" {
			continue
		}
		if hostname == d || strings.HasSuffix(hostname, "."+d) {
			return true
		}
	}
	return false
}
