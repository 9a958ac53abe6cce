package linkcheck

import (
	"bytes"
	"net/http"

	"github.com/yingtu35/linkrot/internal/model"
	"github.com/yingtu35/linkrot/pkg/domain"
)

// Classify decides whether a response is broken.
//
// Any status of 400 or above is broken. A 200 is broken when its body
// contains one of the policy phrases, unless originalURL is on an allowed
// domain. Every other status is OK.
func Classify(policy Policy, statusCode int, body []byte, originalURL string) model.Classification {
	if statusCode >= http.StatusBadRequest {
		return model.Broken
	}
	if statusCode != http.StatusOK {
		return model.OK
	}
	if policy.AllowedDomains != nil &&
		domain.MatchesAny(originalURL, policy.AllowedDomains.ToSlice()) {
		return model.OK
	}
	if policy.Phrases == nil || policy.Phrases.Cardinality() == 0 {
		return model.OK
	}

	content := bytes.ToLower(body)
	found := false
	policy.Phrases.Each(func(phrase string) bool {
		if bytes.Contains(content, []byte(phrase)) {
			found = true
			return true
		}
		return false
	})
	if found {
		return model.Broken
	}
	return model.OK
}
