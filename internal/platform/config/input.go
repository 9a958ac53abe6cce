package config

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/yingtu35/linkrot/internal/linkcheck"
	"github.com/yingtu35/linkrot/internal/platform/errs"
)

// ReadSeedFile returns the seed URLs listed one per line in path.
// Lines are trimmed and blank lines are ignored.
func ReadSeedFile(path string) ([]string, error) {
	var logp = `ReadSeedFile`

	file, err := os.Open(path)
	if err != nil {
		return nil, &errs.AppError{
			Kind:    errs.InvalidInput,
			Message: fmt.Sprintf("%s: cannot read URL file %q", logp, path),
			Cause:   err,
		}
	}
	defer file.Close()

	var seeds []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		seeds = append(seeds, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, &errs.AppError{
			Kind:    errs.InvalidInput,
			Message: fmt.Sprintf("%s: cannot read URL file %q", logp, path),
			Cause:   err,
		}
	}
	return seeds, nil
}

// policyFile is the JSON layout accepted by LoadPolicy.
type policyFile struct {
	Phrases        []string `json:"phrases"`
	AllowedDomains []string `json:"allowed_domains"`
	BlockedStatus  *int     `json:"blocked_status"`
}

// LoadPolicy reads a classification policy from a JSON file such as
//
//	{"phrases": ["page not found"], "allowed_domains": ["github.com"], "blocked_status": 999}
//
// Missing fields keep the built-in defaults. An empty path returns the
// defaults.
func LoadPolicy(path string) (linkcheck.Policy, error) {
	var logp = `LoadPolicy`

	if path == "" {
		return linkcheck.DefaultPolicy(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return linkcheck.Policy{}, &errs.AppError{
			Kind:    errs.InvalidInput,
			Message: fmt.Sprintf("%s: cannot read policy file %q", logp, path),
			Cause:   err,
		}
	}

	var pf policyFile
	if err := json.Unmarshal(raw, &pf); err != nil {
		return linkcheck.Policy{}, &errs.AppError{
			Kind:    errs.InvalidInput,
			Message: fmt.Sprintf("%s: invalid policy file %q", logp, path),
			Cause:   err,
		}
	}

	phrases := pf.Phrases
	if phrases == nil {
		phrases = linkcheck.DefaultPhrases()
	}
	domains := pf.AllowedDomains
	if domains == nil {
		domains = linkcheck.DefaultAllowedDomains()
	}
	blocked := linkcheck.DefaultBlockedStatus
	if pf.BlockedStatus != nil {
		blocked = *pf.BlockedStatus
	}
	return linkcheck.NewPolicy(phrases, domains, blocked), nil
}
