package model

// Classification is the verdict given to a checked link.
type Classification int

const (
	OK Classification = iota
	Broken
	Blocked
)

// String returns the label used in reports and console output.
func (c Classification) String() string {
	switch c {
	case Broken:
		return "❌ BROKEN"
	case Blocked:
		return "🚫 BLOCKED/UNKNOWN"
	default:
		return "✅ OK"
	}
}

// MarshalText lets JSON output carry the report label instead of an integer.
func (c Classification) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// LinkCheckResult is the outcome of probing a single link.
// FinalURL is empty and StatusCode is 0 when the link could not be fetched.
type LinkCheckResult struct {
	OriginalURL    string
	FinalURL       string
	StatusCode     int
	Classification Classification
}

// BrokenLinkRecord is a non-OK LinkCheckResult annotated with the seed that
// discovered it.
type BrokenLinkRecord struct {
	SourceSite     string         `json:"source_site"`
	OriginalURL    string         `json:"original_url"`
	FinalURL       string         `json:"final_url"`
	StatusCode     int            `json:"status_code"`
	Classification Classification `json:"status"`
}
