package model

// Response is a fully read HTTP response. The connection it came from has
// already been released.
type Response struct {
	// FinalURL is the URL of the last request after redirects.
	FinalURL   string
	StatusCode int
	Body       []byte
}
