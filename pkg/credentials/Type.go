package credentials

import "regexp"

// MalformedUrlError is returned when a mirror url cannot be parsed to embed credentials.
// It never carries the url itself, only the parse failure.
type MalformedUrlError struct {
	Err error
}

func (e *MalformedUrlError) Error() string {
	return "malformed mirror url: " + e.Err.Error()
}

func (e *MalformedUrlError) Unwrap() error {
	return e.Err
}

var userInfoPattern = regexp.MustCompile(`([a-zA-Z][a-zA-Z0-9+.\-]*://)[^/\s@]+@`)
