package credentials

import (
	"errors"
	"net/url"
	"strings"
)

// IsHttp reports whether the mirror url uses a transport that carries credentials in the url itself.
func IsHttp(raw string) bool {
	return strings.HasPrefix(strings.ToLower(raw), "http")
}

// BuildAuthenticatedUrl embeds username:password as the user-info of an http(s) url. Any other url is
// returned unmodified. The result is a secret and must not be logged.
func BuildAuthenticatedUrl(raw string, username string, password string) (string, error) {
	if !IsHttp(raw) {
		return raw, nil
	}

	parsed, err := url.Parse(raw)

	if err != nil {
		var urlError *url.Error
		if errors.As(err, &urlError) {
			err = urlError.Err
		}

		return "", &MalformedUrlError{Err: err}
	}

	if parsed.Host == "" {
		return "", &MalformedUrlError{Err: errors.New("missing host")}
	}

	parsed.User = url.UserPassword(username, password)

	return parsed.String(), nil
}
