package credentials

import (
	"strings"

	"github.com/simplecontainer/mirror/pkg/static"
)

// RedactUrl masks the user-info part of a url so it can be logged.
func RedactUrl(raw string) string {
	return userInfoPattern.ReplaceAllString(raw, "${1}"+static.REDACTED+"@")
}

// Redact masks every non-empty secret in text, then any user-info left in urls.
func Redact(text string, secrets ...string) string {
	for _, secret := range secrets {
		if secret == "" {
			continue
		}

		text = strings.ReplaceAll(text, secret, static.REDACTED)
	}

	return RedactUrl(text)
}
