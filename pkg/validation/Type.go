package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	MESSAGE_URL_REQUIRED      = "mirror url required"
	MESSAGE_URL_CREDENTIALS   = "username/password must not be embedded in the url"
	MESSAGE_USERNAME_REQUIRED = "username required for http(s) mirror url"
	MESSAGE_PASSWORD_REQUIRED = "password required for http(s) mirror url"
)

const (
	tagEmbedded     = "no_embedded_credentials"
	tagRequiredHttp = "required_http"
)

type Validator struct {
	validate *validator.Validate
}

// FieldError is scoped to a flat settings key, e.g. mirror-url0.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Reporter receives validation failures on the synchronous settings save path.
type Reporter interface {
	AddFieldError(field string, message string)
	AddFormError(message string)
}

// Errors collects reported failures.
type Errors struct {
	FieldErrors map[string][]string `json:"fieldErrors"`
	FormErrors  []string            `json:"formErrors"`
}

// ConfigurationError blocks persistence of mirror settings.
type ConfigurationError struct {
	FieldErrors []FieldError
}

func (e *ConfigurationError) Error() string {
	messages := make([]string, 0, len(e.FieldErrors))

	for _, fieldError := range e.FieldErrors {
		messages = append(messages, fmt.Sprintf("%s: %s", fieldError.Field, fieldError.Message))
	}

	return "invalid mirror configuration: " + strings.Join(messages, "; ")
}
