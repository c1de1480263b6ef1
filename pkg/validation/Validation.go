package validation

import (
	"errors"
	"net/url"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/simplecontainer/mirror/pkg/settings"
	"github.com/simplecontainer/mirror/pkg/static"
)

func New() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterStructValidation(mirrorTargetRules, settings.MirrorTarget{})

	return &Validator{
		validate: validate,
	}
}

// Validate checks every target without stopping at the first failure. The returned targets have
// credentials cleared for non-http(s) urls.
func (v *Validator) Validate(targets []settings.MirrorTarget) (bool, []FieldError, []settings.MirrorTarget) {
	fieldErrors := make([]FieldError, 0)
	validated := make([]settings.MirrorTarget, 0, len(targets))

	for _, target := range targets {
		_, targetErrors, cleaned := v.ValidateTarget(target)

		fieldErrors = append(fieldErrors, targetErrors...)
		validated = append(validated, cleaned)
	}

	return len(fieldErrors) == 0, fieldErrors, validated
}

func (v *Validator) ValidateTarget(target settings.MirrorTarget) (bool, []FieldError, settings.MirrorTarget) {
	fieldErrors := make([]FieldError, 0)

	err := v.validate.Struct(target)

	if err != nil {
		var validationErrors validator.ValidationErrors

		if !errors.As(err, &validationErrors) {
			fieldErrors = append(fieldErrors, FieldError{
				Field:   settings.Key(static.SETTING_MIRROR_URL, target.Index),
				Message: err.Error(),
			})
		}

		for _, validationError := range validationErrors {
			fieldErrors = append(fieldErrors, translate(validationError, target.Index))
		}
	}

	sort.SliceStable(fieldErrors, func(i, j int) bool {
		return fieldOrder(fieldErrors[i].Field, target.Index) < fieldOrder(fieldErrors[j].Field, target.Index)
	})

	if !isHttpUri(target.Url) {
		target.Username = ""
		target.Password = ""
	}

	return len(fieldErrors) == 0, fieldErrors, target
}

func mirrorTargetRules(sl validator.StructLevel) {
	target := sl.Current().Interface().(settings.MirrorTarget)

	if target.Url == "" || !isHttpUri(target.Url) {
		return
	}

	if strings.Contains(target.Url, "@") {
		sl.ReportError(target.Url, "Url", "Url", tagEmbedded, "")
	}

	if target.Username == "" {
		sl.ReportError(target.Username, "Username", "Username", tagRequiredHttp, "")
	}

	if target.Password == "" {
		sl.ReportError(target.Password, "Password", "Password", tagRequiredHttp, "")
	}
}

// isHttpUri is true only for a parseable uri whose scheme starts with http. Anything unparseable is
// assumed to be an address git understands, e.g. scp-like ssh shorthand.
func isHttpUri(raw string) bool {
	if raw == "" {
		return false
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}

	return strings.HasPrefix(strings.ToLower(parsed.Scheme), "http")
}

func translate(validationError validator.FieldError, index int) FieldError {
	switch validationError.Field() {
	case "Username":
		return FieldError{Field: settings.Key(static.SETTING_USERNAME, index), Message: MESSAGE_USERNAME_REQUIRED}
	case "Password":
		return FieldError{Field: settings.Key(static.SETTING_PASSWORD, index), Message: MESSAGE_PASSWORD_REQUIRED}
	default:
		if validationError.Tag() == tagEmbedded {
			return FieldError{Field: settings.Key(static.SETTING_MIRROR_URL, index), Message: MESSAGE_URL_CREDENTIALS}
		}

		return FieldError{Field: settings.Key(static.SETTING_MIRROR_URL, index), Message: MESSAGE_URL_REQUIRED}
	}
}

func fieldOrder(field string, index int) int {
	switch field {
	case settings.Key(static.SETTING_MIRROR_URL, index):
		return 0
	case settings.Key(static.SETTING_USERNAME, index):
		return 1
	default:
		return 2
	}
}
