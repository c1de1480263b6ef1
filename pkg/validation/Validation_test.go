package validation

import (
	"testing"

	"github.com/simplecontainer/mirror/pkg/settings"
	"github.com/stretchr/testify/assert"
)

func TestValidateTarget(t *testing.T) {
	type Wanted struct {
		ok       bool
		errors   []FieldError
		username string
		password string
	}

	testCases := []struct {
		name   string
		target settings.MirrorTarget
		wanted Wanted
	}{
		{
			"empty url",
			settings.MirrorTarget{},
			Wanted{
				ok:     false,
				errors: []FieldError{{Field: "mirror-url0", Message: MESSAGE_URL_REQUIRED}},
			},
		},
		{
			"http without credentials",
			settings.MirrorTarget{Url: "https://host/repo.git"},
			Wanted{
				ok: false,
				errors: []FieldError{
					{Field: "username0", Message: MESSAGE_USERNAME_REQUIRED},
					{Field: "password0", Message: MESSAGE_PASSWORD_REQUIRED},
				},
			},
		},
		{
			"ssh clears credentials",
			settings.MirrorTarget{Url: "ssh://host/repo.git", Username: "x", Password: "y"},
			Wanted{ok: true, errors: []FieldError{}},
		},
		{
			"scp-like shorthand passes",
			settings.MirrorTarget{Url: "git@github.com:org/repo.git", Username: "x", Password: "y"},
			Wanted{ok: true, errors: []FieldError{}},
		},
		{
			"embedded credentials",
			settings.MirrorTarget{Url: "https://user@host/repo.git", Username: "u", Password: "p"},
			Wanted{
				ok:       false,
				errors:   []FieldError{{Field: "mirror-url0", Message: MESSAGE_URL_CREDENTIALS}},
				username: "u",
				password: "p",
			},
		},
		{
			"embedded credentials and missing password",
			settings.MirrorTarget{Url: "HTTP://user:pw@host/repo.git", Username: "u", Index: 3},
			Wanted{
				ok: false,
				errors: []FieldError{
					{Field: "mirror-url3", Message: MESSAGE_URL_CREDENTIALS},
					{Field: "password3", Message: MESSAGE_PASSWORD_REQUIRED},
				},
				username: "u",
			},
		},
		{
			"valid http",
			settings.MirrorTarget{Url: "https://host/repo.git", Username: "u", Password: "p"},
			Wanted{ok: true, errors: []FieldError{}, username: "u", password: "p"},
		},
	}

	v := New()

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ok, fieldErrors, validated := v.ValidateTarget(tc.target)

			assert.Equal(t, tc.wanted.ok, ok)
			assert.Equal(t, tc.wanted.errors, fieldErrors)
			assert.Equal(t, tc.target.Url, validated.Url)
			assert.Equal(t, tc.wanted.username, validated.Username)
			assert.Equal(t, tc.wanted.password, validated.Password)
		})
	}
}

func TestValidateAllTargetsWithoutShortCircuit(t *testing.T) {
	targets := []settings.MirrorTarget{
		{Url: "", Index: 0},
		{Url: "ssh://host/ok.git", Username: "drop", Password: "drop", Index: 1},
		{Url: "https://host/repo.git", Index: 2},
	}

	ok, fieldErrors, validated := New().Validate(targets)

	assert.False(t, ok)
	assert.Equal(t, []FieldError{
		{Field: "mirror-url0", Message: MESSAGE_URL_REQUIRED},
		{Field: "username2", Message: MESSAGE_USERNAME_REQUIRED},
		{Field: "password2", Message: MESSAGE_PASSWORD_REQUIRED},
	}, fieldErrors)

	assert.Len(t, validated, 3)
	assert.Equal(t, "", validated[1].Username)
	assert.Equal(t, "", validated[1].Password)
}

func TestValidateOk(t *testing.T) {
	ok, fieldErrors, _ := New().Validate([]settings.MirrorTarget{
		{Url: "ssh://host/a.git", Index: 0},
		{Url: "https://host/b.git", Username: "u", Password: "p", Index: 1},
	})

	assert.True(t, ok)
	assert.Empty(t, fieldErrors)
}

func TestReport(t *testing.T) {
	collected := NewErrors()
	assert.True(t, collected.Empty())

	Report(collected, []FieldError{
		{Field: "username0", Message: MESSAGE_USERNAME_REQUIRED},
		{Field: "mirror-url1", Message: MESSAGE_URL_REQUIRED},
	})
	collected.AddFormError("settings store unavailable")

	assert.False(t, collected.Empty())
	assert.Equal(t, []string{MESSAGE_USERNAME_REQUIRED}, collected.FieldErrors["username0"])
	assert.Equal(t, []string{MESSAGE_URL_REQUIRED}, collected.FieldErrors["mirror-url1"])
	assert.Equal(t, []string{"settings store unavailable"}, collected.FormErrors)
}

func TestConfigurationErrorMessage(t *testing.T) {
	err := &ConfigurationError{FieldErrors: []FieldError{{Field: "mirror-url0", Message: MESSAGE_URL_REQUIRED}}}

	assert.Equal(t, "invalid mirror configuration: mirror-url0: mirror url required", err.Error())
}
