package pusher

import (
	"net/url"

	"github.com/simplecontainer/mirror/pkg/credentials"
	"github.com/simplecontainer/mirror/pkg/repository"
	"github.com/simplecontainer/mirror/pkg/static"
)

// RefSpecs mirrors branches and tags only, a bare --mirror push would also send pull-request refs.
func RefSpecs() []string {
	return []string{static.REFSPEC_HEADS, static.REFSPEC_TAGS}
}

func failure(repo repository.Repository, remote string, message string) *PushFailure {
	return &PushFailure{
		Repository: repo.Name,
		Remote:     credentials.RedactUrl(remote),
		Message:    redact(message, remote),
	}
}

// redact masks the authenticated remote and the password it embeds.
func redact(text string, remote string) string {
	return credentials.Redact(text, remote, passwordOf(remote))
}

func passwordOf(remote string) string {
	parsed, err := url.Parse(remote)
	if err != nil || parsed.User == nil {
		return ""
	}

	password, _ := parsed.User.Password()
	return password
}
