package mirror

import (
	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/simplecontainer/mirror/pkg/credentials"
	"github.com/simplecontainer/mirror/pkg/repository"
	"github.com/simplecontainer/mirror/pkg/settings"
	"go.uber.org/zap"
)

func newAttempt(repo repository.Repository, target settings.MirrorTarget, authenticatedUrl string, backOff backoff.BackOff) *Attempt {
	attempt := &Attempt{
		ID:               uuid.New(),
		Repository:       repo,
		Target:           target,
		authenticatedUrl: authenticatedUrl,
		backOff:          backOff,
	}

	attempt.backOff.Reset()

	attempt.state.Store(int32(Pending))

	return attempt
}

func (a *Attempt) State() State {
	return State(a.state.Load())
}

// Attempts is the number of failed pushes so far.
func (a *Attempt) Attempts() int {
	return int(a.attempts.Load())
}

func (a *Attempt) transition(to State) bool {
	from := a.State()

	if !canTransition(from, to) {
		return false
	}

	return a.state.CompareAndSwap(int32(from), int32(to))
}

func (a *Attempt) fields() []zap.Field {
	return []zap.Field{
		zap.String("attempt_id", a.ID.String()),
		zap.String("repository", a.Repository.Name),
		zap.String("mirror", credentials.RedactUrl(a.Target.Url)),
		zap.Int("index", a.Target.Index),
	}
}
