package mirror

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/simplecontainer/mirror/pkg/pusher"
	"github.com/simplecontainer/mirror/pkg/queue"
	"github.com/simplecontainer/mirror/pkg/repository"
	"github.com/simplecontainer/mirror/pkg/settings"
	"go.uber.org/zap"
)

type State int32

const (
	Pending State = iota
	Running
	Retrying
	Succeeded
	FailedTerminal
)

// Decrypter opens stored mirror passwords.
type Decrypter interface {
	Decrypt(encrypted string) (string, error)
}

// Queue is the background pool attempts run on.
type Queue interface {
	Submit(workType queue.WorkType, priority int, action func(ctx context.Context))
	SubmitAfter(delay time.Duration, workType queue.WorkType, priority int, action func(ctx context.Context))
}

type Options struct {
	Queue       Queue
	Pusher      pusher.Pusher
	Codec       Decrypter
	MaxAttempts int
	// Delay builds the retry policy of one attempt. Each attempt gets its own.
	Delay       func() backoff.BackOff
	PushTimeout time.Duration
	Logger      *zap.Logger
}

type Scheduler struct {
	queue       Queue
	pusher      pusher.Pusher
	codec       Decrypter
	maxAttempts int
	delay       func() backoff.BackOff
	pushTimeout time.Duration
	logger      *zap.Logger
}

// Attempt is one target's push for one trigger, carried through all of its retries.
// Target and the authenticated url are fixed at enqueue time.
type Attempt struct {
	ID         uuid.UUID
	Repository repository.Repository
	Target     settings.MirrorTarget

	authenticatedUrl string
	backOff          backoff.BackOff
	attempts         atomic.Int32
	state            atomic.Int32
}
