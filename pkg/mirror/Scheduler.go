package mirror

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/simplecontainer/mirror/pkg/credentials"
	"github.com/simplecontainer/mirror/pkg/logger"
	"github.com/simplecontainer/mirror/pkg/metrics"
	"github.com/simplecontainer/mirror/pkg/queue"
	"github.com/simplecontainer/mirror/pkg/repository"
	"github.com/simplecontainer/mirror/pkg/settings"
	"github.com/simplecontainer/mirror/pkg/static"
	"go.uber.org/zap"
)

func New(opts Options) *Scheduler {
	s := &Scheduler{
		queue:       opts.Queue,
		pusher:      opts.Pusher,
		codec:       opts.Codec,
		maxAttempts: opts.MaxAttempts,
		delay:       opts.Delay,
		pushTimeout: opts.PushTimeout,
		logger:      logger.Or(opts.Logger),
	}

	if s.maxAttempts < 1 {
		s.maxAttempts = static.MAX_ATTEMPTS
	}

	if s.delay == nil {
		s.delay = func() backoff.BackOff {
			return backoff.NewConstantBackOff(static.RETRY_DELAY)
		}
	}

	return s
}

// Schedule enqueues one attempt per target and returns without waiting for any push. Targets whose
// password cannot be decrypted or whose url cannot be authenticated are logged and skipped.
func (s *Scheduler) Schedule(repo repository.Repository, targets []settings.MirrorTarget) []*Attempt {
	attempts := make([]*Attempt, 0, len(targets))

	for _, target := range targets {
		mirror := credentials.RedactUrl(target.Url)

		password, err := s.codec.Decrypt(target.Password)

		if err != nil {
			s.abort(repo, mirror, "decrypt", err)
			continue
		}

		authenticatedUrl, err := credentials.BuildAuthenticatedUrl(target.Url, target.Username, password)

		if err != nil {
			s.abort(repo, mirror, "url", err)
			continue
		}

		attempt := newAttempt(repo, target, authenticatedUrl, s.delay())
		attempts = append(attempts, attempt)

		s.queue.Submit(queue.WorkTypePush, queue.PriorityPush, func(ctx context.Context) {
			s.run(ctx, attempt)
		})
	}

	return attempts
}

func (s *Scheduler) abort(repo repository.Repository, mirror string, reason string, err error) {
	metrics.PushAborted.Increment(repo.Name, reason)

	s.logger.Error("mirror push aborted",
		zap.String("repository", repo.Name),
		zap.String("mirror", mirror),
		zap.String("reason", reason),
		zap.Error(err),
	)
}

func (s *Scheduler) run(ctx context.Context, attempt *Attempt) {
	if !attempt.transition(Running) {
		return
	}

	output, err := s.push(ctx, attempt)

	if err == nil {
		attempt.transition(Succeeded)
		metrics.PushAttempts.Increment(attempt.Repository.Name, "success")

		s.logger.Info("mirror push succeeded", attempt.fields()...)
		s.logger.Debug("mirror push output", append(attempt.fields(), zap.String("output", output))...)
		return
	}

	metrics.PushAttempts.Increment(attempt.Repository.Name, "failure")

	count := int(attempt.attempts.Add(1))
	fields := append(attempt.fields(),
		zap.Int("attempt", count),
		zap.Int("max_attempts", s.maxAttempts),
		zap.Error(err),
	)

	delay := attempt.backOff.NextBackOff()

	if count >= s.maxAttempts || delay == backoff.Stop {
		attempt.transition(FailedTerminal)
		metrics.PushTerminalFailures.Increment(attempt.Repository.Name)

		s.logger.Error("mirror push failed terminally", fields...)
		return
	}

	attempt.transition(Retrying)
	metrics.RetriesPending.Inc()

	s.logger.Warn("mirror push failed, retrying", append(fields, zap.Duration("delay", delay))...)

	s.queue.SubmitAfter(delay, queue.WorkTypeRetry, queue.PriorityRetry, func(ctx context.Context) {
		metrics.RetriesPending.Dec()
		s.run(ctx, attempt)
	})
}

func (s *Scheduler) push(ctx context.Context, attempt *Attempt) (string, error) {
	if s.pushTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.pushTimeout)
		defer cancel()
	}

	start := time.Now()
	defer func() {
		metrics.PushDuration.Observe(time.Since(start).Seconds(), attempt.Repository.Name)
	}()

	return s.pusher.Push(ctx, attempt.Repository, attempt.authenticatedUrl)
}
