package hook

import (
	"context"

	"github.com/pkg/errors"
	"github.com/r3labs/diff/v3"
	"github.com/simplecontainer/mirror/pkg/logger"
	"github.com/simplecontainer/mirror/pkg/mirror"
	"github.com/simplecontainer/mirror/pkg/settings"
	"github.com/simplecontainer/mirror/pkg/validation"
	"go.uber.org/zap"
)

func New(opts Options) *Hook {
	h := &Hook{
		resolver:  opts.Resolver,
		store:     opts.Store,
		validator: opts.Validator,
		scheduler: opts.Scheduler,
		encrypter: opts.Encrypter,
		logger:    logger.Or(opts.Logger),
	}

	if h.validator == nil {
		h.validator = validation.New()
	}

	return h
}

// PostReceive schedules a push to every stored mirror of the repository. It returns as soon as the
// pushes are queued.
func (h *Hook) PostReceive(ctx context.Context, name string) ([]*mirror.Attempt, error) {
	repo, err := h.resolver.Resolve(name)

	if err != nil {
		return nil, err
	}

	flat, err := h.store.Get(ctx, repo.Name)

	if err != nil {
		return nil, errors.Wrapf(err, "failed to read mirror settings of %s", repo.Name)
	}

	targets := settings.Parse(flat)

	if len(targets) == 0 {
		h.logger.Debug("no mirrors configured", zap.String("repository", repo.Name))
		return []*mirror.Attempt{}, nil
	}

	return h.scheduler.Schedule(repo, targets), nil
}

// Validate checks submitted settings, persists them when valid and schedules a push to every saved
// mirror. Field errors go to the reporter and block the save. Any other failure is a form error.
func (h *Hook) Validate(ctx context.Context, name string, flat settings.Flat, reporter validation.Reporter) bool {
	repo, err := h.resolver.Resolve(name)

	if err != nil {
		reporter.AddFormError(err.Error())
		return false
	}

	ok, fieldErrors, targets := h.validator.Validate(settings.Parse(flat))

	if !ok {
		validation.Report(reporter, fieldErrors)

		h.logger.Info("mirror settings rejected",
			zap.String("repository", repo.Name),
			zap.Error(&validation.ConfigurationError{FieldErrors: fieldErrors}),
		)

		return false
	}

	previous, err := h.store.Get(ctx, repo.Name)

	if err != nil {
		reporter.AddFormError(errors.Wrap(err, "failed to read mirror settings").Error())
		return false
	}

	serialized, err := settings.Serialize(targets, h.encrypter)

	if err != nil {
		reporter.AddFormError(err.Error())
		return false
	}

	if err = h.store.Replace(ctx, repo.Name, serialized); err != nil {
		reporter.AddFormError(errors.Wrap(err, "failed to save mirror settings").Error())
		return false
	}

	h.logChanges(repo.Name, settings.Parse(previous), targets)

	// Scheduled from the stored form so the scheduler only ever sees encrypted passwords.
	h.scheduler.Schedule(repo, settings.Parse(serialized))

	return true
}

// Targets lists the stored mirrors without their passwords.
func (h *Hook) Targets(ctx context.Context, name string) ([]Target, error) {
	repo, err := h.resolver.Resolve(name)

	if err != nil {
		return nil, err
	}

	flat, err := h.store.Get(ctx, repo.Name)

	if err != nil {
		return nil, errors.Wrapf(err, "failed to read mirror settings of %s", repo.Name)
	}

	targets := make([]Target, 0)

	for _, target := range settings.Parse(flat) {
		targets = append(targets, Target{
			Url:         target.Url,
			Username:    target.Username,
			HasPassword: target.Password != "",
			Index:       target.Index,
		})
	}

	return targets, nil
}

func (h *Hook) logChanges(repository string, previous []settings.MirrorTarget, current []settings.MirrorTarget) {
	changelog, err := diff.Diff(withoutPasswords(previous), withoutPasswords(current), diff.SliceOrdering(true))

	if err != nil {
		h.logger.Debug("failed to diff mirror settings", zap.String("repository", repository), zap.Error(err))
		return
	}

	for _, change := range changelog {
		h.logger.Info("mirror settings changed",
			zap.String("repository", repository),
			zap.String("type", change.Type),
			zap.Strings("path", change.Path),
			zap.Any("from", change.From),
			zap.Any("to", change.To),
		)
	}
}

func withoutPasswords(targets []settings.MirrorTarget) []settings.MirrorTarget {
	stripped := make([]settings.MirrorTarget, 0, len(targets))

	for _, target := range targets {
		target.Password = ""
		stripped = append(stripped, target)
	}

	return stripped
}
