package hook

import (
	"context"
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/simplecontainer/mirror/pkg/encrypt"
	"github.com/simplecontainer/mirror/pkg/mirror"
	"github.com/simplecontainer/mirror/pkg/repository"
	"github.com/simplecontainer/mirror/pkg/settings"
	"github.com/simplecontainer/mirror/pkg/validation"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

type scheduled struct {
	repo    repository.Repository
	targets []settings.MirrorTarget
}

type recorder struct {
	mu    sync.Mutex
	calls []scheduled
}

func (r *recorder) Schedule(repo repository.Repository, targets []settings.MirrorTarget) []*mirror.Attempt {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls = append(r.calls, scheduled{repo: repo, targets: targets})
	return []*mirror.Attempt{}
}

type brokenStore struct {
	settings.Store
}

func (brokenStore) Replace(ctx context.Context, repository string, flat settings.Flat) error {
	return errors.New("disk full")
}

type fixture struct {
	hook      *Hook
	store     settings.Store
	scheduler *recorder
	codec     *encrypt.Codec
	logs      *observer.ObservedLogs
}

func newFixture(t *testing.T, store settings.Store) *fixture {
	t.Helper()

	root := t.TempDir()
	assert.NilError(t, os.MkdirAll(filepath.Join(root, "project", "repo.git"), 0755))

	codec, err := encrypt.New(hex.EncodeToString([]byte("change this password to a secret")))
	assert.NilError(t, err)

	core, logs := observer.New(zapcore.DebugLevel)
	scheduler := &recorder{}

	return &fixture{
		hook: New(Options{
			Resolver:  repository.NewResolver(root, ".git"),
			Store:     store,
			Scheduler: scheduler,
			Encrypter: codec,
			Logger:    zap.New(core),
		}),
		store:     store,
		scheduler: scheduler,
		codec:     codec,
		logs:      logs,
	}
}

func TestValidateSavesAndSchedules(t *testing.T) {
	f := newFixture(t, settings.NewMemory())
	reporter := validation.NewErrors()

	ok := f.hook.Validate(context.Background(), "project/repo", settings.Flat{
		"mirror-url":  "https://example.com/repo.git",
		"username":    "bot",
		"password":    "hunter2",
		"mirror-url7": "ssh://git@example.com/repo.git",
		"username7":   "ignored",
		"password7":   "ignored",
	}, reporter)

	assert.Assert(t, ok)
	assert.Assert(t, reporter.Empty())

	stored, err := f.store.Get(context.Background(), "project/repo")
	assert.NilError(t, err)
	assert.Equal(t, len(stored), 6)
	assert.Equal(t, stored["mirror-url0"], "https://example.com/repo.git")
	assert.Equal(t, stored["mirror-url1"], "ssh://git@example.com/repo.git")
	assert.Equal(t, stored["username1"], "")
	assert.Equal(t, stored["password1"], "")
	assert.Assert(t, stored["password0"] != "hunter2")

	password, err := f.codec.Decrypt(stored["password0"])
	assert.NilError(t, err)
	assert.Equal(t, password, "hunter2")

	assert.Equal(t, len(f.scheduler.calls), 1)
	call := f.scheduler.calls[0]
	assert.Equal(t, call.repo.Name, "project/repo")
	assert.Equal(t, len(call.targets), 2)
	assert.Equal(t, call.targets[0].Password, stored["password0"])

	for _, entry := range f.logs.All() {
		for _, field := range entry.Context {
			assert.Assert(t, !strings.Contains(field.String, "hunter2"))
		}
	}
}

func TestValidateReportsFieldErrorsWithNewIndexes(t *testing.T) {
	f := newFixture(t, settings.NewMemory())
	reporter := validation.NewErrors()

	ok := f.hook.Validate(context.Background(), "project/repo", settings.Flat{
		"mirror-url":  "ssh://git@example.com/repo.git",
		"mirror-url5": "https://example.com/repo.git",
		"mirror-url9": "https://user@example.com/repo.git",
		"username9":   "u",
		"password9":   "p",
	}, reporter)

	assert.Assert(t, !ok)
	assert.DeepEqual(t, reporter.FieldErrors, map[string][]string{
		"mirror-url2": {validation.MESSAGE_URL_CREDENTIALS},
		"username1":   {validation.MESSAGE_USERNAME_REQUIRED},
		"password1":   {validation.MESSAGE_PASSWORD_REQUIRED},
	})
	assert.Check(t, is.Len(reporter.FormErrors, 0))

	stored, err := f.store.Get(context.Background(), "project/repo")
	assert.NilError(t, err)
	assert.Check(t, is.Len(stored, 0))
	assert.Check(t, is.Len(f.scheduler.calls, 0))
}

func TestValidateStoreFailureIsFormError(t *testing.T) {
	f := newFixture(t, brokenStore{Store: settings.NewMemory()})
	reporter := validation.NewErrors()

	ok := f.hook.Validate(context.Background(), "project/repo", settings.Flat{
		"mirror-url": "/srv/mirror/repo.git",
	}, reporter)

	assert.Assert(t, !ok)
	assert.Check(t, is.Len(reporter.FieldErrors, 0))
	assert.Check(t, is.Len(reporter.FormErrors, 1))
	assert.Check(t, is.Contains(reporter.FormErrors[0], "disk full"))
	assert.Check(t, is.Len(f.scheduler.calls, 0))
}

func TestValidateUnknownRepository(t *testing.T) {
	f := newFixture(t, settings.NewMemory())
	reporter := validation.NewErrors()

	ok := f.hook.Validate(context.Background(), "project/absent", settings.Flat{}, reporter)

	assert.Assert(t, !ok)
	assert.Check(t, is.Len(reporter.FormErrors, 1))
}

func TestValidateLogsChangesWithoutPasswords(t *testing.T) {
	f := newFixture(t, settings.NewMemory())

	assert.NilError(t, f.store.Replace(context.Background(), "project/repo", settings.Flat{
		"mirror-url0": "https://old.example.com/repo.git",
		"username0":   "bot",
		"password0":   "stored",
	}))

	ok := f.hook.Validate(context.Background(), "project/repo", settings.Flat{
		"mirror-url0": "https://new.example.com/repo.git",
		"username0":   "bot",
		"password0":   "hunter2",
	}, validation.NewErrors())
	assert.Assert(t, ok)

	changes := f.logs.FilterMessage("mirror settings changed").All()
	assert.Equal(t, len(changes), 1)

	fields := changes[0].ContextMap()
	assert.Equal(t, fields["from"], "https://old.example.com/repo.git")
	assert.Equal(t, fields["to"], "https://new.example.com/repo.git")
}

func TestPostReceiveSchedulesStoredTargets(t *testing.T) {
	f := newFixture(t, settings.NewMemory())

	assert.NilError(t, f.store.Replace(context.Background(), "project/repo", settings.Flat{
		"mirror-url0": "/srv/mirror/a.git",
		"mirror-url1": "/srv/mirror/b.git",
	}))

	_, err := f.hook.PostReceive(context.Background(), "project/repo")
	assert.NilError(t, err)

	assert.Equal(t, len(f.scheduler.calls), 1)
	assert.Equal(t, f.scheduler.calls[0].repo.Path, filepath.Join(f.hook.resolver.Root, "project", "repo.git"))
	assert.Equal(t, len(f.scheduler.calls[0].targets), 2)
}

func TestPostReceiveWithoutMirrors(t *testing.T) {
	f := newFixture(t, settings.NewMemory())

	attempts, err := f.hook.PostReceive(context.Background(), "project/repo")
	assert.NilError(t, err)
	assert.Check(t, is.Len(attempts, 0))
	assert.Check(t, is.Len(f.scheduler.calls, 0))
}

func TestPostReceiveUnknownRepository(t *testing.T) {
	f := newFixture(t, settings.NewMemory())

	_, err := f.hook.PostReceive(context.Background(), "../etc")
	assert.Assert(t, errors.Is(err, repository.ErrInvalidName))

	_, err = f.hook.PostReceive(context.Background(), "project/absent")
	assert.Assert(t, errors.Is(err, repository.ErrNotFound))
}

func TestTargetsHidePasswords(t *testing.T) {
	f := newFixture(t, settings.NewMemory())

	assert.NilError(t, f.store.Replace(context.Background(), "project/repo", settings.Flat{
		"mirror-url0": "https://example.com/repo.git",
		"username0":   "bot",
		"password0":   "ciphertext",
		"mirror-url1": "/srv/mirror/repo.git",
	}))

	targets, err := f.hook.Targets(context.Background(), "project/repo")
	assert.NilError(t, err)
	assert.DeepEqual(t, targets, []Target{
		{Url: "https://example.com/repo.git", Username: "bot", HasPassword: true, Index: 0},
		{Url: "/srv/mirror/repo.git", Username: "", HasPassword: false, Index: 1},
	})
}
