package pusher

import (
	"bytes"
	"context"
	"errors"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/transport"
	"github.com/simplecontainer/mirror/pkg/credentials"
	"github.com/simplecontainer/mirror/pkg/logger"
	"github.com/simplecontainer/mirror/pkg/repository"
	"go.uber.org/zap"
)

const remoteName = "mirror"

func NewGit(ssh *SshAuth, log *zap.Logger) *Git {
	return &Git{
		Ssh:    ssh,
		Logger: logger.Or(log),
	}
}

func (g *Git) Push(ctx context.Context, repo repository.Repository, remote string) (string, error) {
	local, err := git.PlainOpen(repo.Path)

	if err != nil {
		return "", failure(repo, remote, err.Error())
	}

	var progress bytes.Buffer

	options := &git.PushOptions{
		RemoteName: remoteName,
		RemoteURL:  remote,
		Progress:   &progress,
	}

	if !credentials.IsHttp(remote) && g.Ssh != nil && g.Ssh.PrivateKey != "" {
		options.Auth, err = g.Ssh.Method(remote)

		if err != nil {
			return "", failure(repo, remote, err.Error())
		}
	}

	// An unsaved remote keeps the credential-bearing url out of the repository config.
	mirror := git.NewRemote(local.Storer, &config.RemoteConfig{
		Name: remoteName,
		URLs: []string{remote},
	})

	deletes, err := stale(ctx, local, mirror, options.Auth)

	if err != nil {
		return "", failure(repo, remote, err.Error())
	}

	for _, spec := range RefSpecs() {
		options.RefSpecs = append(options.RefSpecs, config.RefSpec(spec))
	}

	options.RefSpecs = append(options.RefSpecs, deletes...)

	g.Logger.Debug("pushing repository", zap.String("repository", repo.Name), zap.String("remote", credentials.RedactUrl(remote)))

	err = mirror.PushContext(ctx, options)

	if errors.Is(err, git.NoErrAlreadyUpToDate) {
		return git.NoErrAlreadyUpToDate.Error(), nil
	}

	if err != nil {
		return "", failure(repo, remote, err.Error())
	}

	return redact(strings.TrimSpace(progress.String()), remote), nil
}

// stale returns a delete refspec for every mirror branch or tag the local repository no longer has.
// PushOptions.Prune is not used: with wildcard refspecs it also deletes refs that still exist locally.
func stale(ctx context.Context, local *git.Repository, mirror *git.Remote, auth transport.AuthMethod) ([]config.RefSpec, error) {
	refs, err := mirror.ListContext(ctx, &git.ListOptions{Auth: auth})

	if errors.Is(err, transport.ErrEmptyRemoteRepository) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	deletes := make([]config.RefSpec, 0)

	for _, ref := range refs {
		name := ref.Name()

		if strings.HasSuffix(name.String(), "^{}") || !(name.IsBranch() || name.IsTag()) {
			continue
		}

		_, err = local.Reference(name, false)

		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			deletes = append(deletes, config.RefSpec(":"+name.String()))
			continue
		}

		if err != nil {
			return nil, err
		}
	}

	return deletes, nil
}
