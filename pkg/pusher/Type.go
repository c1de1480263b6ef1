package pusher

import (
	"context"
	"fmt"

	"github.com/simplecontainer/mirror/pkg/repository"
	"go.uber.org/zap"
)

// Pusher pushes all branches and tags of a repository to one remote url, pruning refs deleted on the
// primary. The remote may carry credentials and must never appear in returned output or errors.
type Pusher interface {
	Push(ctx context.Context, repository repository.Repository, remote string) (string, error)
}

// PushFailure is any unsuccessful push. Message is already redacted.
type PushFailure struct {
	Repository string
	Remote     string
	Message    string
}

func (e *PushFailure) Error() string {
	return fmt.Sprintf("failed to push %s to %s: %s", e.Repository, e.Remote, e.Message)
}

// Git pushes in-process with go-git.
type Git struct {
	Ssh    *SshAuth
	Logger *zap.Logger
}

// Command pushes by running the git binary, e.g. "git" or "git -c http.sslVerify=false".
type Command struct {
	Args   []string
	Env    []string
	Logger *zap.Logger
}

// SshAuth is the process-wide key used for ssh mirrors. Http mirrors carry their credentials in the url.
type SshAuth struct {
	PrivateKey         string
	PrivateKeyPassword string
	KnownHosts         string
}
