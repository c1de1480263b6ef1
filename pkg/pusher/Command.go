package pusher

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"

	"github.com/mattn/go-shellwords"
	"github.com/simplecontainer/mirror/pkg/credentials"
	"github.com/simplecontainer/mirror/pkg/logger"
	"github.com/simplecontainer/mirror/pkg/repository"
	"go.uber.org/zap"
)

func NewCommand(commandLine string, log *zap.Logger) (*Command, error) {
	args, err := shellwords.Parse(commandLine)

	if err != nil {
		return nil, err
	}

	if len(args) == 0 {
		return nil, errors.New("git command is empty")
	}

	return &Command{
		Args:   args,
		Env:    []string{"GIT_TERMINAL_PROMPT=0"},
		Logger: logger.Or(log),
	}, nil
}

// Push runs: <args> -C <path> push --prune <remote> +refs/heads/*:refs/heads/* +refs/tags/*:refs/tags/*
func (c *Command) Push(ctx context.Context, repo repository.Repository, remote string) (string, error) {
	args := append([]string{}, c.Args[1:]...)
	args = append(args, "-C", repo.Path, "push", "--prune", remote)
	args = append(args, RefSpecs()...)

	c.Logger.Debug("running git push", zap.String("repository", repo.Name), zap.String("remote", credentials.RedactUrl(remote)))

	cmd := exec.CommandContext(ctx, c.Args[0], args...)
	cmd.Env = append(os.Environ(), c.Env...)

	output, err := cmd.CombinedOutput()
	result := redact(strings.TrimSpace(string(output)), remote)

	if err != nil {
		message := err.Error()

		if result != "" {
			message = result + ": " + message
		}

		return "", failure(repo, remote, message)
	}

	return result, nil
}
