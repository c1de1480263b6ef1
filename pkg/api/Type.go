package api

import (
	"context"
	"encoding/json"

	"github.com/simplecontainer/mirror/pkg/hook"
	"github.com/simplecontainer/mirror/pkg/mirror"
	"github.com/simplecontainer/mirror/pkg/settings"
	"github.com/simplecontainer/mirror/pkg/validation"
	"github.com/simplecontainer/mirror/pkg/version"
	"go.uber.org/zap"
)

// Hook is satisfied by *hook.Hook.
type Hook interface {
	PostReceive(ctx context.Context, name string) ([]*mirror.Attempt, error)
	Validate(ctx context.Context, name string, flat settings.Flat, reporter validation.Reporter) bool
	Targets(ctx context.Context, name string) ([]hook.Target, error)
}

type Api struct {
	Hook    Hook
	Version *version.Version
	Logger  *zap.Logger
}

type Response struct {
	HttpStatus       int
	Explanation      string
	ErrorExplanation string
	Error            bool
	Success          bool
	Data             json.RawMessage
}

// Scheduled describes one queued mirror push in a post-receive response.
type Scheduled struct {
	ID     string `json:"id"`
	Mirror string `json:"mirror"`
	Index  int    `json:"index"`
}
