package hook

import (
	"github.com/simplecontainer/mirror/pkg/mirror"
	"github.com/simplecontainer/mirror/pkg/repository"
	"github.com/simplecontainer/mirror/pkg/settings"
	"github.com/simplecontainer/mirror/pkg/validation"
	"go.uber.org/zap"
)

// Scheduler is satisfied by *mirror.Scheduler.
type Scheduler interface {
	Schedule(repo repository.Repository, targets []settings.MirrorTarget) []*mirror.Attempt
}

type Options struct {
	Resolver  *repository.Resolver
	Store     settings.Store
	Validator *validation.Validator
	Scheduler Scheduler
	Encrypter settings.Encrypter
	Logger    *zap.Logger
}

// Hook connects host events, post-receive and settings save, to the mirror scheduler.
type Hook struct {
	resolver  *repository.Resolver
	store     settings.Store
	validator *validation.Validator
	scheduler Scheduler
	encrypter settings.Encrypter
	logger    *zap.Logger
}

// Target is a stored mirror target as shown to the repository owner.
type Target struct {
	Url         string `json:"url"`
	Username    string `json:"username"`
	HasPassword bool   `json:"hasPassword"`
	Index       int    `json:"index"`
}
