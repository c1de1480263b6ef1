package commands

import (
	"fmt"

	"github.com/simplecontainer/mirror/internal/helpers"
	"github.com/simplecontainer/mirror/pkg/configuration"
	"github.com/simplecontainer/mirror/pkg/logger"
	"github.com/simplecontainer/mirror/pkg/pusher"
	"github.com/simplecontainer/mirror/pkg/settings"
	"github.com/simplecontainer/mirror/pkg/static"
	clientv3 "go.etcd.io/etcd/client/v3"
)

// NewStore opens the configured settings backend. The returned func releases it.
func NewStore(conf *configuration.Configuration) (settings.Store, func(), error) {
	switch conf.Store.Backend {
	case static.STORE_MEMORY:
		return settings.NewMemory(), func() {}, nil
	case static.STORE_FILE:
		store, err := settings.NewFile(conf.Store.Directory)
		if err != nil {
			return nil, nil, err
		}

		return store, func() {}, nil
	case static.STORE_ETCD:
		etcd, err := clientv3.New(clientv3.Config{
			Endpoints:   conf.Etcd.Endpoints,
			DialTimeout: conf.Etcd.DialTimeout,
			Logger:      logger.Log,
		})

		if err != nil {
			return nil, nil, err
		}

		return settings.NewEtcd(etcd, conf.Etcd.Prefix), func() {
			helpers.LogIfError(etcd.Close())
		}, nil
	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", conf.Store.Backend)
	}
}

func NewPusher(conf *configuration.Configuration) (pusher.Pusher, error) {
	switch conf.Push.Executor {
	case static.EXECUTOR_GIT:
		var ssh *pusher.SshAuth

		if conf.Ssh.PrivateKey != "" {
			ssh = &pusher.SshAuth{
				PrivateKey:         conf.Ssh.PrivateKey,
				PrivateKeyPassword: conf.Ssh.PrivateKeyPassword,
				KnownHosts:         conf.Ssh.KnownHosts,
			}
		}

		return pusher.NewGit(ssh, logger.Log), nil
	case static.EXECUTOR_COMMAND:
		return pusher.NewCommand(conf.Push.Command, logger.Log)
	default:
		return nil, fmt.Errorf("unknown push executor %q", conf.Push.Executor)
	}
}
