package configuration

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/simplecontainer/mirror/pkg/static"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const EnvPrefix = "MIRROR"

func NewConfig() *Configuration {
	return &Configuration{
		Listen:  static.DEFAULT_LISTEN,
		Log:     static.DEFAULT_LOG_LEVEL,
		Workers: static.DEFAULT_WORKERS,
		Repositories: Repositories{
			Suffix: static.DEFAULT_REPO_SUFFIX,
		},
		Key: Key{
			File: static.DEFAULT_KEY_FILE,
		},
		Store: Store{
			Backend: static.STORE_MEMORY,
		},
		Etcd: Etcd{
			Endpoints:   []string{"localhost:2379"},
			Prefix:      static.DEFAULT_ETCD_PREFIX,
			DialTimeout: 5 * time.Second,
		},
		Push: Push{
			Timeout:  static.DEFAULT_PUSH_TIMEOUT,
			Executor: static.EXECUTOR_GIT,
			Command:  static.DEFAULT_GIT_COMMAND,
		},
	}
}

// SetDefaults registers every key so environment overrides are seen by Unmarshal.
func SetDefaults(v *viper.Viper) {
	conf := NewConfig()

	v.SetDefault("listen", conf.Listen)
	v.SetDefault("log", conf.Log)
	v.SetDefault("workers", conf.Workers)
	v.SetDefault("rate", conf.Rate)
	v.SetDefault("repositories.root", conf.Repositories.Root)
	v.SetDefault("repositories.suffix", conf.Repositories.Suffix)
	v.SetDefault("key.file", conf.Key.File)
	v.SetDefault("store.backend", conf.Store.Backend)
	v.SetDefault("store.directory", conf.Store.Directory)
	v.SetDefault("etcd.endpoints", conf.Etcd.Endpoints)
	v.SetDefault("etcd.prefix", conf.Etcd.Prefix)
	v.SetDefault("etcd.dialTimeout", conf.Etcd.DialTimeout)
	v.SetDefault("push.timeout", conf.Push.Timeout)
	v.SetDefault("push.executor", conf.Push.Executor)
	v.SetDefault("push.command", conf.Push.Command)
	v.SetDefault("ssh.privateKey", conf.Ssh.PrivateKey)
	v.SetDefault("ssh.privateKeyPassword", conf.Ssh.PrivateKeyPassword)
	v.SetDefault("ssh.knownHosts", conf.Ssh.KnownHosts)
}

// Load reads .env, then the config file (explicit path, or mirror.yaml in . and /etc/mirror), then
// MIRROR_* environment variables, e.g. MIRROR_STORE_BACKEND. Flags bound to v win over all of them.
func Load(v *viper.Viper, path string) (*Configuration, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigType("yaml")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(static.DEFAULT_CONFIG_NAME)
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/mirror")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError

		if path != "" || !errors.As(err, &notFound) {
			return nil, err
		}
	}

	conf := NewConfig()

	if err := v.Unmarshal(conf); err != nil {
		return nil, err
	}

	if err := conf.Validate(); err != nil {
		return nil, err
	}

	return conf, nil
}

func (c *Configuration) Validate() error {
	switch c.Store.Backend {
	case static.STORE_MEMORY, static.STORE_ETCD:
	case static.STORE_FILE:
		if c.Store.Directory == "" {
			return errors.New("store.directory is required for the file store")
		}
	default:
		return fmt.Errorf("unknown store backend %q", c.Store.Backend)
	}

	switch c.Push.Executor {
	case static.EXECUTOR_GIT, static.EXECUTOR_COMMAND:
	default:
		return fmt.Errorf("unknown push executor %q", c.Push.Executor)
	}

	if c.Repositories.Root == "" {
		return errors.New("repositories.root is required")
	}

	if c.Store.Backend == static.STORE_ETCD && len(c.Etcd.Endpoints) == 0 {
		return errors.New("etcd.endpoints is required for the etcd store")
	}

	return nil
}

// Yaml renders the configuration with secrets masked.
func (c *Configuration) Yaml() ([]byte, error) {
	masked := *c

	if masked.Ssh.PrivateKeyPassword != "" {
		masked.Ssh.PrivateKeyPassword = static.REDACTED
	}

	return yaml.Marshal(masked)
}
