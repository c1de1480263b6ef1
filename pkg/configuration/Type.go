package configuration

import "time"

type Configuration struct {
	Listen       string       `yaml:"listen" mapstructure:"listen"`
	Log          string       `yaml:"log" mapstructure:"log"`
	Workers      int          `yaml:"workers" mapstructure:"workers"`
	Rate         float64      `yaml:"rate" mapstructure:"rate"`
	Repositories Repositories `yaml:"repositories" mapstructure:"repositories"`
	Key          Key          `yaml:"key" mapstructure:"key"`
	Store        Store        `yaml:"store" mapstructure:"store"`
	Etcd         Etcd         `yaml:"etcd" mapstructure:"etcd"`
	Push         Push         `yaml:"push" mapstructure:"push"`
	Ssh          Ssh          `yaml:"ssh" mapstructure:"ssh"`
}

type Repositories struct {
	Root   string `yaml:"root" mapstructure:"root"`
	Suffix string `yaml:"suffix" mapstructure:"suffix"`
}

type Key struct {
	File string `yaml:"file" mapstructure:"file"`
}

type Store struct {
	Backend   string `yaml:"backend" mapstructure:"backend"`
	Directory string `yaml:"directory" mapstructure:"directory"`
}

type Etcd struct {
	Endpoints   []string      `yaml:"endpoints" mapstructure:"endpoints"`
	Prefix      string        `yaml:"prefix" mapstructure:"prefix"`
	DialTimeout time.Duration `yaml:"dialTimeout" mapstructure:"dialTimeout"`
}

type Push struct {
	Timeout  time.Duration `yaml:"timeout" mapstructure:"timeout"`
	Executor string        `yaml:"executor" mapstructure:"executor"`
	Command  string        `yaml:"command" mapstructure:"command"`
}

type Ssh struct {
	PrivateKey         string `yaml:"privateKey" mapstructure:"privateKey"`
	PrivateKeyPassword string `yaml:"privateKeyPassword" mapstructure:"privateKeyPassword"`
	KnownHosts         string `yaml:"knownHosts" mapstructure:"knownHosts"`
}
