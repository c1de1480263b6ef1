package commands

import (
	"fmt"

	"github.com/simplecontainer/mirror/internal/helpers"
	"github.com/simplecontainer/mirror/pkg/command"
	"github.com/simplecontainer/mirror/pkg/configuration"
	"github.com/spf13/viper"
)

func Config() {
	Commands = append(Commands,
		command.NewBuilder().Parent("mirror").Name("config").Short("Print the effective configuration").Function(cmdConfig).Build(),
	)
}

func cmdConfig(args []string) {
	conf, err := configuration.Load(viper.GetViper(), viper.GetString("config"))

	if err != nil {
		helpers.PrintAndExit(err, 1)
	}

	rendered, err := conf.Yaml()

	if err != nil {
		helpers.PrintAndExit(err, 1)
	}

	fmt.Print(string(rendered))
}
