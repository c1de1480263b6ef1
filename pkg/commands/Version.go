package commands

import (
	"fmt"

	"github.com/simplecontainer/mirror/pkg/command"
)

func Version() {
	Commands = append(Commands,
		command.NewBuilder().Parent("mirror").Name("version").Short("Print the mirror version").Function(func(args []string) {
			fmt.Println(Info.String())
		}).Build(),
	)
}
