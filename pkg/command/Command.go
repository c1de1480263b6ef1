package command

import (
	"github.com/spf13/cobra"
)

func New() *cobra.Command {
	return &cobra.Command{
		Use:   "mirror",
		Short: "Mirror git repositories to secondary remotes after every push",
	}
}

func (command Command) Cobra() *cobra.Command {
	short := command.Short
	if short == "" {
		short = command.Parent + " " + command.Name
	}

	cobraCmd := &cobra.Command{
		Use:   command.Name,
		Short: short,
		Args:  command.Args,
	}

	command.Flags(cobraCmd)

	return cobraCmd
}
