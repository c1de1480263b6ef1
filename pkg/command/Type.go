package command

import (
	"github.com/spf13/cobra"
)

type Command struct {
	Parent    string
	Name      string
	Short     string
	Args      cobra.PositionalArgs
	Flags     func(cmd *cobra.Command)
	Function  func(args []string)
	DependsOn []func(args []string)
}

type Builder struct {
	parent    string
	name      string
	short     string
	flags     func(cmd *cobra.Command)
	args      cobra.PositionalArgs
	command   func(args []string)
	dependsOn []func(args []string)
}

var (
	EmptyFunction = func(args []string) {}
	EmptyFlag     = func(cmd *cobra.Command) {}
)
