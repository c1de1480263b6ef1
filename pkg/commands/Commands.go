package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/simplecontainer/mirror/pkg/command"
	"github.com/simplecontainer/mirror/pkg/logger"
	"github.com/simplecontainer/mirror/pkg/version"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var Commands []command.Command

// Info is set by main from build flags.
var Info = version.New("dev", "")

func PreloadCommands() {
	Serve()
	Trigger()
	Validate()
	Keygen()
	Config()
	Version()
}

func Run(c *cobra.Command) {
	c.SetHelpCommand(&cobra.Command{
		Use:    "help",
		Hidden: true,
	})

	c.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		fmt.Printf("error: %s\n\n", err)
		_ = c.Usage()
		return nil
	})

	c.SetArgs(os.Args[1:])

	c.Run = func(cmd *cobra.Command, args []string) {
		if len(args) > 0 {
			fmt.Printf("unknown command: %s\n", strings.Join(args, " "))
		}
		_ = cmd.Usage()
	}

	Attach(c)

	_ = c.Execute()
}

// Attach adds every registered command below its parent.
func Attach(c *cobra.Command) {
	for _, cmd := range Commands {
		cobraCmd := cmd.Cobra()

		cobraCmd.PreRun = func(c *cobra.Command, args []string) {
			c.Flags().VisitAll(func(flag *pflag.Flag) {
				if err := viper.BindPFlag(flag.Name, flag); err != nil {
					fmt.Printf("warning: failed to bind flag '%s': %s\n", flag.Name, err)
					os.Exit(1)
				}
			})

			for _, dep := range cmd.DependsOn {
				dep(args)
			}
		}

		cobraCmd.Run = func(c *cobra.Command, args []string) {
			cmd.Function(args)
		}

		if cmd.Parent == "mirror" || cmd.Parent == "" {
			c.AddCommand(cobraCmd)
		} else {
			parent := findCommand(c, cmd.Parent)

			if parent != nil {
				parent.AddCommand(cobraCmd)
			} else {
				fmt.Printf("warning: parent command '%s' not found for '%s'\n", cmd.Parent, cmd.Name)
			}
		}
	}
}

func SetupGlobalFlags(rootCmd *cobra.Command) {
	rootCmd.PersistentFlags().String("config", "", "Config file (default ./mirror.yaml or /etc/mirror/mirror.yaml)")
	rootCmd.PersistentFlags().String("log", "info", "Log level: debug, info, warn, error, dpanic, panic, fatal")

	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log", rootCmd.PersistentFlags().Lookup("log"))

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		logger.Log = logger.NewLogger(viper.GetString("log"), []string{"stdout"}, []string{"stderr"})

		if viper.GetString("log") == "debug" {
			fmt.Println(fmt.Sprintf("logging level set to %s (override with --log flag)", viper.GetString("log")))
		}
	}
}

func findCommand(cmd *cobra.Command, name string) *cobra.Command {
	if cmd.Use == name {
		return cmd
	}
	for _, c := range cmd.Commands() {
		if result := findCommand(c, name); result != nil {
			return result
		}
	}
	return nil
}
