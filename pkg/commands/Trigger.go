package commands

import (
	"context"
	"os"
	"os/signal"

	"github.com/simplecontainer/mirror/internal/helpers"
	"github.com/simplecontainer/mirror/pkg/client"
	"github.com/simplecontainer/mirror/pkg/command"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func Trigger() {
	Commands = append(Commands,
		command.NewBuilder().Parent("mirror").Name("trigger").Short("Send the post-receive event of a repository to the daemon").Args(cobra.ExactArgs(1)).Function(cmdTrigger).Flags(cmdTriggerFlags).Build(),
	)
}

func cmdTrigger(args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := client.New(viper.GetString("api")).Trigger(ctx, args[0]); err != nil {
		helpers.PrintAndExit(err, 1)
	}
}

func cmdTriggerFlags(cmd *cobra.Command) {
	cmd.Flags().String("api", "http://localhost:8090", "Address of the mirror daemon")
}
