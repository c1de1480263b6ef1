package main

import (
	"github.com/simplecontainer/mirror/pkg/command"
	"github.com/simplecontainer/mirror/pkg/commands"
	"github.com/simplecontainer/mirror/pkg/version"
)

// Set with -ldflags "-X main.VERSION=... -X main.COMMIT=...".
var (
	VERSION = "dev"
	COMMIT  = ""
)

func main() {
	cmd := command.New()
	commands.SetupGlobalFlags(cmd)

	commands.Info = version.New(VERSION, COMMIT)
	commands.PreloadCommands()
	commands.Run(cmd)
}
