package main

import (
	"context"
	"flag"
	"os"
	"path"

	"investment-manager/cmd"

	"github.com/google/subcommands"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	// without arguments, start the menu
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "menu")
	}
	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
