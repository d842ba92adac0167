package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"investment-manager/console"
	"investment-manager/renderer"

	"github.com/google/subcommands"
)

type menuCmd struct {
	plain bool
}

func (*menuCmd) Name() string     { return "menu" }
func (*menuCmd) Synopsis() string { return "run the interactive investment management menu" }
func (*menuCmd) Usage() string {
	return `investment-manager menu [-plain]

  Starts the interactive menu to add, list, update and delete customers,
  record investments and display reports.
`
}

func (c *menuCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.plain, "plain", false, "Print raw markdown instead of styled output.")
}

func (c *menuCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, ok := openApp()
	if !ok {
		return subcommands.ExitFailure
	}
	defer app.Close()

	printer := renderer.Printer{Out: os.Stdout, Plain: c.plain}
	menu := console.NewMenu(os.Stdin, printer, app.Config.Currency, app.Customers, app.Investments, app.Reports)
	if err := menu.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
