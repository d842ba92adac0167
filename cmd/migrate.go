package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"investment-manager/config"

	"github.com/google/subcommands"
)

type migrateCmd struct{}

func (*migrateCmd) Name() string     { return "migrate" }
func (*migrateCmd) Synopsis() string { return "create the customers and investments tables" }
func (*migrateCmd) Usage() string {
	return `investment-manager migrate

  Creates the customers and investments tables when they are missing, then exits.
  Runs regardless of DB_AUTO_MIGRATE.
`
}

func (*migrateCmd) SetFlags(*flag.FlagSet) {}

func (*migrateCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg := config.Load()
	cfg.AutoMigrate = true
	db, err := config.Connect(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer db.Close()

	fmt.Println("migration completed")
	return subcommands.ExitSuccess
}
