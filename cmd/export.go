package cmd

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"investment-manager/models"

	"github.com/google/subcommands"
)

type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export all investments as CSV" }
func (*exportCmd) Usage() string {
	return `investment-manager export [-o <file>]

  Writes every investment, ordered by id, as CSV. An ongoing investment has an
  empty end_date.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file. Defaults to stdout.")
}

func (c *exportCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, ok := openApp()
	if !ok {
		return subcommands.ExitFailure
	}
	defer app.Close()

	investments, err := app.Investments.GetAll(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing investments: %v\n", err)
		return subcommands.ExitFailure
	}

	var w io.Writer = os.Stdout
	if c.output != "" {
		f, err := os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		defer f.Close()
		w = f
	}

	if err := WriteInvestmentsCSV(w, investments); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing CSV: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

var csvHeader = []string{"id", "customer_id", "amount", "investment_type", "start_date", "end_date", "expected_profit"}

// WriteInvestmentsCSV writes a header line followed by one line per investment.
func WriteInvestmentsCSV(w io.Writer, investments []models.Investment) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, inv := range investments {
		record := []string{
			inv.ID.String(),
			strconv.FormatInt(inv.CustomerID, 10),
			strconv.FormatFloat(inv.Amount, 'f', 2, 64),
			inv.InvestmentType,
			inv.StartDate.String(),
			inv.EndDate.String(),
			strconv.FormatFloat(inv.ExpectedProfit, 'f', 2, 64),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
