package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"investment-manager/renderer"
	"investment-manager/services"

	"github.com/google/subcommands"
)

type reportCmd struct {
	plain  bool
	notify bool
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "print totals, customer summary and chart" }
func (*reportCmd) Usage() string {
	return `investment-manager report [-plain] [-notify]

  Prints the total invested, the top investor, the summary per customer and the
  chart of investments by customer. With -notify, also sends the digest.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.plain, "plain", false, "Print raw markdown instead of styled output.")
	f.BoolVar(&c.notify, "notify", false, "Send the digest through the configured notifier.")
}

func (c *reportCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, ok := openApp()
	if !ok {
		return subcommands.ExitFailure
	}
	defer app.Close()

	md, err := buildReport(ctx, app.Reports, app.Config.Currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building report: %v\n", err)
		return subcommands.ExitFailure
	}
	renderer.Printer{Out: os.Stdout, Plain: c.plain}.Print(md)

	if c.notify {
		digest := services.NewDigestService(app.Reports, services.NewNotifier(app.Config.Twilio), app.Config.DigestSchedule)
		if _, err := digest.RunOnce(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Error sending digest: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	return subcommands.ExitSuccess
}

func buildReport(ctx context.Context, reports *services.ReportService, currency string) (string, error) {
	total, err := reports.TotalInvestment(ctx)
	if err != nil {
		return "", err
	}
	top, found, err := reports.TopInvestor(ctx)
	if err != nil {
		return "", err
	}
	summaries, err := reports.CustomerSummaries(ctx)
	if err != nil {
		return "", err
	}
	totals, err := reports.InvestmentsByCustomer(ctx)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(renderer.Totals(total, top, found, currency))
	b.WriteString("\n")
	b.WriteString(renderer.Summary(summaries, currency))
	b.WriteString("\n")
	b.WriteString(renderer.BarChart(totals, currency))
	return b.String(), nil
}
