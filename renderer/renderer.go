// Package renderer turns records and reports into markdown for the terminal.
package renderer

import (
	"fmt"
	"io"
	"strings"

	"investment-manager/models"

	"github.com/Rhymond/go-money"
	"github.com/charmbracelet/glamour"
	"github.com/shopspring/decimal"
)

// Printer writes markdown to Out, styled by glamour unless Plain is set.
type Printer struct {
	Out   io.Writer
	Plain bool
}

func (p Printer) Print(md string) {
	if p.Plain {
		fmt.Fprint(p.Out, md)
		return
	}
	out, err := glamour.Render(md, "auto")
	if err != nil {
		// unstyled output is still readable
		fmt.Fprint(p.Out, md)
		return
	}
	fmt.Fprint(p.Out, out)
}

// Money formats amount in the given ISO currency, rounded half away from
// zero to the currency's minor unit.
func Money(amount float64, currency string) string {
	fraction := int32(2)
	if c := money.GetCurrency(currency); c != nil {
		fraction = int32(c.Fraction)
	}
	minor := decimal.NewFromFloat(amount).Round(fraction).Shift(fraction).IntPart()
	return money.New(minor, currency).Display()
}

func cell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// Customers renders the customers table.
func Customers(customers []models.Customer) string {
	if len(customers) == 0 {
		return "**No customers found.**\n"
	}
	var b strings.Builder
	b.WriteString("## Customers\n\n")
	b.WriteString("| ID | Name | Email | Phone |\n")
	b.WriteString("|---:|:-----|:------|:------|\n")
	for _, c := range customers {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", c.ID, cell(c.Name), cell(c.Email), cell(c.Phone))
	}
	return b.String()
}

// Investments renders the investments table. Open-ended investments show "-"
// as end date and term.
func Investments(investments []models.Investment, currency string) string {
	if len(investments) == 0 {
		return "**No investments found.**\n"
	}
	var b strings.Builder
	b.WriteString("## Investments\n\n")
	b.WriteString("| ID | Customer ID | Amount | Type | Start | End | Term (days) | Expected Profit |\n")
	b.WriteString("|---:|---:|---:|:-----|:------|:----|---:|---:|\n")
	for _, inv := range investments {
		end, term := "-", "-"
		if inv.EndDate.Valid {
			end = inv.EndDate.String()
			term = fmt.Sprint(inv.StartDate.DaysUntil(inv.EndDate.Date))
		}
		fmt.Fprintf(&b, "| %s | %d | %s | %s | %s | %s | %s | %s |\n",
			inv.ID, inv.CustomerID, Money(inv.Amount, currency), cell(inv.InvestmentType),
			inv.StartDate, end, term, Money(inv.ExpectedProfit, currency))
	}
	return b.String()
}

// Summary renders the per-customer totals of amount and expected profit.
func Summary(summaries []models.CustomerSummary, currency string) string {
	if len(summaries) == 0 {
		return "**No customers found.**\n"
	}
	var b strings.Builder
	b.WriteString("## Summary of Investments\n\n")
	b.WriteString("| Customer ID | Name | Total Investments | Total Expected Profit |\n")
	b.WriteString("|---:|:-----|---:|---:|\n")
	for _, s := range summaries {
		fmt.Fprintf(&b, "| %d | %s | %s | %s |\n",
			s.CustomerID, cell(s.Name), Money(s.TotalAmount, currency), Money(s.ExpectedProfit, currency))
	}
	return b.String()
}

// Totals renders the total invested and, when there is one, the top investor.
func Totals(total float64, top models.TopInvestor, found bool, currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**Total invested:** %s\n\n", Money(total, currency))
	if !found {
		b.WriteString("No investments yet.\n")
		return b.String()
	}
	fmt.Fprintf(&b, "**Top investor:** %s (ID %d) with %s\n", cell(top.Name), top.CustomerID, Money(top.Total, currency))
	return b.String()
}
