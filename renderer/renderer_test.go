package renderer

import (
	"bytes"
	"strings"
	"testing"

	"investment-manager/models"
)

func TestMoney(t *testing.T) {
	tests := []struct {
		amount   float64
		currency string
		want     string
	}{
		{1500, "USD", "$1,500.00"},
		{0, "USD", "$0.00"},
		{0.29, "USD", "$0.29"},
		{1.15, "USD", "$1.15"},
		{4.35, "USD", "$4.35"},
		{19.99, "USD", "$19.99"},
		{1000.57, "USD", "$1,000.57"},
		{0.125, "USD", "$0.13"},
		{100.2 + 0.1, "USD", "$100.30"},
	}
	for _, tt := range tests {
		if got := Money(tt.amount, tt.currency); got != tt.want {
			t.Errorf("Money(%v, %q) = %q; want %q", tt.amount, tt.currency, got, tt.want)
		}
	}
}

func TestCustomers(t *testing.T) {
	if got := Customers(nil); !strings.Contains(got, "No customers found.") {
		t.Errorf("Customers(nil) = %q", got)
	}

	md := Customers([]models.Customer{{ID: models.SavedID(1), Name: "Alice | Co", Email: "a@x.com", Phone: "555-0001"}})
	if !strings.Contains(md, `| 1 | Alice \| Co | a@x.com | 555-0001 |`) {
		t.Errorf("unexpected customers table:\n%s", md)
	}
}

func TestInvestments(t *testing.T) {
	if got := Investments(nil, "USD"); !strings.Contains(got, "No investments found.") {
		t.Errorf("Investments(nil) = %q", got)
	}

	md := Investments([]models.Investment{
		{ID: models.SavedID(1), CustomerID: 1, Amount: 1000, InvestmentType: "bond",
			StartDate: models.MustParseDate("2024-01-01"), ExpectedProfit: 50},
		{ID: models.SavedID(2), CustomerID: 1, Amount: 500, InvestmentType: "stock",
			StartDate: models.MustParseDate("2024-02-01"), EndDate: models.SomeDate(models.MustParseDate("2024-06-01")), ExpectedProfit: 20},
		{ID: models.SavedID(3), CustomerID: 2, Amount: 19.99, InvestmentType: "fund",
			StartDate: models.MustParseDate("2024-03-01"), ExpectedProfit: 4.35},
	}, "USD")

	for _, want := range []string{
		"| 1 | 1 | $1,000.00 | bond | 2024-01-01 | - | - | $50.00 |",
		"| 2 | 1 | $500.00 | stock | 2024-02-01 | 2024-06-01 | 121 | $20.00 |",
		"| 3 | 2 | $19.99 | fund | 2024-03-01 | - | - | $4.35 |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("investments table is missing %q:\n%s", want, md)
		}
	}
}

func TestTotals(t *testing.T) {
	got := Totals(0, models.TopInvestor{}, false, "USD")
	if !strings.Contains(got, "$0.00") || !strings.Contains(got, "No investments yet.") {
		t.Errorf("Totals without investments = %q", got)
	}

	got = Totals(1500, models.TopInvestor{CustomerID: 1, Name: "Alice", Total: 1500}, true, "USD")
	if !strings.Contains(got, "**Top investor:** Alice (ID 1) with $1,500.00") {
		t.Errorf("Totals = %q", got)
	}

	got = Totals(20.28, models.TopInvestor{CustomerID: 2, Name: "Bob", Total: 19.99}, true, "USD")
	if !strings.Contains(got, "**Total invested:** $20.28") || !strings.Contains(got, "with $19.99") {
		t.Errorf("Totals with cents = %q", got)
	}
}

func TestSummary(t *testing.T) {
	md := Summary([]models.CustomerSummary{{CustomerID: 1, Name: "Alice", TotalAmount: 0.29, ExpectedProfit: 1.15}}, "USD")
	if !strings.Contains(md, "| 1 | Alice | $0.29 | $1.15 |") {
		t.Errorf("unexpected summary table:\n%s", md)
	}
}

func TestBarChart(t *testing.T) {
	if got := BarChart(nil, "USD"); got != "No investment data to plot.\n" {
		t.Errorf("BarChart(nil) = %q", got)
	}

	md := BarChart([]models.CustomerTotal{{CustomerID: 1, Total: 80}, {CustomerID: 2, Total: 10}}, "USD")
	lines := strings.Split(md, "\n")
	var bars []string
	for _, l := range lines {
		if strings.Contains(l, "█") {
			bars = append(bars, l)
		}
	}
	if len(bars) != 2 {
		t.Fatalf("expected 2 bars got %d:\n%s", len(bars), md)
	}
	if n := strings.Count(bars[0], "█"); n != ChartWidth {
		t.Errorf("largest bar has %d cells; want %d", n, ChartWidth)
	}
	if n := strings.Count(bars[1], "█"); n != ChartWidth/8 {
		t.Errorf("second bar has %d cells; want %d", n, ChartWidth/8)
	}
	if !strings.HasSuffix(bars[0], "$80.00") {
		t.Errorf("bar is missing its amount: %q", bars[0])
	}
}

func TestPrinterPlain(t *testing.T) {
	var b bytes.Buffer
	Printer{Out: &b, Plain: true}.Print("**hi**\n")
	if b.String() != "**hi**\n" {
		t.Errorf("plain printer wrote %q", b.String())
	}

	b.Reset()
	Printer{Out: &b}.Print("# Title\n")
	if !strings.Contains(b.String(), "Title") {
		t.Errorf("styled printer wrote %q", b.String())
	}
}
