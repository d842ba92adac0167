package renderer

import (
	"fmt"
	"strings"

	"investment-manager/models"
)

// ChartWidth is the length, in cells, of the longest bar.
const ChartWidth = 40

// BarChart draws one horizontal bar per customer total, scaled so the largest
// total spans ChartWidth cells.
func BarChart(totals []models.CustomerTotal, currency string) string {
	if len(totals) == 0 {
		return "No investment data to plot.\n"
	}

	largest := 0.0
	labelWidth := len("Customer ID")
	for _, t := range totals {
		if t.Total > largest {
			largest = t.Total
		}
		if l := len(fmt.Sprint(t.CustomerID)); l > labelWidth {
			labelWidth = l
		}
	}

	var b strings.Builder
	b.WriteString("## Investments by Customer\n\n```\n")
	fmt.Fprintf(&b, "%*s | Total Investment\n", labelWidth, "Customer ID")
	for _, t := range totals {
		n := 0
		if largest > 0 && t.Total > 0 {
			n = int(t.Total / largest * ChartWidth)
			if n == 0 {
				n = 1
			}
		}
		fmt.Fprintf(&b, "%*d | %s %s\n", labelWidth, t.CustomerID, strings.Repeat("█", n), Money(t.Total, currency))
	}
	b.WriteString("```\n")
	return b.String()
}
