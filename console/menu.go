// Package console implements the interactive menu over the customer,
// investment and report services.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"investment-manager/models"
	"investment-manager/renderer"
	"investment-manager/services"
	"investment-manager/utils"
)

const menuText = `## Investment Management System

1. Add customer
2. List customers
3. Update customer
4. Delete customer
5. Add investment
6. List investments
7. Customer summary
8. Show top investor & totals
9. Plot investments chart
0. Exit
`

// Menu reads choices line by line from its input until "0" or end of input.
type Menu struct {
	customers   *services.CustomerService
	investments *services.InvestmentService
	reports     *services.ReportService
	printer     renderer.Printer
	currency    string

	in  *bufio.Scanner
	out io.Writer
}

func NewMenu(in io.Reader, printer renderer.Printer, currency string,
	customers *services.CustomerService, investments *services.InvestmentService, reports *services.ReportService) *Menu {
	return &Menu{
		customers:   customers,
		investments: investments,
		reports:     reports,
		printer:     printer,
		currency:    currency,
		in:          bufio.NewScanner(in),
		out:         printer.Out,
	}
}

// Run loops until the user exits or the input ends. Store failures are
// reported and the loop continues.
func (m *Menu) Run(ctx context.Context) error {
	for {
		m.printer.Print(menuText)
		choice, err := m.prompt("Choose an option: ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		if choice == "0" {
			fmt.Fprintln(m.out, "Goodbye 👋")
			return nil
		}

		err = m.dispatch(ctx, choice)
		if errors.Is(err, io.EOF) {
			return nil
		}
		var storeErr *services.StoreError
		if errors.As(err, &storeErr) {
			log.Printf("menu option %s failed: %v", choice, err)
			fmt.Fprintf(m.out, "Error: %v\n", err)
			continue
		}
		if err != nil {
			return err
		}
	}
}

func (m *Menu) dispatch(ctx context.Context, choice string) error {
	switch choice {
	case "1":
		return m.addCustomer(ctx)
	case "2":
		return m.listCustomers(ctx)
	case "3":
		return m.updateCustomer(ctx)
	case "4":
		return m.deleteCustomer(ctx)
	case "5":
		return m.addInvestment(ctx)
	case "6":
		return m.listInvestments(ctx)
	case "7":
		return m.customerSummary(ctx)
	case "8":
		return m.totals(ctx)
	case "9":
		return m.chart(ctx)
	default:
		fmt.Fprintln(m.out, "Invalid option.")
		return nil
	}
}

func (m *Menu) addCustomer(ctx context.Context) error {
	name, err := m.prompt("Name: ")
	if err != nil {
		return err
	}
	email, err := m.prompt("Email: ")
	if err != nil {
		return err
	}
	phone, err := m.prompt("Phone: ")
	if err != nil {
		return err
	}
	c := models.NewCustomer(name, email, phone)
	if err := m.customers.Save(ctx, &c); err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Customer added successfully! (ID %s)\n", c.ID)
	return nil
}

func (m *Menu) listCustomers(ctx context.Context) error {
	customers, err := m.customers.GetAll(ctx)
	if err != nil {
		return err
	}
	m.printer.Print(renderer.Customers(customers))
	return nil
}

func (m *Menu) updateCustomer(ctx context.Context) error {
	id, err := m.promptID("Customer ID to update: ")
	if err != nil {
		return err
	}
	name, err := m.prompt("New name: ")
	if err != nil {
		return err
	}
	email, err := m.prompt("New email: ")
	if err != nil {
		return err
	}
	phone, err := m.prompt("New phone: ")
	if err != nil {
		return err
	}
	if err := m.customers.Update(ctx, id, name, email, phone); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Customer updated successfully!")
	return nil
}

func (m *Menu) deleteCustomer(ctx context.Context) error {
	id, err := m.promptID("Customer ID to delete: ")
	if err != nil {
		return err
	}
	if err := m.customers.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Customer deleted successfully!")
	return nil
}

func (m *Menu) addInvestment(ctx context.Context) error {
	customerID, err := m.promptID("Customer ID: ")
	if err != nil {
		return err
	}
	amount, err := m.promptAmount("Investment amount: ")
	if err != nil {
		return err
	}
	kind, err := m.prompt("Investment type: ")
	if err != nil {
		return err
	}
	start, err := m.promptDate("Start date (YYYY-MM-DD): ")
	if err != nil {
		return err
	}
	end, err := m.promptOptionalDate("End date (YYYY-MM-DD): ")
	if err != nil {
		return err
	}
	profit, err := m.promptAmount("Expected profit: ")
	if err != nil {
		return err
	}

	inv := models.Investment{
		CustomerID:     customerID,
		Amount:         amount,
		InvestmentType: kind,
		StartDate:      start,
		EndDate:        end,
		ExpectedProfit: profit,
	}
	if err := m.investments.Save(ctx, &inv); err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Investment added successfully! (ID %s)\n", inv.ID)
	return nil
}

func (m *Menu) listInvestments(ctx context.Context) error {
	investments, err := m.investments.GetAll(ctx)
	if err != nil {
		return err
	}
	m.printer.Print(renderer.Investments(investments, m.currency))
	return nil
}

func (m *Menu) customerSummary(ctx context.Context) error {
	summaries, err := m.reports.CustomerSummaries(ctx)
	if err != nil {
		return err
	}
	m.printer.Print(renderer.Summary(summaries, m.currency))
	return nil
}

func (m *Menu) totals(ctx context.Context) error {
	total, err := m.reports.TotalInvestment(ctx)
	if err != nil {
		return err
	}
	top, found, err := m.reports.TopInvestor(ctx)
	if err != nil {
		return err
	}
	m.printer.Print(renderer.Totals(total, top, found, m.currency))
	return nil
}

func (m *Menu) chart(ctx context.Context) error {
	totals, err := m.reports.InvestmentsByCustomer(ctx)
	if err != nil {
		return err
	}
	m.printer.Print(renderer.BarChart(totals, m.currency))
	return nil
}

// prompt returns the next trimmed input line, or io.EOF once input is exhausted.
func (m *Menu) prompt(label string) (string, error) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(m.in.Text()), nil
}

func (m *Menu) promptID(label string) (int64, error) {
	for {
		s, err := m.prompt(label)
		if err != nil {
			return 0, err
		}
		if id, err := utils.ParseID(s); err == nil {
			return id, nil
		}
		fmt.Fprintln(m.out, "Please enter a valid integer.")
	}
}

func (m *Menu) promptAmount(label string) (float64, error) {
	for {
		s, err := m.prompt(label)
		if err != nil {
			return 0, err
		}
		if v, err := utils.ParseAmount(s); err == nil {
			return v, nil
		}
		fmt.Fprintln(m.out, "Please enter a valid number.")
	}
}

func (m *Menu) promptDate(label string) (models.Date, error) {
	for {
		s, err := m.prompt(label)
		if err != nil {
			return models.Date{}, err
		}
		if d, err := models.ParseDate(s); err == nil {
			return d, nil
		}
		fmt.Fprintln(m.out, "Please enter a date as YYYY-MM-DD.")
	}
}

// promptOptionalDate treats an empty answer as an open-ended date.
func (m *Menu) promptOptionalDate(label string) (models.NullDate, error) {
	for {
		s, err := m.prompt(label)
		if err != nil {
			return models.NullDate{}, err
		}
		if s == "" {
			return models.NullDate{}, nil
		}
		if d, err := models.ParseDate(s); err == nil {
			return models.SomeDate(d), nil
		}
		fmt.Fprintln(m.out, "Please enter a date as YYYY-MM-DD, or leave empty.")
	}
}
