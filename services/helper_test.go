package services

import (
	"context"
	"path/filepath"
	"testing"

	"investment-manager/config"
	"investment-manager/models"
)

type testServices struct {
	db          *config.Database
	customers   *CustomerService
	investments *InvestmentService
	reports     *ReportService
}

func newTestServices(t *testing.T) testServices {
	t.Helper()
	db, err := config.Connect(config.Config{
		Driver:      "sqlite",
		DSN:         filepath.Join(t.TempDir(), "test.db"),
		LogLevel:    "silent",
		AutoMigrate: true,
	})
	if err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	customers := NewCustomerService(db)
	investments := NewInvestmentService(db)
	return testServices{
		db:          db,
		customers:   customers,
		investments: investments,
		reports:     NewReportService(db, customers, investments),
	}
}

func (s testServices) addCustomer(t *testing.T, name string) models.Customer {
	t.Helper()
	c := models.NewCustomer(name, name+"@x.com", "555-0000")
	if err := s.customers.Save(context.Background(), &c); err != nil {
		t.Fatalf("save customer %s: %v", name, err)
	}
	return c
}

func (s testServices) addInvestment(t *testing.T, customerID int64, amount float64) models.Investment {
	t.Helper()
	inv := models.Investment{
		CustomerID:     customerID,
		Amount:         amount,
		InvestmentType: "bond",
		StartDate:      models.MustParseDate("2024-01-01"),
		ExpectedProfit: 5,
	}
	if err := s.investments.Save(context.Background(), &inv); err != nil {
		t.Fatalf("save investment: %v", err)
	}
	return inv
}
