package services

import (
	"context"
	"reflect"
	"testing"

	"investment-manager/models"
)

func TestTotalInvestmentEmpty(t *testing.T) {
	s := newTestServices(t)

	total, err := s.reports.TotalInvestment(context.Background())
	if err != nil {
		t.Fatalf("TotalInvestment on empty table returned error: %v", err)
	}
	if total != 0 {
		t.Fatalf("expected 0 got %v", total)
	}
}

func TestTopInvestor(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()

	if _, found, err := s.reports.TopInvestor(ctx); err != nil || found {
		t.Fatalf("TopInvestor on empty table = found %v, err %v", found, err)
	}

	a := s.addCustomer(t, "A")
	b := s.addCustomer(t, "B")
	s.addInvestment(t, a.ID.Int64(), 100)
	s.addInvestment(t, b.ID.Int64(), 200)
	s.addInvestment(t, b.ID.Int64(), 50)

	top, found, err := s.reports.TopInvestor(ctx)
	if err != nil || !found {
		t.Fatalf("TopInvestor = found %v, err %v", found, err)
	}
	want := models.TopInvestor{CustomerID: b.ID.Int64(), Name: "B", Total: 250}
	if top != want {
		t.Errorf("TopInvestor = %+v; want %+v", top, want)
	}
}

func TestInvestmentsByCustomer(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()

	c1 := s.addCustomer(t, "one")
	c2 := s.addCustomer(t, "two")
	s.addCustomer(t, "no investments")
	s.addInvestment(t, c2.ID.Int64(), 10)
	s.addInvestment(t, c1.ID.Int64(), 50)
	s.addInvestment(t, c1.ID.Int64(), 30)

	got, err := s.reports.InvestmentsByCustomer(ctx)
	if err != nil {
		t.Fatal(err)
	}
	want := []models.CustomerTotal{{CustomerID: 1, Total: 80}, {CustomerID: 2, Total: 10}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("InvestmentsByCustomer = %+v; want %+v", got, want)
	}
}

func TestCustomerSummaries(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()

	a := s.addCustomer(t, "A")
	s.addCustomer(t, "B")
	s.addInvestment(t, a.ID.Int64(), 100)
	s.addInvestment(t, a.ID.Int64(), 0.2)

	got, err := s.reports.CustomerSummaries(ctx)
	if err != nil {
		t.Fatal(err)
	}
	want := []models.CustomerSummary{
		{CustomerID: 1, Name: "A", TotalAmount: 100.2, ExpectedProfit: 10},
		{CustomerID: 2, Name: "B"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CustomerSummaries = %+v; want %+v", got, want)
	}
}

func TestAliceScenario(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()

	alice := models.NewCustomer("Alice", "a@x.com", "555-0001")
	if err := s.customers.Save(ctx, &alice); err != nil {
		t.Fatal(err)
	}
	if alice.ID != models.SavedID(1) {
		t.Fatalf("expected Alice to get id 1 got %v", alice.ID)
	}

	bond := models.Investment{CustomerID: 1, Amount: 1000, InvestmentType: "bond",
		StartDate: models.MustParseDate("2024-01-01"), ExpectedProfit: 50}
	stock := models.Investment{CustomerID: 1, Amount: 500, InvestmentType: "stock",
		StartDate: models.MustParseDate("2024-02-01"), EndDate: models.SomeDate(models.MustParseDate("2024-06-01")), ExpectedProfit: 20}
	for _, inv := range []*models.Investment{&bond, &stock} {
		if err := s.investments.Save(ctx, inv); err != nil {
			t.Fatal(err)
		}
	}

	invs, err := s.investments.GetByCustomer(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(invs, []models.Investment{bond, stock}) {
		t.Errorf("GetByCustomer(1) = %+v", invs)
	}

	total, err := s.reports.TotalInvestment(ctx)
	if err != nil || total != 1500 {
		t.Errorf("TotalInvestment = %v, %v; want 1500", total, err)
	}

	top, found, err := s.reports.TopInvestor(ctx)
	if err != nil || !found {
		t.Fatalf("TopInvestor = found %v, err %v", found, err)
	}
	if want := (models.TopInvestor{CustomerID: 1, Name: "Alice", Total: 1500}); top != want {
		t.Errorf("TopInvestor = %+v; want %+v", top, want)
	}
}
