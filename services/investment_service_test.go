package services

import (
	"context"
	"testing"

	"investment-manager/models"
)

func TestInvestmentRoundTrip(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	c := s.addCustomer(t, "alice")

	open := models.Investment{
		CustomerID:     c.ID.Int64(),
		Amount:         1000.5,
		InvestmentType: "bond",
		StartDate:      models.MustParseDate("2024-01-01"),
		ExpectedProfit: 50.25,
	}
	closed := models.Investment{
		CustomerID:     c.ID.Int64(),
		Amount:         500,
		InvestmentType: "stock",
		StartDate:      models.MustParseDate("2024-02-01"),
		EndDate:        models.SomeDate(models.MustParseDate("2024-06-01")),
		ExpectedProfit: 20,
	}
	for _, inv := range []*models.Investment{&open, &closed} {
		if err := s.investments.Save(ctx, inv); err != nil {
			t.Fatalf("Save returned error: %v", err)
		}
	}
	if open.ID != models.SavedID(1) || closed.ID != models.SavedID(2) {
		t.Fatalf("unexpected ids %v %v", open.ID, closed.ID)
	}

	all, err := s.investments.GetAll(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 investments got %d", len(all))
	}
	if all[0] != open {
		t.Errorf("GetAll()[0] = %+v; want %+v", all[0], open)
	}
	if all[1] != closed {
		t.Errorf("GetAll()[1] = %+v; want %+v", all[1], closed)
	}
	if all[0].EndDate.Valid {
		t.Errorf("absent end date came back as %q", all[0].EndDate)
	}
}

func TestInvestmentGetByCustomer(t *testing.T) {
	s := newTestServices(t)
	ctx := context.Background()
	a := s.addCustomer(t, "a")
	b := s.addCustomer(t, "b")
	s.addInvestment(t, a.ID.Int64(), 10)
	s.addInvestment(t, b.ID.Int64(), 20)
	s.addInvestment(t, a.ID.Int64(), 30)

	invs, err := s.investments.GetByCustomer(ctx, a.ID.Int64())
	if err != nil {
		t.Fatal(err)
	}
	if len(invs) != 2 || invs[0].Amount != 10 || invs[1].Amount != 30 {
		t.Fatalf("GetByCustomer(a) = %+v", invs)
	}
	if invs[0].ID.Int64() >= invs[1].ID.Int64() {
		t.Errorf("investments not ordered by id: %v, %v", invs[0].ID, invs[1].ID)
	}

	none, err := s.investments.GetByCustomer(ctx, 404)
	if err != nil {
		t.Fatalf("GetByCustomer of unknown customer returned error: %v", err)
	}
	if none == nil || len(none) != 0 {
		t.Fatalf("expected empty non-nil slice got %#v", none)
	}
}
