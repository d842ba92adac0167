package services

import (
	"context"

	"investment-manager/config"
	"investment-manager/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ReportService computes the read-only aggregates over investments.
type ReportService struct {
	db          *config.Database
	customers   *CustomerService
	investments *InvestmentService
}

func NewReportService(db *config.Database, customers *CustomerService, investments *InvestmentService) *ReportService {
	return &ReportService{db: db, customers: customers, investments: investments}
}

// TotalInvestment sums every investment amount; 0 when there are none.
func (s *ReportService) TotalInvestment(ctx context.Context) (float64, error) {
	var total float64
	err := s.db.WithSession(ctx, func(tx *gorm.DB) error {
		return tx.Model(&models.InvestmentRow{}).
			Select("COALESCE(SUM(amount), 0)").
			Scan(&total).Error
	})
	if err != nil {
		return 0, storeErr("total investment", err)
	}
	return total, nil
}

// TopInvestor returns the customer whose investments sum highest, and found ==
// false when no investment exists. Between customers with equal sums, the one
// returned is whichever the store orders first; callers must not rely on it.
func (s *ReportService) TopInvestor(ctx context.Context) (models.TopInvestor, bool, error) {
	var rows []models.TopInvestor
	err := s.db.WithSession(ctx, func(tx *gorm.DB) error {
		return tx.Table("customers").
			Select("customers.id AS customer_id, customers.name AS name, SUM(investments.amount) AS total").
			Joins("JOIN investments ON investments.customer_id = customers.id").
			Group("customers.id, customers.name").
			Order("total DESC").
			Limit(1).
			Scan(&rows).Error
	})
	if err != nil {
		return models.TopInvestor{}, false, storeErr("top investor", err)
	}
	if len(rows) == 0 {
		return models.TopInvestor{}, false, nil
	}
	return rows[0], true, nil
}

// InvestmentsByCustomer returns one total per customer holding at least one
// investment, ordered by customer id.
func (s *ReportService) InvestmentsByCustomer(ctx context.Context) ([]models.CustomerTotal, error) {
	totals := []models.CustomerTotal{}
	err := s.db.WithSession(ctx, func(tx *gorm.DB) error {
		return tx.Table("investments").
			Select("customer_id, SUM(amount) AS total").
			Group("customer_id").
			Order("customer_id").
			Scan(&totals).Error
	})
	if err != nil {
		return nil, storeErr("investments by customer", err)
	}
	return totals, nil
}

// CustomerSummaries totals amount and expected profit for every customer,
// including those without investments.
func (s *ReportService) CustomerSummaries(ctx context.Context) ([]models.CustomerSummary, error) {
	customers, err := s.customers.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.CustomerSummary, 0, len(customers))
	for _, c := range customers {
		invs, err := s.investments.GetByCustomer(ctx, c.ID.Int64())
		if err != nil {
			return nil, err
		}
		amount, profit := decimal.Zero, decimal.Zero
		for _, inv := range invs {
			amount = amount.Add(decimal.NewFromFloat(inv.Amount))
			profit = profit.Add(decimal.NewFromFloat(inv.ExpectedProfit))
		}
		summaries = append(summaries, models.CustomerSummary{
			CustomerID:     c.ID.Int64(),
			Name:           c.Name,
			TotalAmount:    amount.InexactFloat64(),
			ExpectedProfit: profit.InexactFloat64(),
		})
	}
	return summaries, nil
}
