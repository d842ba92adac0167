package services

import (
	"context"
	"log"

	"investment-manager/config"
	"investment-manager/models"

	"gorm.io/gorm"
)

// InvestmentService records investments. Investments are append-only: there is
// no update or delete.
type InvestmentService struct {
	db *config.Database
}

func NewInvestmentService(db *config.Database) *InvestmentService {
	return &InvestmentService{db: db}
}

// Save always inserts inv and binds the id the store assigned to it.
func (s *InvestmentService) Save(ctx context.Context, inv *models.Investment) error {
	row := models.NewInvestmentRow(*inv)
	err := s.db.WithSession(ctx, func(tx *gorm.DB) error {
		return tx.Create(&row).Error
	})
	if err != nil {
		return storeErr("save investment", err)
	}
	inv.ID = models.SavedID(row.ID)
	log.Printf("Investment added (id=%d, customer=%d)", row.ID, row.CustomerID)
	return nil
}

func (s *InvestmentService) GetAll(ctx context.Context) ([]models.Investment, error) {
	var rows []models.InvestmentRow
	err := s.db.WithSession(ctx, func(tx *gorm.DB) error {
		return tx.Order("id").Find(&rows).Error
	})
	if err != nil {
		return nil, storeErr("list investments", err)
	}
	return records(rows), nil
}

// GetByCustomer does not check that the customer exists; an unknown id yields no investments.
func (s *InvestmentService) GetByCustomer(ctx context.Context, customerID int64) ([]models.Investment, error) {
	var rows []models.InvestmentRow
	err := s.db.WithSession(ctx, func(tx *gorm.DB) error {
		return tx.Where("customer_id = ?", customerID).Order("id").Find(&rows).Error
	})
	if err != nil {
		return nil, storeErr("list customer investments", err)
	}
	return records(rows), nil
}

func records(rows []models.InvestmentRow) []models.Investment {
	out := make([]models.Investment, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Record())
	}
	return out
}
