package models

// Investment is the in-memory record of one investments row. CustomerID is a
// plain reference: the owning Customer is never loaded alongside it.
type Investment struct {
	ID             ID       `json:"id"`
	CustomerID     int64    `json:"customer_id"`
	Amount         float64  `json:"amount"`
	InvestmentType string   `json:"investment_type"`
	StartDate      Date     `json:"start_date"`
	EndDate        NullDate `json:"end_date"` // absent while the investment is ongoing
	ExpectedProfit float64  `json:"expected_profit"`
}

// InvestmentRow is the persisted shape of an Investment.
type InvestmentRow struct {
	ID             int64    `gorm:"primaryKey;autoIncrement"`
	CustomerID     int64    `gorm:"index;not null"`
	Amount         float64  `gorm:"type:decimal(12,2);not null"`
	InvestmentType string   `gorm:"size:100;not null"`
	StartDate      Date     `gorm:"type:date;not null"`
	EndDate        NullDate `gorm:"type:date"`
	ExpectedProfit float64  `gorm:"type:decimal(12,2);not null"`
}

func (InvestmentRow) TableName() string { return "investments" }

// NewInvestmentRow builds the row to insert for inv. The id is left for the store to assign.
func NewInvestmentRow(inv Investment) InvestmentRow {
	return InvestmentRow{
		CustomerID:     inv.CustomerID,
		Amount:         inv.Amount,
		InvestmentType: inv.InvestmentType,
		StartDate:      inv.StartDate,
		EndDate:        inv.EndDate,
		ExpectedProfit: inv.ExpectedProfit,
	}
}

func (r InvestmentRow) Record() Investment {
	return Investment{
		ID:             SavedID(r.ID),
		CustomerID:     r.CustomerID,
		Amount:         r.Amount,
		InvestmentType: r.InvestmentType,
		StartDate:      r.StartDate,
		EndDate:        r.EndDate,
		ExpectedProfit: r.ExpectedProfit,
	}
}
