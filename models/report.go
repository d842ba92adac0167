package models

// TopInvestor is the customer with the largest summed investment amount.
type TopInvestor struct {
	CustomerID int64   `json:"customer_id"`
	Name       string  `json:"name"`
	Total      float64 `json:"total"`
}

// CustomerTotal pairs a customer id with the sum of its investment amounts.
type CustomerTotal struct {
	CustomerID int64   `json:"customer_id"`
	Total      float64 `json:"total"`
}

// CustomerSummary aggregates one customer's investments, including customers with none.
type CustomerSummary struct {
	CustomerID     int64   `json:"customer_id"`
	Name           string  `json:"name"`
	TotalAmount    float64 `json:"total_amount"`
	ExpectedProfit float64 `json:"total_expected_profit"`
}

// Tables lists the row types making up the schema, in creation order.
func Tables() []interface{} {
	return []interface{}{&CustomerRow{}, &InvestmentRow{}}
}
