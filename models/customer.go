package models

// Customer is the in-memory record of one customers row.
type Customer struct {
	ID    ID     `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// NewCustomer returns an unsaved customer.
func NewCustomer(name, email, phone string) Customer {
	return Customer{Name: name, Email: email, Phone: phone}
}

// CustomerRow is the persisted shape of a Customer.
type CustomerRow struct {
	ID    int64  `gorm:"primaryKey;autoIncrement"`
	Name  string `gorm:"size:255;not null"`
	Email string `gorm:"size:255"`
	Phone string `gorm:"size:64"`
}

func (CustomerRow) TableName() string { return "customers" }

// Record converts a scanned row back into a saved Customer.
func (r CustomerRow) Record() Customer {
	return Customer{
		ID:    SavedID(r.ID),
		Name:  r.Name,
		Email: r.Email,
		Phone: r.Phone,
	}
}
