package services

import (
	"context"
	"log"

	"investment-manager/config"
	"investment-manager/models"

	"gorm.io/gorm"
)

type CustomerService struct {
	db *config.Database
}

func NewCustomerService(db *config.Database) *CustomerService {
	return &CustomerService{db: db}
}

// Save inserts an unsaved customer and binds the id the store assigned to it.
// A customer that already has an id is updated in place instead.
func (s *CustomerService) Save(ctx context.Context, c *models.Customer) error {
	if id, saved := c.ID.Value(); saved {
		return s.Update(ctx, id, c.Name, c.Email, c.Phone)
	}

	row := models.CustomerRow{Name: c.Name, Email: c.Email, Phone: c.Phone}
	err := s.db.WithSession(ctx, func(tx *gorm.DB) error {
		return tx.Create(&row).Error
	})
	if err != nil {
		return storeErr("save customer", err)
	}
	c.ID = models.SavedID(row.ID)
	log.Printf("New customer added (id=%d)", row.ID)
	return nil
}

// GetAll returns every customer ordered by id.
func (s *CustomerService) GetAll(ctx context.Context) ([]models.Customer, error) {
	var rows []models.CustomerRow
	err := s.db.WithSession(ctx, func(tx *gorm.DB) error {
		return tx.Order("id").Find(&rows).Error
	})
	if err != nil {
		return nil, storeErr("list customers", err)
	}

	customers := make([]models.Customer, 0, len(rows))
	for _, r := range rows {
		customers = append(customers, r.Record())
	}
	return customers, nil
}

// GetByID reports found == false, with a nil error, when no customer has that id.
func (s *CustomerService) GetByID(ctx context.Context, id int64) (models.Customer, bool, error) {
	var rows []models.CustomerRow
	err := s.db.WithSession(ctx, func(tx *gorm.DB) error {
		return tx.Where("id = ?", id).Limit(1).Find(&rows).Error
	})
	if err != nil {
		return models.Customer{}, false, storeErr("get customer", err)
	}
	if len(rows) == 0 {
		return models.Customer{}, false, nil
	}
	return rows[0].Record(), true, nil
}

// Update overwrites the contact fields of customer id. Updating an id that does
// not exist affects no rows and is not an error.
func (s *CustomerService) Update(ctx context.Context, id int64, name, email, phone string) error {
	var affected int64
	err := s.db.WithSession(ctx, func(tx *gorm.DB) error {
		result := tx.Model(&models.CustomerRow{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{"name": name, "email": email, "phone": phone})
		affected = result.RowsAffected
		return result.Error
	})
	if err != nil {
		return storeErr("update customer", err)
	}
	log.Printf("Customer %d updated (%d rows)", id, affected)
	return nil
}

// Delete removes customer id. Its investments are left untouched.
func (s *CustomerService) Delete(ctx context.Context, id int64) error {
	var affected int64
	err := s.db.WithSession(ctx, func(tx *gorm.DB) error {
		result := tx.Where("id = ?", id).Delete(&models.CustomerRow{})
		affected = result.RowsAffected
		return result.Error
	})
	if err != nil {
		return storeErr("delete customer", err)
	}
	log.Printf("Customer %d deleted (%d rows)", id, affected)
	return nil
}
