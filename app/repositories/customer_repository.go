package repositories

import (
	"gorm.io/gorm"

	"storefront/app/models"
	"storefront/pkg/response"
)

// CustomerRepository handles database operations for Customer.
type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// List returns a page of customers ordered by name.
func (r *CustomerRepository) List(page, limit int) ([]models.Customer, response.Pagination, error) {
	var customers []models.Customer
	query := r.db.Model(&models.Customer{}).Order("last_name, first_name")
	pagination, err := paginate(query, page, limit, &customers)
	return customers, pagination, err
}

// Find looks up a customer by primary key.
func (r *CustomerRepository) Find(id uint) (models.Customer, error) {
	var customer models.Customer
	err := r.db.First(&customer, id).Error
	return customer, err
}

// Create persists a new customer.
func (r *CustomerRepository) Create(customer *models.Customer) error {
	return r.db.Create(customer).Error
}

// Update persists changes to an existing customer.
func (r *CustomerRepository) Update(customer *models.Customer) error {
	return r.db.Save(customer).Error
}

// Delete removes a customer together with their orders and those orders'
// items, in one transaction. Mirrors the cascade rule on the order's
// customer reference.
func (r *CustomerRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var orderIDs []uint
		if err := tx.Model(&models.Order{}).
			Where("customer_id = ?", id).
			Pluck("id", &orderIDs).Error; err != nil {
			return err
		}

		if len(orderIDs) > 0 {
			if err := tx.Where("order_id IN ?", orderIDs).
				Delete(&models.OrderItem{}).Error; err != nil {
				return err
			}
			if err := tx.Where("customer_id = ?", id).
				Delete(&models.Order{}).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&models.Customer{}, id).Error
	})
}
