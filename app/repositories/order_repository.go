package repositories

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"storefront/app/models"
	"storefront/pkg/metrics"
	"storefront/pkg/response"
)

// OrderRepository handles reads and whole-order deletion. Order creation
// and item reconciliation live in the order service, which owns the
// transaction.
type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) withAssociations() *gorm.DB {
	return r.db.Model(&models.Order{}).
		Preload("Customer").
		Preload("Items").
		Preload("Items.Product")
}

// List returns a page of orders with items and customer, newest first.
func (r *OrderRepository) List(page, limit int) ([]models.Order, response.Pagination, error) {
	var orders []models.Order
	query := r.withAssociations().Order("created_at DESC")
	pagination, err := paginate(query, page, limit, &orders)
	if err != nil {
		return nil, pagination, err
	}

	for i := range orders {
		Decorate(&orders[i])
	}
	return orders, pagination, nil
}

// Find looks up an order with its items and customer by primary key.
func (r *OrderRepository) Find(id uint) (models.Order, error) {
	defer metrics.ObserveDBQuery("select", time.Now())

	var order models.Order
	if err := r.withAssociations().First(&order, id).Error; err != nil {
		return order, err
	}
	Decorate(&order)
	return order, nil
}

// Items returns the line items of one order.
func (r *OrderRepository) Items(orderID uint) ([]models.OrderItem, error) {
	var items []models.OrderItem
	err := r.db.Preload("Product").
		Where("order_id = ?", orderID).
		Order("id").
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	for i := range items {
		decorateItem(&items[i])
	}
	return items, nil
}

// Delete removes an order and its items in one transaction (cascade).
func (r *OrderRepository) Delete(id uint) error {
	defer metrics.ObserveDBQuery("delete", time.Now())

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Order{}, id).Error
	})
}

// Decorate fills the derived, non-persisted fields used by the JSON API:
// customer name, per-item product names and line totals.
func Decorate(order *models.Order) {
	order.CustomerName = strings.TrimSpace(order.Customer.FirstName + " " + order.Customer.LastName)
	for i := range order.Items {
		decorateItem(&order.Items[i])
	}
}

func decorateItem(item *models.OrderItem) {
	item.ProductName = item.Product.Name
	item.LineTotal = models.LineTotal(item.Quantity, item.Price)
}
