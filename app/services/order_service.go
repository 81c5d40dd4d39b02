package services

import (
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"storefront/app/models"
	"storefront/app/repositories"
	"storefront/pkg/metrics"
	"storefront/pkg/response"
)

// OrderService keeps an order's total and item set mutually consistent.
// Creation and update replace the persisted item set wholesale and recompute
// the grand total from scratch inside one transaction; partial item patches
// are not supported.
type OrderService struct {
	db     *gorm.DB
	orders *repositories.OrderRepository
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db, orders: repositories.NewOrderRepository(db)}
}

// OrderItemInput is one requested line item. Quantity is a pointer so an
// omitted quantity (defaults to 1) is distinguishable from an explicit 0
// (rejected).
type OrderItemInput struct {
	ProductID uint            `json:"product"`
	Quantity  *int            `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

type CreateOrderInput struct {
	CustomerID uint               `json:"customer"`
	Status     models.OrderStatus `json:"status"`
	Items      []OrderItemInput   `json:"items"`
}

// UpdateOrderInput carries optional fields: nil means "leave unchanged".
// A non-nil empty Items slice is meaningful: it clears the order.
type UpdateOrderInput struct {
	CustomerID *uint               `json:"customer"`
	Status     *models.OrderStatus `json:"status"`
	Items      *[]OrderItemInput   `json:"items"`
}

// List returns a page of orders, newest first, items preloaded.
func (s *OrderService) List(page, limit int) ([]models.Order, response.Pagination, error) {
	return s.orders.List(page, limit)
}

// Find returns one order with its items.
func (s *OrderService) Find(id uint) (models.Order, error) {
	order, err := s.orders.Find(id)
	if notFound(err) {
		return order, fmt.Errorf("%w: order %d", ErrReferenceNotFound, id)
	}
	return order, err
}

// Items returns the line items of one order.
func (s *OrderService) Items(orderID uint) ([]models.OrderItem, error) {
	if _, err := s.Find(orderID); err != nil {
		return nil, err
	}
	return s.orders.Items(orderID)
}

// Create validates the customer and every requested item, then persists the
// order, its items and the computed total in a single transaction. Either
// all rows are written or none are.
func (s *OrderService) Create(input CreateOrderInput) (models.Order, error) {
	status := input.Status
	if status == "" {
		status = models.OrderStatusPending
	}
	if !status.Valid() {
		return models.Order{}, fmt.Errorf("%w: unknown status %q", ErrInvalidArgument, status)
	}

	var order models.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var customer models.Customer
		if err := tx.First(&customer, input.CustomerID).Error; err != nil {
			if notFound(err) {
				return fmt.Errorf("%w: customer %d", ErrReferenceNotFound, input.CustomerID)
			}
			return err
		}

		items, total, err := resolveItems(tx, input.Items)
		if err != nil {
			return err
		}

		order = models.Order{
			CustomerID:  input.CustomerID,
			Status:      status,
			TotalAmount: total,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		if len(items) > 0 {
			for i := range items {
				items[i].OrderID = order.ID
			}
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return models.Order{}, err
	}

	metrics.OrdersCreated.WithLabelValues(string(status)).Inc()
	observeOrderAmount(order.TotalAmount)

	return s.orders.Find(order.ID)
}

// Update applies optional status/customer changes and, when Items is
// present, replaces the whole item set: existing items are deleted, the new
// set is created with the same resolution rules as Create, and the total is
// recomputed from the new set alone. A nil Items leaves items and total
// untouched.
func (s *OrderService) Update(id uint, input UpdateOrderInput) (models.Order, error) {
	if input.Status != nil && !input.Status.Valid() {
		return models.Order{}, fmt.Errorf("%w: unknown status %q", ErrInvalidArgument, *input.Status)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := lockForUpdate(tx).First(&order, id).Error; err != nil {
			if notFound(err) {
				return fmt.Errorf("%w: order %d", ErrReferenceNotFound, id)
			}
			return err
		}

		if input.Status != nil {
			order.Status = *input.Status
		}

		if input.CustomerID != nil {
			var customer models.Customer
			if err := tx.First(&customer, *input.CustomerID).Error; err != nil {
				if notFound(err) {
					return fmt.Errorf("%w: customer %d", ErrReferenceNotFound, *input.CustomerID)
				}
				return err
			}
			order.CustomerID = *input.CustomerID
		}

		if input.Items != nil {
			items, total, err := resolveItems(tx, *input.Items)
			if err != nil {
				return err
			}

			if err := tx.Where("order_id = ?", order.ID).
				Delete(&models.OrderItem{}).Error; err != nil {
				return err
			}

			if len(items) > 0 {
				for i := range items {
					items[i].OrderID = order.ID
				}
				if err := tx.Create(&items).Error; err != nil {
					return err
				}
			}

			order.TotalAmount = total
		}

		return tx.Save(&order).Error
	})
	if err != nil {
		return models.Order{}, err
	}

	order, err := s.orders.Find(id)
	if err == nil && input.Items != nil {
		observeOrderAmount(order.TotalAmount)
	}
	return order, err
}

// Delete removes an order and its items (cascade).
func (s *OrderService) Delete(id uint) error {
	if _, err := s.Find(id); err != nil {
		return err
	}
	return s.orders.Delete(id)
}

// resolveItems turns requested items into persistable rows and computes the
// grand total with exact decimal arithmetic. It performs reads only; all
// validation happens here, before the caller issues any write.
func resolveItems(tx *gorm.DB, inputs []OrderItemInput) ([]models.OrderItem, decimal.Decimal, error) {
	items := make([]models.OrderItem, 0, len(inputs))
	total := decimal.Zero

	for _, in := range inputs {
		quantity := 1
		if in.Quantity != nil {
			quantity = *in.Quantity
		}
		if quantity < 1 {
			return nil, decimal.Zero, fmt.Errorf("%w: quantity must be at least 1", ErrInvalidArgument)
		}

		var product models.Product
		if err := tx.First(&product, in.ProductID).Error; err != nil {
			if notFound(err) {
				return nil, decimal.Zero, fmt.Errorf("%w: product %d", ErrReferenceNotFound, in.ProductID)
			}
			return nil, decimal.Zero, err
		}

		// Override detection is "truthy": a zero price is treated the same
		// as an absent one and falls back to the catalog price, so a genuine
		// free-item override cannot be expressed. Existing clients rely on
		// zero meaning "use the catalog price", so this stays.
		price := in.Price
		if price.IsZero() {
			price = product.Price
		}
		if price.IsNegative() {
			return nil, decimal.Zero, fmt.Errorf("%w: negative price", ErrInvalidArgument)
		}

		total = total.Add(models.LineTotal(quantity, price))
		items = append(items, models.OrderItem{
			ProductID: in.ProductID,
			Quantity:  quantity,
			Price:     price,
		})
	}

	return items, total, nil
}

// lockForUpdate takes a row-level lock so two concurrent item replacements
// on the same order cannot interleave their delete/create steps. SQLite has
// no FOR UPDATE; its single-writer lock serialises the transaction anyway.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

func observeOrderAmount(total decimal.Decimal) {
	f, _ := total.Float64()
	metrics.OrderAmount.Observe(f)
}
