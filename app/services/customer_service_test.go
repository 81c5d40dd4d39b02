package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/app/models"
	"storefront/app/services"
)

func TestCustomerCreateAndUpdate(t *testing.T) {
	db := testDB(t)
	svc := services.NewCustomerService(db)

	created, err := svc.Create(services.CustomerInput{
		FirstName: "Clara",
		LastName:  "Costa",
		Email:     "clara@example.com",
		City:      "Lisbon",
	})
	require.NoError(t, err)

	updated, err := svc.Update(created.ID, services.CustomerInput{
		FirstName: "Clara",
		LastName:  "Costa",
		Email:     "clara@example.com",
		City:      "Porto",
	})
	require.NoError(t, err)
	assert.Equal(t, "Porto", updated.City)
}

func TestCustomerDuplicateEmail(t *testing.T) {
	db := testDB(t)
	svc := services.NewCustomerService(db)

	input := services.CustomerInput{FirstName: "A", LastName: "B", Email: "dup@example.com"}
	_, err := svc.Create(input)
	require.NoError(t, err)

	_, err = svc.Create(input)
	assert.ErrorIs(t, err, services.ErrConflict)
}

func TestCustomerDeleteCascadesToOrders(t *testing.T) {
	db := testDB(t)
	customers := services.NewCustomerService(db)
	orders := services.NewOrderService(db)
	customer := seedCustomer(t, db)
	product := seedProduct(t, db, "SKU-1", "10.00")

	order, err := orders.Create(services.CreateOrderInput{
		CustomerID: customer.ID,
		Items:      []services.OrderItemInput{{ProductID: product.ID}},
	})
	require.NoError(t, err)

	require.NoError(t, customers.Delete(customer.ID))

	_, err = orders.Find(order.ID)
	assert.ErrorIs(t, err, services.ErrReferenceNotFound)

	var items int64
	require.NoError(t, db.Model(&models.OrderItem{}).
		Where("order_id = ?", order.ID).Count(&items).Error)
	assert.Zero(t, items, "cascade removes the order's items too")
}

func TestCustomerFindUnknown(t *testing.T) {
	db := testDB(t)
	svc := services.NewCustomerService(db)

	_, err := svc.Find(777)
	assert.ErrorIs(t, err, services.ErrReferenceNotFound)
}
