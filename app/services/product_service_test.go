package services_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/app/services"
)

func boolPtr(b bool) *bool { return &b }

func TestProductCreateAndFind(t *testing.T) {
	db := testDB(t)
	svc := services.NewProductService(db)

	created, err := svc.Create(services.ProductInput{
		Name:  "Cobalt Mug",
		SKU:   "SKU-100",
		Price: decimal.RequireFromString("12.50"),
		Stock: 10,
	})
	require.NoError(t, err)
	assert.True(t, created.Active, "active defaults to true")

	found, err := svc.Find(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cobalt Mug", found.Name)
	assert.True(t, found.Price.Equal(decimal.RequireFromString("12.50")))
}

func TestProductCreateDuplicateSKU(t *testing.T) {
	db := testDB(t)
	svc := services.NewProductService(db)

	input := services.ProductInput{Name: "A", SKU: "SKU-1", Price: decimal.NewFromInt(1)}
	_, err := svc.Create(input)
	require.NoError(t, err)

	input.Name = "B"
	_, err = svc.Create(input)
	assert.ErrorIs(t, err, services.ErrConflict)
}

func TestProductCreateNegativePrice(t *testing.T) {
	db := testDB(t)
	svc := services.NewProductService(db)

	_, err := svc.Create(services.ProductInput{
		Name:  "Broken",
		SKU:   "SKU-1",
		Price: decimal.RequireFromString("-1.00"),
	})
	assert.ErrorIs(t, err, services.ErrInvalidArgument)
}

func TestProductUpdate(t *testing.T) {
	db := testDB(t)
	svc := services.NewProductService(db)

	created, err := svc.Create(services.ProductInput{
		Name:  "Lamp",
		SKU:   "SKU-1",
		Price: decimal.NewFromInt(30),
	})
	require.NoError(t, err)

	updated, err := svc.Update(created.ID, services.ProductInput{
		Name:   "Lamp v2",
		SKU:    "SKU-1",
		Price:  decimal.RequireFromString("35.00"),
		Stock:  5,
		Active: boolPtr(false),
	})
	require.NoError(t, err)
	assert.Equal(t, "Lamp v2", updated.Name)
	assert.False(t, updated.Active)
}

func TestProductDeleteProtectedWhileReferenced(t *testing.T) {
	db := testDB(t)
	products := services.NewProductService(db)
	orders := services.NewOrderService(db)
	customer := seedCustomer(t, db)
	product := seedProduct(t, db, "SKU-1", "10.00")

	order, err := orders.Create(services.CreateOrderInput{
		CustomerID: customer.ID,
		Items:      []services.OrderItemInput{{ProductID: product.ID}},
	})
	require.NoError(t, err)

	err = products.Delete(product.ID)
	assert.ErrorIs(t, err, services.ErrConflict, "a product on an order cannot be deleted")

	// Once no order item references it, deletion goes through.
	require.NoError(t, orders.Delete(order.ID))
	require.NoError(t, products.Delete(product.ID))

	_, err = products.Find(product.ID)
	assert.ErrorIs(t, err, services.ErrReferenceNotFound)
}

func TestProductDeleteUnknown(t *testing.T) {
	db := testDB(t)
	svc := services.NewProductService(db)

	err := svc.Delete(404)
	assert.ErrorIs(t, err, services.ErrReferenceNotFound)
}

func TestProductList(t *testing.T) {
	db := testDB(t)
	svc := services.NewProductService(db)

	for _, sku := range []string{"SKU-1", "SKU-2", "SKU-3"} {
		seedProduct(t, db, sku, "5.00")
	}

	page, pagination, err := svc.List(1, 2)
	require.NoError(t, err)
	assert.Len(t, page, 2)
	assert.EqualValues(t, 3, pagination.Total)
	assert.Equal(t, 2, pagination.TotalPages)
}
