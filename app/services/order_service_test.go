package services_test

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"storefront/app/models"
	"storefront/app/services"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
	))
	return db
}

func seedCustomer(t *testing.T, db *gorm.DB) models.Customer {
	t.Helper()
	customer := models.Customer{
		FirstName: "Ada",
		LastName:  "Abbott",
		Email:     fmt.Sprintf("%s@example.com", t.Name()),
	}
	require.NoError(t, db.Create(&customer).Error)
	return customer
}

func seedProduct(t *testing.T, db *gorm.DB, sku, price string) models.Product {
	t.Helper()
	product := models.Product{
		Name:   "Widget " + sku,
		SKU:    sku,
		Price:  decimal.RequireFromString(price),
		Stock:  100,
		Active: true,
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func intPtr(n int) *int { return &n }

func TestCreateOrderTotalIsSumOfLineTotals(t *testing.T) {
	db := testDB(t)
	svc := services.NewOrderService(db)
	customer := seedCustomer(t, db)
	p1 := seedProduct(t, db, "SKU-1", "19.99")
	p2 := seedProduct(t, db, "SKU-2", "5.25")

	order, err := svc.Create(services.CreateOrderInput{
		CustomerID: customer.ID,
		Items: []services.OrderItemInput{
			{ProductID: p1.ID, Quantity: intPtr(3)},
			{ProductID: p2.ID, Quantity: intPtr(2), Price: decimal.RequireFromString("4.00")},
		},
	})
	require.NoError(t, err)

	// 3×19.99 + 2×4.00, exact decimal arithmetic.
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("67.97")),
		"got total %s", order.TotalAmount)
	require.Len(t, order.Items, 2)

	sum := decimal.Zero
	for _, item := range order.Items {
		sum = sum.Add(models.LineTotal(item.Quantity, item.Price))
	}
	assert.True(t, order.TotalAmount.Equal(sum))
	assert.Equal(t, models.OrderStatusPending, order.Status)
}

func TestCreateOrderZeroPriceOverrideUsesCatalogPrice(t *testing.T) {
	db := testDB(t)
	svc := services.NewOrderService(db)
	customer := seedCustomer(t, db)
	product := seedProduct(t, db, "SKU-1", "9.99")

	order, err := svc.Create(services.CreateOrderInput{
		CustomerID: customer.ID,
		Items: []services.OrderItemInput{
			{ProductID: product.ID, Quantity: intPtr(1), Price: decimal.Zero},
		},
	})
	require.NoError(t, err)

	require.Len(t, order.Items, 1)
	assert.True(t, order.Items[0].Price.Equal(decimal.RequireFromString("9.99")),
		"zero override must fall back to the catalog price, got %s", order.Items[0].Price)
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("9.99")))
}

func TestCreateOrderAtomicOnMissingProduct(t *testing.T) {
	db := testDB(t)
	svc := services.NewOrderService(db)
	customer := seedCustomer(t, db)
	p1 := seedProduct(t, db, "SKU-1", "10.00")
	p3 := seedProduct(t, db, "SKU-3", "30.00")

	_, err := svc.Create(services.CreateOrderInput{
		CustomerID: customer.ID,
		Items: []services.OrderItemInput{
			{ProductID: p1.ID},
			{ProductID: 99999}, // does not exist
			{ProductID: p3.ID},
		},
	})
	require.ErrorIs(t, err, services.ErrReferenceNotFound)

	// Nothing persisted: no order row, no item rows for any list position.
	var orders, items int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orders).Error)
	require.NoError(t, db.Model(&models.OrderItem{}).Count(&items).Error)
	assert.Zero(t, orders)
	assert.Zero(t, items)
}

func TestCreateOrderUnknownCustomer(t *testing.T) {
	db := testDB(t)
	svc := services.NewOrderService(db)

	_, err := svc.Create(services.CreateOrderInput{CustomerID: 42})
	assert.ErrorIs(t, err, services.ErrReferenceNotFound)
}

func TestCreateOrderEmptyItems(t *testing.T) {
	db := testDB(t)
	svc := services.NewOrderService(db)
	customer := seedCustomer(t, db)

	order, err := svc.Create(services.CreateOrderInput{CustomerID: customer.ID})
	require.NoError(t, err)

	assert.True(t, order.TotalAmount.IsZero())
	assert.Empty(t, order.Items)
}

func TestCreateOrderQuantityDefaultsToOne(t *testing.T) {
	db := testDB(t)
	svc := services.NewOrderService(db)
	customer := seedCustomer(t, db)
	product := seedProduct(t, db, "SKU-1", "7.50")

	order, err := svc.Create(services.CreateOrderInput{
		CustomerID: customer.ID,
		Items:      []services.OrderItemInput{{ProductID: product.ID}},
	})
	require.NoError(t, err)

	require.Len(t, order.Items, 1)
	assert.Equal(t, 1, order.Items[0].Quantity)
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("7.50")))
}

func TestCreateOrderQuantityZeroRejected(t *testing.T) {
	db := testDB(t)
	svc := services.NewOrderService(db)
	customer := seedCustomer(t, db)
	product := seedProduct(t, db, "SKU-1", "7.50")

	_, err := svc.Create(services.CreateOrderInput{
		CustomerID: customer.ID,
		Items:      []services.OrderItemInput{{ProductID: product.ID, Quantity: intPtr(0)}},
	})
	assert.ErrorIs(t, err, services.ErrInvalidArgument)
}

func TestCreateOrderNegativePriceRejected(t *testing.T) {
	db := testDB(t)
	svc := services.NewOrderService(db)
	customer := seedCustomer(t, db)
	product := seedProduct(t, db, "SKU-1", "7.50")

	_, err := svc.Create(services.CreateOrderInput{
		CustomerID: customer.ID,
		Items: []services.OrderItemInput{
			{ProductID: product.ID, Price: decimal.RequireFromString("-1.00")},
		},
	})
	assert.ErrorIs(t, err, services.ErrInvalidArgument)
}

func TestCreateOrderInvalidStatus(t *testing.T) {
	db := testDB(t)
	svc := services.NewOrderService(db)
	customer := seedCustomer(t, db)

	_, err := svc.Create(services.CreateOrderInput{
		CustomerID: customer.ID,
		Status:     models.OrderStatus("archived"),
	})
	assert.ErrorIs(t, err, services.ErrInvalidArgument)
}

func TestUpdateOrderFullReplace(t *testing.T) {
	db := testDB(t)
	svc := services.NewOrderService(db)
	customer := seedCustomer(t, db)
	p1 := seedProduct(t, db, "SKU-1", "10.00")
	p2 := seedProduct(t, db, "SKU-2", "20.00")

	order, err := svc.Create(services.CreateOrderInput{
		CustomerID: customer.ID,
		Items: []services.OrderItemInput{
			{ProductID: p1.ID, Quantity: intPtr(2)},
		},
	})
	require.NoError(t, err)
	oldItemID := order.Items[0].ID

	items := []services.OrderItemInput{
		{ProductID: p2.ID, Quantity: intPtr(3)},
	}
	updated, err := svc.Update(order.ID, services.UpdateOrderInput{Items: &items})
	require.NoError(t, err)

	require.Len(t, updated.Items, 1)
	assert.Equal(t, p2.ID, updated.Items[0].ProductID)
	assert.NotEqual(t, oldItemID, updated.Items[0].ID, "replacement creates fresh rows")
	assert.True(t, updated.TotalAmount.Equal(decimal.RequireFromString("60.00")),
		"total recomputed from the new set alone, got %s", updated.TotalAmount)

	var count int64
	require.NoError(t, db.Model(&models.OrderItem{}).
		Where("order_id = ?", order.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUpdateOrderEmptyItemsClearsOrder(t *testing.T) {
	db := testDB(t)
	svc := services.NewOrderService(db)
	customer := seedCustomer(t, db)
	product := seedProduct(t, db, "SKU-1", "10.00")

	order, err := svc.Create(services.CreateOrderInput{
		CustomerID: customer.ID,
		Items:      []services.OrderItemInput{{ProductID: product.ID}},
	})
	require.NoError(t, err)

	empty := []services.OrderItemInput{}
	updated, err := svc.Update(order.ID, services.UpdateOrderInput{Items: &empty})
	require.NoError(t, err)

	assert.Empty(t, updated.Items)
	assert.True(t, updated.TotalAmount.IsZero(), "got %s", updated.TotalAmount)
}

func TestUpdateOrderStatusOnlyLeavesItemsUntouched(t *testing.T) {
	db := testDB(t)
	svc := services.NewOrderService(db)
	customer := seedCustomer(t, db)
	product := seedProduct(t, db, "SKU-1", "12.34")

	order, err := svc.Create(services.CreateOrderInput{
		CustomerID: customer.ID,
		Items:      []services.OrderItemInput{{ProductID: product.ID, Quantity: intPtr(2)}},
	})
	require.NoError(t, err)
	itemID := order.Items[0].ID

	paid := models.OrderStatusPaid
	updated, err := svc.Update(order.ID, services.UpdateOrderInput{Status: &paid})
	require.NoError(t, err)

	assert.Equal(t, models.OrderStatusPaid, updated.Status)
	require.Len(t, updated.Items, 1)
	assert.Equal(t, itemID, updated.Items[0].ID, "nil items means no replacement")
	assert.True(t, updated.TotalAmount.Equal(decimal.RequireFromString("24.68")))
}

func TestUpdateOrderAtomicOnFailedResolution(t *testing.T) {
	db := testDB(t)
	svc := services.NewOrderService(db)
	customer := seedCustomer(t, db)
	product := seedProduct(t, db, "SKU-1", "10.00")

	order, err := svc.Create(services.CreateOrderInput{
		CustomerID: customer.ID,
		Items:      []services.OrderItemInput{{ProductID: product.ID, Quantity: intPtr(2)}},
	})
	require.NoError(t, err)

	items := []services.OrderItemInput{{ProductID: 99999}}
	_, err = svc.Update(order.ID, services.UpdateOrderInput{Items: &items})
	require.ErrorIs(t, err, services.ErrReferenceNotFound)

	// The old item set and total survive a failed replacement.
	current, err := svc.Find(order.ID)
	require.NoError(t, err)
	require.Len(t, current.Items, 1)
	assert.Equal(t, product.ID, current.Items[0].ProductID)
	assert.True(t, current.TotalAmount.Equal(decimal.RequireFromString("20.00")))
}

func TestUpdateOrderUnknownOrder(t *testing.T) {
	db := testDB(t)
	svc := services.NewOrderService(db)

	paid := models.OrderStatusPaid
	_, err := svc.Update(12345, services.UpdateOrderInput{Status: &paid})
	assert.ErrorIs(t, err, services.ErrReferenceNotFound)
}

func TestDeleteOrderCascadesToItems(t *testing.T) {
	db := testDB(t)
	svc := services.NewOrderService(db)
	customer := seedCustomer(t, db)
	product := seedProduct(t, db, "SKU-1", "10.00")

	order, err := svc.Create(services.CreateOrderInput{
		CustomerID: customer.ID,
		Items:      []services.OrderItemInput{{ProductID: product.ID}},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(order.ID))

	_, err = svc.Find(order.ID)
	assert.ErrorIs(t, err, services.ErrReferenceNotFound)

	var items int64
	require.NoError(t, db.Model(&models.OrderItem{}).
		Where("order_id = ?", order.ID).Count(&items).Error)
	assert.Zero(t, items)
}

func TestOrderItemsListing(t *testing.T) {
	db := testDB(t)
	svc := services.NewOrderService(db)
	customer := seedCustomer(t, db)
	p1 := seedProduct(t, db, "SKU-1", "10.00")
	p2 := seedProduct(t, db, "SKU-2", "2.50")

	order, err := svc.Create(services.CreateOrderInput{
		CustomerID: customer.ID,
		Items: []services.OrderItemInput{
			{ProductID: p1.ID, Quantity: intPtr(1)},
			{ProductID: p2.ID, Quantity: intPtr(4)},
		},
	})
	require.NoError(t, err)

	items, err := svc.Items(order.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	for _, item := range items {
		assert.True(t, item.LineTotal.Equal(models.LineTotal(item.Quantity, item.Price)))
	}

	_, err = svc.Items(9999)
	assert.ErrorIs(t, err, services.ErrReferenceNotFound)
}
