package seeders_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"storefront/app/models"
	"storefront/database/seeders"
)

func TestSeedDemo(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:seed_demo?mode=memory&cache=shared"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Customer{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
	))

	require.NoError(t, seeders.SeedDemo(db))

	var products, customers, orders int64
	require.NoError(t, db.Model(&models.Product{}).Count(&products).Error)
	require.NoError(t, db.Model(&models.Customer{}).Count(&customers).Error)
	require.NoError(t, db.Model(&models.Order{}).Count(&orders).Error)
	assert.EqualValues(t, seeders.DemoProducts, products)
	assert.EqualValues(t, seeders.DemoCustomers, customers)
	assert.EqualValues(t, seeders.DemoOrders, orders)

	// Every seeded order's total matches the sum of its items' line totals.
	var all []models.Order
	require.NoError(t, db.Preload("Items").Find(&all).Error)
	for _, order := range all {
		require.NotEmpty(t, order.Items)
		sum := decimal.Zero
		for _, item := range order.Items {
			sum = sum.Add(models.LineTotal(item.Quantity, item.Price))
		}
		assert.True(t, order.TotalAmount.Equal(sum),
			"order %d: total %s, items sum %s", order.ID, order.TotalAmount, sum)
	}

	// Seeding again wipes and repopulates rather than accumulating.
	require.NoError(t, seeders.SeedDemo(db))
	require.NoError(t, db.Model(&models.Product{}).Count(&products).Error)
	assert.EqualValues(t, seeders.DemoProducts, products)
}

func TestSeedDemoZeroCounts(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:seed_demo_zero?mode=memory&cache=shared"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Customer{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
	))

	restore := func(p, c, o int) {
		seeders.DemoProducts, seeders.DemoCustomers, seeders.DemoOrders = p, c, o
	}
	defer restore(seeders.DemoProducts, seeders.DemoCustomers, seeders.DemoOrders)

	// Orders need both products and customers to draw from.
	restore(10, 0, 1)
	assert.Error(t, seeders.SeedDemo(db))

	restore(0, 5, 1)
	assert.Error(t, seeders.SeedDemo(db))

	restore(-1, 5, 0)
	assert.Error(t, seeders.SeedDemo(db))

	// All zero is a valid request: wipe everything, seed nothing.
	restore(0, 0, 0)
	require.NoError(t, seeders.SeedDemo(db))

	var products, customers, orders int64
	require.NoError(t, db.Model(&models.Product{}).Count(&products).Error)
	require.NoError(t, db.Model(&models.Customer{}).Count(&customers).Error)
	require.NoError(t, db.Model(&models.Order{}).Count(&orders).Error)
	assert.Zero(t, products)
	assert.Zero(t, customers)
	assert.Zero(t, orders)
}
