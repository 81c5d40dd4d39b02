package seeders

import (
	"fmt"
	"math/rand"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"storefront/app/models"
)

// Demo seed sizes, overridable from the CLI via flags.
var (
	DemoProducts  = 10
	DemoCustomers = 5
	DemoOrders    = 10
)

func init() {
	Register("demo", SeedDemo)
}

var adjectives = []string{"Aurora", "Cobalt", "Crimson", "Dune", "Ember", "Fable", "Harbor", "Ivory", "Lumen", "Nimbus", "Onyx", "Quartz", "Sable", "Terra", "Velvet", "Willow"}

var nouns = []string{"Backpack", "Bottle", "Candle", "Headphones", "Journal", "Kettle", "Lamp", "Mug", "Planter", "Scarf", "Speaker", "Throw", "Tray", "Umbrella", "Vase", "Watch"}

var firstNames = []string{"Ada", "Bruno", "Clara", "Dmitri", "Elena", "Farid", "Greta", "Hugo", "Imani", "Jonas", "Katya", "Luis", "Mara", "Noor", "Otto", "Priya"}

var lastNames = []string{"Abbott", "Barnes", "Costa", "Dalton", "Eriksen", "Fuentes", "Gallo", "Hendricks", "Iqbal", "Jensen", "Kovacs", "Lindqvist", "Moretti", "Novak", "Okafor", "Petrov"}

var cities = []string{"Lisbon", "Berlin", "Oslo", "Valencia", "Rotterdam", "Prague", "Tallinn", "Porto"}

var statuses = []models.OrderStatus{models.OrderStatusPending, models.OrderStatusPaid, models.OrderStatusShipped, models.OrderStatusCancelled}

// SeedDemo wipes the shop tables and repopulates them with demo data:
// DemoProducts products, DemoCustomers customers and DemoOrders orders with
// one to four items each, priced at the catalog price. Runs in a single
// transaction so a failed seed leaves the database untouched.
func SeedDemo(db *gorm.DB) error {
	if DemoProducts < 0 || DemoCustomers < 0 || DemoOrders < 0 {
		return fmt.Errorf("seed counts must not be negative")
	}
	if DemoOrders > 0 && (DemoProducts == 0 || DemoCustomers == 0) {
		return fmt.Errorf("cannot seed %d orders without at least one product and one customer", DemoOrders)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, table := range []string{"order_items", "orders", "customers", "products"} {
			if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
				return fmt.Errorf("wipe %s: %w", table, err)
			}
		}

		products := make([]models.Product, 0, DemoProducts)
		for i := 0; i < DemoProducts; i++ {
			// Price in [20.00, 500.00] with two decimal places.
			cents := 2000 + rand.Intn(48001)
			p := models.Product{
				Name:        fmt.Sprintf("%s %s", adjectives[rand.Intn(len(adjectives))], nouns[rand.Intn(len(nouns))]),
				Description: "Demo catalog item",
				SKU:         fmt.Sprintf("P%04d-%04d", i, 1000+rand.Intn(9000)),
				Price:       decimal.New(int64(cents), -2),
				Stock:       rand.Intn(200),
				Active:      true,
			}
			if err := tx.Create(&p).Error; err != nil {
				return fmt.Errorf("seed product: %w", err)
			}
			products = append(products, p)
		}

		customers := make([]models.Customer, 0, DemoCustomers)
		for i := 0; i < DemoCustomers; i++ {
			c := models.Customer{
				FirstName: firstNames[rand.Intn(len(firstNames))],
				LastName:  lastNames[rand.Intn(len(lastNames))],
				Email:     fmt.Sprintf("demo.customer%d@example.com", i),
				Phone:     fmt.Sprintf("+3519%08d", rand.Intn(100000000)),
				Address:   fmt.Sprintf("%d Market Street", 1+rand.Intn(200)),
				City:      cities[rand.Intn(len(cities))],
				Country:   "PT",
			}
			if err := tx.Create(&c).Error; err != nil {
				return fmt.Errorf("seed customer: %w", err)
			}
			customers = append(customers, c)
		}

		for i := 0; i < DemoOrders; i++ {
			order := models.Order{
				CustomerID: customers[rand.Intn(len(customers))].ID,
				Status:     statuses[rand.Intn(len(statuses))],
			}

			total := decimal.Zero
			count := 1 + rand.Intn(4)
			items := make([]models.OrderItem, 0, count)
			for j := 0; j < count; j++ {
				product := products[rand.Intn(len(products))]
				quantity := 1 + rand.Intn(5)
				items = append(items, models.OrderItem{
					ProductID: product.ID,
					Quantity:  quantity,
					Price:     product.Price,
				})
				total = total.Add(models.LineTotal(quantity, product.Price))
			}

			order.TotalAmount = total
			if err := tx.Create(&order).Error; err != nil {
				return fmt.Errorf("seed order: %w", err)
			}
			for k := range items {
				items[k].OrderID = order.ID
			}
			if err := tx.Create(&items).Error; err != nil {
				return fmt.Errorf("seed order items: %w", err)
			}
		}

		return nil
	})
}
