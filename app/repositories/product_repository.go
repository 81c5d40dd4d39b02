package repositories

import (
	"gorm.io/gorm"

	"storefront/app/models"
	"storefront/pkg/response"
)

// ProductRepository handles database operations for Product.
type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// List returns a page of products, newest first.
func (r *ProductRepository) List(page, limit int) ([]models.Product, response.Pagination, error) {
	var products []models.Product
	query := r.db.Model(&models.Product{}).Order("created_at DESC")
	pagination, err := paginate(query, page, limit, &products)
	return products, pagination, err
}

// Find looks up a product by primary key.
func (r *ProductRepository) Find(id uint) (models.Product, error) {
	var product models.Product
	err := r.db.First(&product, id).Error
	return product, err
}

// Create persists a new product.
func (r *ProductRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

// Update persists changes to an existing product.
func (r *ProductRepository) Update(product *models.Product) error {
	return r.db.Save(product).Error
}

// InUse reports whether any order item still references the product.
// Products are delete-protected while referenced.
func (r *ProductRepository) InUse(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.OrderItem{}).Where("product_id = ?", id).Count(&count).Error
	return count > 0, err
}

// Delete removes a product. Callers must check InUse first; the order-item
// reference is delete-protected.
func (r *ProductRepository) Delete(id uint) error {
	return r.db.Delete(&models.Product{}, id).Error
}
