package services

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"storefront/app/models"
	"storefront/app/repositories"
	"storefront/pkg/cache"
	"storefront/pkg/response"
)

const productCacheTTL = 5 * time.Minute

// ProductService is the catalog: CRUD over products with a Redis read
// cache on single-product lookups. The order service bypasses the cache
// and reads prices straight from the database inside its transaction.
type ProductService struct {
	products *repositories.ProductRepository
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{products: repositories.NewProductRepository(db)}
}

type ProductInput struct {
	Name        string          `json:"name"        validate:"required,max=255"`
	Description string          `json:"description"`
	SKU         string          `json:"sku"         validate:"required,max=50"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"       validate:"gte=0"`
	Active      *bool           `json:"is_active"`
}

func (s *ProductService) List(page, limit int) ([]models.Product, response.Pagination, error) {
	return s.products.List(page, limit)
}

func (s *ProductService) Find(id uint) (models.Product, error) {
	var product models.Product
	key := productCacheKey(id)
	if cache.Get(key, &product) {
		return product, nil
	}

	product, err := s.products.Find(id)
	if err != nil {
		if notFound(err) {
			return product, fmt.Errorf("%w: product %d", ErrReferenceNotFound, id)
		}
		return product, err
	}

	cache.Set(key, product, productCacheTTL) //nolint:errcheck
	return product, nil
}

func (s *ProductService) Create(input ProductInput) (models.Product, error) {
	if input.Price.IsNegative() {
		return models.Product{}, fmt.Errorf("%w: negative price", ErrInvalidArgument)
	}

	product := models.Product{
		Name:        input.Name,
		Description: input.Description,
		SKU:         input.SKU,
		Price:       input.Price,
		Stock:       input.Stock,
		Active:      true,
	}
	if input.Active != nil {
		product.Active = *input.Active
	}

	if err := s.products.Create(&product); err != nil {
		if isDuplicate(err) {
			return models.Product{}, fmt.Errorf("%w: SKU %q already exists", ErrConflict, input.SKU)
		}
		return models.Product{}, err
	}

	return product, nil
}

func (s *ProductService) Update(id uint, input ProductInput) (models.Product, error) {
	if input.Price.IsNegative() {
		return models.Product{}, fmt.Errorf("%w: negative price", ErrInvalidArgument)
	}

	product, err := s.products.Find(id)
	if err != nil {
		if notFound(err) {
			return product, fmt.Errorf("%w: product %d", ErrReferenceNotFound, id)
		}
		return product, err
	}

	product.Name = input.Name
	product.Description = input.Description
	product.SKU = input.SKU
	product.Price = input.Price
	product.Stock = input.Stock
	if input.Active != nil {
		product.Active = *input.Active
	}

	if err := s.products.Update(&product); err != nil {
		if isDuplicate(err) {
			return models.Product{}, fmt.Errorf("%w: SKU %q already exists", ErrConflict, input.SKU)
		}
		return models.Product{}, err
	}

	cache.Del(productCacheKey(id)) //nolint:errcheck
	return product, nil
}

// Delete removes a product unless an order item still references it;
// referenced products are delete-protected.
func (s *ProductService) Delete(id uint) error {
	if _, err := s.products.Find(id); err != nil {
		if notFound(err) {
			return fmt.Errorf("%w: product %d", ErrReferenceNotFound, id)
		}
		return err
	}

	inUse, err := s.products.InUse(id)
	if err != nil {
		return err
	}
	if inUse {
		return fmt.Errorf("%w: product %d is referenced by order items", ErrConflict, id)
	}

	if err := s.products.Delete(id); err != nil {
		return err
	}

	cache.Del(productCacheKey(id)) //nolint:errcheck
	return nil
}

func productCacheKey(id uint) string {
	return fmt.Sprintf("product:%d", id)
}
