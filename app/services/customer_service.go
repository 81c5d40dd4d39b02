package services

import (
	"fmt"

	"gorm.io/gorm"

	"storefront/app/models"
	"storefront/app/repositories"
	"storefront/pkg/response"
)

// CustomerService is thin CRUD over customers. Deletion cascades to the
// customer's orders and their items.
type CustomerService struct {
	customers *repositories.CustomerRepository
}

func NewCustomerService(db *gorm.DB) *CustomerService {
	return &CustomerService{customers: repositories.NewCustomerRepository(db)}
}

type CustomerInput struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name"  validate:"required,max=100"`
	Email     string `json:"email"      validate:"required,email"`
	Phone     string `json:"phone"      validate:"nullable,max=30"`
	Address   string `json:"address"    validate:"nullable,max=255"`
	City      string `json:"city"       validate:"nullable,max=100"`
	Country   string `json:"country"    validate:"nullable,max=100"`
}

func (s *CustomerService) List(page, limit int) ([]models.Customer, response.Pagination, error) {
	return s.customers.List(page, limit)
}

func (s *CustomerService) Find(id uint) (models.Customer, error) {
	customer, err := s.customers.Find(id)
	if notFound(err) {
		return customer, fmt.Errorf("%w: customer %d", ErrReferenceNotFound, id)
	}
	return customer, err
}

func (s *CustomerService) Create(input CustomerInput) (models.Customer, error) {
	customer := models.Customer{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     input.Phone,
		Address:   input.Address,
		City:      input.City,
		Country:   input.Country,
	}

	if err := s.customers.Create(&customer); err != nil {
		if isDuplicate(err) {
			return models.Customer{}, fmt.Errorf("%w: email %q already exists", ErrConflict, input.Email)
		}
		return models.Customer{}, err
	}

	return customer, nil
}

func (s *CustomerService) Update(id uint, input CustomerInput) (models.Customer, error) {
	customer, err := s.Find(id)
	if err != nil {
		return customer, err
	}

	customer.FirstName = input.FirstName
	customer.LastName = input.LastName
	customer.Email = input.Email
	customer.Phone = input.Phone
	customer.Address = input.Address
	customer.City = input.City
	customer.Country = input.Country

	if err := s.customers.Update(&customer); err != nil {
		if isDuplicate(err) {
			return models.Customer{}, fmt.Errorf("%w: email %q already exists", ErrConflict, input.Email)
		}
		return models.Customer{}, err
	}

	return customer, nil
}

func (s *CustomerService) Delete(id uint) error {
	if _, err := s.Find(id); err != nil {
		return err
	}
	return s.customers.Delete(id)
}
