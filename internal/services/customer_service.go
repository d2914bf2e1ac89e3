package services

import (
	"github.com/deliverydb/gin-delivery-api/internal/models"
	"gorm.io/gorm"
)

// CustomerService provides methods to manage customers
type CustomerService interface {
	// AddCustomer registers a new customer
	AddCustomer(customer models.Customer) error
	// GetCustomer retrieves a customer by id
	GetCustomer(id int) (models.Customer, error)
	// DeleteCustomer removes a customer; their placement links and ratings go
	// with them, their past orders stay behind as anonymous orders
	DeleteCustomer(id int) error
}

type customerService struct {
	db *gorm.DB
}

// NewCustomerService creates a new instance of CustomerService
func NewCustomerService(db *gorm.DB) CustomerService {
	return &customerService{db: db}
}

func (s *customerService) AddCustomer(customer models.Customer) error {
	if err := validateStruct(customer); err != nil {
		return err
	}
	if err := s.db.Create(&customer).Error; err != nil {
		return translateError(err)
	}
	return nil
}

func (s *customerService) GetCustomer(id int) (models.Customer, error) {
	var customer models.Customer
	if err := s.db.First(&customer, id).Error; err != nil {
		return models.Customer{}, translateError(err)
	}
	return customer, nil
}

func (s *customerService) DeleteCustomer(id int) error {
	return checkSingletonResult(s.db.Delete(&models.Customer{}, id))
}
