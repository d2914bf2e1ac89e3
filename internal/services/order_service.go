package services

import (
	"fmt"

	"github.com/deliverydb/gin-delivery-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OrderService provides methods to manage orders, their placement links and
// their line items
type OrderService interface {
	// AddOrder creates a new order
	AddOrder(order models.Order) error
	// GetOrder retrieves an order by id
	GetOrder(id int) (models.Order, error)
	// DeleteOrder removes an order together with its line items and placement link
	DeleteOrder(id int) error

	// PlaceOrder links an order to the customer that placed it. An order can
	// be placed by at most one customer.
	PlaceOrder(customerID, orderID int) error
	// RemovePlacement unlinks an order from its customer, making it anonymous
	RemovePlacement(orderID int) error
	// GetPlacingCustomer returns the customer that placed the order; an
	// anonymous order reports NotFound
	GetPlacingCustomer(orderID int) (models.Customer, error)

	// AddOrderItem adds a line item, freezing the dish price at its current
	// value. The dish must exist and be active.
	AddOrderItem(orderID, dishID, amount int) error
	// RemoveOrderItem removes a single line item
	RemoveOrderItem(orderID, dishID int) error
	// ListOrderItems returns the order's line items ordered by dish id ascending
	ListOrderItems(orderID int) ([]models.OrderedDish, error)
}

type orderService struct {
	db *gorm.DB
}

// NewOrderService creates a new instance of OrderService
func NewOrderService(db *gorm.DB) OrderService {
	return &orderService{db: db}
}

func (s *orderService) AddOrder(order models.Order) error {
	if err := validateStruct(order); err != nil {
		return err
	}
	if err := s.db.Create(&order).Error; err != nil {
		return translateError(err)
	}
	return nil
}

func (s *orderService) GetOrder(id int) (models.Order, error) {
	var order models.Order
	if err := s.db.First(&order, id).Error; err != nil {
		return models.Order{}, translateError(err)
	}
	return order, nil
}

func (s *orderService) DeleteOrder(id int) error {
	return checkSingletonResult(s.db.Delete(&models.Order{}, id))
}

func (s *orderService) PlaceOrder(customerID, orderID int) error {
	link := models.PlacedOrder{OrderID: orderID, CustomerID: customerID}
	err := s.db.Omit(clause.Associations).Create(&link).Error
	if err != nil {
		return translateError(err)
	}
	return nil
}

func (s *orderService) RemovePlacement(orderID int) error {
	res := s.db.Where("order_id = ?", orderID).Delete(&models.PlacedOrder{})
	return checkSingletonResult(res)
}

func (s *orderService) GetPlacingCustomer(orderID int) (models.Customer, error) {
	var customer models.Customer
	err := s.db.
		Joins("JOIN placed_orders ON placed_orders.customer_id = customers.id").
		Where("placed_orders.order_id = ?", orderID).
		First(&customer).Error
	if err != nil {
		return models.Customer{}, translateError(err)
	}
	return customer, nil
}

func (s *orderService) AddOrderItem(orderID, dishID, amount int) error {
	if amount < 0 {
		return fmt.Errorf("%w: amount must be non-negative", models.ErrBadParameters)
	}
	// The price freeze and the active check have to see the same dish row as
	// the insert, so the whole thing runs in one transaction.
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var dish models.Dish
		if err := tx.First(&dish, dishID).Error; err != nil {
			return err
		}
		if !dish.IsActive {
			return gorm.ErrRecordNotFound
		}
		item := models.OrderedDish{
			OrderID: orderID,
			DishID:  dishID,
			Price:   dish.Price,
			Amount:  amount,
		}
		return tx.Omit(clause.Associations).Create(&item).Error
	})
	if err != nil {
		return translateError(err)
	}
	return nil
}

func (s *orderService) RemoveOrderItem(orderID, dishID int) error {
	res := s.db.
		Where("order_id = ? AND dish_id = ?", orderID, dishID).
		Delete(&models.OrderedDish{})
	return checkSingletonResult(res)
}

func (s *orderService) ListOrderItems(orderID int) ([]models.OrderedDish, error) {
	if err := s.db.First(&models.Order{}, orderID).Error; err != nil {
		return nil, translateError(err)
	}
	var items []models.OrderedDish
	err := s.db.
		Where("order_id = ?", orderID).
		Order("dish_id ASC").
		Find(&items).Error
	if err != nil {
		return nil, translateError(err)
	}
	return items, nil
}
