package services

import (
	"fmt"

	"github.com/deliverydb/gin-delivery-api/internal/models"
	"gorm.io/gorm"
)

// DishService provides methods to manage the dish menu
type DishService interface {
	// AddDish adds a new dish to the menu
	AddDish(dish models.Dish) error
	// GetDish retrieves a dish by id
	GetDish(id int) (models.Dish, error)
	// DeleteDish removes a dish; fails while order line items still reference it
	DeleteDish(id int) error
	// UpdateDishPrice changes the price of an active dish. An absent dish and
	// an inactive dish both report NotFound.
	UpdateDishPrice(id int, price float64) error
	// UpdateDishActiveStatus toggles whether the dish can currently be ordered
	UpdateDishActiveStatus(id int, isActive bool) error
}

type dishService struct {
	db *gorm.DB
}

// NewDishService creates a new instance of DishService
func NewDishService(db *gorm.DB) DishService {
	return &dishService{db: db}
}

func (s *dishService) AddDish(dish models.Dish) error {
	if err := validateStruct(dish); err != nil {
		return err
	}
	if err := s.db.Create(&dish).Error; err != nil {
		return translateError(err)
	}
	return nil
}

func (s *dishService) GetDish(id int) (models.Dish, error) {
	var dish models.Dish
	if err := s.db.First(&dish, id).Error; err != nil {
		return models.Dish{}, translateError(err)
	}
	return dish, nil
}

func (s *dishService) DeleteDish(id int) error {
	return checkSingletonResult(s.db.Delete(&models.Dish{}, id))
}

func (s *dishService) UpdateDishPrice(id int, price float64) error {
	if price <= 0 {
		return fmt.Errorf("%w: price must be positive", models.ErrBadParameters)
	}
	res := s.db.Model(&models.Dish{}).
		Where("id = ? AND is_active = ?", id, true).
		Update("price", price)
	return checkSingletonResult(res)
}

func (s *dishService) UpdateDishActiveStatus(id int, isActive bool) error {
	res := s.db.Model(&models.Dish{}).
		Where("id = ?", id).
		Update("is_active", isActive)
	return checkSingletonResult(res)
}
