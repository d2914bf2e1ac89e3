package services

import (
	"github.com/deliverydb/gin-delivery-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RatingService provides methods to manage dish ratings
type RatingService interface {
	// RateDish records a customer's rating of a dish, 1 to 5. A customer rates
	// a given dish at most once.
	RateDish(customerID, dishID, rating int) error
	// DeleteRating removes a customer's rating of a dish
	DeleteRating(customerID, dishID int) error
	// ListCustomerRatings returns the customer's ratings ordered by dish id ascending
	ListCustomerRatings(customerID int) ([]models.DishRating, error)
}

type ratingService struct {
	db *gorm.DB
}

// NewRatingService creates a new instance of RatingService
func NewRatingService(db *gorm.DB) RatingService {
	return &ratingService{db: db}
}

func (s *ratingService) RateDish(customerID, dishID, rating int) error {
	entry := models.DishRating{CustomerID: customerID, DishID: dishID, Rating: rating}
	if err := validateStruct(entry); err != nil {
		return err
	}
	if err := s.db.Omit(clause.Associations).Create(&entry).Error; err != nil {
		return translateError(err)
	}
	return nil
}

func (s *ratingService) DeleteRating(customerID, dishID int) error {
	res := s.db.
		Where("customer_id = ? AND dish_id = ?", customerID, dishID).
		Delete(&models.DishRating{})
	return checkSingletonResult(res)
}

func (s *ratingService) ListCustomerRatings(customerID int) ([]models.DishRating, error) {
	if err := s.db.First(&models.Customer{}, customerID).Error; err != nil {
		return nil, translateError(err)
	}
	var ratings []models.DishRating
	err := s.db.
		Where("customer_id = ?", customerID).
		Order("dish_id ASC").
		Find(&ratings).Error
	if err != nil {
		return nil, translateError(err)
	}
	return ratings, nil
}
