package services

import (
	"sort"

	"github.com/deliverydb/gin-delivery-api/internal/models"
	"gorm.io/gorm"
)

// highRatingThreshold is the rating at which two customers rating the same
// dish count as agreeing on it.
const highRatingThreshold = 4

// RecommendationService derives dish recommendations from the customer
// similarity graph: customers who rated the same dish highly form an
// agreement edge, and taste propagates along chains of such edges.
type RecommendationService interface {
	// RecommendDishes returns dish ids rated highly by any customer reachable
	// from the given customer through agreement edges, minus the dishes the
	// customer already ordered, ascending and deduplicated
	RecommendDishes(customerID int) ([]int, error)
}

type recommendationService struct {
	db *gorm.DB
}

// NewRecommendationService creates a new instance of RecommendationService
func NewRecommendationService(db *gorm.DB) RecommendationService {
	return &recommendationService{db: db}
}

func (s *recommendationService) RecommendDishes(customerID int) ([]int, error) {
	if err := s.db.First(&models.Customer{}, customerID).Error; err != nil {
		return nil, translateError(err)
	}

	var highRatings []models.DishRating
	err := s.db.Where("rating >= ?", highRatingThreshold).Find(&highRatings).Error
	if err != nil {
		return nil, translateError(err)
	}

	dishRaters := make(map[int][]int)
	likedDishes := make(map[int][]int)
	for _, rating := range highRatings {
		dishRaters[rating.DishID] = append(dishRaters[rating.DishID], rating.CustomerID)
		likedDishes[rating.CustomerID] = append(likedDishes[rating.CustomerID], rating.DishID)
	}

	// BFS over the agreement graph. Expanding through the raters of each liked
	// dish walks exactly the agreement edges; the visited set makes rating
	// cycles terminate.
	visited := map[int]bool{customerID: true}
	queue := []int{customerID}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, dishID := range likedDishes[current] {
			for _, rater := range dishRaters[dishID] {
				if !visited[rater] {
					visited[rater] = true
					queue = append(queue, rater)
				}
			}
		}
	}

	alreadyOrdered, err := customerOrderedDishIDs(s.db, customerID)
	if err != nil {
		return nil, err
	}

	// candidates come only from customers reachable through the closure, never
	// from the customer reconnecting to themselves via a cycle
	candidates := make(map[int]struct{})
	for reached := range visited {
		if reached == customerID {
			continue
		}
		for _, dishID := range likedDishes[reached] {
			if _, ordered := alreadyOrdered[dishID]; !ordered {
				candidates[dishID] = struct{}{}
			}
		}
	}

	result := make([]int, 0, len(candidates))
	for dishID := range candidates {
		result = append(result, dishID)
	}
	sort.Ints(result)
	return result, nil
}
