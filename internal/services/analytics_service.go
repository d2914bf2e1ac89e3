package services

import (
	"sort"
	"time"

	"github.com/deliverydb/gin-delivery-api/internal/models"
	"gorm.io/gorm"
)

// DishRatingAverage is the average rating of one dish. Dishes nobody rated yet
// carry the neutral default of 3; several analytics order by this value, so the
// default matters for their tie-breaks.
type DishRatingAverage struct {
	DishID  int     `json:"dish_id"`
	Average float64 `json:"average"`
}

// DishSalesFigure measures the revenue throughput of one dish at one of its
// historical prices: average quantity per order line at that price, scaled by
// the price.
type DishSalesFigure struct {
	DishID int     `json:"dish_id"`
	Price  float64 `json:"price"`
	Figure float64 `json:"figure"`
}

// MonthProfit is one month's bucket of a yearly profit report
type MonthProfit struct {
	Month  int     `json:"month"`
	Profit float64 `json:"profit"`
}

// AnalyticsService provides the read-only derived views and analytic queries
// over the entity store. Every method recomputes from current committed state;
// nothing is cached.
type AnalyticsService interface {
	// OrderTotal returns the sum of line item price times amount over the
	// order's items plus its delivery fee
	OrderTotal(orderID int) (float64, error)
	// DishAverageRatings returns the average rating of every dish, dish id
	// ascending, defaulting to 3 for unrated dishes
	DishAverageRatings() ([]DishRatingAverage, error)
	// DishSalesFigures returns the sales figure of every (dish, historical
	// price) pair that has ever been ordered
	DishSalesFigures() ([]DishSalesFigure, error)
	// MaxAverageSpenders returns every customer whose mean order total equals
	// the global maximum mean, id ascending
	MaxAverageSpenders() ([]int, error)
	// MostPurchasedAnonymousDish returns the dish with the greatest quantity
	// summed over anonymous orders, ties broken by smallest id; nil when no
	// anonymous order items exist
	MostPurchasedAnonymousDish() (*models.Dish, error)
	// CustomerOrderedTopRatedDish reports whether the customer's placed orders
	// contain at least one of the five best-rated dishes
	CustomerOrderedTopRatedDish(customerID int) (bool, error)
	// RatedButNotOrdered returns customers who gave one of the five worst-rated
	// dishes a rating below 3 without ever ordering that dish, id ascending
	RatedButNotOrdered() ([]int, error)
	// NonWorthPriceIncrease returns active dishes whose current price is above
	// their cheapest recorded price yet moves less revenue, id ascending
	NonWorthPriceIncrease() ([]int, error)
	// CumulativeProfitPerMonth returns all 12 months of the given year,
	// December first, with the summed order totals of each month
	CumulativeProfitPerMonth(year int) ([]MonthProfit, error)
}

type analyticsService struct {
	db *gorm.DB
}

// NewAnalyticsService creates a new instance of AnalyticsService
func NewAnalyticsService(db *gorm.DB) AnalyticsService {
	return &analyticsService{db: db}
}

func (s *analyticsService) OrderTotal(orderID int) (float64, error) {
	if err := s.db.First(&models.Order{}, orderID).Error; err != nil {
		return 0, translateError(err)
	}
	var total float64
	err := s.db.Raw(`
		SELECT COALESCE(SUM(od.price * od.amount), 0) + o.delivery_fee
		FROM orders o
		LEFT JOIN ordered_dishes od ON od.order_id = o.id
		WHERE o.id = ?
		GROUP BY o.id, o.delivery_fee`, orderID).
		Scan(&total).Error
	if err != nil {
		return 0, translateError(err)
	}
	return total, nil
}

func (s *analyticsService) DishAverageRatings() ([]DishRatingAverage, error) {
	var averages []DishRatingAverage
	err := s.db.Raw(`
		SELECT d.id AS dish_id, COALESCE(AVG(r.rating * 1.0), 3) AS average
		FROM dishes d
		LEFT JOIN dish_ratings r ON r.dish_id = d.id
		GROUP BY d.id
		ORDER BY d.id ASC`).
		Scan(&averages).Error
	if err != nil {
		return nil, translateError(err)
	}
	return averages, nil
}

func (s *analyticsService) DishSalesFigures() ([]DishSalesFigure, error) {
	var figures []DishSalesFigure
	err := s.db.Raw(`
		SELECT od.dish_id AS dish_id, od.price AS price,
		       AVG(od.amount * 1.0) * od.price AS figure
		FROM ordered_dishes od
		GROUP BY od.dish_id, od.price
		ORDER BY od.dish_id ASC, od.price ASC`).
		Scan(&figures).Error
	if err != nil {
		return nil, translateError(err)
	}
	return figures, nil
}

func (s *analyticsService) MaxAverageSpenders() ([]int, error) {
	// one row per placed order with its full total; anonymous orders carry no
	// placement row and are left out by the join
	var rows []struct {
		CustomerID int
		Total      float64
	}
	err := s.db.Raw(`
		SELECT p.customer_id AS customer_id,
		       COALESCE(SUM(od.price * od.amount), 0) + o.delivery_fee AS total
		FROM placed_orders p
		JOIN orders o ON o.id = p.order_id
		LEFT JOIN ordered_dishes od ON od.order_id = o.id
		GROUP BY p.customer_id, o.id, o.delivery_fee`).
		Scan(&rows).Error
	if err != nil {
		return nil, translateError(err)
	}

	totals := make(map[int][]float64)
	for _, row := range rows {
		totals[row.CustomerID] = append(totals[row.CustomerID], row.Total)
	}

	// Customers with the same multiset of order totals must land on the same
	// mean bit for bit, whatever order their rows came back in. Summing each
	// customer's totals in sorted order makes the accumulation deterministic,
	// so the equality comparison below holds for genuine ties.
	var maxMean float64
	first := true
	means := make(map[int]float64, len(totals))
	for customerID, customerTotals := range totals {
		sort.Float64s(customerTotals)
		var sum float64
		for _, total := range customerTotals {
			sum += total
		}
		mean := sum / float64(len(customerTotals))
		means[customerID] = mean
		if first || mean > maxMean {
			maxMean = mean
			first = false
		}
	}

	result := []int{}
	for customerID, mean := range means {
		if mean == maxMean {
			result = append(result, customerID)
		}
	}
	sort.Ints(result)
	return result, nil
}

func (s *analyticsService) MostPurchasedAnonymousDish() (*models.Dish, error) {
	var rows []struct {
		DishID   int
		Quantity int
	}
	err := s.db.Raw(`
		SELECT od.dish_id AS dish_id, SUM(od.amount) AS quantity
		FROM ordered_dishes od
		LEFT JOIN placed_orders p ON p.order_id = od.order_id
		WHERE p.order_id IS NULL
		GROUP BY od.dish_id`).
		Scan(&rows).Error
	if err != nil {
		return nil, translateError(err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	best := rows[0]
	for _, row := range rows[1:] {
		if row.Quantity > best.Quantity ||
			(row.Quantity == best.Quantity && row.DishID < best.DishID) {
			best = row
		}
	}

	var dish models.Dish
	if err := s.db.First(&dish, best.DishID).Error; err != nil {
		return nil, translateError(err)
	}
	return &dish, nil
}

func (s *analyticsService) CustomerOrderedTopRatedDish(customerID int) (bool, error) {
	if err := s.db.First(&models.Customer{}, customerID).Error; err != nil {
		return false, translateError(err)
	}

	averages, err := s.DishAverageRatings()
	if err != nil {
		return false, err
	}
	sort.SliceStable(averages, func(i, j int) bool {
		if averages[i].Average != averages[j].Average {
			return averages[i].Average > averages[j].Average
		}
		return averages[i].DishID < averages[j].DishID
	})
	if len(averages) > 5 {
		averages = averages[:5]
	}

	ordered, err := customerOrderedDishIDs(s.db, customerID)
	if err != nil {
		return false, err
	}
	for _, avg := range averages {
		if _, ok := ordered[avg.DishID]; ok {
			return true, nil
		}
	}
	return false, nil
}

func (s *analyticsService) RatedButNotOrdered() ([]int, error) {
	averages, err := s.DishAverageRatings()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(averages, func(i, j int) bool {
		if averages[i].Average != averages[j].Average {
			return averages[i].Average < averages[j].Average
		}
		return averages[i].DishID < averages[j].DishID
	})
	if len(averages) > 5 {
		averages = averages[:5]
	}
	if len(averages) == 0 {
		return []int{}, nil
	}

	worstDishes := make([]int, 0, len(averages))
	for _, avg := range averages {
		worstDishes = append(worstDishes, avg.DishID)
	}

	var ratings []models.DishRating
	err = s.db.
		Where("rating < ? AND dish_id IN ?", 3, worstDishes).
		Find(&ratings).Error
	if err != nil {
		return nil, translateError(err)
	}

	orderedByCustomer := make(map[int]map[int]struct{})
	matched := make(map[int]struct{})
	for _, rating := range ratings {
		ordered, ok := orderedByCustomer[rating.CustomerID]
		if !ok {
			ordered, err = customerOrderedDishIDs(s.db, rating.CustomerID)
			if err != nil {
				return nil, err
			}
			orderedByCustomer[rating.CustomerID] = ordered
		}
		if _, has := ordered[rating.DishID]; !has {
			matched[rating.CustomerID] = struct{}{}
		}
	}

	result := make([]int, 0, len(matched))
	for customerID := range matched {
		result = append(result, customerID)
	}
	sort.Ints(result)
	return result, nil
}

func (s *analyticsService) NonWorthPriceIncrease() ([]int, error) {
	figures, err := s.DishSalesFigures()
	if err != nil {
		return nil, err
	}
	byDish := make(map[int][]DishSalesFigure)
	for _, figure := range figures {
		byDish[figure.DishID] = append(byDish[figure.DishID], figure)
	}

	var activeDishes []models.Dish
	if err := s.db.Where("is_active = ?", true).Find(&activeDishes).Error; err != nil {
		return nil, translateError(err)
	}

	result := []int{}
	for _, dish := range activeDishes {
		points := byDish[dish.ID]
		if len(points) < 2 {
			continue
		}
		cheapest := points[0]
		var current *DishSalesFigure
		for i, point := range points {
			if point.Price < cheapest.Price {
				cheapest = point
			}
			if point.Price == dish.Price {
				current = &points[i]
			}
		}
		// only dishes actually sold at their current price are comparable
		if current == nil {
			continue
		}
		if current.Price > cheapest.Price && current.Figure < cheapest.Figure {
			result = append(result, dish.ID)
		}
	}
	sort.Ints(result)
	return result, nil
}

func (s *analyticsService) CumulativeProfitPerMonth(year int) ([]MonthProfit, error) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)

	// month extraction differs between SQLite and PostgreSQL, so orders come
	// back with their timestamps and the bucketing happens here
	var rows []struct {
		Date  time.Time
		Total float64
	}
	err := s.db.Raw(`
		SELECT o.date AS date,
		       COALESCE(SUM(od.price * od.amount), 0) + o.delivery_fee AS total
		FROM orders o
		LEFT JOIN ordered_dishes od ON od.order_id = o.id
		WHERE o.date >= ? AND o.date < ?
		GROUP BY o.id, o.date, o.delivery_fee`, start, end).
		Scan(&rows).Error
	if err != nil {
		return nil, translateError(err)
	}

	var buckets [12]float64
	for _, row := range rows {
		buckets[int(row.Date.Month())-1] += row.Total
	}

	result := make([]MonthProfit, 0, 12)
	for month := 12; month >= 1; month-- {
		result = append(result, MonthProfit{Month: month, Profit: buckets[month-1]})
	}
	return result, nil
}

// customerOrderedDishIDs collects every dish the customer ordered through any
// of their placed orders
func customerOrderedDishIDs(db *gorm.DB, customerID int) (map[int]struct{}, error) {
	var ids []int
	err := db.Raw(`
		SELECT DISTINCT od.dish_id
		FROM placed_orders p
		JOIN ordered_dishes od ON od.order_id = p.order_id
		WHERE p.customer_id = ?`, customerID).
		Scan(&ids).Error
	if err != nil {
		return nil, translateError(err)
	}
	set := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set, nil
}
