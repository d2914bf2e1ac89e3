package services

import (
	"testing"
	"time"

	"github.com/deliverydb/gin-delivery-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderTotal(t *testing.T) {
	db := setupTestDB(t)
	orders := NewOrderService(db)
	analytics := NewAnalyticsService(db)

	seedDish(t, db, 1, 1) // dish A, price 1
	seedDish(t, db, 2, 2) // dish B, price 2
	seedOrder(t, db, 1, 5)
	require.NoError(t, orders.AddOrderItem(1, 1, 3))
	require.NoError(t, orders.AddOrderItem(1, 2, 1))

	total, err := analytics.OrderTotal(1)
	require.NoError(t, err)
	assert.Equal(t, float64(10), total) // 3*1 + 1*2 + 5
}

func TestOrderTotalEmptyOrder(t *testing.T) {
	db := setupTestDB(t)
	analytics := NewAnalyticsService(db)

	seedOrder(t, db, 1, 7.5)

	total, err := analytics.OrderTotal(1)
	require.NoError(t, err)
	assert.Equal(t, 7.5, total)
}

func TestOrderTotalAbsentOrder(t *testing.T) {
	db := setupTestDB(t)
	analytics := NewAnalyticsService(db)

	_, err := analytics.OrderTotal(42)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestOrderTotalUsesFrozenPrice(t *testing.T) {
	db := setupTestDB(t)
	orders := NewOrderService(db)
	dishes := NewDishService(db)
	analytics := NewAnalyticsService(db)

	seedDish(t, db, 1, 10)
	seedOrder(t, db, 1, 0)
	require.NoError(t, orders.AddOrderItem(1, 1, 1))
	require.NoError(t, dishes.UpdateDishPrice(1, 50))

	total, err := analytics.OrderTotal(1)
	require.NoError(t, err)
	assert.Equal(t, float64(10), total)
}

func TestDishAverageRatingDefaultsToThree(t *testing.T) {
	db := setupTestDB(t)
	ratings := NewRatingService(db)
	analytics := NewAnalyticsService(db)

	seedDish(t, db, 1, 10)
	seedDish(t, db, 2, 10)
	seedCustomer(t, db, 1)
	require.NoError(t, ratings.RateDish(1, 2, 5))

	averages, err := analytics.DishAverageRatings()
	require.NoError(t, err)
	require.Len(t, averages, 2)
	assert.Equal(t, DishRatingAverage{DishID: 1, Average: 3}, averages[0])
	assert.Equal(t, DishRatingAverage{DishID: 2, Average: 5}, averages[1])
}

func TestMaxAverageSpenders(t *testing.T) {
	db := setupTestDB(t)
	orders := NewOrderService(db)
	analytics := NewAnalyticsService(db)

	seedCustomer(t, db, 1)
	seedCustomer(t, db, 2)
	seedCustomer(t, db, 3)
	// fee-only orders keep the arithmetic visible: customer 1 averages 15,
	// customer 2 averages 15, customer 3 averages 5
	seedOrder(t, db, 1, 10)
	seedOrder(t, db, 2, 20)
	seedOrder(t, db, 3, 15)
	seedOrder(t, db, 4, 5)
	require.NoError(t, orders.PlaceOrder(1, 1))
	require.NoError(t, orders.PlaceOrder(1, 2))
	require.NoError(t, orders.PlaceOrder(2, 3))
	require.NoError(t, orders.PlaceOrder(3, 4))

	spenders, err := analytics.MaxAverageSpenders()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, spenders)
}

func TestMaxAverageSpendersTieAcrossSummationOrder(t *testing.T) {
	db := setupTestDB(t)
	orders := NewOrderService(db)
	analytics := NewAnalyticsService(db)

	seedCustomer(t, db, 1)
	seedCustomer(t, db, 2)
	// same set of fees placed in opposite orders; a left-to-right sum over
	// query rows would differ in the low bits between the two customers and
	// drop one of them from the tie
	fees := []float64{0.1, 0.2, 0.3}
	for i, fee := range fees {
		seedOrder(t, db, i+1, fee)
		require.NoError(t, orders.PlaceOrder(1, i+1))
	}
	for i := range fees {
		seedOrder(t, db, i+4, fees[len(fees)-1-i])
		require.NoError(t, orders.PlaceOrder(2, i+4))
	}

	spenders, err := analytics.MaxAverageSpenders()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, spenders)
}

func TestMaxAverageSpendersIgnoresAnonymousOrders(t *testing.T) {
	db := setupTestDB(t)
	orders := NewOrderService(db)
	analytics := NewAnalyticsService(db)

	seedCustomer(t, db, 1)
	seedOrder(t, db, 1, 10)
	seedOrder(t, db, 2, 1000) // anonymous, counts toward nobody
	require.NoError(t, orders.PlaceOrder(1, 1))

	spenders, err := analytics.MaxAverageSpenders()
	require.NoError(t, err)
	assert.Equal(t, []int{1}, spenders)
}

func TestMaxAverageSpendersEmpty(t *testing.T) {
	db := setupTestDB(t)
	analytics := NewAnalyticsService(db)

	spenders, err := analytics.MaxAverageSpenders()
	require.NoError(t, err)
	assert.Empty(t, spenders)
}

func TestMostPurchasedAnonymousDish(t *testing.T) {
	db := setupTestDB(t)
	orders := NewOrderService(db)
	analytics := NewAnalyticsService(db)

	seedDish(t, db, 1, 10)
	seedDish(t, db, 2, 10)
	seedDish(t, db, 3, 10)
	seedCustomer(t, db, 1)
	seedOrder(t, db, 1, 5) // anonymous
	seedOrder(t, db, 2, 5) // anonymous
	seedOrder(t, db, 3, 5) // placed
	require.NoError(t, orders.PlaceOrder(1, 3))
	require.NoError(t, orders.AddOrderItem(1, 1, 3))
	require.NoError(t, orders.AddOrderItem(2, 2, 2))
	require.NoError(t, orders.AddOrderItem(3, 3, 100)) // huge but not anonymous

	dish, err := analytics.MostPurchasedAnonymousDish()
	require.NoError(t, err)
	require.NotNil(t, dish)
	assert.Equal(t, 1, dish.ID)
}

func TestMostPurchasedAnonymousDishTieBreaksBySmallestID(t *testing.T) {
	db := setupTestDB(t)
	orders := NewOrderService(db)
	analytics := NewAnalyticsService(db)

	seedDish(t, db, 2, 10)
	seedDish(t, db, 1, 10)
	seedOrder(t, db, 1, 5)
	require.NoError(t, orders.AddOrderItem(1, 2, 3))
	require.NoError(t, orders.AddOrderItem(1, 1, 3))

	dish, err := analytics.MostPurchasedAnonymousDish()
	require.NoError(t, err)
	require.NotNil(t, dish)
	assert.Equal(t, 1, dish.ID)
}

func TestMostPurchasedAnonymousDishNoData(t *testing.T) {
	db := setupTestDB(t)
	analytics := NewAnalyticsService(db)

	dish, err := analytics.MostPurchasedAnonymousDish()
	require.NoError(t, err)
	assert.Nil(t, dish)
}

func TestCustomerOrderedTopRatedDish(t *testing.T) {
	db := setupTestDB(t)
	orders := NewOrderService(db)
	ratings := NewRatingService(db)
	analytics := NewAnalyticsService(db)

	for id := 1; id <= 6; id++ {
		seedDish(t, db, id, 10)
	}
	seedCustomer(t, db, 1)
	seedCustomer(t, db, 2)
	// dish 1 averages 5, dish 6 averages 1, the rest sit at the default 3;
	// top five by (rating desc, id asc) are dishes 1-5
	require.NoError(t, ratings.RateDish(2, 1, 5))
	require.NoError(t, ratings.RateDish(2, 6, 1))

	seedOrder(t, db, 1, 5)
	require.NoError(t, orders.PlaceOrder(1, 1))
	require.NoError(t, orders.AddOrderItem(1, 6, 1))

	ordered, err := analytics.CustomerOrderedTopRatedDish(1)
	require.NoError(t, err)
	assert.False(t, ordered)

	require.NoError(t, orders.AddOrderItem(1, 5, 1))
	ordered, err = analytics.CustomerOrderedTopRatedDish(1)
	require.NoError(t, err)
	assert.True(t, ordered)
}

func TestCustomerOrderedTopRatedDishAbsentCustomer(t *testing.T) {
	db := setupTestDB(t)
	analytics := NewAnalyticsService(db)

	_, err := analytics.CustomerOrderedTopRatedDish(42)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestRatedButNotOrdered(t *testing.T) {
	db := setupTestDB(t)
	orders := NewOrderService(db)
	ratings := NewRatingService(db)
	analytics := NewAnalyticsService(db)

	for id := 1; id <= 6; id++ {
		seedDish(t, db, id, 10)
	}
	seedCustomer(t, db, 1)
	seedCustomer(t, db, 2)
	// dish 1 drops to the bottom five with a rating of 1; customer 2 panned it
	// and never ordered it
	require.NoError(t, ratings.RateDish(2, 1, 1))

	result, err := analytics.RatedButNotOrdered()
	require.NoError(t, err)
	assert.Equal(t, []int{2}, result)

	// once customer 2 orders dish 1, they no longer qualify
	seedOrder(t, db, 1, 5)
	require.NoError(t, orders.PlaceOrder(2, 1))
	require.NoError(t, orders.AddOrderItem(1, 1, 1))

	result, err = analytics.RatedButNotOrdered()
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestRatedButNotOrderedIgnoresHighRatings(t *testing.T) {
	db := setupTestDB(t)
	ratings := NewRatingService(db)
	analytics := NewAnalyticsService(db)

	seedDish(t, db, 1, 10)
	seedCustomer(t, db, 1)
	require.NoError(t, ratings.RateDish(1, 1, 4))

	result, err := analytics.RatedButNotOrdered()
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestNonWorthPriceIncrease(t *testing.T) {
	db := setupTestDB(t)
	orders := NewOrderService(db)
	dishes := NewDishService(db)
	analytics := NewAnalyticsService(db)

	// dish 1: sold at 5 moving 4 units per order (figure 20), raised to 10
	// moving 1 unit (figure 10) - the increase was not worth it
	seedDish(t, db, 1, 5)
	seedOrder(t, db, 1, 0)
	require.NoError(t, orders.AddOrderItem(1, 1, 4))
	require.NoError(t, dishes.UpdateDishPrice(1, 10))
	seedOrder(t, db, 2, 0)
	require.NoError(t, orders.AddOrderItem(2, 1, 1))

	// dish 2: raised from 3 to 4 but moving more units, figure went up
	seedDish(t, db, 2, 3)
	seedOrder(t, db, 3, 0)
	require.NoError(t, orders.AddOrderItem(3, 2, 1))
	require.NoError(t, dishes.UpdateDishPrice(2, 4))
	seedOrder(t, db, 4, 0)
	require.NoError(t, orders.AddOrderItem(4, 2, 5))

	// dish 3: only ever sold at one price
	seedDish(t, db, 3, 7)
	seedOrder(t, db, 5, 0)
	require.NoError(t, orders.AddOrderItem(5, 3, 2))

	result, err := analytics.NonWorthPriceIncrease()
	require.NoError(t, err)
	assert.Equal(t, []int{1}, result)
}

func TestNonWorthPriceIncreaseSkipsInactiveDishes(t *testing.T) {
	db := setupTestDB(t)
	orders := NewOrderService(db)
	dishes := NewDishService(db)
	analytics := NewAnalyticsService(db)

	seedDish(t, db, 1, 5)
	seedOrder(t, db, 1, 0)
	require.NoError(t, orders.AddOrderItem(1, 1, 4))
	require.NoError(t, dishes.UpdateDishPrice(1, 10))
	seedOrder(t, db, 2, 0)
	require.NoError(t, orders.AddOrderItem(2, 1, 1))
	require.NoError(t, dishes.UpdateDishActiveStatus(1, false))

	result, err := analytics.NonWorthPriceIncrease()
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestCumulativeProfitPerMonthFillsAllMonths(t *testing.T) {
	db := setupTestDB(t)
	orders := NewOrderService(db)
	analytics := NewAnalyticsService(db)

	seedDish(t, db, 1, 10)
	march := time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC)
	require.NoError(t, orders.AddOrder(models.Order{ID: 1, Date: march, DeliveryFee: 5, DeliveryAddress: "10 Main Street"}))
	require.NoError(t, orders.AddOrderItem(1, 1, 2))

	profits, err := analytics.CumulativeProfitPerMonth(2024)
	require.NoError(t, err)
	require.Len(t, profits, 12)

	// December first, January last
	for i, entry := range profits {
		assert.Equal(t, 12-i, entry.Month)
		if entry.Month == 3 {
			assert.Equal(t, float64(25), entry.Profit) // 2*10 + 5
		} else {
			assert.Zero(t, entry.Profit)
		}
	}
}

func TestCumulativeProfitPerMonthIgnoresOtherYears(t *testing.T) {
	db := setupTestDB(t)
	orders := NewOrderService(db)
	analytics := NewAnalyticsService(db)

	other := time.Date(2023, time.July, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, orders.AddOrder(models.Order{ID: 1, Date: other, DeliveryFee: 99, DeliveryAddress: "10 Main Street"}))

	profits, err := analytics.CumulativeProfitPerMonth(2024)
	require.NoError(t, err)
	require.Len(t, profits, 12)
	for _, entry := range profits {
		assert.Zero(t, entry.Profit)
	}
}

func TestDishSalesFigures(t *testing.T) {
	db := setupTestDB(t)
	orders := NewOrderService(db)
	dishes := NewDishService(db)
	analytics := NewAnalyticsService(db)

	seedDish(t, db, 1, 5)
	seedOrder(t, db, 1, 0)
	seedOrder(t, db, 2, 0)
	require.NoError(t, orders.AddOrderItem(1, 1, 2))
	require.NoError(t, orders.AddOrderItem(2, 1, 4))
	require.NoError(t, dishes.UpdateDishPrice(1, 8))
	seedOrder(t, db, 3, 0)
	require.NoError(t, orders.AddOrderItem(3, 1, 1))

	figures, err := analytics.DishSalesFigures()
	require.NoError(t, err)
	require.Len(t, figures, 2)
	assert.Equal(t, DishSalesFigure{DishID: 1, Price: 5, Figure: 15}, figures[0]) // avg(2,4)*5
	assert.Equal(t, DishSalesFigure{DishID: 1, Price: 8, Figure: 8}, figures[1])  // avg(1)*8
}
