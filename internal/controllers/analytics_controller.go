package controllers

import (
	"net/http"

	"github.com/deliverydb/gin-delivery-api/internal/models"
	"github.com/deliverydb/gin-delivery-api/internal/services"
	"github.com/gin-gonic/gin"
)

// AnalyticsController exposes the derived views, analytic queries and the
// recommendation engine as read-only endpoints
type AnalyticsController interface {
	GetOrderTotal(ctx *gin.Context)
	GetDishAverageRatings(ctx *gin.Context)
	GetDishSalesFigures(ctx *gin.Context)
	GetMaxAverageSpenders(ctx *gin.Context)
	GetMostPurchasedAnonymousDish(ctx *gin.Context)
	GetCustomerOrderedTopRatedDish(ctx *gin.Context)
	GetRatedButNotOrdered(ctx *gin.Context)
	GetNonWorthPriceIncrease(ctx *gin.Context)
	GetCumulativeProfitPerMonth(ctx *gin.Context)
	GetRecommendations(ctx *gin.Context)
}

type analyticsController struct {
	analytics       services.AnalyticsService
	recommendations services.RecommendationService
}

// NewAnalyticsController creates a new instance of AnalyticsController
func NewAnalyticsController(analytics services.AnalyticsService, recommendations services.RecommendationService) AnalyticsController {
	return &analyticsController{analytics: analytics, recommendations: recommendations}
}

// GetOrderTotal godoc
// @Summary Total price of an order including delivery fee
// @Tags analytics
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} map[string]float64
// @Failure 404 {object} models.APIError
// @Router /api/v1/analytics/orders/{id}/total [get]
func (c *analyticsController) GetOrderTotal(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	total, err := c.analytics.OrderTotal(id)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"order_id": id, "total": total})
}

// GetDishAverageRatings godoc
// @Summary Average rating per dish, 3 when unrated
// @Tags analytics
// @Produce json
// @Success 200 {array} services.DishRatingAverage
// @Router /api/v1/analytics/dishes/ratings [get]
func (c *analyticsController) GetDishAverageRatings(ctx *gin.Context) {
	averages, err := c.analytics.DishAverageRatings()
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, averages)
}

// GetDishSalesFigures godoc
// @Summary Sales figure per dish and historical price
// @Tags analytics
// @Produce json
// @Success 200 {array} services.DishSalesFigure
// @Router /api/v1/analytics/dishes/sales-figures [get]
func (c *analyticsController) GetDishSalesFigures(ctx *gin.Context) {
	figures, err := c.analytics.DishSalesFigures()
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, figures)
}

// GetMaxAverageSpenders godoc
// @Summary Customers with the highest mean order total
// @Tags analytics
// @Produce json
// @Success 200 {array} int
// @Router /api/v1/analytics/customers/max-average-spenders [get]
func (c *analyticsController) GetMaxAverageSpenders(ctx *gin.Context) {
	customers, err := c.analytics.MaxAverageSpenders()
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, customers)
}

// GetMostPurchasedAnonymousDish godoc
// @Summary Most purchased dish among anonymous orders
// @Tags analytics
// @Produce json
// @Success 200 {object} models.Dish
// @Failure 404 {object} models.APIError
// @Router /api/v1/analytics/dishes/most-purchased-anonymous [get]
func (c *analyticsController) GetMostPurchasedAnonymousDish(ctx *gin.Context) {
	dish, err := c.analytics.MostPurchasedAnonymousDish()
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	if dish == nil {
		ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrCodeNotFound, "no anonymous order items"))
		return
	}
	ctx.JSON(http.StatusOK, dish)
}

// GetCustomerOrderedTopRatedDish godoc
// @Summary Whether a customer ordered one of the five best-rated dishes
// @Tags analytics
// @Produce json
// @Param id path int true "Customer ID"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} models.APIError
// @Router /api/v1/analytics/customers/{id}/ordered-top-rated [get]
func (c *analyticsController) GetCustomerOrderedTopRatedDish(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	ordered, err := c.analytics.CustomerOrderedTopRatedDish(id)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"customer_id": id, "ordered_top_rated": ordered})
}

// GetRatedButNotOrdered godoc
// @Summary Customers who panned a bottom-five dish they never ordered
// @Tags analytics
// @Produce json
// @Success 200 {array} int
// @Router /api/v1/analytics/customers/rated-but-not-ordered [get]
func (c *analyticsController) GetRatedButNotOrdered(ctx *gin.Context) {
	customers, err := c.analytics.RatedButNotOrdered()
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, customers)
}

// GetNonWorthPriceIncrease godoc
// @Summary Active dishes whose price increase reduced revenue throughput
// @Tags analytics
// @Produce json
// @Success 200 {array} int
// @Router /api/v1/analytics/dishes/non-worth-price-increase [get]
func (c *analyticsController) GetNonWorthPriceIncrease(ctx *gin.Context) {
	dishes, err := c.analytics.NonWorthPriceIncrease()
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dishes)
}

// GetCumulativeProfitPerMonth godoc
// @Summary Profit of every month of a year, December first
// @Tags analytics
// @Produce json
// @Param year path int true "Year"
// @Success 200 {array} services.MonthProfit
// @Router /api/v1/analytics/profit/{year} [get]
func (c *analyticsController) GetCumulativeProfitPerMonth(ctx *gin.Context) {
	year, ok := pathID(ctx, "year")
	if !ok {
		return
	}
	profits, err := c.analytics.CumulativeProfitPerMonth(year)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, profits)
}

// GetRecommendations godoc
// @Summary Dish recommendations for a customer
// @Description Dishes rated highly by customers reachable through chains of
// @Description shared high ratings, excluding dishes the customer already ordered.
// @Tags analytics
// @Produce json
// @Param id path int true "Customer ID"
// @Success 200 {array} int
// @Failure 404 {object} models.APIError
// @Router /api/v1/analytics/customers/{id}/recommendations [get]
func (c *analyticsController) GetRecommendations(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	dishes, err := c.recommendations.RecommendDishes(id)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dishes)
}
