package controllers

import (
	"net/http"

	"github.com/deliverydb/gin-delivery-api/internal/models"
	"github.com/deliverydb/gin-delivery-api/internal/services"
	"github.com/gin-gonic/gin"
)

// CustomerController handles HTTP requests related to customers and their ratings
type CustomerController interface {
	// CreateCustomer registers a new customer
	CreateCustomer(ctx *gin.Context)
	// GetCustomer retrieves a customer by its ID
	GetCustomer(ctx *gin.Context)
	// DeleteCustomer deletes a customer by its ID
	DeleteCustomer(ctx *gin.Context)
	// RateDish records the customer's rating of a dish
	RateDish(ctx *gin.Context)
	// DeleteRating removes the customer's rating of a dish
	DeleteRating(ctx *gin.Context)
	// ListRatings lists the customer's ratings ordered by dish id
	ListRatings(ctx *gin.Context)
}

type customerController struct {
	customers services.CustomerService
	ratings   services.RatingService
}

// NewCustomerController creates a new instance of CustomerController
func NewCustomerController(customers services.CustomerService, ratings services.RatingService) CustomerController {
	return &customerController{customers: customers, ratings: ratings}
}

// CreateCustomer godoc
// @Summary Register a new customer
// @Tags customers
// @Accept json
// @Produce json
// @Param customer body models.Customer true "Customer object"
// @Success 201 {object} models.Customer
// @Failure 400 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Router /api/v1/customers [post]
func (c *customerController) CreateCustomer(ctx *gin.Context) {
	var customer models.Customer
	if err := ctx.ShouldBindJSON(&customer); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrCodeBadRequest, "invalid request body"))
		return
	}
	if err := c.customers.AddCustomer(customer); err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, customer)
}

// GetCustomer godoc
// @Summary Get customer by ID
// @Tags customers
// @Produce json
// @Param id path int true "Customer ID"
// @Success 200 {object} models.Customer
// @Failure 404 {object} models.APIError
// @Router /api/v1/customers/{id} [get]
func (c *customerController) GetCustomer(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	customer, err := c.customers.GetCustomer(id)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, customer)
}

// DeleteCustomer godoc
// @Summary Delete customer by ID
// @Tags customers
// @Produce json
// @Param id path int true "Customer ID"
// @Success 204
// @Failure 404 {object} models.APIError
// @Router /api/v1/customers/{id} [delete]
func (c *customerController) DeleteCustomer(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	if err := c.customers.DeleteCustomer(id); err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

type rateDishRequest struct {
	DishID int `json:"dish_id" binding:"required"`
	Rating int `json:"rating" binding:"required"`
}

// RateDish godoc
// @Summary Rate a dish on behalf of a customer
// @Tags customers
// @Accept json
// @Produce json
// @Param id path int true "Customer ID"
// @Param rating body rateDishRequest true "Rating"
// @Success 201
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Router /api/v1/customers/{id}/ratings [post]
func (c *customerController) RateDish(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var req rateDishRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrCodeBadRequest, "invalid request body"))
		return
	}
	if err := c.ratings.RateDish(id, req.DishID, req.Rating); err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.Status(http.StatusCreated)
}

// DeleteRating godoc
// @Summary Remove a customer's rating of a dish
// @Tags customers
// @Produce json
// @Param id path int true "Customer ID"
// @Param dishId path int true "Dish ID"
// @Success 204
// @Failure 404 {object} models.APIError
// @Router /api/v1/customers/{id}/ratings/{dishId} [delete]
func (c *customerController) DeleteRating(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	dishID, ok := pathID(ctx, "dishId")
	if !ok {
		return
	}
	if err := c.ratings.DeleteRating(id, dishID); err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// ListRatings godoc
// @Summary List a customer's ratings
// @Tags customers
// @Produce json
// @Param id path int true "Customer ID"
// @Success 200 {array} models.DishRating
// @Failure 404 {object} models.APIError
// @Router /api/v1/customers/{id}/ratings [get]
func (c *customerController) ListRatings(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	ratings, err := c.ratings.ListCustomerRatings(id)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, ratings)
}
