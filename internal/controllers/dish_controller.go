package controllers

import (
	"net/http"

	"github.com/deliverydb/gin-delivery-api/internal/models"
	"github.com/deliverydb/gin-delivery-api/internal/services"
	"github.com/gin-gonic/gin"
)

// DishController handles HTTP requests related to dishes
type DishController interface {
	// CreateDish adds a new dish to the menu
	CreateDish(ctx *gin.Context)
	// GetDish retrieves a dish by its ID
	GetDish(ctx *gin.Context)
	// DeleteDish deletes a dish by its ID
	DeleteDish(ctx *gin.Context)
	// UpdateDishPrice changes the price of an active dish
	UpdateDishPrice(ctx *gin.Context)
	// UpdateDishActiveStatus toggles a dish's active flag
	UpdateDishActiveStatus(ctx *gin.Context)
}

type dishController struct {
	dishes services.DishService
}

// NewDishController creates a new instance of DishController
func NewDishController(dishes services.DishService) DishController {
	return &dishController{dishes: dishes}
}

// CreateDish godoc
// @Summary Add a new dish
// @Tags dishes
// @Accept json
// @Produce json
// @Param dish body models.Dish true "Dish object"
// @Success 201 {object} models.Dish
// @Failure 400 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Router /api/v1/dishes [post]
func (c *dishController) CreateDish(ctx *gin.Context) {
	var dish models.Dish
	if err := ctx.ShouldBindJSON(&dish); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrCodeBadRequest, "invalid request body"))
		return
	}
	if err := c.dishes.AddDish(dish); err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dish)
}

// GetDish godoc
// @Summary Get dish by ID
// @Tags dishes
// @Produce json
// @Param id path int true "Dish ID"
// @Success 200 {object} models.Dish
// @Failure 404 {object} models.APIError
// @Router /api/v1/dishes/{id} [get]
func (c *dishController) GetDish(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	dish, err := c.dishes.GetDish(id)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dish)
}

// DeleteDish godoc
// @Summary Delete dish by ID
// @Tags dishes
// @Produce json
// @Param id path int true "Dish ID"
// @Success 204
// @Failure 404 {object} models.APIError
// @Router /api/v1/dishes/{id} [delete]
func (c *dishController) DeleteDish(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	if err := c.dishes.DeleteDish(id); err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

type updatePriceRequest struct {
	Price float64 `json:"price" binding:"required"`
}

// UpdateDishPrice godoc
// @Summary Update the price of an active dish
// @Tags dishes
// @Accept json
// @Produce json
// @Param id path int true "Dish ID"
// @Param price body updatePriceRequest true "New price"
// @Success 204
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /api/v1/dishes/{id}/price [put]
func (c *dishController) UpdateDishPrice(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var req updatePriceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrCodeBadRequest, "invalid request body"))
		return
	}
	if err := c.dishes.UpdateDishPrice(id, req.Price); err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

type updateActiveStatusRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

// UpdateDishActiveStatus godoc
// @Summary Update a dish's active flag
// @Tags dishes
// @Accept json
// @Produce json
// @Param id path int true "Dish ID"
// @Param status body updateActiveStatusRequest true "New status"
// @Success 204
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /api/v1/dishes/{id}/active [put]
func (c *dishController) UpdateDishActiveStatus(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var req updateActiveStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrCodeBadRequest, "invalid request body"))
		return
	}
	if err := c.dishes.UpdateDishActiveStatus(id, *req.IsActive); err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
