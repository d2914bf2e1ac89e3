package controllers

import (
	"net/http"

	"github.com/deliverydb/gin-delivery-api/internal/models"
	"github.com/deliverydb/gin-delivery-api/internal/services"
	"github.com/gin-gonic/gin"
)

// OrderController handles HTTP requests related to orders, placement links and
// line items
type OrderController interface {
	// CreateOrder creates a new order
	CreateOrder(ctx *gin.Context)
	// GetOrder retrieves an order by its ID
	GetOrder(ctx *gin.Context)
	// DeleteOrder deletes an order by its ID
	DeleteOrder(ctx *gin.Context)
	// PlaceOrder links an order to the customer that placed it
	PlaceOrder(ctx *gin.Context)
	// RemovePlacement makes an order anonymous again
	RemovePlacement(ctx *gin.Context)
	// GetPlacingCustomer returns the customer that placed the order
	GetPlacingCustomer(ctx *gin.Context)
	// AddOrderItem adds a line item to an order
	AddOrderItem(ctx *gin.Context)
	// RemoveOrderItem removes a line item from an order
	RemoveOrderItem(ctx *gin.Context)
	// ListOrderItems lists an order's line items ordered by dish id
	ListOrderItems(ctx *gin.Context)
}

type orderController struct {
	orders services.OrderService
}

// NewOrderController creates a new instance of OrderController
func NewOrderController(orders services.OrderService) OrderController {
	return &orderController{orders: orders}
}

// CreateOrder godoc
// @Summary Create a new order
// @Tags orders
// @Accept json
// @Produce json
// @Param order body models.Order true "Order object"
// @Success 201 {object} models.Order
// @Failure 400 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Router /api/v1/orders [post]
func (c *orderController) CreateOrder(ctx *gin.Context) {
	var order models.Order
	if err := ctx.ShouldBindJSON(&order); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrCodeBadRequest, "invalid request body"))
		return
	}
	if err := c.orders.AddOrder(order); err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, order)
}

// GetOrder godoc
// @Summary Get order by ID
// @Tags orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.Order
// @Failure 404 {object} models.APIError
// @Router /api/v1/orders/{id} [get]
func (c *orderController) GetOrder(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	order, err := c.orders.GetOrder(id)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, order)
}

// DeleteOrder godoc
// @Summary Delete order by ID
// @Tags orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 204
// @Failure 404 {object} models.APIError
// @Router /api/v1/orders/{id} [delete]
func (c *orderController) DeleteOrder(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	if err := c.orders.DeleteOrder(id); err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

type placeOrderRequest struct {
	CustomerID int `json:"customer_id" binding:"required"`
}

// PlaceOrder godoc
// @Summary Link an order to the customer that placed it
// @Tags orders
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param placement body placeOrderRequest true "Placing customer"
// @Success 201
// @Failure 404 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Router /api/v1/orders/{id}/customer [put]
func (c *orderController) PlaceOrder(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var req placeOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrCodeBadRequest, "invalid request body"))
		return
	}
	if err := c.orders.PlaceOrder(req.CustomerID, id); err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.Status(http.StatusCreated)
}

// RemovePlacement godoc
// @Summary Unlink an order from its customer
// @Tags orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 204
// @Failure 404 {object} models.APIError
// @Router /api/v1/orders/{id}/customer [delete]
func (c *orderController) RemovePlacement(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	if err := c.orders.RemovePlacement(id); err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// GetPlacingCustomer godoc
// @Summary Get the customer that placed an order
// @Tags orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.Customer
// @Failure 404 {object} models.APIError
// @Router /api/v1/orders/{id}/customer [get]
func (c *orderController) GetPlacingCustomer(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	customer, err := c.orders.GetPlacingCustomer(id)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, customer)
}

type addOrderItemRequest struct {
	DishID int `json:"dish_id" binding:"required"`
	Amount int `json:"amount"`
}

// AddOrderItem godoc
// @Summary Add a line item to an order
// @Description The dish must exist and be active; its current price is frozen
// @Description into the line item.
// @Tags orders
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param item body addOrderItemRequest true "Line item"
// @Success 201
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Router /api/v1/orders/{id}/items [post]
func (c *orderController) AddOrderItem(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	var req addOrderItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrCodeBadRequest, "invalid request body"))
		return
	}
	if err := c.orders.AddOrderItem(id, req.DishID, req.Amount); err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.Status(http.StatusCreated)
}

// RemoveOrderItem godoc
// @Summary Remove a line item from an order
// @Tags orders
// @Produce json
// @Param id path int true "Order ID"
// @Param dishId path int true "Dish ID"
// @Success 204
// @Failure 404 {object} models.APIError
// @Router /api/v1/orders/{id}/items/{dishId} [delete]
func (c *orderController) RemoveOrderItem(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	dishID, ok := pathID(ctx, "dishId")
	if !ok {
		return
	}
	if err := c.orders.RemoveOrderItem(id, dishID); err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// ListOrderItems godoc
// @Summary List an order's line items
// @Tags orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {array} models.OrderedDish
// @Failure 404 {object} models.APIError
// @Router /api/v1/orders/{id}/items [get]
func (c *orderController) ListOrderItems(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}
	items, err := c.orders.ListOrderItems(id)
	if err != nil {
		respondWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, items)
}
