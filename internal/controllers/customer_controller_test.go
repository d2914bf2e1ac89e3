package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deliverydb/gin-delivery-api/internal/database"
	"github.com/deliverydb/gin-delivery-api/internal/models"
	"github.com/deliverydb/gin-delivery-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, database.Migrate(db))

	controller := NewCustomerController(
		services.NewCustomerService(db),
		services.NewRatingService(db),
	)
	dishes := NewDishController(services.NewDishService(db))

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/v1/customers", controller.CreateCustomer)
	router.GET("/api/v1/customers/:id", controller.GetCustomer)
	router.DELETE("/api/v1/customers/:id", controller.DeleteCustomer)
	router.POST("/api/v1/customers/:id/ratings", controller.RateDish)
	router.GET("/api/v1/customers/:id/ratings", controller.ListRatings)
	router.POST("/api/v1/dishes", dishes.CreateDish)
	return router
}

func performJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCustomerLifecycle(t *testing.T) {
	router := setupTestRouter(t)

	customer := models.Customer{ID: 1, FullName: "Dana Cohen", Age: 25, Phone: "0521112233"}
	w := performJSON(router, "POST", "/api/v1/customers", customer)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = performJSON(router, "GET", "/api/v1/customers/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got models.Customer
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, customer, got)

	w = performJSON(router, "DELETE", "/api/v1/customers/1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = performJSON(router, "GET", "/api/v1/customers/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateCustomerStatusCodes(t *testing.T) {
	router := setupTestRouter(t)

	valid := models.Customer{ID: 1, FullName: "Dana Cohen", Age: 25, Phone: "0521112233"}
	assert.Equal(t, http.StatusCreated, performJSON(router, "POST", "/api/v1/customers", valid).Code)
	// same id again
	assert.Equal(t, http.StatusConflict, performJSON(router, "POST", "/api/v1/customers", valid).Code)

	underage := models.Customer{ID: 2, FullName: "Kid", Age: 12, Phone: "0521112233"}
	assert.Equal(t, http.StatusBadRequest, performJSON(router, "POST", "/api/v1/customers", underage).Code)
}

func TestGetCustomerBadID(t *testing.T) {
	router := setupTestRouter(t)

	w := performJSON(router, "GET", "/api/v1/customers/not-a-number", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRateDishEndpoint(t *testing.T) {
	router := setupTestRouter(t)

	customer := models.Customer{ID: 1, FullName: "Dana Cohen", Age: 25, Phone: "0521112233"}
	require.Equal(t, http.StatusCreated, performJSON(router, "POST", "/api/v1/customers", customer).Code)
	dish := models.Dish{ID: 1, Name: "Margherita", Price: 10, IsActive: true}
	require.Equal(t, http.StatusCreated, performJSON(router, "POST", "/api/v1/dishes", dish).Code)

	w := performJSON(router, "POST", "/api/v1/customers/1/ratings", gin.H{"dish_id": 1, "rating": 4})
	assert.Equal(t, http.StatusCreated, w.Code)

	// rating an absent dish surfaces as 404
	w = performJSON(router, "POST", "/api/v1/customers/1/ratings", gin.H{"dish_id": 42, "rating": 4})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = performJSON(router, "GET", "/api/v1/customers/1/ratings", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var ratings []models.DishRating
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ratings))
	require.Len(t, ratings, 1)
	assert.Equal(t, 4, ratings[0].Rating)
}
