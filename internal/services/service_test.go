package services

import (
	"testing"
	"time"

	"github.com/deliverydb/gin-delivery-api/internal/database"
	"github.com/deliverydb/gin-delivery-api/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, database.Migrate(db))

	return db
}

func testCustomer(id int) models.Customer {
	return models.Customer{ID: id, FullName: "Jordan Smith", Age: 30, Phone: "0501234567"}
}

func testOrder(id int, date time.Time, fee float64) models.Order {
	return models.Order{ID: id, Date: date, DeliveryFee: fee, DeliveryAddress: "10 Main Street"}
}

func testDish(id int, name string, price float64, active bool) models.Dish {
	return models.Dish{ID: id, Name: name, Price: price, IsActive: active}
}

var testDate = time.Date(2024, time.March, 15, 12, 30, 0, 0, time.UTC)

// seedCustomer, seedOrder and seedDish go through the services so every
// fixture passes the same validation path production writes do.
func seedCustomer(t *testing.T, db *gorm.DB, id int) {
	t.Helper()
	require.NoError(t, NewCustomerService(db).AddCustomer(testCustomer(id)))
}

func seedOrder(t *testing.T, db *gorm.DB, id int, fee float64) {
	t.Helper()
	require.NoError(t, NewOrderService(db).AddOrder(testOrder(id, testDate, fee)))
}

func seedDish(t *testing.T, db *gorm.DB, id int, price float64) {
	t.Helper()
	require.NoError(t, NewDishService(db).AddDish(testDish(id, "Dish Number", price, true)))
}
