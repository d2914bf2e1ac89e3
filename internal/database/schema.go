package database

import (
	"fmt"

	"github.com/deliverydb/gin-delivery-api/internal/models"
	"gorm.io/gorm"
)

// entityModels lists every persisted model, parents before children, so that
// migration creates referenced tables first and teardown can walk it in reverse.
var entityModels = []interface{}{
	&models.Customer{},
	&models.Order{},
	&models.Dish{},
	&models.PlacedOrder{},
	&models.OrderedDish{},
	&models.DishRating{},
}

// Migrate creates or updates the full schema: the three entity tables plus the
// three relationship tables, including check constraints and foreign keys.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(entityModels...); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	log.Info("Database schema migrated")
	return nil
}

// ClearTables removes every row from every table, children first so foreign
// keys never block the wipe. The schema itself is preserved.
func ClearTables(db *gorm.DB) error {
	for i := len(entityModels) - 1; i >= 0; i-- {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(entityModels[i]).Error; err != nil {
			return fmt.Errorf("clear tables: %w", err)
		}
	}
	log.Info("All tables cleared")
	return nil
}

// DropTables drops the whole schema, children first.
func DropTables(db *gorm.DB) error {
	for i := len(entityModels) - 1; i >= 0; i-- {
		if err := db.Migrator().DropTable(entityModels[i]); err != nil {
			return fmt.Errorf("drop tables: %w", err)
		}
	}
	log.Info("All tables dropped")
	return nil
}
