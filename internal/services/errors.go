package services

import (
	"errors"
	"fmt"

	"github.com/deliverydb/gin-delivery-api/internal/models"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

var validate = validator.New()

// validateStruct runs the validator tags of a model before it ever reaches the
// database, so range and length violations come back as BadParameters without
// depending on driver-specific check-constraint reporting.
func validateStruct(v interface{}) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %v", models.ErrBadParameters, err)
	}
	return nil
}

// translateError maps gorm sentinel errors (TranslateError must be enabled on
// the connection) onto the domain error taxonomy. Any unrecognized storage
// error becomes ErrInternal; nothing driver-specific leaves this package.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", models.ErrAlreadyExists, err)
	case errors.Is(err, gorm.ErrRecordNotFound), errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %v", models.ErrNotFound, err)
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return fmt.Errorf("%w: %v", models.ErrBadParameters, err)
	default:
		return fmt.Errorf("%w: %v", models.ErrInternal, err)
	}
}

// checkSingletonResult inspects the outcome of a mutation that must touch
// exactly one row. Zero rows means the target was absent; more than one means
// the store is inconsistent and the caller must not treat it as success.
func checkSingletonResult(res *gorm.DB) error {
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: no matching row", models.ErrNotFound)
	}
	if res.RowsAffected > 1 {
		return fmt.Errorf("%w: singleton mutation affected %d rows", models.ErrInternal, res.RowsAffected)
	}
	return nil
}
