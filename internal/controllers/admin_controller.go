package controllers

import (
	"net/http"

	"github.com/deliverydb/gin-delivery-api/internal/database"
	"github.com/deliverydb/gin-delivery-api/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AdminController exposes the schema lifecycle operations. These endpoints are
// destructive and sit behind the JWT middleware.
type AdminController interface {
	// CreateSchema creates or updates all tables
	CreateSchema(ctx *gin.Context)
	// ClearData removes all rows, preserving the schema
	ClearData(ctx *gin.Context)
	// DropSchema drops all tables
	DropSchema(ctx *gin.Context)
}

type adminController struct {
	db *gorm.DB
}

// NewAdminController creates a new instance of AdminController
func NewAdminController(db *gorm.DB) AdminController {
	return &adminController{db: db}
}

// CreateSchema godoc
// @Summary Create or update the database schema
// @Tags admin
// @Produce json
// @Success 201
// @Failure 500 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/admin/schema [post]
func (c *adminController) CreateSchema(ctx *gin.Context) {
	if err := database.Migrate(c.db); err != nil {
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrCodeInternalServer, err.Error()))
		return
	}
	ctx.Status(http.StatusCreated)
}

// ClearData godoc
// @Summary Remove all rows from all tables
// @Tags admin
// @Produce json
// @Success 204
// @Failure 500 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/admin/schema/data [delete]
func (c *adminController) ClearData(ctx *gin.Context) {
	if err := database.ClearTables(c.db); err != nil {
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrCodeInternalServer, err.Error()))
		return
	}
	ctx.Status(http.StatusNoContent)
}

// DropSchema godoc
// @Summary Drop all tables
// @Tags admin
// @Produce json
// @Success 204
// @Failure 500 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/admin/schema [delete]
func (c *adminController) DropSchema(ctx *gin.Context) {
	if err := database.DropTables(c.db); err != nil {
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrCodeInternalServer, err.Error()))
		return
	}
	ctx.Status(http.StatusNoContent)
}
