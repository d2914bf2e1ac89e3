package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/deliverydb/gin-delivery-api/internal/models"
	"github.com/gin-gonic/gin"
)

// respondWithError translates a domain error into an HTTP status and a
// standardized error body
func respondWithError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrBadParameters):
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrCodeBadRequest, err.Error()))
	case errors.Is(err, models.ErrNotFound):
		ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrCodeNotFound, err.Error()))
	case errors.Is(err, models.ErrAlreadyExists):
		ctx.JSON(http.StatusConflict, models.NewAPIError(models.ErrCodeConflict, err.Error()))
	default:
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrCodeInternalServer, err.Error()))
	}
}

// pathID extracts an integer id path parameter, responding 400 on malformed input
func pathID(ctx *gin.Context, name string) (int, bool) {
	raw, ok := ctx.Params.Get(name)
	if !ok {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrCodeBadRequest, "missing "+name+" parameter"))
		return 0, false
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrCodeBadRequest, "invalid "+name+" format"))
		return 0, false
	}
	return id, true
}
