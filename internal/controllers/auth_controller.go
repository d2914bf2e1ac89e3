package controllers

import (
	"net/http"

	"github.com/deliverydb/gin-delivery-api/internal/auth"
	"github.com/deliverydb/gin-delivery-api/internal/models"
	"github.com/gin-gonic/gin"
)

// AuthController issues operator tokens for the admin endpoints
type AuthController interface {
	// IssueToken exchanges the operator password for a bearer token
	IssueToken(ctx *gin.Context)
}

type authController struct {
	tokens *auth.TokenService
}

// NewAuthController creates a new instance of AuthController
func NewAuthController(tokens *auth.TokenService) AuthController {
	return &authController{tokens: tokens}
}

type tokenRequest struct {
	Password string `json:"password" binding:"required"`
}

// IssueToken godoc
// @Summary Issue an operator bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body tokenRequest true "Operator credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} models.APIError
// @Router /api/v1/auth/token [post]
func (c *authController) IssueToken(ctx *gin.Context) {
	var req tokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrCodeBadRequest, "invalid request body"))
		return
	}
	token, expiresIn, err := c.tokens.IssueToken(req.Password)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, models.NewAPIError(models.ErrCodeUnauthorized, "invalid credentials"))
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"token":      token,
		"type":       "Bearer",
		"expires_in": expiresIn,
	})
}
