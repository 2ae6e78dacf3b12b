package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/telconl/catalog-api/internal/auth"
	"github.com/telconl/catalog-api/internal/config"
	"github.com/telconl/catalog-api/internal/httperr"
	"github.com/telconl/catalog-api/internal/middleware"
	"github.com/telconl/catalog-api/internal/models"
)

type AuthHandler struct {
	config *config.Config
	hasher *auth.PasswordHasher
	tokens *auth.TokenService
}

func NewAuthHandler(cfg *config.Config, hasher *auth.PasswordHasher, tokens *auth.TokenService) *AuthHandler {
	return &AuthHandler{config: cfg, hasher: hasher, tokens: tokens}
}

// --------- Requests ---------

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// --------- Handlers ---------

// Register creates a login. When the username equals a customer's phone
// number the new user is linked to that customer; otherwise it stays
// unlinked (the admin account works this way).
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	db := middleware.Tx(c)

	var count int64
	db.Model(&models.User{}).Where("username = ?", req.Username).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "user_already_exists", "User with this username already exists")
		return
	}

	hashed, err := h.hasher.Hash(req.Password)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "could not hash password")
		return
	}

	user := models.User{
		Username:       req.Username,
		HashedPassword: hashed,
	}

	var customer models.Customer
	err = db.Where("phone_number = ?", req.Username).First(&customer).Error
	switch {
	case err == nil:
		user.CustomerID = &customer.ID
	case errors.Is(err, gorm.ErrRecordNotFound):
		// no matching customer, user stays unlinked
	default:
		httperr.Internal(c, "internal_error", "could not look up customer")
		return
	}

	if err := db.Create(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_create_user", "could not create user")
		return
	}

	c.Status(http.StatusCreated)
}

// Login exchanges form-encoded credentials for a bearer token. Unknown
// username and wrong password produce the same response.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	db := middleware.Tx(c)

	var user models.User
	if err := db.Where("username = ?", req.Username).First(&user).Error; err != nil {
		httperr.CouldNotValidateUser(c)
		return
	}

	if !h.hasher.Verify(req.Password, user.HashedPassword) {
		httperr.CouldNotValidateUser(c)
		return
	}

	token, err := h.tokens.Issue(user.Username, user.ID, h.config.TokenTTL)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "could not generate token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
	})
}

// Check echoes the authenticated username.
func (h *AuthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, middleware.Username(c))
}
