package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/telconl/catalog-api/internal/httperr"
	"github.com/telconl/catalog-api/internal/middleware"
	"github.com/telconl/catalog-api/internal/models"
)

type CustomerHandler struct{}

func NewCustomerHandler() *CustomerHandler {
	return &CustomerHandler{}
}

// --------- Requests / Responses ---------

type UpdateCustomerRequest struct {
	Name    *string `json:"name,omitempty"`
	Address *string `json:"address,omitempty"`
}

// CustomerResponse narrows birth_date to a plain date on the wire.
type CustomerResponse struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phone_number"`
	BirthDate   string `json:"birth_date"`
	ID          uint   `json:"id"`
}

func newCustomerResponse(customer models.Customer) CustomerResponse {
	return CustomerResponse{
		Name:        customer.Name,
		Address:     customer.Address,
		PhoneNumber: customer.PhoneNumber,
		BirthDate:   customer.BirthDate.Format("2006-01-02"),
		ID:          customer.ID,
	}
}

// --------- Handlers ---------

// GetMe resolves the caller's username to the customer whose phone number
// matches it. Accounts without a customer (admin) get a 404.
func (h *CustomerHandler) GetMe(c *gin.Context) {
	customer, ok := h.currentCustomer(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, newCustomerResponse(customer))
}

// UpdateMe patches name and address only; absent fields keep their value.
func (h *CustomerHandler) UpdateMe(c *gin.Context) {
	customer, ok := h.currentCustomer(c)
	if !ok {
		return
	}

	var req UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.Name != nil {
		customer.Name = *req.Name
	}
	if req.Address != nil {
		customer.Address = *req.Address
	}

	if err := middleware.Tx(c).Save(&customer).Error; err != nil {
		httperr.Internal(c, "failed_to_update_customer", "could not update customer")
		return
	}

	c.JSON(http.StatusOK, newCustomerResponse(customer))
}

func (h *CustomerHandler) currentCustomer(c *gin.Context) (models.Customer, bool) {
	db := middleware.Tx(c)

	var customer models.Customer
	err := db.Where("phone_number = ?", middleware.Username(c)).First(&customer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "customer_not_found", "Customer not found")
		} else {
			httperr.Internal(c, "failed_to_get_customer", "could not get customer")
		}
		return models.Customer{}, false
	}

	return customer, true
}
