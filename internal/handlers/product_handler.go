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

type ProductHandler struct{}

func NewProductHandler() *ProductHandler {
	return &ProductHandler{}
}

// --------- Requests ---------

type CreateProductRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Category    string   `json:"category" binding:"required"`
	Price       *float64 `json:"price" binding:"required"`
}

// --------- Handlers ---------

// List returns the catalog, optionally filtered by exact category and
// sorted by price. Sort values other than asc/desc are ignored. An empty
// result after filtering is a 404, matching the wire contract.
func (h *ProductHandler) List(c *gin.Context) {
	q := middleware.Tx(c)

	if category := c.Query("category"); category != "" {
		q = q.Where("category = ?", category)
	}

	switch c.Query("sort_price") {
	case "asc":
		q = q.Order("price ASC")
	case "desc":
		q = q.Order("price DESC")
	}

	var products []models.Product
	if err := q.Find(&products).Error; err != nil {
		httperr.Internal(c, "failed_to_list_products", "could not list products")
		return
	}

	if len(products) == 0 {
		httperr.NotFound(c, "products_not_found", "Products not found")
		return
	}

	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) Get(c *gin.Context) {
	db := middleware.Tx(c)

	var product models.Product
	if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "product_not_found", "Product not found")
			return
		}
		httperr.Internal(c, "failed_to_get_product", "could not get product")
		return
	}

	c.JSON(http.StatusOK, product)
}

// Create inserts a product and responds with the whole collection rather
// than the new record, which is what existing clients expect.
func (h *ProductHandler) Create(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	db := middleware.Tx(c)

	product := models.Product{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       *req.Price,
	}

	if err := db.Create(&product).Error; err != nil {
		httperr.Internal(c, "failed_to_create_product", "could not create product")
		return
	}

	var products []models.Product
	if err := db.Find(&products).Error; err != nil {
		httperr.Internal(c, "failed_to_list_products", "could not list products")
		return
	}

	c.JSON(http.StatusOK, products)
}
