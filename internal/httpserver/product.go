package httpserver

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"product-catalog/internal/domain"
	productrepo "product-catalog/internal/repository/product"
	productsvc "product-catalog/internal/service/product"
)

const (
	defaultListLimit   = 100
	defaultSearchLimit = 50
)

type productHandlers struct {
	svc    ProductService
	logger zerolog.Logger
}

type createProductRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=100"`
	Description string  `json:"description" binding:"required,min=1,max=500"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Category    string  `json:"category" binding:"required,min=1,max=50"`
	Inventory   *int    `json:"inventory" binding:"required,gte=0"`
	SKU         string  `json:"sku" binding:"required,min=1,max=50"`
}

// updateProductRequest carries a partial update; nil fields are left
// untouched. SKU is immutable and deliberately absent.
type updateProductRequest struct {
	Name        *string  `json:"name" binding:"omitempty,min=1,max=100"`
	Description *string  `json:"description" binding:"omitempty,min=1,max=500"`
	Price       *float64 `json:"price" binding:"omitempty,gt=0"`
	Category    *string  `json:"category" binding:"omitempty,min=1,max=50"`
	Inventory   *int     `json:"inventory" binding:"omitempty,gte=0"`
}

type productResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Inventory   int       `json:"inventory"`
	SKU         string    `json:"sku"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toProductResponse(p domain.Product) productResponse {
	return productResponse{
		ID:          p.ID.Hex(),
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		Inventory:   p.Inventory,
		SKU:         p.SKU,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toProductResponses(products []domain.Product) []productResponse {
	out := make([]productResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out
}

func (h *productHandlers) list(c *gin.Context) {
	minPrice, err := queryFloat(c, "min_price")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
		return
	}
	maxPrice, err := queryFloat(c, "max_price")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
		return
	}
	skip, limit, err := pagination(c, defaultListLimit)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	products, err := h.svc.List(c.Request.Context(), productrepo.ListFilter{
		Category: c.Query("category"),
		MinPrice: minPrice,
		MaxPrice: maxPrice,
		Skip:     skip,
		Limit:    limit,
	})
	if err != nil {
		h.logger.Error().Err(err).Str("operation", "list_products").Msg("error retrieving products")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, toProductResponses(products))
}

func (h *productHandlers) get(c *gin.Context) {
	id := c.Param("id")

	product, err := h.svc.Get(c.Request.Context(), id)
	switch {
	case errors.Is(err, domain.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
	case err != nil:
		h.logger.Error().Err(err).Str("operation", "get_product").Str("product_id", id).Msg("error retrieving product")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	default:
		c.JSON(http.StatusOK, toProductResponse(*product))
	}
}

func (h *productHandlers) create(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, bindingErrorPayload(err))
		return
	}

	product, err := h.svc.Create(c.Request.Context(), productsvc.CreateInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Inventory:   *req.Inventory,
		SKU:         req.SKU,
	})
	switch {
	case errors.Is(err, domain.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "Product with this SKU already exists"})
	case err != nil:
		h.logger.Error().Err(err).Str("operation", "create_product").Str("sku", req.SKU).Msg("error creating product")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	default:
		c.JSON(http.StatusCreated, toProductResponse(*product))
	}
}

func (h *productHandlers) update(c *gin.Context) {
	id := c.Param("id")

	var req updateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, bindingErrorPayload(err))
		return
	}

	product, err := h.svc.Update(c.Request.Context(), id, productsvc.UpdateInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Inventory:   req.Inventory,
	})
	switch {
	case errors.Is(err, domain.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
	case errors.Is(err, domain.ErrEmptyUpdate):
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
	case errors.Is(err, domain.ErrNoChanges):
		c.JSON(http.StatusBadRequest, gin.H{"error": "No changes made"})
	case err != nil:
		h.logger.Error().Err(err).Str("operation", "update_product").Str("product_id", id).Msg("error updating product")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	default:
		c.JSON(http.StatusOK, toProductResponse(*product))
	}
}

func (h *productHandlers) delete(c *gin.Context) {
	id := c.Param("id")

	err := h.svc.Delete(c.Request.Context(), id)
	switch {
	case errors.Is(err, domain.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
	case err != nil:
		h.logger.Error().Err(err).Str("operation", "delete_product").Str("product_id", id).Msg("error deleting product")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}

func (h *productHandlers) search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing search query"})
		return
	}
	skip, limit, err := pagination(c, defaultSearchLimit)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	products, err := h.svc.Search(c.Request.Context(), q, skip, limit)
	if err != nil {
		h.logger.Error().Err(err).Str("operation", "search_products").Str("query", q).Msg("error searching products")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, toProductResponses(products))
}

func queryFloat(c *gin.Context, name string) (*float64, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func pagination(c *gin.Context, defaultLimit int64) (skip, limit int64, err error) {
	skip, err = queryInt64(c, "skip", 0)
	if err != nil {
		return 0, 0, errors.New("Invalid skip")
	}
	limit, err = queryInt64(c, "limit", defaultLimit)
	if err != nil {
		return 0, 0, errors.New("Invalid limit")
	}
	return skip, limit, nil
}

func queryInt64(c *gin.Context, name string, def int64) (int64, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	return strconv.ParseInt(raw, 10, 64)
}

func bindingErrorPayload(err error) gin.H {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]gin.H, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, gin.H{
				"field": strings.ToLower(fe.Field()),
				"rule":  fe.Tag(),
			})
		}
		return gin.H{"error": "Validation failed", "details": details}
	}
	return gin.H{"error": err.Error()}
}
