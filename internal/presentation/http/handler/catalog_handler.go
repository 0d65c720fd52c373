package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/chococroco/orders-api/internal/application/service"
	"github.com/chococroco/orders-api/internal/presentation/http/dto/request"
	"github.com/chococroco/orders-api/internal/presentation/http/dto/response"
)

// CatalogHandler handles category, size and product HTTP requests
type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// --- Categories ---

// ListCategories handles listing all categories
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.catalogService.ListCategories(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Categories retrieved successfully", categories)
}

// CreateCategory handles creating a category
func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req request.NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	category, err := h.catalogService.CreateCategory(c.Request.Context(), req.Name)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Category created successfully", category)
}

// UpdateCategory handles renaming a category
func (h *CatalogHandler) UpdateCategory(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req request.NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	category, err := h.catalogService.UpdateCategory(c.Request.Context(), id, req.Name)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Category updated successfully", category)
}

// DeleteCategory handles deleting a category
func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.catalogService.DeleteCategory(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// --- Sizes ---

// ListSizes handles listing all sizes
func (h *CatalogHandler) ListSizes(c *gin.Context) {
	sizes, err := h.catalogService.ListSizes(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Sizes retrieved successfully", sizes)
}

// CreateSize handles creating a size
func (h *CatalogHandler) CreateSize(c *gin.Context) {
	var req request.NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	size, err := h.catalogService.CreateSize(c.Request.Context(), req.Name)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Size created successfully", size)
}

// UpdateSize handles renaming a size
func (h *CatalogHandler) UpdateSize(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req request.NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	size, err := h.catalogService.UpdateSize(c.Request.Context(), id, req.Name)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Size updated successfully", size)
}

// DeleteSize handles deleting a size
func (h *CatalogHandler) DeleteSize(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.catalogService.DeleteSize(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// --- Products ---

// ListProducts handles listing products with pagination and name search
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	params := paginationParams(c)
	search := c.Query("search")

	result, err := h.catalogService.ListProducts(c.Request.Context(), params, search)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Products retrieved successfully", result)
}

// GetProduct handles retrieving a single product
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	product, err := h.catalogService.GetProduct(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Product retrieved successfully", product)
}

// CreateProduct handles creating a product
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var req request.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	product, err := h.catalogService.CreateProduct(c.Request.Context(), &service.CreateProductInput{
		Name:       req.Name,
		CategoryID: req.CategoryID,
		SizeID:     req.SizeID,
		CostPrice:  req.CostPrice,
		SellPrice:  req.SellPrice,
		Image:      req.Image,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Product created successfully", product)
}

// UpdateProduct handles updating a product
func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req request.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	product, err := h.catalogService.UpdateProduct(c.Request.Context(), &service.UpdateProductInput{
		ID:            id,
		Name:          req.Name,
		CategoryID:    req.CategoryID,
		ClearCategory: req.ClearCategory,
		SizeID:        req.SizeID,
		ClearSize:     req.ClearSize,
		CostPrice:     req.CostPrice,
		SellPrice:     req.SellPrice,
		Image:         req.Image,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Product updated successfully", product)
}

// DeleteProduct handles deleting a product and its dependent orders
func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.catalogService.DeleteProduct(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
