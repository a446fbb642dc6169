package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/models"
	"portfolio-backend/internal/services"
)

type CategoriesHandler struct {
	svc *services.PortfolioService
}

func NewCategoriesHandler(svc *services.PortfolioService) *CategoriesHandler {
	return &CategoriesHandler{svc: svc}
}

// ListCategories returns all categories ordered by name.
func (h *CategoriesHandler) ListCategories(c *gin.Context) {
	categories, err := h.svc.ListCategories()
	if err != nil {
		writeError(c, err)
		return
	}

	responses := make([]models.CategoryResponse, 0, len(categories))
	for _, cat := range categories {
		responses = append(responses, models.CategoryResponse{
			ID:        cat.ID,
			Name:      cat.Name,
			CreatedAt: cat.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, responses)
}

// CreateCategory adds a category; a duplicate name is a 400 conflict.
func (h *CategoriesHandler) CreateCategory(c *gin.Context) {
	var req models.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Category name required"})
		return
	}

	category, err := h.svc.CreateCategory(req.Name)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.CreateCategoryResponse{
		Message: "Category created successfully",
		Name:    category.Name,
	})
}
