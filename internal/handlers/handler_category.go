package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/claimstack/expense_claims_app/internal/core/services"
	"github.com/claimstack/expense_claims_app/internal/dto"
	"github.com/claimstack/expense_claims_app/internal/middleware"
)

// CategoryHandler handles HTTP requests related to expense categories.
type CategoryHandler struct {
	categoryService *services.CategoryService
}

func NewCategoryHandler(cs *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: cs}
}

func RegisterCategoryRoutes(rg *gin.RouterGroup, cs *services.CategoryService) {
	h := NewCategoryHandler(cs)

	categories := rg.Group("/categories")
	{
		categories.GET("", h.listCategories)
		categories.GET("/:id", h.getCategory)
		categories.POST("", h.createCategory)
		categories.PUT("/:id", h.updateCategory)
		categories.DELETE("/:id", h.deleteCategory)
	}
}

func (h *CategoryHandler) listCategories(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListCategoriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListCategories", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	result := h.categoryService.ListCategories(c.Request.Context(), params.ActiveOnly)
	c.JSON(http.StatusOK, dto.ToReadEnvelope(result))
}

func (h *CategoryHandler) getCategory(c *gin.Context) {
	categoryID, ok := pathID(c)
	if !ok {
		return
	}

	result := h.categoryService.GetCategoryByID(c.Request.Context(), categoryID)
	if result.Data == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}
	c.JSON(http.StatusOK, dto.ToReadEnvelope(result))
}

func (h *CategoryHandler) createCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCategory", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	id, err := h.categoryService.CreateCategory(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to create category", slog.String("error", err.Error()))
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"categoryId": id})
}

func (h *CategoryHandler) updateCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	categoryID, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateCategory", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.categoryService.UpdateCategory(c.Request.Context(), categoryID, req); err != nil {
		logger.Error("Failed to update category", slog.Int("category_id", categoryID), slog.String("error", err.Error()))
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CategoryHandler) deleteCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	categoryID, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.categoryService.DeleteCategory(c.Request.Context(), categoryID); err != nil {
		logger.Error("Failed to delete category", slog.Int("category_id", categoryID), slog.String("error", err.Error()))
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
