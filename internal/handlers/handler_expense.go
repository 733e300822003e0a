package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/claimstack/expense_claims_app/internal/core/services"
	"github.com/claimstack/expense_claims_app/internal/dto"
	"github.com/claimstack/expense_claims_app/internal/middleware"
)

// ExpenseHandler handles HTTP requests related to expense claims, including
// the submit/approve/reject workflow transitions.
type ExpenseHandler struct {
	expenseService *services.ExpenseService
}

func NewExpenseHandler(es *services.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: es}
}

func RegisterExpenseRoutes(rg *gin.RouterGroup, es *services.ExpenseService) {
	h := NewExpenseHandler(es)

	expenses := rg.Group("/expenses")
	{
		expenses.GET("", h.listExpenses)
		expenses.GET("/summary", h.getSummary)
		expenses.GET("/statuses", h.getStatuses)
		expenses.GET("/:id", h.getExpense)
		expenses.POST("", h.createExpense)
		expenses.PUT("/:id", h.updateExpense)
		expenses.DELETE("/:id", h.deleteExpense)
		expenses.POST("/:id/submit", h.submitExpense)
		expenses.POST("/:id/approve", h.approveExpense)
		expenses.POST("/:id/reject", h.rejectExpense)
	}
}

func (h *ExpenseHandler) listExpenses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListExpensesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListExpenses", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	result := h.expenseService.ListExpenses(c.Request.Context(), params)
	c.JSON(http.StatusOK, dto.ToReadEnvelope(result))
}

func (h *ExpenseHandler) getExpense(c *gin.Context) {
	expenseID, ok := pathID(c)
	if !ok {
		return
	}

	result := h.expenseService.GetExpenseByID(c.Request.Context(), expenseID)
	if result.Data == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Expense not found"})
		return
	}
	c.JSON(http.StatusOK, dto.ToReadEnvelope(result))
}

func (h *ExpenseHandler) createExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateExpense", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	id, err := h.expenseService.CreateExpense(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to create expense", slog.String("error", err.Error()))
		writeError(c, err)
		return
	}

	logger.Info("Expense created in Draft", slog.Int("expense_id", id))
	c.JSON(http.StatusCreated, gin.H{"expenseId": id})
}

func (h *ExpenseHandler) updateExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	expenseID, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateExpense", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.expenseService.UpdateExpense(c.Request.Context(), expenseID, req); err != nil {
		logger.Error("Failed to update expense", slog.Int("expense_id", expenseID), slog.String("error", err.Error()))
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ExpenseHandler) deleteExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	expenseID, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.expenseService.DeleteExpense(c.Request.Context(), expenseID); err != nil {
		logger.Error("Failed to delete expense", slog.Int("expense_id", expenseID), slog.String("error", err.Error()))
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ExpenseHandler) submitExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	expenseID, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.expenseService.SubmitExpense(c.Request.Context(), expenseID); err != nil {
		logger.Error("Failed to submit expense", slog.Int("expense_id", expenseID), slog.String("error", err.Error()))
		writeError(c, err)
		return
	}

	logger.Info("Expense submitted", slog.Int("expense_id", expenseID))
	c.Status(http.StatusNoContent)
}

func (h *ExpenseHandler) approveExpense(c *gin.Context) {
	h.review(c, "approve", h.expenseService.ApproveExpense)
}

func (h *ExpenseHandler) rejectExpense(c *gin.Context) {
	h.review(c, "reject", h.expenseService.RejectExpense)
}

func (h *ExpenseHandler) review(c *gin.Context, action string, apply func(ctx context.Context, expenseID int, req dto.ReviewRequest) error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	expenseID, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for review request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := apply(c.Request.Context(), expenseID, req); err != nil {
		logger.Error("Failed to "+action+" expense", slog.Int("expense_id", expenseID), slog.String("error", err.Error()))
		writeError(c, err)
		return
	}

	logger.Info("Expense reviewed", slog.String("action", action), slog.Int("expense_id", expenseID), slog.Int("reviewed_by", req.ReviewedBy))
	c.Status(http.StatusNoContent)
}

func (h *ExpenseHandler) getSummary(c *gin.Context) {
	result := h.expenseService.Summarize(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToReadEnvelope(result))
}

func (h *ExpenseHandler) getStatuses(c *gin.Context) {
	result := h.expenseService.ListStatuses(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToReadEnvelope(result))
}
