package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/claimstack/expense_claims_app/internal/apperrors"
)

// writeError maps service errors onto HTTP responses. Validation failures
// become 400, zero-row verdicts become 404 (the caller cannot tell "absent"
// from "wrong state" and neither can we), and anything else surfaces the
// raw failure message from the write path.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
