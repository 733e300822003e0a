package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/claimstack/expense_claims_app/internal/apperrors"
)

// LastErrorProvider is the read-only accessor to the gateway's retained
// diagnostic, consumed by operator-facing surfaces.
type LastErrorProvider interface {
	LastError() *apperrors.Diagnostic
}

// DiagnosticsHandler exposes the most recent classified read failure.
type DiagnosticsHandler struct {
	provider LastErrorProvider
}

func NewDiagnosticsHandler(p LastErrorProvider) *DiagnosticsHandler {
	return &DiagnosticsHandler{provider: p}
}

func RegisterDiagnosticsRoutes(rg *gin.RouterGroup, p LastErrorProvider) {
	h := NewDiagnosticsHandler(p)
	rg.GET("/diagnostics/last-error", h.getLastError)
}

func (h *DiagnosticsHandler) getLastError(c *gin.Context) {
	diag := h.provider.LastError()
	if diag == nil {
		c.JSON(http.StatusOK, gin.H{"lastError": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"lastError": diag, "message": diag.String()})
}
