package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/claimstack/expense_claims_app/internal/core/services"
	"github.com/claimstack/expense_claims_app/internal/dto"
)

// RoleHandler serves the fixed role reference data.
type RoleHandler struct {
	roleService *services.RoleService
}

func NewRoleHandler(rs *services.RoleService) *RoleHandler {
	return &RoleHandler{roleService: rs}
}

func RegisterRoleRoutes(rg *gin.RouterGroup, rs *services.RoleService) {
	h := NewRoleHandler(rs)

	roles := rg.Group("/roles")
	{
		roles.GET("", h.listRoles)
		roles.GET("/:id", h.getRole)
	}
}

func (h *RoleHandler) listRoles(c *gin.Context) {
	result := h.roleService.ListRoles(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToReadEnvelope(result))
}

func (h *RoleHandler) getRole(c *gin.Context) {
	roleID, ok := pathID(c)
	if !ok {
		return
	}

	result := h.roleService.GetRoleByID(c.Request.Context(), roleID)
	if result.Data == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Role not found"})
		return
	}
	c.JSON(http.StatusOK, dto.ToReadEnvelope(result))
}
