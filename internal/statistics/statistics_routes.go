package statistics

import (
	"go-hrm/internal/middleware"
	"go-hrm/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	authMiddleware gin.HandlerFunc,
	rbacService rbac.Service,
) {
	canRead := middleware.RBACAuthorize(rbacService, rbac.ResourceStatistics, rbac.ActionRead)

	r.GET("/users/statistics", authMiddleware, canRead, h.UserStatistics)
	r.GET("/departments/stats", authMiddleware, canRead, h.DepartmentStats)
}
