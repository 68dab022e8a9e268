package admin

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
	admins := r.Group("/admins")

	admins.Use(authMiddleware, middleware.RBACAuthorize(rbacService, rbac.ResourceAdmin, rbac.ActionManage))

	{
		admins.GET("", h.List)
		admins.POST("", h.Create)
		admins.DELETE("/:id", h.Delete)
		admins.POST("/accounts/:id/change-password", h.ChangeUserPassword)
	}
}
