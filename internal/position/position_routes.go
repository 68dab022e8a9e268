package position

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
	positions := r.Group("/positions")

	positions.Use(authMiddleware)

	{
		positions.GET("", middleware.RBACAuthorize(rbacService, rbac.ResourcePosition, rbac.ActionRead), h.GetAll)
		positions.POST("", middleware.RBACAuthorize(rbacService, rbac.ResourcePosition, rbac.ActionCreate), h.Create)
		positions.GET("/:id", middleware.RBACAuthorize(rbacService, rbac.ResourcePosition, rbac.ActionRead), h.GetById)
		positions.PUT("/:id", middleware.RBACAuthorize(rbacService, rbac.ResourcePosition, rbac.ActionUpdate), h.Update)
		positions.DELETE("/:id", middleware.RBACAuthorize(rbacService, rbac.ResourcePosition, rbac.ActionDelete), h.Delete)
	}
}
