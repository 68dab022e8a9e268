package user

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
	users := r.Group("/users")

	users.Use(authMiddleware)

	{
		users.GET("", middleware.RBACAuthorize(rbacService, rbac.ResourceUser, rbac.ActionRead), h.GetAll)
		users.POST("", middleware.RBACAuthorize(rbacService, rbac.ResourceUser, rbac.ActionCreate), h.Create)
		users.GET("/positions", middleware.RBACAuthorize(rbacService, rbac.ResourceUser, rbac.ActionManage), h.ListPositions)
		users.GET("/:id", middleware.RBACAuthorize(rbacService, rbac.ResourceUser, rbac.ActionRead), h.GetById)
		users.PUT("/:id", middleware.RBACAuthorize(rbacService, rbac.ResourceUser, rbac.ActionUpdate), h.Update)
		users.PATCH("/:id", middleware.RBACAuthorize(rbacService, rbac.ResourceUser, rbac.ActionUpdate), h.Patch)
		users.DELETE("/:id", middleware.RBACAuthorize(rbacService, rbac.ResourceUser, rbac.ActionDelete), h.Delete)
		users.POST("/:id/change-status", middleware.RBACAuthorize(rbacService, rbac.ResourceUser, rbac.ActionUpdate), h.ChangeStatus)
	}
}
