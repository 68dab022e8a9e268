package department

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
	departments := r.Group("/departments")

	departments.Use(authMiddleware)

	{
		departments.GET("", middleware.RBACAuthorize(rbacService, rbac.ResourceDepartment, rbac.ActionRead), h.GetAll)
		departments.POST("", middleware.RBACAuthorize(rbacService, rbac.ResourceDepartment, rbac.ActionCreate), h.Create)
		departments.GET("/:id", middleware.RBACAuthorize(rbacService, rbac.ResourceDepartment, rbac.ActionRead), h.GetById)
		departments.PUT("/:id", middleware.RBACAuthorize(rbacService, rbac.ResourceDepartment, rbac.ActionUpdate), h.Update)
		departments.DELETE("/:id", middleware.RBACAuthorize(rbacService, rbac.ResourceDepartment, rbac.ActionDelete), h.Delete)
	}
}
