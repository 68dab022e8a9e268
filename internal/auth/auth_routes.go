package auth

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
	loginLimiter gin.HandlerFunc,
) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", loginLimiter, h.Login)
		auth.POST("/logout", h.Logout)
		auth.GET("/me", authMiddleware, h.Me)
		auth.POST("/change-password",
			authMiddleware,
			middleware.RBACAuthorize(rbacService, rbac.ResourceAccount, rbac.ActionManage),
			h.ChangePassword,
		)
	}
}
