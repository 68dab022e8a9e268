package rbac

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authMiddleware gin.HandlerFunc) {
	group := r.Group("/rbac")
	group.Use(authMiddleware)
	{
		group.GET("/permissions", handler.MyPermissions)
	}
}
