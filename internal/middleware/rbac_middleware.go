package middleware

import (
	"go-hrm/internal/domain"
	"go-hrm/internal/shared/apperror"
	"go-hrm/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RBACService is satisfied by rbac.Service; declared here to avoid an
// import cycle.
type RBACService interface {
	Enforce(req domain.EnforceRequest) (bool, error)
}

func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := CurrentIdentity(c)
		if !ok {
			e := apperror.ErrUnauthorized
			response.Error(c, e.HTTPStatus, e.Code, e.Message, nil)
			c.Abort()
			return
		}

		allowed, err := service.Enforce(domain.EnforceRequest{
			Role:     identity.Role,
			Resource: resource,
			Action:   action,
		})
		if err != nil {
			zap.L().Named("middleware.rbac").Error("enforce failed", zap.Error(err))
			e := apperror.ErrInternal
			response.Error(c, e.HTTPStatus, e.Code, e.Message, nil)
			c.Abort()
			return
		}

		if !allowed {
			e := apperror.ErrForbidden
			response.Error(c, e.HTTPStatus, e.Code, e.Message, gin.H{"required": resource + ":" + action})
			c.Abort()
			return
		}
		c.Next()
	}
}
