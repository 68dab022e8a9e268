package rbac

import (
	"net/http"

	"go-hrm/internal/middleware"
	"go-hrm/internal/shared/apperror"
	"go-hrm/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("rbac.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.handler")
	}
	return &Handler{service: service, logger: l}
}

// MyPermissions lists what the caller's role may do, so clients can hide
// actions that would be rejected anyway.
func (h *Handler) MyPermissions(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		e := apperror.ErrUnauthorized
		response.Error(c, e.HTTPStatus, e.Code, e.Message, nil)
		return
	}

	perms, err := h.service.PermissionsFor(identity.Role)
	if err != nil {
		h.logger.Error("list permissions failed", zap.String("role", identity.Role), zap.Error(err))
		e := apperror.ErrInternal
		response.Error(c, e.HTTPStatus, e.Code, e.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, PermissionsResponse{
		Role:        identity.Role,
		Permissions: perms,
	}, nil)
}
