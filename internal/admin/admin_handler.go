package admin

import (
	"fmt"
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
	l := zap.L().Named("admin.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("admin.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("admin request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) List(c *gin.Context) {
	resp, err := h.service.ListAdmins(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Create(c *gin.Context) {
	actor, ok := middleware.CurrentIdentity(c)
	if !ok {
		h.writeServiceError(c, apperror.ErrUnauthorized)
		return
	}

	var req CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	summary, err := h.service.CreateAdmin(c.Request.Context(), actor, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, CreateAdminResponse{Success: true, User: summary}, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	actor, ok := middleware.CurrentIdentity(c)
	if !ok {
		h.writeServiceError(c, apperror.ErrUnauthorized)
		return
	}

	if err := h.service.DeleteAdmin(c.Request.Context(), actor, c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, MessageResponse{
		Success: true,
		Message: "Admin deleted successfully",
	}, nil)
}

func (h *Handler) ChangeUserPassword(c *gin.Context) {
	actor, ok := middleware.CurrentIdentity(c)
	if !ok {
		h.writeServiceError(c, apperror.ErrUnauthorized)
		return
	}

	var req ChangeUserPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	username, err := h.service.ChangeUserPassword(c.Request.Context(), actor, c.Param("id"), req.NewPassword)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, MessageResponse{
		Success: true,
		Message: fmt.Sprintf("Password changed for user %s", username),
	}, nil)
}
