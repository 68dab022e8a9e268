package auth

import (
	"net/http"
	"time"

	"go-hrm/internal/middleware"
	"go-hrm/internal/shared/apperror"
	platform "go-hrm/internal/shared/request"
	"go-hrm/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service      Service
	secureCookie bool
	logger       *zap.Logger
}

func NewHandler(service Service, secureCookie bool, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("auth.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.handler")
	}
	return &Handler{service: service, secureCookie: secureCookie, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("auth request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) setAccessCookie(c *gin.Context, token string, maxAge int) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     middleware.AccessTokenCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	result, err := h.service.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	clientType := platform.ResolveClientType(c.GetHeader("X-Client-Type"), c.GetHeader("User-Agent"))
	if platform.IsWebClient(clientType) {
		h.setAccessCookie(c, result.AccessToken, int(time.Until(result.ExpiresAt).Seconds()))
	}

	response.Success(c, http.StatusOK, LoginResponse{
		Success:     true,
		User:        result.Account,
		AccessToken: result.AccessToken,
		ExpiresAt:   result.ExpiresAt.UTC().Format(time.RFC3339),
	}, nil)
}

// Logout always succeeds for the client. A revoke failure is only logged.
func (h *Handler) Logout(c *gin.Context) {
	if err := h.service.Logout(c.Request.Context(), middleware.ExtractToken(c)); err != nil {
		h.logger.Error("logout failed", zap.Error(err))
	}

	h.setAccessCookie(c, "", -1)
	response.Success(c, http.StatusOK, MessageResponse{
		Success: true,
		Message: "Logged out successfully",
	}, nil)
}

func (h *Handler) Me(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		h.writeServiceError(c, apperror.ErrUnauthorized)
		return
	}

	resp, err := h.service.Me(c.Request.Context(), identity)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ChangePassword(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		h.writeServiceError(c, apperror.ErrUnauthorized)
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	if err := h.service.ChangeOwnPassword(c.Request.Context(), identity, req.OldPassword, req.NewPassword); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, MessageResponse{
		Success: true,
		Message: "Password changed successfully",
	}, nil)
}
