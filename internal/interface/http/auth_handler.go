package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/minseoh/task-tracker/internal/application"
	"github.com/minseoh/task-tracker/pkg/response"
	"github.com/minseoh/task-tracker/pkg/validation"
)

type AuthHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	Username string `json:"username" binding:"required,username"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
}

type verifyEmailRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	user, err := h.Svc.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrEmailTaken), errors.Is(err, application.ErrUsernameTaken):
			response.Error(c, http.StatusConflict, err.Error(), nil)
		case errors.Is(err, application.ErrMailDispatch):
			response.Error(c, http.StatusInternalServerError, "failed to send verification email", nil)
		default:
			h.Logger.WithError(err).WithField("email", req.Email).Error("registration failed")
			response.Error(c, http.StatusInternalServerError, "server error", nil)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": user},
		"verification code sent; please check your email", nil)
}

// VerifyEmail POST /api/auth/verify-email
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	var req verifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	token, user, err := h.Svc.VerifyEmail(c.Request.Context(), req.Email, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrAccountNotFound):
			response.Error(c, http.StatusNotFound, "no account for that email", nil)
		case errors.Is(err, application.ErrAlreadyVerified),
			errors.Is(err, application.ErrNoPendingCode),
			errors.Is(err, application.ErrCodeExpired),
			errors.Is(err, application.ErrCodeInvalid):
			response.Error(c, http.StatusBadRequest, err.Error(), nil)
		default:
			h.Logger.WithError(err).WithField("email", req.Email).Error("email verification failed")
			response.Error(c, http.StatusInternalServerError, "server error", nil)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"token": token, "user": user}, "email verified", nil)
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	token, user, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrInvalidCredentials):
			response.Error(c, http.StatusUnauthorized, "invalid email or password", nil)
		case errors.Is(err, application.ErrEmailNotVerified):
			response.Error(c, http.StatusForbidden, "email not verified", nil)
		default:
			h.Logger.WithError(err).WithField("email", req.Email).Error("login failed")
			response.Error(c, http.StatusInternalServerError, "server error", nil)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"token": token, "user": user}, "login successful", nil)
}
