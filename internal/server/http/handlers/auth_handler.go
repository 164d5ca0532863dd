package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/agronhq/agron/internal/domain/errors"
	"github.com/agronhq/agron/internal/server/http/dto"
	"github.com/agronhq/agron/internal/server/http/middleware"
)

// AuthHandler processes registration and login.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Register handles POST /api/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := h.facade.Register(c.Request.Context(), req.Login, req.Password, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidCredentials), errors.Is(err, domainErrors.ErrInvalidRole):
			writeError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			writeError(c, http.StatusConflict, err.Error())
		default:
			writeError(c, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	middleware.SetAuthCookie(c, token)
	c.Status(http.StatusOK)
}

// Login handles POST /api/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := h.facade.Authenticate(c.Request.Context(), req.Login, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidCredentials):
			writeError(c, http.StatusUnauthorized, err.Error())
		default:
			writeError(c, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	middleware.SetAuthCookie(c, token)
	c.Status(http.StatusOK)
}
