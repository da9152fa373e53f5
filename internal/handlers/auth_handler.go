package handlers

import (
	"net/http"

	"fitlife-service/internal/domain/auth"
	"fitlife-service/internal/middleware"
	"fitlife-service/internal/pkg/response"
	authservice "fitlife-service/internal/service/auth"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *authservice.AuthService
}

func NewAuthHandler(authService *authservice.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req auth.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body", err)
		return
	}

	res, err := h.authService.Signup(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err, "Signup failed")
		return
	}

	response.Success(c, http.StatusCreated, "User created", res)
}

func (h *AuthHandler) Signin(c *gin.Context) {
	var req auth.SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body", err)
		return
	}

	res, err := h.authService.Signin(c.Request.Context(), &req, c.ClientIP())
	if err != nil {
		response.FromError(c, err, "Signin failed")
		return
	}

	response.Success(c, http.StatusOK, "Signed in", res)
}

// Me returns the profile behind the bearer token.
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		response.Unauthorized(c, "No token provided")
		return
	}

	user, err := h.authService.GetUser(c.Request.Context(), userID)
	if err != nil {
		response.FromError(c, err, "User not found")
		return
	}

	response.Success(c, http.StatusOK, "OK", user)
}
