package handler

import (
	"github.com/gin-gonic/gin"

	"versenotes/internal/app"
	"versenotes/internal/transport/http/response"
)

type AuthHandler struct {
	authService *app.AuthService
}

type CredentialsRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func NewAuthHandler(authService *app.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req CredentialsRequest
	if !bindJSON(c, &req, app.MsgCredentialsRequired) {
		return
	}

	user, err := h.authService.Register(c.Request.Context(), app.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeError(c, err, app.MsgSignupFailed)
		return
	}

	response.OK(c, "User registered successfully", gin.H{"userId": user.ID})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req CredentialsRequest
	if !bindJSON(c, &req, app.MsgCredentialsRequired) {
		return
	}

	user, err := h.authService.Login(c.Request.Context(), app.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeError(c, err, app.MsgLoginFailed)
		return
	}

	response.OK(c, "", gin.H{
		"userId": user.ID,
		"email":  user.Email,
	})
}
