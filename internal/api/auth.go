package api

import (
	"net/http"

	"sms-dashboard/internal/dashboard"
	"sms-dashboard/internal/gateway"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	Client *gateway.Client
}

func NewAuthHandler(client *gateway.Client) *AuthHandler {
	return &AuthHandler{Client: client}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var form dashboard.LoginForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := dashboard.Validate(form); err != nil {
		respondError(c, err, h.Client.LoginRoute)
		return
	}

	resp, err := h.Client.Login(c.Request.Context(), form.Email, form.Password)
	if err != nil {
		respondError(c, err, h.Client.LoginRoute)
		return
	}

	c.JSON(http.StatusOK, gin.H{"authenticated": true, "token_type": resp.TokenType})
}

func (h *AuthHandler) Register(c *gin.Context) {
	var form dashboard.RegisterForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := dashboard.Validate(form); err != nil {
		respondError(c, err, h.Client.LoginRoute)
		return
	}

	resp, err := h.Client.Register(c.Request.Context(), form.Email, form.Password)
	if err != nil {
		respondError(c, err, h.Client.LoginRoute)
		return
	}
	if resp == nil {
		resp = map[string]any{}
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.Client.Logout()
	c.JSON(http.StatusOK, gin.H{"status": "Logged out", "redirect": h.Client.LoginRoute})
}

// Session reports whether a token is held, without contacting the backend.
func (h *AuthHandler) Session(c *gin.Context) {
	_, ok, err := h.Client.Session.Get()
	if err != nil {
		respondError(c, err, h.Client.LoginRoute)
		return
	}
	c.JSON(http.StatusOK, gin.H{"authenticated": ok})
}
