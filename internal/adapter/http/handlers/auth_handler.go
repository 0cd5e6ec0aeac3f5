package handlers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"chromaprint/internal/adapter/http/dto/request"
	"chromaprint/internal/adapter/http/dto/response"
	"chromaprint/internal/domain/entities"
	"chromaprint/internal/infrastructure/store"
	"chromaprint/pkg"
)

// Any failed login gets this uniform answer; the payload never says which
// credential was wrong.
var errLoginFailed = pkg.NewDomainErrorSimple("LOGIN_FAILED", "Login failed", http.StatusUnauthorized)

// AuthHandler implements the demo login. It accepts exactly one credential
// pair, configured by env.
//
// Supported env vars:
//   - DEMO_EMAIL (default: demo@chromaprint.in)
//   - DEMO_PASSWORD (default: printer123)
//   - DEMO_NAME (default: Chroma Guest)
type AuthHandler struct {
	store    *store.Memory
	email    string
	password string
	name     string
}

func NewAuthHandler(mem *store.Memory) *AuthHandler {
	return &AuthHandler{
		store:    mem,
		email:    getenvDefault("DEMO_EMAIL", "demo@chromaprint.in"),
		password: getenvDefault("DEMO_PASSWORD", "printer123"),
		name:     getenvDefault("DEMO_NAME", "Chroma Guest"),
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errLoginFailed.HTTPStatus, errLoginFailed.ToHTTPError())
		return
	}

	if payload.Email != h.email || payload.Password != h.password {
		c.JSON(errLoginFailed.HTTPStatus, errLoginFailed.ToHTTPError())
		return
	}

	user := entities.User{Email: h.email, Name: h.name}
	token := h.store.IssueToken(user)
	c.JSON(http.StatusOK, response.LoginResponse{Token: token, User: user})
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
