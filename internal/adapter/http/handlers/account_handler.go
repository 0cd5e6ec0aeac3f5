package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chromaprint/internal/adapter/http/dto/response"
	"chromaprint/internal/infrastructure/store"
	"chromaprint/pkg"
)

var errMissingEmail = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Missing email", http.StatusBadRequest)

// AccountHandler serves the order history read model.
type AccountHandler struct {
	store *store.Memory
}

func NewAccountHandler(mem *store.Memory) *AccountHandler {
	return &AccountHandler{store: mem}
}

func (h *AccountHandler) ListOrders(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(errMissingEmail.HTTPStatus, errMissingEmail.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OrderListResponse{Items: h.store.OrdersByEmail(email)})
}
