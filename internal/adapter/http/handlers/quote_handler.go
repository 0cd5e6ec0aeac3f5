package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"chromaprint/internal/adapter/http/dto/request"
	"chromaprint/internal/adapter/http/dto/response"
	"chromaprint/internal/domain/entities"
	"chromaprint/internal/infrastructure/backend"
	"chromaprint/internal/infrastructure/store"
	"chromaprint/pkg"
)

var (
	errAuthRequired        = pkg.NewDomainErrorSimple("AUTH_REQUIRED", "Authentication required", http.StatusUnauthorized)
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
)

// QuoteHandler accepts quote submissions and records them as orders against
// the authenticated account.
type QuoteHandler struct {
	store *store.Memory
}

func NewQuoteHandler(mem *store.Memory) *QuoteHandler {
	return &QuoteHandler{store: mem}
}

func (h *QuoteHandler) SubmitQuote(c *gin.Context) {
	token := c.GetHeader(backend.TokenHeader)
	user, ok := h.store.UserForToken(token)
	if token == "" || !ok {
		c.JSON(errAuthRequired.HTTPStatus, errAuthRequired.ToHTTPError())
		return
	}

	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	// History is keyed by the token's identity, not the payload's email.
	h.store.AppendOrder(user.Email, entities.Order{
		CreatedAt: time.Now().UTC(),
		Estimate:  payload.Estimate,
	})

	outcome := entities.QuoteOutcome{
		OK:      true,
		Message: "Quote submitted. Our team will reach out with a final price shortly.",
	}
	c.JSON(http.StatusOK, response.FromOutcome(outcome))
}
