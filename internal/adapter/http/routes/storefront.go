package routes

import (
	"github.com/gin-gonic/gin"

	"chromaprint/internal/adapter/http/handlers"
)

const (
	PathPrinters      = "/printers"
	PathEstimate      = "/estimate"
	PathQuote         = "/quote"
	PathLogin         = "/auth/login"
	PathAccountOrders = "/account/orders"
)

func addStorefrontRoutes(
	rg *gin.RouterGroup,
	catalogHandler *handlers.CatalogHandler,
	estimateHandler *handlers.EstimateHandler,
	quoteHandler *handlers.QuoteHandler,
	authHandler *handlers.AuthHandler,
	accountHandler *handlers.AccountHandler,
) {
	rg.GET(PathPrinters, catalogHandler.ListPrinters)
	rg.POST(PathEstimate, estimateHandler.CreateEstimate)
	rg.POST(PathQuote, quoteHandler.SubmitQuote)
	rg.POST(PathLogin, authHandler.Login)
	rg.GET(PathAccountOrders, accountHandler.ListOrders)
}
