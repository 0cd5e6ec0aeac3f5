package routes

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"chromaprint/internal/adapter/http/handlers"
	"chromaprint/internal/infrastructure/pricing"
	"chromaprint/internal/infrastructure/store"
)

// Run starts the stub backend on STUB_PORT (default 8000, matching the
// storefront's default base URL).
func Run() {
	router := NewRouter()
	port := getenvDefault("STUB_PORT", "8000")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start the stub backend: %v", err)
	}
}

// NewRouter builds the stub backend with all storefront endpoints wired to a
// fresh in-memory store.
func NewRouter() *gin.Engine {
	router := gin.Default()
	setMiddlewares(router)

	mem := store.NewMemory()

	catalogHandler := handlers.NewCatalogHandler()
	estimateHandler := handlers.NewEstimateHandler(pricing.Engine{})
	quoteHandler := handlers.NewQuoteHandler(mem)
	authHandler := handlers.NewAuthHandler(mem)
	accountHandler := handlers.NewAccountHandler(mem)

	api := router.Group("/api")
	addStorefrontRoutes(api, catalogHandler, estimateHandler, quoteHandler, authHandler, accountHandler)

	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
