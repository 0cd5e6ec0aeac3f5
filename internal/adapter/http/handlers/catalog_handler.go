package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chromaprint/internal/adapter/http/dto/response"
	"chromaprint/internal/domain/entities"
)

// CatalogHandler serves the demo printer catalog. Display fields are opaque
// to the client core; it renders whatever arrives here.
type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

var demoPrinters = []entities.Product{
	{
		Title:    "Chroma One",
		Brand:    "ChromaPrint",
		PriceINR: 54999,
		Image:    "/img/chroma-one.jpg",
		Features: []string{"Skin-tone calibrated palette", "220x220x250 mm build volume", "Auto bed leveling"},
	},
	{
		Title:    "Chroma Studio XL",
		Brand:    "ChromaPrint",
		PriceINR: 89999,
		Image:    "/img/chroma-studio-xl.jpg",
		Features: []string{"Dual extruder", "300x300x400 mm build volume", "Enclosed chamber"},
	},
	{
		Title:    "Chroma Resin Pro",
		Brand:    "ChromaPrint",
		PriceINR: 129999,
		Image:    "/img/chroma-resin-pro.jpg",
		Features: []string{"8K mono LCD", "High-gloss resin finishes", "Integrated wash station"},
	},
}

func (h *CatalogHandler) ListPrinters(c *gin.Context) {
	c.JSON(http.StatusOK, response.ProductListResponse{Items: demoPrinters})
}
