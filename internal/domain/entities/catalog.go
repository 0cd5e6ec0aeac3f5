package entities

import "time"

// Product is a catalog printer. Display fields are opaque to the workflow
// core; it only carries them between the catalog service and the cart.
type Product struct {
	Title    string   `json:"title"`
	Brand    string   `json:"brand"`
	PriceINR float64  `json:"price_inr"`
	Image    string   `json:"image,omitempty"`
	Features []string `json:"features,omitempty"`
}

// Order is the account service's read model of a submitted quote. The client
// only reads it, keyed by the authenticated user's email.
type Order struct {
	CreatedAt time.Time      `json:"created_at"`
	Estimate  EstimateResult `json:"estimate"`
}
