package response

import "chromaprint/internal/domain/entities"

type EstimateResponse struct {
	EstimatedCost float64             `json:"estimated_cost"`
	Breakdown     *entities.Breakdown `json:"breakdown,omitempty"`
}

func FromEstimate(r entities.EstimateResult) EstimateResponse {
	return EstimateResponse{
		EstimatedCost: r.EstimatedCost,
		Breakdown:     r.Breakdown,
	}
}

type QuoteResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

func FromOutcome(o entities.QuoteOutcome) QuoteResponse {
	return QuoteResponse{OK: o.OK, Message: o.Message}
}

type LoginResponse struct {
	Token string        `json:"token"`
	User  entities.User `json:"user"`
}

type ProductListResponse struct {
	Items []entities.Product `json:"items"`
}

type OrderListResponse struct {
	Items []entities.Order `json:"items"`
}
