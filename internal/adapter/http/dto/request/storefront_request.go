package request

import "chromaprint/internal/domain/entities"

// EstimateRequest is the job payload accepted by POST /api/estimate. Binding
// tags enforce the declared ranges before the pricing engine runs.
type EstimateRequest struct {
	LengthMM   float64 `json:"length_mm" binding:"required,gt=0"`
	WidthMM    float64 `json:"width_mm" binding:"required,gt=0"`
	HeightMM   float64 `json:"height_mm" binding:"required,gt=0"`
	Material   string  `json:"material" binding:"required,oneof=PLA ABS Resin Nylon PETG"`
	Finish     string  `json:"finish" binding:"required,oneof=Standard Smooth High-Gloss Matte"`
	Complexity float64 `json:"complexity" binding:"required,gte=0.5,lte=2"`
	Infill     float64 `json:"infill" binding:"required,gte=0.05,lte=1"`
}

func (r EstimateRequest) ToInput() entities.EstimateInput {
	return entities.EstimateInput{
		LengthMM:   r.LengthMM,
		WidthMM:    r.WidthMM,
		HeightMM:   r.HeightMM,
		Material:   entities.Material(r.Material),
		Finish:     entities.Finish(r.Finish),
		Complexity: r.Complexity,
		Infill:     r.Infill,
	}
}

// QuoteRequest is the payload accepted by POST /api/quote.
type QuoteRequest struct {
	Email    string                  `json:"email" binding:"required,email"`
	Name     string                  `json:"name" binding:"required"`
	Estimate entities.EstimateResult `json:"estimate" binding:"required"`
	Notes    string                  `json:"notes"`
}

// LoginRequest is the payload accepted by POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
