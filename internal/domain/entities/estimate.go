package entities

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var ErrInvalidEstimateInput = errors.New("invalid estimate input")

// Material is the print material for a custom job.
type Material string

const (
	MaterialPLA   Material = "PLA"
	MaterialABS   Material = "ABS"
	MaterialResin Material = "Resin"
	MaterialNylon Material = "Nylon"
	MaterialPETG  Material = "PETG"
)

// Finish is the surface finish applied after printing.
type Finish string

const (
	FinishStandard  Finish = "Standard"
	FinishSmooth    Finish = "Smooth"
	FinishHighGloss Finish = "High-Gloss"
	FinishMatte     Finish = "Matte"
)

// Declared ranges for the slider-style inputs.
const (
	ComplexityMin = 0.5
	ComplexityMax = 2.0
	InfillMin     = 0.05
	InfillMax     = 1.0
)

var validate = validator.New()

// EstimateInput is the full parameter set for one custom print job.
//
// Field names on the wire must match the backing service contract exactly.
// Values are validated before any request is issued; an out-of-range input
// never leaves the client.
type EstimateInput struct {
	LengthMM   float64  `json:"length_mm" validate:"gt=0"`
	WidthMM    float64  `json:"width_mm" validate:"gt=0"`
	HeightMM   float64  `json:"height_mm" validate:"gt=0"`
	Material   Material `json:"material" validate:"oneof=PLA ABS Resin Nylon PETG"`
	Finish     Finish   `json:"finish" validate:"oneof=Standard Smooth High-Gloss Matte"`
	Complexity float64  `json:"complexity" validate:"gte=0.5,lte=2"`
	Infill     float64  `json:"infill" validate:"gte=0.05,lte=1"`
}

// DefaultEstimateInput returns the storefront's starting job parameters.
func DefaultEstimateInput() EstimateInput {
	return EstimateInput{
		LengthMM:   80,
		WidthMM:    60,
		HeightMM:   40,
		Material:   MaterialPLA,
		Finish:     FinishStandard,
		Complexity: 1.0,
		Infill:     0.2,
	}
}

func (i EstimateInput) Validate() error {
	if err := validate.Struct(i); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidEstimateInput, err)
	}
	return nil
}

// Breakdown itemizes the components of an estimate's total. Every member is
// optional; the pricing service may omit any of them.
type Breakdown struct {
	VolumeCM3             *float64 `json:"volume_cm3,omitempty"`
	MaterialRateINRPerCM3 *float64 `json:"material_rate_inr_per_cm3,omitempty"`
	MachineTimeHours      *float64 `json:"machine_time_hours,omitempty"`
	FinishMultiplier      *float64 `json:"finish_multiplier,omitempty"`
}

// EstimateResult is a priced projection for one job. It is immutable once
// received; a newer estimate supersedes it rather than mutating it. A quote
// submission outcome is attached alongside the figures, never in their place.
type EstimateResult struct {
	EstimatedCost float64       `json:"estimated_cost"`
	Breakdown     *Breakdown    `json:"breakdown,omitempty"`
	Submission    *QuoteOutcome `json:"submission,omitempty"`
}
