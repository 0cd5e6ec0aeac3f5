package pricing

import (
	"math"

	"chromaprint/internal/domain/entities"
)

// Engine is the stub backend's deterministic pricing model. The client never
// computes prices; this exists so the demo backend round-trips realistic
// figures with a full breakdown.
type Engine struct{}

var materialRateINRPerCM3 = map[entities.Material]float64{
	entities.MaterialPLA:   1.2,
	entities.MaterialABS:   1.5,
	entities.MaterialResin: 4.0,
	entities.MaterialNylon: 2.5,
	entities.MaterialPETG:  1.8,
}

var finishMultiplier = map[entities.Finish]float64{
	entities.FinishStandard:  1.0,
	entities.FinishSmooth:    1.2,
	entities.FinishHighGloss: 1.5,
	entities.FinishMatte:     1.1,
}

const machineRateINRPerHour = 150

// Estimate prices a job from its bounding volume, material rate, machine
// time, and finish multiplier.
func (Engine) Estimate(input entities.EstimateInput) entities.EstimateResult {
	volume := round2(input.LengthMM * input.WidthMM * input.HeightMM / 1000)
	rate := materialRateINRPerCM3[input.Material]
	mult := finishMultiplier[input.Finish]
	hours := round2(volume * input.Complexity / 128)

	materialCost := volume * rate * input.Infill
	machineCost := hours * machineRateINRPerHour
	total := math.Round((materialCost + machineCost) * mult)

	return entities.EstimateResult{
		EstimatedCost: total,
		Breakdown: &entities.Breakdown{
			VolumeCM3:             &volume,
			MaterialRateINRPerCM3: &rate,
			MachineTimeHours:      &hours,
			FinishMultiplier:      &mult,
		},
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
