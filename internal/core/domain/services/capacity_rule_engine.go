package services

import (
	"math"

	"medidrone/internal/core/domain/model/drone"
	"medidrone/internal/core/domain/model/medication"

	"github.com/shopspring/decimal"
)

// CapacityRuleEngine decides whether medication loads fit within a drone's weight limit.
//
// Weights are summed in decimal so that loads such as 40.1 + 59.9 compare exactly
// against a limit of 100. Missing, negative or NaN weights count as zero.
//
// Example usage:
//
//	engine := NewCapacityRuleEngine()
//	if !engine.HasCapacityFor(d, 12.5) {
//	    // reject
//	}
//
//	accepted, err := engine.PlanLoad(d, candidates)
//	if errors.Is(err, ErrOverCapacity) {
//	    // nothing was attached, reject the whole request
//	}
type CapacityRuleEngine struct{}

// NewCapacityRuleEngine creates a new CapacityRuleEngine instance.
func NewCapacityRuleEngine() CapacityRuleEngine {
	return CapacityRuleEngine{}
}

// UsedCapacity sums the weight of every medication attached to d.
func (e CapacityRuleEngine) UsedCapacity(d *drone.Drone) float64 {
	return e.usedCapacity(d).InexactFloat64()
}

// AvailableCapacity returns the weight d can still take, 0 when it is already full
// or over the limit.
func (e CapacityRuleEngine) AvailableCapacity(d *drone.Drone) float64 {
	available := decimal.NewFromFloat(d.WeightLimit()).Sub(e.usedCapacity(d))
	if available.IsNegative() {
		return 0
	}
	return available.InexactFloat64()
}

// HasCapacityFor reports whether used capacity plus additionalWeight stays within the limit.
// With additionalWeight 0 it checks that the current load is consistent.
func (e CapacityRuleEngine) HasCapacityFor(d *drone.Drone, additionalWeight float64) bool {
	load := e.usedCapacity(d).Add(weightOf(additionalWeight))
	return load.LessThanOrEqual(decimal.NewFromFloat(d.WeightLimit()))
}

// ValidateLoad checks the current load against the current limit. Used after the
// limit has been changed in memory.
func (e CapacityRuleEngine) ValidateLoad(d *drone.Drone) error {
	load := e.usedCapacity(d)
	if load.GreaterThan(decimal.NewFromFloat(d.WeightLimit())) {
		return NewOverCapacityError(d.ID(), 0, d.WeightLimit(), load.InexactFloat64())
	}
	return nil
}

// ValidateReweigh checks the load of d with m counted at its current weight, in place of
// the copy already in the payload. m is counted once even if d does not carry it yet.
func (e CapacityRuleEngine) ValidateReweigh(d *drone.Drone, m *medication.Medication) error {
	load := weightOf(m.Weight())
	for _, attached := range d.Medications() {
		if attached == nil || attached.ID() == m.ID() {
			continue
		}
		load = load.Add(weightOf(attached.Weight()))
	}
	if load.GreaterThan(decimal.NewFromFloat(d.WeightLimit())) {
		return NewOverCapacityError(d.ID(), m.ID(), d.WeightLimit(), load.InexactFloat64())
	}
	return nil
}

// PlanLoad checks candidates cumulatively, in order, on top of the current load of d.
//
// Returns:
//   - the candidates that would be newly attached (nil entries, duplicates and medications
//     already on d are left out)
//   - OverCapacityError naming the first candidate whose weight pushes the running load
//     above the limit; in that case no candidate is accepted
//
// PlanLoad does not attach anything; the caller applies the returned list.
func (e CapacityRuleEngine) PlanLoad(
	d *drone.Drone,
	candidates []*medication.Medication,
) ([]*medication.Medication, error) {
	limit := decimal.NewFromFloat(d.WeightLimit())
	load := e.usedCapacity(d)

	accepted := make([]*medication.Medication, 0, len(candidates))
	seen := make(map[int64]struct{}, len(candidates))

	for _, m := range candidates {
		if m == nil || d.HasMedication(m.ID()) {
			continue
		}
		if _, ok := seen[m.ID()]; ok {
			continue
		}
		seen[m.ID()] = struct{}{}

		load = load.Add(weightOf(m.Weight()))
		if load.GreaterThan(limit) {
			return nil, NewOverCapacityError(d.ID(), m.ID(), d.WeightLimit(), load.InexactFloat64())
		}
		accepted = append(accepted, m)
	}

	return accepted, nil
}

func (e CapacityRuleEngine) usedCapacity(d *drone.Drone) decimal.Decimal {
	weights := make([]decimal.Decimal, 0, len(d.Medications()))
	for _, m := range d.Medications() {
		if m == nil {
			continue
		}
		weights = append(weights, weightOf(m.Weight()))
	}
	if len(weights) == 0 {
		return decimal.Zero
	}
	return decimal.Sum(weights[0], weights[1:]...)
}

func weightOf(w float64) decimal.Decimal {
	if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
		return decimal.Zero
	}
	return decimal.NewFromFloat(w)
}
