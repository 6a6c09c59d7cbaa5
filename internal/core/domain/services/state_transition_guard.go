package services

import (
	"medidrone/internal/core/domain/model/drone"
)

// MinLoadingBatteryCapacity is the lowest battery level, in percent, at which a drone
// may enter the Loading state.
const MinLoadingBatteryCapacity = 25

// StateTransitionGuard validates requested state changes against operational preconditions.
//
// It is a flat precondition check, not a state machine: the only gated target is
// Loading, which requires the drone's current battery to be at least
// MinLoadingBatteryCapacity. Every other valid target state is allowed from any state.
type StateTransitionGuard struct{}

// NewStateTransitionGuard creates a new StateTransitionGuard instance.
func NewStateTransitionGuard() StateTransitionGuard {
	return StateTransitionGuard{}
}

// CheckTransition returns nil when d may move to target.
//
// Returns:
//   - the state's validation error for targets outside the closed set
//   - BatteryTooLowError when target is Loading and the battery is below the threshold
func (g StateTransitionGuard) CheckTransition(d *drone.Drone, target drone.State) error {
	if err := target.Validate(); err != nil {
		return err
	}

	if target == drone.Loading && d.BatteryCapacity() < MinLoadingBatteryCapacity {
		return NewBatteryTooLowError(d.ID(), d.BatteryCapacity(), MinLoadingBatteryCapacity)
	}

	return nil
}
