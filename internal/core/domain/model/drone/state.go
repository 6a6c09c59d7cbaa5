package drone

import (
	"fmt"

	"medidrone/internal/pkg/errs"
)

// State is the operational state of a drone.
//
// The set of states is closed, but no adjacency between them is enforced here:
// any valid state may follow any other. The only gated transition (into Loading)
// is checked by the domain services package, which knows about battery thresholds.
//
//	Idle -> Loading -> Loaded -> Delivering -> Delivered -> Returning -> Idle
//	(reference flow, not enforced)
type State int

const (
	// UnknownState catches uninitialised values and unparsable input.
	UnknownState State = iota

	// Idle drones are parked and may be offered for loading.
	Idle

	// Loading drones are having medications put on board.
	Loading

	// Loaded drones carry their payload and wait for dispatch.
	Loaded

	// Delivering drones are flying towards the destination.
	Delivering

	// Delivered drones have handed over the payload.
	Delivered

	// Returning drones fly back to the base.
	Returning
)

func getStateStrings() map[State]string {
	return map[State]string{
		UnknownState: "UNKNOWN",
		Idle:         "IDLE",
		Loading:      "LOADING",
		Loaded:       "LOADED",
		Delivering:   "DELIVERING",
		Delivered:    "DELIVERED",
		Returning:    "RETURNING",
	}
}

//nolint:exhaustive // UnknownState is intentionally excluded as it's invalid
func getValidStateStrings() map[State]string {
	return map[State]string{
		Idle:       "IDLE",
		Loading:    "LOADING",
		Loaded:     "LOADED",
		Delivering: "DELIVERING",
		Delivered:  "DELIVERED",
		Returning:  "RETURNING",
	}
}

// States lists every valid state in lifecycle order.
func States() []State {
	return []State{Idle, Loading, Loaded, Delivering, Delivered, Returning}
}

// ParseState converts the wire representation ("IDLE", "LOADING", ...) into a State.
//
// Returns:
//   - the matching State on success
//   - UnknownState and a ValueIsInvalidError for any other input, including lower case
func ParseState(value string) (State, error) {
	for state, str := range getValidStateStrings() {
		if str == value {
			return state, nil
		}
	}
	return UnknownState, errs.NewValueIsInvalidErrorWithCause(
		"state",
		fmt.Errorf("%q is not a valid drone state", value),
	)
}

// Validate checks that s is one of the six operational states.
func (s State) Validate() error {
	if _, ok := getValidStateStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("state", fmt.Errorf("%d is not a valid drone state", s))
	}
	return nil
}

// String returns the wire name of the state, "UNKNOWN" for invalid values.
func (s State) String() string {
	if str, ok := getStateStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}
