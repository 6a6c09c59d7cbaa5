package drone

import (
	"errors"
	"fmt"
	"math"
	"unicode/utf8"

	"medidrone/internal/core/domain/model/medication"
	"medidrone/internal/pkg/errs"
	"medidrone/internal/pkg/guard"
)

const (
	// MaxSerialNumberLength is the longest accepted serial number, in characters.
	MaxSerialNumberLength = 100

	MinWeightLimit     = 0.0
	MaxWeightLimit     = 500.0
	DefaultWeightLimit = MaxWeightLimit

	MinBatteryCapacity     = 0
	MaxBatteryCapacity     = 100
	DefaultBatteryCapacity = MaxBatteryCapacity
)

var (
	// ErrDroneIsNotConstructed is returned when a Drone was not created through
	// NewDrone or RestoreDrone.
	ErrDroneIsNotConstructed = errors.New("Drone must be created via NewDrone or RestoreDrone constructor")

	// ErrDroneIsNotPersisted is returned when medications are attached to a drone
	// that has no store-assigned id yet.
	ErrDroneIsNotPersisted = errors.New("drone must be persisted before medications can be attached")
)

// Drone is the aggregate root for a delivery drone and its payload.
//
// Drone maintains these invariants by itself:
//   - serial number is 1..100 characters long
//   - weight limit is within [0, 500]
//   - battery capacity is within [0, 100]
//   - model and state are members of their closed enums
//   - each medication appears at most once and points back at this drone
//
// The capacity invariant (attached weight <= weight limit) is enforced by
// services.CapacityRuleEngine, which decides before the aggregate is mutated.
type Drone struct {
	// id is assigned by the store, 0 until persisted
	id int64

	serialNumber    string
	model           Model
	weightLimit     float64
	batteryCapacity int
	state           State

	// medications keeps attachment order
	medications []*medication.Medication

	guard guard.ConstructorGuard
}

// NewDrone creates a drone that has not been persisted yet.
//
// Parameters:
//   - serialNumber: 1..100 characters
//   - model: one of Lightweight, Middleweight, Cruiserweight, Heavyweight
//   - weightLimit: within [0, 500]
//   - batteryCapacity: percent within [0, 100]
//   - state: any valid State
//
// Returns:
//   - *Drone with ID() == 0 and no medications
//   - an errors.Join of every field error otherwise
//
// Example:
//
//	d, err := NewDrone("DA0144", Heavyweight, DefaultWeightLimit, DefaultBatteryCapacity, Idle)
//	if err != nil {
//	    return err
//	}
//	stored, err := repo.Add(ctx, d) // stored.ID() > 0
func NewDrone(
	serialNumber string,
	model Model,
	weightLimit float64,
	batteryCapacity int,
	state State,
) (*Drone, error) {
	d := &Drone{
		medications: make([]*medication.Medication, 0),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setSerialNumber(serialNumber),
		d.setModel(model),
		d.SetWeightLimit(weightLimit),
		d.SetBatteryCapacity(batteryCapacity),
		d.ChangeState(state),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDrone rebuilds a persisted drone together with its attached medications.
// Used by repositories and read models; it re-checks every field invariant but not
// the capacity invariant, so inconsistent stored data is still loadable.
func RestoreDrone(
	id int64,
	serialNumber string,
	model Model,
	weightLimit float64,
	batteryCapacity int,
	state State,
	medications []*medication.Medication,
) (*Drone, error) {
	if id <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("id", id, 1, math.MaxInt64)
	}

	d, err := NewDrone(serialNumber, model, weightLimit, batteryCapacity, state)
	if err != nil {
		return nil, err
	}
	d.id = id

	for _, m := range medications {
		if err = d.AttachMedication(m); err != nil {
			return nil, err
		}
	}

	return d, nil
}

// Validate ensures the drone was created through one of its constructors.
func (d *Drone) Validate() error {
	if d == nil {
		return ErrDroneIsNotConstructed
	}
	return d.guard.Validate(ErrDroneIsNotConstructed)
}

// ID returns the store-assigned identifier, 0 for a drone that was never persisted.
func (d *Drone) ID() int64 {
	return d.id
}

// SerialNumber returns the manufacturer serial number.
func (d *Drone) SerialNumber() string {
	return d.serialNumber
}

// Model returns the weight class the drone was built for.
func (d *Drone) Model() Model {
	return d.model
}

// WeightLimit returns the maximum total medication weight the drone may carry.
func (d *Drone) WeightLimit() float64 {
	return d.weightLimit
}

// BatteryCapacity returns the current battery level in percent.
func (d *Drone) BatteryCapacity() int {
	return d.batteryCapacity
}

// State returns the current operational state.
func (d *Drone) State() State {
	return d.state
}

// Medications returns a copy of the attached medication list in attachment order.
// The slice is a copy; the medications themselves are shared with the aggregate.
func (d *Drone) Medications() []*medication.Medication {
	result := make([]*medication.Medication, len(d.medications))
	copy(result, d.medications)
	return result
}

// HasMedication reports whether the medication with the given id is attached.
func (d *Drone) HasMedication(medicationID int64) bool {
	for _, m := range d.medications {
		if m.ID() == medicationID {
			return true
		}
	}
	return false
}

// SetWeightLimit changes the capacity. Range only; the load check is the caller's job.
func (d *Drone) SetWeightLimit(weightLimit float64) error {
	if math.IsNaN(weightLimit) || weightLimit < MinWeightLimit || weightLimit > MaxWeightLimit {
		return errs.NewValueIsOutOfRangeError("weight_limit", weightLimit, MinWeightLimit, MaxWeightLimit)
	}
	d.weightLimit = weightLimit
	return nil
}

// SetBatteryCapacity records a new battery level in percent.
func (d *Drone) SetBatteryCapacity(batteryCapacity int) error {
	if batteryCapacity < MinBatteryCapacity || batteryCapacity > MaxBatteryCapacity {
		return errs.NewValueIsOutOfRangeError(
			"battery_capacity", batteryCapacity, MinBatteryCapacity, MaxBatteryCapacity,
		)
	}
	d.batteryCapacity = batteryCapacity
	return nil
}

// ChangeState moves the drone to state. Any valid state is accepted from any other;
// battery gating happens in services.StateTransitionGuard before this is called.
func (d *Drone) ChangeState(state State) error {
	if err := state.Validate(); err != nil {
		return err
	}
	d.state = state
	return nil
}

// AttachMedication appends m to the payload and points m at this drone.
// Attaching a medication twice is a no-op. A medication owned by another drone is moved.
//
// Returns:
//   - ErrDroneIsNotPersisted if the drone has no id yet
//   - the medication's own validation error for a zero value medication
func (d *Drone) AttachMedication(m *medication.Medication) error {
	if err := m.Validate(); err != nil {
		return err
	}
	if d.id <= 0 {
		return ErrDroneIsNotPersisted
	}
	if m.ID() > 0 && d.HasMedication(m.ID()) {
		return nil
	}

	if err := m.AssignToDrone(d.id); err != nil {
		return fmt.Errorf("attach medication %d: %w", m.ID(), err)
	}
	d.medications = append(d.medications, m)
	return nil
}

func (d *Drone) setSerialNumber(serialNumber string) error {
	if serialNumber == "" {
		return errs.NewValueIsRequiredError("serial_number")
	}
	if length := utf8.RuneCountInString(serialNumber); length > MaxSerialNumberLength {
		return errs.NewValueIsOutOfRangeErrorWithCause(
			"serial_number", length, 1, MaxSerialNumberLength,
			fmt.Errorf("serial number is %d characters long", length),
		)
	}
	d.serialNumber = serialNumber
	return nil
}

func (d *Drone) setModel(model Model) error {
	if err := model.Validate(); err != nil {
		return err
	}
	d.model = model
	return nil
}
