package services

import (
	"errors"
	"fmt"
)

var (
	ErrOverCapacity  = errors.New("drone weight limit exceeded")
	ErrBatteryTooLow = errors.New("battery level too low")
)

// OverCapacityError reports a load that would exceed the drone weight limit.
// MedicationID is the first medication that did not fit, 0 when the limit itself was lowered.
type OverCapacityError struct {
	DroneID      int64
	MedicationID int64
	WeightLimit  float64
	Load         float64
}

func NewOverCapacityError(droneID, medicationID int64, weightLimit, load float64) *OverCapacityError {
	return &OverCapacityError{
		DroneID:      droneID,
		MedicationID: medicationID,
		WeightLimit:  weightLimit,
		Load:         load,
	}
}

func (e *OverCapacityError) Error() string {
	if e.MedicationID > 0 {
		return fmt.Sprintf("%s: drone %d cannot take medication %d, load would be %g of %g",
			ErrOverCapacity, e.DroneID, e.MedicationID, e.Load, e.WeightLimit)
	}
	return fmt.Sprintf("%s: drone %d carries %g but the limit is %g",
		ErrOverCapacity, e.DroneID, e.Load, e.WeightLimit)
}

func (e *OverCapacityError) Unwrap() error {
	return ErrOverCapacity
}

// BatteryTooLowError reports a Loading request for a drone below the battery threshold.
type BatteryTooLowError struct {
	DroneID         int64
	BatteryCapacity int
	Threshold       int
}

func NewBatteryTooLowError(droneID int64, batteryCapacity, threshold int) *BatteryTooLowError {
	return &BatteryTooLowError{
		DroneID:         droneID,
		BatteryCapacity: batteryCapacity,
		Threshold:       threshold,
	}
}

func (e *BatteryTooLowError) Error() string {
	return fmt.Sprintf("%s: drone %d is at %d%%, loading requires at least %d%%",
		ErrBatteryTooLow, e.DroneID, e.BatteryCapacity, e.Threshold)
}

func (e *BatteryTooLowError) Unwrap() error {
	return ErrBatteryTooLow
}
