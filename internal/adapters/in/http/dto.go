package http

import (
	"medidrone/internal/core/application/usecases/queries"
	"medidrone/internal/core/domain/model/drone"
	"medidrone/internal/core/domain/model/medication"
)

type CreateDroneRequest struct {
	SerialNumber    string   `json:"serial_number"    validate:"required,max=100"`
	Model           string   `json:"model"            validate:"required,oneof=Lightweight Middleweight Cruiserweight Heavyweight"`
	WeightLimit     *float64 `json:"weight_limit"     validate:"omitempty,gte=0,lte=500"`
	BatteryCapacity *int     `json:"battery_capacity" validate:"omitempty,gte=0,lte=100"`
	State           *string  `json:"state"            validate:"omitempty,oneof=IDLE LOADING LOADED DELIVERING DELIVERED RETURNING"`
}

type UpdateDroneRequest struct {
	WeightLimit     *float64 `json:"weight_limit"     validate:"omitempty,gte=0,lte=500"`
	BatteryCapacity *int     `json:"battery_capacity" validate:"omitempty,gte=0,lte=100"`
	State           *string  `json:"state"            validate:"omitempty,oneof=IDLE LOADING LOADED DELIVERING DELIVERED RETURNING"`
	MedicationIDs   []int64  `json:"medication_ids"   validate:"omitempty,dive,gt=0"`
}

type CreateMedicationRequest struct {
	Name   string   `json:"name"   validate:"required,medname"`
	Weight *float64 `json:"weight" validate:"required,gte=0"`
	Code   string   `json:"code"   validate:"required,medcode"`
}

type UpdateMedicationRequest struct {
	Name   *string  `json:"name"   validate:"omitempty,medname"`
	Weight *float64 `json:"weight" validate:"omitempty,gte=0"`
	Code   *string  `json:"code"   validate:"omitempty,medcode"`
}

type DroneJSON struct {
	ID              int64   `json:"id"`
	SerialNumber    string  `json:"serial_number"`
	Model           string  `json:"model"`
	WeightLimit     float64 `json:"weight_limit"`
	BatteryCapacity int     `json:"battery_capacity"`
	State           string  `json:"state"`
}

type DroneWithMedicationsJSON struct {
	DroneJSON
	Medications []MedicationJSON `json:"medications"`
}

type MedicationJSON struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
	Code   string  `json:"code"`
	Image  *string `json:"image"`
}

type MedicationWithDroneJSON struct {
	MedicationJSON
	Drone *DroneJSON `json:"drone"`
}

func droneFromSummary(s queries.DroneSummary) DroneJSON {
	return DroneJSON{
		ID:              s.ID,
		SerialNumber:    s.SerialNumber,
		Model:           s.Model.String(),
		WeightLimit:     s.WeightLimit,
		BatteryCapacity: s.BatteryCapacity,
		State:           s.State.String(),
	}
}

func droneWithMedicationsFromResponse(r queries.DroneResponse) DroneWithMedicationsJSON {
	meds := make([]MedicationJSON, 0, len(r.Medications))
	for _, m := range r.Medications {
		meds = append(meds, medicationFromResponse(m))
	}
	return DroneWithMedicationsJSON{DroneJSON: droneFromSummary(r.DroneSummary), Medications: meds}
}

func dronesFromResponses(responses []queries.DroneResponse) []DroneJSON {
	drones := make([]DroneJSON, 0, len(responses))
	for _, r := range responses {
		drones = append(drones, droneFromSummary(r.DroneSummary))
	}
	return drones
}

func droneFromAggregate(d *drone.Drone) DroneJSON {
	return DroneJSON{
		ID:              d.ID(),
		SerialNumber:    d.SerialNumber(),
		Model:           d.Model().String(),
		WeightLimit:     d.WeightLimit(),
		BatteryCapacity: d.BatteryCapacity(),
		State:           d.State().String(),
	}
}

func droneWithMedicationsFromAggregate(d *drone.Drone) DroneWithMedicationsJSON {
	meds := make([]MedicationJSON, 0, len(d.Medications()))
	for _, m := range d.Medications() {
		meds = append(meds, medicationFromAggregate(m))
	}
	return DroneWithMedicationsJSON{DroneJSON: droneFromAggregate(d), Medications: meds}
}

func medicationFromResponse(m queries.MedicationResponse) MedicationJSON {
	return MedicationJSON{
		ID:     m.ID,
		Name:   m.Name,
		Weight: m.Weight,
		Code:   m.Code,
		Image:  m.Image,
	}
}

func medicationFromAggregate(m *medication.Medication) MedicationJSON {
	return MedicationJSON{
		ID:     m.ID(),
		Name:   m.Name(),
		Weight: m.Weight(),
		Code:   m.Code(),
		Image:  m.Image(),
	}
}
