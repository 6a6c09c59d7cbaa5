// Package dronerepo provides data transfer objects and the GORM repository for drone persistence.
// It converts between the Drone aggregate and its relational representation: one drones row
// plus the medications rows pointing at it.
package dronerepo

import (
	"fmt"

	"medidrone/internal/adapters/out/postgres/medicationrepo"
	"medidrone/internal/core/domain/model/drone"
	"medidrone/internal/core/domain/model/medication"
)

// DroneDTO represents the database structure for persisting drone aggregates.
// Enums are stored by name so rows stay readable and survive reordering of the Go constants.
// Deleting a drone clears medications.drone_id instead of deleting the medications.
type DroneDTO struct {
	ID              int64                          `gorm:"primaryKey;autoIncrement"`
	SerialNumber    string                         `gorm:"type:varchar(100);not null"`
	Model           string                         `gorm:"type:varchar(20);not null"`
	WeightLimit     float64                        `gorm:"not null;check:chk_drones_weight_limit,weight_limit >= 0 AND weight_limit <= 500"`
	BatteryCapacity int                            `gorm:"not null;check:chk_drones_battery_capacity,battery_capacity >= 0 AND battery_capacity <= 100"`
	State           string                         `gorm:"type:varchar(20);not null;index"`
	Medications     []medicationrepo.MedicationDTO `gorm:"foreignKey:DroneID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
}

// TableName overrides GORM's default "drone_dtos".
func (DroneDTO) TableName() string {
	return "drones"
}

// FromDomain maps the aggregate including its attached medications.
func FromDomain(aggregate *drone.Drone) DroneDTO {
	medications := make([]medicationrepo.MedicationDTO, 0, len(aggregate.Medications()))
	for _, m := range aggregate.Medications() {
		medications = append(medications, medicationrepo.FromDomain(m))
	}

	return DroneDTO{
		ID:              aggregate.ID(),
		SerialNumber:    aggregate.SerialNumber(),
		Model:           aggregate.Model().String(),
		WeightLimit:     aggregate.WeightLimit(),
		BatteryCapacity: aggregate.BatteryCapacity(),
		State:           aggregate.State().String(),
		Medications:     medications,
	}
}

// ToDomain rebuilds the aggregate with RestoreDrone. Medications must be preloaded
// by the caller when they are needed.
func ToDomain(dto DroneDTO) (*drone.Drone, error) {
	model, err := drone.ParseModel(dto.Model)
	if err != nil {
		return nil, fmt.Errorf("drone %d: %w", dto.ID, err)
	}

	state, err := drone.ParseState(dto.State)
	if err != nil {
		return nil, fmt.Errorf("drone %d: %w", dto.ID, err)
	}

	medications := make([]*medication.Medication, 0, len(dto.Medications))
	for _, medDTO := range dto.Medications {
		m, medErr := medicationrepo.ToDomain(medDTO)
		if medErr != nil {
			return nil, medErr
		}
		medications = append(medications, m)
	}

	return drone.RestoreDrone(
		dto.ID,
		dto.SerialNumber,
		model,
		dto.WeightLimit,
		dto.BatteryCapacity,
		state,
		medications,
	)
}
