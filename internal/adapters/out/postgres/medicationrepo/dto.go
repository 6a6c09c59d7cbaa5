// Package medicationrepo maps Medication aggregates to the medications table.
package medicationrepo

import (
	"medidrone/internal/core/domain/model/medication"
)

// MedicationDTO is the row shape of the medications table.
// DroneID is a nullable foreign key; the constraint itself is declared on the drone side.
type MedicationDTO struct {
	ID      int64   `gorm:"primaryKey;autoIncrement"`
	Name    string  `gorm:"type:varchar(255);not null"`
	Weight  float64 `gorm:"not null;check:chk_medications_weight,weight >= 0"`
	Code    string  `gorm:"type:varchar(255);not null"`
	Image   *string `gorm:"type:varchar(2048)"`
	DroneID *int64  `gorm:"index"`
}

func (MedicationDTO) TableName() string {
	return "medications"
}

// FromDomain is exported for the drone repository, which writes attached medications.
func FromDomain(aggregate *medication.Medication) MedicationDTO {
	return MedicationDTO{
		ID:      aggregate.ID(),
		Name:    aggregate.Name(),
		Weight:  aggregate.Weight(),
		Code:    aggregate.Code(),
		Image:   aggregate.Image(),
		DroneID: aggregate.DroneID(),
	}
}

// ToDomain rebuilds the aggregate through RestoreMedication so stored rows are re-validated.
func ToDomain(dto MedicationDTO) (*medication.Medication, error) {
	return medication.RestoreMedication(dto.ID, dto.Name, dto.Weight, dto.Code, dto.Image, dto.DroneID)
}
