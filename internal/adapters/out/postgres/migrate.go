package postgres

import (
	"fmt"

	"medidrone/internal/adapters/out/postgres/dronerepo"
	"medidrone/internal/adapters/out/postgres/medicationrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the drones and medications tables, including the
// medications.drone_id foreign key (ON DELETE SET NULL) and the range checks.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&dronerepo.DroneDTO{}, &medicationrepo.MedicationDTO{}); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}
