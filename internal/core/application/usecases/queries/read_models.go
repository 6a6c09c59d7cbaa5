package queries

import (
	"context"
	"database/sql"
	"fmt"

	"medidrone/internal/core/domain/model/drone"
	"medidrone/internal/core/domain/model/medication"

	"gorm.io/gorm"
)

// MedicationResponse is the read model of a medication.
type MedicationResponse struct {
	ID      int64
	Name    string
	Weight  float64
	Code    string
	Image   *string
	DroneID *int64
}

// DroneSummary is a drone without its payload.
type DroneSummary struct {
	ID              int64
	SerialNumber    string
	Model           drone.Model
	WeightLimit     float64
	BatteryCapacity int
	State           drone.State
}

// DroneResponse is a drone with its medications ordered by id.
type DroneResponse struct {
	DroneSummary
	Medications []MedicationResponse
}

const droneColumns = `id, serial_number, model, weight_limit, battery_capacity, state`

const medicationColumns = `id, name, weight, code, image, drone_id`

func scanDroneSummaries(rows *sql.Rows) ([]DroneSummary, error) {
	defer rows.Close()

	drones := make([]DroneSummary, 0)
	for rows.Next() {
		var (
			d            DroneSummary
			model, state string
		)
		if err := rows.Scan(&d.ID, &d.SerialNumber, &model, &d.WeightLimit, &d.BatteryCapacity, &state); err != nil {
			return nil, err
		}

		var err error
		if d.Model, err = drone.ParseModel(model); err != nil {
			return nil, fmt.Errorf("drone %d: %w", d.ID, err)
		}
		if d.State, err = drone.ParseState(state); err != nil {
			return nil, fmt.Errorf("drone %d: %w", d.ID, err)
		}
		drones = append(drones, d)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return drones, nil
}

func scanMedications(rows *sql.Rows) ([]MedicationResponse, error) {
	defer rows.Close()

	medications := make([]MedicationResponse, 0)
	for rows.Next() {
		var m MedicationResponse
		if err := rows.Scan(&m.ID, &m.Name, &m.Weight, &m.Code, &m.Image, &m.DroneID); err != nil {
			return nil, err
		}
		medications = append(medications, m)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return medications, nil
}

// withMedications loads the payload of every drone with one extra query.
func withMedications(ctx context.Context, db *gorm.DB, summaries []DroneSummary) ([]DroneResponse, error) {
	drones := make([]DroneResponse, 0, len(summaries))
	if len(summaries) == 0 {
		return drones, nil
	}

	ids := make([]int64, 0, len(summaries))
	for _, s := range summaries {
		ids = append(ids, s.ID)
	}

	rows, err := db.WithContext(ctx).Raw(
		`SELECT `+medicationColumns+` FROM medications WHERE drone_id IN ? ORDER BY id`, ids,
	).Rows()
	if err != nil {
		return nil, err
	}
	medications, err := scanMedications(rows)
	if err != nil {
		return nil, err
	}

	byDrone := make(map[int64][]MedicationResponse, len(summaries))
	for _, m := range medications {
		byDrone[*m.DroneID] = append(byDrone[*m.DroneID], m)
	}

	for _, s := range summaries {
		payload := byDrone[s.ID]
		if payload == nil {
			payload = make([]MedicationResponse, 0)
		}
		drones = append(drones, DroneResponse{DroneSummary: s, Medications: payload})
	}
	return drones, nil
}

// aggregate rebuilds the Drone so that domain services can evaluate the read model.
func (r DroneResponse) aggregate() (*drone.Drone, error) {
	payload := make([]*medication.Medication, 0, len(r.Medications))
	for _, m := range r.Medications {
		restored, err := medication.RestoreMedication(m.ID, m.Name, m.Weight, m.Code, m.Image, m.DroneID)
		if err != nil {
			return nil, fmt.Errorf("medication %d: %w", m.ID, err)
		}
		payload = append(payload, restored)
	}
	return drone.RestoreDrone(r.ID, r.SerialNumber, r.Model, r.WeightLimit, r.BatteryCapacity, r.State, payload)
}
