package commands_test

import (
	"context"
	"testing"

	"medidrone/internal/core/application/usecases/commands"
	"medidrone/internal/core/domain/model/drone"
	"medidrone/internal/core/domain/model/medication"
	"medidrone/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDroneRepository struct {
	mock.Mock
}

func (m *MockDroneRepository) Add(ctx context.Context, aggregate *drone.Drone) (*drone.Drone, error) {
	args := m.Called(ctx, aggregate)
	stored, _ := args.Get(0).(*drone.Drone)
	return stored, args.Error(1)
}

func (m *MockDroneRepository) Update(ctx context.Context, aggregate *drone.Drone) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockDroneRepository) Get(ctx context.Context, id int64) (*drone.Drone, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*drone.Drone)
	return d, args.Error(1)
}

func (m *MockDroneRepository) Remove(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockMedicationRepository struct {
	mock.Mock
}

func (m *MockMedicationRepository) Add(
	ctx context.Context,
	aggregate *medication.Medication,
) (*medication.Medication, error) {
	args := m.Called(ctx, aggregate)
	stored, _ := args.Get(0).(*medication.Medication)
	return stored, args.Error(1)
}

func (m *MockMedicationRepository) Update(ctx context.Context, aggregate *medication.Medication) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockMedicationRepository) Get(ctx context.Context, id int64) (*medication.Medication, error) {
	args := m.Called(ctx, id)
	med, _ := args.Get(0).(*medication.Medication)
	return med, args.Error(1)
}

func (m *MockMedicationRepository) GetMany(ctx context.Context, ids []int64) ([]*medication.Medication, error) {
	args := m.Called(ctx, ids)
	meds, _ := args.Get(0).([]*medication.Medication)
	return meds, args.Error(1)
}

func (m *MockMedicationRepository) Remove(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMedicationRepository) DetachFromDrone(ctx context.Context, droneID int64) error {
	args := m.Called(ctx, droneID)
	return args.Error(0)
}

// MockUoW satisfies DroneUoW, MedicationUoW and UoW.
type MockUoW struct {
	mock.Mock
}

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) DroneRepository() ports.DroneRepository {
	args := m.Called()
	return args.Get(0).(ports.DroneRepository)
}

func (m *MockUoW) MedicationRepository() ports.MedicationRepository {
	args := m.Called()
	return args.Get(0).(ports.MedicationRepository)
}

type MockUoWFactory struct {
	mock.Mock
}

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockDroneUoWFactory struct {
	mock.Mock
}

func (m *MockDroneUoWFactory) Create() commands.DroneUoW {
	args := m.Called()
	return args.Get(0).(commands.DroneUoW)
}

type MockMedicationUoWFactory struct {
	mock.Mock
}

func (m *MockMedicationUoWFactory) Create() commands.MedicationUoW {
	args := m.Called()
	return args.Get(0).(commands.MedicationUoW)
}

type MockImageStorage struct {
	mock.Mock
}

func (m *MockImageStorage) Save(ctx context.Context, image medication.ImageUpload) (string, error) {
	args := m.Called(ctx, image)
	return args.String(0), args.Error(1)
}

func (m *MockImageStorage) Delete(ctx context.Context, url string) error {
	args := m.Called(ctx, url)
	return args.Error(0)
}

// Fixtures.

func restoredDrone(
	t *testing.T,
	id int64,
	weightLimit float64,
	battery int,
	state drone.State,
	meds ...*medication.Medication,
) *drone.Drone {
	t.Helper()
	d, err := drone.RestoreDrone(id, "SN-"+string(rune('A'+id%26)), drone.Middleweight, weightLimit, battery, state, meds)
	require.NoError(t, err)
	return d
}

func restoredMedication(t *testing.T, id int64, weight float64, image *string) *medication.Medication {
	t.Helper()
	m, err := medication.RestoreMedication(id, "Med_"+string(rune('A'+id%26)), weight, "CODE_1", image, nil)
	require.NoError(t, err)
	return m
}

func attachedMedication(t *testing.T, id int64, weight float64, droneID int64) *medication.Medication {
	t.Helper()
	m, err := medication.RestoreMedication(id, "Med_"+string(rune('A'+id%26)), weight, "CODE_1", nil, &droneID)
	require.NoError(t, err)
	return m
}

func pngUpload(t *testing.T) medication.ImageUpload {
	t.Helper()
	content := append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 32)...)
	upload, err := medication.NewImageUpload(content, 1024)
	require.NoError(t, err)
	return upload
}

func ptr[T any](v T) *T {
	return &v
}
