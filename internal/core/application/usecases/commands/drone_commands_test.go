package commands_test

import (
	"testing"

	"medidrone/internal/core/application/usecases/commands"
	"medidrone/internal/core/domain/model/drone"
	"medidrone/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateDroneCommand_ValidInput(t *testing.T) {
	// Act
	cmd, err := commands.NewCreateDroneCommand("DA0144", drone.Heavyweight, 350.5, 80, drone.Loading)

	// Assert
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, "DA0144", cmd.SerialNumber())
	assert.Equal(t, drone.Heavyweight, cmd.Model())
	assert.InDelta(t, 350.5, cmd.WeightLimit(), 0)
	assert.Equal(t, 80, cmd.BatteryCapacity())
	assert.Equal(t, drone.Loading, cmd.State())
}

func TestNewCreateDroneCommand_InvalidInput(t *testing.T) {
	testCases := []struct {
		name        string
		serial      string
		model       drone.Model
		state       drone.State
		expectedErr error
	}{
		{"empty serial", "", drone.Lightweight, drone.Idle, errs.ErrValueIsRequired},
		{"unknown model", "SN1", drone.UnknownModel, drone.Idle, errs.ErrValueIsInvalid},
		{"unknown state", "SN1", drone.Lightweight, drone.UnknownState, errs.ErrValueIsInvalid},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			cmd, err := commands.NewCreateDroneCommand(tc.serial, tc.model, 100, 100, tc.state)

			// Assert
			require.ErrorIs(t, err, tc.expectedErr)
			assert.ErrorIs(t, cmd.Validate(), commands.ErrCreateDroneCommandIsNotConstructed)
		})
	}
}

func TestNewUpdateDroneCommand_CopiesPatch(t *testing.T) {
	// Arrange
	ids := []int64{3, 1}
	weight := 120.0
	patch := commands.DronePatch{WeightLimit: &weight, MedicationIDs: ids}

	// Act
	cmd, err := commands.NewUpdateDroneCommand(7, patch)
	ids[0] = 99
	weight = 1

	// Assert
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, int64(7), cmd.DroneID())
	assert.Equal(t, []int64{3, 1}, cmd.MedicationIDs())
	got, ok := cmd.WeightLimit()
	assert.True(t, ok)
	assert.InDelta(t, 120.0, got, 0)
	_, ok = cmd.BatteryCapacity()
	assert.False(t, ok)
	_, ok = cmd.State()
	assert.False(t, ok)
}

func TestNewUpdateDroneCommand_InvalidInput(t *testing.T) {
	testCases := []struct {
		name  string
		id    int64
		patch commands.DronePatch
	}{
		{"zero drone id", 0, commands.DronePatch{}},
		{"negative drone id", -4, commands.DronePatch{}},
		{"unknown state", 1, commands.DronePatch{State: ptr(drone.UnknownState)}},
		{"zero medication id", 1, commands.DronePatch{MedicationIDs: []int64{2, 0}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			_, err := commands.NewUpdateDroneCommand(tc.id, tc.patch)

			// Assert
			require.Error(t, err)
			assert.True(t, errs.IsValidationError(err))
		})
	}
}

func TestNewRemoveDroneCommand(t *testing.T) {
	cmd, err := commands.NewRemoveDroneCommand(5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), cmd.DroneID())

	_, err = commands.NewRemoveDroneCommand(0)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	var zero commands.RemoveDroneCommand
	assert.ErrorIs(t, zero.Validate(), commands.ErrRemoveDroneCommandIsNotConstructed)
}

func TestNewLoadMedicationCommand(t *testing.T) {
	cmd, err := commands.NewLoadMedicationCommand(2, 9)
	require.NoError(t, err)
	assert.Equal(t, int64(2), cmd.DroneID())
	assert.Equal(t, int64(9), cmd.MedicationID())

	_, err = commands.NewLoadMedicationCommand(0, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "drone_id")
	assert.Contains(t, err.Error(), "medication_id")
}

func BenchmarkNewUpdateDroneCommand(b *testing.B) {
	patch := commands.DronePatch{
		WeightLimit:   ptr(250.0),
		State:         ptr(drone.Loading),
		MedicationIDs: []int64{1, 2, 3, 4, 5},
	}

	b.ResetTimer()
	for range b.N {
		if _, err := commands.NewUpdateDroneCommand(1, patch); err != nil {
			b.Fatal(err)
		}
	}
}
