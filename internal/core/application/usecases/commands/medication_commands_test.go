package commands_test

import (
	"testing"

	"medidrone/internal/core/application/usecases/commands"
	"medidrone/internal/core/domain/model/medication"
	"medidrone/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateMedicationCommand(t *testing.T) {
	t.Run("without image", func(t *testing.T) {
		cmd, err := commands.NewCreateMedicationCommand("Aspirin", 12.5, "ASP_01", nil)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "Aspirin", cmd.Name())
		assert.InDelta(t, 12.5, cmd.Weight(), 0)
		assert.Equal(t, "ASP_01", cmd.Code())
		_, ok := cmd.Image()
		assert.False(t, ok)
	})

	t.Run("with image", func(t *testing.T) {
		upload := pngUpload(t)

		cmd, err := commands.NewCreateMedicationCommand("Aspirin", 12.5, "ASP_01", &upload)

		require.NoError(t, err)
		got, ok := cmd.Image()
		assert.True(t, ok)
		assert.Equal(t, "image/png", got.ContentType())
	})

	t.Run("zero value image", func(t *testing.T) {
		_, err := commands.NewCreateMedicationCommand("Aspirin", 12.5, "ASP_01", &medication.ImageUpload{})

		require.ErrorIs(t, err, medication.ErrImageUploadIsNotConstructed)
	})
}

func TestNewUpdateMedicationCommand(t *testing.T) {
	t.Run("partial patch", func(t *testing.T) {
		cmd, err := commands.NewUpdateMedicationCommand(4, commands.MedicationPatch{Code: ptr("NEW_CODE")})

		require.NoError(t, err)
		assert.Equal(t, int64(4), cmd.MedicationID())
		code, ok := cmd.Code()
		assert.True(t, ok)
		assert.Equal(t, "NEW_CODE", code)
		_, ok = cmd.Name()
		assert.False(t, ok)
		_, ok = cmd.Weight()
		assert.False(t, ok)
		_, ok = cmd.Image()
		assert.False(t, ok)
	})

	t.Run("invalid id", func(t *testing.T) {
		_, err := commands.NewUpdateMedicationCommand(0, commands.MedicationPatch{})

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("zero value command", func(t *testing.T) {
		var cmd commands.UpdateMedicationCommand

		assert.ErrorIs(t, cmd.Validate(), commands.ErrUpdateMedicationCommandIsNotConstructed)
	})
}

func TestNewRemoveMedicationCommand(t *testing.T) {
	cmd, err := commands.NewRemoveMedicationCommand(3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), cmd.MedicationID())

	_, err = commands.NewRemoveMedicationCommand(-1)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}
