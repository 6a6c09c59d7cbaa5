package services_test

import (
	"testing"

	"medidrone/internal/core/domain/model/drone"
	"medidrone/internal/core/domain/model/medication"
	"medidrone/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func med(t *testing.T, id int64, weight float64) *medication.Medication {
	t.Helper()
	m, err := medication.RestoreMedication(id, "Med", weight, "MED", nil, nil)
	require.NoError(t, err)
	return m
}

func droneWith(t *testing.T, weightLimit float64, battery int, meds ...*medication.Medication) *drone.Drone {
	t.Helper()
	d, err := drone.RestoreDrone(1, "DA0144", drone.Middleweight, weightLimit, battery, drone.Idle, meds)
	require.NoError(t, err)
	return d
}

func TestCapacityRuleEngine_UsedCapacity(t *testing.T) {
	engine := services.NewCapacityRuleEngine()

	t.Run("empty drone", func(t *testing.T) {
		assert.InDelta(t, 0.0, engine.UsedCapacity(droneWith(t, 100, 100)), 0)
	})

	t.Run("sums attached weights", func(t *testing.T) {
		d := droneWith(t, 100, 100, med(t, 1, 40), med(t, 2, 35.5))
		assert.InDelta(t, 75.5, engine.UsedCapacity(d), 1e-9)
		assert.InDelta(t, 24.5, engine.AvailableCapacity(d), 1e-9)
	})
}

func TestCapacityRuleEngine_HasCapacityFor(t *testing.T) {
	engine := services.NewCapacityRuleEngine()
	d := droneWith(t, 100, 100, med(t, 1, 40.1))

	testCases := []struct {
		name       string
		additional float64
		expected   bool
	}{
		{"nothing extra", 0, true},
		{"exact fit with fractional weights", 59.9, true},
		{"just over", 60, false},
		{"negative weight counts as zero", -500, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, engine.HasCapacityFor(d, tc.additional))
		})
	}
}

func TestCapacityRuleEngine_ValidateLoad(t *testing.T) {
	engine := services.NewCapacityRuleEngine()
	d := droneWith(t, 100, 100, med(t, 1, 60))
	require.NoError(t, engine.ValidateLoad(d))

	require.NoError(t, d.SetWeightLimit(50))
	err := engine.ValidateLoad(d)

	require.ErrorIs(t, err, services.ErrOverCapacity)
	var capErr *services.OverCapacityError
	require.ErrorAs(t, err, &capErr)
	assert.Zero(t, capErr.MedicationID)
	assert.InDelta(t, 60.0, capErr.Load, 0)
	assert.InDelta(t, 50.0, capErr.WeightLimit, 0)
}

func TestCapacityRuleEngine_ValidateReweigh(t *testing.T) {
	engine := services.NewCapacityRuleEngine()
	d := droneWith(t, 100, 100, med(t, 1, 40.1), med(t, 2, 30))

	t.Run("heavier copy fits exactly", func(t *testing.T) {
		require.NoError(t, engine.ValidateReweigh(d, med(t, 2, 59.9)))
	})

	t.Run("lighter copy", func(t *testing.T) {
		require.NoError(t, engine.ValidateReweigh(d, med(t, 2, 1)))
	})

	t.Run("heavier copy over limit", func(t *testing.T) {
		err := engine.ValidateReweigh(d, med(t, 2, 60))

		require.ErrorIs(t, err, services.ErrOverCapacity)
		var capErr *services.OverCapacityError
		require.ErrorAs(t, err, &capErr)
		assert.Equal(t, int64(2), capErr.MedicationID)
		assert.InDelta(t, 100.1, capErr.Load, 1e-9)
	})

	t.Run("medication not in payload is added", func(t *testing.T) {
		require.ErrorIs(t, engine.ValidateReweigh(d, med(t, 3, 30)), services.ErrOverCapacity)
	})

	assert.InDelta(t, 70.1, engine.UsedCapacity(d), 1e-9)
}

func TestCapacityRuleEngine_PlanLoad(t *testing.T) {
	engine := services.NewCapacityRuleEngine()

	t.Run("accepts while cumulative load fits", func(t *testing.T) {
		d := droneWith(t, 100, 100)
		candidates := []*medication.Medication{med(t, 1, 40), med(t, 2, 60)}

		accepted, err := engine.PlanLoad(d, candidates)

		require.NoError(t, err)
		assert.Equal(t, candidates, accepted)
		assert.Empty(t, d.Medications(), "PlanLoad must not attach")
	})

	t.Run("rejects whole batch at first overflow", func(t *testing.T) {
		d := droneWith(t, 100, 100)
		candidates := []*medication.Medication{med(t, 1, 40), med(t, 2, 70), med(t, 3, 1)}

		accepted, err := engine.PlanLoad(d, candidates)

		require.ErrorIs(t, err, services.ErrOverCapacity)
		assert.Nil(t, accepted)
		var capErr *services.OverCapacityError
		require.ErrorAs(t, err, &capErr)
		assert.Equal(t, int64(2), capErr.MedicationID)
		assert.InDelta(t, 110.0, capErr.Load, 0)
	})

	t.Run("starts from existing load", func(t *testing.T) {
		d := droneWith(t, 100, 100, med(t, 1, 90))

		_, err := engine.PlanLoad(d, []*medication.Medication{med(t, 2, 20)})

		require.ErrorIs(t, err, services.ErrOverCapacity)
	})

	t.Run("skips nil, duplicates and already attached", func(t *testing.T) {
		attached := med(t, 1, 50)
		d := droneWith(t, 100, 100, attached)
		second := med(t, 2, 50)

		accepted, err := engine.PlanLoad(d, []*medication.Medication{nil, attached, second, second})

		require.NoError(t, err)
		assert.Equal(t, []*medication.Medication{second}, accepted)
	})
}

func BenchmarkCapacityRuleEngine_PlanLoad(b *testing.B) {
	d, err := drone.RestoreDrone(1, "S", drone.Heavyweight, 500, 100, drone.Idle, nil)
	require.NoError(b, err)
	candidates := make([]*medication.Medication, 0, 100)
	for i := range 100 {
		m, medErr := medication.RestoreMedication(int64(i+1), "Med", 4.99, "MED", nil, nil)
		require.NoError(b, medErr)
		candidates = append(candidates, m)
	}
	engine := services.NewCapacityRuleEngine()

	b.ResetTimer()
	for range b.N {
		if _, planErr := engine.PlanLoad(d, candidates); planErr != nil {
			b.Fatal(planErr)
		}
	}
}
