package config

import (
	"context"
	"errors"
	"testing"
	"time"

	"retiree-registry/internal/adapters/persistence/models"
	"retiree-registry/internal/core/domain"
	"retiree-registry/internal/pkg/logger"
	"retiree-registry/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeeder_RunResetsAndInserts(t *testing.T) {
	store := testutil.NewInMemoryMemberStore()
	ctx := context.Background()
	require.NoError(t, store.Create(ctx, &models.Member{FullName: "Viejo", NationalID: "V-1", Status: domain.StatusRetiree}))

	seeder := NewSeeder(store, logger.NewNop())
	seeder.now = func() time.Time { return time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC) }

	result, err := seeder.Run(ctx, 50)
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Removed)
	assert.Equal(t, 50, result.Inserted+result.Skipped)
	assert.Equal(t, result.Inserted, store.Len())

	all, err := store.ListAll(ctx, domain.OrderByID)
	require.NoError(t, err)
	for _, m := range all {
		assert.NotEqual(t, "Viejo", m.FullName)
		assert.NotEmpty(t, m.FullName)
		assert.Regexp(t, `^V-\d+$`, m.NationalID)
		require.NotNil(t, m.BirthDate)

		switch m.Status {
		case domain.StatusSurvivor:
			require.NotNil(t, m.DeathDate, "survivors always carry a death date")
			require.NotNil(t, m.DeceasedName)
			assert.False(t, m.DeathDate.Before(*m.BirthDate))
			assert.False(t, m.DeathDate.After(seeder.now()))
		case domain.StatusRetiree:
			assert.Nil(t, m.DeathDate)
			age := 2024 - m.BirthDate.Year()
			assert.True(t, age >= 50 && age <= 80, "age %d", age)
		default:
			t.Fatalf("unexpected status %q", m.Status)
		}
	}
}

func TestSeeder_ResetFailure(t *testing.T) {
	store := testutil.NewInMemoryMemberStore()
	store.FailOn["delete_all"] = errors.New("disk full")

	_, err := NewSeeder(store, logger.NewNop()).Run(context.Background(), 3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.Equal(t, 0, store.Len())
}

func TestSeeder_CreateFailureStops(t *testing.T) {
	store := testutil.NewInMemoryMemberStore()
	store.FailOn["create"] = errors.New("connection reset")

	result, err := NewSeeder(store, logger.NewNop()).Run(context.Background(), 3)
	require.Error(t, err)
	assert.Equal(t, 0, result.Inserted)
}
