package service_test

import (
	"context"
	"testing"
	"time"

	errorvalues "github.com/steadyapp/steady/internal/error_values"
	"github.com/steadyapp/steady/internal/repository"
	"github.com/steadyapp/steady/internal/service"
	"github.com/steadyapp/steady/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// End-to-end flow against a real database: ownership fencing between
// two users, entry ordering, duplicate-date conflict and cascade delete.
func TestHabitTrackingIntegrational(t *testing.T) {
	dbCfg := setupTestDB(t)
	usersRepo := repository.NewUsersRepo(dbCfg)
	habitsRepo := repository.NewHabitsRepo(dbCfg)
	entriesRepo := repository.NewEntriesRepo(dbCfg)
	us := service.NewUserService(usersRepo)
	hs := service.NewHabitsService(habitsRepo, entriesRepo)
	es := service.NewEntriesService(habitsRepo, entriesRepo)
	ctx := context.Background()

	alice, err := us.Register(ctx, &service.RegisterRequest{Name: "alice", Password: "alice_password"})
	require.NoError(t, err)
	bob, err := us.Register(ctx, &service.RegisterRequest{Name: "bob", Password: "bob_password"})
	require.NoError(t, err)

	var habit *entity.Habit
	t.Run("created habit has no entries", func(t *testing.T) {
		habit, err = hs.CreateHabit(ctx, alice.ID, service.HabitRequest{Name: "Run"})
		require.NoError(t, err)
		assert.Equal(t, alice.ID, habit.UserID)
		assert.Equal(t, "Run", habit.Name)
		assert.Empty(t, habit.Entries)

		fetched, err := hs.GetHabit(ctx, habit.ID, alice.ID)
		require.NoError(t, err)
		assert.Empty(t, fetched.Entries)
	})

	t.Run("rename round-trip", func(t *testing.T) {
		err := hs.UpdateHabit(ctx, habit.ID, alice.ID, service.HabitRequest{Name: "Run 5k"})
		assert.NoError(t, err)
		// Identical second update leaves state unchanged
		err = hs.UpdateHabit(ctx, habit.ID, alice.ID, service.HabitRequest{Name: "Run 5k"})
		assert.NoError(t, err)
		fetched, err := hs.GetHabit(ctx, habit.ID, alice.ID)
		require.NoError(t, err)
		assert.Equal(t, "Run 5k", fetched.Name)
	})

	t.Run("other user sees nothing", func(t *testing.T) {
		_, err := hs.GetHabit(ctx, habit.ID, bob.ID)
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
		err = hs.UpdateHabit(ctx, habit.ID, bob.ID, service.HabitRequest{Name: "stolen"})
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
		err = hs.DeleteHabit(ctx, habit.ID, bob.ID)
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
		_, err = es.AddEntry(ctx, habit.ID, bob.ID, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), true)
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
		_, err = es.GetHabitEntries(ctx, habit.ID, bob.ID)
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)

		habits, err := hs.GetUserHabits(ctx, bob.ID)
		assert.NoError(t, err)
		assert.Empty(t, habits)
	})

	dates := []time.Time{
		time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
	}
	t.Run("entries come back sorted by date", func(t *testing.T) {
		// Inserted out of order on purpose
		for _, d := range dates {
			_, err := es.AddEntry(ctx, habit.ID, alice.ID, d, true)
			require.NoError(t, err)
		}
		entries, err := es.GetHabitEntries(ctx, habit.ID, alice.ID)
		require.NoError(t, err)
		require.Equal(t, len(dates), len(entries))
		for i := 1; i < len(entries); i++ {
			assert.True(t, entries[i-1].Date.Before(entries[i].Date))
		}
	})

	t.Run("duplicate date rejected", func(t *testing.T) {
		_, err := es.AddEntry(ctx, habit.ID, alice.ID, dates[0], false)
		assert.ErrorIs(t, err, errorvalues.ErrEntryExists)
	})

	t.Run("entries attached on habit reads", func(t *testing.T) {
		fetched, err := hs.GetHabit(ctx, habit.ID, alice.ID)
		require.NoError(t, err)
		assert.Equal(t, len(dates), len(fetched.Entries))
		habits, err := hs.GetUserHabits(ctx, alice.ID)
		require.NoError(t, err)
		require.Equal(t, 1, len(habits))
		assert.Equal(t, len(dates), len(habits[0].Entries))
	})

	t.Run("delete cascades entries", func(t *testing.T) {
		err := hs.DeleteHabit(ctx, habit.ID, alice.ID)
		assert.NoError(t, err)
		_, err = hs.GetHabit(ctx, habit.ID, alice.ID)
		assert.ErrorIs(t, err, errorvalues.ErrHabitNotFound)
		_, err = es.GetHabitEntries(ctx, habit.ID, alice.ID)
		assert.ErrorIs(t, err, errorvalues.ErrHabitNotFound)
	})
}
