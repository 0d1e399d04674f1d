package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"extracurricular/internal/domain"
)

func TestNewActivityRepository_RejectsBadSeed(t *testing.T) {
	tests := []struct {
		name string
		seed []*domain.Activity
	}{
		{"missing name", []*domain.Activity{{MaxParticipants: 1}}},
		{"nil entry", []*domain.Activity{nil}},
		{"duplicate name", []*domain.Activity{
			{Name: "Chess Club", MaxParticipants: 1},
			{Name: "Chess Club", MaxParticipants: 2},
		}},
		{"zero capacity", []*domain.Activity{{Name: "Chess Club"}}},
		{"over capacity", []*domain.Activity{
			{Name: "Chess Club", MaxParticipants: 1, Participants: []string{"a@x.edu", "b@x.edu"}},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewActivityRepository(tt.seed)
			require.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestNewActivityRepository_DefaultActivities(t *testing.T) {
	repo, err := NewActivityRepository(DefaultActivities())
	require.NoError(t, err)

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, len(DefaultActivities()))
	for i := 1; i < len(list); i++ {
		assert.Less(t, list[i-1].Name, list[i].Name, "list is sorted by name")
	}
}

func TestActivityRepository_SeedIsCopied(t *testing.T) {
	seed := []*domain.Activity{
		{Name: "Chess Club", MaxParticipants: 3, Participants: []string{"a@x.edu"}},
	}
	repo, err := NewActivityRepository(seed)
	require.NoError(t, err)

	seed[0].Participants[0] = "changed@x.edu"

	got, err := repo.Get(context.Background(), "Chess Club")
	require.NoError(t, err)
	assert.Equal(t, []string{"a@x.edu"}, got.Participants)
}

func TestActivityRepository_Get(t *testing.T) {
	ctx := context.Background()
	repo, err := NewActivityRepository([]*domain.Activity{
		domain.NewActivity("Art Club", "Paint", "Thursdays", 2),
	})
	require.NoError(t, err)

	got, err := repo.Get(ctx, "Art Club")
	require.NoError(t, err)
	assert.Equal(t, "Art Club", got.Name)
	assert.Equal(t, []string{}, got.Participants)

	// Mutating the returned copy does not leak into the store.
	got.Participants = append(got.Participants, "x@x.edu")
	again, err := repo.Get(ctx, "Art Club")
	require.NoError(t, err)
	assert.Empty(t, again.Participants)

	_, err = repo.Get(ctx, "Nonexistent Club")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestActivityRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo, err := NewActivityRepository([]*domain.Activity{
		domain.NewActivity("Art Club", "Paint", "Thursdays", 2),
	})
	require.NoError(t, err)

	updated, err := repo.Update(ctx, "Art Club", func(a *domain.Activity) error {
		a.Participants = append(a.Participants, "a@x.edu")
		a.Name = "renamed"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "Art Club", updated.Name)
	assert.Equal(t, []string{"a@x.edu"}, updated.Participants)

	got, err := repo.Get(ctx, "Art Club")
	require.NoError(t, err)
	assert.Equal(t, []string{"a@x.edu"}, got.Participants)
}

func TestActivityRepository_UpdateErrorLeavesStateUnchanged(t *testing.T) {
	ctx := context.Background()
	repo, err := NewActivityRepository([]*domain.Activity{
		{Name: "Art Club", MaxParticipants: 2, Participants: []string{"a@x.edu"}},
	})
	require.NoError(t, err)

	boom := errors.New("boom")
	_, err = repo.Update(ctx, "Art Club", func(a *domain.Activity) error {
		a.Participants = append(a.Participants, "b@x.edu")
		return boom
	})
	require.ErrorIs(t, err, boom)

	got, err := repo.Get(ctx, "Art Club")
	require.NoError(t, err)
	assert.Equal(t, []string{"a@x.edu"}, got.Participants)
}

func TestActivityRepository_UpdateUnknown(t *testing.T) {
	repo, err := NewActivityRepository(nil)
	require.NoError(t, err)

	called := false
	_, err = repo.Update(context.Background(), "Nonexistent Club", func(a *domain.Activity) error {
		called = true
		return nil
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.False(t, called)
}

func TestActivityRepository_CanceledContext(t *testing.T) {
	repo, err := NewActivityRepository(DefaultActivities())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = repo.List(ctx)
	require.ErrorIs(t, err, context.Canceled)
	_, err = repo.Get(ctx, "Chess Club")
	require.ErrorIs(t, err, context.Canceled)
	_, err = repo.Update(ctx, "Chess Club", func(a *domain.Activity) error { return nil })
	require.ErrorIs(t, err, context.Canceled)
}
