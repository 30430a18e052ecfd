package memory

import (
	"context"
	"testing"
	"time"

	"dashboard-srv/internal/dashboard/repository"
	"dashboard-srv/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateRepository(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	repo := &implStateRepository{entries: map[string]entry{}, now: func() time.Time { return now }}

	_, err := repo.Get(ctx, "s1")
	assert.ErrorIs(t, err, repository.ErrStateNotFound)

	st := model.NewDashboardState("s1", now)
	st.Screen = model.ScreenCompare
	require.NoError(t, repo.Save(ctx, repository.SaveOptions{State: st, TTL: time.Hour}))

	got, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, model.ScreenCompare, got.Screen)

	got.Comparison.SelectedRegions[0] = "UK"
	again, _ := repo.Get(ctx, "s1")
	assert.Equal(t, "USA", again.Comparison.SelectedRegions[0])

	now = now.Add(2 * time.Hour)
	_, err = repo.Get(ctx, "s1")
	assert.ErrorIs(t, err, repository.ErrStateNotFound)
}

func TestStateRepositoryDelete(t *testing.T) {
	ctx := context.Background()
	repo := New()

	require.NoError(t, repo.Save(ctx, repository.SaveOptions{State: model.NewDashboardState("s2", time.Now())}))
	require.NoError(t, repo.Delete(ctx, "s2"))

	_, err := repo.Get(ctx, "s2")
	assert.ErrorIs(t, err, repository.ErrStateNotFound)
}
