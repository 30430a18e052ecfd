package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"dashboard-srv/internal/dashboard/repository"
	"dashboard-srv/internal/model"
	"dashboard-srv/pkg/log"
	pkgRedis "dashboard-srv/pkg/redis"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRedis struct {
	data map[string]string
	ttls map[string]time.Duration
	err  error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	if f.err != nil {
		return f.err
	}
	switch v := value.(type) {
	case []byte:
		f.data[key] = string(v)
	case string:
		f.data[key] = v
	}
	f.ttls[key] = ttl
	return nil
}

func (f *fakeRedis) Get(ctx context.Context, key string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	v, ok := f.data[key]
	if !ok {
		return "", pkgRedis.ErrKeyNotFound
	}
	return v, nil
}

func (f *fakeRedis) Delete(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		delete(f.data, k)
	}
	return nil
}

func (f *fakeRedis) Close() error                   { return nil }
func (f *fakeRedis) Ping(ctx context.Context) error { return nil }

func TestSaveAndGet(t *testing.T) {
	ctx := context.Background()
	fr := newFakeRedis()
	repo := New(fr, log.NewNopLogger())

	st := model.NewDashboardState("abc", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	st.Tokens[model.OperationExplore] = 7
	st.Explore = &model.ExploreResult{
		EngagementDistribution: model.EngagementDistribution{{Label: "High", Count: 3}, {Label: "Low", Count: 1}},
	}

	require.NoError(t, repo.Save(ctx, repository.SaveOptions{State: st, TTL: time.Hour}))
	assert.Equal(t, time.Hour, fr.ttls["dashboard:session:abc"])

	got, err := repo.Get(ctx, "abc")
	require.NoError(t, err)
	assert.EqualValues(t, 7, got.Tokens[model.OperationExplore])
	require.NotNil(t, got.Explore)
	assert.Equal(t, "High", got.Explore.EngagementDistribution[0].Label)
}

func TestGetErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		repo := New(newFakeRedis(), log.NewNopLogger())
		_, err := repo.Get(ctx, "nope")
		assert.ErrorIs(t, err, repository.ErrStateNotFound)
	})

	t.Run("corrupt payload", func(t *testing.T) {
		fr := newFakeRedis()
		fr.data["dashboard:session:bad"] = "{not json"
		repo := New(fr, log.NewNopLogger())
		_, err := repo.Get(ctx, "bad")
		assert.ErrorIs(t, err, repository.ErrDecodeState)
	})

	t.Run("connection failure", func(t *testing.T) {
		fr := newFakeRedis()
		fr.err = errors.New("dial tcp: refused")
		repo := New(fr, log.NewNopLogger())
		_, err := repo.Get(ctx, "x")
		assert.EqualError(t, err, "dial tcp: refused")
	})
}
