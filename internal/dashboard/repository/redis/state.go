package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"dashboard-srv/internal/dashboard/repository"
	"dashboard-srv/internal/model"
	pkgRedis "dashboard-srv/pkg/redis"
)

func (r *implStateRepository) Get(ctx context.Context, sessionID string) (model.DashboardState, error) {
	data, err := r.redis.Get(ctx, keyPrefix+sessionID)
	if err != nil {
		if errors.Is(err, pkgRedis.ErrKeyNotFound) {
			return model.DashboardState{}, repository.ErrStateNotFound
		}
		r.l.Errorf(ctx, "dashboard.repository.redis.Get: failed to read state: %v", err)
		return model.DashboardState{}, err
	}

	var st model.DashboardState
	if err := json.Unmarshal([]byte(data), &st); err != nil {
		r.l.Errorf(ctx, "dashboard.repository.redis.Get: failed to unmarshal state: %v", err)
		return model.DashboardState{}, fmt.Errorf("%w: %v", repository.ErrDecodeState, err)
	}
	if st.Tokens == nil {
		st.Tokens = map[model.Operation]uint64{}
	}
	return st, nil
}

func (r *implStateRepository) Save(ctx context.Context, opts repository.SaveOptions) error {
	data, err := json.Marshal(opts.State)
	if err != nil {
		return fmt.Errorf("%w: %v", repository.ErrEncodeState, err)
	}
	if err := r.redis.Set(ctx, keyPrefix+opts.State.SessionID, data, opts.TTL); err != nil {
		r.l.Errorf(ctx, "dashboard.repository.redis.Save: failed to save state: %v", err)
		return err
	}
	return nil
}

func (r *implStateRepository) Delete(ctx context.Context, sessionID string) error {
	if err := r.redis.Delete(ctx, keyPrefix+sessionID); err != nil {
		r.l.Errorf(ctx, "dashboard.repository.redis.Delete: failed to delete state: %v", err)
		return err
	}
	return nil
}
