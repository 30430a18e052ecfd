package usecase

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"dashboard-srv/internal/dashboard"
	"dashboard-srv/internal/model"
	"dashboard-srv/internal/preset"
	"dashboard-srv/internal/preset/repository"
	"dashboard-srv/pkg/paginator"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Create - Save a named preset. Nil Filters snapshots the session's current filters.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input preset.CreateInput) (model.FilterPreset, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return model.FilterPreset{}, preset.ErrNameRequired
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return model.FilterPreset{}, preset.ErrNameTooLong
	}

	var filters model.Filters
	if input.Filters != nil {
		filters = *input.Filters
	} else {
		st, err := uc.dashboardUC.GetState(ctx, sc)
		if err != nil {
			uc.l.Errorf(ctx, "preset.usecase.Create: dashboardUC.GetState failed: %v", err)
			return model.FilterPreset{}, err
		}
		filters = st.Filters
	}

	p, err := uc.repo.CreatePreset(ctx, repository.CreatePresetOptions{
		ID:        uc.newID(),
		Name:      name,
		Filters:   filters,
		SessionID: sc.SessionID,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicatePreset) {
			return model.FilterPreset{}, preset.ErrDuplicateName
		}
		uc.l.Errorf(ctx, "preset.usecase.Create: repo.CreatePreset failed: %v", err)
		return model.FilterPreset{}, err
	}

	uc.l.Infof(ctx, "preset.usecase.Create: preset %s saved by session %s", p.ID, sc.SessionID)
	return p, nil
}

// List - Saved presets, newest first
func (uc *implUseCase) List(ctx context.Context, sc model.Scope) ([]model.FilterPreset, error) {
	presets, err := uc.repo.ListPresets(ctx, repository.ListPresetsOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "preset.usecase.List: repo.ListPresets failed: %v", err)
		return nil, err
	}
	return presets, nil
}

// ListPage - One page of saved presets plus pagination metadata
func (uc *implUseCase) ListPage(ctx context.Context, sc model.Scope, input preset.ListInput) (preset.ListOutput, error) {
	q := input.PaginateQuery
	q.Adjust()

	g, gctx := errgroup.WithContext(ctx)
	var (
		presets []model.FilterPreset
		total   int64
	)
	g.Go(func() error {
		var err error
		presets, err = uc.repo.ListPresets(gctx, repository.ListPresetsOptions{Limit: q.Limit, Offset: q.Offset()})
		return err
	})
	g.Go(func() error {
		var err error
		total, err = uc.repo.CountPresets(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		uc.l.Errorf(ctx, "preset.usecase.ListPage: repo failed: %v", err)
		return preset.ListOutput{}, err
	}

	return preset.ListOutput{
		Presets:   presets,
		Paginator: paginator.New(q, total, len(presets)),
	}, nil
}

// Apply - Copy a preset's filters into the session's explore form
func (uc *implUseCase) Apply(ctx context.Context, sc model.Scope, input preset.ApplyInput) (model.DashboardState, error) {
	p, err := uc.get(ctx, input.ID)
	if err != nil {
		return model.DashboardState{}, err
	}

	st, err := uc.dashboardUC.UpdateFilters(ctx, sc, dashboard.UpdateFiltersInput{Filters: p.Filters})
	if err != nil {
		uc.l.Errorf(ctx, "preset.usecase.Apply: dashboardUC.UpdateFilters failed: %v", err)
		return model.DashboardState{}, err
	}
	return st, nil
}

// Delete - Remove a preset
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, input preset.DeleteInput) error {
	if _, err := uuid.Parse(input.ID); err != nil {
		return preset.ErrPresetNotFound
	}

	if err := uc.repo.DeletePreset(ctx, input.ID); err != nil {
		if errors.Is(err, repository.ErrPresetNotFound) {
			return preset.ErrPresetNotFound
		}
		uc.l.Errorf(ctx, "preset.usecase.Delete: repo.DeletePreset failed: %v", err)
		return err
	}
	return nil
}

func (uc *implUseCase) get(ctx context.Context, id string) (model.FilterPreset, error) {
	// Ids are uuid columns; anything else cannot exist and would fail the cast.
	if _, err := uuid.Parse(id); err != nil {
		return model.FilterPreset{}, preset.ErrPresetNotFound
	}

	p, err := uc.repo.GetPresetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPresetNotFound) {
			return model.FilterPreset{}, preset.ErrPresetNotFound
		}
		uc.l.Errorf(ctx, "preset.usecase.get: repo.GetPresetByID failed: %v", err)
		return model.FilterPreset{}, err
	}
	return p, nil
}
