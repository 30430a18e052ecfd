package postgre

import (
	"testing"

	"dashboard-srv/internal/model"
	"dashboard-srv/internal/preset/repository"
	"dashboard-srv/pkg/log"

	"github.com/stretchr/testify/assert"
)

func newTestRepo(schema string) *implRepository {
	return New(nil, log.NewNopLogger(), schema).(*implRepository)
}

func TestBuildInsertQuery(t *testing.T) {
	r := newTestRepo("")

	query, args := r.buildInsertQuery(repository.CreatePresetOptions{
		ID:        "p1",
		Name:      "US TikTok",
		Filters:   model.Filters{Platform: "TikTok", Region: "USA"},
		SessionID: "s1",
	})

	assert.Contains(t, query, `INSERT INTO "dashboard".filter_presets`)
	assert.Contains(t, query, "RETURNING "+presetColumns)
	assert.Equal(t, []any{"p1", "US TikTok", "TikTok", "", "USA", "", "", "s1"}, args)
}

func TestBuildListQuery(t *testing.T) {
	r := newTestRepo("analytics")

	tests := []struct {
		name  string
		opts  repository.ListPresetsOptions
		limit int
		off   int
	}{
		{name: "defaults", opts: repository.ListPresetsOptions{}, limit: defaultListLimit, off: 0},
		{name: "clamped", opts: repository.ListPresetsOptions{Limit: 10000, Offset: -4}, limit: maxListLimit, off: 0},
		{name: "explicit", opts: repository.ListPresetsOptions{Limit: 5, Offset: 10}, limit: 5, off: 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args := r.buildListQuery(tt.opts)
			assert.Contains(t, query, `FROM "analytics".filter_presets`)
			assert.Contains(t, query, "ORDER BY created_at DESC")
			assert.Equal(t, []any{tt.limit, tt.off}, args)
		})
	}
}

func TestBuildSchemaIsQuoted(t *testing.T) {
	r := newTestRepo(`evil"; DROP TABLE x; --`)
	query, _ := r.buildDeleteQuery("p1")
	assert.Contains(t, query, `"evil""; DROP TABLE x; --".filter_presets`)
}
