package query

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSpec = Spec{
	Table:            "vw_advanced_receiving_analytics",
	BaseColumns:      []string{"season", "player_name", "ff_team", "ff_position"},
	NameColumn:       "merge_name",
	PositionColumn:   "ff_position",
	DefaultPositions: []string{"WR", "TE", "RB"},
	BundleKey:        "advReceivingStats",
	DefaultLimit:     25,
}

type fakeRunner struct {
	sql  string
	args []any
	rows []Row
	err  error
}

func (f *fakeRunner) Select(_ context.Context, sql string, args []any) ([]Row, error) {
	f.sql = sql
	f.args = args
	return f.rows, f.err
}

func TestBuildProjectionDeduplicates(t *testing.T) {
	stmt, _, err := Build(testSpec, Filters{Metrics: []string{"targets", "season", "receiving_yards"}})
	require.NoError(t, err)
	assert.Contains(t, stmt, `SELECT "season", "player_name", "ff_team", "ff_position", "targets", "receiving_yards" FROM`)
}

func TestBuildRejectsUnsafeMetric(t *testing.T) {
	_, _, err := Build(testSpec, Filters{Metrics: []string{"targets; DROP TABLE players"}})
	assert.Error(t, err)
}

func TestBuildNameFilter(t *testing.T) {
	stmt, args, err := Build(testSpec, Filters{Names: []string{"Jefferson", "Odell Beckham Jr."}})
	require.NoError(t, err)
	assert.Contains(t, stmt, `("merge_name" ILIKE $1 OR "merge_name" ILIKE $2)`)
	assert.Equal(t, "%jefferson%", args[0])
	assert.Equal(t, "%odell beckham%", args[1])
}

func TestBuildNoNameFilterWhenEmpty(t *testing.T) {
	stmt, _, err := Build(testSpec, Filters{})
	require.NoError(t, err)
	assert.NotContains(t, stmt, "ILIKE")
}

func TestBuildSeasonAndWeekFilters(t *testing.T) {
	weekly := testSpec
	weekly.Weekly = true
	stmt, args, err := Build(weekly, Filters{Seasons: []int{2023, 2024}, Weeks: []int{1, 2}})
	require.NoError(t, err)
	assert.Contains(t, stmt, "season = ANY(")
	assert.Contains(t, stmt, "week = ANY(")
	assert.Contains(t, args, []int{2023, 2024})
	assert.Contains(t, args, []int{1, 2})
}

func TestBuildWeekFilterIgnoredOnSeasonalSpec(t *testing.T) {
	stmt, _, err := Build(testSpec, Filters{Weeks: []int{1, 2}})
	require.NoError(t, err)
	assert.NotContains(t, stmt, "week = ANY(")
}

func TestPositionDefaultsApplyWhenOmitted(t *testing.T) {
	_, args, err := Build(testSpec, Filters{})
	require.NoError(t, err)
	assert.Contains(t, args, []string{"WR", "TE", "RB"})
}

func TestPositionExplicitListReplacesDefaults(t *testing.T) {
	positions := []string{"te"}
	_, args, err := Build(testSpec, Filters{Positions: &positions})
	require.NoError(t, err)
	assert.Contains(t, args, []string{"TE"})
	assert.NotContains(t, args, []string{"WR", "TE", "RB"})
}

func TestPositionExplicitEmptyListDisablesFilter(t *testing.T) {
	empty := []string{}
	stmt, _, err := Build(testSpec, Filters{Positions: &empty})
	require.NoError(t, err)
	assert.NotContains(t, stmt, `"ff_position" = ANY(`)
}

func TestBuildOrderByMetric(t *testing.T) {
	stmt, _, err := Build(testSpec, Filters{OrderBy: "receiving_yards"})
	require.NoError(t, err)
	assert.Contains(t, stmt, `"receiving_yards" IS NOT NULL`)
	assert.Contains(t, stmt, `ORDER BY "receiving_yards" DESC, season DESC, "player_name" ASC`)
}

func TestBuildDefaultOrdering(t *testing.T) {
	stmt, _, err := Build(testSpec, Filters{})
	require.NoError(t, err)
	assert.Contains(t, stmt, `ORDER BY season DESC, "player_name" ASC`)
	assert.NotContains(t, stmt, "IS NOT NULL")
}

func TestEffectiveLimit(t *testing.T) {
	tests := []struct {
		requested int
		want      string
	}{
		{25, "LIMIT 25"},
		{300, "LIMIT 300"},
		{500, "LIMIT 300"}, // clamped to the hard cap
	}
	for _, tt := range tests {
		stmt, _, err := Build(testSpec, Filters{Limit: tt.requested})
		require.NoError(t, err)
		assert.Contains(t, stmt, tt.want, "requested %d", tt.requested)
	}

	// Zero or negative: unbounded escape hatch, no LIMIT clause at all.
	for _, requested := range []int{0, -1} {
		stmt, _, err := Build(testSpec, Filters{Limit: requested})
		require.NoError(t, err)
		assert.NotContains(t, stmt, "LIMIT", "requested %d", requested)
	}
}

func TestRunReturnsBundle(t *testing.T) {
	runner := &fakeRunner{rows: []Row{{"player_name": "Justin Jefferson"}}}
	got, err := Run(context.Background(), runner, testSpec, Filters{Limit: 10})
	require.NoError(t, err)
	require.Contains(t, got, "advReceivingStats")
	assert.Len(t, got["advReceivingStats"], 1)
}

func TestRunEmptyResultIsEmptySlice(t *testing.T) {
	got, err := Run(context.Background(), &fakeRunner{}, testSpec, Filters{})
	require.NoError(t, err)
	assert.NotNil(t, got["advReceivingStats"])
	assert.Empty(t, got["advReceivingStats"])
}

func TestRunWrapsBackendFailure(t *testing.T) {
	cause := errors.New("connection refused")
	_, err := Run(context.Background(), &fakeRunner{err: cause}, testSpec, Filters{})
	var be *BackendError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, "advReceivingStats", be.BundleKey)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, fmt.Sprintf("query advReceivingStats: %v", cause), err.Error())
}
