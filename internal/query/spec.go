// Package query builds and runs filtered, sorted, limited row queries
// against the stats warehouse from a declarative per-dataset Spec.
package query

import "context"

// Row is a single result row keyed by column name.
type Row = map[string]any

// Spec is the immutable description of one queryable dataset. Specs are
// declared once (see internal/catalog) and reused across requests.
type Spec struct {
	// Table is the warehouse table or view to query.
	Table string

	// BaseColumns are always projected, regardless of requested metrics.
	BaseColumns []string

	// NameColumn is matched by the sanitized player-name filter.
	NameColumn string

	// PositionColumn is matched by the position filter.
	PositionColumn string

	// DefaultPositions applies when the caller does not supply positions.
	DefaultPositions []string

	// BundleKey names the result set in the returned bundle.
	BundleKey string

	// Weekly datasets accept a week filter; on seasonal datasets it is ignored.
	Weekly bool

	// DefaultLimit is the row limit applied when the caller does not ask
	// for one. Zero means unbounded by default.
	DefaultLimit int

	// MaxLimit caps any requested limit. Zero falls back to 300.
	MaxLimit int

	// SortColumn is the secondary tiebreak sort (ascending). Empty falls
	// back to "player_name".
	SortColumn string
}

const (
	defaultMaxLimit   = 300
	defaultSortColumn = "player_name"
)

func (s Spec) maxLimit() int {
	if s.MaxLimit > 0 {
		return s.MaxLimit
	}
	return defaultMaxLimit
}

func (s Spec) sortColumn() string {
	if s.SortColumn != "" {
		return s.SortColumn
	}
	return defaultSortColumn
}

// Filters carries caller-supplied filter values for one request.
type Filters struct {
	// Names are player names; each is sanitized and matched partially,
	// OR-combined. Empty means no name filter.
	Names []string

	// Seasons restricts rows to the given seasons. Empty means all.
	Seasons []int

	// Weeks restricts rows to the given weeks on weekly datasets.
	Weeks []int

	// Positions replaces the spec defaults when non-nil, even if equal to
	// them. Nil means "not supplied": fall back to the spec defaults. A
	// non-nil empty list disables position filtering entirely.
	Positions *[]string

	// Metrics are extra columns projected alongside the base columns.
	Metrics []string

	// OrderBy sorts descending by the named metric, excluding rows where
	// it is null. Empty means the default season/name ordering only.
	OrderBy string

	// Limit caps the row count, clamped to the spec maximum. Zero or
	// negative disables the limit; that is a deliberate escape hatch, so
	// callers wanting the dataset default should pass spec.DefaultLimit.
	Limit int
}

// Runner executes a composed SQL statement. *db.Pool implements it.
type Runner interface {
	Select(ctx context.Context, sql string, args []any) ([]Row, error)
}
