package query

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// BackendError wraps a warehouse failure with the bundle key of the query
// that triggered it.
type BackendError struct {
	BundleKey string
	Err       error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("query %s: %v", e.BundleKey, e.Err)
}

func (e *BackendError) Unwrap() error { return e.Err }

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Run composes the query described by spec and filters, executes it, and
// returns the rows under the spec's bundle key. Backend failures come back
// as a *BackendError.
func Run(ctx context.Context, runner Runner, spec Spec, f Filters) (map[string][]Row, error) {
	stmt, args, err := Build(spec, f)
	if err != nil {
		return nil, err
	}

	rows, err := runner.Select(ctx, stmt, args)
	if err != nil {
		return nil, &BackendError{BundleKey: spec.BundleKey, Err: err}
	}
	if rows == nil {
		rows = []Row{}
	}
	return map[string][]Row{spec.BundleKey: rows}, nil
}

// Build returns the SQL statement and arguments for the given spec and
// filters without executing anything.
func Build(spec Spec, f Filters) (string, []any, error) {
	columns, err := projection(spec, f.Metrics)
	if err != nil {
		return "", nil, err
	}

	var (
		where []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	// Name filter: OR-combined partial matches on sanitized names.
	if terms := sanitizedTerms(f.Names); len(terms) > 0 {
		ors := make([]string, len(terms))
		for i, term := range terms {
			ors[i] = fmt.Sprintf("%s ILIKE %s", quoteIdent(spec.NameColumn), arg("%"+term+"%"))
		}
		where = append(where, "("+strings.Join(ors, " OR ")+")")
	}

	if len(f.Seasons) > 0 {
		where = append(where, fmt.Sprintf("season = ANY(%s)", arg(f.Seasons)))
	}
	if spec.Weekly && len(f.Weeks) > 0 {
		where = append(where, fmt.Sprintf("week = ANY(%s)", arg(f.Weeks)))
	}

	// An empty effective position list means no position filter at all,
	// not "match nothing". Callers rely on passing an explicit empty list
	// as a pass-through.
	if positions := effectivePositions(spec, f); len(positions) > 0 {
		where = append(where, fmt.Sprintf("%s = ANY(%s)", quoteIdent(spec.PositionColumn), arg(positions)))
	}

	orderBy := []string{}
	if f.OrderBy != "" {
		if !identRe.MatchString(f.OrderBy) {
			return "", nil, fmt.Errorf("invalid order-by column %q", f.OrderBy)
		}
		where = append(where, quoteIdent(f.OrderBy)+" IS NOT NULL")
		orderBy = append(orderBy, quoteIdent(f.OrderBy)+" DESC")
	}
	orderBy = append(orderBy, `season DESC`, quoteIdent(spec.sortColumn())+" ASC")

	var b strings.Builder
	fmt.Fprintf(&b, "SELECT %s FROM %s", strings.Join(columns, ", "), quoteIdent(spec.Table))
	if len(where) > 0 {
		b.WriteString(" WHERE " + strings.Join(where, " AND "))
	}
	b.WriteString(" ORDER BY " + strings.Join(orderBy, ", "))
	if limit := effectiveLimit(spec, f.Limit); limit > 0 {
		fmt.Fprintf(&b, " LIMIT %d", limit)
	}

	return b.String(), args, nil
}

// projection returns the quoted column list: base columns plus requested
// metrics, de-duplicated, base columns first.
func projection(spec Spec, metrics []string) ([]string, error) {
	seen := make(map[string]bool, len(spec.BaseColumns)+len(metrics))
	columns := make([]string, 0, len(spec.BaseColumns)+len(metrics))
	for _, c := range append(append([]string{}, spec.BaseColumns...), metrics...) {
		if !identRe.MatchString(c) {
			return nil, fmt.Errorf("invalid column %q", c)
		}
		if seen[c] {
			continue
		}
		seen[c] = true
		columns = append(columns, quoteIdent(c))
	}
	return columns, nil
}

func sanitizedTerms(names []string) []string {
	terms := make([]string, 0, len(names))
	for _, n := range names {
		if s := SanitizeName(n); s != "" {
			terms = append(terms, s)
		}
	}
	return terms
}

// effectivePositions resolves the position filter: an explicitly supplied
// list fully replaces the defaults (even when equal to them); nil falls back
// to the spec defaults. Codes are upper-cased.
func effectivePositions(spec Spec, f Filters) []string {
	src := spec.DefaultPositions
	if f.Positions != nil {
		src = *f.Positions
	}
	out := make([]string, len(src))
	for i, p := range src {
		out[i] = strings.ToUpper(p)
	}
	return out
}

func effectiveLimit(spec Spec, requested int) int {
	if requested <= 0 {
		return 0
	}
	if hardCap := spec.maxLimit(); requested > hardCap {
		return hardCap
	}
	return requested
}

func quoteIdent(s string) string {
	return `"` + s + `"`
}
