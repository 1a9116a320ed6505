package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/gridironlab/fantasy-data/internal/api/respond"
	"github.com/gridironlab/fantasy-data/internal/catalog"
	"github.com/gridironlab/fantasy-data/internal/metrics"
	"github.com/gridironlab/fantasy-data/internal/query"
)

// GetDatasetStats serves filtered rows from one warehouse dataset.
// @Summary Query a stats dataset
// @Description Returns filtered, sorted rows from the named dataset.
// @Tags stats
// @Produce json
// @Param dataset path string true "Dataset name (see /api/v1/datasets)"
// @Param names query string false "Comma-separated player names (partial match)"
// @Param seasons query string false "Comma-separated seasons"
// @Param weeks query string false "Comma-separated weeks (weekly datasets only)"
// @Param positions query string false "Comma-separated positions; empty value disables the position filter"
// @Param metrics query string false "Comma-separated extra columns to project"
// @Param order_by query string false "Metric to sort descending by"
// @Param limit query int false "Row limit; 0 disables"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /api/v1/stats/{dataset} [get]
func (h *Handler) GetDatasetStats(w http.ResponseWriter, r *http.Request) {
	dataset := chi.URLParam(r, "dataset")
	spec, ok := catalog.Lookup(dataset)
	if !ok {
		respond.WriteError(w, http.StatusNotFound, "UNKNOWN_DATASET", "Unknown dataset: "+dataset)
		return
	}

	f, err := parseFilters(r.URL.Query(), spec)
	if err != nil {
		respond.WriteError(w, http.StatusBadRequest, "INVALID_PARAMS", err.Error())
		return
	}

	metrics.QueriesTotal.WithLabelValues(dataset).Inc()
	result, err := query.Run(r.Context(), h.pool, spec, f)
	if err != nil {
		metrics.QueryErrorsTotal.WithLabelValues(dataset).Inc()
		var be *query.BackendError
		if errors.As(err, &be) {
			respond.WriteError(w, http.StatusBadGateway, "WAREHOUSE_ERROR", "Warehouse query failed")
			return
		}
		respond.WriteError(w, http.StatusBadRequest, "INVALID_QUERY", err.Error())
		return
	}

	respond.WriteJSONObject(w, http.StatusOK, result)
}

// ListDatasets returns the queryable dataset names.
// @Summary List datasets
// @Tags stats
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/datasets [get]
func (h *Handler) ListDatasets(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"datasets": catalog.Names(),
	})
}

// GetDictionary searches the metric dictionary.
// @Summary Search metric dictionary
// @Description Returns metric descriptions matching the given terms.
// @Tags stats
// @Produce json
// @Param terms query string false "Comma-separated search terms"
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/dictionary [get]
func (h *Handler) GetDictionary(w http.ResponseWriter, r *http.Request) {
	terms := csvParam(r.URL.Query(), "terms")
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"fields": catalog.Dictionary(terms),
	})
}

// parseFilters builds query filters from request parameters. The positions
// parameter is tri-state: absent keeps the dataset defaults, present with
// values replaces them, present but empty disables the position filter.
func parseFilters(q url.Values, spec query.Spec) (query.Filters, error) {
	f := query.Filters{
		Names:   csvParam(q, "names"),
		Metrics: csvParam(q, "metrics"),
		OrderBy: strings.TrimSpace(q.Get("order_by")),
	}

	var err error
	if f.Seasons, err = csvInts(q, "seasons"); err != nil {
		return f, err
	}
	if f.Weeks, err = csvInts(q, "weeks"); err != nil {
		return f, err
	}

	if q.Has("positions") {
		positions := csvParam(q, "positions")
		if positions == nil {
			positions = []string{}
		}
		f.Positions = &positions
	}

	f.Limit = spec.DefaultLimit
	if q.Has("limit") {
		limit, err := strconv.Atoi(q.Get("limit"))
		if err != nil {
			return f, errors.New("limit must be an integer")
		}
		f.Limit = limit
	}

	return f, nil
}

// csvParam splits a comma-separated parameter, dropping empty entries.
func csvParam(q url.Values, key string) []string {
	raw := q.Get(key)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func csvInts(q url.Values, key string) ([]int, error) {
	parts := csvParam(q, key)
	if parts == nil {
		return nil, nil
	}
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, errors.New(key + " must be comma-separated integers")
		}
		out = append(out, n)
	}
	return out, nil
}
