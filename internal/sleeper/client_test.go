package sleeper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridironlab/fantasy-data/internal/retry"
)

func testPolicy() retry.Policy {
	return retry.Policy{
		MaxAttempts:  3,
		InitialDelay: 2 * time.Millisecond,
		MaxDelay:     8 * time.Millisecond,
		Multiplier:   2,
	}
}

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 6000, testPolicy(), nil)
}

func TestGetUser(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/user/sleeperbot", r.URL.Path)
		w.Write([]byte(`{"user_id":"12345678","username":"sleeperbot","display_name":"SleeperBot"}`))
	}))

	u, err := c.GetUser(context.Background(), "sleeperbot")
	require.NoError(t, err)
	assert.Equal(t, "12345678", u.UserID)
	assert.Equal(t, "SleeperBot", u.DisplayName)
}

func TestServerErrorIsRetried(t *testing.T) {
	calls := 0
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 3 {
			http.Error(w, "upstream hiccup", http.StatusBadGateway)
			return
		}
		w.Write([]byte(`[{"roster_id":1,"owner_id":"u1","players":["4046","HOU"]}]`))
	}))

	rosters, err := c.GetRosters(context.Background(), "league1")
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	require.Len(t, rosters, 1)
	assert.Equal(t, []string{"4046", "HOU"}, rosters[0].Players)
}

func TestClientErrorIsNotRetried(t *testing.T) {
	calls := 0
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "no such league", http.StatusNotFound)
	}))

	_, err := c.GetRosters(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, 1, calls)

	var se *retry.StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusNotFound, se.StatusCode)
}

func TestRateLimitedRetryHonorsHint(t *testing.T) {
	calls := 0
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.Header().Set("Retry-After", "0.01")
			http.Error(w, "slow down", http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`[]`))
	}))

	start := time.Now()
	_, err := c.GetMatchups(context.Background(), "league1", 3)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Less(t, time.Since(start), time.Second)
}

func TestGetLeaguesForUser(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/user/u1/leagues/nfl/2025", r.URL.Path)
		w.Write([]byte(`[{"league_id":"l1","name":"Dynasty","season":"2025","total_rosters":12}]`))
	}))

	leagues, err := c.GetLeaguesForUser(context.Background(), "u1", "nfl", 2025)
	require.NoError(t, err)
	require.Len(t, leagues, 1)
	assert.Equal(t, "Dynasty", leagues[0].Name)
	assert.Equal(t, 12, leagues[0].TotalRosters)
}

func TestTrendingPlayersQueryParams(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/players/nfl/trending/add", r.URL.Path)
		assert.Equal(t, "48", r.URL.Query().Get("lookback_hours"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		w.Write([]byte(`[{"player_id":"4046","count":999}]`))
	}))

	got, err := c.GetTrendingPlayers(context.Background(), "add", 48, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "4046", got[0].PlayerID)
}
