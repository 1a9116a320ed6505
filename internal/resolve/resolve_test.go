package resolve

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore records every batch and serves players from a fixed map.
type fakeStore struct {
	players map[int64]PlayerRow
	batches [][]int64
	err     error
}

func (f *fakeStore) PlayersByIDs(_ context.Context, ids []int64) ([]PlayerRow, error) {
	f.batches = append(f.batches, ids)
	if f.err != nil {
		return nil, f.err
	}
	var rows []PlayerRow
	for _, id := range ids {
		if p, ok := f.players[id]; ok {
			rows = append(rows, p)
		}
	}
	return rows, nil
}

func newTestResolver(store *fakeStore, ttl time.Duration, batchSize int) *Resolver {
	return NewResolver(store, NewCache(ttl), batchSize, nil)
}

func TestResolveEmptyInput(t *testing.T) {
	store := &fakeStore{}
	got, err := newTestResolver(store, time.Minute, 100).Resolve(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Empty(t, store.batches, "empty input must not hit the store")
}

func TestResolveTeamDefenses(t *testing.T) {
	store := &fakeStore{}
	got, err := newTestResolver(store, time.Minute, 100).Resolve(context.Background(), []string{"HOU", "DAL"})
	require.NoError(t, err)
	assert.Equal(t, []Player{
		{Name: "HOU", Position: "DEF", Team: "HOU"},
		{Name: "DAL", Position: "DEF", Team: "DAL"},
	}, got)
	assert.Empty(t, store.batches, "non-numeric ids never reach the store")
}

func TestResolveUnknownNumericID(t *testing.T) {
	store := &fakeStore{}
	got, err := newTestResolver(store, time.Minute, 100).Resolve(context.Background(), []string{"9999"})
	require.NoError(t, err)
	assert.Equal(t, []Player{{Name: "9999", Position: "", Team: ""}}, got)
}

func TestResolveOrderAndDuplicates(t *testing.T) {
	store := &fakeStore{players: map[int64]PlayerRow{
		4046: {SleeperID: 4046, Name: "Patrick Mahomes", Team: "KC", Position: "QB"},
		6794: {SleeperID: 6794, Name: "Justin Jefferson", Team: "MIN", Position: "WR"},
	}}
	ids := []string{"6794", "HOU", "4046", "6794", "1"}
	got, err := newTestResolver(store, time.Minute, 100).Resolve(context.Background(), ids)
	require.NoError(t, err)
	require.Len(t, got, len(ids))
	assert.Equal(t, "Justin Jefferson", got[0].Name)
	assert.Equal(t, Player{Name: "HOU", Position: "DEF", Team: "HOU"}, got[1])
	assert.Equal(t, "Patrick Mahomes", got[2].Name)
	assert.Equal(t, got[0], got[3], "duplicate ids repeat the same value")
	assert.Equal(t, Player{Name: "1"}, got[4])

	// Duplicates collapse to one lookup.
	require.Len(t, store.batches, 1)
	assert.Len(t, store.batches[0], 3)
}

func TestResolveCacheSuppressesSecondLookup(t *testing.T) {
	store := &fakeStore{players: map[int64]PlayerRow{
		4046: {SleeperID: 4046, Name: "Patrick Mahomes", Team: "KC", Position: "QB"},
	}}
	r := newTestResolver(store, time.Minute, 100)

	_, err := r.Resolve(context.Background(), []string{"4046"})
	require.NoError(t, err)
	got, err := r.Resolve(context.Background(), []string{"4046"})
	require.NoError(t, err)

	assert.Equal(t, "Patrick Mahomes", got[0].Name)
	assert.Len(t, store.batches, 1, "second resolve within TTL must not hit the store")
}

func TestResolveStaleEntryIsRefreshed(t *testing.T) {
	store := &fakeStore{players: map[int64]PlayerRow{
		4046: {SleeperID: 4046, Name: "Patrick Mahomes", Team: "KC", Position: "QB"},
	}}
	r := newTestResolver(store, 5*time.Millisecond, 100)

	_, err := r.Resolve(context.Background(), []string{"4046"})
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	_, err = r.Resolve(context.Background(), []string{"4046"})
	require.NoError(t, err)

	assert.Len(t, store.batches, 2, "expired entry must be refreshed, not served")
}

func TestResolveBatching(t *testing.T) {
	store := &fakeStore{players: map[int64]PlayerRow{}}
	ids := make([]string, 0, 250)
	for i := 0; i < 250; i++ {
		id := int64(1000 + i)
		ids = append(ids, fmt.Sprintf("%d", id))
		store.players[id] = PlayerRow{SleeperID: id, Name: fmt.Sprintf("Player %d", id)}
	}

	got, err := newTestResolver(store, time.Minute, 100).Resolve(context.Background(), ids)
	require.NoError(t, err)
	assert.Len(t, got, 250)

	require.Len(t, store.batches, 3)
	sizes := []int{len(store.batches[0]), len(store.batches[1]), len(store.batches[2])}
	assert.ElementsMatch(t, []int{100, 100, 50}, sizes)
}

func TestResolveLookupFailurePropagates(t *testing.T) {
	cause := errors.New("connection refused")
	store := &fakeStore{err: cause}
	_, err := newTestResolver(store, time.Minute, 100).Resolve(context.Background(), []string{"4046"})
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
}

func TestResolveNormalizesNumericform(t *testing.T) {
	store := &fakeStore{players: map[int64]PlayerRow{
		7: {SleeperID: 7, Name: "Lucky Seven", Team: "BUF", Position: "RB"},
	}}
	r := newTestResolver(store, time.Minute, 100)
	got, err := r.Resolve(context.Background(), []string{"007", "7"})
	require.NoError(t, err)
	assert.Equal(t, got[0], got[1])
	assert.Len(t, store.batches, 1)
}
