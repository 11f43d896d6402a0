// internal/batch/batch_test.go
package batch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vdjmatch-core/match"
	"vdjmatch-core/receptor"
	"vdjmatch-core/scope"
	"vdjmatch-core/vdjdb"
)

func testStore() *vdjdb.Store {
	return &vdjdb.Store{Entries: []vdjdb.Entry{
		{CDR3: "CASSF", VSegment: "V1", JSegment: "J1", AntigenEpitope: "E1"},
		{CDR3: "CASSL", VSegment: "V2", JSegment: "J2", AntigenEpitope: "E2"},
		{CDR3: "CAVRD", VSegment: "V1", JSegment: "J3", AntigenEpitope: "E3"},
	}}
}

func TestMatchOrderAndIndexing(t *testing.T) {
	store := testStore()
	cfg := match.Config{Scope: scope.Spec{Substitutions: 1, Total: 1}}

	hits, err := Match(store,
		[]string{"CASSF", "CAVRD", "NOPE!"},
		[]string{"", "V1", ""},
		[]string{"", "", ""},
		cfg, 4)
	require.NoError(t, err)

	// Query 3 has no hits; that is success, not an error.
	require.Len(t, hits, 3) // CASSF~CASSF, CASSF~CASSL, CAVRD
	assert.Equal(t, 1, hits[0].QueryIndex, "query indices are 1-based")
	assert.Equal(t, "CASSF", hits[0].Entry.CDR3)
	assert.Equal(t, 1, hits[1].QueryIndex)
	assert.Equal(t, "CASSL", hits[1].Entry.CDR3)
	assert.Equal(t, 2, hits[2].QueryIndex)
	assert.Equal(t, "CAVRD", hits[2].Entry.CDR3)
}

func TestMatchLengthMismatch(t *testing.T) {
	store := testStore()
	_, err := Match(store, []string{"CASSF", "CASSL"}, []string{"V1"}, []string{"", ""}, match.Config{}, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLengthMismatch)

	_, err = Match(store, []string{"CASSF"}, []string{""}, []string{"J1", "J2"}, match.Config{}, 1)
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestMatchParallelDeterminism(t *testing.T) {
	store := testStore()
	cfg := match.Config{Scope: scope.Spec{Substitutions: 2, Insertions: 1, Deletions: 1, Total: 2}}
	queries := []receptor.Clonotype{
		receptor.New("CASSF", "", ""),
		receptor.New("CASSL", "", ""),
		receptor.New("CAVRD", "", ""),
		receptor.New("CASS", "", ""),
	}

	want, err := MatchClonotypes(store, queries, cfg, 1)
	require.NoError(t, err)
	for workers := 2; workers <= 8; workers++ {
		got, err := MatchClonotypes(store, queries, cfg, workers)
		require.NoError(t, err)
		assert.Equal(t, want, got, "workers=%d", workers)
	}
}

func TestMatchChunkedEquivalence(t *testing.T) {
	store := testStore()
	cfg := match.Config{Scope: scope.Spec{Substitutions: 2, Insertions: 1, Deletions: 1, Total: 2}}
	queries := []receptor.Clonotype{
		receptor.New("CASSF", "", ""),
		receptor.New("CASSL", "", ""),
		receptor.New("CAVRD", "", ""),
		receptor.New("CASS", "", ""),
		receptor.New("CAVRF", "", ""),
	}

	whole, err := MatchClonotypes(store, queries, cfg, 2)
	require.NoError(t, err)

	var calls []int
	chunked, err := MatchChunked(store, queries, cfg, 2, 2, func(done, total int) {
		calls = append(calls, done)
		assert.Equal(t, len(queries), total)
	})
	require.NoError(t, err)

	assert.Equal(t, whole, chunked, "chunked matching must be result-transparent")
	assert.Equal(t, []int{2, 4, 5}, calls)
}

func TestMatchEmptyBatch(t *testing.T) {
	hits, err := Match(testStore(), nil, nil, nil, match.Config{}, 2)
	require.NoError(t, err)
	assert.Empty(t, hits)
}
