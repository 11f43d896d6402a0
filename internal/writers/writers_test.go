// internal/writers/writers_test.go
package writers

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vdjmatch-core/match"
	"vdjmatch-core/receptor"
	"vdjmatch-core/vdjdb"

	"vdjmatch/internal/batch"
	"vdjmatch/pkg/api"
)

func sampleHits() []batch.Result {
	return []batch.Result{
		{
			QueryIndex: 1,
			Query:      receptor.Clonotype{CDR3: "CASSF", VSegment: "TRBV9"},
			Hit: match.Hit{
				Entry: vdjdb.Entry{
					CDR3: "CASSL", VSegment: "TRBV9", JSegment: "TRBJ2-7",
					Gene: "TRB", Species: "HomoSapiens",
					AntigenEpitope: "KLVALGINAV", Score: 2,
				},
				Substitutions: 1, Distance: 1, Score: 0.8,
			},
		},
		{
			QueryIndex: 2,
			Query:      receptor.Clonotype{CDR3: "CAVRD"},
			Hit: match.Hit{
				Entry: vdjdb.Entry{CDR3: "CAVRD", Gene: "TRA", Species: "HomoSapiens"},
				Score: 1,
			},
		},
	}
}

func TestWriteHitsTSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteHits("tsv", &buf, sampleHits(), true))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "query_index\tquery_cdr3"))

	fields := strings.Split(lines[1], "\t")
	require.Len(t, fields, len(hitColumns))
	assert.Equal(t, "1", fields[0])
	assert.Equal(t, "CASSF", fields[1])
	assert.Equal(t, "CASSL", fields[4])
	assert.Equal(t, "KLVALGINAV", fields[9])
}

func TestWriteHitsTSVNoHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteHits("tsv", &buf, sampleHits(), false))
	assert.False(t, strings.HasPrefix(buf.String(), "query_index"))
}

func TestWriteHitsJSONL(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteHits("jsonl", &buf, sampleHits(), false))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)

	var h api.HitV1
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &h))
	assert.Equal(t, 1, h.QueryIndex)
	assert.Equal(t, "CASSL", h.CDR3)
	assert.Equal(t, 1, h.Substitutions)
	assert.Equal(t, 1, h.EditDistance)
}

func TestWriteHitsJSONArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteHits("json", &buf, sampleHits(), false))

	var out []api.HitV1
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.Len(t, out, 2)
	assert.Equal(t, "CAVRD", out[1].CDR3)
}

func TestWriteHitsUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := WriteHits("xml", &buf, nil, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xml")
}

func TestWriteDistances(t *testing.T) {
	cells := []api.PairDistanceV1{
		{I: 0, J: 1, Distance: 24},
		{I: 1, J: 0, Distance: 24},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteDistances("tsv", &buf, cells, true))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "i\tj\tdistance", lines[0])
	assert.Equal(t, "0\t1\t24", lines[1])

	buf.Reset()
	require.NoError(t, WriteDistances("jsonl", &buf, cells, false))
	var c api.PairDistanceV1
	require.NoError(t, json.Unmarshal([]byte(strings.SplitN(buf.String(), "\n", 2)[0]), &c))
	assert.Equal(t, 24.0, c.Distance)
}
