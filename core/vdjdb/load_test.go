// core/vdjdb/load_test.go
package vdjdb

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTable = "gene\tcdr3\tv.segm\tj.segm\tspecies\tmhc.class\tantigen.epitope\tantigen.gene\tantigen.species\treference.id\tvdjdb.score\n" +
	"TRB\tCASSLGQAYEQYF\tTRBV12-3*01\tTRBJ2-7*01\tHomoSapiens\tMHCI\tGLCTLVAML\tBMLF1\tEBV\tPMID:12345\t3\n" +
	"TRA\tCAVRDSNYQLIW\tTRAV3*01\tTRAJ33*01\tHomoSapiens\tMHCI\tGILGFVFTL\tM\tInfluenzaA\tPMID:67890\t1\n"

func TestLoad(t *testing.T) {
	st, err := Load(strings.NewReader(sampleTable))
	require.NoError(t, err)
	require.Equal(t, 2, st.Len())

	e := st.Entries[0]
	assert.Equal(t, "TRB", e.Gene)
	assert.Equal(t, "CASSLGQAYEQYF", e.CDR3)
	assert.Equal(t, "TRBV12-3*01", e.VSegment)
	assert.Equal(t, "TRBJ2-7*01", e.JSegment)
	assert.Equal(t, "HomoSapiens", e.Species)
	assert.Equal(t, "GLCTLVAML", e.AntigenEpitope)
	assert.Equal(t, "BMLF1", e.AntigenGene)
	assert.Equal(t, "EBV", e.AntigenSpecies)
	assert.Equal(t, "MHCI", e.MHCClass)
	assert.Equal(t, "PMID:12345", e.ReferenceID)
	assert.Equal(t, 3, e.Score)
}

func TestLoadColumnOrderIndependent(t *testing.T) {
	// Same rows, different edition with reordered columns and an unknown
	// extra column.
	reordered := "vdjdb.score\tcdr3\tweb.method\tspecies\tgene\tv.segm\tj.segm\tantigen.epitope\n" +
		"2\tCASSF\tsort\tMusMusculus\tTRB\tTRBV1*01\tTRBJ1-1*01\tE1\n"
	st, err := Load(strings.NewReader(reordered))
	require.NoError(t, err)
	require.Equal(t, 1, st.Len())
	e := st.Entries[0]
	assert.Equal(t, "CASSF", e.CDR3)
	assert.Equal(t, "MusMusculus", e.Species)
	assert.Equal(t, 2, e.Score)
	assert.Empty(t, e.MHCClass, "absent optional column defaults to empty")
}

func TestLoadMissingRequiredHeader(t *testing.T) {
	noCDR3 := "gene\tv.segm\tj.segm\tspecies\tantigen.epitope\nTRB\tV\tJ\tHomoSapiens\tE\n"
	_, err := Load(strings.NewReader(noCDR3))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSchema))

	_, err = Load(strings.NewReader(""))
	assert.True(t, errors.Is(err, ErrSchema))
}

func TestOpenGzip(t *testing.T) {
	dir := t.TempDir()

	plain := filepath.Join(dir, "vdjdb.slim.txt")
	require.NoError(t, os.WriteFile(plain, []byte(sampleTable), 0o644))

	gz := filepath.Join(dir, "vdjdb.slim.txt.gz")
	fh, err := os.Create(gz)
	require.NoError(t, err)
	gw := gzip.NewWriter(fh)
	_, err = gw.Write([]byte(sampleTable))
	require.NoError(t, err)
	require.NoError(t, gw.Close())
	require.NoError(t, fh.Close())

	for _, path := range []string{plain, gz} {
		st, err := Open(path)
		require.NoError(t, err, path)
		assert.Equal(t, 2, st.Len(), path)
	}
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
}
