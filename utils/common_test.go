package common

import (
	"compress/gzip"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	id, seq    string
	start, end interface{}
}

func collect(out *[]record) FastaHandler {
	return func(id, seq string, opts map[string]interface{}) error {
		*out = append(*out, record{id: id, seq: seq, start: opts["chunk_start"], end: opts["chunk_end"]})
		return nil
	}
}

const sample = `>heavy chain one
evqlves
GGGLVQ

>light
DIQMTQ
>empty
`

func TestStreamFasta(t *testing.T) {
	var got []record
	require.NoError(t, StreamFasta(strings.NewReader(sample), collect(&got), nil))
	assert.Equal(t, []record{
		{id: "heavy chain one", seq: "EVQLVESGGGLVQ"},
		{id: "light", seq: "DIQMTQ"},
	}, got)
}

func TestStreamFastaChunks(t *testing.T) {
	var got []record
	opts := map[string]interface{}{"chunk_size": 4, "chunk_overlap": 1}
	require.NoError(t, StreamFasta(strings.NewReader(">p\nABCDEFGHIJ\n"), collect(&got), opts))
	assert.Equal(t, []record{
		{"p", "ABCD", 0, 4},
		{"p", "DEFG", 3, 7},
		{"p", "GHIJ", 6, 10},
	}, got)
	_, mutated := opts["chunk_start"]
	assert.False(t, mutated)
}

func TestStreamFastaRejectsBadOverlap(t *testing.T) {
	opts := map[string]interface{}{"chunk_size": 3, "chunk_overlap": 3}
	err := StreamFasta(strings.NewReader(">p\nAAAA\n"), collect(new([]record)), opts)
	assert.Error(t, err)
}

func TestStreamFastaRejectsHeaderlessInput(t *testing.T) {
	err := StreamFasta(strings.NewReader("MKV\n>p\nAAA\n"), collect(new([]record)), nil)
	assert.Error(t, err)
}

func TestStreamFastaWrapsHandlerErrors(t *testing.T) {
	boom := errors.New("boom")
	err := StreamFasta(strings.NewReader(">a\nAAA\n"), func(string, string, map[string]interface{}) error {
		return boom
	}, nil)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "(a)")
}

func TestStreamFastaWithOptsPlainAndGzip(t *testing.T) {
	dir := t.TempDir()

	plain := filepath.Join(dir, "in.fasta")
	require.NoError(t, os.WriteFile(plain, []byte(sample), 0644))

	zipped := filepath.Join(dir, "in.fasta.gz")
	f, err := os.Create(zipped)
	require.NoError(t, err)
	gz := gzip.NewWriter(f)
	_, err = gz.Write([]byte(sample))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())

	var fromPlain, fromGzip []record
	require.NoError(t, StreamFastaWithOpts(plain, collect(&fromPlain), nil))
	require.NoError(t, StreamFastaWithOpts(zipped, collect(&fromGzip), nil))
	assert.Len(t, fromPlain, 2)
	assert.Equal(t, fromPlain, fromGzip)
}

func TestStreamFastaWithOptsMissingFile(t *testing.T) {
	err := StreamFastaWithOpts(filepath.Join(t.TempDir(), "nope.fa"), collect(new([]record)), nil)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
