package protein_profile

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prot_buddy_go/config"
)

func isolateEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{config.EnvFormat, config.EnvWorkers, config.EnvLogLevel} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestRunLiteralSequences(t *testing.T) {
	isolateEnv(t)
	var stdout, stderr bytes.Buffer
	code := run([]string{"-seq", "heavy=EVQLVESGGG", "-seq", "MKWV", "-format", "csv"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	rows, err := csv.NewReader(&stdout).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "heavy", rows[1][1])
	assert.Equal(t, "seq_2", rows[2][1])
}

func TestRunFastaToFile(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	in := filepath.Join(dir, "in.faa")
	require.NoError(t, os.WriteFile(in, []byte(">cd20 heavy\nEVQLVESGGG\n>cd3 heavy\nQVQLVQSGAE\n>other\nMKWV\n"), 0644))
	out := filepath.Join(dir, "report.json")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-in_file", in, "-id_motif", "HEAVY", "-format", "json", "-out_file", out, "-summary"}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.Contains(t, stdout.String(), out)

	body, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"id": "cd20"`)
	assert.Contains(t, string(body), `"id": "cd3"`)
	assert.NotContains(t, string(body), `"id": "other"`)
	assert.Contains(t, string(body), `"summary"`)
}

func TestRunFormatFromEnvironment(t *testing.T) {
	isolateEnv(t)
	t.Setenv(config.EnvFormat, "json")

	var stdout, stderr bytes.Buffer
	require.Equal(t, 0, run([]string{"-seq", "AG"}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), `"run_id"`)
}

func TestRunFailures(t *testing.T) {
	isolateEnv(t)
	cases := map[string][]string{
		"no input":       {},
		"bad format":     {"-seq", "AG", "-format", "xml"},
		"stray argument": {"-seq", "AG", "extra"},
		"all invalid":    {"-seq", "XXX"},
		"missing file":   {"-in_file", filepath.Join(t.TempDir(), "none.faa")},
		"unknown flag":   {"-nope"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			assert.Equal(t, 1, run(args, &stdout, &stderr))
		})
	}
}

func TestRunPartialFailureStillSucceeds(t *testing.T) {
	isolateEnv(t)
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 0, run([]string{"-seq", "AG", "-seq", "XXX"}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "Error:")
}

func TestMultiSeqFlag(t *testing.T) {
	var m MultiSeqFlag
	require.NoError(t, m.Set("a=MKV"))
	require.NoError(t, m.Set("GGG"))
	require.NoError(t, m.Set("=AAA"))
	assert.Error(t, m.Set("  "))
	assert.Equal(t, MultiSeqFlag{{ID: "a", Raw: "MKV"}, {ID: "seq_2", Raw: "GGG"}, {ID: "seq_3", Raw: "AAA"}}, m)
}
