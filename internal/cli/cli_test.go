package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fseof/builder"
	"github.com/katalvlaran/fseof/internal/config"
	"github.com/katalvlaran/fseof/store"
)

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("FSEOF_STORE", "")
	t.Setenv("FSEOF_LOG_FILE", "")
	t.Setenv("FSEOF_LOG_LEVEL", "error")

	var stdout, stderr bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())

	return stdout.String(), stderr.String(), err
}

func TestModelsCommand(t *testing.T) {
	out, _, err := execute(t, "models")
	require.NoError(t, err)

	for _, e := range builder.Catalog() {
		assert.Contains(t, out, e.Name)
		assert.Contains(t, out, e.Description)
	}
	assert.Contains(t, out, "LYCOdem -> BIOMASS")
}

func TestScanGolden(t *testing.T) {
	out, _, err := execute(t, "scan", "--model", "three-trend", "--steps", "4", "--format", "csv", "--no-progress")
	require.NoError(t, err)

	g := goldie.New(t, goldie.WithFixtureDir("testdata/golden"), goldie.WithNameSuffix(".golden"))
	g.Assert(t, "scan_three_trend_csv", []byte(out))
}

func TestScanTargetsOnlyToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scan.csv")
	out, _, err := execute(t, "scan", "-m", "three-trend", "-n", "4", "-f", "csv", "--targets-only", "-o", path)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "step,value,E,BIO,R_INC\n"))
}

func TestScanFromConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scan.yaml")
	doc := "model: three-trend\nsteps: 2\nreactions: [R_INC, R_DEC]\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	out, _, err := execute(t, "scan", "--config", path, "--steps", "4", "--format", "csv")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6, "flag --steps overrides the file")
	assert.Equal(t, "step,value,E,BIO,R_DEC,R_INC", lines[0])
}

func TestScanErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"UnknownModel", []string{"scan", "--model", "ecoli"}, builder.ErrUnknownModel},
		{"BadDirection", []string{"scan", "--model", "three-trend", "--direction", "up"}, config.ErrInvalidScan},
		{"BadSteps", []string{"scan", "--model", "three-trend", "--steps", "0"}, config.ErrInvalidScan},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, _, err := execute(t, "scan")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no model")

	_, _, err = execute(t, "scan", "--model", "three-trend", "--format", "xml")
	require.Error(t, err)
}

func TestScanStoreAndRuns(t *testing.T) {
	db := filepath.Join(t.TempDir(), "runs.db")

	_, stderr, err := execute(t, "scan", "--model", "three-trend", "--steps", "4", "--store", db)
	require.NoError(t, err)
	assert.Contains(t, stderr, "saved run")

	st, err := store.Open(db)
	require.NoError(t, err)
	runs, err := st.ListRuns(context.Background())
	require.NoError(t, err)
	require.NoError(t, st.Close())
	require.Len(t, runs, 1)
	id := runs[0].ID

	out, _, err := execute(t, "runs", "--store", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Runs (1)")
	assert.Contains(t, out, id)
	assert.Contains(t, out, "three-trend")

	out, _, err = execute(t, "runs", "show", id, "--store", db)
	require.NoError(t, err)
	assert.Contains(t, out, "R_INC")
	assert.Contains(t, out, "objective:  BIO")

	out, _, err = execute(t, "runs", "delete", id, "--store", db)
	require.NoError(t, err)
	assert.Contains(t, out, "deleted run "+id)

	out, _, err = execute(t, "runs", "--store", db)
	require.NoError(t, err)
	assert.Contains(t, out, "No runs stored.")

	_, _, err = execute(t, "runs", "show", id, "--store", db)
	assert.ErrorIs(t, err, store.ErrRunNotFound)
}

func TestRunsWithoutStore(t *testing.T) {
	_, _, err := execute(t, "runs")
	assert.ErrorIs(t, err, errNoStore)
}
