package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"randist/adapters/excel"
	"randist/internal/errors"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("LOG_LEVEL", "error")

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSampleIsSeeded(t *testing.T) {
	first, err := run(t, "sample", "gamma", "alpha=2", "theta=3", "-n", "4", "--seed", "17")
	require.NoError(t, err)
	second, err := run(t, "sample", "gamma", "alpha=2", "theta=3", "-n", "4", "--seed", "17")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, strings.Fields(first), 4)
}

func TestSampleJSON(t *testing.T) {
	out, err := run(t, "sample", "bernoulli", "-n", "3", "--seed", "1", "--json")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "["))
}

func TestFlagsOverrideEnvironmentBeforeValidation(t *testing.T) {
	t.Setenv("RANDIST_ENGINE", "bogus")

	out, err := run(t, "sample", "normal", "-n", "2", "--seed", "3", "--engine", "mt19937")
	require.NoError(t, err)
	assert.Len(t, strings.Fields(out), 2)

	_, err = run(t, "sample", "normal", "-n", "2", "--seed", "3")
	assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
}

func TestSampleRejects(t *testing.T) {
	_, err := run(t, "sample", "normal", "sigma=0")
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = run(t, "sample", "normal", "sigma")
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = run(t, "sample", "normal", "--engine", "lcg")
	assert.Equal(t, errors.CodeConfigInvalid, errors.GetCode(err))
}

func TestExportStreams(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	out, err := run(t, "export", "poisson", "lambda=4", "-n", "50", "--streams", "3", "--seed", "9", "--out", path)
	require.NoError(t, err)
	assert.Contains(t, out, "3 columns, 50 rows")

	again, err := run(t, "export", "poisson", "lambda=4", "-n", "50", "--streams", "3", "--seed", "9", "--out", path)
	require.NoError(t, err)
	assert.Equal(t, out, again)

	table, err := excel.Read(path)
	require.NoError(t, err)
	require.Len(t, table.Columns, 3)
	assert.Equal(t, "poisson_2", table.Columns[1].Name)
	assert.Len(t, table.Columns[2].Values, 50)
}

func TestSingleStreamExportMatchesSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "one.csv")
	_, err := run(t, "export", "normal", "-n", "5", "--seed", "8", "--out", path)
	require.NoError(t, err)

	printed, err := run(t, "sample", "normal", "-n", "5", "--seed", "8")
	require.NoError(t, err)

	table, err := excel.Read(path)
	require.NoError(t, err)
	require.Len(t, table.Columns, 1)

	var want []float64
	for _, f := range strings.Fields(printed) {
		v, err := strconv.ParseFloat(f, 64)
		require.NoError(t, err)
		want = append(want, v)
	}
	assert.Equal(t, want, table.Columns[0].Values)
}

func TestExportPlan(t *testing.T) {
	dir := t.TempDir()
	planPath := filepath.Join(dir, "plan.yaml")
	require.NoError(t, os.WriteFile(planPath, []byte(`
seed: 5
entries:
  - name: waits
    distribution: exponential
    params: {lambda: 0.5}
    count: 20
  - name: rolls
    distribution: discreteuniform
    params: {alpha: 1, beta: 6}
    count: 10
`), 0o644))

	out := filepath.Join(dir, "plan.csv")
	_, err := run(t, "export", "--plan", planPath, "--out", out)
	require.NoError(t, err)

	table, err := excel.Read(out)
	require.NoError(t, err)
	rolls, ok := table.Column("rolls")
	require.True(t, ok)
	assert.Len(t, rolls.Values, 10)
	for _, v := range rolls.Values {
		assert.True(t, v >= 1 && v <= 6)
	}
}

func TestExportRequiresTarget(t *testing.T) {
	_, err := run(t, "export", "normal")
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = run(t, "export", "--out", filepath.Join(t.TempDir(), "x.csv"))
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = run(t, "export", "normal", "--out", filepath.Join(t.TempDir(), "x.txt"))
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestProfile(t *testing.T) {
	htmlPath := filepath.Join(t.TempDir(), "report.html")
	out, err := run(t, "profile", "normal", "mu=1", "-n", "2000", "--seed", "8", "--html", htmlPath)
	require.NoError(t, err)
	assert.Contains(t, out, "# Profile: normal")
	assert.Contains(t, out, "Kolmogorov-Smirnov")

	raw, err := os.ReadFile(htmlPath)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "<table>")
}

func TestProfileInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("x,y\n1,2\n2,4\n3,6\n"), 0o644))

	out, err := run(t, "profile", "normal", "--input", path, "--column", "y", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"count": 3`)

	_, err = run(t, "profile", "normal", "--input", path, "--column", "z")
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestListings(t *testing.T) {
	out, err := run(t, "generators")
	require.NoError(t, err)
	assert.Contains(t, out, "xorshift128 (default)")

	out, err = run(t, "distributions")
	require.NoError(t, err)
	assert.Contains(t, out, "binomial")
	assert.Contains(t, out, "discrete")
}
