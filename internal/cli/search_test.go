package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.Execute()

	return out.String(), err
}

// simulated writes a sampled dataset and its true graph into dir.
func simulated(t *testing.T, dir string) (data, truth string) {
	t.Helper()
	data = filepath.Join(dir, "data.txt")
	truth = filepath.Join(dir, "truth.txt")
	_, err := execute(t, "simulate",
		"--nodes", "5", "--edges", "4", "--samples", "500", "--seed", "7",
		"--out", data, "--graph-out", truth)
	require.NoError(t, err)

	return data, truth
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	return string(raw)
}

func TestSimulateCommand(t *testing.T) {
	dir := t.TempDir()
	data, truth := simulated(t, dir)

	lines := strings.Split(strings.TrimRight(readFile(t, data), "\n"), "\n")
	require.Len(t, lines, 501)
	assert.Equal(t, "X1\tX2\tX3\tX4\tX5", lines[0])

	assert.Contains(t, readFile(t, truth), "Graph Nodes:\nX1,X2,X3,X4,X5")
}

func TestSearchCommand(t *testing.T) {
	dir := t.TempDir()
	data, truth := simulated(t, dir)
	metrics := filepath.Join(dir, "run.prom")

	stdout, err := execute(t, "search",
		"--data", data, "--dir-out", dir, "--prefix-out", "run",
		"--thread", "2", "--verbose", "--graphml", "--metrics-out", metrics)
	require.NoError(t, err)

	reportPath := filepath.Join(dir, "run_output.txt")
	assert.Equal(t, "wrote "+reportPath+"\n", stdout)

	report := readFile(t, reportPath)
	for _, want := range []string{
		"Runtime Parameters:\nnumber of threads = 2\nverbose = true\n",
		"Algorithm Parameters:\npenalty discount = 4.000000\ndepth = -1\n",
		"Data File:\nfile = data.txt\ncases = 500\nvariables = 5\n",
		"Dataset Read In:\ncases = 500\nvariables = 5\n",
		"** FORWARD EQUIVALENCE SEARCH",
		"** BACKWARD EQUIVALENCE SEARCH",
		"Graph Nodes:\nX1,X2,X3,X4,X5\n",
		"Graph Edges:\n",
		"termination = converged\n",
	} {
		assert.Contains(t, report, want)
	}
	assert.NotContains(t, report, "Knowledge:")

	graphML := readFile(t, filepath.Join(dir, "run_graph.txt"))
	assert.Contains(t, graphML, `<graph id="run" edgedefault="undirected">`)

	prom := readFile(t, metrics)
	assert.Contains(t, prom, "fgs_run_inserts{run_id=")
	assert.Contains(t, prom, "fgs_run_score{run_id=")
	assert.Contains(t, prom, "fgs_run_operators_reverted{run_id=")
	assert.Contains(t, prom, "fgs_run_ill_determined_nodes{run_id=")

	// The estimated pattern compares against the true DAG.
	out, err := execute(t, "compare", "--target", reportPath, "--reference", truth)
	require.NoError(t, err)
	assert.Contains(t, out, "adjacency")
	assert.Contains(t, out, "arrowhead")
}

func TestSearchKnowledgeAndExclusions(t *testing.T) {
	dir := t.TempDir()
	data, _ := simulated(t, dir)

	know := filepath.Join(dir, "knowledge.txt")
	require.NoError(t, os.WriteFile(know, []byte("/knowledge\nforbiddirect\nX1 X2\nX2 X1\n"), 0o644))
	exclude := filepath.Join(dir, "exclude.txt")
	require.NoError(t, os.WriteFile(exclude, []byte("X5\n"), 0o644))

	_, err := execute(t, "search",
		"--data", data, "--dir-out", dir, "--prefix-out", "k",
		"--knowledge", know, "--exclude-variables", exclude, "--thread", "1")
	require.NoError(t, err)

	report := readFile(t, filepath.Join(dir, "k_output.txt"))
	assert.Contains(t, report, "Knowledge:\nfile = "+know+"\n")
	assert.Contains(t, report, "Variable Exclusion:\nfile = "+exclude+"\nvariables to exclude = 1\n")
	assert.Contains(t, report, "Graph Nodes:\nX1,X2,X3,X4\n")
	assert.NotContains(t, report, "X1 --> X2")
	assert.NotContains(t, report, "X2 --> X1")
	assert.NotContains(t, report, "X1 --- X2")
	assert.NotContains(t, report, "** FORWARD EQUIVALENCE SEARCH")
}

func TestSearchConfigFile(t *testing.T) {
	dir := t.TempDir()
	data, _ := simulated(t, dir)

	cfgPath := filepath.Join(dir, "fgs.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("penalty-discount: 2\ndepth: 1\nthread: 3\n"), 0o644))

	// --thread on the command line wins over the file.
	_, err := execute(t, "search",
		"--data", data, "--dir-out", dir, "--prefix-out", "c",
		"--config", cfgPath, "--thread", "2")
	require.NoError(t, err)

	report := readFile(t, filepath.Join(dir, "c_output.txt"))
	assert.Contains(t, report, "number of threads = 2\n")
	assert.Contains(t, report, "penalty discount = 2.000000\n")
	assert.Contains(t, report, "depth = 1\n")

	t.Run("unknown key", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(bad, []byte("penalty: 2\n"), 0o644))
		_, err := execute(t, "search", "--data", data, "--dir-out", dir, "--config", bad)
		require.Error(t, err)
		assert.True(t, IsInputError(err))
	})

	t.Run("invalid value", func(t *testing.T) {
		bad := filepath.Join(dir, "neg.yaml")
		require.NoError(t, os.WriteFile(bad, []byte("penalty-discount: -1\n"), 0o644))
		_, err := execute(t, "search", "--data", data, "--dir-out", dir, "--config", bad)
		require.Error(t, err)
		assert.True(t, IsInputError(err))
	})

	t.Run("empty file", func(t *testing.T) {
		empty := filepath.Join(dir, "empty.yaml")
		require.NoError(t, os.WriteFile(empty, nil, 0o644))
		_, err := execute(t, "search",
			"--data", data, "--dir-out", dir, "--prefix-out", "e", "--config", empty)
		require.NoError(t, err)
		assert.Contains(t, readFile(t, filepath.Join(dir, "e_output.txt")), "penalty discount = 4.000000\n")
	})
}
