package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"keepaway/internal/sim"
)

func resetFlags(t *testing.T) {
	t.Helper()
	logger = zap.NewNop()
	configPath = ""
	rounds, damping, topK, record = 20, 3, 2, false
	inputPath, outPath = "testdata/example.txt", ""
	workers, summaryOut = 2, ""
	seed, nActors, maxItems, asYAML, genOut = 12345, 8, 6, false, ""
	fmtOut, fmtYAML = "", false
}

func newTestCmd() (*cobra.Command, *bytes.Buffer) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	cmd.SetContext(context.Background())
	return cmd, &buf
}

func TestRunExample(t *testing.T) {
	resetFlags(t)
	cmd, out := newTestCmd()
	require.NoError(t, runSimulation(cmd, nil))
	assert.Equal(t, "activity: 101 95 7 105\nscore: 10605\n", out.String())
}

func TestRunYAMLTroopWithConfig(t *testing.T) {
	resetFlags(t)
	inputPath = "testdata/example.yaml"
	configPath = "testdata/sim.yaml"
	outPath = filepath.Join(t.TempDir(), "out.json")

	cmd, out := newTestCmd()
	require.NoError(t, runSimulation(cmd, nil))
	// one round, top three: 5 * 4 * 3
	assert.Equal(t, "activity: 2 4 3 5\nscore: 60\n", out.String())

	b, err := os.ReadFile(outPath)
	require.NoError(t, err)
	var res sim.SimResult
	require.NoError(t, json.Unmarshal(b, &res))
	assert.Equal(t, 1, res.Rounds)
	assert.Equal(t, int64(60), res.Score)
}

func TestRunFlagsOverrideConfig(t *testing.T) {
	resetFlags(t)
	configPath = "testdata/sim.yaml"
	cmd, out := newTestCmd()
	cmd.Flags().IntVar(&rounds, "rounds", 20, "")
	cmd.Flags().IntVar(&topK, "top", 2, "")
	require.NoError(t, cmd.Flags().Parse([]string{"--rounds", "20", "--top", "2"}))

	require.NoError(t, runSimulation(cmd, nil))
	assert.Contains(t, out.String(), "score: 10605")
}

func TestRunReportsParseError(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()
	inputPath = filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(inputPath, []byte(`Monkey 0:
  Starting items: 1
  Operation: new = old + old
  Test: divisible by 2
    If true: throw to monkey 0
    If false: throw to monkey 0
`), 0644))

	cmd, _ := newTestCmd()
	err := runSimulation(cmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.txt")
	assert.ErrorIs(t, err, sim.ErrBadOperation)
}

func TestRunRejectsBadConfig(t *testing.T) {
	resetFlags(t)
	configPath = filepath.Join(t.TempDir(), "sim.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("damping: 0\n"), 0644))

	cmd, _ := newTestCmd()
	err := runSimulation(cmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "damping")
}

func TestBatch(t *testing.T) {
	resetFlags(t)
	summaryOut = filepath.Join(t.TempDir(), "summary.json")

	cmd, out := newTestCmd()
	require.NoError(t, runBatch(cmd, []string{"testdata/example.txt", "testdata/example.yaml"}))
	assert.Contains(t, out.String(), "testdata/example.txt: score 10605\n")
	assert.Contains(t, out.String(), "testdata/example.yaml: score 10605\n")
	assert.Contains(t, out.String(), "Batch 2 done -> summary.json")

	b, err := os.ReadFile(summaryOut)
	require.NoError(t, err)
	var st batchSummary
	require.NoError(t, json.Unmarshal(b, &st))
	assert.Equal(t, 2, st.Runs)
	assert.Equal(t, int64(10605), st.BestScore)
	assert.Equal(t, "testdata/example.txt", st.BestInput)
	assert.InDelta(t, 10605.0, st.AvgScore, 1e-9)
}

func TestGenThenFmt(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()
	genOut = filepath.Join(dir, "gen.txt")
	nActors = 5

	cmd, _ := newTestCmd()
	require.NoError(t, runGen(cmd, nil))
	generated, err := os.ReadFile(genOut)
	require.NoError(t, err)
	assert.Equal(t, 5, strings.Count(string(generated), "Monkey "))

	cmd, out := newTestCmd()
	require.NoError(t, runFmt(cmd, []string{genOut}))
	assert.Equal(t, string(generated), out.String())

	inputPath = genOut
	cmd, out = newTestCmd()
	require.NoError(t, runSimulation(cmd, nil))
	assert.Contains(t, out.String(), "score: ")
}

func TestGenYAMLIsLoadable(t *testing.T) {
	resetFlags(t)
	genOut = filepath.Join(t.TempDir(), "troop.yaml")
	asYAML = true
	nActors = 3

	cmd, _ := newTestCmd()
	require.NoError(t, runGen(cmd, nil))
	actors, err := loadActors(genOut)
	require.NoError(t, err)
	assert.Len(t, actors, 3)
}

func TestFmtNormalizesYAML(t *testing.T) {
	resetFlags(t)
	cmd, out := newTestCmd()
	require.NoError(t, runFmt(cmd, []string{"testdata/example.yaml"}))
	want, err := os.ReadFile("testdata/example.txt")
	require.NoError(t, err)
	assert.Equal(t, string(want), out.String())
}

func TestGenRejectsBadSize(t *testing.T) {
	resetFlags(t)
	nActors = 0
	cmd, _ := newTestCmd()
	assert.Error(t, runGen(cmd, nil))
}

func TestFmtNotesToYAMLAndBack(t *testing.T) {
	resetFlags(t)
	troop := filepath.Join(t.TempDir(), "troop.yaml")
	fmtYAML, fmtOut = true, troop

	cmd, _ := newTestCmd()
	require.NoError(t, runFmt(cmd, []string{"testdata/example.txt"}))

	fmtYAML, fmtOut = false, ""
	cmd, out := newTestCmd()
	require.NoError(t, runFmt(cmd, []string{troop}))
	want, err := os.ReadFile("testdata/example.txt")
	require.NoError(t, err)
	assert.Equal(t, string(want), out.String())
}
