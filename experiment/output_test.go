package experiment

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResults() []TrialResult {
	return []TrialResult{
		{ExperimentIndex: 1, Algorithm: "QuickSort", DataType: "int", Size: 100, Structure: "bestCase", Trial: 1, Elapsed: 1234567 * time.Nanosecond},
		{ExperimentIndex: 1, Algorithm: "QuickSort", DataType: "int", Size: 100, Structure: "bestCase", Trial: 2, Elapsed: 2 * time.Millisecond},
		{ExperimentIndex: 2, Algorithm: "QuickSort", DataType: "string", Size: 100, Structure: "worstCase", Trial: 1, Elapsed: 4999 * time.Microsecond},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleResults()))

	want := "Experiment Index,Algorithm,Data Type,Size,Structure,Trial,Time(ms)\n" +
		"1,QuickSort,int,100,bestCase,1,1.23\n" +
		"1,QuickSort,int,100,bestCase,2,2.00\n" +
		"2,QuickSort,string,100,worstCase,1,5.00\n"
	assert.Equal(t, want, buf.String())
}

func TestSaveCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	require.NoError(t, SaveCSV(path, sampleResults()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	assert.Len(t, lines, 4)
}

func TestSaveCSVReportsUnwritablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "results.csv")
	assert.Error(t, SaveCSV(path, sampleResults()))
}

func TestProgressLine(t *testing.T) {
	assert.Equal(t, "["+strings.Repeat(".", 50)+"] 0% (0/216)", progressLine(0, 216))
	assert.Equal(t, "["+strings.Repeat("=", 25)+strings.Repeat(".", 25)+"] 50% (108/216)", progressLine(108, 216))
	assert.Equal(t, "["+strings.Repeat("=", 16)+strings.Repeat(".", 34)+"] 33% (1/3)", progressLine(1, 3))
	assert.Equal(t, "["+strings.Repeat("=", 50)+"] 100% (216/216)", progressLine(216, 216))
}

func TestProgressOverwritesLine(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(&buf)
	p.Update(1, 2)
	p.Update(2, 2)
	p.Done()

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "\r["))
	assert.Equal(t, 2, strings.Count(out, "\r"))
	assert.True(t, strings.HasSuffix(out, "(2/2)\n"))
}

func TestSummarize(t *testing.T) {
	summaries := Summarize(sampleResults())
	require.Len(t, summaries, 2)

	first := summaries[0]
	assert.Equal(t, 1, first.ExperimentIndex)
	assert.Equal(t, 2, first.Trials)
	assert.InDelta(t, 1.6172835, first.Mean, 1e-9)
	assert.InDelta(t, 1.234567, first.Min, 1e-9)
	assert.InDelta(t, 2.0, first.Max, 1e-9)

	second := summaries[1]
	assert.Equal(t, "string", second.DataType)
	assert.Equal(t, "worstCase", second.Structure)
	assert.Equal(t, 1, second.Trials)

	var buf bytes.Buffer
	WriteSummary(&buf, summaries)
	assert.Contains(t, buf.String(), "2 configurations, 3 recorded trials")
	assert.Contains(t, buf.String(), "QuickSort")
}
