// Package testutil provides shared test infrastructure for the memory simulator.
// It consolidates golden trace helpers and assertions used across
// sim/, sim/scenario/ and cmd/ test packages.
package testutil

import (
	"math"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/inference-sim/memsim/sim/trace"
)

// SharedPlanTask and SharedPlanName identify the artifact used by the canonical
// read/write/read scenario.
const (
	SharedPlanTask = "T1"
	SharedPlanName = "shared_plan"
)

// LoadGolden reads a golden file from the repo root testdata directory.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func LoadGolden(t *testing.T, name string) string {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", name)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden file: %v", err)
	}
	return string(data)
}

// FormatTrace renders trace lines one per line, newline-terminated.
func FormatTrace(lines []trace.Line) string {
	var sb strings.Builder
	for _, l := range lines {
		sb.WriteString(l.String())
		sb.WriteString("\n")
	}
	return sb.String()
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}
