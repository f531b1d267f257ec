package sim

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/inference-sim/memsim/sim/internal/testutil"
)

var sharedPlan = ArtifactID{Task: testutil.SharedPlanTask, Name: testutil.SharedPlanName}

// newSharedPlanSimulator builds agents A and B over a store holding sharedPlan v1 (size 100).
func newSharedPlanSimulator(t *testing.T, latency int64) *Simulator {
	t.Helper()
	store := NewGlobalMemory(latency)
	store.Put(Artifact{ID: sharedPlan, Version: 1, Size: 100, Scope: ScopeTask})
	s, err := NewSimulator([]*Agent{NewAgent("A"), NewAgent("B")}, store)
	require.NoError(t, err)
	return s
}

// scheduleSharedPlanFlow schedules the canonical miss, hit, write, remote-read sequence.
func scheduleSharedPlanFlow(t *testing.T, s *Simulator) {
	t.Helper()
	require.NoError(t, s.ScheduleRead(0, "A", sharedPlan))
	require.NoError(t, s.ScheduleRead(5, "A", sharedPlan))
	require.NoError(t, s.ScheduleWrite(6, "A", sharedPlan, 120))
	require.NoError(t, s.ScheduleRead(15, "B", sharedPlan))
}

func mustRun(t *testing.T, s *Simulator) *Result {
	t.Helper()
	res, err := s.Run()
	require.NoError(t, err)
	require.NotNil(t, res)
	return res
}
