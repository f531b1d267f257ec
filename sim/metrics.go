// Final state and per-agent metrics of a simulation run.

package sim

import "github.com/inference-sim/memsim/sim/trace"

// Result is the outcome of one Simulator.Run.
type Result struct {
	Trace      []trace.Line      // one line per handled event, in handling order
	Agents     map[string]*Agent // agent id → final cache and stats
	AgentOrder []string          // agent ids in construction order
	Store      *GlobalMemory     // final global store
	Commits    []trace.Commit    // committed versions in commit order
}

// AvgLatency returns the mean read latency of an agent in ticks.
// Returns 0 when the agent completed no reads or is unknown.
func (r *Result) AvgLatency(agentID string) float64 {
	a, ok := r.Agents[agentID]
	if !ok || a.Stats.ReadCount == 0 {
		return 0
	}
	return float64(a.Stats.ReadLatencyTotal) / float64(a.Stats.ReadCount)
}

// HitRate returns hits / (hits + misses) for an agent, 0 if it issued no reads.
func (r *Result) HitRate(agentID string) float64 {
	a, ok := r.Agents[agentID]
	if !ok {
		return 0
	}
	total := a.Stats.Hits + a.Stats.Misses
	if total == 0 {
		return 0
	}
	return float64(a.Stats.Hits) / float64(total)
}

// Version returns the final store version of an artifact, 0 if it was never committed.
func (r *Result) Version(id ArtifactID) int64 {
	if a := r.Store.Get(id); a != nil {
		return a.Version
	}
	return 0
}

// Summary aggregates the run's trace and commits.
func (r *Result) Summary() *trace.Summary {
	return trace.Summarize(r.Trace, r.Commits)
}
