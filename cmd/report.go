package cmd

import (
	"bufio"
	"fmt"
	"io"
	"sort"

	"github.com/inference-sim/memsim/sim"
	"github.com/inference-sim/memsim/sim/scenario"
)

// WriteReport prints the event trace, per-agent metrics and final store versions of a run.
func WriteReport(w io.Writer, sc *scenario.Scenario, res *sim.Result) error {
	bw := bufio.NewWriter(w)

	name := sc.Name
	if name == "" {
		name = "unnamed"
	}
	fmt.Fprintf(bw, "Scenario %s\n", name)
	for _, t := range sc.TaskList() {
		names := make([]string, 0, len(t.ArtifactIDs))
		for _, id := range t.ArtifactIDs {
			names = append(names, id.Name)
		}
		fmt.Fprintf(bw, "Task %s agents=%v artifacts=%v\n", t.ID, t.AgentIDs, names)
	}

	fmt.Fprintln(bw, "Event trace:")
	for _, line := range res.Trace {
		fmt.Fprintln(bw, line.String())
	}

	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "Metrics:")
	for _, id := range res.AgentOrder {
		st := res.Agents[id].Stats
		fmt.Fprintf(bw, "agent=%s hits=%d misses=%d avg_latency=%.2f reads=%d stale=%d\n",
			id, st.Hits, st.Misses, res.AvgLatency(id), st.ReadCount, st.StaleReads)
	}
	summary := res.Summary()
	fmt.Fprintf(bw, "commits=%d mean_propagation_delay=%.2f max_propagation_delay=%d\n",
		summary.Commits, summary.MeanDelay, summary.MaxDelay)

	ids := make([]sim.ArtifactID, 0, len(res.Store.Store))
	for id := range res.Store.Store {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if ids[i].Task != ids[j].Task {
			return ids[i].Task < ids[j].Task
		}
		return ids[i].Name < ids[j].Name
	})
	for _, id := range ids {
		fmt.Fprintf(bw, "final_version(%s/%s)=%d\n", id.Task, id.Name, res.Version(id))
	}

	return bw.Flush()
}
