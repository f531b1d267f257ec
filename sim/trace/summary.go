package trace

// Summary aggregates statistics over the trace and commits of a run.
type Summary struct {
	TotalLines  int
	EventCounts map[string]int // event label → number of trace lines
	FirstTime   int64
	LastTime    int64

	Commits   int
	MeanDelay float64 // mean propagation delay over commits
	MaxDelay  int64
}

// Summarize computes aggregate statistics from trace lines and commits.
// Safe for nil or empty input (returns zero-value fields).
func Summarize(lines []Line, commits []Commit) *Summary {
	summary := &Summary{
		EventCounts: make(map[string]int),
	}

	summary.TotalLines = len(lines)
	for i, l := range lines {
		summary.EventCounts[l.Event]++
		if i == 0 {
			summary.FirstTime = l.Time
		}
		summary.LastTime = l.Time
	}

	if len(commits) > 0 {
		var total int64
		for _, c := range commits {
			d := c.Delay()
			total += d
			if d > summary.MaxDelay {
				summary.MaxDelay = d
			}
		}
		summary.Commits = len(commits)
		summary.MeanDelay = float64(total) / float64(len(commits))
	}

	return summary
}
