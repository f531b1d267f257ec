// Handlers for the single-level write-through cache protocol.
// Each handler appends one trace line and enqueues at most one follow-up event.

package sim

import (
	"fmt"

	"github.com/inference-sim/memsim/sim/trace"
)

// onReadRequest serves a read from the agent's cache, or issues a miss to the store.
// On a miss the store version is captured now: a commit landing while the
// response is in flight does not change what the reader observes.
func (sim *Simulator) onReadRequest(ev *Event, p ReadRequest) error {
	agent, err := sim.agentFor(ev.Destination)
	if err != nil {
		return err
	}

	if entry := agent.Entry(p.Artifact); entry != nil {
		agent.Stats.Hits++
		entry.LastAccess = sim.Clock
		sim.record(LabelCacheHit, fmt.Sprintf("%s %s v%d", agent.ID, p.Artifact, entry.Version))
		sim.EventQueue.Push(sim.Clock, EndpointCache, agent.ID, ReadResponse{
			Artifact:    p.Artifact,
			Version:     entry.Version,
			RequestedAt: p.RequestedAt,
			Hit:         true,
		})
		return nil
	}

	artifact := sim.Store.Get(p.Artifact)
	if artifact == nil {
		return fmt.Errorf("read %s by %s: %w", p.Artifact, agent.ID, ErrUnknownArtifact)
	}
	agent.Stats.Misses++
	sim.record(LabelCacheMiss, fmt.Sprintf("%s %s", agent.ID, p.Artifact))
	sim.EventQueue.Push(sim.Clock+sim.Store.Latency, EndpointGlobal, agent.ID, ReadResponse{
		Artifact:    p.Artifact,
		Version:     artifact.Version,
		RequestedAt: p.RequestedAt,
		Hit:         false,
	})
	return nil
}

// onReadResponse installs the delivered version and completes the read.
func (sim *Simulator) onReadResponse(ev *Event, p ReadResponse) error {
	agent, err := sim.agentFor(ev.Destination)
	if err != nil {
		return err
	}

	// Size follows the store; an own write that has not committed yet has no
	// store record, so the replaced entry's size is kept.
	var size int64
	current := sim.Store.Get(p.Artifact)
	if current != nil {
		size = current.Size
	} else if prev := agent.Entry(p.Artifact); prev != nil {
		size = prev.Size
	}

	agent.install(CacheEntry{
		ID:         p.Artifact,
		Version:    p.Version,
		Size:       size,
		LastAccess: sim.Clock,
	})

	latency := sim.Clock - p.RequestedAt
	agent.Stats.ReadLatencyTotal += latency
	agent.Stats.ReadCount++
	if current != nil && p.Version < current.Version {
		agent.Stats.StaleReads++
	}
	sim.record(LabelReadResp, fmt.Sprintf("%s got %s v%d latency=%d", agent.ID, p.Artifact, p.Version, latency))
	return nil
}

// onWriteRequest allocates a new version, updates the writer's cache immediately
// and schedules the store commit one latency later.
func (sim *Simulator) onWriteRequest(ev *Event, p WriteRequest) error {
	agent, err := sim.agentFor(ev.Source)
	if err != nil {
		return err
	}

	version := sim.Versions.Next(p.Artifact)
	scope := ScopeTask
	if prior := sim.Store.Get(p.Artifact); prior != nil {
		scope = prior.Scope
	}

	agent.install(CacheEntry{
		ID:         p.Artifact,
		Version:    version,
		Size:       p.Size,
		LastAccess: sim.Clock,
	})
	sim.record(LabelWriteReq, fmt.Sprintf("%s wrote %s v%d", agent.ID, p.Artifact, version))

	sim.EventQueue.Push(sim.Clock+sim.Store.Latency, agent.ID, EndpointGlobal, WriteCommit{
		Artifact:    p.Artifact,
		Version:     version,
		Size:        p.Size,
		Scope:       scope,
		RequestedAt: sim.Clock,
	})
	return nil
}

// onWriteCommit replaces the store's record with the committed version.
func (sim *Simulator) onWriteCommit(ev *Event, p WriteCommit) {
	sim.Store.Put(Artifact{
		ID:      p.Artifact,
		Version: p.Version,
		Size:    p.Size,
		Scope:   p.Scope,
	})
	sim.commits = append(sim.commits, trace.Commit{
		Artifact:    p.Artifact.String(),
		Version:     p.Version,
		Writer:      ev.Source,
		RequestedAt: p.RequestedAt,
		CommittedAt: sim.Clock,
	})
	sim.record(LabelWriteCommit, fmt.Sprintf("%s committed %s v%d", EndpointGlobal, p.Artifact, p.Version))
}
