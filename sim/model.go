// Domain types for the simulated memory system: artifacts, caches, agents and the global store.

package sim

import "fmt"

// Scope is the declared visibility tier of an artifact.
// It is carried through writes and commits but not enforced by the engine.
type Scope string

const (
	ScopeLocal  Scope = "local"
	ScopeTask   Scope = "task"
	ScopeGlobal Scope = "global"
)

// validScopes maps accepted scope strings.
var validScopes = map[Scope]bool{
	ScopeLocal:  true,
	ScopeTask:   true,
	ScopeGlobal: true,
}

// IsValidScope returns true if the given scope string is a recognized scope.
func IsValidScope(scope string) bool {
	return validScopes[Scope(scope)]
}

// ArtifactID identifies an artifact by its owning task and a task-local name.
type ArtifactID struct {
	Task string
	Name string
}

func (id ArtifactID) String() string {
	return fmt.Sprintf("(%s, %s)", id.Task, id.Name)
}

// Artifact is the authoritative record of an artifact in the global store.
type Artifact struct {
	ID      ArtifactID
	Version int64
	Size    int64
	Scope   Scope
}

// CacheEntry is an agent's local copy of an artifact. It may lag the global store.
type CacheEntry struct {
	ID         ArtifactID
	Version    int64
	Size       int64
	LastAccess int64 // logical time of the last read or write through this entry
}

// AgentStats accumulates per-agent read statistics.
type AgentStats struct {
	Hits             int64
	Misses           int64
	ReadLatencyTotal int64 // sum of (response time - request time) over completed reads
	ReadCount        int64 // completed reads
	StaleReads       int64 // completed reads that delivered a version older than the store's
}

// Agent is one simulated worker with a single-level local cache.
type Agent struct {
	ID    string
	Cache map[ArtifactID]*CacheEntry
	Stats AgentStats
}

// NewAgent creates an agent with an empty cache.
func NewAgent(id string) *Agent {
	return &Agent{
		ID:    id,
		Cache: make(map[ArtifactID]*CacheEntry),
	}
}

// Entry returns the agent's cache entry for id, or nil if none is held.
func (a *Agent) Entry(id ArtifactID) *CacheEntry {
	return a.Cache[id]
}

// install replaces the agent's entry for e.ID.
func (a *Agent) install(e CacheEntry) {
	a.Cache[e.ID] = &e
}

// GlobalMemory is the shared store and source of truth for artifact versions.
type GlobalMemory struct {
	// Latency is the fixed delay applied to read misses and write commits (in ticks).
	Latency int64
	Store   map[ArtifactID]*Artifact
}

// NewGlobalMemory creates an empty store with the given round-trip latency.
func NewGlobalMemory(latency int64) *GlobalMemory {
	return &GlobalMemory{
		Latency: latency,
		Store:   make(map[ArtifactID]*Artifact),
	}
}

// Put replaces the store's record for a.ID.
func (g *GlobalMemory) Put(a Artifact) {
	g.Store[a.ID] = &a
}

// Get returns the store's record for id, or nil if the store has never seen it.
func (g *GlobalMemory) Get(id ArtifactID) *Artifact {
	return g.Store[id]
}

// Task is a coordination namespace grouping agents and the artifacts they share.
// The engine does not interpret tasks; scenarios and reports carry them.
type Task struct {
	ID          string
	AgentIDs    []string
	ArtifactIDs []ArtifactID
}
