// sim/simulator.go
package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/memsim/sim/trace"
)

// Trace labels, one per handled step.
const (
	LabelCacheHit    = "EV_CACHE_HIT"
	LabelCacheMiss   = "EV_CACHE_MISS"
	LabelReadResp    = "EV_READ_RESP"
	LabelWriteReq    = "EV_WRITE_REQ"
	LabelWriteCommit = "EV_WRITE_COMMIT"
)

// Simulator is the core object that holds simulation time, agent and store state, and the event loop.
// One Simulator models exactly one run: it exclusively owns its agents, store, version clock and trace.
type Simulator struct {
	Clock int64
	// EventQueue has all pending events, ordered by (time, push order)
	EventQueue *EventQueue
	Store      *GlobalMemory
	Versions   *VersionClock

	agents     map[string]*Agent
	agentOrder []string
	trace      *trace.Log
	commits    []trace.Commit
	ran        bool
}

// NewSimulator creates a simulator over the given agents and initial store.
// Agent ids must be unique and non-empty and the store latency non-negative.
// The version clock is seeded from store.
func NewSimulator(agents []*Agent, store *GlobalMemory) (*Simulator, error) {
	if store == nil {
		panic("NewSimulator: store must not be nil")
	}
	if store.Latency < 0 {
		return nil, fmt.Errorf("latency=%d: %w", store.Latency, ErrNegativeLatency)
	}
	s := &Simulator{
		EventQueue: NewEventQueue(),
		Store:      store,
		Versions:   NewVersionClock(store),
		agents:     make(map[string]*Agent, len(agents)),
		agentOrder: make([]string, 0, len(agents)),
		trace:      trace.NewLog(),
	}
	for _, a := range agents {
		if a == nil {
			panic("NewSimulator: agent must not be nil")
		}
		if a.ID == "" {
			return nil, fmt.Errorf("agent with empty id: %w", ErrDuplicateAgent)
		}
		if _, ok := s.agents[a.ID]; ok {
			return nil, fmt.Errorf("agent %q: %w", a.ID, ErrDuplicateAgent)
		}
		if a.Cache == nil {
			a.Cache = make(map[ArtifactID]*CacheEntry)
		}
		s.agents[a.ID] = a
		s.agentOrder = append(s.agentOrder, a.ID)
	}
	return s, nil
}

// Agent returns the registered agent with the given id, or nil.
func (sim *Simulator) Agent(id string) *Agent {
	return sim.agents[id]
}

// ScheduleRead enqueues a read request by agentID for artifact at time t.
func (sim *Simulator) ScheduleRead(t int64, agentID string, artifact ArtifactID) error {
	if err := sim.checkSchedule(t, agentID); err != nil {
		return fmt.Errorf("schedule read: %w", err)
	}
	sim.EventQueue.Push(t, agentID, agentID, ReadRequest{Artifact: artifact, RequestedAt: t})
	return nil
}

// ScheduleWrite enqueues a write request by agentID of size bytes to artifact at time t.
func (sim *Simulator) ScheduleWrite(t int64, agentID string, artifact ArtifactID, size int64) error {
	if err := sim.checkSchedule(t, agentID); err != nil {
		return fmt.Errorf("schedule write: %w", err)
	}
	sim.EventQueue.Push(t, agentID, agentID, WriteRequest{Artifact: artifact, Size: size, RequestedAt: t})
	return nil
}

func (sim *Simulator) checkSchedule(t int64, agentID string) error {
	if _, ok := sim.agents[agentID]; !ok {
		return fmt.Errorf("agent %q: %w", agentID, ErrUnknownAgent)
	}
	if t < 0 {
		return fmt.Errorf("t=%d: %w", t, ErrNegativeTime)
	}
	return nil
}

// Run drains the event queue and returns the result of the simulation.
// The first handler error aborts the run and no result is returned.
func (sim *Simulator) Run() (*Result, error) {
	if sim.ran {
		return nil, ErrAlreadyRun
	}
	sim.ran = true
	// Store is exported, so the latency may have changed since construction
	if sim.Store.Latency < 0 {
		return nil, fmt.Errorf("latency=%d: %w", sim.Store.Latency, ErrNegativeLatency)
	}
	logrus.Infof("Starting simulation with %d agents, %d artifacts, latency=%d, %d scheduled requests",
		len(sim.agents), len(sim.Store.Store), sim.Store.Latency, sim.EventQueue.Len())

	for sim.EventQueue.Len() > 0 {
		// get the next event to be simulated
		ev, err := sim.EventQueue.Pop()
		if err != nil {
			return nil, err
		}
		// advance the clock
		sim.Clock = ev.Time
		logrus.Debugf("[tick %07d] Executing %s (%s -> %s)", sim.Clock, ev.Kind(), ev.Source, ev.Destination)
		if err := sim.handle(ev); err != nil {
			return nil, fmt.Errorf("t=%d %s: %w", ev.Time, ev.Kind(), err)
		}
	}
	logrus.Infof("[tick %07d] Simulation ended", sim.Clock)

	return &Result{
		Trace:      sim.trace.Lines(),
		Agents:     sim.agents,
		AgentOrder: sim.agentOrder,
		Store:      sim.Store,
		Commits:    sim.commits,
	}, nil
}

// handle dispatches ev to the handler for its payload.
func (sim *Simulator) handle(ev *Event) error {
	switch p := ev.Payload.(type) {
	case ReadRequest:
		return sim.onReadRequest(ev, p)
	case ReadResponse:
		return sim.onReadResponse(ev, p)
	case WriteRequest:
		return sim.onWriteRequest(ev, p)
	case WriteCommit:
		sim.onWriteCommit(ev, p)
		return nil
	default:
		panic(fmt.Sprintf("unhandled event payload %T", ev.Payload))
	}
}

func (sim *Simulator) record(label, detail string) {
	sim.trace.Record(trace.Line{Time: sim.Clock, Event: label, Detail: detail})
}

func (sim *Simulator) agentFor(id string) (*Agent, error) {
	a, ok := sim.agents[id]
	if !ok {
		return nil, fmt.Errorf("agent %q: %w", id, ErrUnknownAgent)
	}
	return a, nil
}
