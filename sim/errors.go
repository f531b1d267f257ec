package sim

import "errors"

// Scenario errors. All of them abort the schedule or run call that hit them;
// the simulator has no partial-failure recovery.
var (
	// ErrUnknownAgent is returned when scheduling references an agent that was never registered.
	ErrUnknownAgent = errors.New("unknown agent")
	// ErrUnknownArtifact is returned when a read miss has no store record to serve it.
	ErrUnknownArtifact = errors.New("unknown artifact")
	// ErrEmptyQueue is returned when popping an event queue with nothing pending.
	ErrEmptyQueue = errors.New("event queue is empty")
	// ErrDuplicateAgent is returned when two agents share an id, or an id is empty.
	ErrDuplicateAgent = errors.New("duplicate agent")
	// ErrNegativeTime is returned when a request is scheduled before time 0.
	ErrNegativeTime = errors.New("negative schedule time")
	// ErrNegativeLatency is returned when the global store latency is below 0.
	ErrNegativeLatency = errors.New("negative store latency")
	// ErrAlreadyRun is returned when Run is called twice on one simulator.
	ErrAlreadyRun = errors.New("simulator already run")
)
