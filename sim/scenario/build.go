package scenario

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/memsim/sim"
)

// Build validates the scenario and returns a simulator with every operation
// scheduled. Operations are scheduled in file order, so file order breaks ties
// between operations at the same time.
func (s *Scenario) Build() (*sim.Simulator, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	store := sim.NewGlobalMemory(s.Latency)
	for _, a := range s.Artifacts {
		scope := sim.Scope(a.Scope)
		if scope == "" {
			scope = sim.ScopeTask
		}
		store.Put(sim.Artifact{ID: a.ID(), Version: a.Version, Size: a.Size, Scope: scope})
	}

	agents := make([]*sim.Agent, 0, len(s.Agents))
	for _, id := range s.Agents {
		agents = append(agents, sim.NewAgent(id))
	}
	simulator, err := sim.NewSimulator(agents, store)
	if err != nil {
		return nil, err
	}

	for i, op := range s.Operations {
		switch op.Op {
		case OpRead:
			err = simulator.ScheduleRead(op.At, op.Agent, op.ArtifactID())
		case OpWrite:
			err = simulator.ScheduleWrite(op.At, op.Agent, op.ArtifactID(), op.Size)
		}
		if err != nil {
			return nil, fmt.Errorf("operations[%d]: %w", i, err)
		}
	}
	logrus.Debugf("scenario %q: scheduled %d operations for %d agents", s.Name, len(s.Operations), len(agents))
	return simulator, nil
}

// TaskList converts the scenario's tasks to engine task records.
func (s *Scenario) TaskList() []sim.Task {
	tasks := make([]sim.Task, 0, len(s.Tasks))
	for _, t := range s.Tasks {
		ids := make([]sim.ArtifactID, 0, len(t.Artifacts))
		for _, name := range t.Artifacts {
			ids = append(ids, sim.ArtifactID{Task: t.ID, Name: name})
		}
		tasks = append(tasks, sim.Task{ID: t.ID, AgentIDs: append([]string(nil), t.Agents...), ArtifactIDs: ids})
	}
	return tasks
}

// Default returns the built-in demo scenario: agent A reads a shared plan twice
// and rewrites it, then agent B reads it after the write has committed.
func Default() *Scenario {
	return &Scenario{
		Name:    "shared-plan-demo",
		Latency: 5,
		Agents:  []string{"A", "B"},
		Tasks: []TaskSpec{
			{ID: "T1", Agents: []string{"A", "B"}, Artifacts: []string{"shared_plan"}},
		},
		Artifacts: []ArtifactSpec{
			{Task: "T1", Name: "shared_plan", Version: 1, Size: 1024, Scope: string(sim.ScopeTask)},
		},
		Operations: []OperationSpec{
			{At: 0, Agent: "A", Op: OpRead, Task: "T1", Artifact: "shared_plan"},
			{At: 10, Agent: "A", Op: OpRead, Task: "T1", Artifact: "shared_plan"},
			{At: 12, Agent: "A", Op: OpWrite, Task: "T1", Artifact: "shared_plan", Size: 1200},
			{At: 30, Agent: "B", Op: OpRead, Task: "T1", Artifact: "shared_plan"},
		},
	}
}
