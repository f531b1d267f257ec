// Package sim provides the discrete-event engine for simulating agents that share
// versioned artifacts through per-agent caches and a single global store.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - model.go: Artifacts, cache entries, agents and the global store
//   - event.go: Event payloads that drive the simulation (read/write requests, responses, commits)
//   - simulator.go: Construction, scheduling and the event loop
//   - protocol.go: The single-level write-through cache protocol handlers
//
// # Ordering
//
// Events run in non-decreasing time. Events scheduled for the same time run in
// the order they were pushed, so the same sequence of Schedule calls always
// produces the same trace.
//
// Sub-packages:
//   - sim/trace/: Trace line and commit records, summaries
//   - sim/scenario/: Scenario files (YAML/TOML) and simulator construction
package sim
