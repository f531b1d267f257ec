// Package scenario loads simulation scenarios from YAML or TOML files and builds
// ready-to-run simulators from them.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/inference-sim/memsim/sim"
)

// Format is a scenario file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Operation names accepted in OperationSpec.Op.
const (
	OpRead  = "read"
	OpWrite = "write"
)

// Scenario is the top-level scenario configuration.
// Loaded from YAML or TOML via Load(path).
type Scenario struct {
	Name       string          `yaml:"name" toml:"name"`
	Latency    int64           `yaml:"latency" toml:"latency"` // global store round-trip latency (ticks)
	Agents     []string        `yaml:"agents" toml:"agents"`
	Tasks      []TaskSpec      `yaml:"tasks,omitempty" toml:"tasks,omitempty"`
	Artifacts  []ArtifactSpec  `yaml:"artifacts" toml:"artifacts"`
	Operations []OperationSpec `yaml:"operations" toml:"operations"`
}

// TaskSpec groups agents and the artifacts they coordinate on.
type TaskSpec struct {
	ID        string   `yaml:"id" toml:"id"`
	Agents    []string `yaml:"agents" toml:"agents"`
	Artifacts []string `yaml:"artifacts" toml:"artifacts"` // artifact names local to the task
}

// ArtifactSpec is an initial global store record.
type ArtifactSpec struct {
	Task    string `yaml:"task" toml:"task"`
	Name    string `yaml:"name" toml:"name"`
	Version int64  `yaml:"version" toml:"version"`
	Size    int64  `yaml:"size" toml:"size"`
	Scope   string `yaml:"scope,omitempty" toml:"scope,omitempty"` // empty defaults to task
}

// OperationSpec is one scheduled read or write request.
type OperationSpec struct {
	At       int64  `yaml:"at" toml:"at"`
	Agent    string `yaml:"agent" toml:"agent"`
	Op       string `yaml:"op" toml:"op"`
	Task     string `yaml:"task" toml:"task"`
	Artifact string `yaml:"artifact" toml:"artifact"`
	Size     int64  `yaml:"size,omitempty" toml:"size,omitempty"` // write only
}

// ID returns the artifact id of the store record.
func (a ArtifactSpec) ID() sim.ArtifactID {
	return sim.ArtifactID{Task: a.Task, Name: a.Name}
}

// ArtifactID returns the artifact id the operation targets.
func (o OperationSpec) ArtifactID() sim.ArtifactID {
	return sim.ArtifactID{Task: o.Task, Name: o.Artifact}
}

// Load reads and parses a scenario file. The format follows the file extension
// (.yaml, .yml or .toml). Uses strict parsing: unrecognized keys (typos) are rejected.
func Load(path string) (*Scenario, error) {
	var format Format
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		format = FormatYAML
	case ".toml":
		format = FormatTOML
	default:
		return nil, fmt.Errorf("unsupported scenario file extension %q; valid: .yaml, .yml, .toml", filepath.Ext(path))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	return Parse(data, format)
}

// Parse decodes a scenario from data in the given format.
func Parse(data []byte, format Format) (*Scenario, error) {
	var sc Scenario
	switch format {
	case FormatYAML:
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(&sc); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("parsing scenario: empty document")
			}
			return nil, fmt.Errorf("parsing scenario: %w", err)
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), &sc)
		if err != nil {
			return nil, fmt.Errorf("parsing scenario: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, 0, len(undecoded))
			for _, k := range undecoded {
				keys = append(keys, k.String())
			}
			sort.Strings(keys)
			return nil, fmt.Errorf("parsing scenario: unknown keys %s", strings.Join(keys, ", "))
		}
	default:
		return nil, fmt.Errorf("unknown scenario format %q; valid: yaml, toml", format)
	}
	return &sc, nil
}

// Validate checks that all fields in the scenario are valid.
func (s *Scenario) Validate() error {
	if s.Latency < 0 {
		return fmt.Errorf("latency must be non-negative, got %d", s.Latency)
	}
	if len(s.Agents) == 0 {
		return fmt.Errorf("at least one agent required")
	}
	agents := make(map[string]bool, len(s.Agents))
	for i, id := range s.Agents {
		if id == "" {
			return fmt.Errorf("agents[%d]: id must not be empty", i)
		}
		if agents[id] {
			return fmt.Errorf("agents[%d]: duplicate agent %q", i, id)
		}
		agents[id] = true
	}

	artifacts := make(map[sim.ArtifactID]bool, len(s.Artifacts))
	for i, a := range s.Artifacts {
		if err := validateArtifact(&a, i); err != nil {
			return err
		}
		if artifacts[a.ID()] {
			return fmt.Errorf("artifacts[%d]: duplicate artifact %s", i, a.ID())
		}
		artifacts[a.ID()] = true
	}

	for i, task := range s.Tasks {
		prefix := fmt.Sprintf("tasks[%d]", i)
		if task.ID == "" {
			return fmt.Errorf("%s: id must not be empty", prefix)
		}
		for _, id := range task.Agents {
			if !agents[id] {
				return fmt.Errorf("%s: unknown agent %q", prefix, id)
			}
		}
	}

	for i, op := range s.Operations {
		if err := validateOperation(&op, i, agents); err != nil {
			return err
		}
	}
	return nil
}

func validateArtifact(a *ArtifactSpec, idx int) error {
	prefix := fmt.Sprintf("artifacts[%d]", idx)
	if a.Task == "" || a.Name == "" {
		return fmt.Errorf("%s: task and name must not be empty", prefix)
	}
	if a.Version < 1 {
		return fmt.Errorf("%s: version must be at least 1, got %d", prefix, a.Version)
	}
	if a.Size < 0 {
		return fmt.Errorf("%s: size must be non-negative, got %d", prefix, a.Size)
	}
	if a.Scope != "" && !sim.IsValidScope(a.Scope) {
		return fmt.Errorf("%s: unknown scope %q; valid: local, task, global, or empty", prefix, a.Scope)
	}
	return nil
}

func validateOperation(op *OperationSpec, idx int, agents map[string]bool) error {
	prefix := fmt.Sprintf("operations[%d]", idx)
	if op.At < 0 {
		return fmt.Errorf("%s: at must be non-negative, got %d", prefix, op.At)
	}
	if !agents[op.Agent] {
		return fmt.Errorf("%s: unknown agent %q", prefix, op.Agent)
	}
	if op.Task == "" || op.Artifact == "" {
		return fmt.Errorf("%s: task and artifact must not be empty", prefix)
	}
	switch op.Op {
	case OpRead:
		if op.Size != 0 {
			return fmt.Errorf("%s: size is only valid for writes", prefix)
		}
	case OpWrite:
		if op.Size < 0 {
			return fmt.Errorf("%s: size must be non-negative, got %d", prefix, op.Size)
		}
	default:
		return fmt.Errorf("%s: unknown op %q; valid: read, write", prefix, op.Op)
	}
	return nil
}
