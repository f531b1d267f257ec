package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_ValidYAML_LoadsCorrectly(t *testing.T) {
	path := writeFile(t, "scenario.yaml", `
name: two-agents
latency: 4
agents: [A, B]
artifacts:
  - task: T1
    name: plan
    version: 2
    size: 64
    scope: global
operations:
  - at: 1
    agent: B
    op: write
    task: T1
    artifact: plan
    size: 80
`)

	sc, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "two-agents", sc.Name)
	assert.Equal(t, int64(4), sc.Latency)
	assert.Equal(t, []string{"A", "B"}, sc.Agents)
	require.Len(t, sc.Artifacts, 1)
	assert.Equal(t, ArtifactSpec{Task: "T1", Name: "plan", Version: 2, Size: 64, Scope: "global"}, sc.Artifacts[0])
	require.Len(t, sc.Operations, 1)
	assert.Equal(t, OperationSpec{At: 1, Agent: "B", Op: OpWrite, Task: "T1", Artifact: "plan", Size: 80}, sc.Operations[0])
	assert.NoError(t, sc.Validate())
}

func TestLoad_YAMLAndTOMLExamples_Equivalent(t *testing.T) {
	fromYAML, err := Load(filepath.Join("..", "..", "scenarios", "shared_plan.yaml"))
	require.NoError(t, err)
	fromTOML, err := Load(filepath.Join("..", "..", "scenarios", "shared_plan.toml"))
	require.NoError(t, err)

	assert.Equal(t, fromYAML, fromTOML)
	assert.NoError(t, fromYAML.Validate())
}

func TestLoad_UnknownYAMLField_Rejected(t *testing.T) {
	// GIVEN a typo in a key
	path := writeFile(t, "typo.yaml", `
latency: 1
agents: [A]
artifacts: []
operations:
  - {at: 0, agnet: A, op: read, task: T1, artifact: plan}
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "agnet")
}

func TestLoad_UnknownTOMLKey_Rejected(t *testing.T) {
	path := writeFile(t, "typo.toml", `
latency = 1
agents = ["A"]
latncy = 2
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "latncy")
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	path := writeFile(t, "scenario.json", `{}`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".json")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading scenario")
}

func TestParse_EmptyYAML_Rejected(t *testing.T) {
	_, err := Parse([]byte(""), FormatYAML)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty document")
}

func TestParse_UnknownFormat_Rejected(t *testing.T) {
	_, err := Parse([]byte("latency: 1"), Format("ini"))
	assert.Error(t, err)
}

func validScenario() *Scenario {
	return &Scenario{
		Latency: 2,
		Agents:  []string{"A", "B"},
		Tasks:   []TaskSpec{{ID: "T1", Agents: []string{"A"}, Artifacts: []string{"plan"}}},
		Artifacts: []ArtifactSpec{
			{Task: "T1", Name: "plan", Version: 1, Size: 10},
		},
		Operations: []OperationSpec{
			{At: 0, Agent: "A", Op: OpRead, Task: "T1", Artifact: "plan"},
			{At: 1, Agent: "B", Op: OpWrite, Task: "T1", Artifact: "plan", Size: 20},
		},
	}
}

func TestValidate_ValidScenario_NoError(t *testing.T) {
	assert.NoError(t, validScenario().Validate())
}

func TestValidate_InvalidScenarios(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(s *Scenario)
		errPart string
	}{
		{"negative latency", func(s *Scenario) { s.Latency = -1 }, "latency"},
		{"no agents", func(s *Scenario) { s.Agents = nil }, "at least one agent"},
		{"empty agent id", func(s *Scenario) { s.Agents = []string{"A", ""} }, "agents[1]"},
		{"duplicate agent", func(s *Scenario) { s.Agents = []string{"A", "B", "A"} }, "duplicate agent"},
		{"artifact missing name", func(s *Scenario) { s.Artifacts[0].Name = "" }, "artifacts[0]"},
		{"artifact version zero", func(s *Scenario) { s.Artifacts[0].Version = 0 }, "version"},
		{"artifact negative size", func(s *Scenario) { s.Artifacts[0].Size = -5 }, "size"},
		{"artifact bad scope", func(s *Scenario) { s.Artifacts[0].Scope = "cluster" }, "unknown scope"},
		{"duplicate artifact", func(s *Scenario) {
			s.Artifacts = append(s.Artifacts, ArtifactSpec{Task: "T1", Name: "plan", Version: 3})
		}, "duplicate artifact"},
		{"task empty id", func(s *Scenario) { s.Tasks[0].ID = "" }, "tasks[0]"},
		{"task unknown agent", func(s *Scenario) { s.Tasks[0].Agents = []string{"Z"} }, "unknown agent"},
		{"operation negative time", func(s *Scenario) { s.Operations[0].At = -1 }, "operations[0]"},
		{"operation unknown agent", func(s *Scenario) { s.Operations[1].Agent = "Z" }, "operations[1]: unknown agent"},
		{"operation unknown op", func(s *Scenario) { s.Operations[0].Op = "delete" }, "unknown op"},
		{"read with size", func(s *Scenario) { s.Operations[0].Size = 4 }, "only valid for writes"},
		{"write negative size", func(s *Scenario) { s.Operations[1].Size = -1 }, "size must be non-negative"},
		{"operation missing artifact", func(s *Scenario) { s.Operations[0].Artifact = "" }, "task and artifact"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validScenario()
			tt.mutate(s)
			err := s.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errPart)
		})
	}
}
