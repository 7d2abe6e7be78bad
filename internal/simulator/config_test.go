package simulator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenarioFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenarios.hcl")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadScenarios(t *testing.T) {
	path := writeScenarioFile(t, `
scenario "tiny" {
  height = 4
  width  = 4
  mines  = 2
  games  = 25
  seed   = 7
}

scenario "defaults" {
  height    = 9
  width     = 9
  mines     = 10
  auto_flag = true
}
`)

	scenarios, err := LoadScenarios(path)
	require.NoError(t, err)
	require.Len(t, scenarios, 2)

	assert.Equal(t, Scenario{Name: "tiny", Height: 4, Width: 4, Mines: 2, Games: 25, Seed: 7}, scenarios[0])
	assert.Equal(t, "defaults", scenarios[1].Name)
	assert.Equal(t, 100, scenarios[1].Games, "games defaults to 100")
	assert.True(t, scenarios[1].AutoFlag)
}

func TestLoadScenariosMissingFileUsesDefaults(t *testing.T) {
	scenarios, err := LoadScenarios(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, DefaultScenarios(), scenarios)
}

func TestLoadScenariosErrors(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{"unparseable", `scenario "broken" {`},
		{
			"too many mines",
			`scenario "overfull" {
  height = 2
  width  = 2
  mines  = 5
}`,
		},
		{
			"degenerate board",
			`scenario "flat" {
  height = 0
  width  = 9
  mines  = 0
}`,
		},
		{"no scenarios", `# empty file`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScenarios(writeScenarioFile(t, tt.contents))
			require.Error(t, err)
		})
	}
}

func TestDefaultScenariosAreValid(t *testing.T) {
	for _, sc := range DefaultScenarios() {
		assert.Positive(t, sc.Games, sc.Name)
		assert.LessOrEqual(t, sc.Mines, sc.Height*sc.Width, sc.Name)
	}
}
