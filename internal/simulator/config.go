package simulator

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// ScenarioFile is the root of an HCL scenario configuration:
//
//	scenario "beginner" {
//	  height = 9
//	  width  = 9
//	  mines  = 10
//	  games  = 500
//	}
type ScenarioFile struct {
	Scenarios []Scenario `hcl:"scenario,block"`
}

// Scenario defines one board configuration to simulate.
type Scenario struct {
	Name     string `hcl:"name,label"`
	Height   int    `hcl:"height"`
	Width    int    `hcl:"width"`
	Mines    int    `hcl:"mines"`
	Games    int    `hcl:"games,optional"`
	Seed     int64  `hcl:"seed,optional"`
	AutoFlag bool   `hcl:"auto_flag,optional"`
}

// DefaultScenarios returns the three classic board difficulties.
func DefaultScenarios() []Scenario {
	return []Scenario{
		{Name: "beginner", Height: 9, Width: 9, Mines: 10, Games: 100},
		{Name: "intermediate", Height: 16, Width: 16, Mines: 40, Games: 100},
		{Name: "expert", Height: 16, Width: 30, Mines: 99, Games: 100},
	}
}

// LoadScenarios loads scenario definitions from an HCL file. A missing file
// yields the default scenarios.
func LoadScenarios(filename string) ([]Scenario, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultScenarios(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config ScenarioFile
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if len(config.Scenarios) == 0 {
		return nil, fmt.Errorf("no scenario blocks in %s", filename)
	}

	for i := range config.Scenarios {
		sc := &config.Scenarios[i]
		if sc.Games == 0 {
			sc.Games = 100
		}
		if sc.Height < 1 || sc.Width < 1 {
			return nil, fmt.Errorf("scenario %q: board must be at least 1x1", sc.Name)
		}
		if sc.Mines < 0 || sc.Mines > sc.Height*sc.Width {
			return nil, fmt.Errorf("scenario %q: %d mines do not fit on a %dx%d board",
				sc.Name, sc.Mines, sc.Height, sc.Width)
		}
	}

	return config.Scenarios, nil
}
