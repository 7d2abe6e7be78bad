package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/lox/minesweeper/internal/randutil"
	"github.com/lox/minesweeper/internal/simulator"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("14"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	lossStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
)

// SimulateCmd runs random playouts, either for a single board described by
// flags or for every scenario in an HCL config file.
type SimulateCmd struct {
	Height      int    `default:"9" help:"Board height"`
	Width       int    `default:"9" help:"Board width"`
	Mines       int    `default:"10" help:"Number of mines"`
	Games       int    `default:"100" help:"Number of games per scenario"`
	Seed        int64  `default:"0" help:"RNG seed (0 for random)"`
	AutoFlag    bool   `help:"Auto-flag satisfied neighbors when chording"`
	FlagEvery   int    `default:"6" help:"Roughly one random flag toggle per N moves (0 disables)"`
	Parallelism int    `default:"4" help:"Concurrent games"`
	Config      string `help:"HCL scenario file (overrides board flags)" type:"path"`
	Verbose     bool   `help:"Verbose logging"`
}

func (c *SimulateCmd) Run() error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
	if c.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	scenarios, err := c.scenarios()
	if err != nil {
		return err
	}

	fmt.Printf("%-14s %7s %7s %7s %9s %11s %12s %10s\n",
		headerStyle.Render("scenario"),
		headerStyle.Render("games"),
		headerStyle.Render("wins"),
		headerStyle.Render("win%"),
		headerStyle.Render("exploded"),
		headerStyle.Render("unfinished"),
		headerStyle.Render("moves/game"),
		headerStyle.Render("elapsed"))

	for _, sc := range scenarios {
		seed := sc.Seed
		if seed == 0 {
			seed = c.Seed
		}
		seed = randutil.Seed(seed)

		sim := simulator.New(simulator.Config{
			Height:      sc.Height,
			Width:       sc.Width,
			Mines:       sc.Mines,
			Games:       sc.Games,
			Seed:        seed,
			AutoFlag:    sc.AutoFlag || c.AutoFlag,
			FlagEvery:   c.FlagEvery,
			Parallelism: c.Parallelism,
			Logger:      logger,
		})

		stats, elapsed, err := sim.Run(context.Background())
		if err != nil {
			return fmt.Errorf("scenario %q: %w", sc.Name, err)
		}

		fmt.Printf("%-14s %7d %7s %7s %9s %11d %12.1f %10s\n",
			nameStyle.Render(sc.Name),
			stats.Games,
			winStyle.Render(fmt.Sprintf("%d", stats.Wins)),
			winStyle.Render(fmt.Sprintf("%.1f%%", stats.WinRate()*100)),
			lossStyle.Render(fmt.Sprintf("%d", stats.Explosions)),
			stats.Unfinished,
			stats.Mean(),
			elapsed.Round(time.Millisecond))

		if c.Verbose {
			lo, hi := stats.ConfidenceInterval95()
			logger.Debug("move distribution",
				"scenario", sc.Name,
				"median", stats.Median(),
				"stddev", fmt.Sprintf("%.2f", stats.StdDev()),
				"ci95", fmt.Sprintf("[%.1f, %.1f]", lo, hi),
				"max_chord_detonation", stats.MaxDetonated)
		}
	}

	return nil
}

func (c *SimulateCmd) scenarios() ([]simulator.Scenario, error) {
	if c.Config != "" {
		return simulator.LoadScenarios(c.Config)
	}
	return []simulator.Scenario{{
		Name:     "custom",
		Height:   c.Height,
		Width:    c.Width,
		Mines:    c.Mines,
		Games:    c.Games,
		Seed:     c.Seed,
		AutoFlag: c.AutoFlag,
	}}, nil
}
