package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/osse101/taskfarm/internal/config"
	"github.com/osse101/taskfarm/internal/crop"
	"github.com/osse101/taskfarm/internal/domain"
	"github.com/osse101/taskfarm/internal/event"
	"github.com/osse101/taskfarm/internal/farm"
	"github.com/osse101/taskfarm/internal/logger"
)

// simulationStart anchors simulated runs so their output is reproducible
var simulationStart = time.Date(2024, time.January, 1, 6, 0, 0, 0, time.UTC)

const simulationSessionID = "simulation"

var simulateCmd = &cobra.Command{
	Use:     "simulate",
	Short:   "Run a farm deterministically and print the final state",
	Example: "  taskfarm simulate --ticks 600 --weather rainy --plant wheat:0 --plant corn:3 --auto-harvest",
	RunE:    runSimulate,
}

func init() {
	f := simulateCmd.Flags()
	f.Int("ticks", 600, "number of ticks to run")
	f.Duration("interval", farm.TickInterval, "simulated time per tick")
	f.String("weather", string(domain.WeatherSunny), "weather for the whole run")
	f.String("season", string(domain.SeasonSpring), "season label")
	f.StringArray("plant", nil, "plant crop on plot before the first tick, as crop:plot (repeatable)")
	f.Bool("auto-harvest", false, "harvest and replant ready plots after every tick")
	f.Int("grid", 0, "plot count (overrides FARM_GRID_SIZE)")
	f.Int("balance", -1, "starting sun energy (overrides FARM_STARTING_BALANCE)")
	f.String("catalog", "", "crop catalog JSON file (overrides CROP_CATALOG_PATH)")
	f.BoolP("verbose", "v", false, "log engine activity to stderr")
	f.StringP("format", "o", FormatJSON, "output format: json or text")
	rootCmd.AddCommand(simulateCmd)
}

// plantOrder is one parsed --plant flag
type plantOrder struct {
	CropID string
	PlotID int
}

func parsePlantOrder(s string) (plantOrder, error) {
	cropID, plot, ok := strings.Cut(s, ":")
	if !ok || cropID == "" {
		return plantOrder{}, fmt.Errorf("%w: plant order %q, expected crop:plot", domain.ErrInvalidInput, s)
	}
	plotID, err := strconv.Atoi(plot)
	if err != nil {
		return plantOrder{}, fmt.Errorf("%w: plant order %q has a non-numeric plot", domain.ErrInvalidInput, s)
	}
	return plantOrder{CropID: cropID, PlotID: plotID}, nil
}

// simulationOptions drive one headless run
type simulationOptions struct {
	Ticks       int
	Interval    time.Duration
	Weather     domain.Weather
	Season      domain.Season
	Plants      []plantOrder
	AutoHarvest bool
	GridSize    int
	Balance     int
}

// SimulationReport is the JSON document printed by simulate
type SimulationReport struct {
	Ticks          int              `json:"ticks"`
	ElapsedSeconds float64          `json:"elapsed_seconds"`
	Harvests       map[string]int   `json:"harvests"`
	Events         map[string]int   `json:"events"`
	State          domain.FarmState `json:"state"`
}

// runSimulation advances a session on a simulated clock; no wall-clock waiting happens
func runSimulation(ctx context.Context, catalog farm.CropLookup, opts simulationOptions) (SimulationReport, error) {
	report := SimulationReport{
		Ticks:    opts.Ticks,
		Harvests: make(map[string]int),
		Events:   make(map[string]int),
	}

	bus := event.NewMemoryBus()
	event.SubscribeAll(bus, func(_ context.Context, evt event.Event) error {
		report.Events[string(evt.Type)]++
		return nil
	})

	clock := farm.NewSimulatedClock(simulationStart)
	s, err := farm.NewSession(simulationSessionID, catalog,
		farm.WithGridSize(opts.GridSize),
		farm.WithStartingBalance(opts.Balance),
		farm.WithClock(clock),
		farm.WithBus(bus),
	)
	if err != nil {
		return report, err
	}

	if err := s.SetWeather(ctx, opts.Weather); err != nil {
		return report, err
	}
	if err := s.SetSeason(ctx, opts.Season); err != nil {
		return report, err
	}
	for _, p := range opts.Plants {
		if err := s.Plant(ctx, p.PlotID, p.CropID); err != nil {
			return report, fmt.Errorf("plant %s on plot %d: %w", p.CropID, p.PlotID, err)
		}
	}

	for i := 0; i < opts.Ticks; i++ {
		clock.Advance(opts.Interval)
		report.ElapsedSeconds += s.Clock().Advance(ctx)

		if opts.AutoHarvest {
			harvestAndReplant(ctx, s, report.Harvests)
		}
	}

	report.State = s.GetState()
	return report, nil
}

// harvestAndReplant collects every ready plot and replants the same crop when affordable
func harvestAndReplant(ctx context.Context, s *farm.Session, harvests map[string]int) {
	for _, plot := range s.GetState().Plots {
		if plot.Status != domain.PlotStatusReady {
			continue
		}
		if err := s.Harvest(ctx, plot.ID); err != nil {
			continue
		}
		harvests[plot.CropID]++
		// Running out of sun energy just leaves the plot empty
		_ = s.Plant(ctx, plot.ID, plot.CropID)
	}
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	f := cmd.Flags()
	verbose, _ := f.GetBool("verbose")
	var logOut io.Writer = io.Discard
	if verbose {
		logOut = os.Stderr
	}
	logger.InitLoggerWithWriter(logger.NewConfig(logger.LogLevelDebug, logger.LogFormatText,
		cfg.ServiceName, cfg.Version, cfg.Environment, false), logOut)

	opts := simulationOptions{GridSize: cfg.GridSize, Balance: cfg.StartingBalance}
	opts.Ticks, _ = f.GetInt("ticks")
	opts.Interval, _ = f.GetDuration("interval")
	opts.AutoHarvest, _ = f.GetBool("auto-harvest")
	if grid, _ := f.GetInt("grid"); grid > 0 {
		opts.GridSize = grid
	}
	if balance, _ := f.GetInt("balance"); balance >= 0 {
		opts.Balance = balance
	}
	if opts.Ticks < 0 || opts.Interval < 0 {
		return fmt.Errorf("%w: ticks and interval must not be negative", domain.ErrInvalidInput)
	}

	weather, _ := f.GetString("weather")
	if opts.Weather, err = domain.ParseWeather(weather); err != nil {
		return err
	}
	season, _ := f.GetString("season")
	if opts.Season, err = domain.ParseSeason(season); err != nil {
		return err
	}

	orders, _ := f.GetStringArray("plant")
	for _, o := range orders {
		p, err := parsePlantOrder(o)
		if err != nil {
			return err
		}
		opts.Plants = append(opts.Plants, p)
	}

	catalogPath := cfg.CropCatalogPath
	if path, _ := f.GetString("catalog"); path != "" {
		catalogPath = path
	}
	catalog, err := crop.LoadCatalog(cmd.Context(), catalogPath)
	if err != nil {
		return err
	}

	report, err := runSimulation(cmd.Context(), catalog, opts)
	if err != nil {
		return err
	}
	slog.Debug("Simulation finished", "ticks", report.Ticks, "elapsed_seconds", report.ElapsedSeconds)

	format, _ := f.GetString("format")
	return writeReport(cmd.OutOrStdout(), format, report)
}
