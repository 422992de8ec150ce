package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/ballsim/internal/analysis"
	"github.com/san-kum/ballsim/internal/config"
	"github.com/san-kum/ballsim/internal/export"
	"github.com/san-kum/ballsim/internal/metrics"
	"github.com/san-kum/ballsim/internal/sim"
	"github.com/san-kum/ballsim/internal/storage"
	"github.com/san-kum/ballsim/internal/viz"
	"github.com/san-kum/ballsim/internal/world"
)

var (
	dataDir      string
	dt           float64
	duration     float64
	bodies       int
	seed         int64
	noCollisions bool
	configFile   string
	preset       string
	frameRate    int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ballsim",
		Short: "2d particle physics sandbox",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the live view when no command given.
			return runLive(cmd, args)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".ballsim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run headless simulation and save the result",
		RunE:  runSimulation,
	}
	addSimFlags(runCmd)

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run simulation with live terminal view",
		RunE:  runLive,
	}
	addSimFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", 60, "frame rate")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run history",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run as json",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run frames to csv",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, p := range config.ListPresets() {
				fmt.Println(p)
			}
		},
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export run trajectories as svg",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "frequency analysis of kinetic energy",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark step rate across body counts",
		RunE:  benchStep,
	}

	rootCmd.AddCommand(runCmd, liveCmd, listCmd, plotCmd, exportCmd, exportCSVCmd,
		exportSVGCmd, analyzeCmd, presetsCmd, benchCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSimFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	cmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration")
	cmd.Flags().IntVar(&bodies, "bodies", config.DefaultBodies, "number of bodies")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	cmd.Flags().BoolVar(&noCollisions, "no-collisions", false, "disable the collision pass")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// resolveConfig layers preset, config file and CLI flags, flags winning.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		c := *p
		cfg = &c
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("time") {
		cfg.Duration = duration
	}
	if cmd.Flags().Changed("bodies") {
		cfg.Bodies = bodies
	}
	if cfg.Seed == 0 || cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if noCollisions {
		cfg.World.Collisions = false
	}
	return cfg, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	w := world.New(cfg.Params(), cfg.Seed)
	w.SpawnRandom(cfg.Bodies)

	runner := sim.NewRunner(w)
	runner.AddMetric(metrics.NewKinetic())
	runner.AddMetric(metrics.NewMomentum())
	runner.AddMetric(metrics.NewPopulation())
	runner.AddMetric(metrics.NewSettled())

	simCfg := sim.Config{
		Dt:           cfg.Dt,
		Duration:     cfg.Duration,
		Seed:         cfg.Seed,
		RecordFrames: true,
	}

	fmt.Printf("running %d bodies for %.1fs...\n", cfg.Bodies, cfg.Duration)
	start := time.Now()

	result, err := runner.Run(context.Background(), simCfg)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	runID, err := st.Save(simCfg, cfg.Bodies, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", result.StepsTaken)
	fmt.Printf("despawned: %d\n", result.Despawned)
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	w := world.New(cfg.Params(), cfg.Seed)
	w.SpawnRandom(cfg.Bodies)

	m := viz.NewModel(w, cfg.Dt, frameRate, cfg.Bodies)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tDURATION\tDT\tBODIES\tDESPAWNED")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%.2fs\t%.4fs\t%d\t%d\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			run.Dt,
			run.Bodies,
			run.Despawned,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	frames, err := st.LoadFrames(args[0])
	if err != nil {
		return err
	}
	if len(frames) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("samples: %d\n\n", len(frames))

	population := make([]float64, len(frames))
	kinetic := make([]float64, len(frames))
	for i, f := range frames {
		population[i] = float64(len(f.Bodies))
		for _, b := range f.Bodies {
			// Mass is not persisted per frame; weight speed uniformly.
			kinetic[i] += 0.5 * (b.VX*b.VX + b.VY*b.VY)
		}
	}

	for _, plot := range []struct {
		data    []float64
		caption string
	}{
		{population, "live bodies"},
		{kinetic, "kinetic energy (unit mass)"},
	} {
		graph := asciigraph.Plot(plot.data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(plot.caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return st.ExportJSON(args[0], enc)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	frames, err := st.LoadFrames(args[0])
	if err != nil {
		return err
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"time", "id", "x", "y", "vx", "vy", "fixed"}); err != nil {
		return err
	}
	for _, f := range frames {
		for _, b := range f.Bodies {
			row := []string{
				strconv.FormatFloat(f.Time, 'f', 6, 64),
				strconv.FormatInt(b.ID, 10),
				strconv.FormatFloat(b.X, 'f', 6, 64),
				strconv.FormatFloat(b.Y, 'f', 6, 64),
				strconv.FormatFloat(b.VX, 'f', 6, 64),
				strconv.FormatFloat(b.VY, 'f', 6, 64),
				strconv.FormatBool(b.Fixed),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	frames, err := st.LoadFrames(args[0])
	if err != nil {
		return err
	}
	if len(frames) == 0 {
		return fmt.Errorf("no data to export")
	}

	// Stored frames carry world coordinates; render with the defaults.
	cfg := config.DefaultConfig()
	svg := export.TrailsToSVG(frames, cfg.World.WindowWidth, cfg.World.WindowHeight, cfg.World.Scale)
	_, err = fmt.Print(svg)
	return err
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	frames, err := st.LoadFrames(args[0])
	if err != nil {
		return err
	}
	if len(frames) == 0 {
		return fmt.Errorf("no data")
	}

	kinetic := make([]float64, len(frames))
	for i, f := range frames {
		for _, b := range f.Bodies {
			kinetic[i] += 0.5 * (b.VX*b.VX + b.VY*b.VY)
		}
	}

	ps := analysis.PowerSpectrum(kinetic)
	plotData := ps
	if len(ps) > 4 {
		plotData = ps[:len(ps)/4]
	}

	fmt.Printf("frequency analysis: %s\n\n", meta.ID)
	graph := asciigraph.Plot(plotData,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption("power spectrum (kinetic energy)"),
	)
	fmt.Println(graph)
	fmt.Println()

	freq := analysis.DominantFrequency(ps, meta.Duration)
	fmt.Printf("dominant frequency: %.3f hz\n", freq)
	if freq > 0 {
		fmt.Printf("period: %.3f s\n", 1.0/freq)
	}
	return nil
}

func benchStep(cmd *cobra.Command, args []string) error {
	counts := []int{25, 50, 100, 200}
	durations := []float64{1.0, 5.0}

	fmt.Println("benchmarking step rate")
	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BODIES\tDURATION\tSTEPS\tTIME\tSTEPS/SEC")

	for _, n := range counts {
		for _, dur := range durations {
			wd := world.New(config.DefaultConfig().Params(), 42)
			wd.SpawnRandom(n)

			runner := sim.NewRunner(wd)
			cfg := sim.Config{Dt: 0.01, Duration: dur, Seed: 42}

			start := time.Now()
			result, err := runner.Run(context.Background(), cfg)
			if err != nil {
				return err
			}
			elapsed := time.Since(start)

			stepsPerSec := float64(result.StepsTaken) / elapsed.Seconds()
			fmt.Fprintf(w, "%d\t%.1fs\t%d\t%v\t%.0f\n",
				n, dur, result.StepsTaken, elapsed, stepsPerSec)
		}
	}
	return w.Flush()
}
