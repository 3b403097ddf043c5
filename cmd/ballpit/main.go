package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/ballpit/internal/analysis"
	"github.com/san-kum/ballpit/internal/arena"
	"github.com/san-kum/ballpit/internal/audio"
	"github.com/san-kum/ballpit/internal/automation"
	"github.com/san-kum/ballpit/internal/config"
	"github.com/san-kum/ballpit/internal/export"
	"github.com/san-kum/ballpit/internal/gui"
	"github.com/san-kum/ballpit/internal/gui/ebitengui"
	"github.com/san-kum/ballpit/internal/gui/rlgui"
	"github.com/san-kum/ballpit/internal/metrics"
	"github.com/san-kum/ballpit/internal/sim"
	"github.com/san-kum/ballpit/internal/storage"
	"github.com/san-kum/ballpit/internal/viz"
	"github.com/spf13/cobra"
)

const crowdThreshold = 50

var (
	dataDir    string
	configFile string
	preset     string
	seed       int64
	duration   float64
	frameRate  int
	scenario   string
	numRuns    int
	tapEvery   float64
	eventEvery float64
	svgOut     string
	noSave     bool
	untilBalls int
	backend    string
	theme      string
	sound      bool
	field      string
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "ballpit",
		Short:        "bouncing balls toy",
		SilenceUsage: true,
		RunE:         runTUI,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".ballpit", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed (0 picks one)")
	rootCmd.PersistentFlags().IntVar(&frameRate, "fps", 0, "frame rate")
	rootCmd.PersistentFlags().BoolVar(&sound, "sound", false, "play sound effects")
	rootCmd.Flags().StringVar(&theme, "theme", "", "color theme")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "terminal ball pit",
		RunE:  runTUI,
	}
	tuiCmd.Flags().StringVar(&theme, "theme", "", "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "windowed ball pit",
		RunE:  runGUI,
	}
	guiCmd.Flags().StringVar(&backend, "backend", "", "window backend (raylib, ebiten)")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run headless and save the timeline",
		RunE:  runHeadless,
	}
	runCmd.Flags().Float64Var(&duration, "time", 0, "duration in seconds")
	runCmd.Flags().StringVar(&scenario, "scenario", "", "scenario file (yaml)")
	runCmd.Flags().IntVar(&numRuns, "runs", 1, "number of seeds to run in parallel")
	runCmd.Flags().Float64Var(&tapEvery, "tap-every", 0.5, "seconds between random taps when no scenario is given")
	runCmd.Flags().Float64Var(&eventEvery, "event-every", 30, "seconds between random events when no scenario is given")
	runCmd.Flags().StringVar(&svgOut, "svg", "", "write the final frame to this SVG file")
	runCmd.Flags().BoolVar(&noSave, "no-save", false, "do not store the run")
	runCmd.Flags().IntVar(&untilBalls, "until-balls", 0, "stop early once this many balls are alive")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a run timeline",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&field, "field", "balls", "series to plot (balls, energy)")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return storage.New(dataDir).ExportJSON(os.Stdout, args[0])
		},
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id] [file]",
		Short: "export a run timeline to SVG",
		Args:  cobra.ExactArgs(2),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVar(&field, "field", "balls", "series to plot (balls, energy)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSIZE\tBAR\tFPS\tEVENT\tTHEME\tBACKEND")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%.0fx%.0f\t%.0f\t%d\t%.0fs\t%s\t%s\n",
					name, p.Arena.Width, p.Arena.Height, p.Arena.BarHeight,
					p.Timing.FPS, p.Timing.EventDuration, p.View.Theme, p.View.Backend)
			}
			return w.Flush()
		},
	}

	initCmd := &cobra.Command{
		Use:   "init [file]",
		Short: "write the current configuration to a yaml file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := config.Save(args[0], cfg); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", args[0])
			return nil
		},
	}

	rootCmd.AddCommand(tuiCmd, guiCmd, runCmd, listCmd, plotCmd, exportJSONCmd, exportSVGCmd, presetsCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig layers defaults, preset, config file and flags, in that order.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("fps") {
		cfg.Timing.FPS = frameRate
	}
	if flags.Changed("time") {
		cfg.Run.Duration = duration
	}
	if flags.Changed("scenario") {
		cfg.Run.Scenario = scenario
	}
	if flags.Changed("theme") {
		cfg.View.Theme = theme
	}
	if flags.Changed("backend") {
		cfg.View.Backend = backend
	}
	if flags.Changed("sound") {
		cfg.View.Sound = sound
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newArena(cfg *config.Config, seed int64) *arena.Arena {
	a := arena.New(cfg.Bounds(), rand.New(rand.NewSource(seed)))
	a.SetEventDuration(cfg.Timing.EventDuration)
	return a
}

// attachSound wires the speaker to a when sound is on. A missing audio
// device is not fatal: the result is nil and the run stays silent.
func attachSound(cfg *config.Config, a *arena.Arena) *audio.Player {
	if !cfg.View.Sound {
		return nil
	}
	p, err := audio.NewPlayer()
	if err != nil {
		log.Printf("sound disabled: %v", err)
		return nil
	}
	a.AddObserver(p)
	return p
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	a := newArena(cfg, cfg.Seed)
	m := viz.NewModel(a, cfg.Timing.FPS, cfg.View.Theme)
	if p := attachSound(cfg, a); p != nil {
		defer p.Close()
		m = m.WithSound(p)
	}
	return viz.Run(m)
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	a := newArena(cfg, cfg.Seed)
	p := attachSound(cfg, a)

	opts := gui.Options{
		Title:     "ballpit",
		Width:     int(cfg.Arena.Width),
		Height:    int(cfg.Arena.Height),
		BarHeight: cfg.Arena.BarHeight,
		FPS:       cfg.Timing.FPS,
	}
	if p != nil {
		defer p.Close()
		opts.Sound = p
	}

	switch cfg.View.Backend {
	case "raylib", "":
		rlgui.Run(a, opts)
		return nil
	case "ebiten":
		return ebitengui.Run(a, opts)
	default:
		return fmt.Errorf("unknown backend: %s (available: raylib, ebiten)", cfg.View.Backend)
	}
}

func newSimulator(cfg *config.Config, seed int64, scn *automation.Scenario) *sim.Simulator {
	s := sim.New(newArena(cfg, seed))
	for _, m := range metrics.Default(crowdThreshold) {
		s.AddMetric(m)
	}
	if scn == nil {
		s.AddHook(automation.Autoplay(tapEvery, eventEvery, seed))
	}
	if untilBalls > 0 {
		s.StopWhen(sim.MinBalls(untilBalls))
	}
	return s
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	var scn *automation.Scenario
	if cfg.Run.Scenario != "" {
		scn, err = automation.LoadScenario(cfg.Run.Scenario)
		if err != nil {
			return fmt.Errorf("failed to load scenario: %w", err)
		}
	}

	simCfg := sim.Config{
		Dt:          cfg.Dt(),
		Duration:    cfg.Run.Duration,
		Seed:        cfg.Seed,
		SampleEvery: cfg.Run.SampleEvery,
	}
	ctx := context.Background()

	if numRuns > 1 {
		return runEnsemble(ctx, cfg, simCfg, scn)
	}

	s := newSimulator(cfg, cfg.Seed, scn)

	fmt.Printf("running %.0fs at %d fps (seed %d)...\n", simCfg.Duration, cfg.Timing.FPS, cfg.Seed)
	start := time.Now()

	var result *sim.Result
	if scn != nil {
		result, err = automation.RunScenario(ctx, scn, s, simCfg)
	} else {
		result, err = s.Run(ctx, simCfg)
	}
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", time.Since(start))
	printResult(result)

	if svgOut != "" {
		a := s.Arena()
		svg := export.ArenaToSVG(a.Balls(), a.Bounds(), a.Background())
		if err := os.WriteFile(svgOut, []byte(svg), 0644); err != nil {
			return err
		}
		fmt.Printf("final frame: %s\n", svgOut)
	}

	if noSave {
		return nil
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	meta := storage.RunMetadata{
		Seed:      cfg.Seed,
		Dt:        simCfg.Dt,
		Duration:  simCfg.Duration,
		Width:     cfg.Arena.Width,
		Height:    cfg.Arena.Height,
		BarHeight: cfg.Arena.BarHeight,
	}
	if scn != nil {
		meta.Scenario = scn.Name
	}
	runID, err := st.Save(meta, result)
	if err != nil {
		return err
	}
	fmt.Printf("run id: %s\n", runID)
	return nil
}

func runEnsemble(ctx context.Context, cfg *config.Config, simCfg sim.Config, scn *automation.Scenario) error {
	factory := func(seed int64) *sim.Simulator {
		s := newSimulator(cfg, seed, scn)
		if scn != nil {
			s.AddHook(scn.Driver())
		}
		return s
	}
	if scn != nil && scn.Duration()+simCfg.Dt > simCfg.Duration {
		simCfg.Duration = scn.Duration() + simCfg.Dt
	}

	fmt.Printf("running %d seeds from %d...\n", numRuns, cfg.Seed)
	results, err := sim.NewEnsemble(factory, numRuns, cfg.Seed).Run(ctx, simCfg)
	if err != nil {
		return err
	}

	names := make([]string, 0)
	for name := range results[0].Metrics {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Println("\nmean metrics:")
	for _, name := range names {
		fmt.Printf("  %s: %.4f\n", name, sim.Mean(results, name))
	}
	return nil
}

func printResult(result *sim.Result) {
	st := result.Stats
	fmt.Printf("steps: %d\n", result.StepsTaken)
	if result.Stopped {
		fmt.Printf("stopped early at %s with %d balls\n", st.Clock(), st.Balls)
	}
	fmt.Printf("balls: %d alive, %d created (%d rainbow, %d growing)\n", st.Balls, st.TotalBalls, st.TotalRainbow, st.TotalEvolutive)
	fmt.Printf("explosions: %d, events: %d\n", st.TotalExplosions, st.TotalEvents)

	names := make([]string, 0, len(result.Metrics))
	for name := range result.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Println("\nmetrics:")
	for _, name := range names {
		fmt.Printf("  %s: %.4f\n", name, result.Metrics[name])
	}
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
	fmt.Fprintln(w, "ID\tTIME\tDURATION\tSEED\tSCENARIO\tBALLS\tEXPLOSIONS")

	for _, run := range runs {
		scn := run.Scenario
		if scn == "" {
			scn = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%.1fs\t%d\t%s\t%d\t%d\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			run.Seed,
			scn,
			run.Totals.Balls,
			run.Totals.Explosions,
		)
	}

	return w.Flush()
}

func loadSeries(runID string) (*storage.RunMetadata, []float64, float64, error) {
	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return nil, nil, 0, err
	}
	samples, err := st.LoadTimeline(runID)
	if err != nil {
		return nil, nil, 0, err
	}
	if len(samples) == 0 {
		return nil, nil, 0, fmt.Errorf("no data to plot")
	}
	interval := 0.0
	if len(samples) > 1 {
		interval = samples[1].Time - samples[0].Time
	}
	result := &sim.Result{Samples: samples}
	return meta, result.Series(field), interval, nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	meta, data, interval, err := loadSeries(args[0])
	if err != nil {
		return err
	}

	sum := analysis.Summarize(data, interval)
	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("samples: %d\n", sum.Samples)
	fmt.Printf("%s: mean %.2f  sd %.2f  min %.2f  max %.2f", field, sum.Mean, sum.StdDev, sum.Min, sum.Max)
	if sum.Period > 0 {
		fmt.Printf("  period %.1fs", sum.Period)
	}
	fmt.Print("\n\n")

	graph := asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(field+" vs time"),
	)
	fmt.Println(graph)
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	_, data, _, err := loadSeries(args[0])
	if err != nil {
		return err
	}
	svg := export.TimelineToSVG(data, 800, 300, "#00ffcc")
	if svg == "" {
		return fmt.Errorf("need at least two samples to plot")
	}
	if err := os.WriteFile(args[1], []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", args[1])
	return nil
}
