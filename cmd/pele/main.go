package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/yangxi1209/pele/internal/config"
	"github.com/yangxi1209/pele/internal/landscape"
	"github.com/yangxi1209/pele/internal/observables"
	"github.com/yangxi1209/pele/internal/optimize"
	"github.com/yangxi1209/pele/internal/potentials"
	"github.com/yangxi1209/pele/internal/storage"
	"github.com/yangxi1209/pele/internal/tui"
)

var (
	dataDir    string
	configFile string
	preset     string

	potKind  string
	blockDim int
	mean     []float64
	cov      []float64
	springK  float64
	origin   []float64
	initX    []float64

	dtStart    float64
	dtMax      float64
	maxStep    float64
	tol        float64
	alphaStart float64
	maxIter    int

	volume float64
	ndim   int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pele",
		Short: "potential-energy landscape exploration",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".pele", "data directory")

	minimizeCmd := &cobra.Command{
		Use:   "minimize",
		Short: "minimize a potential with modified FIRE",
		RunE:  runMinimize,
	}
	addPotentialFlags(minimizeCmd)
	addFireFlags(minimizeCmd)

	pressureCmd := &cobra.Command{
		Use:   "pressure",
		Short: "compute the virial pressure tensor at a configuration",
		RunE:  runPressure,
	}
	addPotentialFlags(pressureCmd)
	pressureCmd.Flags().Float64Var(&volume, "volume", config.DefaultVolume, "system volume")
	pressureCmd.Flags().IntVar(&ndim, "ndim", 2, "spatial dimension")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  runList,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run-id]",
		Short: "plot the energy trace of a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  runPlot,
	}

	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "watch a minimization live",
		RunE:  runWatch,
	}
	addPotentialFlags(watchCmd)
	addFireFlags(watchCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	rootCmd.AddCommand(minimizeCmd, pressureCmd, listCmd, plotCmd, watchCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addPotentialFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().StringVar(&potKind, "potential", "sumgauss", "potential kind (gauss, sumgauss, harmonic)")
	cmd.Flags().IntVar(&blockDim, "block-dim", 2, "block size (sumgauss)")
	cmd.Flags().Float64SliceVar(&mean, "mean", nil, "well center, one value per dof")
	cmd.Flags().Float64SliceVar(&cov, "cov", nil, "per-axis variances, one value per dof")
	cmd.Flags().Float64Var(&springK, "k", 1.0, "spring constant (harmonic)")
	cmd.Flags().Float64SliceVar(&origin, "origin", nil, "spring origin (harmonic)")
	cmd.Flags().Float64SliceVar(&initX, "x", nil, "configuration / starting point")
}

func addFireFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&dtStart, "dt-start", config.DefaultDtStart, "initial step size")
	cmd.Flags().Float64Var(&dtMax, "dt-max", config.DefaultDtMax, "step size cap")
	cmd.Flags().Float64Var(&maxStep, "max-step", config.DefaultMaxStep, "per-iteration displacement bound")
	cmd.Flags().Float64Var(&tol, "tol", config.DefaultTol, "rms gradient tolerance")
	cmd.Flags().Float64Var(&alphaStart, "alpha-start", 0.1, "initial mixing coefficient")
	cmd.Flags().IntVar(&maxIter, "iters", config.DefaultMaxIter, "iteration budget")
}

// resolveConfig merges preset, config file and CLI flags, flags winning.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		// Copy so flag overrides below never mutate the preset table.
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

	if cmd.Flags().Changed("potential") {
		cfg.Potential.Kind = potKind
	}
	if cmd.Flags().Changed("block-dim") {
		cfg.Potential.BlockDim = blockDim
	}
	if cmd.Flags().Changed("mean") {
		cfg.Potential.Mean = mean
	}
	if cmd.Flags().Changed("cov") {
		cfg.Potential.Cov = cov
	}
	if cmd.Flags().Changed("k") {
		cfg.Potential.K = springK
	}
	if cmd.Flags().Changed("origin") {
		cfg.Potential.Origin = origin
	}
	if cmd.Flags().Changed("x") {
		cfg.InitCoords = initX
	}
	if f := cmd.Flags(); f.Lookup("dt-start") != nil {
		if f.Changed("dt-start") {
			cfg.Fire.DtStart = dtStart
		}
		if f.Changed("dt-max") {
			cfg.Fire.DtMax = dtMax
		}
		if f.Changed("max-step") {
			cfg.Fire.MaxStep = maxStep
		}
		if f.Changed("tol") {
			cfg.Fire.Tol = tol
		}
		if f.Changed("alpha-start") {
			cfg.Fire.AlphaStart = alphaStart
		}
		if f.Changed("iters") {
			cfg.Fire.MaxIter = maxIter
		}
	}
	if f := cmd.Flags(); f.Lookup("volume") != nil {
		if f.Changed("volume") {
			cfg.Pressure.Volume = volume
		}
		if f.Changed("ndim") {
			cfg.Pressure.NDim = ndim
		}
	}

	return cfg, nil
}

func buildPotential(cfg *config.Config) (landscape.Potential, error) {
	switch cfg.Potential.Kind {
	case "gauss":
		return potentials.NewGaussian(cfg.Potential.Mean, cfg.Potential.Cov)
	case "sumgauss":
		return potentials.NewSumGaussian(cfg.Potential.BlockDim, cfg.Potential.Mean, cfg.Potential.Cov)
	case "harmonic":
		return potentials.NewHarmonic(cfg.Potential.Origin, cfg.Potential.K)
	default:
		return nil, fmt.Errorf("unknown potential: %s", cfg.Potential.Kind)
	}
}

func buildMinimizer(cfg *config.Config) (*optimize.FIRE, error) {
	pot, err := buildPotential(cfg)
	if err != nil {
		return nil, err
	}
	fcfg := optimize.DefaultConfig()
	fcfg.DtStart = cfg.Fire.DtStart
	fcfg.DtMax = cfg.Fire.DtMax
	fcfg.MaxStep = cfg.Fire.MaxStep
	fcfg.Tol = cfg.Fire.Tol
	if cfg.Fire.AlphaStart > 0 {
		fcfg.AlphaStart = cfg.Fire.AlphaStart
	}
	return optimize.NewFIRE(pot, cfg.InitCoords, fcfg)
}

func runMinimize(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	min, err := buildMinimizer(cfg)
	if err != nil {
		return err
	}

	trace := make([]optimize.Stats, 0, cfg.Fire.MaxIter)
	min.OnIteration = func(st optimize.Stats) { trace = append(trace, st) }

	fmt.Printf("minimizing %s (%d dof)...\n", cfg.Potential.Kind, cfg.NDOF())
	start := time.Now()

	if err := min.Run(cfg.Fire.MaxIter); err != nil {
		return err
	}

	elapsed := time.Since(start)

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(storage.RunMetadata{
		Potential:   cfg.Potential.Kind,
		NDOF:        cfg.NDOF(),
		DtStart:     cfg.Fire.DtStart,
		Tol:         cfg.Fire.Tol,
		Iterations:  min.Iter(),
		Converged:   min.Converged(),
		FinalEnergy: min.Energy(),
		RMSGrad:     min.RMSGrad(),
	}, trace)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("status: %s\n", min.Status())
	fmt.Printf("iterations: %d\n", min.Iter())
	fmt.Printf("energy: %.12f\n", min.Energy())
	fmt.Printf("rms gradient: %.3e\n", min.RMSGrad())

	x := min.X()
	shown := len(x)
	if shown > 8 {
		shown = 8
	}
	parts := make([]string, 0, shown)
	for _, v := range x[:shown] {
		parts = append(parts, fmt.Sprintf("%.6f", v))
	}
	suffix := ""
	if len(x) > shown {
		suffix = ", ..."
	}
	fmt.Printf("x: [%s%s]\n", strings.Join(parts, ", "), suffix)

	plotTrace(trace, fmt.Sprintf("energy vs iteration (%s)", cfg.Potential.Kind))
	return nil
}

func runPressure(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	pot, err := buildPotential(cfg)
	if err != nil {
		return err
	}

	p, t, err := observables.PressureTensor(pot, cfg.InitCoords, cfg.Pressure.Volume, cfg.Pressure.NDim)
	if err != nil {
		return err
	}

	fmt.Printf("pressure: %.12f\n", p)
	fmt.Println("tensor:")
	n := cfg.Pressure.NDim
	for a := 0; a < n; a++ {
		row := make([]string, n)
		for b := 0; b < n; b++ {
			row[b] = fmt.Sprintf("%12.6f", t.At(a, b))
		}
		fmt.Println("  " + strings.Join(row, " "))
	}
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPOTENTIAL\tDOF\tITERS\tCONVERGED\tENERGY\tRMS GRAD")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%t\t%.8f\t%.2e\n",
			r.ID, r.Potential, r.NDOF, r.Iterations, r.Converged, r.FinalEnergy, r.RMSGrad)
	}
	return w.Flush()
}

func runPlot(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	trace, err := st.LoadTrace(args[0])
	if err != nil {
		return err
	}
	if len(trace) < 2 {
		return fmt.Errorf("run %s has no trace to plot", args[0])
	}
	plotTrace(trace, "energy vs iteration")
	return nil
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	min, err := buildMinimizer(cfg)
	if err != nil {
		return err
	}
	return tui.Watch(min, cfg.Potential.Kind, cfg.Fire.MaxIter)
}

func plotTrace(trace []optimize.Stats, caption string) {
	if len(trace) < 2 {
		return
	}
	data := make([]float64, len(trace))
	for i, st := range trace {
		data[i] = st.Energy
	}
	graph := asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	)
	fmt.Println()
	fmt.Println(graph)
}
