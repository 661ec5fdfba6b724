package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/reaktor/internal/config"
	"github.com/san-kum/reaktor/internal/metrics"
	"github.com/san-kum/reaktor/internal/solver"
	"github.com/san-kum/reaktor/internal/storage"
	"github.com/san-kum/reaktor/internal/viz"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd assembles the command tree. Each command carries its own
// flag variables; pflag writes defaults into the bound variable at
// registration time, so sharing one across commands clobbers the
// earlier default.
func newRootCmd() *cobra.Command {
	var dataDir string

	rootCmd := &cobra.Command{
		Use:   "reaktor",
		Short: "reactor point-kinetics simulation lab",
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".reaktor", "data directory")

	rootCmd.AddCommand(
		newRunCmd(&dataDir),
		newListCmd(&dataDir),
		newPlotCmd(&dataDir),
		newExportCmd(&dataDir),
		newLiveCmd(),
		newPresetsCmd(),
		newSeriesCmd(),
	)
	return rootCmd
}

func loadScenario(configFile, preset string) (*config.Config, string, error) {
	if configFile != "" {
		cfg, err := config.Load(configFile)
		return cfg, "custom", err
	}
	cfg := config.Preset(preset)
	if cfg == nil {
		return nil, "", fmt.Errorf("unknown preset %q", preset)
	}
	return cfg, preset, nil
}

func newRunCmd(dataDir *string) *cobra.Command {
	var (
		configFile string
		preset     string
		tMax       float64
		numIters   int
		plotSeries string
		noSave     bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "run a simulation scenario",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, scenario, err := loadScenario(configFile, preset)
			if err != nil {
				return err
			}
			if tMax > 0 {
				cfg.TMax = tMax
			}
			if numIters > 0 {
				cfg.NumIters = numIters
			}

			problem, err := cfg.BuildProblem()
			if err != nil {
				return err
			}

			sol, err := solver.Solve(problem)
			if err != nil {
				return err
			}

			summary := metrics.Summarize(sol)
			fmt.Print(viz.RenderSummary(summary))

			if !noSave {
				store := storage.New(*dataDir)
				if err := store.Init(); err != nil {
					return err
				}
				runID, err := store.Save(scenario, cfg.Control.Rule, sol, summary)
				if err != nil {
					return err
				}
				fmt.Printf("\nsaved run %s\n", runID)
			}

			if plotSeries != "" {
				out, err := renderSeries(sol, plotSeries)
				if err != nil {
					return err
				}
				fmt.Println(out)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configFile, "config", "", "scenario file (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "steady", "preset scenario")
	cmd.Flags().Float64Var(&tMax, "time", 0, "override simulation end time [s]")
	cmd.Flags().IntVar(&numIters, "iters", 0, "override number of output samples")
	cmd.Flags().StringVar(&plotSeries, "plot", "", "plot a series after the run (e.g. power)")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "skip persisting the run")
	return cmd
}

func newListCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			runs, err := storage.New(*dataDir).List()
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Println("no runs stored")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSCENARIO\tRULE\tSPAN\tSAMPLES\tPEAK POWER")
			for _, r := range runs {
				fmt.Fprintf(w, "%s\t%s\t%s\t[%g, %g]\t%d\t%.5g\n",
					r.ID, r.Scenario, r.Rule, r.TStart, r.TMax, r.NumIters, r.Metrics["peak_power"])
			}
			return w.Flush()
		},
	}
}

func newPlotCmd(dataDir *string) *cobra.Command {
	var plotSeries string

	cmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sol, err := storage.New(*dataDir).Load(args[0])
			if err != nil {
				return err
			}
			out, err := renderSeries(sol, plotSeries)
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		},
	}

	cmd.Flags().StringVar(&plotSeries, "series", "power", "series name (see 'reaktor series'), or drum_worth")
	return cmd
}

// renderSeries plots a named time series, or the drum worth curve
// (reactivity against drum angle) for the pseudo-series "drum_worth".
func renderSeries(sol *solver.Solution, name string) (string, error) {
	if name == "drum_worth" {
		return viz.RenderDrumWorth(sol.DrumAngle(), sol.RhoConDrum()), nil
	}
	ys, err := sol.Series(name)
	if err != nil {
		return "", err
	}
	return viz.RenderSeries(sol.T(), ys, name), nil
}

func newExportCmd(dataDir *string) *cobra.Command {
	var outFile string

	cmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a stored run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store := storage.New(*dataDir)

			meta, err := store.Meta(args[0])
			if err != nil {
				return err
			}
			sol, err := store.Load(args[0])
			if err != nil {
				return err
			}

			out := os.Stdout
			if outFile != "" {
				f, err := os.Create(outFile)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}
			return storage.ExportJSON(out, meta, sol)
		},
	}

	cmd.Flags().StringVar(&outFile, "out", "", "output file (default stdout)")
	return cmd
}

func newLiveCmd() *cobra.Command {
	var (
		configFile string
		preset     string
		liveDt     float64
	)

	cmd := &cobra.Command{
		Use:   "live",
		Short: "run a scenario with live visualization",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadScenario(configFile, preset)
			if err != nil {
				return err
			}
			problem, err := cfg.BuildProblem()
			if err != nil {
				return err
			}
			return viz.RunLive(problem, liveDt)
		},
	}

	cmd.Flags().StringVar(&configFile, "config", "", "scenario file (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "steady", "preset scenario")
	cmd.Flags().Float64Var(&liveDt, "dt", 1e-4, "fixed step size for the live view [s]")
	return cmd
}

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "list preset scenarios",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.PresetNames() {
				fmt.Println(name)
			}
		},
	}
}

func newSeriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "series",
		Short: "list plottable series names",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range solver.SeriesNames() {
				fmt.Println(name)
			}
		},
	}
}
