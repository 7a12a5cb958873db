package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/crystalsim/internal/config"
	"github.com/san-kum/crystalsim/internal/cts"
	"github.com/san-kum/crystalsim/internal/rules"
	"github.com/san-kum/crystalsim/internal/scenario"
	"github.com/san-kum/crystalsim/internal/storage"
	"github.com/san-kum/crystalsim/internal/tui"
	"github.com/san-kum/crystalsim/internal/viz"
)

var (
	dataDir    string
	rows       int
	cols       int
	duration   float64
	interval   float64
	seed       int64
	ruleSet    string
	openEdges  bool
	configFile string
	preset     string
	// wall-clock seconds between progress reports during run
	reportEvery float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "crystalsim",
		Short: "continuous-time stochastic crystallization lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".crystalsim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a crystallization simulation",
		RunE:  runSimulation,
	}
	addScenarioFlags(runCmd)
	runCmd.Flags().Float64Var(&reportEvery, "report", 10.0, "seconds between progress reports")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run with a live terminal monitor",
		RunE:  runLive,
	}
	addScenarioFlags(liveCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	profileCmd := &cobra.Command{
		Use:   "profile [run_id]",
		Short: "plot the vertical concentration profile of a run",
		Args:  cobra.ExactArgs(1),
		RunE:  profileRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("presets:")
			for _, p := range config.ListPresets() {
				fmt.Printf("  %s\n", p)
			}
			fmt.Println("rule sets:")
			for _, r := range rules.List() {
				fmt.Printf("  %s\n", r)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, listCmd, profileCmd, exportJSONCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addScenarioFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&rows, "rows", config.DefaultRows, "grid rows")
	cmd.Flags().IntVar(&cols, "cols", config.DefaultCols, "grid columns")
	cmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "run duration (sim time)")
	cmd.Flags().Float64Var(&interval, "interval", config.DefaultInterval, "reporting interval (sim time)")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	cmd.Flags().StringVar(&ruleSet, "rules", "isotropic", "rule set")
	cmd.Flags().BoolVar(&openEdges, "open-edges", false, "leave grid edges open instead of walled")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// resolveConfig layers preset, config file and explicit flags, in that
// order of increasing precedence.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("rows") {
		cfg.Rows = rows
	}
	if cmd.Flags().Changed("cols") {
		cfg.Cols = cols
	}
	if cmd.Flags().Changed("time") {
		cfg.Duration = duration
	}
	if cmd.Flags().Changed("interval") {
		cfg.Interval = interval
	}
	if cmd.Flags().Changed("rules") {
		cfg.RuleSet = ruleSet
	}
	if cmd.Flags().Changed("open-edges") {
		cfg.OpenEdges = openEdges
	}
	if cfg.Seed == 0 || cmd.Flags().Changed("seed") {
		cfg.Seed = seed
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

	sc, err := scenario.New(cfg.Scenario())
	if err != nil {
		return err
	}

	fmt.Printf("running %s crystallization on %dx%d grid (seed %d)...\n",
		cfg.RuleSet, cfg.Rows, cfg.Cols, cfg.Seed)
	start := time.Now()
	nextReport := start.Add(time.Duration(reportEvery * float64(time.Second)))

	err = sc.RunWithCallback(context.Background(), func(t float64, snapshot []cts.State) bool {
		if time.Now().After(nextReport) {
			pct := t / cfg.Duration
			fmt.Printf("%s t=%.2f %s %.0f%%\n",
				viz.StatusRunning.Render("sim"),
				t,
				viz.ProgressBar(pct, 30),
				100*pct)
			nextReport = time.Now().Add(time.Duration(reportEvery * float64(time.Second)))
		}
		return true
	})
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	res := sc.Result()
	runID, err := st.Save(cfg.Rows, cfg.Cols, cfg.RuleSet, cfg.Seed, res)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("events: %d\n", res.Events)
	fmt.Println("\ncensus:")
	for i, name := range rules.States() {
		fmt.Printf("  %s: %d\n", name, res.Census[i])
	}
	if len(res.ByLabel) > 0 {
		fmt.Println("\ntransitions:")
		for label, n := range res.ByLabel {
			fmt.Printf("  %s: %d\n", label, n)
		}
	}

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	sc, err := scenario.New(cfg.Scenario())
	if err != nil {
		return err
	}

	return tui.Run(sc, cfg.Duration, cfg.Interval)
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

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tGRID\tRULES\tDURATION\tEVENTS\tWHEN")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%dx%d\t%s\t%.1f\t%d\t%s\n",
			r.ID, r.Rows, r.Cols, r.RuleSet, r.Duration, r.Events,
			r.Timestamp.Format("2006-01-02 15:04"))
	}
	return w.Flush()
}

func profileRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	if len(meta.Profile) < 2 {
		return fmt.Errorf("run %s has no concentration profile", args[0])
	}

	fmt.Printf("vertical concentration profile (%s, bottom row left)\n\n", meta.ID)
	graph := asciigraph.Plot(meta.Profile,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption("mean state per row"),
	)
	fmt.Println(graph)

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}
