package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/san-kum/folio/internal/automation"
	"github.com/san-kum/folio/internal/config"
	"github.com/san-kum/folio/internal/export"
	"github.com/san-kum/folio/internal/gui"
	"github.com/san-kum/folio/internal/projects"
	"github.com/san-kum/folio/internal/render"
	"github.com/san-kum/folio/internal/session"
	"github.com/san-kum/folio/internal/tui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const logFile = "logs/folio.log"

var (
	configFile   string
	projectsFile string
	schemeName   string
	seed         int64
	debug        bool
	hud          bool
	plot         bool
	fps          int
	trials       int
	outFile      string
	svgFile      string
	jsonFile     string
	csvFile      string
)

// main registers the commands and runs the desktop window when no
// subcommand is given.
func main() {
	rootCmd := &cobra.Command{
		Use:   "folio",
		Short: "interactive physics portfolio",
		RunE:  runGUI,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&projectsFile, "projects", "", "project catalog path (yaml)")
	rootCmd.PersistentFlags().StringVar(&schemeName, "scheme", "", "colour scheme name or index")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed (0 picks one from the clock)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "write logs to "+logFile)
	rootCmd.Flags().BoolVar(&hud, "hud", false, "show the debug overlay")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "desktop arena in a window",
		RunE:  runGUI,
	}
	guiCmd.Flags().BoolVar(&hud, "hud", false, "show the debug overlay")

	mobileCmd := &cobra.Command{
		Use:   "mobile",
		Short: "mobile arena in a phone-sized window",
		RunE:  runMobile,
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "desktop arena in the terminal",
		RunE:  runTUI,
	}

	scriptCmd := &cobra.Command{
		Use:   "script [scenario.yaml]",
		Short: "play a scripted scenario headlessly",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScript,
	}
	scriptCmd.Flags().BoolVar(&plot, "plot", false, "chart the run")
	scriptCmd.Flags().IntVar(&fps, "fps", automation.DefaultFPS, "tick rate")
	scriptCmd.Flags().IntVar(&trials, "trials", 0, "run this many seeded trials instead of one traced run")
	scriptCmd.Flags().StringVar(&svgFile, "svg", "", "save the final frame as SVG")
	scriptCmd.Flags().StringVar(&jsonFile, "json", "", "save the trace as JSON")
	scriptCmd.Flags().StringVar(&csvFile, "csv", "", "save the per-tick samples as CSV")

	schemesCmd := &cobra.Command{
		Use:   "schemes",
		Short: "list colour schemes",
		RunE:  listSchemes,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration",
		RunE:  printConfig,
	}
	configCmd.Flags().StringVarP(&outFile, "out", "o", "", "write to a file instead of stdout")

	rootCmd.AddCommand(guiCmd, mobileCmd, tuiCmd, scriptCmd, schemesCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setupLogging routes the log package to logFile when debugging and
// silences it otherwise.
func setupLogging() (func(), error) {
	if !debug {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	log.Printf("folio: started, pid %d", os.Getpid())
	return func() { f.Close() }, nil
}

// setup loads the configuration, catalog and scheme the flags describe.
func setup(cmd *cobra.Command) (*config.Config, *projects.Catalog, config.Scheme, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		var err error
		if cfg, err = config.Load(configFile); err != nil {
			return nil, nil, config.Scheme{}, err
		}
	}
	if cmd.Flags().Changed("scheme") {
		cfg.Scheme = schemeName
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	scheme, err := config.LookupScheme(cfg.Scheme)
	if err != nil {
		return nil, nil, config.Scheme{}, err
	}

	catalog := projects.Default()
	if projectsFile != "" {
		if catalog, err = projects.Load(projectsFile); err != nil {
			return nil, nil, config.Scheme{}, err
		}
	}
	log.Printf("folio: scheme %s, seed %d, %d projects", scheme.Name, cfg.Seed, catalog.Len())
	return cfg, catalog, scheme, nil
}

func runGUI(cmd *cobra.Command, args []string) error {
	closeLog, err := setupLogging()
	if err != nil {
		return err
	}
	defer closeLog()
	cfg, catalog, scheme, err := setup(cmd)
	if err != nil {
		return err
	}
	gui.Run(cfg, catalog, scheme, hud)
	return nil
}

func runMobile(cmd *cobra.Command, args []string) error {
	closeLog, err := setupLogging()
	if err != nil {
		return err
	}
	defer closeLog()
	cfg, _, scheme, err := setup(cmd)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	gui.RunMobile(ctx, cfg, scheme)
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	closeLog, err := setupLogging()
	if err != nil {
		return err
	}
	defer closeLog()
	cfg, catalog, scheme, err := setup(cmd)
	if err != nil {
		return err
	}
	return tui.Run(cfg, catalog, scheme)
}

func runScript(cmd *cobra.Command, args []string) error {
	closeLog, err := setupLogging()
	if err != nil {
		return err
	}
	defer closeLog()
	cfg, catalog, scheme, err := setup(cmd)
	if err != nil {
		return err
	}

	sc := automation.Demo()
	if len(args) == 1 {
		if sc, err = automation.LoadScenario(args[0]); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if trials > 0 {
		results, err := automation.RunTrials(ctx, sc, cfg, catalog, trials, cfg.Seed, fps)
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "SEED\tROUNDS\tLETTERS\tPEAK SPEED\tESCAPED\tPANEL")
		for _, r := range results {
			fmt.Fprintf(w, "%d\t%d\t%d\t%.2f\t%v\t%s\n", r.Seed, r.Rounds, r.PeakLetters, r.PeakSpeed, r.Escaped, r.Final)
		}
		w.Flush()
		kept, escaped := automation.TrialStats(results)
		fmt.Printf("\n%d contained, %d escaped\n", kept, escaped)
		return nil
	}

	s := session.New(cfg, catalog, nil, sc.Window.W, sc.Window.H)
	trace, err := automation.Run(ctx, sc, s, fps)
	if err != nil {
		return err
	}
	fmt.Print(trace.Summary())
	if plot {
		fmt.Println()
		fmt.Print(automation.Plot(trace, 80, 12))
	}
	if svgFile != "" {
		l := s.Layout()
		out := export.NewSVG(l.WindowW, l.WindowH)
		render.Paint(out, s.Frame(s.Now()), scheme)
		if err := out.WriteFile(svgFile); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", svgFile)
	}
	if jsonFile != "" {
		if err := writeTrace(jsonFile, func(w io.Writer) error {
			return export.TraceJSON(w, trace, cfg.Seed, fps)
		}); err != nil {
			return err
		}
	}
	if csvFile != "" {
		if err := writeTrace(csvFile, func(w io.Writer) error {
			return export.TraceCSV(w, trace)
		}); err != nil {
			return err
		}
	}
	return nil
}

func writeTrace(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func swatch(c config.Color) string {
	hex := fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("   ") + " " + hex
}

func listSchemes(cmd *cobra.Command, args []string) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("#", "NAME", "LEFT PANEL", "HIGHLIGHT", "LETTER", "MOBILE").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	for i, s := range config.Schemes {
		t.Row(fmt.Sprint(i), s.Name, swatch(s.LeftPanel), swatch(s.HighlightBall), swatch(s.DefaultBall), swatch(s.MobileBackground))
	}
	fmt.Println(t.String())
	fmt.Printf("select with --scheme <%s> or an index\n", strings.Join(config.SchemeNames(), "|"))
	return nil
}

func printConfig(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()
	if configFile != "" {
		var err error
		if cfg, err = config.Load(configFile); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("scheme") {
		cfg.Scheme = schemeName
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if outFile != "" {
		if err := config.Save(outFile, cfg); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", outFile)
		return nil
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	fmt.Print(string(data))
	return nil
}
