package main

import (
	"bufio"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"
)

func main() {
	// Custom usage message
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Charity Cost-Effectiveness Forecast

Estimates the value of a grant to six charity programs and expresses each as a
multiple of the benchmark: giving the same money as unconditional cash
transfers. Mortality programs (nets, SMC, vitamin A, vaccination) convert
deaths averted into value via moral weights; cash transfers and deworming
derive value from consumption and income gains.

MODES:

  CALCULATION (default)
    Computes every charity's cost-effectiveness at its default location and
    prints a comparison table. Use -charity for one charity's full breakdown.

  MONTE CARLO (-montecarlo flag)
    Samples uncertain parameters per charity and reports the distribution of
    the final multiple (mean, median, percentiles). Use -seed for
    reproducible runs.

  SENSITIVITY (-sensitivity flag)
    Sweeps moral-weight parameters across fixed ranges and shows how every
    charity's best multiple responds. Generates an HTML report with -html.

Usage:
  %s [options]

Options:
`, os.Args[0])
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  %s                           Interactive mode selector
  %s -config my.yaml           Use custom configuration file
  %s -ui                       Embedded browser mode (webview window)
  %s -web                      Web server mode (opens external browser)
  %s -web -addr :8080          Web server on specific port

  %s -all                      Compare all six charities (console)
  %s -charity nets             Full breakdown for one charity
  %s -charity smc -location chad -grant 500000
  %s -montecarlo -seed 42      Reproducible uncertainty simulation
  %s -sensitivity -html        Sweep report in the browser
  %s -all -pdf                 PDF report of the comparison
  %s -locations                List available locations per charity

Configuration:
  Edit config.yaml to customize the grant, moral weights, and simulation
  settings. Weight presets: default, equal_lives, higher_child_value,
  lower_discount.
`, os.Args[0], os.Args[0], os.Args[0], os.Args[0], os.Args[0], os.Args[0],
			os.Args[0], os.Args[0], os.Args[0], os.Args[0], os.Args[0], os.Args[0])
	}

	// Command line flags
	configFile := flag.String("config", "config.yaml", "Path to YAML configuration file")
	charityID := flag.String("charity", "", "Charity to evaluate (nets, smc, vitamin_a, vaccination, cash_transfer, deworming)")
	locationID := flag.String("location", "", "Location ID (see -locations; default is the charity's first location)")
	grantSize := flag.Float64("grant", 0, "Grant size in USD (overrides config)")
	presetID := flag.String("preset", "", "Moral-weight preset (default, equal_lives, higher_child_value, lower_discount)")
	runAll := flag.Bool("all", false, "Compare all six charities")
	runMonteCarlo := flag.Bool("montecarlo", false, "Run Monte Carlo uncertainty simulation")
	trials := flag.Int("trials", 0, "Monte Carlo trials (overrides config)")
	seed := flag.Int64("seed", 0, "RNG seed for reproducible Monte Carlo runs (0 = from the clock)")
	runSensitivity := flag.Bool("sensitivity", false, "Run moral-weight sensitivity sweeps")
	sweepParamID := flag.String("sweep-param", "", "Sweep a single parameter (see -sensitivity; default sweeps all)")
	generateHTML := flag.Bool("html", false, "Generate an HTML sensitivity report and open it")
	generatePDF := flag.Bool("pdf", false, "Generate a PDF report of the comparison")
	listLocations := flag.Bool("locations", false, "List available locations per charity and exit")
	consoleMode := flag.Bool("console", false, "Use console interface instead of GUI (default is GUI)")
	webMode := flag.Bool("web", false, "Start web server mode (opens external browser)")
	uiMode := flag.Bool("ui", false, "Start embedded browser mode (webview window)")
	webAddr := flag.String("addr", "localhost:0", "Web server address (for -web mode, use :0 for auto port)")
	flag.Parse()

	if *listLocations {
		PrintLocationsList()
		return
	}

	// Embedded browser mode
	if *uiMode {
		err := runEmbeddedUI(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Embedded UI error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Web server mode (external browser)
	if *webMode {
		config, err := loadConfigOrDefault(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		server := NewWebServer(config, *webAddr)
		if err := server.Start(); err != nil {
			fmt.Fprintf(os.Stderr, "Web server error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Determine if we should run in console mode:
	// - Explicit -console flag, OR
	// - Any output/mode flags set (for automation/scripting)
	useConsole := *consoleMode || *runAll || *runMonteCarlo || *runSensitivity ||
		*charityID != "" || *generateHTML || *generatePDF

	if useConsole {
		runConsoleMode(*configFile, consoleOptions{
			charityID:      *charityID,
			locationID:     *locationID,
			grantSize:      *grantSize,
			presetID:       *presetID,
			runAll:         *runAll,
			runMonteCarlo:  *runMonteCarlo,
			trials:         *trials,
			seed:           *seed,
			runSensitivity: *runSensitivity,
			sweepParamID:   *sweepParamID,
			generateHTML:   *generateHTML,
			generatePDF:    *generatePDF,
		})
		return
	}

	// Default: GUI mode
	err := runGUI(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "GUI error: %v\n", err)
		// Fall back to console mode if GUI fails
		fmt.Println("Falling back to console mode...")
		runConsoleMode(*configFile, consoleOptions{})
	}
}

// consoleOptions bundles the console-mode flags
type consoleOptions struct {
	charityID      string
	locationID     string
	grantSize      float64
	presetID       string
	runAll         bool
	runMonteCarlo  bool
	trials         int
	seed           int64
	runSensitivity bool
	sweepParamID   string
	generateHTML   bool
	generatePDF    bool
}

// loadConfigOrDefault loads the config file, falling back to the embedded
// defaults when the file does not exist.
func loadConfigOrDefault(configFile string) (*Config, error) {
	config, err := LoadConfig(configFile)
	if err == nil {
		return config, nil
	}
	if os.IsNotExist(err) {
		return LoadDefaultConfig()
	}
	return nil, err
}

// runConsoleMode runs the application in console/terminal mode
func runConsoleMode(configFile string, opts consoleOptions) {
	config, err := loadConfigOrDefault(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Flag overrides
	if opts.grantSize > 0 {
		config.Grant.Size = opts.grantSize
	}
	if opts.presetID != "" {
		config.Preset = opts.presetID
	}
	if opts.trials > 0 {
		config.MonteCarlo.Trials = opts.trials
	}
	if opts.seed != 0 {
		config.MonteCarlo.Seed = opts.seed
	}
	if opts.charityID == "" {
		opts.charityID = config.Grant.Charity
	}
	if opts.locationID == "" {
		opts.locationID = config.Grant.Location
	}

	// If no specific mode flags set, ask user which mode they want
	if !opts.runAll && !opts.runMonteCarlo && !opts.runSensitivity &&
		opts.charityID == "" && !opts.generateHTML && !opts.generatePDF {
		switch promptForMode(config) {
		case "all":
			opts.runAll = true
		case "all-pdf":
			opts.runAll = true
			opts.generatePDF = true
		case "montecarlo":
			opts.runMonteCarlo = true
		case "sensitivity":
			opts.runSensitivity = true
		case "sensitivity-html":
			opts.runSensitivity = true
			opts.generateHTML = true
		case "quit":
			fmt.Println("Goodbye!")
			return
		}
	}

	if opts.presetID != "" && GetWeightPresetByID(opts.presetID) == nil {
		fmt.Fprintf(os.Stderr, "Error: unknown weight preset %q\n", opts.presetID)
		os.Exit(1)
	}

	PrintHeader(config)
	weights := config.GetMoralWeights()
	grant := config.GetGrantSize()

	// Single-charity breakdown
	if opts.charityID != "" && !opts.runMonteCarlo && !opts.runSensitivity {
		inputs, location, ok := resolveConsoleInputs(opts.charityID, opts.locationID, grant, weights)
		if !ok {
			os.Exit(1)
		}
		PrintCharityBreakdown(inputs)
		if opts.generatePDF {
			writeComparisonPDF(config, []comparisonRow{{
				Charity:  inputs.Charity(),
				Location: location,
				Results:  CalculateCharity(inputs),
			}})
		}
		return
	}

	// Monte Carlo mode
	if opts.runMonteCarlo {
		runMonteCarloMode(config, opts, weights, grant)
		return
	}

	// Sensitivity mode
	if opts.runSensitivity {
		runSensitivityMode(config, opts, weights, grant)
		return
	}

	// Default: compare all charities at their default locations
	rows := buildComparisonRows(grant, weights)
	PrintAllComparison(rows)
	if opts.generatePDF {
		writeComparisonPDF(config, rows)
	}
}

// resolveConsoleInputs parses the charity/location IDs and applies weights,
// printing errors for the console user.
func resolveConsoleInputs(charityID, locationID string, grant float64, w MoralWeights) (CharityInputs, string, bool) {
	charity, ok := ParseCharityType(charityID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown charity %q (try -locations for the list)\n", charityID)
		return nil, "", false
	}
	if locationID == "" {
		locationID = DefaultLocationID(charity)
	}
	inputs, ok := InputsForLocation(charity, locationID, grant)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown location %q for %s (try -locations)\n", locationID, charity.String())
		return nil, "", false
	}
	return ApplyMoralWeights(inputs, w), locationID, true
}

// buildComparisonRows evaluates every charity at its default location
func buildComparisonRows(grant float64, w MoralWeights) []comparisonRow {
	var rows []comparisonRow
	for _, charity := range AllCharityTypes {
		location := DefaultLocationID(charity)
		inputs, ok := InputsForLocation(charity, location, grant)
		if !ok {
			continue
		}
		rows = append(rows, comparisonRow{
			Charity:  charity,
			Location: location,
			Results:  CalculateCharity(ApplyMoralWeights(inputs, w)),
		})
	}
	return rows
}

// runMonteCarloMode runs the uncertainty simulation for one or all charities
func runMonteCarloMode(config *Config, opts consoleOptions, weights MoralWeights, grant float64) {
	trials := config.GetTrials()
	seed := config.MonteCarlo.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	fmt.Printf("Monte Carlo: %d trials per charity (seed %d)\n", trials, seed)

	if opts.charityID != "" {
		inputs, location, ok := resolveConsoleInputs(opts.charityID, opts.locationID, grant, weights)
		if !ok {
			os.Exit(1)
		}
		PrintMonteCarloSummary(inputs.Charity(), location, RunCharityMonteCarlo(rng, inputs, trials))
		fmt.Println()
		return
	}

	for _, charity := range AllCharityTypes {
		location := DefaultLocationID(charity)
		inputs, ok := InputsForLocation(charity, location, grant)
		if !ok {
			continue
		}
		weighted := ApplyMoralWeights(inputs, weights)
		PrintMonteCarloSummary(charity, location, RunCharityMonteCarlo(rng, weighted, trials))
	}
	fmt.Println()
}

// runSensitivityMode runs the moral-weight sweeps
func runSensitivityMode(config *Config, opts consoleOptions, weights MoralWeights, grant float64) {
	points := config.GetSweepPoints()

	params := AllSweepParams
	paramID := opts.sweepParamID
	if paramID == "" {
		paramID = config.Sensitivity.Parameter
	}
	if paramID != "" {
		param, ok := ParseSweepParam(paramID)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown sweep parameter %q\n", paramID)
			os.Exit(1)
		}
		params = []SweepParam{param}
	}

	fmt.Printf("Sensitivity sweeps: %d points per parameter\n", points)

	sweeps := make(map[SweepParam][]SweepPoint, len(params))
	for _, param := range params {
		sweep := RunSensitivitySweep(weights, param, grant, points)
		sweeps[param] = sweep
		PrintSweepTable(param, sweep)
	}
	fmt.Println()

	if opts.generateHTML {
		reportPath, err := GenerateSensitivityReport(config, params, sweeps)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error generating sensitivity report: %v\n", err)
			return
		}
		fmt.Printf("Generated report: %s\n", reportPath)
		openBrowser(reportPath)
	}
}

// writeComparisonPDF generates the PDF report and reports the path
func writeComparisonPDF(config *Config, rows []comparisonRow) {
	timestamp := time.Now().Format("2006-01-02_1504")
	path, err := GeneratePDFReport(config, rows, timestamp)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating PDF report: %v\n", err)
		return
	}
	fmt.Printf("Generated PDF report: %s\n", path)
}

// promptForMode asks the user which mode they want to run
func promptForMode(config *Config) string {
	fmt.Println()
	fmt.Println("╔══════════════════════════════════════════════════════════════════════════════╗")
	fmt.Println("║              CHARITY COST-EFFECTIVENESS FORECAST                             ║")
	fmt.Println("╚══════════════════════════════════════════════════════════════════════════════╝")
	fmt.Println()
	fmt.Println("Select mode:")
	fmt.Println()
	fmt.Printf("  Comparison (grant %s across all six charities):\n", FormatMoney(config.GetGrantSize()))
	fmt.Println("    1) Console output      - Comparison table with best-value highlight")
	fmt.Println("    2) PDF report          - Comparison as a PDF document")
	fmt.Println()
	fmt.Println("  Uncertainty:")
	fmt.Println("    3) Monte Carlo         - Distribution of each charity's multiple")
	fmt.Println()
	fmt.Println("  Sensitivity (moral-weight sweeps):")
	fmt.Println("    4) Console output      - Sweep tables for every parameter")
	fmt.Println("    5) HTML report         - Interactive browser report")
	fmt.Println()
	fmt.Println("    q) Quit")
	fmt.Println()
	fmt.Print("Enter choice (1-5 or q): ")

	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return "all"
	}

	input = strings.TrimSpace(strings.ToLower(input))
	switch input {
	case "1":
		return "all"
	case "2":
		return "all-pdf"
	case "3":
		return "montecarlo"
	case "4":
		return "sensitivity"
	case "5":
		return "sensitivity-html"
	case "q", "quit", "exit":
		return "quit"
	default:
		fmt.Println("Invalid choice, running comparison.")
		return "all"
	}
}

// openBrowser opens a file in the default browser
func openBrowser(filename string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "linux":
		cmd = exec.Command("xdg-open", filename)
	case "darwin":
		cmd = exec.Command("open", filename)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", filename)
	default:
		fmt.Fprintf(os.Stderr, "Cannot open browser on %s\n", runtime.GOOS)
		return
	}

	err := cmd.Start()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening browser: %v\n", err)
	}
}
