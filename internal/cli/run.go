package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/rpgo/taxdrag/internal/calculation"
	"github.com/rpgo/taxdrag/internal/config"
	"github.com/rpgo/taxdrag/internal/domain"
	"github.com/rpgo/taxdrag/internal/logging"
	"github.com/rpgo/taxdrag/internal/output"
)

type runOptions struct {
	configPath   string
	interactive  bool
	principal    string
	contribution string
	rate         string
	tax          string
	years        int
	outputPath   string
	formats      []string
}

func runCmd(root *rootOptions) *cobra.Command {
	opts := &runOptions{}

	c := &cobra.Command{
		Use:   "run",
		Short: "Run a projection and export the yearly CSV",
		Example: `  taxdrag run --principal '$10,000.00' --contribution 500 --rate 7.5 --tax 24 --years 30
  taxdrag run --config scenario.yaml --format json
  taxdrag run --interactive`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeRun(cmd, root, opts)
		},
	}

	c.Flags().StringVarP(&opts.configPath, "config", "c", "", "YAML scenario file")
	c.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "prompt for every input on stdin")
	c.Flags().StringVar(&opts.principal, "principal", "0", "starting principal, e.g. $10,000.00")
	c.Flags().StringVar(&opts.contribution, "contribution", "0", "annual contribution, e.g. 500")
	c.Flags().StringVar(&opts.rate, "rate", "0", "annual rate of return in percent, e.g. 7.5")
	c.Flags().StringVar(&opts.tax, "tax", "0", "tax rate on gains in percent, e.g. 24")
	c.Flags().IntVar(&opts.years, "years", 10, fmt.Sprintf("number of years (1-%d)", calculation.MaxYears))
	c.Flags().StringVarP(&opts.outputPath, "output", "o", "", "CSV output path (default "+config.DefaultCSVPath+")")
	c.Flags().StringSliceVarP(&opts.formats, "format", "f", nil, "additional formats written next to the CSV (see 'taxdrag formats')")

	c.MarkFlagsMutuallyExclusive("config", "interactive")
	return c
}

func executeRun(cmd *cobra.Command, root *rootOptions, opts *runOptions) error {
	out := cmd.OutOrStdout()
	parser := config.NewInputParser()

	cfg, err := resolveConfiguration(cmd, parser, opts, out)
	if err != nil {
		return err
	}

	in, err := parser.ParseScenario(cfg.Scenario)
	if err != nil {
		return err
	}

	csvPath := config.CSVPath(cfg)
	if opts.outputPath != "" {
		csvPath = opts.outputPath
	}
	extra, err := extraFormatters(cfg.Output.Formats, opts.formats)
	if err != nil {
		return err
	}
	extraPaths, err := output.ReportPaths(csvPath, extra)
	if err != nil {
		return err
	}

	fmt.Fprintln(out)
	out.Write(output.FormatInputVerification(in))

	logger := logging.New(root.debug)
	defer func() { _ = logger.Sync() }()

	engine := calculation.NewEngine()
	engine.SetLogger(logger)

	result, err := engine.Run(cmd.Context(), in)
	if err != nil {
		return err
	}

	written, err := output.WriteFormatted(output.CSVExporter{}, result, csvPath)
	if err != nil {
		return fmt.Errorf("simulation completed but the report could not be saved: %w", err)
	}
	paths := []string{written}
	for i, f := range extra {
		p, err := output.GenerateReport(result, f.Name(), extraPaths[i])
		if err != nil {
			return fmt.Errorf("simulation completed but the %s report could not be saved: %w", f.Name(), err)
		}
		paths = append(paths, p)
	}

	summary, err := output.ConsoleFormatter{}.Format(result)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	out.Write(summary)
	fmt.Fprintln(out)
	for _, p := range paths {
		fmt.Fprintf(out, "Results exported to %s\n", p)
	}
	return nil
}

// resolveConfiguration builds the configuration from a file, interactive
// prompts, or flags. With a file, explicitly set flags override its values.
func resolveConfiguration(cmd *cobra.Command, parser *config.InputParser, opts *runOptions, out io.Writer) (*domain.Configuration, error) {
	switch {
	case opts.interactive:
		fmt.Fprint(out, output.Banner)
		fmt.Fprintln(out)
		sc, err := config.NewPrompter(cmd.InOrStdin(), out).ReadScenario()
		if err != nil {
			return nil, err
		}
		return &domain.Configuration{Scenario: sc}, nil

	case opts.configPath != "":
		cfg, err := parser.LoadFromFile(opts.configPath)
		if err != nil {
			return nil, err
		}
		applyFlagOverrides(cmd, opts, &cfg.Scenario)
		return cfg, nil

	default:
		return &domain.Configuration{Scenario: domain.ScenarioConfig{
			Principal:          opts.principal,
			AnnualContribution: opts.contribution,
			GrowthRatePercent:  opts.rate,
			TaxRatePercent:     opts.tax,
			Years:              opts.years,
		}}, nil
	}
}

func applyFlagOverrides(cmd *cobra.Command, opts *runOptions, sc *domain.ScenarioConfig) {
	flags := cmd.Flags()
	if flags.Changed("principal") {
		sc.Principal = opts.principal
	}
	if flags.Changed("contribution") {
		sc.AnnualContribution = opts.contribution
	}
	if flags.Changed("rate") {
		sc.GrowthRatePercent = opts.rate
	}
	if flags.Changed("tax") {
		sc.TaxRatePercent = opts.tax
	}
	if flags.Changed("years") {
		sc.Years = opts.years
	}
}

// extraFormatters resolves the requested formats, skipping csv which is always
// written. Flag values replace the configured list.
func extraFormatters(configured, requested []string) ([]output.Formatter, error) {
	names := configured
	if len(requested) > 0 {
		names = requested
	}
	var formatters []output.Formatter
	seen := map[string]bool{}
	for _, name := range names {
		f, err := output.LookupFormatter(name)
		if err != nil {
			return nil, err
		}
		if f.Name() == "csv" || seen[f.Name()] {
			continue
		}
		seen[f.Name()] = true
		formatters = append(formatters, f)
	}
	return formatters, nil
}
