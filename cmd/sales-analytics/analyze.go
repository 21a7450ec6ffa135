package main

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"sales-analytics/internal/config"
	"sales-analytics/internal/domain"
	"sales-analytics/internal/gateway"
	"sales-analytics/internal/logger"
	"sales-analytics/internal/usecase"
)

type analyzeOptions struct {
	input          string
	region         string
	minAmount      float64
	maxAmount      float64
	topN           int
	threshold      int
	apiURL         string
	skipAPI        bool
	enrichedOutput string
	reportOutput   string
	xlsxOutput     string
	printJSON      bool
}

func newAnalyzeCmd(global *globalOptions) *cobra.Command {
	opts := &analyzeOptions{}

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run the analytics pipeline and write the report",
		Example: `  sales-analytics analyze --input sales_data.txt
  sales-analytics analyze --region North --min-amount 1000 --xlsx output/report.xlsx
  sales-analytics analyze --skip-api --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := global.loadConfig()
			if err != nil {
				return err
			}
			opts.apply(cmd, cfg)
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid options: %w", err)
			}
			return runAnalyze(cmd, cfg, global.verbose, opts.printJSON)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.input, "input", "i", "", "Path to the pipe-delimited sales file")
	f.StringVar(&opts.region, "region", "", "Keep only transactions from this region (exact match)")
	f.Float64Var(&opts.minAmount, "min-amount", 0, "Drop transactions whose amount is below this value")
	f.Float64Var(&opts.maxAmount, "max-amount", 0, "Drop transactions whose amount is above this value")
	f.IntVar(&opts.topN, "top", 0, "Number of top-selling products to report")
	f.IntVar(&opts.threshold, "threshold", 0, "Quantity below which a product is a low performer")
	f.StringVar(&opts.apiURL, "api-url", "", "Product catalog URL")
	f.BoolVar(&opts.skipAPI, "skip-api", false, "Do not call the product catalog")
	f.StringVar(&opts.enrichedOutput, "enriched-output", "", "Where to write the enriched transactions")
	f.StringVar(&opts.reportOutput, "report-output", "", "Where to write the text report")
	f.StringVar(&opts.xlsxOutput, "xlsx", "", "Also export the analytics to this XLSX workbook")
	f.BoolVar(&opts.printJSON, "json", false, "Print the report as JSON to stdout")
	return cmd
}

// apply overrides configuration values with the flags the user actually set.
func (o *analyzeOptions) apply(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed("input") {
		cfg.InputFile = o.input
	}
	if f.Changed("region") {
		cfg.Filters.Region = o.region
	}
	if f.Changed("min-amount") {
		v := o.minAmount
		cfg.Filters.MinAmount = &v
	}
	if f.Changed("max-amount") {
		v := o.maxAmount
		cfg.Filters.MaxAmount = &v
	}
	if f.Changed("top") {
		topN := o.topN
		cfg.Analysis.TopN = &topN
	}
	if f.Changed("threshold") {
		threshold := o.threshold
		cfg.Analysis.LowThreshold = &threshold
	}
	if f.Changed("api-url") {
		cfg.ProductAPI.BaseURL = o.apiURL
	}
	if f.Changed("skip-api") {
		cfg.ProductAPI.Disabled = o.skipAPI
	}
	if f.Changed("enriched-output") {
		cfg.EnrichedOutputFile = o.enrichedOutput
	}
	if f.Changed("report-output") {
		cfg.ReportOutputFile = o.reportOutput
	}
	if f.Changed("xlsx") {
		cfg.XLSXOutputFile = o.xlsxOutput
	}
}

func runAnalyze(cmd *cobra.Command, cfg *config.Config, verbose, printJSON bool) error {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	if verbose {
		level = zerolog.DebugLevel
	}
	log := logger.New(level)
	ctx := logger.WithContext(cmd.Context(), log)

	// --- Dependency Injection (Wiring the application) ---
	repo := gateway.NewSalesFileRepository()
	var catalog usecase.ProductCatalog
	if !cfg.ProductAPI.Disabled {
		catalog = gateway.NewProductAPIClient(cfg.ProductAPI.BaseURL, cfg.ProductAPI.Timeout)
	}
	analytics := usecase.NewSalesAnalyticsUseCase(repo, catalog)

	// --- Execute the Usecase ---
	report, err := analytics.Analyze(ctx, usecase.AnalyzeRequest{
		InputPath:          cfg.InputFile,
		EnrichedOutputPath: cfg.EnrichedOutputFile,
		Filter: domain.FilterOptions{
			Region:    cfg.Filters.Region,
			MinAmount: cfg.Filters.MinAmount,
			MaxAmount: cfg.Filters.MaxAmount,
		},
		TopN:           cfg.Analysis.TopN,
		LowThreshold:   cfg.Analysis.LowThreshold,
		SkipEnrichment: cfg.ProductAPI.Disabled,
	})
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	// --- Present the Output ---
	if err := gateway.NewTextReportWriter().WriteFile(ctx, cfg.ReportOutputFile, report); err != nil {
		return err
	}
	log.Info().Str("path", cfg.ReportOutputFile).Msg("wrote text report")

	if cfg.XLSXOutputFile != "" {
		if err := gateway.NewXLSXReportWriter().WriteFile(ctx, cfg.XLSXOutputFile, report); err != nil {
			return err
		}
		log.Info().Str("path", cfg.XLSXOutputFile).Msg("wrote workbook")
	}

	if printJSON {
		output, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to generate JSON report: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(output))
	}
	return nil
}
