package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"sales-analytics/internal/domain"
	"sales-analytics/internal/logger"
)

// AnalyzeRequest configures a single pipeline run.
type AnalyzeRequest struct {
	InputPath          string
	EnrichedOutputPath string // empty skips writing the enriched file
	Filter             domain.FilterOptions
	TopN               *int // nil selects DefaultTopN
	LowThreshold       *int // nil selects DefaultLowThreshold
	SkipEnrichment     bool
}

// SalesAnalyticsUseCase orchestrates reading, validating, analyzing and enriching sales data.
type SalesAnalyticsUseCase struct {
	repo    SalesRepository
	catalog ProductCatalog
	now     func() time.Time
	newID   func() string
}

// NewSalesAnalyticsUseCase creates a new instance of the usecase.
// catalog may be nil, in which case no transaction is enriched.
func NewSalesAnalyticsUseCase(repo SalesRepository, catalog ProductCatalog) *SalesAnalyticsUseCase {
	return &SalesAnalyticsUseCase{
		repo:    repo,
		catalog: catalog,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// Analyze runs the full pipeline and returns the resulting report.
func (uc *SalesAnalyticsUseCase) Analyze(ctx context.Context, req AnalyzeRequest) (*domain.AnalyticsReport, error) {
	runID := uc.newID()
	log := logger.WithFields(logger.FromContext(ctx), map[string]interface{}{
		"run_id": runID,
		"input":  req.InputPath,
	})
	started := uc.now()

	// Step 1: Data Ingestion
	lines, err := uc.repo.ReadSalesLines(ctx, req.InputPath)
	if err != nil {
		return nil, fmt.Errorf("could not read sales data: %w", err)
	}

	transactions := ParseTransactions(lines)
	skipped := len(lines) - len(transactions)
	log.Info().
		Int("lines", len(lines)).
		Int("parsed", len(transactions)).
		Int("skipped", skipped).
		Msg("parsed sales data")

	options := DescribeFilterOptions(transactions)
	log.Debug().
		Strs("regions", options.Regions).
		Float64("min_amount", options.MinAmount).
		Float64("max_amount", options.MaxAmount).
		Msg("available filter options")

	// Step 2: Validation and Filtering
	valid, _, summary := ValidateAndFilter(transactions, req.Filter)
	log.Info().
		Int("total_input", summary.TotalInput).
		Int("invalid", summary.Invalid).
		Int("filtered_by_region", summary.FilteredByRegion).
		Int("filtered_by_amount", summary.FilteredByAmount).
		Int("final_count", summary.FinalCount).
		Msg("validated transactions")

	// Step 3: Analysis
	topN := DefaultTopN
	if req.TopN != nil {
		topN = *req.TopN
	}
	threshold := DefaultLowThreshold
	if req.LowThreshold != nil {
		threshold = *req.LowThreshold
	}

	report := &domain.AnalyticsReport{
		RunID:         runID,
		GeneratedAt:   started,
		ParsedCount:   len(transactions),
		SkippedLines:  skipped,
		FilterSummary: summary,
		Transactions:  valid,
		TotalRevenue:  CalculateTotalRevenue(valid),
		RegionSales:   RegionWiseSales(valid),
		TopProducts:   TopSellingProducts(valid, topN),
		LowPerformers: LowPerformingProducts(valid, threshold),
		Customers:     CustomerAnalysis(valid),
		DailyTrend:    DailySalesTrend(valid),
	}

	peak, err := FindPeakSalesDay(valid)
	switch {
	case err == nil:
		report.PeakDay = &peak
	case errors.Is(err, domain.ErrNoTransactions):
		log.Warn().Msg("no valid transactions left after filtering")
	default:
		return nil, fmt.Errorf("could not find peak sales day: %w", err)
	}

	// Step 4: Enrichment
	mapping := uc.productMapping(ctx, req)
	report.Enriched = EnrichTransactions(valid, mapping)
	report.Enrichment = SummarizeEnrichment(report.Enriched)
	log.Info().
		Int("matched", report.Enrichment.Matched).
		Float64("success_rate", report.Enrichment.SuccessRate).
		Msg("enriched transactions")

	if req.EnrichedOutputPath != "" && len(report.Enriched) > 0 {
		if err := uc.repo.SaveEnrichedTransactions(ctx, req.EnrichedOutputPath, report.Enriched); err != nil {
			return nil, fmt.Errorf("could not save enriched transactions: %w", err)
		}
	}

	log.Info().Dur("elapsed", uc.now().Sub(started)).Msg("analysis complete")
	return report, nil
}

// productMapping fetches the catalog. A failed fetch leaves every transaction unmatched.
func (uc *SalesAnalyticsUseCase) productMapping(ctx context.Context, req AnalyzeRequest) map[int]domain.ProductInfo {
	if uc.catalog == nil || req.SkipEnrichment {
		return map[int]domain.ProductInfo{}
	}

	log := logger.FromContext(ctx)
	products, err := uc.catalog.FetchProducts(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("product catalog unavailable, continuing without enrichment")
		return map[int]domain.ProductInfo{}
	}
	log.Debug().Int("products", len(products)).Msg("fetched product catalog")
	return CreateProductMapping(products)
}
