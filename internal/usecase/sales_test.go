package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sales-analytics/internal/domain"
	"sales-analytics/internal/logger"
	"sales-analytics/internal/usecase"
	mock_usecase "sales-analytics/internal/usecase/mocks"
)

var salesLines = []string{
	"T001|2024-12-01|P101|Laptop|2|45,000|C001|North",
	"T002|2024-12-01|P102|Mouse|5|500|C002|South",
	"T003|2024-12-02|P103|Keyboard|3|1500|C001|North",
	"T004|2024-12-02|P102|Mouse|10|500|C003|East",
	"T005|2024-12-03|P999|Monitor|1|12000|C002|South",
	"X006|2024-12-03|P101|Laptop|1|45000|C004|West",
	"T007|2024-12-03|P101|Laptop",
}

var catalog = []domain.APIProduct{
	{ID: 101, Title: "Laptop", Category: "laptops", Brand: "Apple", Rating: 4.7},
	{ID: 102, Title: "Mouse", Category: "accessories", Brand: "Logi", Rating: 4.1},
	{ID: 103, Title: "Keyboard", Category: "accessories", Brand: "Keychron", Rating: 4.4},
}

func TestSalesAnalyticsUseCase_Analyze(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	minAmount := 3000.0

	tests := []struct {
		name         string
		req          usecase.AnalyzeRequest
		lines        []string
		readErr      error
		products     []domain.APIProduct
		fetchErr     error
		expectFetch  bool
		expectSave   bool
		saveErr      error
		wantErr      bool
		wantSummary  domain.FilterSummary
		wantRevenue  float64
		wantMatched  int
		wantPeakDate string
	}{
		{
			name:         "full pipeline",
			req:          usecase.AnalyzeRequest{InputPath: "sales.txt", EnrichedOutputPath: "out/enriched.txt"},
			lines:        salesLines,
			products:     catalog,
			expectFetch:  true,
			expectSave:   true,
			wantSummary:  domain.FilterSummary{TotalInput: 6, Invalid: 1, FinalCount: 5},
			wantRevenue:  114000,
			wantMatched:  4,
			wantPeakDate: "2024-12-01",
		},
		{
			name: "region and amount filters",
			req: usecase.AnalyzeRequest{
				InputPath: "sales.txt",
				Filter:    domain.FilterOptions{Region: "North", MinAmount: &minAmount},
			},
			lines:        salesLines,
			products:     catalog,
			expectFetch:  true,
			wantSummary:  domain.FilterSummary{TotalInput: 6, Invalid: 1, FilteredByRegion: 3, FinalCount: 2},
			wantRevenue:  94500,
			wantMatched:  2,
			wantPeakDate: "2024-12-01",
		},
		{
			name:         "catalog failure degrades to no matches",
			req:          usecase.AnalyzeRequest{InputPath: "sales.txt"},
			lines:        salesLines,
			fetchErr:     errors.New("connection refused"),
			expectFetch:  true,
			wantSummary:  domain.FilterSummary{TotalInput: 6, Invalid: 1, FinalCount: 5},
			wantRevenue:  114000,
			wantMatched:  0,
			wantPeakDate: "2024-12-01",
		},
		{
			name:         "enrichment skipped",
			req:          usecase.AnalyzeRequest{InputPath: "sales.txt", SkipEnrichment: true},
			lines:        salesLines,
			wantSummary:  domain.FilterSummary{TotalInput: 6, Invalid: 1, FinalCount: 5},
			wantRevenue:  114000,
			wantPeakDate: "2024-12-01",
		},
		{
			name:        "everything filtered out",
			req:         usecase.AnalyzeRequest{InputPath: "sales.txt", EnrichedOutputPath: "out/enriched.txt", Filter: domain.FilterOptions{Region: "Nowhere"}},
			lines:       salesLines,
			products:    catalog,
			expectFetch: true,
			wantSummary: domain.FilterSummary{TotalInput: 6, Invalid: 1, FilteredByRegion: 5},
		},
		{
			name:    "read error",
			req:     usecase.AnalyzeRequest{InputPath: "missing.txt"},
			readErr: errors.New("file not found"),
			wantErr: true,
		},
		{
			name:        "save error",
			req:         usecase.AnalyzeRequest{InputPath: "sales.txt", EnrichedOutputPath: "out/enriched.txt"},
			lines:       salesLines,
			products:    catalog,
			expectFetch: true,
			expectSave:  true,
			saveErr:     errors.New("disk full"),
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := mock_usecase.NewMockSalesRepository(ctrl)
			mCatalog := mock_usecase.NewMockProductCatalog(ctrl)

			mRepo.EXPECT().
				ReadSalesLines(gomock.Any(), tt.req.InputPath).
				Return(tt.lines, tt.readErr)

			if tt.expectFetch {
				mCatalog.EXPECT().
					FetchProducts(gomock.Any()).
					Return(tt.products, tt.fetchErr)
			}
			if tt.expectSave {
				mRepo.EXPECT().
					SaveEnrichedTransactions(gomock.Any(), tt.req.EnrichedOutputPath, gomock.Any()).
					Return(tt.saveErr)
			}

			uc := usecase.NewSalesAnalyticsUseCase(mRepo, mCatalog)
			got, err := uc.Analyze(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.NotEmpty(t, got.RunID)
			assert.Equal(t, 6, got.ParsedCount)
			assert.Equal(t, 1, got.SkippedLines)
			assert.Equal(t, tt.wantSummary, got.FilterSummary)
			assert.InDelta(t, tt.wantRevenue, got.TotalRevenue, 0.001)
			assert.Len(t, got.Transactions, tt.wantSummary.FinalCount)
			assert.Len(t, got.Enriched, tt.wantSummary.FinalCount)
			assert.Equal(t, tt.wantMatched, got.Enrichment.Matched)

			if tt.wantPeakDate == "" {
				assert.Nil(t, got.PeakDay)
				assert.Empty(t, got.RegionSales)
			} else {
				require.NotNil(t, got.PeakDay)
				assert.Equal(t, tt.wantPeakDate, got.PeakDay.Date)
			}
		})
	}
}

func TestSalesAnalyticsUseCase_Analyze_Defaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mRepo := mock_usecase.NewMockSalesRepository(ctrl)
	mRepo.EXPECT().ReadSalesLines(gomock.Any(), "sales.txt").Return(salesLines, nil)

	uc := usecase.NewSalesAnalyticsUseCase(mRepo, nil)
	got, err := uc.Analyze(context.Background(), usecase.AnalyzeRequest{InputPath: "sales.txt"})

	require.NoError(t, err)
	// four distinct products; only Mouse reaches the default low threshold
	assert.Len(t, got.TopProducts, 4)
	assert.Equal(t, "Mouse", got.TopProducts[0].ProductName)
	assert.Len(t, got.LowPerformers, 3)
	assert.Equal(t, 0, got.Enrichment.Matched)
}

func TestSalesAnalyticsUseCase_Analyze_ExplicitZeroSettings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mRepo := mock_usecase.NewMockSalesRepository(ctrl)
	mRepo.EXPECT().ReadSalesLines(gomock.Any(), "sales.txt").Return(salesLines, nil)

	zero := 0
	uc := usecase.NewSalesAnalyticsUseCase(mRepo, nil)
	got, err := uc.Analyze(context.Background(), usecase.AnalyzeRequest{
		InputPath:    "sales.txt",
		TopN:         &zero,
		LowThreshold: &zero,
	})

	require.NoError(t, err)
	assert.Empty(t, got.TopProducts)
	assert.Empty(t, got.LowPerformers)
}

func TestSalesAnalyticsUseCase_Analyze_LogsStages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mRepo := mock_usecase.NewMockSalesRepository(ctrl)
	mRepo.EXPECT().ReadSalesLines(gomock.Any(), "sales.txt").Return(salesLines, nil)

	buf := &bytes.Buffer{}
	ctx := logger.WithContext(context.Background(), logger.NewWithWriter(buf, zerolog.InfoLevel))

	uc := usecase.NewSalesAnalyticsUseCase(mRepo, nil)
	_, err := uc.Analyze(ctx, usecase.AnalyzeRequest{InputPath: "sales.txt"})

	require.NoError(t, err)
	output := buf.String()
	assert.Contains(t, output, "parsed sales data")
	assert.Contains(t, output, `"skipped":1`)
	assert.Contains(t, output, `"invalid":1`)
	assert.Contains(t, output, "analysis complete")
}
