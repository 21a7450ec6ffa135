package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sales-analytics/internal/domain"
)

const cliSalesData = `TransactionID|Date|ProductID|ProductName|Quantity|UnitPrice|CustomerID|Region
T001|2024-12-01|P101|Laptop|2|45,000|C001|North
T002|2024-12-01|P102|Mouse|10|500|C002|South
T003|2024-12-02|P101|Laptop|1|45000|C003|North
X004|2024-12-02|P103|Keyboard|3|1500|C001|East
T005|2024-12-03|P104|Monitor|1|12000|C002|West
broken line
`

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := runCLI(t, "version")

	require.NoError(t, err)
	assert.Contains(t, out, "sales-analytics")
	assert.Contains(t, out, "Version:    dev")
}

func TestAnalyzeCommand(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "sales_data.txt")
	require.NoError(t, os.WriteFile(input, []byte(cliSalesData), 0o644))

	reportPath := filepath.Join(dir, "out", "report.txt")
	enrichedPath := filepath.Join(dir, "out", "enriched.txt")
	xlsxPath := filepath.Join(dir, "out", "report.xlsx")

	t.Run("writes the report and prints JSON", func(t *testing.T) {
		out, err := runCLI(t, "analyze",
			"--input", input,
			"--skip-api",
			"--report-output", reportPath,
			"--enriched-output", enrichedPath,
			"--xlsx", xlsxPath,
			"--json",
		)
		require.NoError(t, err)

		var report domain.AnalyticsReport
		require.NoError(t, json.Unmarshal([]byte(out), &report))
		assert.Equal(t, 152000.0, report.TotalRevenue)
		assert.Equal(t, 4, report.FilterSummary.FinalCount)
		assert.Equal(t, 1, report.FilterSummary.Invalid)
		assert.Equal(t, 1, report.SkippedLines)

		text, err := os.ReadFile(reportPath)
		require.NoError(t, err)
		assert.True(t, strings.Contains(string(text), "SALES ANALYTICS REPORT"))

		assert.FileExists(t, enrichedPath)
		assert.FileExists(t, xlsxPath)
	})

	t.Run("applies the region filter", func(t *testing.T) {
		out, err := runCLI(t, "analyze",
			"--input", input,
			"--skip-api",
			"--region", "North",
			"--report-output", reportPath,
			"--enriched-output", enrichedPath,
			"--json",
		)
		require.NoError(t, err)

		var report domain.AnalyticsReport
		require.NoError(t, json.Unmarshal([]byte(out), &report))
		assert.Equal(t, 135000.0, report.TotalRevenue)
		assert.Equal(t, 2, report.FilterSummary.FinalCount)
		assert.Equal(t, 2, report.FilterSummary.FilteredByRegion)
	})

	t.Run("keeps an explicit zero top and threshold", func(t *testing.T) {
		out, err := runCLI(t, "analyze",
			"--input", input,
			"--skip-api",
			"--top", "0",
			"--threshold", "0",
			"--report-output", reportPath,
			"--enriched-output", enrichedPath,
			"--json",
		)
		require.NoError(t, err)

		var report domain.AnalyticsReport
		require.NoError(t, json.Unmarshal([]byte(out), &report))
		assert.Empty(t, report.TopProducts)
		assert.Empty(t, report.LowPerformers)
		assert.Equal(t, 4, report.FilterSummary.FinalCount)
	})

	t.Run("rejects inverted amount bounds", func(t *testing.T) {
		_, err := runCLI(t, "analyze",
			"--input", input,
			"--skip-api",
			"--min-amount", "5000",
			"--max-amount", "100",
		)
		assert.ErrorContains(t, err, "invalid options")
	})

	t.Run("fails on a missing input file", func(t *testing.T) {
		_, err := runCLI(t, "analyze",
			"--input", filepath.Join(dir, "missing.txt"),
			"--skip-api",
			"--report-output", reportPath,
		)
		assert.ErrorContains(t, err, "analysis failed")
	})
}
