package gateway

import (
	"bufio"
	"cmp"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"
	"golang.org/x/exp/slices"

	"sales-analytics/internal/domain"
)

const (
	reportWidth       = 60
	currencySymbol    = "₹"
	reportTopCustomer = 5
	productColumn     = 22
)

// TextReportWriter renders an AnalyticsReport as a plain-text document.
type TextReportWriter struct{}

// NewTextReportWriter creates a new text report writer.
func NewTextReportWriter() *TextReportWriter {
	return &TextReportWriter{}
}

// WriteFile renders the report to path, creating parent directories as needed.
func (w *TextReportWriter) WriteFile(ctx context.Context, path string, report *domain.AnalyticsReport) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file %s: %w", path, err)
	}
	defer file.Close()

	if err := w.Render(file, report); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}
	return file.Close()
}

// Render writes the report to out.
func (w *TextReportWriter) Render(out io.Writer, report *domain.AnalyticsReport) error {
	b := bufio.NewWriter(out)
	rule := strings.Repeat("=", reportWidth)
	thin := strings.Repeat("-", reportWidth)

	section := func(title string) {
		fmt.Fprintf(b, "\n%s\n%s\n", title, thin)
	}

	fmt.Fprintln(b, rule)
	fmt.Fprintln(b, "SALES ANALYTICS REPORT")
	fmt.Fprintf(b, "Generated: %s\n", report.GeneratedAt.Format(time.DateTime))
	fmt.Fprintf(b, "Run ID: %s\n", report.RunID)
	fmt.Fprintf(b, "Records Processed: %d\n", report.ParsedCount)
	fmt.Fprintf(b, "Records Analyzed: %d\n", len(report.Transactions))
	fmt.Fprintln(b, rule)

	section("OVERALL SUMMARY")
	count := len(report.Transactions)
	fmt.Fprintf(b, "Total Revenue:        %s\n", money(report.TotalRevenue))
	fmt.Fprintf(b, "Total Transactions:   %d\n", count)
	avg := 0.0
	if count > 0 {
		avg = report.TotalRevenue / float64(count)
	}
	fmt.Fprintf(b, "Average Order Value:  %s\n", money(avg))
	if n := len(report.DailyTrend); n > 0 {
		fmt.Fprintf(b, "Date Range:           %s to %s\n", report.DailyTrend[0].Date, report.DailyTrend[n-1].Date)
	}

	section("DATA QUALITY")
	s := report.FilterSummary
	fmt.Fprintf(b, "Lines Parsed:         %d\n", report.ParsedCount)
	fmt.Fprintf(b, "Malformed Lines:      %d\n", report.SkippedLines)
	fmt.Fprintf(b, "Invalid Records:      %d\n", s.Invalid)
	fmt.Fprintf(b, "Filtered by Region:   %d\n", s.FilteredByRegion)
	fmt.Fprintf(b, "Filtered by Amount:   %d\n", s.FilteredByAmount)
	fmt.Fprintf(b, "Final Count:          %d\n", s.FinalCount)

	section("REGION-WISE PERFORMANCE")
	fmt.Fprintf(b, "%-12s %18s %10s %13s\n", "Region", "Sales", "% Total", "Transactions")
	for _, r := range report.RegionSales {
		fmt.Fprintf(b, "%-12s %18s %9.2f%% %13d\n", r.Region, money(r.TotalSales), r.Percentage, r.TransactionCount)
	}

	section(fmt.Sprintf("TOP %d PRODUCTS", len(report.TopProducts)))
	fmt.Fprintf(b, "%-5s %-22s %9s %18s\n", "Rank", "Product", "Quantity", "Revenue")
	for i, p := range report.TopProducts {
		fmt.Fprintf(b, "%-5d %s %9d %18s\n", i+1, column(p.ProductName, productColumn), p.TotalQuantity, money(p.TotalRevenue))
	}

	top := topCustomers(report.Customers, reportTopCustomer)
	section(fmt.Sprintf("TOP %d CUSTOMERS", len(top)))
	fmt.Fprintf(b, "%-5s %-12s %18s %10s\n", "Rank", "Customer", "Total Spent", "Orders")
	for i, c := range top {
		fmt.Fprintf(b, "%-5d %-12s %18s %10d\n", i+1, c.CustomerID, money(c.TotalSpent), c.PurchaseCount)
	}

	section("DAILY SALES TREND")
	fmt.Fprintf(b, "%-12s %18s %13s %10s\n", "Date", "Revenue", "Transactions", "Customers")
	for _, d := range report.DailyTrend {
		fmt.Fprintf(b, "%-12s %18s %13d %10d\n", d.Date, money(d.Revenue), d.TransactionCount, d.UniqueCustomers)
	}

	section("PEAK SALES DAY")
	if report.PeakDay != nil {
		fmt.Fprintf(b, "%s: %s across %d transactions\n", report.PeakDay.Date, money(report.PeakDay.Revenue), report.PeakDay.TransactionCount)
	} else {
		fmt.Fprintln(b, "No transactions")
	}

	section("LOW PERFORMING PRODUCTS")
	if len(report.LowPerformers) == 0 {
		fmt.Fprintln(b, "None")
	}
	for _, p := range report.LowPerformers {
		fmt.Fprintf(b, "%s %9d %18s\n", column(p.ProductName, productColumn), p.TotalQuantity, money(p.TotalRevenue))
	}

	section("API ENRICHMENT SUMMARY")
	e := report.Enrichment
	fmt.Fprintf(b, "Products Enriched:    %d/%d\n", e.Matched, e.Total)
	fmt.Fprintf(b, "Success Rate:         %.2f%%\n", e.SuccessRate)
	if len(e.UnmatchedProductIDs) > 0 {
		fmt.Fprintf(b, "Unmatched Products:   %s\n", strings.Join(e.UnmatchedProductIDs, ", "))
	}

	return b.Flush()
}

func money(v float64) string {
	return currencySymbol + humanize.FormatFloat("#,###.##", v)
}

// column pads or truncates s to width terminal cells.
func column(s string, width int) string {
	return runewidth.FillRight(runewidth.Truncate(s, width, "…"), width)
}

func topCustomers(customers []domain.CustomerStats, n int) []domain.CustomerStats {
	sorted := slices.Clone(customers)
	slices.SortStableFunc(sorted, func(a, b domain.CustomerStats) int {
		return cmp.Compare(b.TotalSpent, a.TotalSpent)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
