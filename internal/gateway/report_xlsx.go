package gateway

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"sales-analytics/internal/domain"
)

const summarySheet = "Summary"

// XLSXReportWriter exports the aggregate views of an AnalyticsReport as a workbook,
// one sheet per view.
type XLSXReportWriter struct{}

// NewXLSXReportWriter creates a new workbook writer.
func NewXLSXReportWriter() *XLSXReportWriter {
	return &XLSXReportWriter{}
}

// WriteFile builds the workbook and saves it to path.
func (w *XLSXReportWriter) WriteFile(ctx context.Context, path string, report *domain.AnalyticsReport) error {
	f, err := w.Build(report)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}
	return nil
}

// Build assembles the workbook in memory. The caller must Close it.
func (w *XLSXReportWriter) Build(report *domain.AnalyticsReport) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to name summary sheet: %w", err)
	}

	peakDate, peakRevenue := "", 0.0
	if report.PeakDay != nil {
		peakDate, peakRevenue = report.PeakDay.Date, report.PeakDay.Revenue
	}
	s := report.FilterSummary

	sheets := []struct {
		name   string
		header []interface{}
		rows   [][]interface{}
	}{
		{
			name:   summarySheet,
			header: []interface{}{"Metric", "Value"},
			rows: [][]interface{}{
				{"Run ID", report.RunID},
				{"Generated", report.GeneratedAt.Format(time.DateTime)},
				{"Total Revenue", report.TotalRevenue},
				{"Total Input", s.TotalInput},
				{"Invalid", s.Invalid},
				{"Filtered by Region", s.FilteredByRegion},
				{"Filtered by Amount", s.FilteredByAmount},
				{"Final Count", s.FinalCount},
				{"Peak Day", peakDate},
				{"Peak Day Revenue", peakRevenue},
				{"Enrichment Success Rate", report.Enrichment.SuccessRate},
			},
		},
		{
			name:   "Regions",
			header: []interface{}{"Region", "Total Sales", "Transactions", "Percentage"},
			rows:   regionRows(report.RegionSales),
		},
		{
			name:   "Top Products",
			header: []interface{}{"Product", "Quantity", "Revenue"},
			rows:   productRows(report.TopProducts),
		},
		{
			name:   "Low Performers",
			header: []interface{}{"Product", "Quantity", "Revenue"},
			rows:   productRows(report.LowPerformers),
		},
		{
			name:   "Customers",
			header: []interface{}{"Customer", "Total Spent", "Purchases", "Avg Order Value", "Products"},
			rows:   customerRows(report.Customers),
		},
		{
			name:   "Daily Trend",
			header: []interface{}{"Date", "Revenue", "Transactions", "Unique Customers"},
			rows:   dailyRows(report.DailyTrend),
		},
	}

	for _, sheet := range sheets {
		if sheet.name != summarySheet {
			if _, err := f.NewSheet(sheet.name); err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to create sheet %s: %w", sheet.name, err)
			}
		}
		if err := writeRows(f, sheet.name, sheet.header, sheet.rows); err != nil {
			f.Close()
			return nil, err
		}
	}
	return f, nil
}

func writeRows(f *excelize.File, sheet string, header []interface{}, rows [][]interface{}) error {
	all := append([][]interface{}{header}, rows...)
	for i, row := range all {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		row := row
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d of sheet %s: %w", i+1, sheet, err)
		}
	}
	return nil
}

func regionRows(regions []domain.RegionSales) [][]interface{} {
	rows := make([][]interface{}, 0, len(regions))
	for _, r := range regions {
		rows = append(rows, []interface{}{r.Region, r.TotalSales, r.TransactionCount, r.Percentage})
	}
	return rows
}

func productRows(products []domain.ProductSales) [][]interface{} {
	rows := make([][]interface{}, 0, len(products))
	for _, p := range products {
		rows = append(rows, []interface{}{p.ProductName, p.TotalQuantity, p.TotalRevenue})
	}
	return rows
}

func customerRows(customers []domain.CustomerStats) [][]interface{} {
	rows := make([][]interface{}, 0, len(customers))
	for _, c := range customers {
		rows = append(rows, []interface{}{c.CustomerID, c.TotalSpent, c.PurchaseCount, c.AvgOrderValue, strings.Join(c.ProductsBought, ", ")})
	}
	return rows
}

func dailyRows(days []domain.DailySales) [][]interface{} {
	rows := make([][]interface{}, 0, len(days))
	for _, d := range days {
		rows = append(rows, []interface{}{d.Date, d.Revenue, d.TransactionCount, d.UniqueCustomers})
	}
	return rows
}
