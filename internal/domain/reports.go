package domain

import "time"

// RegionSales holds sales statistics for a single region.
type RegionSales struct {
	Region           string  `json:"region"`
	TotalSales       float64 `json:"total_sales"`
	TransactionCount int     `json:"transaction_count"`
	Percentage       float64 `json:"percentage"`
}

// ProductSales holds quantity and revenue totals for a single product name.
type ProductSales struct {
	ProductName   string  `json:"product_name"`
	TotalQuantity int     `json:"total_quantity"`
	TotalRevenue  float64 `json:"total_revenue"`
}

// CustomerStats summarizes one customer's purchases.
// ProductsBought is a distinct set, kept in ascending order.
type CustomerStats struct {
	CustomerID     string   `json:"customer_id"`
	TotalSpent     float64  `json:"total_spent"`
	PurchaseCount  int      `json:"purchase_count"`
	AvgOrderValue  float64  `json:"avg_order_value"`
	ProductsBought []string `json:"products_bought"`
}

// DailySales holds the aggregates for one date.
type DailySales struct {
	Date             string  `json:"date"`
	Revenue          float64 `json:"revenue"`
	TransactionCount int     `json:"transaction_count"`
	UniqueCustomers  int     `json:"unique_customers"`
}

// PeakDay is the date with the highest revenue.
type PeakDay struct {
	Date             string  `json:"date"`
	Revenue          float64 `json:"revenue"`
	TransactionCount int     `json:"transaction_count"`
}

// AnalyticsReport is the top-level result of one pipeline run.
type AnalyticsReport struct {
	RunID        string    `json:"run_id"`
	GeneratedAt  time.Time `json:"generated_at"`
	ParsedCount  int       `json:"parsed_count"`
	SkippedLines int       `json:"skipped_lines"`

	FilterSummary FilterSummary `json:"filter_summary"`
	Transactions  []Transaction `json:"-"`

	TotalRevenue  float64         `json:"total_revenue"`
	RegionSales   []RegionSales   `json:"region_sales"`
	TopProducts   []ProductSales  `json:"top_products"`
	LowPerformers []ProductSales  `json:"low_performers"`
	Customers     []CustomerStats `json:"customers"`
	DailyTrend    []DailySales    `json:"daily_trend"`
	PeakDay       *PeakDay        `json:"peak_day,omitempty"`

	Enriched   []EnrichedTransaction `json:"-"`
	Enrichment EnrichmentSummary     `json:"enrichment"`
}
