package domain

import "errors"

// ErrNoTransactions is returned by analyses that have no defined result for an empty record set.
var ErrNoTransactions = errors.New("no transactions to analyze")

// Transaction represents a single sales line from the transaction log.
type Transaction struct {
	TransactionID string  `json:"transaction_id"`
	Date          string  `json:"date"` // YYYY-MM-DD, compared lexically
	ProductID     string  `json:"product_id"`
	ProductName   string  `json:"product_name"`
	Quantity      int     `json:"quantity"`
	UnitPrice     float64 `json:"unit_price"`
	CustomerID    string  `json:"customer_id"`
	Region        string  `json:"region"`
}

// Amount is the revenue contribution of the transaction.
func (t Transaction) Amount() float64 {
	return float64(t.Quantity) * t.UnitPrice
}

// FilterOptions narrows the validated set. Zero values mean "no filter".
type FilterOptions struct {
	Region    string
	MinAmount *float64
	MaxAmount *float64
}

// FilterSummary accounts for every input record exactly once.
type FilterSummary struct {
	TotalInput       int `json:"total_input"`
	Invalid          int `json:"invalid"`
	FilteredByRegion int `json:"filtered_by_region"`
	FilteredByAmount int `json:"filtered_by_amount"`
	FinalCount       int `json:"final_count"`
}

// FilterOptionsInfo describes the values a caller can filter on.
type FilterOptionsInfo struct {
	Regions   []string `json:"regions"`
	MinAmount float64  `json:"min_amount"`
	MaxAmount float64  `json:"max_amount"`
}
