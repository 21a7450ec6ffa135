package usecase

import (
	"math"
	"strings"

	"golang.org/x/exp/slices"

	"sales-analytics/internal/domain"
)

const (
	transactionPrefix = "T"
	productPrefix     = "P"
	customerPrefix    = "C"
)

// ValidateAndFilter rejects invalid transactions, then applies the optional region
// and amount filters in that order. Each excluded record is counted in the first
// bucket that rejects it.
func ValidateAndFilter(transactions []domain.Transaction, opts domain.FilterOptions) ([]domain.Transaction, int, domain.FilterSummary) {
	summary := domain.FilterSummary{TotalInput: len(transactions)}

	valid := make([]domain.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if !isValid(tx) {
			summary.Invalid++
			continue
		}
		valid = append(valid, tx)
	}

	if opts.Region != "" {
		inRegion := make([]domain.Transaction, 0, len(valid))
		for _, tx := range valid {
			if tx.Region != opts.Region {
				summary.FilteredByRegion++
				continue
			}
			inRegion = append(inRegion, tx)
		}
		valid = inRegion
	}

	if opts.MinAmount != nil || opts.MaxAmount != nil {
		inRange := make([]domain.Transaction, 0, len(valid))
		for _, tx := range valid {
			amount := tx.Amount()
			if opts.MinAmount != nil && amount < *opts.MinAmount {
				summary.FilteredByAmount++
				continue
			}
			if opts.MaxAmount != nil && amount > *opts.MaxAmount {
				summary.FilteredByAmount++
				continue
			}
			inRange = append(inRange, tx)
		}
		valid = inRange
	}

	summary.FinalCount = len(valid)
	return valid, summary.Invalid, summary
}

func isValid(tx domain.Transaction) bool {
	if tx.TransactionID == "" || tx.Date == "" || tx.ProductID == "" || tx.ProductName == "" ||
		tx.CustomerID == "" || tx.Region == "" {
		return false
	}
	if !strings.HasPrefix(tx.TransactionID, transactionPrefix) ||
		!strings.HasPrefix(tx.ProductID, productPrefix) ||
		!strings.HasPrefix(tx.CustomerID, customerPrefix) {
		return false
	}
	return tx.Quantity > 0 && tx.UnitPrice > 0
}

// DescribeFilterOptions lists the distinct regions and the amount range present in
// the records, so callers can pick sensible filter values.
func DescribeFilterOptions(transactions []domain.Transaction) domain.FilterOptionsInfo {
	info := domain.FilterOptionsInfo{Regions: []string{}}
	if len(transactions) == 0 {
		return info
	}

	seen := make(map[string]struct{})
	info.MinAmount = math.Inf(1)
	info.MaxAmount = math.Inf(-1)
	for _, tx := range transactions {
		if tx.Region != "" {
			if _, ok := seen[tx.Region]; !ok {
				seen[tx.Region] = struct{}{}
				info.Regions = append(info.Regions, tx.Region)
			}
		}
		amount := tx.Amount()
		if math.IsNaN(amount) {
			continue
		}
		info.MinAmount = math.Min(info.MinAmount, amount)
		info.MaxAmount = math.Max(info.MaxAmount, amount)
	}
	if math.IsInf(info.MinAmount, 1) {
		info.MinAmount, info.MaxAmount = 0, 0
	}
	slices.Sort(info.Regions)
	return info
}
