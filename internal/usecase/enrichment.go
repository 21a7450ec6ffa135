package usecase

import (
	"strconv"
	"strings"

	"sales-analytics/internal/domain"
)

// CreateProductMapping indexes catalog products by their numeric id.
func CreateProductMapping(products []domain.APIProduct) map[int]domain.ProductInfo {
	mapping := make(map[int]domain.ProductInfo, len(products))
	for _, p := range products {
		mapping[p.ID] = domain.ProductInfo{
			Title:    p.Title,
			Category: p.Category,
			Brand:    p.Brand,
			Rating:   p.Rating,
		}
	}
	return mapping
}

// EnrichTransactions attaches catalog metadata to each transaction using the
// numeric part of its product id (P101 -> 101). Unknown or malformed ids are
// kept with APIMatch set to false.
func EnrichTransactions(transactions []domain.Transaction, mapping map[int]domain.ProductInfo) []domain.EnrichedTransaction {
	enriched := make([]domain.EnrichedTransaction, 0, len(transactions))
	for _, tx := range transactions {
		row := domain.EnrichedTransaction{Transaction: tx}
		if id, ok := numericProductID(tx.ProductID); ok {
			if info, found := mapping[id]; found {
				row.APICategory = info.Category
				row.APIBrand = info.Brand
				row.APIRating = info.Rating
				row.APIMatch = true
			}
		}
		enriched = append(enriched, row)
	}
	return enriched
}

func numericProductID(productID string) (int, bool) {
	id, err := strconv.Atoi(strings.TrimPrefix(productID, productPrefix))
	if err != nil {
		return 0, false
	}
	return id, true
}

// SummarizeEnrichment counts catalog matches and lists the product ids that had none.
func SummarizeEnrichment(rows []domain.EnrichedTransaction) domain.EnrichmentSummary {
	summary := domain.EnrichmentSummary{Total: len(rows), UnmatchedProductIDs: []string{}}
	unmatched := make(map[string]struct{})
	for _, row := range rows {
		if row.APIMatch {
			summary.Matched++
			continue
		}
		unmatched[row.ProductID] = struct{}{}
	}
	if summary.Total > 0 {
		summary.SuccessRate = round2(float64(summary.Matched) / float64(summary.Total) * 100)
	}
	summary.UnmatchedProductIDs = sortedKeys(unmatched)
	return summary
}
