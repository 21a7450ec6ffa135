package domain

// APIProduct is a product as returned by the external catalog.
type APIProduct struct {
	ID       int     `json:"id"`
	Title    string  `json:"title"`
	Category string  `json:"category"`
	Brand    string  `json:"brand"`
	Rating   float64 `json:"rating"`
}

// ProductInfo is the catalog metadata attached to a transaction during enrichment.
type ProductInfo struct {
	Title    string
	Category string
	Brand    string
	Rating   float64
}

// EnrichedTransaction is a Transaction with catalog metadata.
// API fields are zero when APIMatch is false.
type EnrichedTransaction struct {
	Transaction

	APICategory string  `json:"api_category"`
	APIBrand    string  `json:"api_brand"`
	APIRating   float64 `json:"api_rating"`
	APIMatch    bool    `json:"api_match"`
}

// EnrichmentSummary reports how many transactions matched the catalog.
type EnrichmentSummary struct {
	Total               int      `json:"total"`
	Matched             int      `json:"matched"`
	SuccessRate         float64  `json:"success_rate"`
	UnmatchedProductIDs []string `json:"unmatched_product_ids"`
}
