package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"sales-analytics/internal/domain"
)

// DefaultProductAPIURL is the public catalog used when none is configured.
const DefaultProductAPIURL = "https://dummyjson.com/products"

type productsResponse struct {
	Products []domain.APIProduct `json:"products"`
}

// ProductAPIClient implements the ProductCatalog interface over HTTP.
type ProductAPIClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewProductAPIClient creates a catalog client. An empty baseURL selects DefaultProductAPIURL.
func NewProductAPIClient(baseURL string, timeout time.Duration) *ProductAPIClient {
	if baseURL == "" {
		baseURL = DefaultProductAPIURL
	}
	return &ProductAPIClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchProducts retrieves every product from the catalog.
func (c *ProductAPIClient) FetchProducts(ctx context.Context) ([]domain.APIProduct, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog request to %s failed: %w", c.baseURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("catalog returned status %d: %s", resp.StatusCode, string(body))
	}

	var payload productsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("could not decode catalog response: %w", err)
	}
	if payload.Products == nil {
		return []domain.APIProduct{}, nil
	}
	return payload.Products, nil
}
