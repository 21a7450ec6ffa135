package gateway

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"sales-analytics/internal/domain"
)

var enrichedHeader = []string{
	"TransactionID", "Date", "ProductID", "ProductName", "Quantity", "UnitPrice",
	"CustomerID", "Region", "API_Category", "API_Brand", "API_Rating", "API_Match",
}

// SalesFileRepository implements the SalesRepository interface for pipe-delimited files.
type SalesFileRepository struct{}

// NewSalesFileRepository creates a new repository instance.
func NewSalesFileRepository() *SalesFileRepository {
	return &SalesFileRepository{}
}

// ReadSalesLines reads the sales file and returns its non-empty data lines with the
// header removed. Files that are not valid UTF-8 are decoded as Windows-1252.
func (r *SalesFileRepository) ReadSalesLines(ctx context.Context, path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sales file %s: %w", path, err)
	}

	text, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode sales file %s: %w", path, err)
	}

	rows := strings.Split(text, "\n")
	lines := make([]string, 0, len(rows))
	// Skip header
	for _, row := range rows[1:] {
		row = strings.TrimSpace(row)
		if row == "" {
			continue
		}
		lines = append(lines, row)
	}
	return lines, nil
}

func decode(data []byte) (string, error) {
	if utf8.Valid(data) {
		return string(data), nil
	}
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}

// SaveEnrichedTransactions writes the enriched rows as a pipe-delimited file with a
// header line. Nothing is written when rows is empty.
func (r *SalesFileRepository) SaveEnrichedTransactions(ctx context.Context, path string, rows []domain.EnrichedTransaction) error {
	if len(rows) == 0 {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create enriched file %s: %w", path, err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	if _, err := w.WriteString(strings.Join(enrichedHeader, "|") + "\n"); err != nil {
		return fmt.Errorf("error writing header to %s: %w", path, err)
	}
	for _, row := range rows {
		if _, err := w.WriteString(strings.Join(enrichedFields(row), "|") + "\n"); err != nil {
			return fmt.Errorf("error writing record %s to %s: %w", row.TransactionID, path, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("error flushing %s: %w", path, err)
	}
	return file.Close()
}

func enrichedFields(row domain.EnrichedTransaction) []string {
	rating := ""
	if row.APIMatch {
		rating = strconv.FormatFloat(row.APIRating, 'f', -1, 64)
	}
	return []string{
		row.TransactionID,
		row.Date,
		row.ProductID,
		row.ProductName,
		strconv.Itoa(row.Quantity),
		strconv.FormatFloat(row.UnitPrice, 'f', -1, 64),
		row.CustomerID,
		row.Region,
		row.APICategory,
		row.APIBrand,
		rating,
		strconv.FormatBool(row.APIMatch),
	}
}
