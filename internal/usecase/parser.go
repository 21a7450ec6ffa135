package usecase

import (
	"math"
	"strconv"
	"strings"

	"sales-analytics/internal/domain"
)

const (
	fieldDelimiter    = "|"
	fieldCount        = 8
	thousandSeparator = ","
)

// ParseTransactions converts raw delimited lines into typed transactions.
// Lines with the wrong field count, unparseable numbers or a non-finite price
// are dropped.
func ParseTransactions(lines []string) []domain.Transaction {
	transactions := make([]domain.Transaction, 0, len(lines))
	for _, line := range lines {
		tx, ok := parseLine(line)
		if !ok {
			continue
		}
		transactions = append(transactions, tx)
	}
	return transactions
}

func parseLine(line string) (domain.Transaction, bool) {
	parts := strings.Split(line, fieldDelimiter)
	if len(parts) != fieldCount {
		return domain.Transaction{}, false
	}

	quantity, err := strconv.Atoi(cleanNumber(parts[4]))
	if err != nil {
		return domain.Transaction{}, false
	}
	unitPrice, err := strconv.ParseFloat(cleanNumber(parts[5]), 64)
	if err != nil || math.IsNaN(unitPrice) || math.IsInf(unitPrice, 0) {
		return domain.Transaction{}, false
	}

	return domain.Transaction{
		TransactionID: parts[0],
		Date:          parts[1],
		ProductID:     parts[2],
		ProductName:   strings.TrimSpace(strings.ReplaceAll(parts[3], ",", "")),
		Quantity:      quantity,
		UnitPrice:     unitPrice,
		CustomerID:    parts[6],
		Region:        parts[7],
	}, true
}

func cleanNumber(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, thousandSeparator, ""))
}
