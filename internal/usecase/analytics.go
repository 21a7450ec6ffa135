package usecase

import (
	"cmp"
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"

	"sales-analytics/internal/domain"
)

const (
	// DefaultTopN is the number of products returned by TopSellingProducts when unset.
	DefaultTopN = 5
	// DefaultLowThreshold is the quantity below which a product is a low performer.
	DefaultLowThreshold = 10
)

// CalculateTotalRevenue sums the amount of every transaction.
func CalculateTotalRevenue(transactions []domain.Transaction) float64 {
	total := 0.0
	for _, tx := range transactions {
		total += tx.Amount()
	}
	return total
}

// RegionWiseSales groups revenue by region, ordered by total sales descending.
// An empty input yields an empty result; a zero grand total yields zero percentages.
func RegionWiseSales(transactions []domain.Transaction) []domain.RegionSales {
	regions := make([]domain.RegionSales, 0)
	index := make(map[string]int)
	grandTotal := 0.0

	for _, tx := range transactions {
		amount := tx.Amount()
		grandTotal += amount

		i, ok := index[tx.Region]
		if !ok {
			i = len(regions)
			index[tx.Region] = i
			regions = append(regions, domain.RegionSales{Region: tx.Region})
		}
		regions[i].TotalSales += amount
		regions[i].TransactionCount++
	}

	for i := range regions {
		if grandTotal == 0 {
			continue
		}
		regions[i].Percentage = round2(regions[i].TotalSales / grandTotal * 100)
	}

	slices.SortStableFunc(regions, func(a, b domain.RegionSales) int {
		return cmp.Compare(b.TotalSales, a.TotalSales)
	})
	return regions
}

// TopSellingProducts returns the n products with the highest total quantity.
// Products with equal quantity keep the order in which they were first seen.
func TopSellingProducts(transactions []domain.Transaction, n int) []domain.ProductSales {
	if n <= 0 {
		return []domain.ProductSales{}
	}

	products := aggregateProducts(transactions)
	slices.SortStableFunc(products, func(a, b domain.ProductSales) int {
		return cmp.Compare(b.TotalQuantity, a.TotalQuantity)
	})

	if len(products) > n {
		products = products[:n]
	}
	return products
}

// LowPerformingProducts returns, in discovery order, every product whose total
// quantity is below threshold.
func LowPerformingProducts(transactions []domain.Transaction, threshold int) []domain.ProductSales {
	low := make([]domain.ProductSales, 0)
	for _, p := range aggregateProducts(transactions) {
		if p.TotalQuantity < threshold {
			low = append(low, p)
		}
	}
	return low
}

func aggregateProducts(transactions []domain.Transaction) []domain.ProductSales {
	products := make([]domain.ProductSales, 0)
	index := make(map[string]int)
	for _, tx := range transactions {
		i, ok := index[tx.ProductName]
		if !ok {
			i = len(products)
			index[tx.ProductName] = i
			products = append(products, domain.ProductSales{ProductName: tx.ProductName})
		}
		products[i].TotalQuantity += tx.Quantity
		products[i].TotalRevenue += tx.Amount()
	}
	return products
}

// CustomerAnalysis summarizes purchases per customer in first-seen order.
func CustomerAnalysis(transactions []domain.Transaction) []domain.CustomerStats {
	customers := make([]domain.CustomerStats, 0)
	index := make(map[string]int)
	bought := make([]map[string]struct{}, 0)

	for _, tx := range transactions {
		i, ok := index[tx.CustomerID]
		if !ok {
			i = len(customers)
			index[tx.CustomerID] = i
			customers = append(customers, domain.CustomerStats{CustomerID: tx.CustomerID})
			bought = append(bought, make(map[string]struct{}))
		}
		customers[i].TotalSpent += tx.Amount()
		customers[i].PurchaseCount++
		bought[i][tx.ProductName] = struct{}{}
	}

	for i := range customers {
		customers[i].AvgOrderValue = round2(customers[i].TotalSpent / float64(customers[i].PurchaseCount))
		customers[i].ProductsBought = sortedKeys(bought[i])
	}
	return customers
}

// DailySalesTrend aggregates revenue per date, ordered by date.
// Dates are compared as strings, so they must share one zero-padded format.
func DailySalesTrend(transactions []domain.Transaction) []domain.DailySales {
	days := make([]domain.DailySales, 0)
	index := make(map[string]int)
	customers := make([]map[string]struct{}, 0)

	for _, tx := range transactions {
		i, ok := index[tx.Date]
		if !ok {
			i = len(days)
			index[tx.Date] = i
			days = append(days, domain.DailySales{Date: tx.Date})
			customers = append(customers, make(map[string]struct{}))
		}
		days[i].Revenue += tx.Amount()
		days[i].TransactionCount++
		customers[i][tx.CustomerID] = struct{}{}
	}

	for i := range days {
		days[i].UniqueCustomers = len(customers[i])
	}

	slices.SortStableFunc(days, func(a, b domain.DailySales) int {
		return cmp.Compare(a.Date, b.Date)
	})
	return days
}

// FindPeakSalesDay returns the date with the highest revenue. On a tie the date
// seen first wins. It returns domain.ErrNoTransactions for an empty input.
func FindPeakSalesDay(transactions []domain.Transaction) (domain.PeakDay, error) {
	if len(transactions) == 0 {
		return domain.PeakDay{}, domain.ErrNoTransactions
	}

	days := make([]domain.PeakDay, 0)
	index := make(map[string]int)
	for _, tx := range transactions {
		i, ok := index[tx.Date]
		if !ok {
			i = len(days)
			index[tx.Date] = i
			days = append(days, domain.PeakDay{Date: tx.Date})
		}
		days[i].Revenue += tx.Amount()
		days[i].TransactionCount++
	}

	peak := days[0]
	for _, d := range days[1:] {
		if d.Revenue > peak.Revenue {
			peak = d
		}
	}
	return peak, nil
}

func round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
