package report

import (
	"time"

	"kastle-collection-reports/internal/domain/portfolio"
)

type DateRange string

const (
	RangeCurrentMonth   DateRange = "current_month"
	RangeLastMonth      DateRange = "last_month"
	RangeCurrentQuarter DateRange = "current_quarter"
	RangeCurrentYear    DateRange = "current_year"
)

const FilterAll = "all"

// Filters are the caller-supplied report parameters. Zero values mean "all"
// except DateRange, which defaults to the current month.
type Filters struct {
	DateRange         DateRange
	ProductType       string
	BranchID          string
	DelinquencyBucket string
	CustomerType      string
	Comparison        bool
}

// Start resolves the range to its first instant, in UTC.
func (d DateRange) Start(now time.Time) time.Time {
	now = now.UTC()
	switch d {
	case RangeLastMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
	case RangeCurrentQuarter:
		q := (int(now.Month()) - 1) / 3
		return time.Date(now.Year(), time.Month(q*3+1), 1, 0, 0, 0, 0, time.UTC)
	case RangeCurrentYear:
		return time.Date(now.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
	default: // current_month
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	}
}

func (d DateRange) Valid() bool {
	switch d {
	case "", RangeCurrentMonth, RangeLastMonth, RangeCurrentQuarter, RangeCurrentYear:
		return true
	}
	return false
}

func pass(filter, value string) bool {
	return filter == "" || filter == FilterAll || filter == value
}

// ApplyFilters is the predicate pass over an already-fetched loan set. The
// slice is never mutated; a fresh slice is returned even when nothing is
// filtered out.
func ApplyFilters(loans []portfolio.LoanAccount, f Filters) []portfolio.LoanAccount {
	out := make([]portfolio.LoanAccount, 0, len(loans))
	for _, l := range loans {
		productType := ""
		if l.Product != nil {
			productType = l.Product.ProductType
		}
		customerType := ""
		if l.Customer != nil {
			customerType = string(l.Customer.CustomerType)
		}
		if !pass(f.ProductType, productType) {
			continue
		}
		if !pass(f.BranchID, l.BranchID()) {
			continue
		}
		if !pass(f.CustomerType, customerType) {
			continue
		}
		if !pass(f.DelinquencyBucket, BucketFor(l.OverdueDays)) {
			continue
		}
		out = append(out, l)
	}
	return out
}
