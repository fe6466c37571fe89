package report

import (
	"time"

	"kastle-collection-reports/internal/domain/collection"
	"kastle-collection-reports/internal/domain/portfolio"
)

const trendWindowMonths = 6

type TrendPoint struct {
	Month           string  `json:"month"` // YYYY-MM
	DelinquencyRate float64 `json:"delinquencyRate"`
	CollectionRate  float64 `json:"collectionRate"`
	NewCases        int     `json:"newCases"`
	ResolvedCases   int     `json:"resolvedCases"`
}

// ComputeTrends derives the monthly trend series from the snapshot itself:
// case open/close timestamps, PTP outcomes per promise month and the
// disbursement-cohort delinquency rates. The window is the last six
// calendar months ending at now.
func ComputeTrends(loans []portfolio.LoanAccount, cases []collection.Case, now time.Time) []TrendPoint {
	now = now.UTC()
	months := make([]string, trendWindowMonths)
	index := make(map[string]int, trendWindowMonths)
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(trendWindowMonths - 1), 0)
	for i := 0; i < trendWindowMonths; i++ {
		m := first.AddDate(0, i, 0).Format("2006-01")
		months[i] = m
		index[m] = i
	}

	out := make([]TrendPoint, trendWindowMonths)
	for i, m := range months {
		out[i] = TrendPoint{Month: m}
	}

	for _, cohort := range VintageAnalysis(loans) {
		if i, ok := index[cohort.Month]; ok {
			out[i].DelinquencyRate = cohort.DelinquencyRate
		}
	}

	keptByMonth := make(map[string]int)
	totalByMonth := make(map[string]int)
	for ci := range cases {
		c := &cases[ci]
		if i, ok := index[c.CreatedAt.UTC().Format("2006-01")]; ok {
			out[i].NewCases++
		}
		if c.ResolvedAt != nil {
			if i, ok := index[c.ResolvedAt.UTC().Format("2006-01")]; ok {
				out[i].ResolvedCases++
			}
		}
		for _, p := range c.Promises {
			m := p.PtpDate.UTC().Format("2006-01")
			totalByMonth[m]++
			if p.Status == collection.PtpKept {
				keptByMonth[m]++
			}
		}
	}
	for m, i := range index {
		out[i].CollectionRate = ratio(float64(keptByMonth[m]), float64(totalByMonth[m]))
	}
	return out
}
