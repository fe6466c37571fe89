package report

import (
	"sort"

	"kastle-collection-reports/internal/domain/portfolio"
)

const vintageWindow = 12

type VintageCohort struct {
	Month           string  `json:"month"` // YYYY-MM of disbursement
	TotalLoans      int     `json:"totalLoans"`
	TotalAmount     float64 `json:"totalAmount"`
	OverdueLoans    int     `json:"overdueLoans"`
	OverdueAmount   float64 `json:"overdueAmount"`
	DelinquencyRate float64 `json:"delinquencyRate"`
}

// VintageAnalysis groups loans by disbursement month and keeps the most
// recent 12 cohorts, chronologically ascending.
func VintageAnalysis(loans []portfolio.LoanAccount) []VintageCohort {
	byMonth := make(map[string]*VintageCohort)
	for i := range loans {
		l := &loans[i]
		month := l.DisbursementDate.UTC().Format("2006-01")
		v := byMonth[month]
		if v == nil {
			v = &VintageCohort{Month: month}
			byMonth[month] = v
		}
		v.TotalLoans++
		v.TotalAmount += l.LoanAmount
		if l.OverdueAmount > 0 {
			v.OverdueLoans++
			v.OverdueAmount += l.OverdueAmount
		}
	}

	out := make([]VintageCohort, 0, len(byMonth))
	for _, v := range byMonth {
		v.DelinquencyRate = ratio(v.OverdueAmount, v.TotalAmount)
		out = append(out, *v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	if len(out) > vintageWindow {
		out = out[len(out)-vintageWindow:]
	}
	return out
}
