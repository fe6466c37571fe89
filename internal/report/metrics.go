package report

import (
	"kastle-collection-reports/internal/domain/collection"
	"kastle-collection-reports/internal/domain/portfolio"
)

// Summary is the top-level KPI block of a report. Percentages are 0-100
// floats; every ratio is zero-guarded so an empty portfolio produces zeros,
// never NaN or Inf.
type Summary struct {
	TotalLoans         int     `json:"totalLoans"`
	TotalPortfolio     float64 `json:"totalPortfolio"`
	TotalOutstanding   float64 `json:"totalOutstanding"`
	OverdueLoans       int     `json:"overdueLoans"`
	TotalOverdue       float64 `json:"totalOverdue"`
	DelinquencyRate    float64 `json:"delinquencyRate"`
	CollectionRate     float64 `json:"collectionRate"`
	ActiveCases        int     `json:"activeCases"`
	AvgDPD             float64 `json:"avgDPD"`
	AvgInterestRate    float64 `json:"avgInterestRate"`
	AvgLoanSize        float64 `json:"avgLoanSize"`
	PortfolioAtRisk    float64 `json:"portfolioAtRisk"`
}

// ratio returns num/den*100 with the zero-denominator guard required across
// every rate in this package.
func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den * 100
}

// ComputeMetrics reduces a filtered loan population and its collection cases
// into the report summary. Pure: no I/O, inputs are never mutated, nil
// slices behave as empty.
//
// delinquencyRate is overdue over the loan face amount; portfolioAtRisk is
// overdue over the remaining outstanding balance. The two denominators are
// deliberately distinct.
func ComputeMetrics(loans []portfolio.LoanAccount, cases []collection.Case) Summary {
	var s Summary
	s.TotalLoans = len(loans)

	var dpdSum, rateSum float64
	for i := range loans {
		l := &loans[i]
		s.TotalPortfolio += l.LoanAmount
		s.TotalOutstanding += l.OutstandingBalance
		rateSum += l.InterestRate
		if l.OverdueAmount > 0 {
			s.OverdueLoans++
			s.TotalOverdue += l.OverdueAmount
			dpdSum += float64(l.OverdueDays)
		}
	}

	var keptPtp float64
	for i := range cases {
		c := &cases[i]
		if c.CaseStatus == collection.CaseActive {
			s.ActiveCases++
		}
		for _, p := range c.Promises {
			if p.Status == collection.PtpKept {
				keptPtp += p.PtpAmount
			}
		}
	}

	s.DelinquencyRate = ratio(s.TotalOverdue, s.TotalPortfolio)
	s.CollectionRate = ratio(keptPtp, s.TotalOverdue)
	s.PortfolioAtRisk = ratio(s.TotalOverdue, s.TotalOutstanding)
	if s.OverdueLoans > 0 {
		s.AvgDPD = dpdSum / float64(s.OverdueLoans)
	}
	if s.TotalLoans > 0 {
		s.AvgInterestRate = rateSum / float64(s.TotalLoans)
		s.AvgLoanSize = s.TotalPortfolio / float64(s.TotalLoans)
	}
	return s
}
