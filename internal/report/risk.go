package report

import (
	"sort"
	"time"

	"kastle-collection-reports/internal/domain/portfolio"
)

const (
	newLoanWindowDays = 30
	writeOffDPD       = 360
	topDefaulterLimit = 10
)

type RiskIndicators struct {
	// Share of overdue amount sitting beyond 90 DPD.
	HighDPDConcentration float64 `json:"highDPDConcentration"`
	NewLoanDefaultRate   float64 `json:"newLoanDefaultRate"`
	WriteOffCandidates   int     `json:"writeOffCandidates"`
}

type RiskAnalysis struct {
	BucketDistribution []BucketSlice   `json:"bucketDistribution"`
	VintageAnalysis    []VintageCohort `json:"vintageAnalysis"`
	RiskIndicators     RiskIndicators  `json:"riskIndicators"`
}

type Defaulter struct {
	LoanAccountNumber string  `json:"loanAccountNumber"`
	CustomerName      string  `json:"customerName"`
	CustomerType      string  `json:"customerType"`
	BranchName        string  `json:"branchName"`
	LoanAmount        float64 `json:"loanAmount"`
	OverdueAmount     float64 `json:"overdueAmount"`
	OverdueDays       int     `json:"overdueDays"`
	RiskCategory      string  `json:"riskCategory"`
}

// AnalyzeRisk combines the bucket distribution, vintage cohorts and the
// headline risk indicators. now anchors the new-loan window so the
// function stays deterministic under test.
func AnalyzeRisk(loans []portfolio.LoanAccount, now time.Time) RiskAnalysis {
	dist := DelinquencyDistribution(loans)

	var highDPD float64
	for _, b := range dist {
		switch b.Bucket {
		case "91-180", "181-360", ">360":
			highDPD += b.Percentage
		}
	}

	newLoanCutoff := now.UTC().AddDate(0, 0, -newLoanWindowDays)
	newLoans, defaultedNew, writeOffs := 0, 0, 0
	for i := range loans {
		l := &loans[i]
		if !l.DisbursementDate.Before(newLoanCutoff) {
			newLoans++
			if l.OverdueAmount > 0 {
				defaultedNew++
			}
		}
		if l.OverdueDays > writeOffDPD {
			writeOffs++
		}
	}

	return RiskAnalysis{
		BucketDistribution: dist,
		VintageAnalysis:    VintageAnalysis(loans),
		RiskIndicators: RiskIndicators{
			HighDPDConcentration: highDPD,
			NewLoanDefaultRate:   ratio(float64(defaultedNew), float64(newLoans)),
			WriteOffCandidates:   writeOffs,
		},
	}
}

// TopDefaulters lists the overdue loans with the largest overdue amounts.
func TopDefaulters(loans []portfolio.LoanAccount, limit int) []Defaulter {
	if limit <= 0 {
		limit = topDefaulterLimit
	}
	overdue := make([]portfolio.LoanAccount, 0, len(loans))
	for _, l := range loans {
		if l.OverdueAmount > 0 {
			overdue = append(overdue, l)
		}
	}
	sort.SliceStable(overdue, func(i, j int) bool { return overdue[i].OverdueAmount > overdue[j].OverdueAmount })
	if len(overdue) > limit {
		overdue = overdue[:limit]
	}

	out := make([]Defaulter, len(overdue))
	for i := range overdue {
		l := &overdue[i]
		d := Defaulter{
			LoanAccountNumber: l.LoanAccountNumber,
			CustomerName:      "Unknown",
			CustomerType:      "Unknown",
			BranchName:        "Unknown",
			RiskCategory:      "Unknown",
			LoanAmount:        l.LoanAmount,
			OverdueAmount:     l.OverdueAmount,
			OverdueDays:       l.OverdueDays,
		}
		if l.Customer != nil {
			if l.Customer.FullName != "" {
				d.CustomerName = l.Customer.FullName
			}
			if l.Customer.CustomerType != "" {
				d.CustomerType = string(l.Customer.CustomerType)
			}
			if l.Customer.RiskCategory != "" {
				d.RiskCategory = l.Customer.RiskCategory
			}
			if l.Customer.Branch != nil && l.Customer.Branch.BranchName != "" {
				d.BranchName = l.Customer.Branch.BranchName
			}
		}
		out[i] = d
	}
	return out
}
