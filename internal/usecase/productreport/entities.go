package productreport

import (
	"kastle-collection-reports/internal/domain/portfolio"
	"kastle-collection-reports/internal/report"
)

// Payload is the product report. Same degradation contract as the branch
// report: fan-out sections are nil when their fetch failed.
type Payload struct {
	Product                 *portfolio.Product         `json:"product"`
	Summary                 report.Summary             `json:"summary"`
	BranchPerformance       []report.BranchGroup       `json:"branchPerformance"`
	CustomerAnalysis        *report.CustomerAnalysis   `json:"customerAnalysis"`
	ProductComparison       *report.Comparison         `json:"productComparison"`
	CommunicationStats      *report.CommunicationStats `json:"communicationStats"`
	RiskAnalysis            *report.RiskAnalysis       `json:"riskAnalysis"`
	DelinquencyDistribution []report.BucketSlice       `json:"delinquencyDistribution"`
	Trends                  []report.TrendPoint        `json:"trends"`
	TopDefaulters           []report.Defaulter         `json:"topDefaulters"`
}
