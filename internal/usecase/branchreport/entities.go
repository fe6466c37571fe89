package branchreport

import (
	"kastle-collection-reports/internal/domain/portfolio"
	"kastle-collection-reports/internal/report"
)

// Payload is the branch report returned to the presentation layer. The
// fan-out sections are pointers/slices left nil when their fetch failed;
// the report as a whole still succeeds (graceful degradation).
type Payload struct {
	Branch                  *portfolio.Branch          `json:"branch"`
	Summary                 report.Summary             `json:"summary"`
	OfficerPerformance      *report.OfficerPerformance `json:"officerPerformance"`
	BranchComparison        *report.Comparison         `json:"branchComparison"`
	CommunicationStats      *report.CommunicationStats `json:"communicationStats"`
	ProductPerformance      []report.ProductGroup      `json:"productPerformance"`
	DelinquencyDistribution []report.BucketSlice       `json:"delinquencyDistribution"`
	Trends                  []report.TrendPoint        `json:"trends"`
}
