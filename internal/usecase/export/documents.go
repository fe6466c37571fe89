package export

import (
	"kastle-collection-reports/internal/report"
	"kastle-collection-reports/internal/usecase/branchreport"
	"kastle-collection-reports/internal/usecase/productreport"
)

func summaryTable(s report.Summary) Table {
	return Table{
		Name:   "Summary",
		Header: []string{"metric", "value"},
		Rows: [][]any{
			{"totalLoans", s.TotalLoans},
			{"totalPortfolio", s.TotalPortfolio},
			{"totalOutstanding", s.TotalOutstanding},
			{"overdueLoans", s.OverdueLoans},
			{"totalOverdue", s.TotalOverdue},
			{"delinquencyRate", s.DelinquencyRate},
			{"collectionRate", s.CollectionRate},
			{"activeCases", s.ActiveCases},
			{"avgDPD", s.AvgDPD},
			{"portfolioAtRisk", s.PortfolioAtRisk},
			{"avgLoanSize", s.AvgLoanSize},
		},
	}
}

func distributionTable(dist []report.BucketSlice) Table {
	t := Table{
		Name:   "Delinquency Distribution",
		Header: []string{"bucket", "count", "amount", "percentage"},
	}
	for _, b := range dist {
		t.Rows = append(t.Rows, []any{b.Bucket, b.Count, b.Amount, b.Percentage})
	}
	return t
}

func trendsTable(points []report.TrendPoint) Table {
	t := Table{
		Name:   "Trends",
		Header: []string{"month", "delinquencyRate", "collectionRate", "newCases", "resolvedCases"},
	}
	for _, p := range points {
		t.Rows = append(t.Rows, []any{p.Month, p.DelinquencyRate, p.CollectionRate, p.NewCases, p.ResolvedCases})
	}
	return t
}

// BranchDocument flattens a branch report payload for rendering.
func BranchDocument(p *branchreport.Payload) Document {
	doc := Document{Title: "Branch Report - " + p.Branch.BranchName}
	doc.Tables = append(doc.Tables, summaryTable(p.Summary), distributionTable(p.DelinquencyDistribution))

	products := Table{
		Name:   "Product Performance",
		Header: []string{"productType", "totalLoans", "totalAmount", "overdueAmount", "delinquencyRate", "portfolioShare"},
	}
	for _, g := range p.ProductPerformance {
		products.Rows = append(products.Rows, []any{g.ProductType, g.TotalLoans, g.TotalAmount, g.OverdueAmount, g.DelinquencyRate, g.PortfolioShare})
	}
	doc.Tables = append(doc.Tables, products)

	if p.OfficerPerformance != nil {
		officers := Table{
			Name:   "Officer Performance",
			Header: []string{"officerId", "officerName", "totalCases", "totalCalls", "totalPTPs", "keptPTPs", "performance"},
		}
		for _, o := range p.OfficerPerformance.Officers {
			officers.Rows = append(officers.Rows, []any{o.OfficerID, o.OfficerName, o.TotalCases, o.TotalCalls, o.TotalPTPs, o.KeptPTPs, o.Performance})
		}
		doc.Tables = append(doc.Tables, officers)
	}
	doc.Tables = append(doc.Tables, trendsTable(p.Trends))
	return doc
}

// ProductDocument flattens a product report payload for rendering.
func ProductDocument(p *productreport.Payload) Document {
	doc := Document{Title: "Product Report - " + p.Product.ProductName}
	doc.Tables = append(doc.Tables, summaryTable(p.Summary), distributionTable(p.DelinquencyDistribution))

	branches := Table{
		Name:   "Branch Performance",
		Header: []string{"branchId", "branchName", "totalLoans", "totalAmount", "overdueAmount", "delinquencyRate"},
	}
	for _, g := range p.BranchPerformance {
		branches.Rows = append(branches.Rows, []any{g.BranchID, g.BranchName, g.TotalLoans, g.TotalAmount, g.OverdueAmount, g.DelinquencyRate})
	}
	doc.Tables = append(doc.Tables, branches)

	defaulters := Table{
		Name:   "Top Defaulters",
		Header: []string{"loanAccountNumber", "customerName", "branchName", "overdueAmount", "overdueDays", "riskCategory"},
	}
	for _, d := range p.TopDefaulters {
		defaulters.Rows = append(defaulters.Rows, []any{d.LoanAccountNumber, d.CustomerName, d.BranchName, d.OverdueAmount, d.OverdueDays, d.RiskCategory})
	}
	doc.Tables = append(doc.Tables, defaulters, trendsTable(p.Trends))
	return doc
}
