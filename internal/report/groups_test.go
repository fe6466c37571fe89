package report

import (
	"testing"

	"kastle-collection-reports/internal/domain/portfolio"
)

func loanWith(productType string, branch *portfolio.Branch, customerType portfolio.CustomerType, risk string, amount, overdue float64, dpd int) portfolio.LoanAccount {
	l := portfolio.LoanAccount{
		LoanAmount:    amount,
		OverdueAmount: overdue,
		OverdueDays:   dpd,
		Customer: &portfolio.Customer{
			CustomerType: customerType,
			RiskCategory: risk,
		},
	}
	if productType != "" {
		l.Product = &portfolio.Product{ProductType: productType, ProductName: productType + " Loan"}
	}
	if branch != nil {
		l.Customer.OnboardingBranch = branch.BranchID
		l.Customer.Branch = branch
	}
	return l
}

func TestProductPerformance(t *testing.T) {
	loans := []portfolio.LoanAccount{
		loanWith("Tawarruq", nil, portfolio.CustomerIndividual, "Low", 1000, 100, 40),
		loanWith("Tawarruq", nil, portfolio.CustomerIndividual, "Low", 1000, 0, 0),
		loanWith("Cash", nil, portfolio.CustomerCorporate, "High", 2000, 0, 0),
		{LoanAmount: 500}, // missing product join
	}

	groups := ProductPerformance(loans)
	if len(groups) != 3 {
		t.Fatalf("groups=%d", len(groups))
	}

	byType := make(map[string]ProductGroup)
	for _, g := range groups {
		byType[g.ProductType] = g
	}

	taw := byType["Tawarruq"]
	if taw.TotalLoans != 2 || taw.OverdueLoans != 1 {
		t.Fatalf("tawarruq: %+v", taw)
	}
	approx(t, taw.DelinquencyRate, 100.0/2000*100, "tawarruq delinquencyRate")
	approx(t, taw.PortfolioShare, 50, "tawarruq portfolioShare")
	approx(t, taw.AvgDPD, 40, "tawarruq avgDPD")

	if _, ok := byType["Unknown"]; !ok {
		t.Fatalf("missing Unknown group: %+v", byType)
	}
}

func TestBranchPerformance_SortedByPortfolio(t *testing.T) {
	riyadh := &portfolio.Branch{BranchID: "BR001", BranchName: "Riyadh Main", City: "Riyadh", State: "Central"}
	jeddah := &portfolio.Branch{BranchID: "BR002", BranchName: "Jeddah", City: "Jeddah", State: "Western"}
	loans := []portfolio.LoanAccount{
		loanWith("Cash", riyadh, portfolio.CustomerIndividual, "Low", 100, 0, 0),
		loanWith("Cash", jeddah, portfolio.CustomerIndividual, "Low", 900, 90, 12),
		{LoanAmount: 50}, // orphan, no customer join
	}

	groups := BranchPerformance(loans)
	if len(groups) != 3 {
		t.Fatalf("groups=%d", len(groups))
	}
	if groups[0].BranchID != "BR002" {
		t.Fatalf("largest portfolio first, got %s", groups[0].BranchID)
	}
	if groups[0].Region != "Western" {
		t.Fatalf("region=%q", groups[0].Region)
	}

	var orphan *BranchGroup
	for i := range groups {
		if groups[i].BranchID == "unknown" {
			orphan = &groups[i]
		}
	}
	if orphan == nil || orphan.BranchName != "Unknown Branch" {
		t.Fatalf("orphan group: %+v", orphan)
	}
}

func TestAnalyzeCustomers(t *testing.T) {
	loans := []portfolio.LoanAccount{
		loanWith("", nil, portfolio.CustomerIndividual, "Low", 100, 0, 0),
		loanWith("", nil, portfolio.CustomerCorporate, "High", 400, 200, 90),
		{LoanAmount: 100}, // defaults to INDIVIDUAL / Medium
	}

	out := AnalyzeCustomers(loans)
	byType := make(map[string]CustomerTypeGroup)
	for _, g := range out.ByCustomerType {
		byType[g.CustomerType] = g
	}
	if byType["INDIVIDUAL"].TotalLoans != 2 {
		t.Fatalf("individual: %+v", byType["INDIVIDUAL"])
	}
	corp := byType["CORPORATE"]
	approx(t, corp.DelinquencyRate, 200.0/400*100, "corporate delinquencyRate")

	byRisk := make(map[string]RiskCategoryGroup)
	for _, g := range out.ByRiskCategory {
		byRisk[g.Category] = g
	}
	if byRisk["Medium"].TotalLoans != 1 || byRisk["High"].TotalLoans != 1 {
		t.Fatalf("risk groups: %+v", out.ByRiskCategory)
	}
}

func TestGroups_EmptyInput(t *testing.T) {
	if got := ProductPerformance(nil); len(got) != 0 {
		t.Fatalf("products: %+v", got)
	}
	if got := BranchPerformance(nil); len(got) != 0 {
		t.Fatalf("branches: %+v", got)
	}
	out := AnalyzeCustomers(nil)
	if len(out.ByCustomerType) != 0 || len(out.ByRiskCategory) != 0 {
		t.Fatalf("customers: %+v", out)
	}
}
