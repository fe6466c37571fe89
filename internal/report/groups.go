package report

import (
	"sort"

	"kastle-collection-reports/internal/domain/portfolio"
)

// GroupStat is the shared reduce-by-key shape behind every breakdown
// (product type, branch, customer type, risk category).
type GroupStat struct {
	Key             string  `json:"-"`
	TotalLoans      int     `json:"totalLoans"`
	TotalAmount     float64 `json:"totalAmount"`
	OverdueLoans    int     `json:"overdueLoans"`
	OverdueAmount   float64 `json:"overdueAmount"`
	AvgDPD          float64 `json:"avgDPD"`
	DelinquencyRate float64 `json:"delinquencyRate"`
	PortfolioShare  float64 `json:"portfolioShare"`

	dpdSum float64
}

type groupAccumulator struct {
	byKey map[string]*GroupStat
	order []string
	total int
}

func newGroupAccumulator() *groupAccumulator {
	return &groupAccumulator{byKey: make(map[string]*GroupStat)}
}

func (g *groupAccumulator) add(key string, l *portfolio.LoanAccount) *GroupStat {
	st := g.byKey[key]
	if st == nil {
		st = &GroupStat{Key: key}
		g.byKey[key] = st
		g.order = append(g.order, key)
	}
	g.total++
	st.TotalLoans++
	st.TotalAmount += l.LoanAmount
	if l.OverdueAmount > 0 {
		st.OverdueLoans++
		st.OverdueAmount += l.OverdueAmount
		st.dpdSum += float64(l.OverdueDays)
	}
	return st
}

// finish computes the derived rates; groups come back in first-seen order.
func (g *groupAccumulator) finish() []GroupStat {
	out := make([]GroupStat, 0, len(g.order))
	for _, key := range g.order {
		st := g.byKey[key]
		if st.OverdueLoans > 0 {
			st.AvgDPD = st.dpdSum / float64(st.OverdueLoans)
		}
		st.DelinquencyRate = ratio(st.OverdueAmount, st.TotalAmount)
		if g.total > 0 {
			st.PortfolioShare = float64(st.TotalLoans) / float64(g.total) * 100
		}
		out = append(out, *st)
	}
	return out
}

type ProductGroup struct {
	ProductName string `json:"productName"`
	ProductType string `json:"productType"`
	GroupStat
}

// ProductPerformance breaks the loan set down by product type.
func ProductPerformance(loans []portfolio.LoanAccount) []ProductGroup {
	acc := newGroupAccumulator()
	names := make(map[string]string)
	for i := range loans {
		l := &loans[i]
		productType, productName := "Unknown", "Unknown"
		if l.Product != nil {
			if l.Product.ProductType != "" {
				productType = l.Product.ProductType
			}
			if l.Product.ProductName != "" {
				productName = l.Product.ProductName
			}
		}
		acc.add(productType, l)
		if _, ok := names[productType]; !ok {
			names[productType] = productName
		}
	}

	stats := acc.finish()
	out := make([]ProductGroup, len(stats))
	for i, st := range stats {
		out[i] = ProductGroup{ProductName: names[st.Key], ProductType: st.Key, GroupStat: st}
	}
	return out
}

type BranchGroup struct {
	BranchID   string `json:"branchId"`
	BranchName string `json:"branchName"`
	City       string `json:"city"`
	Region     string `json:"region"`
	GroupStat
}

// BranchPerformance breaks the loan set down by the customer's onboarding
// branch, largest portfolio first.
func BranchPerformance(loans []portfolio.LoanAccount) []BranchGroup {
	acc := newGroupAccumulator()
	dims := make(map[string]portfolio.Branch)
	for i := range loans {
		l := &loans[i]
		branchID := l.BranchID()
		if branchID == "" {
			branchID = "unknown"
		}
		acc.add(branchID, l)
		if _, ok := dims[branchID]; !ok {
			b := portfolio.Branch{BranchID: branchID, BranchName: "Unknown Branch"}
			if l.Customer != nil && l.Customer.Branch != nil {
				b = *l.Customer.Branch
			}
			dims[branchID] = b
		}
	}

	stats := acc.finish()
	out := make([]BranchGroup, len(stats))
	for i, st := range stats {
		dim := dims[st.Key]
		out[i] = BranchGroup{
			BranchID:   dim.BranchID,
			BranchName: dim.BranchName,
			City:       dim.City,
			Region:     dim.State,
			GroupStat:  st,
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].TotalAmount > out[j].TotalAmount })
	return out
}

type CustomerTypeGroup struct {
	CustomerType string `json:"customerType"`
	GroupStat
}

type RiskCategoryGroup struct {
	Category string `json:"category"`
	GroupStat
}

type CustomerAnalysis struct {
	ByCustomerType []CustomerTypeGroup `json:"byCustomerType"`
	ByRiskCategory []RiskCategoryGroup `json:"byRiskCategory"`
}

// AnalyzeCustomers segments the loan set by customer type and risk category.
// Loans with a missing customer join default to INDIVIDUAL / Medium, the
// upstream defaults for those columns.
func AnalyzeCustomers(loans []portfolio.LoanAccount) CustomerAnalysis {
	byType := newGroupAccumulator()
	byRisk := newGroupAccumulator()
	for i := range loans {
		l := &loans[i]
		customerType := string(portfolio.CustomerIndividual)
		riskCategory := "Medium"
		if l.Customer != nil {
			if l.Customer.CustomerType != "" {
				customerType = string(l.Customer.CustomerType)
			}
			if l.Customer.RiskCategory != "" {
				riskCategory = l.Customer.RiskCategory
			}
		}
		byType.add(customerType, l)
		byRisk.add(riskCategory, l)
	}

	var out CustomerAnalysis
	for _, st := range byType.finish() {
		out.ByCustomerType = append(out.ByCustomerType, CustomerTypeGroup{CustomerType: st.Key, GroupStat: st})
	}
	for _, st := range byRisk.finish() {
		out.ByRiskCategory = append(out.ByRiskCategory, RiskCategoryGroup{Category: st.Key, GroupStat: st})
	}
	return out
}
