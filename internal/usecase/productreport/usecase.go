package productreport

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"kastle-collection-reports/internal/domain/collection"
	"kastle-collection-reports/internal/domain/portfolio"
	"kastle-collection-reports/internal/report"
)

type Usecase struct {
	portfolio  portfolio.Repository
	collection collection.Repository
	log        *logrus.Logger

	Now func() time.Time
}

func NewUsecase(p portfolio.Repository, c collection.Repository, log *logrus.Logger) *Usecase {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Usecase{portfolio: p, collection: c, log: log, Now: time.Now}
}

// Get assembles the product report: resolve dimension, primary loan/case
// fetch, pure aggregation, then the degradable fan-out arms.
func (u *Usecase) Get(ctx context.Context, productID string, f report.Filters) (*Payload, error) {
	product, err := u.portfolio.GetProduct(ctx, productID)
	switch {
	case err == nil:
	case errors.Is(err, portfolio.ErrNotFound):
		product = &portfolio.Product{ProductID: productID, ProductName: "Unknown Product"}
	default:
		return nil, fmt.Errorf("resolve product %s: %w", productID, err)
	}

	loans, err := u.portfolio.ListLoansByProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("fetch loans for product %s: %w", productID, err)
	}
	loans = report.ApplyFilters(loans, f)

	cases, err := u.fetchCases(ctx, loans)
	if err != nil {
		return nil, fmt.Errorf("fetch cases for product %s: %w", productID, err)
	}

	now := u.Now()
	analysis := report.AnalyzeCustomers(loans)
	risk := report.AnalyzeRisk(loans, now)
	p := &Payload{
		Product:                 product,
		Summary:                 report.ComputeMetrics(loans, cases),
		BranchPerformance:       report.BranchPerformance(loans),
		CustomerAnalysis:        &analysis,
		RiskAnalysis:            &risk,
		DelinquencyDistribution: risk.BucketDistribution,
		Trends:                  report.ComputeTrends(loans, cases, now),
		TopDefaulters:           report.TopDefaulters(loans, 10),
	}

	var wg sync.WaitGroup
	if f.Comparison {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cmp, err := u.compareProducts(ctx, productID, p.Summary)
			if err != nil {
				u.log.WithError(err).WithField("product_id", productID).Warn("product comparison unavailable")
				return
			}
			p.ProductComparison = cmp
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		stats, err := u.communicationStats(ctx, cases, f.DateRange.Start(now))
		if err != nil {
			u.log.WithError(err).WithField("product_id", productID).Warn("communication stats unavailable")
			return
		}
		p.CommunicationStats = stats
	}()

	wg.Wait()
	return p, nil
}

func (u *Usecase) fetchCases(ctx context.Context, loans []portfolio.LoanAccount) ([]collection.Case, error) {
	if len(loans) == 0 {
		return nil, nil
	}
	numbers := make([]string, len(loans))
	for i := range loans {
		numbers[i] = loans[i].LoanAccountNumber
	}
	cases, err := u.collection.ListCasesByLoanAccounts(ctx, numbers)
	if err != nil {
		return nil, err
	}
	if len(cases) == 0 {
		return cases, nil
	}
	promises, err := u.collection.ListPromises(ctx, caseIDs(cases))
	if err != nil {
		return nil, err
	}
	return collection.Enrich(cases, nil, promises), nil
}

// compareProducts mirrors the branch comparison: one all-products sweep,
// real metrics per peer, target entry pinned to the filtered summary.
func (u *Usecase) compareProducts(ctx context.Context, productID string, target report.Summary) (*report.Comparison, error) {
	products, err := u.portfolio.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	allLoans, err := u.portfolio.ListLoans(ctx)
	if err != nil {
		return nil, err
	}
	allCases, err := u.fetchCases(ctx, allLoans)
	if err != nil {
		return nil, err
	}

	loansByProduct := make(map[string][]portfolio.LoanAccount)
	productByLoan := make(map[string]string, len(allLoans))
	for _, l := range allLoans {
		loansByProduct[l.ProductID] = append(loansByProduct[l.ProductID], l)
		productByLoan[l.LoanAccountNumber] = l.ProductID
	}
	casesByProduct := make(map[string][]collection.Case)
	for _, c := range allCases {
		id := productByLoan[c.LoanAccountNumber]
		casesByProduct[id] = append(casesByProduct[id], c)
	}

	peers := make([]report.PeerMetric, 0, len(products))
	for _, prod := range products {
		s := report.ComputeMetrics(loansByProduct[prod.ProductID], casesByProduct[prod.ProductID])
		if prod.ProductID == productID {
			s = target
		}
		peers = append(peers, report.PeerMetric{
			EntityID:        prod.ProductID,
			EntityName:      prod.ProductName,
			DelinquencyRate: s.DelinquencyRate,
			CollectionRate:  s.CollectionRate,
			PortfolioSize:   s.TotalPortfolio,
			OverdueAmount:   s.TotalOverdue,
		})
	}

	cmp := report.Rank(productID, peers)
	return &cmp, nil
}

func (u *Usecase) communicationStats(ctx context.Context, cases []collection.Case, since time.Time) (*report.CommunicationStats, error) {
	var interactions []collection.Interaction
	if len(cases) > 0 {
		var err error
		interactions, err = u.collection.ListInteractions(ctx, caseIDs(cases), since)
		if err != nil {
			return nil, err
		}
	}
	stats := report.ComputeCommunicationStats(interactions, len(cases))
	return &stats, nil
}

func caseIDs(cases []collection.Case) []uint64 {
	ids := make([]uint64, len(cases))
	for i := range cases {
		ids[i] = cases[i].CaseID
	}
	return ids
}
