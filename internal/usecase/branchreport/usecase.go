package branchreport

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

	// Now is the report clock; overridable in tests.
	Now func() time.Time
}

func NewUsecase(p portfolio.Repository, c collection.Repository, log *logrus.Logger) *Usecase {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Usecase{portfolio: p, collection: c, log: log, Now: time.Now}
}

// Get assembles the full branch report. Only the dimension resolve and the
// primary loan/case fetch can fail the report; every fan-out section
// degrades to nil on its own failure.
func (u *Usecase) Get(ctx context.Context, branchID string, f report.Filters) (*Payload, error) {
	branch, err := u.portfolio.GetBranch(ctx, branchID)
	switch {
	case err == nil:
	case errors.Is(err, portfolio.ErrNotFound):
		// Degraded-output policy: an unknown branch id still yields a
		// report, under a placeholder dimension record.
		branch = &portfolio.Branch{BranchID: branchID, BranchName: "Unknown Branch"}
	default:
		return nil, fmt.Errorf("resolve branch %s: %w", branchID, err)
	}

	loans, err := u.portfolio.ListLoansByBranch(ctx, branchID)
	if err != nil {
		return nil, fmt.Errorf("fetch loans for branch %s: %w", branchID, err)
	}
	loans = report.ApplyFilters(loans, f)

	cases, err := u.fetchCases(ctx, loans)
	if err != nil {
		return nil, fmt.Errorf("fetch cases for branch %s: %w", branchID, err)
	}

	now := u.Now()
	p := &Payload{
		Branch:                  branch,
		Summary:                 report.ComputeMetrics(loans, cases),
		ProductPerformance:      report.ProductPerformance(loans),
		DelinquencyDistribution: report.DelinquencyDistribution(loans),
		Trends:                  report.ComputeTrends(loans, cases, now),
	}

	var wg sync.WaitGroup
	if f.Comparison {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cmp, err := u.compareBranches(ctx, branchID, p.Summary)
			if err != nil {
				u.log.WithError(err).WithField("branch_id", branchID).Warn("branch comparison unavailable")
				return
			}
			p.BranchComparison = cmp
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		stats, err := u.communicationStats(ctx, cases, f.DateRange.Start(now))
		if err != nil {
			u.log.WithError(err).WithField("branch_id", branchID).Warn("communication stats unavailable")
			return
		}
		p.CommunicationStats = stats
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		perf, err := u.officerPerformance(ctx, branchID)
		if err != nil {
			u.log.WithError(err).WithField("branch_id", branchID).Warn("officer performance unavailable")
			return
		}
		p.OfficerPerformance = perf
	}()

	wg.Wait()
	return p, nil
}

// fetchCases pulls the case rows for the loan population and enriches them
// with their promises; promise outcomes feed the summary's collection rate,
// so this counts as part of the primary fetch.
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

// compareBranches computes real metrics for every branch from one
// all-branches loan/case sweep, then overrides the target's entry with the
// filtered summary the rest of the report is built on.
func (u *Usecase) compareBranches(ctx context.Context, branchID string, target report.Summary) (*report.Comparison, error) {
	branches, err := u.portfolio.ListBranches(ctx)
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

	loansByBranch := make(map[string][]portfolio.LoanAccount)
	branchByLoan := make(map[string]string, len(allLoans))
	for _, l := range allLoans {
		id := l.BranchID()
		loansByBranch[id] = append(loansByBranch[id], l)
		branchByLoan[l.LoanAccountNumber] = id
	}
	casesByBranch := make(map[string][]collection.Case)
	for _, c := range allCases {
		id := branchByLoan[c.LoanAccountNumber]
		casesByBranch[id] = append(casesByBranch[id], c)
	}

	peers := make([]report.PeerMetric, 0, len(branches))
	for _, b := range branches {
		s := report.ComputeMetrics(loansByBranch[b.BranchID], casesByBranch[b.BranchID])
		if b.BranchID == branchID {
			s = target
		}
		peers = append(peers, report.PeerMetric{
			EntityID:        b.BranchID,
			EntityName:      b.BranchName,
			DelinquencyRate: s.DelinquencyRate,
			CollectionRate:  s.CollectionRate,
			PortfolioSize:   s.TotalPortfolio,
			OverdueAmount:   s.TotalOverdue,
		})
	}

	cmp := report.Rank(branchID, peers)
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

func (u *Usecase) officerPerformance(ctx context.Context, branchID string) (*report.OfficerPerformance, error) {
	officers, err := u.collection.ListActiveOfficersByBranch(ctx, branchID)
	if err != nil {
		return nil, err
	}

	stats := make([]report.OfficerStats, 0, len(officers))
	for _, officer := range officers {
		officerCases, err := u.collection.ListActiveCasesByOfficer(ctx, officer.OfficerID)
		if err != nil {
			return nil, err
		}
		if len(officerCases) > 0 {
			ids := caseIDs(officerCases)
			interactions, err := u.collection.ListInteractions(ctx, ids, time.Time{})
			if err != nil {
				return nil, err
			}
			promises, err := u.collection.ListPromises(ctx, ids)
			if err != nil {
				return nil, err
			}
			officerCases = collection.Enrich(officerCases, interactions, promises)
		}
		stats = append(stats, report.ComputeOfficerStats(officer, officerCases))
	}

	perf := report.RankOfficers(stats)
	return &perf, nil
}

func caseIDs(cases []collection.Case) []uint64 {
	ids := make([]uint64, len(cases))
	for i := range cases {
		ids[i] = cases[i].CaseID
	}
	return ids
}
