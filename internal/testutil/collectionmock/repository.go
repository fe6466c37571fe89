package collectionmock

import (
	"context"
	"time"

	domain "kastle-collection-reports/internal/domain/collection"
)

// Repo is a function-backed mock that satisfies collection.Repository.
// Unset methods behave as "no rows".
type Repo struct {
	ListCasesByLoanAccountsFn    func(ctx context.Context, loanAccountNumbers []string) ([]domain.Case, error)
	ListInteractionsFn           func(ctx context.Context, caseIDs []uint64, since time.Time) ([]domain.Interaction, error)
	ListPromisesFn               func(ctx context.Context, caseIDs []uint64) ([]domain.PromiseToPay, error)
	ListActiveOfficersByBranchFn func(ctx context.Context, branchID string) ([]domain.Officer, error)
	ListActiveCasesByOfficerFn   func(ctx context.Context, officerID string) ([]domain.Case, error)
}

func (m *Repo) ListCasesByLoanAccounts(ctx context.Context, loanAccountNumbers []string) ([]domain.Case, error) {
	if m.ListCasesByLoanAccountsFn != nil {
		return m.ListCasesByLoanAccountsFn(ctx, loanAccountNumbers)
	}
	return nil, nil
}

func (m *Repo) ListInteractions(ctx context.Context, caseIDs []uint64, since time.Time) ([]domain.Interaction, error) {
	if m.ListInteractionsFn != nil {
		return m.ListInteractionsFn(ctx, caseIDs, since)
	}
	return nil, nil
}

func (m *Repo) ListPromises(ctx context.Context, caseIDs []uint64) ([]domain.PromiseToPay, error) {
	if m.ListPromisesFn != nil {
		return m.ListPromisesFn(ctx, caseIDs)
	}
	return nil, nil
}

func (m *Repo) ListActiveOfficersByBranch(ctx context.Context, branchID string) ([]domain.Officer, error) {
	if m.ListActiveOfficersByBranchFn != nil {
		return m.ListActiveOfficersByBranchFn(ctx, branchID)
	}
	return nil, nil
}

func (m *Repo) ListActiveCasesByOfficer(ctx context.Context, officerID string) ([]domain.Case, error) {
	if m.ListActiveCasesByOfficerFn != nil {
		return m.ListActiveCasesByOfficerFn(ctx, officerID)
	}
	return nil, nil
}
