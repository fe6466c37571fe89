package portfoliomock

import (
	"context"

	domain "kastle-collection-reports/internal/domain/portfolio"
)

// Repo is a function-backed mock that satisfies portfolio.Repository.
// Unset methods return ErrNotFound / empty sets.
type Repo struct {
	ListBranchesFn       func(ctx context.Context) ([]domain.Branch, error)
	GetBranchFn          func(ctx context.Context, branchID string) (*domain.Branch, error)
	ListProductsFn       func(ctx context.Context) ([]domain.Product, error)
	GetProductFn         func(ctx context.Context, productID string) (*domain.Product, error)
	ListLoansByBranchFn  func(ctx context.Context, branchID string) ([]domain.LoanAccount, error)
	ListLoansByProductFn func(ctx context.Context, productID string) ([]domain.LoanAccount, error)
	ListLoansFn          func(ctx context.Context) ([]domain.LoanAccount, error)
}

func (m *Repo) ListBranches(ctx context.Context) ([]domain.Branch, error) {
	if m.ListBranchesFn != nil {
		return m.ListBranchesFn(ctx)
	}
	return nil, nil
}

func (m *Repo) GetBranch(ctx context.Context, branchID string) (*domain.Branch, error) {
	if m.GetBranchFn != nil {
		return m.GetBranchFn(ctx, branchID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) ListProducts(ctx context.Context) ([]domain.Product, error) {
	if m.ListProductsFn != nil {
		return m.ListProductsFn(ctx)
	}
	return nil, nil
}

func (m *Repo) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	if m.GetProductFn != nil {
		return m.GetProductFn(ctx, productID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) ListLoansByBranch(ctx context.Context, branchID string) ([]domain.LoanAccount, error) {
	if m.ListLoansByBranchFn != nil {
		return m.ListLoansByBranchFn(ctx, branchID)
	}
	return nil, nil
}

func (m *Repo) ListLoansByProduct(ctx context.Context, productID string) ([]domain.LoanAccount, error) {
	if m.ListLoansByProductFn != nil {
		return m.ListLoansByProductFn(ctx, productID)
	}
	return nil, nil
}

func (m *Repo) ListLoans(ctx context.Context) ([]domain.LoanAccount, error) {
	if m.ListLoansFn != nil {
		return m.ListLoansFn(ctx)
	}
	return nil, nil
}
