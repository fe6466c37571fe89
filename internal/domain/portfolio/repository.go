package portfolio

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("portfolio: not found")

// Repository reads dimension and loan snapshot rows. Implementations return
// empty slices (never an error) when no rows match; errors mean the data
// layer itself failed.
type Repository interface {
	ListBranches(ctx context.Context) ([]Branch, error)
	GetBranch(ctx context.Context, branchID string) (*Branch, error)
	ListProducts(ctx context.Context) ([]Product, error)
	GetProduct(ctx context.Context, productID string) (*Product, error)

	// Loan fetches preload the Customer (with Branch) and Product joins.
	ListLoansByBranch(ctx context.Context, branchID string) ([]LoanAccount, error)
	ListLoansByProduct(ctx context.Context, productID string) ([]LoanAccount, error)
	ListLoans(ctx context.Context) ([]LoanAccount, error)
}
