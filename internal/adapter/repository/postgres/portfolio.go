package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "kastle-collection-reports/internal/domain/portfolio"
)

type PortfolioRepository struct{ db *gorm.DB }

func NewPortfolioRepository(db *gorm.DB) *PortfolioRepository { return &PortfolioRepository{db: db} }

func (r *PortfolioRepository) ListBranches(ctx context.Context) ([]domain.Branch, error) {
	var out []domain.Branch
	res := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("branch_name").
		Find(&out)
	return out, res.Error
}

func (r *PortfolioRepository) GetBranch(ctx context.Context, branchID string) (*domain.Branch, error) {
	var out domain.Branch
	res := r.db.WithContext(ctx).Where("branch_id = ?", branchID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if res.Error != nil {
		return nil, res.Error
	}
	return &out, nil
}

func (r *PortfolioRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var out []domain.Product
	res := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("product_name").
		Find(&out)
	return out, res.Error
}

func (r *PortfolioRepository) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	var out domain.Product
	res := r.db.WithContext(ctx).Where("product_id = ?", productID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if res.Error != nil {
		return nil, res.Error
	}
	return &out, nil
}

// loanQuery preloads the dimension joins every aggregation walks.
func (r *PortfolioRepository) loanQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&domain.LoanAccount{}).
		Preload("Customer").
		Preload("Customer.Branch").
		Preload("Product")
}

func (r *PortfolioRepository) ListLoansByBranch(ctx context.Context, branchID string) ([]domain.LoanAccount, error) {
	var out []domain.LoanAccount
	res := r.loanQuery(ctx).
		Joins("JOIN customers ON customers.customer_id = loan_accounts.customer_id").
		Where("customers.onboarding_branch = ?", branchID).
		Find(&out)
	return out, res.Error
}

func (r *PortfolioRepository) ListLoansByProduct(ctx context.Context, productID string) ([]domain.LoanAccount, error) {
	var out []domain.LoanAccount
	res := r.loanQuery(ctx).
		Where("loan_accounts.product_id = ?", productID).
		Find(&out)
	return out, res.Error
}

func (r *PortfolioRepository) ListLoans(ctx context.Context) ([]domain.LoanAccount, error) {
	var out []domain.LoanAccount
	res := r.loanQuery(ctx).Find(&out)
	return out, res.Error
}
