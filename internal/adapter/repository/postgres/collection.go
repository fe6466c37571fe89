package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "kastle-collection-reports/internal/domain/collection"
)

type CollectionRepository struct{ db *gorm.DB }

func NewCollectionRepository(db *gorm.DB) *CollectionRepository {
	return &CollectionRepository{db: db}
}

func (r *CollectionRepository) ListCasesByLoanAccounts(ctx context.Context, loanAccountNumbers []string) ([]domain.Case, error) {
	if len(loanAccountNumbers) == 0 {
		return nil, nil
	}
	var out []domain.Case
	res := r.db.WithContext(ctx).
		Where("loan_account_number IN ?", loanAccountNumbers).
		Find(&out)
	return out, res.Error
}

func (r *CollectionRepository) ListInteractions(ctx context.Context, caseIDs []uint64, since time.Time) ([]domain.Interaction, error) {
	if len(caseIDs) == 0 {
		return nil, nil
	}
	q := r.db.WithContext(ctx).Where("case_id IN ?", caseIDs)
	if !since.IsZero() {
		q = q.Where("interaction_datetime >= ?", since)
	}
	var out []domain.Interaction
	res := q.Find(&out)
	return out, res.Error
}

func (r *CollectionRepository) ListPromises(ctx context.Context, caseIDs []uint64) ([]domain.PromiseToPay, error) {
	if len(caseIDs) == 0 {
		return nil, nil
	}
	var out []domain.PromiseToPay
	res := r.db.WithContext(ctx).Where("case_id IN ?", caseIDs).Find(&out)
	return out, res.Error
}

func (r *CollectionRepository) ListActiveOfficersByBranch(ctx context.Context, branchID string) ([]domain.Officer, error) {
	var out []domain.Officer
	res := r.db.WithContext(ctx).
		Where("branch_id = ? AND status = ?", branchID, "ACTIVE").
		Order("officer_name").
		Find(&out)
	return out, res.Error
}

func (r *CollectionRepository) ListActiveCasesByOfficer(ctx context.Context, officerID string) ([]domain.Case, error) {
	var out []domain.Case
	res := r.db.WithContext(ctx).
		Where("assigned_to = ? AND case_status = ?", officerID, domain.CaseActive).
		Find(&out)
	return out, res.Error
}
