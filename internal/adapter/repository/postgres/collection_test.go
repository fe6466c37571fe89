package postgres

import (
	"context"
	"testing"
	"time"

	"gorm.io/gorm"

	domain "kastle-collection-reports/internal/domain/collection"
)

func seedCollection(t *testing.T, db *gorm.DB) {
	t.Helper()
	resolved := time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC)
	rows := []any{
		&domain.Case{CaseID: 1, LoanAccountNumber: "L2", AssignedTo: "OFF1", CaseStatus: domain.CaseActive, TotalOutstanding: 1500, DaysPastDue: 40, CreatedAt: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)},
		&domain.Case{CaseID: 2, LoanAccountNumber: "L9", AssignedTo: "OFF1", CaseStatus: domain.CaseResolved, TotalOutstanding: 0, DaysPastDue: 0, CreatedAt: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC), ResolvedAt: &resolved},
		&domain.Case{CaseID: 3, LoanAccountNumber: "L10", AssignedTo: "OFF2", CaseStatus: domain.CaseActive, TotalOutstanding: 900, DaysPastDue: 70, CreatedAt: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)},
		&domain.Interaction{InteractionID: 1, CaseID: 1, InteractionType: domain.InteractionCall, Outcome: "Answered - PTP", InteractionDatetime: time.Date(2026, 8, 5, 9, 0, 0, 0, time.UTC)},
		&domain.Interaction{InteractionID: 2, CaseID: 1, InteractionType: domain.InteractionSMS, Outcome: "Delivered", InteractionDatetime: time.Date(2026, 6, 20, 9, 0, 0, 0, time.UTC)},
		&domain.PromiseToPay{PtpID: 1, CaseID: 1, PtpAmount: 50, PtpDate: time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC), Status: domain.PtpKept},
		&domain.Officer{OfficerID: "OFF1", OfficerName: "Fatimah", OfficerType: "Field", BranchID: "BR001", Status: "ACTIVE"},
		&domain.Officer{OfficerID: "OFF2", OfficerName: "Khalid", OfficerType: "Desk", BranchID: "BR001", Status: "INACTIVE"},
	}
	for _, row := range rows {
		if err := db.Create(row).Error; err != nil {
			t.Fatalf("seed %T: %v", row, err)
		}
	}
}

func TestCollectionRepository_CasesAndChildren(t *testing.T) {
	db := openTestDB(t)
	seedCollection(t, db)
	repo := NewCollectionRepository(db)
	ctx := context.Background()

	cases, err := repo.ListCasesByLoanAccounts(ctx, []string{"L2", "L9"})
	if err != nil || len(cases) != 2 {
		t.Fatalf("cases: %+v err=%v", cases, err)
	}

	// Empty key set must short-circuit without touching the DB.
	none, err := repo.ListCasesByLoanAccounts(ctx, nil)
	if err != nil || none != nil {
		t.Fatalf("empty input: %+v err=%v", none, err)
	}

	all, err := repo.ListInteractions(ctx, []uint64{1}, time.Time{})
	if err != nil || len(all) != 2 {
		t.Fatalf("interactions unwindowed: %+v err=%v", all, err)
	}
	recent, err := repo.ListInteractions(ctx, []uint64{1}, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC))
	if err != nil || len(recent) != 1 || recent[0].Outcome != "Answered - PTP" {
		t.Fatalf("interactions windowed: %+v err=%v", recent, err)
	}

	promises, err := repo.ListPromises(ctx, []uint64{1, 2, 3})
	if err != nil || len(promises) != 1 || promises[0].Status != domain.PtpKept {
		t.Fatalf("promises: %+v err=%v", promises, err)
	}
}

func TestCollectionRepository_Officers(t *testing.T) {
	db := openTestDB(t)
	seedCollection(t, db)
	repo := NewCollectionRepository(db)
	ctx := context.Background()

	officers, err := repo.ListActiveOfficersByBranch(ctx, "BR001")
	if err != nil {
		t.Fatalf("ListActiveOfficersByBranch: %v", err)
	}
	if len(officers) != 1 || officers[0].OfficerID != "OFF1" {
		t.Fatalf("inactive officer must be filtered: %+v", officers)
	}

	active, err := repo.ListActiveCasesByOfficer(ctx, "OFF1")
	if err != nil {
		t.Fatalf("ListActiveCasesByOfficer: %v", err)
	}
	if len(active) != 1 || active[0].CaseID != 1 {
		t.Fatalf("resolved case must be excluded: %+v", active)
	}
}
