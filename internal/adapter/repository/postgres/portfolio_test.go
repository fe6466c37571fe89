package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	domainC "kastle-collection-reports/internal/domain/collection"
	domainP "kastle-collection-reports/internal/domain/portfolio"
)

// openTestDB creates an in-memory sqlite DB with the full reporting schema.
// The domain models carry no engine-specific column types, so they migrate
// onto sqlite directly.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&domainP.Branch{}, &domainP.Product{}, &domainP.Customer{}, &domainP.LoanAccount{},
		&domainC.Case{}, &domainC.Interaction{}, &domainC.PromiseToPay{}, &domainC.Officer{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func seedPortfolio(t *testing.T, db *gorm.DB) {
	t.Helper()
	rows := []any{
		&domainP.Branch{BranchID: "BR001", BranchName: "Riyadh Main", City: "Riyadh", IsActive: true},
		&domainP.Branch{BranchID: "BR002", BranchName: "Jeddah", City: "Jeddah", IsActive: true},
		&domainP.Branch{BranchID: "BR003", BranchName: "Closed", IsActive: false},
		&domainP.Product{ProductID: "P1", ProductName: "Tawarruq Finance", ProductType: "Tawarruq", IsActive: true},
		&domainP.Product{ProductID: "P2", ProductName: "Cash Loan", ProductType: "Cash", IsActive: true},
		&domainP.Customer{CustomerID: "C1", FullName: "Ahmed", CustomerType: domainP.CustomerIndividual, RiskCategory: "Low", OnboardingBranch: "BR001"},
		&domainP.Customer{CustomerID: "C2", FullName: "Saleh", CustomerType: domainP.CustomerCorporate, RiskCategory: "High", OnboardingBranch: "BR002"},
		&domainP.LoanAccount{LoanAccountNumber: "L1", CustomerID: "C1", ProductID: "P1", LoanAmount: 1000, OutstandingBalance: 800, DisbursementDate: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)},
		&domainP.LoanAccount{LoanAccountNumber: "L2", CustomerID: "C1", ProductID: "P2", LoanAmount: 2000, OutstandingBalance: 1500, OverdueAmount: 100, OverdueDays: 40, DisbursementDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)},
		&domainP.LoanAccount{LoanAccountNumber: "L3", CustomerID: "C2", ProductID: "P1", LoanAmount: 3000, OutstandingBalance: 2500, DisbursementDate: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, row := range rows {
		if err := db.Create(row).Error; err != nil {
			t.Fatalf("seed %T: %v", row, err)
		}
	}
}

func TestPortfolioRepository_Dimensions(t *testing.T) {
	db := openTestDB(t)
	seedPortfolio(t, db)
	repo := NewPortfolioRepository(db)
	ctx := context.Background()

	branches, err := repo.ListBranches(ctx)
	if err != nil {
		t.Fatalf("ListBranches: %v", err)
	}
	// Inactive branch filtered, names ordered.
	if len(branches) != 2 || branches[0].BranchName != "Jeddah" {
		t.Fatalf("branches: %+v", branches)
	}

	b, err := repo.GetBranch(ctx, "BR001")
	if err != nil || b.BranchName != "Riyadh Main" {
		t.Fatalf("GetBranch: %+v err=%v", b, err)
	}
	if _, err := repo.GetBranch(ctx, "BR999"); !errors.Is(err, domainP.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}

	products, err := repo.ListProducts(ctx)
	if err != nil || len(products) != 2 {
		t.Fatalf("products: %+v err=%v", products, err)
	}
	if _, err := repo.GetProduct(ctx, "P9"); !errors.Is(err, domainP.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestPortfolioRepository_LoansByBranch(t *testing.T) {
	db := openTestDB(t)
	seedPortfolio(t, db)
	repo := NewPortfolioRepository(db)

	loans, err := repo.ListLoansByBranch(context.Background(), "BR001")
	if err != nil {
		t.Fatalf("ListLoansByBranch: %v", err)
	}
	if len(loans) != 2 {
		t.Fatalf("loans: %+v", loans)
	}
	for _, l := range loans {
		if l.Customer == nil || l.Customer.CustomerID != "C1" {
			t.Fatalf("customer preload: %+v", l.Customer)
		}
		if l.Product == nil {
			t.Fatalf("product preload missing for %s", l.LoanAccountNumber)
		}
	}

	empty, err := repo.ListLoansByBranch(context.Background(), "BR999")
	if err != nil || len(empty) != 0 {
		t.Fatalf("no-match must be empty, not error: %v %v", empty, err)
	}
}

func TestPortfolioRepository_LoansByProductAndAll(t *testing.T) {
	db := openTestDB(t)
	seedPortfolio(t, db)
	repo := NewPortfolioRepository(db)

	loans, err := repo.ListLoansByProduct(context.Background(), "P1")
	if err != nil || len(loans) != 2 {
		t.Fatalf("by product: %+v err=%v", loans, err)
	}
	// Branch hop through customer preload.
	for _, l := range loans {
		if l.Customer == nil || l.Customer.Branch == nil {
			t.Fatalf("branch preload: %+v", l)
		}
	}

	all, err := repo.ListLoans(context.Background())
	if err != nil || len(all) != 3 {
		t.Fatalf("all loans: %d err=%v", len(all), err)
	}
}
