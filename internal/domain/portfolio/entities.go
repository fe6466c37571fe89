package portfolio

import "time"

type LoanStatus string

const (
	LoanActive  LoanStatus = "ACTIVE"
	LoanOverdue LoanStatus = "OVERDUE"
	LoanDefault LoanStatus = "DEFAULT"
	LoanClosed  LoanStatus = "CLOSED"
)

type CustomerType string

const (
	CustomerIndividual CustomerType = "INDIVIDUAL"
	CustomerCorporate  CustomerType = "CORPORATE"
	CustomerSME        CustomerType = "SME"
)

type Branch struct {
	BranchID   string `gorm:"primaryKey;size:32;column:branch_id" json:"branch_id"`
	BranchName string `gorm:"size:128" json:"branch_name"`
	BranchCode string `gorm:"size:16" json:"branch_code"`
	City       string `gorm:"size:64" json:"city"`
	State      string `gorm:"size:64" json:"state"`
	IsActive   bool   `gorm:"default:true" json:"is_active"`
}

func (Branch) TableName() string { return "branches" }

type Product struct {
	ProductID   string `gorm:"primaryKey;size:32;column:product_id" json:"product_id"`
	ProductName string `gorm:"size:128" json:"product_name"`
	ProductType string `gorm:"size:64" json:"product_type"`
	IsActive    bool   `gorm:"default:true" json:"is_active"`
}

func (Product) TableName() string { return "products" }

type Customer struct {
	CustomerID       string       `gorm:"primaryKey;size:32;column:customer_id" json:"customer_id"`
	FullName         string       `gorm:"size:128" json:"full_name"`
	CustomerType     CustomerType `gorm:"size:16" json:"customer_type"`
	RiskCategory     string       `gorm:"size:16" json:"risk_category"`
	OnboardingBranch string       `gorm:"size:32;index" json:"onboarding_branch"`
	Branch           *Branch      `gorm:"foreignKey:OnboardingBranch;references:BranchID" json:"branch,omitempty"`
}

func (Customer) TableName() string { return "customers" }

// LoanAccount is a read-only snapshot row owned by the banking system of
// record. Customer and Product are preloaded dimension joins and may be nil
// when the upstream row is orphaned; aggregation coalesces around that.
type LoanAccount struct {
	LoanAccountNumber  string     `gorm:"primaryKey;size:32;column:loan_account_number" json:"loan_account_number"`
	CustomerID         string     `gorm:"size:32;index" json:"customer_id"`
	ProductID          string     `gorm:"size:32;index" json:"product_id"`
	LoanAmount         float64    `gorm:"type:decimal(18,2)" json:"loan_amount"`
	OutstandingBalance float64    `gorm:"type:decimal(18,2)" json:"outstanding_balance"`
	OverdueAmount      float64    `gorm:"type:decimal(18,2)" json:"overdue_amount"`
	OverdueDays        int        `json:"overdue_days"`
	InterestRate       float64    `gorm:"type:decimal(6,4)" json:"interest_rate"`
	LoanStatus         LoanStatus `gorm:"size:16" json:"loan_status"`
	DisbursementDate   time.Time  `json:"disbursement_date"`
	MaturityDate       time.Time  `json:"maturity_date"`
	Customer           *Customer  `gorm:"foreignKey:CustomerID;references:CustomerID" json:"customer,omitempty"`
	Product            *Product   `gorm:"foreignKey:ProductID;references:ProductID" json:"product,omitempty"`
}

func (LoanAccount) TableName() string { return "loan_accounts" }

// BranchName walks the customer join; empty when either hop is missing.
func (l *LoanAccount) BranchName() string {
	if l.Customer == nil || l.Customer.Branch == nil {
		return ""
	}
	return l.Customer.Branch.BranchName
}

func (l *LoanAccount) BranchID() string {
	if l.Customer == nil {
		return ""
	}
	return l.Customer.OnboardingBranch
}
