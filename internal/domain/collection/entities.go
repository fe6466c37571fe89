package collection

import "time"

type CaseStatus string

const (
	CaseActive    CaseStatus = "ACTIVE"
	CaseResolved  CaseStatus = "RESOLVED"
	CaseEscalated CaseStatus = "ESCALATED"
	CaseLegal     CaseStatus = "LEGAL"
)

type InteractionType string

const (
	InteractionCall  InteractionType = "CALL"
	InteractionSMS   InteractionType = "SMS"
	InteractionEmail InteractionType = "EMAIL"
	InteractionVisit InteractionType = "VISIT"
)

type PtpStatus string

const (
	PtpPending PtpStatus = "PENDING"
	PtpKept    PtpStatus = "KEPT"
	PtpBroken  PtpStatus = "BROKEN"
)

type Case struct {
	CaseID            uint64        `gorm:"primaryKey;column:case_id" json:"case_id"`
	LoanAccountNumber string        `gorm:"size:32;index" json:"loan_account_number"`
	AssignedTo        string        `gorm:"size:32;index" json:"assigned_to"`
	CaseStatus        CaseStatus    `gorm:"size:16" json:"case_status"`
	TotalOutstanding  float64       `gorm:"type:decimal(18,2)" json:"total_outstanding"`
	DaysPastDue       int           `json:"days_past_due"`
	CreatedAt         time.Time     `json:"created_at"`
	ResolvedAt        *time.Time    `json:"resolved_at,omitempty"`
	Interactions      []Interaction `gorm:"foreignKey:CaseID;references:CaseID" json:"collection_interactions,omitempty"`
	Promises          []PromiseToPay `gorm:"foreignKey:CaseID;references:CaseID" json:"promise_to_pay,omitempty"`
}

func (Case) TableName() string { return "collection_cases" }

type Interaction struct {
	InteractionID       uint64          `gorm:"primaryKey;column:interaction_id" json:"-"`
	CaseID              uint64          `gorm:"index" json:"case_id"`
	InteractionType     InteractionType `gorm:"size:16" json:"interaction_type"`
	Outcome             string          `gorm:"size:64" json:"outcome"`
	InteractionDatetime time.Time       `json:"interaction_datetime"`
}

func (Interaction) TableName() string { return "collection_interactions" }

type PromiseToPay struct {
	PtpID     uint64    `gorm:"primaryKey;column:ptp_id" json:"-"`
	CaseID    uint64    `gorm:"index" json:"case_id"`
	PtpAmount float64   `gorm:"type:decimal(18,2)" json:"ptp_amount"`
	PtpDate   time.Time `json:"ptp_date"`
	Status    PtpStatus `gorm:"size:16" json:"status"`
}

func (PromiseToPay) TableName() string { return "promise_to_pay" }

type Officer struct {
	OfficerID   string `gorm:"primaryKey;size:32;column:officer_id" json:"officer_id"`
	OfficerName string `gorm:"size:128" json:"officer_name"`
	OfficerType string `gorm:"size:32" json:"officer_type"`
	BranchID    string `gorm:"size:32;index" json:"branch_id"`
	Status      string `gorm:"size:16" json:"status"`
}

func (Officer) TableName() string { return "collection_officers" }
