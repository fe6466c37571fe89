package collection

import (
	"context"
	"time"
)

// Repository reads collection-side rows. Same contract as the portfolio
// side: empty result sets are empty slices, errors are connectivity/auth
// failures only.
type Repository interface {
	// ListCasesByLoanAccounts returns bare case rows; callers that need the
	// interaction/PTP children enrich via the batched fetches below.
	ListCasesByLoanAccounts(ctx context.Context, loanAccountNumbers []string) ([]Case, error)
	ListInteractions(ctx context.Context, caseIDs []uint64, since time.Time) ([]Interaction, error)
	ListPromises(ctx context.Context, caseIDs []uint64) ([]PromiseToPay, error)

	ListActiveOfficersByBranch(ctx context.Context, branchID string) ([]Officer, error)
	ListActiveCasesByOfficer(ctx context.Context, officerID string) ([]Case, error)
}

// Enrich attaches interactions and promises to their cases by case id,
// mirroring the two batched child fetches the report assemblers perform.
func Enrich(cases []Case, interactions []Interaction, promises []PromiseToPay) []Case {
	byCaseInteractions := make(map[uint64][]Interaction)
	for _, it := range interactions {
		byCaseInteractions[it.CaseID] = append(byCaseInteractions[it.CaseID], it)
	}
	byCasePromises := make(map[uint64][]PromiseToPay)
	for _, p := range promises {
		byCasePromises[p.CaseID] = append(byCasePromises[p.CaseID], p)
	}

	out := make([]Case, len(cases))
	for i, c := range cases {
		c.Interactions = byCaseInteractions[c.CaseID]
		c.Promises = byCasePromises[c.CaseID]
		out[i] = c
	}
	return out
}
