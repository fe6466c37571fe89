package report

import (
	"sort"

	"kastle-collection-reports/internal/domain/collection"
)

// Performance score weights: promises made matter most, keeping them and
// reaching the customer split the rest.
const (
	weightContactRate    = 0.3
	weightPtpRate        = 0.4
	weightFulfillmentRate = 0.3
)

type OfficerStats struct {
	OfficerID          string  `json:"officerId"`
	OfficerName        string  `json:"officerName"`
	OfficerType        string  `json:"officerType"`
	TotalCases         int     `json:"totalCases"`
	TotalOutstanding   float64 `json:"totalOutstanding"`
	TotalCalls         int     `json:"totalCalls"`
	TotalPTPs          int     `json:"totalPTPs"`
	KeptPTPs           int     `json:"keptPTPs"`
	ContactRate        float64 `json:"contactRate"`
	PtpRate            float64 `json:"ptpRate"`
	PtpFulfillmentRate float64 `json:"ptpFulfillmentRate"`
	AvgCasesPerDay     float64 `json:"avgCasesPerDay"`
	Performance        float64 `json:"performance"`
}

type OfficerPerformance struct {
	Officers      []OfficerStats `json:"officers"`
	TopPerformers []OfficerStats `json:"topPerformers"`
	LowPerformers []OfficerStats `json:"lowPerformers"`
}

// ComputeOfficerStats reduces one officer's active caseload. Cases are
// expected enriched with interactions and promises.
func ComputeOfficerStats(officer collection.Officer, cases []collection.Case) OfficerStats {
	st := OfficerStats{
		OfficerID:   officer.OfficerID,
		OfficerName: officer.OfficerName,
		OfficerType: officer.OfficerType,
		TotalCases:  len(cases),
	}
	for i := range cases {
		c := &cases[i]
		st.TotalOutstanding += c.TotalOutstanding
		for _, it := range c.Interactions {
			if it.InteractionType == collection.InteractionCall {
				st.TotalCalls++
			}
		}
		for _, p := range c.Promises {
			st.TotalPTPs++
			if p.Status == collection.PtpKept {
				st.KeptPTPs++
			}
		}
	}

	st.ContactRate = ratio(float64(st.TotalCalls), float64(st.TotalCases))
	st.PtpRate = ratio(float64(st.TotalPTPs), float64(st.TotalCalls))
	st.PtpFulfillmentRate = ratio(float64(st.KeptPTPs), float64(st.TotalPTPs))
	st.AvgCasesPerDay = float64(st.TotalCases) / 30
	st.Performance = st.ContactRate*weightContactRate +
		st.PtpRate*weightPtpRate +
		st.PtpFulfillmentRate*weightFulfillmentRate
	return st
}

// RankOfficers sorts by performance score descending and picks the top and
// bottom three (bottom list worst-first).
func RankOfficers(officers []OfficerStats) OfficerPerformance {
	sorted := make([]OfficerStats, len(officers))
	copy(sorted, officers)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Performance > sorted[j].Performance })

	out := OfficerPerformance{Officers: sorted}
	top := 3
	if len(sorted) < top {
		top = len(sorted)
	}
	out.TopPerformers = append([]OfficerStats(nil), sorted[:top]...)

	low := sorted[len(sorted)-top:]
	out.LowPerformers = make([]OfficerStats, 0, top)
	for i := len(low) - 1; i >= 0; i-- {
		out.LowPerformers = append(out.LowPerformers, low[i])
	}
	return out
}
