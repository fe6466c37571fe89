package report

import (
	"sort"
	"strings"

	"kastle-collection-reports/internal/domain/collection"
)

type CommSummary struct {
	TotalCalls         int     `json:"totalCalls"`
	TotalSMS           int     `json:"totalSMS"`
	TotalEmails        int     `json:"totalEmails"`
	TotalInteractions  int     `json:"totalInteractions"`
	AvgCallsPerCase    float64 `json:"avgCallsPerCase"`
	AvgMessagesPerCase float64 `json:"avgMessagesPerCase"`
}

type DailyComms struct {
	Date   string `json:"date"` // YYYY-MM-DD
	Calls  int    `json:"calls"`
	SMS    int    `json:"sms"`
	Emails int    `json:"emails"`
	Total  int    `json:"total"`
}

type CommEffectiveness struct {
	ContactRate float64 `json:"contactRate"`
	PromiseRate float64 `json:"promiseRate"`
}

type CommunicationStats struct {
	Summary           CommSummary       `json:"summary"`
	CallOutcomes      map[string]int    `json:"callOutcomes"`
	PtpFromCalls      int               `json:"ptpFromCalls"`
	DailyDistribution []DailyComms      `json:"dailyDistribution"`
	Effectiveness     CommEffectiveness `json:"effectiveness"`
}

// isPtpOutcome flags outcomes recorded as a promise to pay. The outcome
// column is free text upstream, so this stays a substring match.
func isPtpOutcome(outcome string) bool {
	return strings.Contains(outcome, "PTP") || strings.Contains(outcome, "Promise")
}

// ComputeCommunicationStats reduces interaction records into channel
// totals, a call-outcome histogram, a per-day series and contact/promise
// effectiveness rates. caseCount scopes the per-case averages.
func ComputeCommunicationStats(interactions []collection.Interaction, caseCount int) CommunicationStats {
	stats := CommunicationStats{CallOutcomes: make(map[string]int)}
	daily := make(map[string]*DailyComms)
	answered := 0

	for i := range interactions {
		it := &interactions[i]
		day := it.InteractionDatetime.UTC().Format("2006-01-02")
		d := daily[day]
		if d == nil {
			d = &DailyComms{Date: day}
			daily[day] = d
		}

		switch it.InteractionType {
		case collection.InteractionCall:
			stats.Summary.TotalCalls++
			d.Calls++
			outcome := it.Outcome
			if outcome == "" {
				outcome = "Unknown"
			}
			stats.CallOutcomes[outcome]++
		case collection.InteractionSMS:
			stats.Summary.TotalSMS++
			d.SMS++
		case collection.InteractionEmail:
			stats.Summary.TotalEmails++
			d.Emails++
		}
		if isPtpOutcome(it.Outcome) {
			stats.PtpFromCalls++
		}
		if strings.Contains(it.Outcome, "Answered") {
			answered++
		}
	}

	stats.Summary.TotalInteractions = len(interactions)
	if caseCount > 0 {
		stats.Summary.AvgCallsPerCase = float64(stats.Summary.TotalCalls) / float64(caseCount)
		stats.Summary.AvgMessagesPerCase = float64(stats.Summary.TotalSMS+stats.Summary.TotalEmails) / float64(caseCount)
		stats.Effectiveness.ContactRate = float64(answered) / float64(caseCount) * 100
	}
	stats.Effectiveness.PromiseRate = ratio(float64(stats.PtpFromCalls), float64(stats.Summary.TotalCalls))

	stats.DailyDistribution = make([]DailyComms, 0, len(daily))
	for _, d := range daily {
		d.Total = d.Calls + d.SMS + d.Emails
		stats.DailyDistribution = append(stats.DailyDistribution, *d)
	}
	sort.Slice(stats.DailyDistribution, func(i, j int) bool {
		return stats.DailyDistribution[i].Date < stats.DailyDistribution[j].Date
	})
	return stats
}
