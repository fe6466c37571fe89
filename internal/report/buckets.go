package report

import "kastle-collection-reports/internal/domain/portfolio"

// Delinquency buckets, fixed order. A loan lands in the first bucket whose
// inclusive DPD range matches; the ranges do not overlap, the first-match
// scan is kept anyway so a misconfigured table degrades predictably.
type bucketRange struct {
	name string
	min  int
	max  int
}

var bucketTable = []bucketRange{
	{"Current", 0, 0},
	{"1-30", 1, 30},
	{"31-60", 31, 60},
	{"61-90", 61, 90},
	{"91-180", 91, 180},
	{"181-360", 181, 360},
	{">360", 361, 9999},
}

// BucketNames in report order.
func BucketNames() []string {
	out := make([]string, len(bucketTable))
	for i, b := range bucketTable {
		out[i] = b.name
	}
	return out
}

// BucketFor classifies a days-past-due value. Negative values are treated
// as current.
func BucketFor(overdueDays int) string {
	for _, b := range bucketTable {
		if overdueDays >= b.min && overdueDays <= b.max {
			return b.name
		}
	}
	return bucketTable[0].name
}

type BucketSlice struct {
	Bucket     string  `json:"bucket"`
	Count      int     `json:"count"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}

// DelinquencyDistribution partitions loans into the seven buckets by DPD and
// accumulates overdue amounts. Percentages are shares of the overdue total
// and sum to 100 whenever that total is positive.
func DelinquencyDistribution(loans []portfolio.LoanAccount) []BucketSlice {
	out := make([]BucketSlice, len(bucketTable))
	for i, b := range bucketTable {
		out[i] = BucketSlice{Bucket: b.name}
	}

	var totalOverdue float64
	for i := range loans {
		l := &loans[i]
		for j, b := range bucketTable {
			if l.OverdueDays >= b.min && l.OverdueDays <= b.max {
				out[j].Count++
				out[j].Amount += l.OverdueAmount
				totalOverdue += l.OverdueAmount
				break
			}
		}
	}

	for i := range out {
		out[i].Percentage = ratio(out[i].Amount, totalOverdue)
	}
	return out
}
