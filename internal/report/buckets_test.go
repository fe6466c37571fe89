package report

import (
	"math"
	"testing"

	"kastle-collection-reports/internal/domain/portfolio"
)

func TestBucketFor_Boundaries(t *testing.T) {
	cases := []struct {
		dpd  int
		want string
	}{
		{0, "Current"},
		{1, "1-30"},
		{30, "1-30"},
		{31, "31-60"},
		{60, "31-60"},
		{61, "61-90"},
		{90, "61-90"},
		{91, "91-180"},
		{180, "91-180"},
		{181, "181-360"},
		{360, "181-360"},
		{361, ">360"},
		{5000, ">360"},
		{-3, "Current"},
	}
	for _, tc := range cases {
		if got := BucketFor(tc.dpd); got != tc.want {
			t.Fatalf("BucketFor(%d)=%q, want %q", tc.dpd, got, tc.want)
		}
	}
}

func TestDelinquencyDistribution_Scenario(t *testing.T) {
	loans := []portfolio.LoanAccount{
		{LoanAmount: 100, OverdueAmount: 0, OverdueDays: 0},
		{LoanAmount: 200, OverdueAmount: 50, OverdueDays: 45},
	}
	dist := DelinquencyDistribution(loans)
	if len(dist) != 7 {
		t.Fatalf("bucket count=%d", len(dist))
	}
	for _, b := range dist {
		switch b.Bucket {
		case "Current":
			if b.Count != 1 || b.Amount != 0 {
				t.Fatalf("Current bucket: %+v", b)
			}
		case "31-60":
			if b.Count != 1 {
				t.Fatalf("31-60 count=%d", b.Count)
			}
			approx(t, b.Amount, 50, "31-60 amount")
			approx(t, b.Percentage, 100, "31-60 percentage")
		default:
			approx(t, b.Amount, 0, b.Bucket+" amount")
			approx(t, b.Percentage, 0, b.Bucket+" percentage")
		}
	}
}

// Conservation: bucket amounts always sum to the direct overdue total, and
// percentages sum to 100 whenever that total is positive.
func TestDelinquencyDistribution_Conservation(t *testing.T) {
	loans := []portfolio.LoanAccount{
		{OverdueAmount: 10, OverdueDays: 3},
		{OverdueAmount: 0, OverdueDays: 0},
		{OverdueAmount: 75.5, OverdueDays: 65},
		{OverdueAmount: 200, OverdueDays: 200},
		{OverdueAmount: 14.5, OverdueDays: 400},
		{OverdueAmount: 3, OverdueDays: 30},
		{OverdueAmount: 7, OverdueDays: 31},
	}

	var direct float64
	for _, l := range loans {
		direct += l.OverdueAmount
	}

	dist := DelinquencyDistribution(loans)
	var amountSum, pctSum float64
	for _, b := range dist {
		amountSum += b.Amount
		pctSum += b.Percentage
	}
	if math.Abs(amountSum-direct) > 1e-9 {
		t.Fatalf("bucket amounts sum %v, overdue total %v", amountSum, direct)
	}
	if math.Abs(pctSum-100) > 1e-6 {
		t.Fatalf("percentages sum to %v", pctSum)
	}
}

func TestDelinquencyDistribution_EmptyAndZeroOverdue(t *testing.T) {
	for _, loans := range [][]portfolio.LoanAccount{
		nil,
		{{LoanAmount: 100, OverdueAmount: 0, OverdueDays: 0}},
	} {
		dist := DelinquencyDistribution(loans)
		for _, b := range dist {
			noNaN(t, b.Percentage, b.Bucket+" percentage")
			approx(t, b.Amount, 0, b.Bucket+" amount")
			approx(t, b.Percentage, 0, b.Bucket+" percentage")
		}
	}
}
