package report

import "sort"

// PeerMetric is one entity's comparable metrics, computed with the same
// aggregator as the target's. The engine requires real metrics for every
// peer; callers must not substitute placeholders.
type PeerMetric struct {
	EntityID        string  `json:"entityId"`
	EntityName      string  `json:"entityName"`
	DelinquencyRate float64 `json:"delinquencyRate"`
	CollectionRate  float64 `json:"collectionRate"`
	PortfolioSize   float64 `json:"portfolioSize"`
	OverdueAmount   float64 `json:"overdueAmount"`
}

type Rankings struct {
	DelinquencyRank int `json:"delinquencyRank"`
	CollectionRank  int `json:"collectionRank"`
	TotalEntities   int `json:"totalEntities"`
}

type PeerAverage struct {
	DelinquencyRate float64 `json:"delinquencyRate"`
	CollectionRate  float64 `json:"collectionRate"`
	PortfolioSize   float64 `json:"portfolioSize"`
}

type VsAverage struct {
	DelinquencyRate float64 `json:"delinquencyRate"`
	CollectionRate  float64 `json:"collectionRate"`
}

type Comparison struct {
	Rankings       Rankings     `json:"rankings"`
	CompanyAverage PeerAverage  `json:"companyAverage"`
	Peers          []PeerMetric `json:"peers"`
	VsAverage      VsAverage    `json:"vsAverage"`
}

func percentDelta(value, avg float64) float64 {
	if avg == 0 {
		return 0
	}
	return (value - avg) / avg * 100
}

// rankBy returns the 1-based position of entityID under the given strict
// ordering; 0 when the entity is not among the peers.
func rankBy(peers []PeerMetric, entityID string, less func(a, b PeerMetric) bool) int {
	sorted := make([]PeerMetric, len(peers))
	copy(sorted, peers)
	sort.SliceStable(sorted, func(i, j int) bool { return less(sorted[i], sorted[j]) })
	for i, p := range sorted {
		if p.EntityID == entityID {
			return i + 1
		}
	}
	return 0
}

// Rank places the target entity among its peers. Two independent orderings:
// delinquency rate ascending (lower is better) and collection rate
// descending (higher is better); rank 1 is best in both.
func Rank(entityID string, peers []PeerMetric) Comparison {
	cmp := Comparison{Peers: peers}
	cmp.Rankings.TotalEntities = len(peers)
	if len(peers) == 0 {
		return cmp
	}

	cmp.Rankings.DelinquencyRank = rankBy(peers, entityID, func(a, b PeerMetric) bool {
		return a.DelinquencyRate < b.DelinquencyRate
	})
	cmp.Rankings.CollectionRank = rankBy(peers, entityID, func(a, b PeerMetric) bool {
		return a.CollectionRate > b.CollectionRate
	})

	n := float64(len(peers))
	var target *PeerMetric
	for i := range peers {
		cmp.CompanyAverage.DelinquencyRate += peers[i].DelinquencyRate / n
		cmp.CompanyAverage.CollectionRate += peers[i].CollectionRate / n
		cmp.CompanyAverage.PortfolioSize += peers[i].PortfolioSize / n
		if peers[i].EntityID == entityID {
			target = &peers[i]
		}
	}
	if target != nil {
		cmp.VsAverage.DelinquencyRate = percentDelta(target.DelinquencyRate, cmp.CompanyAverage.DelinquencyRate)
		cmp.VsAverage.CollectionRate = percentDelta(target.CollectionRate, cmp.CompanyAverage.CollectionRate)
	}
	return cmp
}
