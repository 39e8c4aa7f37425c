package search

import "github.com/udisondev/goiv/internal/stats"

// Summary describes a candidate set.
type Summary struct {
	Count      int
	MinPercent float64
	MaxPercent float64
	Perfect    int // candidates with 15/15/15
}

// Summarize computes a Summary. Empty input yields the zero Summary.
func Summarize(ivs []stats.IndividualValue) Summary {
	if len(ivs) == 0 {
		return Summary{}
	}

	sum := Summary{
		Count:      len(ivs),
		MinPercent: ivs[0].Percent(),
		MaxPercent: ivs[0].Percent(),
	}
	for _, iv := range ivs {
		p := iv.Percent()
		sum.MinPercent = min(sum.MinPercent, p)
		sum.MaxPercent = max(sum.MaxPercent, p)
		if iv.IsPerfect() {
			sum.Perfect++
		}
	}
	return sum
}
