package stats

import "fmt"

// OverallAppraisal is the coarse rating derived from the stat total.
type OverallAppraisal int

const (
	AppraisalBad OverallAppraisal = iota
	AppraisalOkay
	AppraisalGood
	AppraisalGreat
)

// Upper inclusive stat totals of each appraisal bucket. Great is open-ended.
const (
	badMaxSum  = 22
	okayMaxSum = 29
	goodMaxSum = 36
)

// ClassifySum maps a stat total (0..45) to its appraisal.
func ClassifySum(sum int) OverallAppraisal {
	switch {
	case sum <= badMaxSum:
		return AppraisalBad
	case sum <= okayMaxSum:
		return AppraisalOkay
	case sum <= goodMaxSum:
		return AppraisalGood
	default:
		return AppraisalGreat
	}
}

// MinStats returns a componentwise lower bound for IVs with this appraisal.
//
// This is a coarse filter, not the sum rule restated: Great needs sum >= 37
// but the bound only asks for 7/7/7, and the Good bound 1/1/1 even rejects
// Good IVs such as 15/15/0. Callers that need exact results must not prune
// on it.
func (a OverallAppraisal) MinStats() IndividualValue {
	switch a {
	case AppraisalGreat:
		return IndividualValue{attack: 7, defense: 7, stamina: 7}
	case AppraisalGood:
		return IndividualValue{attack: 1, defense: 1, stamina: 1}
	default:
		return IndividualValue{}
	}
}

// IsValid reports whether a is one of the four declared appraisals.
func (a OverallAppraisal) IsValid() bool {
	return a >= AppraisalBad && a <= AppraisalGreat
}

func (a OverallAppraisal) String() string {
	switch a {
	case AppraisalBad:
		return "bad"
	case AppraisalOkay:
		return "okay"
	case AppraisalGood:
		return "good"
	case AppraisalGreat:
		return "great"
	default:
		return fmt.Sprintf("OverallAppraisal(%d)", int(a))
	}
}

// StatRange is the coarse rating derived from the highest single stat.
type StatRange int

const (
	RangeLow StatRange = iota
	RangeAverage
	RangeHigh
	RangePerfect
)

const (
	lowMaxStat     = 7
	averageMaxStat = 12
	highMaxStat    = 14
)

// ClassifyHighest maps the highest stat (0..15) to its range.
func ClassifyHighest(highest int) StatRange {
	switch {
	case highest <= lowMaxStat:
		return RangeLow
	case highest <= averageMaxStat:
		return RangeAverage
	case highest <= highMaxStat:
		return RangeHigh
	default:
		return RangePerfect
	}
}

// MaxStats returns a componentwise upper bound for IVs in this range.
func (r StatRange) MaxStats() IndividualValue {
	var v uint8
	switch r {
	case RangeLow:
		v = lowMaxStat
	case RangeAverage:
		v = averageMaxStat
	case RangeHigh:
		v = highMaxStat
	default:
		v = MaxStat
	}
	return IndividualValue{attack: v, defense: v, stamina: v}
}

// IsValid reports whether r is one of the four declared ranges.
func (r StatRange) IsValid() bool {
	return r >= RangeLow && r <= RangePerfect
}

func (r StatRange) String() string {
	switch r {
	case RangeLow:
		return "low"
	case RangeAverage:
		return "average"
	case RangeHigh:
		return "high"
	case RangePerfect:
		return "perfect"
	default:
		return fmt.Sprintf("StatRange(%d)", int(r))
	}
}
