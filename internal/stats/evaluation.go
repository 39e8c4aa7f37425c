package stats

import "fmt"

// PokeEvaluation is one in-game appraisal of a creature: a claim about the
// overall appraisal, stat range and top stats of its hidden IV.
// Immutable; checked against candidates by IndividualValue.MatchesEvaluation.
type PokeEvaluation struct {
	overall   OverallAppraisal
	statRange StatRange
	topStat   TopStat
}

// NewPokeEvaluation bundles already-validated parts. Always succeeds.
// Enum values outside the declared set, or a zero TopStat, never match
// any IV; check IsValid when the parts come from untrusted input.
func NewPokeEvaluation(overall OverallAppraisal, statRange StatRange, topStat TopStat) PokeEvaluation {
	return PokeEvaluation{overall: overall, statRange: statRange, topStat: topStat}
}

// EvaluationOf returns the evaluation the game shows for iv.
func EvaluationOf(iv IndividualValue) PokeEvaluation {
	return NewPokeEvaluation(iv.OverallAppraisal(), iv.StatRange(), iv.TopStat())
}

// Overall returns the claimed overall appraisal.
func (e PokeEvaluation) Overall() OverallAppraisal { return e.overall }

// StatRange returns the claimed stat range.
func (e PokeEvaluation) StatRange() StatRange { return e.statRange }

// TopStat returns the claimed top stat set.
func (e PokeEvaluation) TopStat() TopStat { return e.topStat }

// IsValid reports whether both enums are known values and the top stat
// set is non-empty.
func (e PokeEvaluation) IsValid() bool {
	return e.overall.IsValid() && e.statRange.IsValid() && e.topStat.Count() > 0
}

func (e PokeEvaluation) String() string {
	return fmt.Sprintf("%s/%s/%s", e.overall, e.statRange, e.topStat)
}
