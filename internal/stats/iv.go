// Package stats models the hidden individual values (IV) of a creature:
// the attack/defense/stamina triple and the coarse classifications the
// in-game appraisal derives from it.
package stats

import (
	"errors"
	"fmt"
)

// MaxStat is the highest value a single IV stat can take.
const MaxStat = 15

// MaxSum is the stat total of a perfect IV.
const MaxSum = 3 * MaxStat

// ErrStatOutOfRange is returned when a stat lies outside [0, MaxStat].
var ErrStatOutOfRange = errors.New("stat out of range")

// ValidStat reports whether v is a legal value for a single stat.
func ValidStat(v int) bool {
	return v >= 0 && v <= MaxStat
}

// IndividualValue is a validated IV triple.
// Value type, compared with ==. The zero value is 0/0/0 and is valid.
type IndividualValue struct {
	attack  uint8
	defense uint8
	stamina uint8
}

// NewIndividualValue validates all three stats and builds the triple.
func NewIndividualValue(attack, defense, stamina int) (IndividualValue, error) {
	for _, s := range [...]struct {
		name  string
		value int
	}{
		{"attack", attack},
		{"defense", defense},
		{"stamina", stamina},
	} {
		if !ValidStat(s.value) {
			return IndividualValue{}, fmt.Errorf("%s=%d: %w", s.name, s.value, ErrStatOutOfRange)
		}
	}

	return IndividualValue{
		attack:  uint8(attack),
		defense: uint8(defense),
		stamina: uint8(stamina),
	}, nil
}

// FromTuple builds an IV from an (attack, defense, stamina) tuple.
func FromTuple(t [3]int) (IndividualValue, error) {
	return NewIndividualValue(t[0], t[1], t[2])
}

// MustIndividualValue is NewIndividualValue for literals known to be valid.
// Panics on invalid input.
func MustIndividualValue(attack, defense, stamina int) IndividualValue {
	iv, err := NewIndividualValue(attack, defense, stamina)
	if err != nil {
		panic(err)
	}
	return iv
}

// Attack returns the attack stat (0..15).
func (iv IndividualValue) Attack() int { return int(iv.attack) }

// Defense returns the defense stat (0..15).
func (iv IndividualValue) Defense() int { return int(iv.defense) }

// Stamina returns the stamina stat (0..15).
func (iv IndividualValue) Stamina() int { return int(iv.stamina) }

// AsTuple returns (attack, defense, stamina).
func (iv IndividualValue) AsTuple() [3]int {
	return [3]int{iv.Attack(), iv.Defense(), iv.Stamina()}
}

// Sum returns attack+defense+stamina (0..45).
func (iv IndividualValue) Sum() int {
	return iv.Attack() + iv.Defense() + iv.Stamina()
}

// Percent returns the stat total as a percentage of a perfect IV.
func (iv IndividualValue) Percent() float64 {
	return float64(iv.Sum()) * 100 / MaxSum
}

// HighestStatValue returns the largest of the three stats.
func (iv IndividualValue) HighestStatValue() int {
	return max(iv.Attack(), iv.Defense(), iv.Stamina())
}

// TopStat returns every stat tied for the highest value.
// At least one stat always equals the maximum, so the result is never empty.
func (iv IndividualValue) TopStat() TopStat {
	highest := iv.HighestStatValue()
	return TopStat{
		attack:  iv.Attack() == highest,
		defense: iv.Defense() == highest,
		stamina: iv.Stamina() == highest,
	}
}

// OverallAppraisal classifies the IV by its stat total.
func (iv IndividualValue) OverallAppraisal() OverallAppraisal {
	return ClassifySum(iv.Sum())
}

// StatRange classifies the IV by its highest stat.
func (iv IndividualValue) StatRange() StatRange {
	return ClassifyHighest(iv.HighestStatValue())
}

// IsPerfect reports whether all three stats are 15.
// Stricter than StatRange() == RangePerfect, which only needs one 15.
func (iv IndividualValue) IsPerfect() bool {
	return iv.attack == MaxStat && iv.defense == MaxStat && iv.stamina == MaxStat
}

// MatchesEvaluation reports whether the IV is consistent with every part of
// the evaluation: overall appraisal, stat range and the exact top stat set.
func (iv IndividualValue) MatchesEvaluation(eval PokeEvaluation) bool {
	return iv.OverallAppraisal() == eval.Overall() &&
		iv.StatRange() == eval.StatRange() &&
		eval.TopStat().Matches(iv)
}

// AtLeast reports whether every stat of iv is >= the matching stat of bound.
func (iv IndividualValue) AtLeast(bound IndividualValue) bool {
	return iv.attack >= bound.attack && iv.defense >= bound.defense && iv.stamina >= bound.stamina
}

// AtMost reports whether every stat of iv is <= the matching stat of bound.
func (iv IndividualValue) AtMost(bound IndividualValue) bool {
	return iv.attack <= bound.attack && iv.defense <= bound.defense && iv.stamina <= bound.stamina
}

func (iv IndividualValue) String() string {
	return fmt.Sprintf("%d/%d/%d", iv.attack, iv.defense, iv.stamina)
}
