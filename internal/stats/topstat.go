package stats

import (
	"errors"
	"strings"
)

// ErrEmptyTopStat is returned when no stat is flagged as highest.
var ErrEmptyTopStat = errors.New("top stat needs at least one flag")

// TopStat is the set of stats tied for the highest value.
// Invariant: at least one flag is set.
type TopStat struct {
	attack  bool
	defense bool
	stamina bool
}

// NewTopStat builds a TopStat. All flags false is rejected.
func NewTopStat(attackHi, defenseHi, staminaHi bool) (TopStat, error) {
	if !attackHi && !defenseHi && !staminaHi {
		return TopStat{}, ErrEmptyTopStat
	}
	return TopStat{attack: attackHi, defense: defenseHi, stamina: staminaHi}, nil
}

// AttackHi reports whether attack is among the highest stats.
func (t TopStat) AttackHi() bool { return t.attack }

// DefenseHi reports whether defense is among the highest stats.
func (t TopStat) DefenseHi() bool { return t.defense }

// StaminaHi reports whether stamina is among the highest stats.
func (t TopStat) StaminaHi() bool { return t.stamina }

// Count returns how many stats are flagged (1..3).
func (t TopStat) Count() int {
	n := 0
	for _, f := range [...]bool{t.attack, t.defense, t.stamina} {
		if f {
			n++
		}
	}
	return n
}

// Matches reports whether the flags equal the set of stats of iv that are
// tied for the maximum. Exact set equality: {attack} does not match an IV
// where attack and defense tie.
func (t TopStat) Matches(iv IndividualValue) bool {
	highest := iv.HighestStatValue()

	return t.attack == (iv.Attack() == highest) &&
		t.defense == (iv.Defense() == highest) &&
		t.stamina == (iv.Stamina() == highest)
}

func (t TopStat) String() string {
	parts := make([]string, 0, 3)
	if t.attack {
		parts = append(parts, "attack")
	}
	if t.defense {
		parts = append(parts, "defense")
	}
	if t.stamina {
		parts = append(parts, "stamina")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "+")
}
