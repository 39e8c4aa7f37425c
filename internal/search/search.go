// Package search enumerates the IV space and keeps the triples consistent
// with one or more appraisals of the same creature.
package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/goiv/internal/config"
	"github.com/udisondev/goiv/internal/stats"
)

// ErrNoEvaluations is returned when Candidates is called without evaluations.
var ErrNoEvaluations = errors.New("at least one evaluation required")

// ErrInvalidEvaluation is returned for evaluations with unknown enum values
// or an empty top stat set.
var ErrInvalidEvaluation = errors.New("invalid evaluation")

// Searcher filters the 16^3 IV space against appraisals.
// Stateless after construction, safe for concurrent use.
type Searcher struct {
	cfg    config.Search
	logger *slog.Logger
}

// NewSearcher validates cfg and returns a Searcher.
// nil logger falls back to cfg.Logger(os.Stderr), honouring cfg.LogLevel.
func NewSearcher(cfg config.Search, logger *slog.Logger) (*Searcher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = cfg.Logger(os.Stderr)
	}
	return &Searcher{cfg: cfg, logger: logger}, nil
}

// bounds is the componentwise box every candidate must fall in.
type bounds struct {
	lo, hi [3]int
}

// boundsFor intersects the stat range ceilings of all evaluations and,
// if enabled, the appraisal floors.
func (s *Searcher) boundsFor(evals []stats.PokeEvaluation) bounds {
	b := bounds{hi: [3]int{stats.MaxStat, stats.MaxStat, stats.MaxStat}}
	for _, e := range evals {
		hi := e.StatRange().MaxStats().AsTuple()
		for i := range hi {
			b.hi[i] = min(b.hi[i], hi[i])
		}
		if !s.cfg.PruneByAppraisalFloor {
			continue
		}
		lo := e.Overall().MinStats().AsTuple()
		for i := range lo {
			b.lo[i] = max(b.lo[i], lo[i])
		}
	}
	return b
}

// Candidates returns every IV matching all evals, ordered by
// attack, then defense, then stamina.
func (s *Searcher) Candidates(ctx context.Context, evals ...stats.PokeEvaluation) ([]stats.IndividualValue, error) {
	if len(evals) == 0 {
		return nil, ErrNoEvaluations
	}
	for i, e := range evals {
		if !e.IsValid() {
			return nil, fmt.Errorf("evaluation %d (%s): %w", i, e, ErrInvalidEvaluation)
		}
	}

	b := s.boundsFor(evals)
	s.logger.Debug("iv search started",
		"evaluations", len(evals),
		"lo", b.lo,
		"hi", b.hi,
		"workers", s.cfg.Workers)

	// One bucket per attack value keeps the output ordered without a sort.
	buckets := make([][]stats.IndividualValue, stats.MaxStat+1)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Workers)

	for a := b.lo[0]; a <= b.hi[0]; a++ {
		g.Go(func() error {
			found, err := scanAttack(gctx, a, b, evals)
			if err != nil {
				return err
			}
			buckets[a] = found
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("iv search: %w", err)
	}

	result := slices.Concat(buckets...)
	s.logger.Debug("iv search finished", "candidates", len(result))
	return result, nil
}

// scanAttack перебирает defense/stamina для одного значения attack.
func scanAttack(ctx context.Context, attack int, b bounds, evals []stats.PokeEvaluation) ([]stats.IndividualValue, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var found []stats.IndividualValue
	for d := b.lo[1]; d <= b.hi[1]; d++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for st := b.lo[2]; st <= b.hi[2]; st++ {
			iv, err := stats.NewIndividualValue(attack, d, st)
			if err != nil {
				return nil, err
			}
			if matchesAll(iv, evals) {
				found = append(found, iv)
			}
		}
	}
	return found, nil
}

func matchesAll(iv stats.IndividualValue, evals []stats.PokeEvaluation) bool {
	for _, e := range evals {
		if !iv.MatchesEvaluation(e) {
			return false
		}
	}
	return true
}
