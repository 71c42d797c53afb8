package main

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Evolver runs the generational loop: seeded initialization, then per
// generation a selection+crossover phase, a mutation phase, and a best-ever
// scan. The three phases are parallel maps with a full barrier between them;
// tasks inside a phase are independent and own all state they mutate.
type Evolver struct {
	inst *Instance
	cfg  Config
	log  *zap.Logger
}

// Result is the outcome of a run: the best chromosome ever observed (a deep
// copy owned by the caller, evaluated), the number of completed generations,
// and the wall-clock duration.
type Result struct {
	Best        *Chromosome
	Generations int
	Elapsed     time.Duration
}

// NewEvolver creates an evolver for the given instance. The config must have
// been validated.
func NewEvolver(inst *Instance, cfg Config, log *zap.Logger) *Evolver {
	return &Evolver{inst: inst, cfg: cfg, log: log}
}

// parallelFor runs fn(i) for every i in [0,n) across at most `workers`
// goroutines and waits for all of them. A failing task aborts the whole run;
// dropping results silently would break the fixed-population-size invariant
// selection depends on.
func parallelFor(n, workers int, fn func(i int) error) error {
	g := new(errgroup.Group)
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error { return fn(i) })
	}
	return g.Wait()
}

// Run evolves the population for up to cfg.Iterations generations and returns
// the best chromosome found. Cancellation is cooperative: ctx is polled once
// per generation boundary, never mid-phase, and a cancelled run still returns
// the current best as a successful result.
func (e *Evolver) Run(ctx context.Context) (*Result, error) {
	start := time.Now()
	size := e.cfg.Size

	population := make([]*Chromosome, size)
	err := parallelFor(size, e.cfg.Workers, func(i int) error {
		population[i] = newSeededChromosome(e.inst)
		return nil
	})
	if err != nil {
		return nil, err
	}

	best := population[0].clone()
	for _, c := range population {
		if c.Score > best.Score {
			best = c.clone()
		}
	}
	e.log.Info("population seeded",
		zap.Int("size", size),
		zap.Int("best", best.Score),
		zap.Duration("took", time.Since(start)))

	generations := 0
	for gen := 0; gen < e.cfg.Iterations; gen++ {
		genStart := time.Now()

		// Selection + crossover: size/2 independent pair draws, flattened
		// into the next population. No chromosome survives a generation.
		next := make([]*Chromosome, size)
		err := parallelFor(size/2, e.cfg.Workers, func(i int) error {
			next[2*i], next[2*i+1] = tournamentAndCrossover(population, e.cfg.TournamentK)
			return nil
		})
		if err != nil {
			return nil, err
		}

		err = parallelFor(size, e.cfg.Workers, func(i int) error {
			next[i].Mutate(e.cfg.Mutations)
			return nil
		})
		if err != nil {
			return nil, err
		}
		population = next

		genBest := 0
		distinct := make(map[int]struct{}, size)
		for _, c := range population {
			distinct[c.Score] = struct{}{}
			if c.Score > genBest {
				genBest = c.Score
			}
			if c.Score > best.Score {
				best = c.clone()
			}
		}
		generations = gen + 1
		e.log.Info("generation",
			zap.Int("gen", gen),
			zap.Int("best", best.Score),
			zap.Int("genBest", genBest),
			zap.Int("distinct", len(distinct)),
			zap.Duration("took", time.Since(genStart)))

		if ctx.Err() != nil {
			e.log.Info("stop requested, returning best so far",
				zap.Int("gen", gen),
				zap.Int("best", best.Score))
			break
		}
	}

	return &Result{
		Best:        best,
		Generations: generations,
		Elapsed:     time.Since(start),
	}, nil
}
