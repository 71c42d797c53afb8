package main

import (
	"fmt"
	"math/rand"
	"sort"
)

// ── Seeding orders ──────────────────────────────────────────────────

func shuffleLibraries(libs []*Library) {
	rand.Shuffle(len(libs), func(i, j int) { libs[i], libs[j] = libs[j], libs[i] })
}

func sortBySignupAsc(libs []*Library) {
	sort.SliceStable(libs, func(i, j int) bool { return libs[i].Signup < libs[j].Signup })
}

func sortByNumBooksDesc(libs []*Library) {
	sort.SliceStable(libs, func(i, j int) bool { return len(libs[i].Books) > len(libs[j].Books) })
}

func sortByTotalScoreDesc(libs []*Library) {
	sort.SliceStable(libs, func(i, j int) bool { return libs[i].totalScore() > libs[j].totalScore() })
}

// ── Construction ────────────────────────────────────────────────────

// newChromosome builds a chromosome from a uniformly random permutation of
// the instance's libraries and evaluates it.
func newChromosome(inst *Instance) *Chromosome {
	c := &Chromosome{Days: inst.Days, Libs: copyLibraries(inst.Libraries)}
	shuffleLibraries(c.Libs)
	c.Evaluate()
	return c
}

// newSeededChromosome builds a chromosome from one seeding order chosen at
// random: shuffle (weighted three ways), ascending signup time, descending
// book count, or descending total book score.
func newSeededChromosome(inst *Instance) *Chromosome {
	c := &Chromosome{Days: inst.Days, Libs: copyLibraries(inst.Libraries)}
	switch rand.Intn(6) {
	case 0, 1, 2:
		shuffleLibraries(c.Libs)
	case 3:
		sortBySignupAsc(c.Libs)
	case 4:
		sortByNumBooksDesc(c.Libs)
	default:
		sortByTotalScoreDesc(c.Libs)
	}
	c.Evaluate()
	return c
}

// ── Mutation ────────────────────────────────────────────────────────

// mutationProbability is nominal: mutation is currently always attempted.
const mutationProbability = 0.75

// Mutate runs `attempts` rounds of boundary-swap local search in place and
// returns the chromosome. Each round re-evaluates, swaps one library from
// below the split with one from at or above it (whole range when the split
// covers the full ordering), and keeps the swap only if the trial ordering
// scores strictly higher. Score/Split go stale on an accepted swap and are
// refreshed by the next round's evaluation; a final evaluation after the last
// round leaves them consistent with the ordering.
func (c *Chromosome) Mutate(attempts int) *Chromosome {
	for n := 0; n < attempts; n++ {
		c.Evaluate()
		a := rand.Intn(c.Split)
		var b int
		if c.Split == len(c.Libs) {
			b = rand.Intn(len(c.Libs))
		} else {
			b = c.Split + rand.Intn(len(c.Libs)-c.Split)
		}
		libs := make([]*Library, len(c.Libs))
		copy(libs, c.Libs)
		libs[a], libs[b] = libs[b], libs[a]
		if scoreOrdering(libs, c.Days) > c.Score {
			c.Libs = libs
		}
	}
	c.Evaluate()
	return c
}

// ── Reorder pre-pass ────────────────────────────────────────────────

// reorder moves every library inside the split prefix that shipped zero books
// to the end of the ordering. The moved libraries keep their relative order,
// as do all others. Indices are removed in descending order so earlier
// removals do not shift the positions still to be removed. Split is not
// refreshed; crossover reads the pre-reorder value on purpose.
func (c *Chromosome) reorder() {
	var kicked []int
	for j := 0; j < c.Split; j++ {
		if c.Libs[j].BooksChosen == 0 {
			kicked = append(kicked, j)
		}
	}
	if len(kicked) == 0 {
		return
	}
	moved := make([]*Library, len(kicked))
	for i, j := range kicked {
		moved[i] = c.Libs[j]
	}
	for i := len(kicked) - 1; i >= 0; i-- {
		j := kicked[i]
		c.Libs = append(c.Libs[:j], c.Libs[j+1:]...)
	}
	c.Libs = append(c.Libs, moved...)
}

// ── Crossover ───────────────────────────────────────────────────────

// crossover recombines two parents into two children without touching either
// parent. Both parents are cloned and reordered, a cut point is drawn below
// the smaller of the two (pre-reorder) split values, and each child takes one
// parent's head up to the cut plus the other parent's remaining libraries in
// that parent's order. Library id uniqueness makes both children full
// permutations; this is verified as a hard invariant. A boundary below 2
// leaves no interior cut point and is a caller bug, reported by panic.
func crossover(a, b *Chromosome) (*Chromosome, *Chromosome) {
	ap, bp := a.clone(), b.clone()
	boundary := ap.Split
	if bp.Split < boundary {
		boundary = bp.Split
	}
	ap.reorder()
	bp.reorder()
	if boundary < 2 {
		panic(fmt.Sprintf("crossover: no interior cut point, splits %d and %d", a.Split, b.Split))
	}
	point := 1 + rand.Intn(boundary-1)
	return buildChild(ap, bp, point), buildChild(bp, ap, point)
}

// buildChild assembles head's first `point` libraries followed by every
// library of tail whose id is not already present, in tail's order. Each
// entry is a fresh Library copy so the two children of a crossover never
// share scratch state.
func buildChild(head, tail *Chromosome, point int) *Chromosome {
	n := len(head.Libs)
	libs := make([]*Library, 0, n)
	seen := make(map[int]bool, point)
	for _, l := range head.Libs[:point] {
		libs = append(libs, l.copy())
		seen[l.ID] = true
	}
	for _, l := range tail.Libs {
		if seen[l.ID] {
			continue
		}
		libs = append(libs, l.copy())
		seen[l.ID] = true
	}
	child := &Chromosome{Days: head.Days, Libs: libs, Split: head.Split, Score: head.Score}
	verifyPermutation(child, n)
	return child
}

// verifyPermutation panics unless the chromosome holds exactly n libraries
// with pairwise distinct ids.
func verifyPermutation(c *Chromosome, n int) {
	if len(c.Libs) != n {
		panic(fmt.Sprintf("crossover: child has %d libraries, want %d", len(c.Libs), n))
	}
	seen := make(map[int]bool, n)
	for _, l := range c.Libs {
		if seen[l.ID] {
			panic(fmt.Sprintf("crossover: duplicate library %d in child", l.ID))
		}
		seen[l.ID] = true
	}
}

// ── Tournament selection ────────────────────────────────────────────

// tournament samples k distinct chromosomes uniformly and returns a reference
// into pop, no copy. The winner is tracked from a sentinel of score 0 and
// replaced only on a strictly greater score, so the earliest-sampled
// chromosome wins ties; if every sampled score is 0 the first sample wins.
func tournament(pop []*Chromosome, k int) *Chromosome {
	if k <= 0 || k > len(pop) {
		panic(fmt.Sprintf("tournament: k=%d out of range for population of %d", k, len(pop)))
	}
	idxs := rand.Perm(len(pop))[:k]
	best, bestScore := 0, 0
	for it, pi := range idxs {
		if pop[pi].Score > bestScore {
			best, bestScore = it, pop[pi].Score
		}
	}
	return pop[idxs[best]]
}

// tournamentAndCrossover draws two parents by independent tournaments (the
// same chromosome may win both) and recombines them.
func tournamentAndCrossover(pop []*Chromosome, k int) (*Chromosome, *Chromosome) {
	return crossover(tournament(pop, k), tournament(pop, k))
}
