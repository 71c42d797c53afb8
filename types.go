package main

// Book is a scannable unit. IDs are global to the instance; a book may be
// scanned by at most one library, first claimant wins.
type Book struct {
	ID    int
	Score int
}

// Library can, once signed up (Signup days), ship ShipPerDay of its books per
// remaining day. Books is sorted by score descending (ties by id ascending) at
// parse time and is never mutated afterwards; copies of a Library share it.
//
// BooksChosen is scratch: Evaluate rewrites it on every run, reorder and the
// submission builder read it. It has no meaning outside the evaluation that
// produced it.
type Library struct {
	ID         int
	Signup     int
	ShipPerDay int
	Books      []Book

	BooksChosen int
}

// copy returns a Library value with its own scratch fields. The read-only
// Books slice is shared.
func (l *Library) copy() *Library {
	c := *l
	return &c
}

// totalScore is the sum of scores of all books the library could ship with
// unlimited time. Used by the seeding orders.
func (l *Library) totalScore() int {
	sum := 0
	for _, b := range l.Books {
		sum += b.Score
	}
	return sum
}

// Instance is one problem input: the day budget, the libraries, and the count
// of distinct books. Read-only to the solver; chromosomes work on copies.
type Instance struct {
	Name      string
	Days      int
	NumBooks  int
	Libraries []*Library
}

// copyLibraries deep-copies a library sequence so the caller owns the scratch
// fields of every entry.
func copyLibraries(libs []*Library) []*Library {
	out := make([]*Library, len(libs))
	for i, l := range libs {
		out[i] = l.copy()
	}
	return out
}

// Chromosome is one candidate solution: a permutation of all libraries of the
// instance plus fitness fields derived from it.
//
// Split is the 1-based index of the last library that shipped at least one
// book in the most recent evaluation; it is not a count of contributors, since
// skipped libraries before it stay in place. Score and Split are only valid
// right after Evaluate; operators that change Libs leave them stale on purpose
// and callers re-evaluate explicitly.
type Chromosome struct {
	Days  int
	Libs  []*Library
	Split int
	Score int
}

// clone deep-copies the chromosome. Every clone owns its Library copies, so
// concurrent evaluations of different chromosomes never race on scratch state.
func (c *Chromosome) clone() *Chromosome {
	return &Chromosome{
		Days:  c.Days,
		Libs:  copyLibraries(c.Libs),
		Split: c.Split,
		Score: c.Score,
	}
}
