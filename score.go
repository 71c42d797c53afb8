package main

// ── Scanable-books oracle ───────────────────────────────────────────

// scanableBooks returns the books library l would ship if its signup started
// after `elapsed` of `days` total, skipping books already in `scanned`.
// Greedy highest score first; the number of books is capped by the shipping
// capacity over the days left once signup completes. Pure: neither l nor
// scanned is modified, and the result is deterministic for fixed inputs
// because Books is kept in a fixed order.
func scanableBooks(l *Library, days, elapsed int, scanned map[int]bool) []Book {
	capacity := (days - elapsed - l.Signup) * l.ShipPerDay
	if capacity <= 0 {
		return nil
	}
	var picked []Book
	for _, b := range l.Books {
		if len(picked) == capacity {
			break
		}
		if scanned[b.ID] {
			continue
		}
		picked = append(picked, b)
	}
	return picked
}

// ── Fitness evaluation ──────────────────────────────────────────────

// Evaluate runs the full ordering through the oracle and refreshes Score and
// Split. Every library's BooksChosen scratch count is rewritten, including
// zeroes for libraries that ship nothing. A library with an empty claim is
// skipped in place: it consumes no days and does not advance the split, but
// the ordering itself is untouched. There is no early exit; once the budget
// runs out the oracle returns empty claims for the rest of the ordering.
func (c *Chromosome) Evaluate() {
	elapsed := 0
	scanned := make(map[int]bool)
	score := 0
	split := 0
	for i, lib := range c.Libs {
		picked := scanableBooks(lib, c.Days, elapsed, scanned)
		if len(picked) == 0 {
			lib.BooksChosen = 0
			continue
		}
		split = i + 1
		for _, b := range picked {
			score += b.Score
			scanned[b.ID] = true
		}
		lib.BooksChosen = len(picked)
		elapsed += lib.Signup
	}
	c.Score = score
	c.Split = split
}

// scoreOrdering scores a candidate ordering without writing any scratch
// state. Mutation uses it to judge trial swaps before touching the live
// chromosome.
func scoreOrdering(libs []*Library, days int) int {
	elapsed := 0
	scanned := make(map[int]bool)
	total := 0
	for _, lib := range libs {
		picked := scanableBooks(lib, days, elapsed, scanned)
		if len(picked) == 0 {
			continue
		}
		for _, b := range picked {
			total += b.Score
			scanned[b.ID] = true
		}
		elapsed += lib.Signup
	}
	return total
}
