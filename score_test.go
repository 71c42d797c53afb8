package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// smallInstance is the three-library example: A (free signup, ships 2/day,
// books 0 and 1 worth 1 each), B (signup 1, ships 1/day, book 2 worth 5),
// C (signup 5, ships 5/day, book 0) under a 2-day budget.
func smallInstance() *Instance {
	scores := []int{1, 1, 5}
	a, _ := buildLibrary(0, 0, 2, []int{0, 1}, scores)
	b, _ := buildLibrary(1, 1, 1, []int{2}, scores)
	c, _ := buildLibrary(2, 5, 5, []int{0}, scores)
	return &Instance{Name: "small", Days: 2, NumBooks: 3, Libraries: []*Library{a, b, c}}
}

// chromosomeFor builds a chromosome over the given library ids of inst, in
// order, with owned copies.
func chromosomeFor(inst *Instance, order ...int) *Chromosome {
	libs := make([]*Library, len(order))
	for i, id := range order {
		libs[i] = inst.Libraries[id].copy()
	}
	return &Chromosome{Days: inst.Days, Libs: libs}
}

func TestScanableBooks(t *testing.T) {
	inst := smallInstance()
	a, b, c := inst.Libraries[0], inst.Libraries[1], inst.Libraries[2]

	tests := []struct {
		name    string
		lib     *Library
		elapsed int
		scanned map[int]bool
		wantIDs []int
	}{
		{name: "full capacity", lib: a, elapsed: 0, wantIDs: []int{0, 1}},
		{name: "capacity of one", lib: b, elapsed: 0, wantIDs: []int{2}},
		{name: "signup exceeds remaining days", lib: c, elapsed: 1, wantIDs: nil},
		{name: "all books already scanned", lib: a, elapsed: 0, scanned: map[int]bool{0: true, 1: true}, wantIDs: nil},
		{name: "partially scanned", lib: a, elapsed: 0, scanned: map[int]bool{0: true}, wantIDs: []int{1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scanned := tt.scanned
			if scanned == nil {
				scanned = map[int]bool{}
			}
			picked := scanableBooks(tt.lib, inst.Days, tt.elapsed, scanned)
			var ids []int
			for _, b := range picked {
				ids = append(ids, b.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestScanableBooksGreedyHighestFirst(t *testing.T) {
	scores := []int{1, 9, 4}
	lib, err := buildLibrary(0, 0, 1, []int{0, 1, 2}, scores)
	require.NoError(t, err)

	// 2 days, ships 1/day: capacity 2 of 3 books, the two best win.
	picked := scanableBooks(lib, 2, 0, map[int]bool{})
	require.Len(t, picked, 2)
	assert.Equal(t, 9, picked[0].Score)
	assert.Equal(t, 4, picked[1].Score)
}

func TestEvaluateSmallScenario(t *testing.T) {
	inst := smallInstance()

	c := chromosomeFor(inst, 0, 1, 2)
	c.Evaluate()
	assert.Equal(t, 7, c.Score)
	assert.Equal(t, 2, c.Split)
	assert.Equal(t, 2, c.Libs[0].BooksChosen)
	assert.Equal(t, 1, c.Libs[1].BooksChosen)
	assert.Equal(t, 0, c.Libs[2].BooksChosen)

	// Order sensitivity: B first reaches the same total along another path.
	c = chromosomeFor(inst, 1, 0, 2)
	c.Evaluate()
	assert.Equal(t, 7, c.Score)
	assert.Equal(t, 2, c.Split)
}

func TestEvaluateSkippedLibraryInMiddle(t *testing.T) {
	inst := smallInstance()

	// C in the middle contributes nothing but stays in place: the split is
	// the index of the last contributor, past the skipped entry.
	c := chromosomeFor(inst, 0, 2, 1)
	c.Evaluate()
	assert.Equal(t, 7, c.Score)
	assert.Equal(t, 3, c.Split)
	assert.Equal(t, 0, c.Libs[1].BooksChosen)
}

func TestEvaluateDeterministic(t *testing.T) {
	inst := smallInstance()
	c := chromosomeFor(inst, 2, 0, 1)
	c.Evaluate()
	score, split := c.Score, c.Split
	for i := 0; i < 5; i++ {
		c.Evaluate()
		assert.Equal(t, score, c.Score)
		assert.Equal(t, split, c.Split)
	}
}

func TestScoreOrderingLeavesScratchUntouched(t *testing.T) {
	inst := smallInstance()
	c := chromosomeFor(inst, 0, 1, 2)
	c.Evaluate()

	chosen := []int{c.Libs[0].BooksChosen, c.Libs[1].BooksChosen, c.Libs[2].BooksChosen}
	got := scoreOrdering(c.Libs, c.Days)
	assert.Equal(t, c.Score, got)
	for i, lib := range c.Libs {
		assert.Equal(t, chosen[i], lib.BooksChosen)
	}
}
