package main

import (
	"fmt"
	"os"
	"strings"
)

// SubmissionEntry is one signed-up library and the books it ships, in
// shipping order.
type SubmissionEntry struct {
	LibraryID int
	BookIDs   []int
}

// Submission is the persisted form of a solution: the contributing libraries
// in signup order plus the rechecked total score.
type Submission struct {
	Entries []SubmissionEntry
	Score   int
}

// BuildSubmission replays the oracle over the chromosome's ordering and
// collects every contributing library with its shipped books. Libraries with
// an empty claim are dropped from the output, matching the evaluator's
// skip-in-place rule. The rebuilt score equals the evaluator's score for the
// same ordering.
func BuildSubmission(c *Chromosome) *Submission {
	sub := &Submission{}
	elapsed := 0
	scanned := make(map[int]bool)
	for _, lib := range c.Libs {
		picked := scanableBooks(lib, c.Days, elapsed, scanned)
		if len(picked) == 0 {
			continue
		}
		ids := make([]int, len(picked))
		for i, b := range picked {
			ids[i] = b.ID
			sub.Score += b.Score
			scanned[b.ID] = true
		}
		sub.Entries = append(sub.Entries, SubmissionEntry{LibraryID: lib.ID, BookIDs: ids})
		elapsed += lib.Signup
	}
	return sub
}

// Format renders the contest submission text: the number of signed-up
// libraries, then per library a line with its id and book count followed by a
// line with its shipped book ids.
func (s *Submission) Format() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d\n", len(s.Entries))
	for _, e := range s.Entries {
		fmt.Fprintf(&b, "%d %d\n", e.LibraryID, len(e.BookIDs))
		for i, id := range e.BookIDs {
			if i > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%d", id)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// WriteResult writes the rendered submission to path.
func WriteResult(s *Submission, path string) error {
	if err := os.WriteFile(path, []byte(s.Format()), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
