package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// ── Text format ─────────────────────────────────────────────────────
//
// The contest text format is a whitespace-separated integer stream:
//
//	B L D
//	score of each of the B books
//	then per library: N T M followed by its N book ids
//
// where T is the signup time in days and M the books shipped per day.

type intReader struct {
	fields []string
	pos    int
}

func (r *intReader) next() (int, error) {
	if r.pos >= len(r.fields) {
		return 0, fmt.Errorf("unexpected end of input at field %d", r.pos)
	}
	v, err := strconv.Atoi(r.fields[r.pos])
	if err != nil {
		return 0, fmt.Errorf("field %d: %w", r.pos, err)
	}
	r.pos++
	return v, nil
}

// ParseInstance parses the contest text format.
func ParseInstance(name string, data []byte) (*Instance, error) {
	r := &intReader{fields: strings.Fields(string(data))}

	numBooks, err := r.next()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	numLibs, err := r.next()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	days, err := r.next()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	if numBooks < 0 || numLibs < 0 || days <= 0 {
		return nil, fmt.Errorf("parse %s: invalid header %d/%d/%d", name, numBooks, numLibs, days)
	}

	scores := make([]int, numBooks)
	for i := range scores {
		if scores[i], err = r.next(); err != nil {
			return nil, fmt.Errorf("parse %s: book scores: %w", name, err)
		}
	}

	libs := make([]*Library, numLibs)
	for li := range libs {
		n, err := r.next()
		if err != nil {
			return nil, fmt.Errorf("parse %s: library %d: %w", name, li, err)
		}
		signup, err := r.next()
		if err != nil {
			return nil, fmt.Errorf("parse %s: library %d: %w", name, li, err)
		}
		ship, err := r.next()
		if err != nil {
			return nil, fmt.Errorf("parse %s: library %d: %w", name, li, err)
		}
		ids := make([]int, n)
		for i := range ids {
			if ids[i], err = r.next(); err != nil {
				return nil, fmt.Errorf("parse %s: library %d books: %w", name, li, err)
			}
		}
		libs[li], err = buildLibrary(li, signup, ship, ids, scores)
		if err != nil {
			return nil, fmt.Errorf("parse %s: library %d: %w", name, li, err)
		}
	}

	return &Instance{Name: name, Days: days, NumBooks: numBooks, Libraries: libs}, nil
}

// buildLibrary validates book ids against the score table and stores the
// library's books sorted by score descending, ties by id ascending, so the
// oracle's greedy pick is deterministic.
func buildLibrary(id, signup, ship int, bookIDs, scores []int) (*Library, error) {
	if signup < 0 || ship <= 0 {
		return nil, fmt.Errorf("invalid signup %d / shipPerDay %d", signup, ship)
	}
	books := make([]Book, len(bookIDs))
	for i, bid := range bookIDs {
		if bid < 0 || bid >= len(scores) {
			return nil, fmt.Errorf("book id %d out of range [0,%d)", bid, len(scores))
		}
		books[i] = Book{ID: bid, Score: scores[bid]}
	}
	sort.Slice(books, func(i, j int) bool {
		if books[i].Score != books[j].Score {
			return books[i].Score > books[j].Score
		}
		return books[i].ID < books[j].ID
	})
	return &Library{ID: id, Signup: signup, ShipPerDay: ship, Books: books}, nil
}

// ── JSON format ─────────────────────────────────────────────────────
//
// The JSON instance format carries the same data for web callers:
//
//	{
//	  "days": 7,
//	  "scores": [1, 2, 3],
//	  "libraries": [
//	    {"signup": 2, "shipPerDay": 1, "books": [0, 2]}
//	  ]
//	}

// ParseInstanceJSON parses the JSON instance format.
func ParseInstanceJSON(name string, data []byte) (*Instance, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("parse %s: invalid JSON", name)
	}
	doc := gjson.ParseBytes(data)

	days := int(doc.Get("days").Int())
	if days <= 0 {
		return nil, fmt.Errorf("parse %s: missing or invalid days", name)
	}

	var scores []int
	doc.Get("scores").ForEach(func(_, v gjson.Result) bool {
		scores = append(scores, int(v.Int()))
		return true
	})

	var libs []*Library
	var libErr error
	doc.Get("libraries").ForEach(func(_, v gjson.Result) bool {
		var ids []int
		v.Get("books").ForEach(func(_, b gjson.Result) bool {
			ids = append(ids, int(b.Int()))
			return true
		})
		lib, err := buildLibrary(len(libs), int(v.Get("signup").Int()), int(v.Get("shipPerDay").Int()), ids, scores)
		if err != nil {
			libErr = fmt.Errorf("library %d: %w", len(libs), err)
			return false
		}
		libs = append(libs, lib)
		return true
	})
	if libErr != nil {
		return nil, fmt.Errorf("parse %s: %w", name, libErr)
	}
	if len(libs) == 0 {
		return nil, fmt.Errorf("parse %s: no libraries", name)
	}

	return &Instance{Name: name, Days: days, NumBooks: len(scores), Libraries: libs}, nil
}

// LoadInstance reads an instance file, picking the parser by extension
// (.json for the JSON format, anything else for the text format).
func LoadInstance(path string) (*Instance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	name := filepath.Base(path)
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return ParseInstanceJSON(name, data)
	}
	return ParseInstance(name, data)
}
