// Package diffstat accumulates line-change counts from unified-diff text.
//
// The parser scans the diff once, routing each added/removed content
// line through the language, line-kind and test-path classifiers into a
// set of monotonically increasing counters. All state lives for a single
// invocation.
package diffstat

import "github.com/Sumatoshi-tech/diffloc/pkg/lang"

// Stats holds the four change counters for one bucket. Counters only
// grow during a run; the zero value is ready to use.
type Stats struct {
	Added       int
	Removed     int
	TestAdded   int
	TestRemoved int
}

// Total returns production added + removed.
func (s Stats) Total() int {
	return s.Added + s.Removed
}

// TestTotal returns test added + removed.
func (s Stats) TestTotal() int {
	return s.TestAdded + s.TestRemoved
}

// count bumps exactly one of the four counters.
func (s *Stats) count(added, test bool) {
	switch {
	case test && added:
		s.TestAdded++
	case test:
		s.TestRemoved++
	case added:
		s.Added++
	default:
		s.Removed++
	}
}

// Result is the accumulator state produced by one parse: per-language
// code counters plus a single counter set for comment lines (comments
// are not split by language). A language has an entry in Code iff at
// least one code line of that language was seen.
type Result struct {
	Code     map[lang.Language]*Stats
	Comments Stats
}

// NewResult returns an empty accumulator.
func NewResult() *Result {
	return &Result{Code: map[lang.Language]*Stats{}}
}

// codeStats returns the counter set for a language, creating it on
// first use.
func (r *Result) codeStats(l lang.Language) *Stats {
	s, ok := r.Code[l]
	if !ok {
		s = &Stats{}
		r.Code[l] = s
	}

	return s
}

// GrandTotal sums production, test and comment totals across everything.
func (r *Result) GrandTotal() int {
	total := r.Comments.Total() + r.Comments.TestTotal()
	for _, s := range r.Code {
		total += s.Total() + s.TestTotal()
	}

	return total
}
