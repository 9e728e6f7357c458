package fileio

import (
	"cmp"
	"io/fs"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/matzehuels/structkit/pkg/bst"
	"github.com/matzehuels/structkit/pkg/errors"
)

// Stats holds per-character counts for a text. Whitespace is ignored and the
// text is normalized to NFC first, so "é" written as one code point or as
// "e" plus a combining accent counts as the same character.
//
// Stats values are immutable once built.
type Stats struct {
	counts      map[rune]int
	mostPopular rune
	total       int
}

// CharCount pairs a character with its number of occurrences.
type CharCount struct {
	Char  rune
	Count int
}

// StatsFrom reads the named resource and computes its statistics.
// A text with no non-whitespace characters yields a NO_SUCH_ELEMENT error
// because it has no most frequent character.
func StatsFrom(fsys fs.FS, name string) (*Stats, error) {
	lines, err := readLines(fsys, name)
	if err != nil {
		return nil, err
	}
	s := newStats()
	for _, line := range lines {
		s.add(line)
	}
	if err := s.finish(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeNoSuchElement, err, "resource %q has no characters", name)
	}
	return s, nil
}

// StatsFromText computes statistics for text held in memory.
func StatsFromText(text string) (*Stats, error) {
	s := newStats()
	s.add(text)
	if err := s.finish(); err != nil {
		return nil, err
	}
	return s, nil
}

func newStats() *Stats {
	return &Stats{counts: make(map[rune]int)}
}

func (s *Stats) add(text string) {
	for _, r := range norm.NFC.String(text) {
		if unicode.IsSpace(r) {
			continue
		}
		s.counts[r]++
		s.total++
	}
}

func (s *Stats) finish() error {
	if len(s.counts) == 0 {
		return errors.New(errors.ErrCodeNoSuchElement, "text has no characters")
	}
	best, bestCount := rune(0), -1
	for r, n := range s.counts {
		// Ties go to the smallest code point so results are deterministic.
		if n > bestCount || (n == bestCount && r < best) {
			best, bestCount = r, n
		}
	}
	s.mostPopular = best
	return nil
}

// CharCount returns how many times r occurs; 0 when it never does.
func (s *Stats) CharCount(r rune) int { return s.counts[r] }

// MostPopular returns the most frequent character.
func (s *Stats) MostPopular() rune { return s.mostPopular }

// Contains reports whether r occurs at least once.
func (s *Stats) Contains(r rune) bool {
	_, ok := s.counts[r]
	return ok
}

// Distinct returns the number of different characters.
func (s *Stats) Distinct() int { return len(s.counts) }

// Total returns the number of counted (non-whitespace) characters.
func (s *Stats) Total() int { return s.total }

// Ranking returns every character ordered by descending count, ties broken
// by ascending code point. The first entry is always [Stats.MostPopular].
func (s *Stats) Ranking() []CharCount {
	tree := bst.NewFunc(func(a, b CharCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Char, b.Char)
	})
	for r, n := range s.counts {
		// CharCount is a struct, so Insert never sees a nil element, and
		// distinct runes never compare equal.
		_, _ = tree.Insert(CharCount{Char: r, Count: n})
	}
	out := make([]CharCount, 0, tree.Size())
	tree.InOrderTraversal(func(c CharCount) { out = append(out, c) })
	return out
}
