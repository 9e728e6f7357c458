package fileio

import (
	stderrors "errors"
	"os"
	"slices"
	"testing"
	"testing/fstest"

	"github.com/matzehuels/structkit/pkg/errors"
)

func asError(err error, target **errors.Error) bool {
	return stderrors.As(err, target)
}

func TestStatsFrom(t *testing.T) {
	s, err := StatsFrom(os.DirFS("testdata"), "sample.txt")
	if err != nil {
		t.Fatalf("StatsFrom() error = %v", err)
	}

	tests := []struct {
		char rune
		want int
	}{
		{'o', 6},
		{'e', 4},
		{'H', 1},
		{'T', 1},
		{'.', 1},
		{' ', 0},
		{'\n', 0},
		{'z', 1},
		{'Z', 0},
	}
	for _, tt := range tests {
		if got := s.CharCount(tt.char); got != tt.want {
			t.Errorf("CharCount(%q) = %v, want %v", tt.char, got, tt.want)
		}
	}

	if s.MostPopular() != 'o' {
		t.Errorf("MostPopular() = %q, want 'o'", s.MostPopular())
	}
	if !s.Contains('!') || s.Contains(' ') {
		t.Error("Contains() should report '!' and ignore whitespace")
	}
}

func TestStatsFrom_Missing(t *testing.T) {
	_, err := StatsFrom(fstest.MapFS{}, "nope.txt")
	if !errors.Is(err, errors.ErrCodeResourceAccess) {
		t.Errorf("StatsFrom() error = %v, want %v", err, errors.ErrCodeResourceAccess)
	}
}

func TestStatsFrom_Empty(t *testing.T) {
	_, err := StatsFrom(os.DirFS("testdata"), "empty.txt")
	if !errors.Is(err, errors.ErrCodeNoSuchElement) {
		t.Errorf("StatsFrom() error = %v, want %v", err, errors.ErrCodeNoSuchElement)
	}
}

func TestStatsFromText_NormalizesCombiningMarks(t *testing.T) {
	// "é" precomposed and "e" + U+0301 must count as one character.
	s, err := StatsFromText("\u00e9 e\u0301")
	if err != nil {
		t.Fatalf("StatsFromText() error = %v", err)
	}
	if got := s.CharCount('é'); got != 2 {
		t.Errorf("CharCount('é') = %v, want 2", got)
	}
	if s.Distinct() != 1 {
		t.Errorf("Distinct() = %v, want 1", s.Distinct())
	}
}

func TestStatsFromText_TieBreak(t *testing.T) {
	s, _ := StatsFromText("bbaa")
	if s.MostPopular() != 'a' {
		t.Errorf("MostPopular() = %q, want 'a' on a tie", s.MostPopular())
	}
}

func TestStats_Ranking(t *testing.T) {
	s, _ := StatsFromText("c bb aaa d")
	want := []CharCount{{'a', 3}, {'b', 2}, {'c', 1}, {'d', 1}}
	if got := s.Ranking(); !slices.Equal(got, want) {
		t.Errorf("Ranking() = %v, want %v", got, want)
	}
	if s.Total() != 7 {
		t.Errorf("Total() = %v, want 7", s.Total())
	}
}

func TestStats_RankingKeepsEveryCharacter(t *testing.T) {
	s, _ := StatsFromText("abcabcxyz xyz q")
	ranking := s.Ranking()
	if len(ranking) != s.Distinct() {
		t.Fatalf("Ranking() has %d entries, want %d", len(ranking), s.Distinct())
	}
	total := 0
	for _, cc := range ranking {
		total += cc.Count
	}
	if total != s.Total() {
		t.Errorf("Ranking() counts sum to %d, want %d", total, s.Total())
	}
}
