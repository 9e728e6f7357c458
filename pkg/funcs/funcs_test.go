package funcs

import (
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/structkit/pkg/errors"
)

func TestIntFunctionMap(t *testing.T) {
	m := IntFunctionMap()

	tests := []struct {
		fn   string
		x    int
		want int
	}{
		{"abs", -7, 7},
		{"abs", 7, 7},
		{"abs", 0, 0},
		{"sgn", -42, -1},
		{"sgn", 0, 0},
		{"sgn", 13, 1},
		{"increment", 9, 10},
		{"decrement", 0, -1},
		{"square", -4, 16},
		{"square", 12, 144},
	}

	for _, tt := range tests {
		t.Run(tt.fn, func(t *testing.T) {
			got, err := m.Apply(tt.fn, tt.x)
			if err != nil {
				t.Fatalf("Apply(%q, %d) error = %v", tt.fn, tt.x, err)
			}
			if got != tt.want {
				t.Errorf("Apply(%q, %d) = %d, want %d", tt.fn, tt.x, got, tt.want)
			}
		})
	}
}

func TestFunctionMap_Names(t *testing.T) {
	want := []string{"abs", "decrement", "increment", "sgn", "square"}
	if got := IntFunctionMap().Names(); !slices.Equal(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestFunctionMap_Unknown(t *testing.T) {
	m := IntFunctionMap()
	if _, err := m.Get("cube"); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("Get() error = %v, want %v", err, errors.ErrCodeNotFound)
	}
	if _, err := m.Apply("cube", 3); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("Apply() error = %v, want %v", err, errors.ErrCodeNotFound)
	}
}

func TestFunctionMap_ZeroValue(t *testing.T) {
	var m FunctionMap[string, string]
	if err := m.Add("upper", strings.ToUpper); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	got, err := m.Apply("upper", "lh400")
	if err != nil || got != "LH400" {
		t.Errorf("Apply() = %q, %v; want LH400", got, err)
	}
	if m.Len() != 1 {
		t.Errorf("Len() = %d, want 1", m.Len())
	}
}

func TestFunctionMap_AddInvalid(t *testing.T) {
	m := NewFunctionMap[int, int]()
	if err := m.Add("", Abs); !errors.Is(err, errors.ErrCodeInvalidArgument) {
		t.Errorf("Add(\"\") error = %v", err)
	}
	if err := m.Add("nil", nil); !errors.Is(err, errors.ErrCodeInvalidArgument) {
		t.Errorf("Add(nil) error = %v", err)
	}
}

func TestFunctionMap_Replace(t *testing.T) {
	m := IntFunctionMap()
	_ = m.Add("square", func(x int) int { return x * x * x })
	if got, _ := m.Apply("square", 2); got != 8 {
		t.Errorf("replaced square(2) = %d, want 8", got)
	}
}

func TestIntFunctionMap_RegistersEveryFunction(t *testing.T) {
	m := IntFunctionMap()
	want := []string{"abs", "decrement", "increment", "sgn", "square"}
	if got := m.Names(); !slices.Equal(got, want) || m.Len() != len(want) {
		t.Errorf("Names() = %v (Len %d), want %v", got, m.Len(), want)
	}
}
