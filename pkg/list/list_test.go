package list

import (
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/matzehuels/structkit/pkg/errors"
)

// outcome captures everything a caller can observe from one operation.
type outcome struct {
	value int
	ok    bool
	code  errors.Code
}

func observe(v int, err error) outcome {
	return outcome{value: v, code: errors.GetCode(err)}
}

type op struct {
	name  string
	index int
	value int
}

func (o op) apply(l List[int]) outcome {
	switch o.name {
	case "add":
		l.Add(o.value)
		return outcome{}
	case "insert":
		return observe(0, l.Insert(o.index, o.value))
	case "set":
		return observe(0, l.Set(o.index, o.value))
	case "get":
		return observe(l.Get(o.index))
	case "remove":
		return observe(l.Remove(o.index))
	case "first":
		return observe(l.First())
	case "last":
		return observe(l.Last())
	case "contains":
		return outcome{ok: l.Contains(o.value)}
	case "clear":
		l.Clear()
		return outcome{}
	}
	panic("unknown op " + o.name)
}

func TestListsBehaveIdentically_Example(t *testing.T) {
	for _, l := range []List[int]{OfLinked(1, 2, 3), OfArray(1, 2, 3)} {
		if _, err := l.Remove(1); err != nil {
			t.Fatalf("%T.Remove(1) error = %v", l, err)
		}
		if got := Values(l); !slices.Equal(got, []int{1, 3}) {
			t.Errorf("%T contents = %v, want [1 3]", l, got)
		}
	}
}

func TestListsBehaveIdentically_Random(t *testing.T) {
	names := []string{"add", "insert", "set", "get", "remove", "first", "last", "contains", "clear"}

	for seed := uint64(1); seed <= 20; seed++ {
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			rng := rand.New(rand.NewPCG(seed, seed*31))
			linked := NewLinkedList[int]()
			array, _ := NewArrayList[int](1)

			for step := range 300 {
				name := names[rng.IntN(len(names))]
				if name == "clear" && rng.IntN(10) > 0 {
					name = "add" // keep lists non-trivial most of the time
				}
				o := op{name: name, index: rng.IntN(linked.Size()+3) - 1, value: rng.IntN(10)}

				got, want := o.apply(array), o.apply(linked)
				if got != want {
					t.Fatalf("step %d %+v: ArrayList = %+v, LinkedList = %+v", step, o, got, want)
				}
				if a, l := Values[int](array), Values[int](linked); !slices.Equal(a, l) {
					t.Fatalf("step %d %+v: contents diverged: %v vs %v", step, o, a, l)
				}
			}
		})
	}
}

func TestValues(t *testing.T) {
	l := OfLinked("x", "y")
	if got := Values[string](l); !slices.Equal(got, []string{"x", "y"}) {
		t.Errorf("Values() = %v", got)
	}
}

func TestAll_StopsEarly(t *testing.T) {
	for _, l := range []List[int]{OfLinked(1, 2, 3), OfArray(1, 2, 3)} {
		var seen []int
		for i, v := range l.All() {
			seen = append(seen, v)
			if i == 1 {
				break
			}
		}
		if !slices.Equal(seen, []int{1, 2}) {
			t.Errorf("%T: iterated %v, want [1 2]", l, seen)
		}
	}
}

func TestLists_ExtremeIndices(t *testing.T) {
	indices := []int{math.MinInt, math.MinInt + 1, -1, 3, 4, math.MaxInt - 1, math.MaxInt}
	names := []string{"get", "set", "insert", "remove"}

	lists := map[string]func() List[int]{
		"linked": func() List[int] { return OfLinked(1, 2, 3) },
		"array":  func() List[int] { return OfArray(1, 2, 3) },
	}
	for kind, build := range lists {
		for _, name := range names {
			for _, index := range indices {
				if name == "insert" && index == 3 {
					continue // appending at Size() is valid
				}
				t.Run(fmt.Sprintf("%s/%s/%d", kind, name, index), func(t *testing.T) {
					l := build()
					got := op{name: name, index: index, value: 9}.apply(l)
					if got.code != errors.ErrCodeIndexOutOfBounds {
						t.Errorf("%s(%d) code = %q, want %q", name, index, got.code, errors.ErrCodeIndexOutOfBounds)
					}
					if vals := Values(l); !slices.Equal(vals, []int{1, 2, 3}) || l.Size() != 3 {
						t.Errorf("%s(%d) changed the list to %v", name, index, vals)
					}
				})
			}
		}
	}
}
