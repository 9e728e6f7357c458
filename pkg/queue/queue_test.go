package queue

import (
	"slices"
	"testing"
)

func TestLinkedQueue_Add(t *testing.T) {
	q := New[string]()
	tests := []struct {
		val  string
		size int
	}{
		{val: "one", size: 1},
		{val: "two", size: 2},
		{val: "three", size: 3},
	}
	for _, tt := range tests {
		t.Run(tt.val, func(t *testing.T) {
			q.Add(tt.val)
			if sz := q.Size(); sz != tt.size {
				t.Errorf("Size() = %v, want %v", sz, tt.size)
			}
		})
	}
	if q.head == nil || q.tail == nil || q.tail.value != "three" {
		t.Error("tail should point at the last added node")
	}
}

func TestLinkedQueue_FirstAddSetsHeadAndTail(t *testing.T) {
	q := New[int]()
	q.Add(1)
	if q.head != q.tail {
		t.Error("a single-element queue should have head == tail")
	}
}

func TestLinkedQueue_PollFIFO(t *testing.T) {
	added := []int{4, 8, 15, 16, 23, 42}
	q := Of(added...)

	var polled []int
	for range added {
		v, ok := q.Poll()
		if !ok {
			t.Fatal("Poll() ok = false before queue drained")
		}
		polled = append(polled, v)
	}

	if !slices.Equal(polled, added) {
		t.Errorf("poll order = %v, want %v", polled, added)
	}
}

func TestLinkedQueue_PollEmpty(t *testing.T) {
	q := New[string]()
	v, ok := q.Poll()
	if ok || v != "" {
		t.Errorf("Poll() on empty queue = %q, %v, want \"\", false", v, ok)
	}
}

func TestLinkedQueue_PollLastResetsTail(t *testing.T) {
	q := Of(1)
	q.Poll()
	if q.head != nil || q.tail != nil {
		t.Error("removing the only node should reset head and tail")
	}

	// The queue must stay usable after draining.
	q.Add(2)
	q.Add(3)
	if v, _ := q.Poll(); v != 2 {
		t.Errorf("Poll() = %v, want 2", v)
	}
	if q.Size() != 1 {
		t.Errorf("Size() = %v, want 1", q.Size())
	}
}

func TestLinkedQueue_Interleaved(t *testing.T) {
	q := New[int]()
	q.Add(1)
	q.Add(2)
	q.Poll()
	q.Add(3)

	var got []int
	for v, ok := q.Poll(); ok; v, ok = q.Poll() {
		got = append(got, v)
	}
	if want := []int{2, 3}; !slices.Equal(got, want) {
		t.Errorf("drained = %v, want %v", got, want)
	}
	if !q.IsEmpty() {
		t.Error("IsEmpty() = false after draining")
	}
}

func TestLinkedQueue_Clear(t *testing.T) {
	q := Of("a", "b")
	q.Clear()
	if !q.IsEmpty() || q.head != nil || q.tail != nil {
		t.Error("Clear() should reset the queue")
	}
}
