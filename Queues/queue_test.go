package Queues

import (
	"math/rand"
	"testing"

	"github.com/cockroachdb/errors"
)

var rg = rand.New(rand.NewSource(0))

func makers() map[string]func() Queue[int] {
	return map[string]func() Queue[int]{
		"array":  func() Queue[int] { return MakeArrayQueue[int](1) },
		"linked": MakeLinkedQueue[int],
	}
}

func TestQueue_FIFO(t *testing.T) {
	for name, mk := range makers() {
		q := mk()
		for i := 0; i < 100; i++ {
			if !q.Push(i) {
				t.Errorf("%s: failed to push %d", name, i)
			}
		}
		if q.Size() != 100 {
			t.Errorf("%s: size is %d, want 100", name, q.Size())
		}
		for i := 0; i < 100; i++ {
			if v, err := q.Peek(); err != nil || v != i {
				t.Errorf("%s: peek got %d %v, want %d", name, v, err, i)
			}
			if v, err := q.Pop(); err != nil || v != i {
				t.Errorf("%s: pop got %d %v, want %d", name, v, err, i)
			}
		}
		if !q.Empty() {
			t.Errorf("%s: queue not empty", name)
		}
	}
}

func TestQueue_Empty(t *testing.T) {
	for name, mk := range makers() {
		q := mk()
		var e *EmptyQueueError
		if _, err := q.Pop(); !errors.As(err, &e) {
			t.Errorf("%s: pop on empty queue returned %v", name, err)
		}
		if _, err := q.Peek(); !errors.As(err, &e) {
			t.Errorf("%s: peek on empty queue returned %v", name, err)
		}
		q.Push(1)
		q.Clear()
		if !q.Empty() || q.Size() != 0 {
			t.Errorf("%s: clear left %d items", name, q.Size())
		}
		if q.Contains(1) {
			t.Errorf("%s: cleared queue contains 1", name)
		}
	}
}

func TestQueue_Contains(t *testing.T) {
	for name, mk := range makers() {
		q := mk()
		for i := 0; i < 10; i++ {
			q.Push(i)
		}
		for i := 0; i < 5; i++ {
			q.Pop()
		}
		for i := 0; i < 10; i++ {
			if q.Contains(i) != (i >= 5) {
				t.Errorf("%s: wrong contains %d", name, i)
			}
		}
	}
}

// Interleave pushes and pops so the circular buffer wraps and resizes while
// wrapped.
func TestArrayQueue_Wrap(t *testing.T) {
	q := MakeArrayQueue[int](4)
	var model []int
	for i := 0; i < 2000; i++ {
		if rg.Intn(3) == 0 && len(model) > 0 {
			v, err := q.Pop()
			if err != nil || v != model[0] {
				t.Fatalf("pop got %d %v, want %d", v, err, model[0])
			}
			model = model[1:]
		} else {
			q.Push(i)
			model = append(model, i)
		}
		if i%97 == 0 {
			q.Shrink()
		}
	}
	if q.Size() != uint(len(model)) {
		t.Errorf("size is %d, want %d", q.Size(), len(model))
	}
	for _, want := range model {
		if v, _ := q.Pop(); v != want {
			t.Errorf("drain got %d, want %d", v, want)
		}
	}
}
