package Queues

import (
	"github.com/emirpasic/gods/queues/linkedlistqueue"
)

// linkedQ adapts gods' singly linked list queue to Queue. Values are stored as
// interface{} by gods and asserted back to T on the way out.
type linkedQ[T comparable] struct {
	q *linkedlistqueue.Queue
}

// MakeLinkedQueue returns an unbounded queue backed by a singly linked list.
// Push and Pop are O(1) and never reallocate.
func MakeLinkedQueue[T comparable]() Queue[T] {
	return &linkedQ[T]{linkedlistqueue.New()}
}

func (u *linkedQ[T]) Push(item T) bool {
	u.q.Enqueue(item)
	return true
}

func (u *linkedQ[T]) Pop() (T, error) {
	if v, ok := u.q.Dequeue(); ok {
		return v.(T), nil
	}
	return *new(T), &EmptyQueueError{}
}

func (u *linkedQ[T]) Peek() (T, error) {
	if v, ok := u.q.Peek(); ok {
		return v.(T), nil
	}
	return *new(T), &EmptyQueueError{}
}

func (u *linkedQ[T]) Empty() bool {
	return u.q.Empty()
}

func (u *linkedQ[T]) Size() uint {
	return uint(u.q.Size())
}

func (u *linkedQ[T]) Clear() {
	u.q.Clear()
}

// Contains walks the queue from head to tail.
// Time: O(n)
func (u *linkedQ[T]) Contains(item T) bool {
	for it := u.q.Iterator(); it.Next(); {
		if it.Value().(T) == item {
			return true
		}
	}
	return false
}
