package Stacks

import (
	"github.com/emirpasic/gods/stacks/arraystack"
)

type arrStack[T any] struct {
	s *arraystack.Stack
}

// MakeArrayStack returns a stack backed by a growable array.
func MakeArrayStack[T any]() Stack[T] {
	return &arrStack[T]{arraystack.New()}
}

func (u *arrStack[T]) Push(item T) {
	u.s.Push(item)
}

func (u *arrStack[T]) Pop() (T, error) {
	if v, ok := u.s.Pop(); ok {
		return v.(T), nil
	}
	return *new(T), &EmptyStackError{}
}

func (u *arrStack[T]) Peek() (T, error) {
	if v, ok := u.s.Peek(); ok {
		return v.(T), nil
	}
	return *new(T), &EmptyStackError{}
}

func (u *arrStack[T]) Empty() bool {
	return u.s.Empty()
}

func (u *arrStack[T]) Size() uint {
	return uint(u.s.Size())
}

func (u *arrStack[T]) Clear() {
	u.s.Clear()
}
