package Stacks

// Stack is a LIFO container. Pop and Peek return an *EmptyStackError on an
// empty stack together with the zero value of T.
type Stack[T any] interface {
	Push(item T)
	Pop() (T, error)
	Peek() (T, error)
	Empty() bool
	Size() uint
	Clear()
}

type EmptyStackError struct {
}

func (e *EmptyStackError) Error() string {
	return "Stack is Empty: cannot Pop."
}
