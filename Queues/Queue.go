package Queues

// Queue is a FIFO container. Push appends at the tail and Pop removes from the
// head. Pop and Peek return an *EmptyQueueError when there's nothing to return,
// in which case the value returned along with it is the zero value of T.
type Queue[T comparable] interface {
	//Push item to the tail. Returns true if item is enqueued.
	Push(item T) bool
	//Pop the head of the queue.
	Pop() (T, error)
	//Peek at the head of the queue without removing it.
	Peek() (T, error)
	Empty() bool
	Size() uint
	Clear()
	//Contains reports whether some element in the queue equals item.
	Contains(item T) bool
}

type ArrayQueue[T comparable] interface {
	Queue[T]
	Shrink()
	resize(newLen uint)
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
