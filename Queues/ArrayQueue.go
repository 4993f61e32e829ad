package Queues

type circArrQ[T comparable] struct {
	sz, head, tail uint
	content        []T
}

// MakeArrayQueue returns a queue backed by a circular slice with initCap slots.
// The slice grows by half when full; initCap==0 is treated as 1.
func MakeArrayQueue[T comparable](initCap uint) ArrayQueue[T] {
	if initCap == 0 {
		initCap = 1
	}
	return &circArrQ[T]{0, 0, 0, make([]T, initCap)}
}

func (this circArrQ[T]) Empty() bool {
	return this.sz == 0
}

func (this *circArrQ[T]) resize(newLen uint) {
	nc := make([]T, newLen)
	if this.sz > 0 {
		if this.head < this.tail {
			copy(nc, this.content[this.head:this.tail])
		} else {
			copy(nc, this.content[this.head:])
			copy(nc[uint(len(this.content))-this.head:], this.content[:this.tail])
		}
	}
	this.head, this.tail = 0, this.sz%newLen
	this.content = nc
}

// Shrink the underlying slice to fit the current content.
func (this *circArrQ[T]) Shrink() {
	this.resize(this.sz | 1)
}

func (this *circArrQ[T]) Clear() {
	clear(this.content)
	this.tail, this.head, this.sz = 0, 0, 0
}

func (this circArrQ[T]) Size() uint {
	return this.sz
}

func (this *circArrQ[T]) Push(item T) bool {
	if this.sz == uint(len(this.content)) {
		this.resize(this.sz*3/2 + 1)
	}
	this.content[this.tail] = item
	this.tail = (this.tail + 1) % uint(len(this.content))
	this.sz++
	return true
}

func (this *circArrQ[T]) Pop() (item T, e error) {
	if this.Empty() {
		return *new(T), &EmptyQueueError{}
	} else {
		t := this.content[this.head]
		this.content[this.head] = *new(T)
		this.head = (this.head + 1) % uint(len(this.content))
		this.sz--
		return t, nil
	}
}

func (this circArrQ[T]) Peek() (item T, e error) {
	if this.Empty() {
		return *new(T), &EmptyQueueError{}
	} else {
		return this.content[this.head], nil
	}
}

// Contains scans from head to tail.
// Time: O(n)
func (this circArrQ[T]) Contains(item T) bool {
	for i, n := this.head, uint(0); n < this.sz; i, n = (i+1)%uint(len(this.content)), n+1 {
		if this.content[i] == item {
			return true
		}
	}
	return false
}
