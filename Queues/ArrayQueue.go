package Queues

// circArrQ is a ring buffer. Items live in content[head], content[head+1], ...
// wrapping at len(content); sz of them are valid.
type circArrQ[T any] struct {
	sz, head uint
	content  []T
}

// MakeArrayQueue returns an empty ArrayQueue with room for initCap items before
// the first resize.
func MakeArrayQueue[T any](initCap uint) ArrayQueue[T] {
	return &circArrQ[T]{0, 0, make([]T, initCap)}
}

func (u *circArrQ[T]) Empty() bool {
	return u.sz == 0
}

// resize copies the live items into a new slice of newLen, with head moved to 0.
// newLen must be at least sz.
func (u *circArrQ[T]) resize(newLen uint) {
	nc := make([]T, newLen)
	if n := uint(len(u.content)); u.head+u.sz <= n {
		copy(nc, u.content[u.head:u.head+u.sz])
	} else {
		k := copy(nc, u.content[u.head:])
		copy(nc[k:], u.content[:u.sz-uint(k)])
	}
	u.content, u.head = nc, 0
}

func (u *circArrQ[T]) Shrink() {
	u.resize(u.sz | 1)
}

func (u *circArrQ[T]) Clear() {
	clear(u.content)
	u.head, u.sz = 0, 0
}

func (u *circArrQ[T]) Size() uint {
	return u.sz
}

func (u *circArrQ[T]) Push(item T) {
	if u.sz == uint(len(u.content)) {
		u.resize(u.sz + u.sz>>1 + 1)
	}
	u.content[(u.head+u.sz)%uint(len(u.content))] = item
	u.sz++
}

func (u *circArrQ[T]) Pop() (item T, e error) {
	if u.Empty() {
		return *new(T), &EmptyQueueError{}
	}
	item = u.content[u.head]
	u.content[u.head] = *new(T)
	u.head = (u.head + 1) % uint(len(u.content))
	u.sz--
	return item, nil
}

func (u *circArrQ[T]) Peek() (item T) {
	if u.Empty() {
		return *new(T)
	}
	return u.content[u.head]
}
