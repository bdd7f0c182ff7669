// Package Queues holds the FIFO containers used by the breadth-first walks in Trees.
package Queues

// Queue is a first-in-first-out container.
type Queue[T any] interface {
	Push(item T)
	//Pop the oldest item. Returns EmptyQueueError if there is nothing to pop.
	Pop() (T, error)
	//Peek at the oldest item without removing it. The zero value of T is
	//returned for an empty queue.
	Peek() T
	Empty() bool
}

// ArrayQueue is a Queue backed by a single growable slice.
type ArrayQueue[T any] interface {
	Queue[T]
	//Shrink the backing slice to fit the current items.
	Shrink()
	//Clear removes all items but keeps the backing slice.
	Clear()
	Size() uint
	resize(newLen uint)
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
