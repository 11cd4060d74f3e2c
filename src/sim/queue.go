package sim

import (
	"container/list"

	"elevatorsim/src/config"
	"elevatorsim/src/types"
)

// waitQueue is a FIFO of passengers waiting on a floor. Boarding order is
// arrival order.
type waitQueue interface {
	Enqueue(p *types.Passenger)
	Dequeue() *types.Passenger
	Peek() *types.Passenger
	Len() int
	// Each visits every waiting passenger in FIFO order.
	Each(fn func(p *types.Passenger))
}

// newWaitQueue picks the queue backend from the container strategy. Both
// backends behave identically.
func newWaitQueue(strategy config.Structures) waitQueue {
	if strategy == config.StructArray {
		return &sliceQueue{}
	}
	return &listQueue{entries: list.New()}
}

type sliceQueue struct {
	items []*types.Passenger
}

func (q *sliceQueue) Enqueue(p *types.Passenger) { q.items = append(q.items, p) }

func (q *sliceQueue) Dequeue() *types.Passenger {
	if len(q.items) == 0 {
		return nil
	}
	p := q.items[0]
	q.items[0] = nil
	q.items = q.items[1:]
	return p
}

func (q *sliceQueue) Peek() *types.Passenger {
	if len(q.items) == 0 {
		return nil
	}
	return q.items[0]
}

func (q *sliceQueue) Len() int { return len(q.items) }

func (q *sliceQueue) Each(fn func(p *types.Passenger)) {
	for _, p := range q.items {
		fn(p)
	}
}

type listQueue struct {
	entries *list.List
}

func (q *listQueue) Enqueue(p *types.Passenger) { q.entries.PushBack(p) }

func (q *listQueue) Dequeue() *types.Passenger {
	front := q.entries.Front()
	if front == nil {
		return nil
	}
	q.entries.Remove(front)
	return front.Value.(*types.Passenger)
}

func (q *listQueue) Peek() *types.Passenger {
	front := q.entries.Front()
	if front == nil {
		return nil
	}
	return front.Value.(*types.Passenger)
}

func (q *listQueue) Len() int { return q.entries.Len() }

func (q *listQueue) Each(fn func(p *types.Passenger)) {
	for e := q.entries.Front(); e != nil; e = e.Next() {
		fn(e.Value.(*types.Passenger))
	}
}
