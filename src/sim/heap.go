package sim

import (
	"container/heap"

	"elevatorsim/src/types"
)

// stopSet is an ordered multiset of floors an elevator must still visit.
// Min-ordered for up travel and max-ordered for down travel, so the nearest
// stop ahead is always at the head. Duplicate floors are allowed; unloading
// drains all leading entries for the current floor.
type stopSet struct {
	floors []int
	dir    types.Direction
}

func newStopSet(dir types.Direction) *stopSet {
	return &stopSet{dir: dir}
}

func (s *stopSet) Len() int { return len(s.floors) }

func (s *stopSet) Less(i, j int) bool {
	if s.dir == types.DirUp {
		return s.floors[i] < s.floors[j]
	}
	return s.floors[i] > s.floors[j]
}

func (s *stopSet) Swap(i, j int) { s.floors[i], s.floors[j] = s.floors[j], s.floors[i] }

func (s *stopSet) Push(x any) { s.floors = append(s.floors, x.(int)) }

func (s *stopSet) Pop() any {
	last := len(s.floors) - 1
	floor := s.floors[last]
	s.floors = s.floors[:last]
	return floor
}

func (s *stopSet) add(floor int) { heap.Push(s, floor) }

// head returns the nearest pending stop. Callers must check Len first.
func (s *stopSet) head() int { return s.floors[0] }

func (s *stopSet) remove() int { return heap.Pop(s).(int) }

// riderSet holds onboard passengers ordered by destination floor, ascending
// for up travel and descending for down travel. The nearest drop-off in the
// direction of travel is always at the head.
type riderSet struct {
	riders []*types.Passenger
	dir    types.Direction
}

func newRiderSet(dir types.Direction) *riderSet {
	return &riderSet{dir: dir}
}

func (r *riderSet) Len() int { return len(r.riders) }

func (r *riderSet) Less(i, j int) bool {
	if r.dir == types.DirUp {
		return r.riders[i].DestinationFloor < r.riders[j].DestinationFloor
	}
	return r.riders[i].DestinationFloor > r.riders[j].DestinationFloor
}

func (r *riderSet) Swap(i, j int) { r.riders[i], r.riders[j] = r.riders[j], r.riders[i] }

func (r *riderSet) Push(x any) { r.riders = append(r.riders, x.(*types.Passenger)) }

func (r *riderSet) Pop() any {
	last := len(r.riders) - 1
	p := r.riders[last]
	r.riders[last] = nil
	r.riders = r.riders[:last]
	return p
}

func (r *riderSet) add(p *types.Passenger) { heap.Push(r, p) }

// head returns the passenger with the nearest destination. Callers must
// check Len first.
func (r *riderSet) head() *types.Passenger { return r.riders[0] }

func (r *riderSet) remove() *types.Passenger { return heap.Pop(r).(*types.Passenger) }
