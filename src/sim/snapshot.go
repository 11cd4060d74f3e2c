package sim

import (
	"github.com/tiendc/go-deepcopy"

	"elevatorsim/src/types"
)

// ElevatorSnapshot is an aliasing-free copy of an elevator's visible state,
// safe to inspect or log while the simulation keeps mutating the original.
type ElevatorSnapshot struct {
	ID           int
	CurrentFloor int
	Direction    types.Direction
	OnboardUp    []types.Passenger
	OnboardDown  []types.Passenger
	PendingUp    []int
	PendingDown  []int
}

// Snapshot deep-copies the elevator's state. Onboard groups and pending
// stops come out in heap order, not sorted order.
func (e *Elevator) Snapshot() ElevatorSnapshot {
	snap := ElevatorSnapshot{
		ID:           e.id,
		CurrentFloor: e.currentFloor,
		Direction:    e.dir,
	}
	if err := deepcopy.Copy(&snap.OnboardUp, e.onboardUp.riders); err != nil {
		panic(err)
	}
	if err := deepcopy.Copy(&snap.OnboardDown, e.onboardDown.riders); err != nil {
		panic(err)
	}
	if err := deepcopy.Copy(&snap.PendingUp, e.pendingUp.floors); err != nil {
		panic(err)
	}
	if err := deepcopy.Copy(&snap.PendingDown, e.pendingDown.floors); err != nil {
		panic(err)
	}
	return snap
}

// Snapshot copies the state of every elevator in construction order.
func (s *Simulation) Snapshot() []ElevatorSnapshot {
	snaps := make([]ElevatorSnapshot, 0, len(s.elevators))
	for _, elevator := range s.elevators {
		snaps = append(snaps, elevator.Snapshot())
	}
	return snaps
}
