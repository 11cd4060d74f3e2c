package sim

import (
	"fmt"

	"elevatorsim/src/logger"
	"elevatorsim/src/types"
)

// An elevator travels at most this many floors per tick.
const maxFloorsPerTick = 5

// CompletionReporter receives the conveyance time of every delivered
// passenger.
type CompletionReporter interface {
	ReportCompletion(conveyanceTime int)
}

// Elevator is the dispatch state machine. It holds onboard passengers and
// pending stops in per-direction ordered sets and honors one committed
// direction at a time; the commitment is only re-chosen when the elevator is
// fully idle.
type Elevator struct {
	id           int
	currentFloor int
	maxFloor     int
	capacity     int
	dir          types.Direction
	onboardUp    *riderSet
	onboardDown  *riderSet
	pendingUp    *stopSet
	pendingDown  *stopSet
}

// NewElevator starts the elevator idle and empty at floor 1, facing up.
func NewElevator(id, maxFloor, capacity int) *Elevator {
	return &Elevator{
		id:           id,
		currentFloor: 1,
		maxFloor:     maxFloor,
		capacity:     capacity,
		dir:          types.DirUp,
		onboardUp:    newRiderSet(types.DirUp),
		onboardDown:  newRiderSet(types.DirDown),
		pendingUp:    newStopSet(types.DirUp),
		pendingDown:  newStopSet(types.DirDown),
	}
}

func (e *Elevator) onboard(dir types.Direction) *riderSet {
	if dir == types.DirUp {
		return e.onboardUp
	}
	return e.onboardDown
}

func (e *Elevator) pending(dir types.Direction) *stopSet {
	if dir == types.DirUp {
		return e.pendingUp
	}
	return e.pendingDown
}

// UnloadAt delivers every onboard passenger in the committed direction whose
// destination is the current floor, stamping its end tick and reporting its
// conveyance time. Leading pending stops for this floor are dropped
// afterwards; those are pickup floors that needed no drop-off. The floor
// argument must match the elevator's position, which guards against stale
// calls within the same tick.
func (e *Elevator) UnloadAt(floor, tick int, reporter CompletionReporter) {
	riders := e.onboard(e.dir)
	for riders.Len() > 0 && riders.head().DestinationFloor == e.currentFloor && e.currentFloor == floor {
		p := riders.remove()
		p.EndTick = tick
		reporter.ReportCompletion(p.ConveyanceTime())
		logger.Get().Debug().
			Int("elevator", e.id).
			Int("floor", floor).
			Int("tick", tick).
			Int("conveyanceTime", p.ConveyanceTime()).
			Stringer("passenger", p.ID).
			Msg("Unloaded passenger")
	}

	stops := e.pending(e.dir)
	for stops.Len() > 0 && stops.head() == e.currentFloor && e.currentFloor == floor {
		stops.remove()
	}
}

// Load boards a waiting passenger. A fully idle elevator accepts any
// passenger and re-commits to its direction; otherwise the passenger must
// match the committed direction and the matching onboard group must have
// spare capacity. Rejection has no side effects.
func (e *Elevator) Load(p *types.Passenger) bool {
	if !e.Active() {
		e.dir = p.Direction()
	} else if p.Direction() != e.dir || e.onboard(e.dir).Len() >= e.capacity {
		return false
	}
	e.onboard(e.dir).add(p)
	e.pending(e.dir).add(p.DestinationFloor)
	return true
}

// RequestPickup books a future stop at the passenger's floor. An idle
// elevator always accepts and commits toward the requester's floor from its
// own position, regardless of where the passenger wants to go afterwards.
// An active elevator accepts only a matching-direction request for a floor
// it has not yet reached; the comparison is strict because an elevator
// already stopped there cannot take more riders on this visit.
func (e *Elevator) RequestPickup(p *types.Passenger) bool {
	if !e.Active() {
		e.dir = types.DirectionBetween(e.currentFloor, p.StartFloor)
		e.pending(e.dir).add(p.StartFloor)
		return true
	}
	if p.Direction() != e.dir || e.onboard(e.dir).Len() >= e.capacity {
		return false
	}
	ahead := (e.dir == types.DirUp && e.currentFloor < p.StartFloor) ||
		(e.dir == types.DirDown && e.currentFloor > p.StartFloor)
	if !ahead {
		return false
	}
	e.pending(e.dir).add(p.StartFloor)
	return true
}

// Travel moves toward the nearest pending stop in the committed direction,
// at most maxFloorsPerTick floors, never overshooting the target and never
// leaving [1, maxFloor]. Idle elevators stay put.
func (e *Elevator) Travel() {
	if !e.Active() {
		return
	}
	target := e.currentFloor
	if stops := e.pending(e.dir); stops.Len() > 0 {
		target = stops.head()
	}
	distance := min(abs(target-e.currentFloor), maxFloorsPerTick)
	if e.dir == types.DirUp {
		e.currentFloor = min(e.currentFloor+distance, e.maxFloor)
	} else {
		e.currentFloor = max(e.currentFloor-distance, 1)
	}
}

// Active reports whether any onboard passenger or pending stop exists in
// either direction group.
func (e *Elevator) Active() bool {
	return e.onboardUp.Len() > 0 || e.onboardDown.Len() > 0 ||
		e.pendingUp.Len() > 0 || e.pendingDown.Len() > 0
}

func (e *Elevator) CurrentFloor() int { return e.currentFloor }

func (e *Elevator) Direction() types.Direction { return e.dir }

// OnboardCount reports the size of one direction group.
func (e *Elevator) OnboardCount(dir types.Direction) int {
	return e.onboard(dir).Len()
}

func (e *Elevator) String() string {
	return fmt.Sprintf("Elevator{id=%d floor=%d dir=%s onboardUp=%d onboardDown=%d pendingUp=%d pendingDown=%d}",
		e.id, e.currentFloor, e.dir, e.onboardUp.Len(), e.onboardDown.Len(), e.pendingUp.Len(), e.pendingDown.Len())
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
