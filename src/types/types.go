package types

import (
	"fmt"

	"github.com/google/uuid"
)

// Direction is the travel direction an elevator or passenger is committed to.
type Direction int

const (
	DirUp   Direction = 1
	DirDown Direction = -1
)

func (d Direction) String() string {
	if d == DirUp {
		return "up"
	}
	return "down"
}

// DirectionBetween returns the direction of travel from one floor to
// another. Equal floors resolve to down.
func DirectionBetween(from, to int) Direction {
	if from < to {
		return DirUp
	}
	return DirDown
}

// Passenger describes one rider's journey. StartTick is stamped by the tick
// loop when the passenger begins waiting, EndTick by the elevator that
// unloads it.
type Passenger struct {
	ID               uuid.UUID
	StartFloor       int
	DestinationFloor int
	StartTick        int
	EndTick          int
}

func NewPassenger(startFloor, destinationFloor int) *Passenger {
	return &Passenger{
		ID:               uuid.New(),
		StartFloor:       startFloor,
		DestinationFloor: destinationFloor,
	}
}

func (p *Passenger) Direction() Direction {
	return DirectionBetween(p.StartFloor, p.DestinationFloor)
}

// ConveyanceTime is only meaningful once the passenger has been unloaded.
func (p *Passenger) ConveyanceTime() int {
	return p.EndTick - p.StartTick
}

func (p *Passenger) String() string {
	return fmt.Sprintf("Passenger{id=%s start=%d dest=%d dir=%s startTick=%d endTick=%d}",
		p.ID, p.StartFloor, p.DestinationFloor, p.Direction(), p.StartTick, p.EndTick)
}
