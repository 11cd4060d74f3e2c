package sim

import (
	"math/rand"
	"testing"

	"elevatorsim/src/config"
	"elevatorsim/src/types"
)

func TestGeneratePassengerStaysInBuilding(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	floor := NewFloor(5, 10, config.StructArray)
	for i := 0; i < 500; i++ {
		p := floor.GeneratePassenger(rng)
		if p.StartFloor != 5 {
			t.Fatalf("Expected start floor 5, got %d", p.StartFloor)
		}
		if p.DestinationFloor == 5 {
			t.Fatal("Generated passenger with destination equal to start floor")
		}
		if p.DestinationFloor < 1 || p.DestinationFloor > 10 {
			t.Fatalf("Destination %d outside building", p.DestinationFloor)
		}
	}
}

func TestEnqueueSplitsByDirection(t *testing.T) {
	floor := NewFloor(5, 10, config.StructLinked)
	floor.Enqueue(types.NewPassenger(5, 8))
	floor.Enqueue(types.NewPassenger(5, 2))
	floor.Enqueue(types.NewPassenger(5, 9))

	if floor.up.Len() != 2 {
		t.Errorf("Expected 2 up waiters, got %d", floor.up.Len())
	}
	if floor.down.Len() != 1 {
		t.Errorf("Expected 1 down waiter, got %d", floor.down.Len())
	}
	if floor.Waiting() != 3 {
		t.Errorf("Expected 3 waiting total, got %d", floor.Waiting())
	}
}

func TestWaitQueueBackendsAreFIFO(t *testing.T) {
	for _, strategy := range []config.Structures{config.StructLinked, config.StructArray} {
		queue := newWaitQueue(strategy)
		if queue.Dequeue() != nil || queue.Peek() != nil {
			t.Fatalf("%s: expected empty queue to yield nil", strategy)
		}

		first := types.NewPassenger(1, 3)
		second := types.NewPassenger(1, 4)
		third := types.NewPassenger(1, 5)
		queue.Enqueue(first)
		queue.Enqueue(second)
		queue.Enqueue(third)

		var visited []*types.Passenger
		queue.Each(func(p *types.Passenger) { visited = append(visited, p) })
		if len(visited) != 3 || visited[0] != first || visited[2] != third {
			t.Fatalf("%s: Each did not visit in FIFO order", strategy)
		}

		if queue.Peek() != first {
			t.Errorf("%s: expected Peek to return the head", strategy)
		}
		if queue.Dequeue() != first || queue.Dequeue() != second || queue.Dequeue() != third {
			t.Errorf("%s: expected FIFO dequeue order", strategy)
		}
	}
}
