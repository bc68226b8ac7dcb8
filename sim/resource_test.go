package sim

import "testing"

func TestRide_Request_GrantsImmediately_WhenFreeAndOperational(t *testing.T) {
	// GIVEN an operational ride with a free slot
	sim := mustSimulator(testConfig())
	ride := sim.Rides[0]

	// WHEN a process requests it
	granted := ride.Request(sim, &stubProcess{})

	// THEN the grant is immediate and occupancy reflects it
	if !granted {
		t.Fatal("Request on free operational ride: got queued, want immediate grant")
	}
	if ride.Occupancy() != 1 {
		t.Errorf("occupancy: got %d, want 1", ride.Occupancy())
	}
	if ride.QueueLen() != 0 {
		t.Errorf("queue length: got %d, want 0", ride.QueueLen())
	}
}

func TestRide_Request_QueuesAtCapacity(t *testing.T) {
	// GIVEN a ride at full occupancy
	sim := mustSimulator(testConfig())
	ride := sim.Rides[0]
	ride.Request(sim, &stubProcess{name: "holder"})

	// WHEN another process requests it
	granted := ride.Request(sim, &stubProcess{name: "second"})

	// THEN the request parks on the wait queue and occupancy is capped
	if granted {
		t.Fatal("Request at capacity: got immediate grant, want queued")
	}
	if ride.Occupancy() != ride.Capacity() {
		t.Errorf("occupancy: got %d, want capacity %d", ride.Occupancy(), ride.Capacity())
	}
	if ride.QueueLen() != 1 {
		t.Errorf("queue length: got %d, want 1", ride.QueueLen())
	}
}

func TestRide_Release_GrantsWaitersInFIFOOrder(t *testing.T) {
	// GIVEN a full ride with three queued processes
	sim := mustSimulator(testConfig())
	ride := sim.Rides[0]
	ride.Request(sim, &stubProcess{name: "holder"})

	var resumed []string
	waiter := func(name string) *stubProcess {
		return &stubProcess{name: name, onResume: func(s *Simulator) {
			resumed = append(resumed, name)
			ride.Release(s) // pass the slot along
		}}
	}
	ride.Request(sim, waiter("w1"))
	ride.Request(sim, waiter("w2"))
	ride.Request(sim, waiter("w3"))

	// WHEN the holder releases and the loop drains
	ride.Release(sim)
	sim.Run()

	// THEN waiters are granted strictly in arrival order
	want := []string{"w1", "w2", "w3"}
	if len(resumed) != len(want) {
		t.Fatalf("resumed %d waiters, want %d", len(resumed), len(want))
	}
	for i := range want {
		if resumed[i] != want[i] {
			t.Errorf("grant %d: got %s, want %s", i, resumed[i], want[i])
		}
	}
	if ride.Occupancy() != 0 {
		t.Errorf("final occupancy: got %d, want 0", ride.Occupancy())
	}
}

func TestRide_Down_FreeSlotNotGranted(t *testing.T) {
	// GIVEN a ride that is down with all slots free
	sim := mustSimulator(testConfig())
	ride := sim.Rides[0]
	ride.SetOperational(sim, false)

	// WHEN a process requests it
	granted := ride.Request(sim, &stubProcess{name: "p"})

	// THEN the request queues despite the free slot
	if granted {
		t.Fatal("Request on downed ride: got grant, want queued")
	}
	if ride.Occupancy() != 0 {
		t.Errorf("occupancy on downed ride: got %d, want 0", ride.Occupancy())
	}
	if ride.QueueLen() != 1 {
		t.Errorf("queue length: got %d, want 1", ride.QueueLen())
	}
}

func TestRide_Repair_DrainsQueueIntoFreeSlots(t *testing.T) {
	// GIVEN a downed ride with a queued process
	sim := mustSimulator(testConfig())
	ride := sim.Rides[0]
	ride.SetOperational(sim, false)
	resumed := false
	ride.Request(sim, &stubProcess{onResume: func(*Simulator) { resumed = true }})

	// WHEN the ride comes back up and the loop drains
	ride.SetOperational(sim, true)
	sim.Run()

	// THEN the queued process holds the slot
	if !resumed {
		t.Error("queued process was not resumed after repair")
	}
	if ride.Occupancy() != 1 {
		t.Errorf("occupancy after repair grant: got %d, want 1", ride.Occupancy())
	}
	if ride.QueueLen() != 0 {
		t.Errorf("queue length after repair: got %d, want 0", ride.QueueLen())
	}
}

func TestRide_Down_DoesNotEvictOccupants(t *testing.T) {
	// GIVEN a ride with a granted slot
	sim := mustSimulator(testConfig())
	ride := sim.Rides[0]
	ride.Request(sim, &stubProcess{})

	// WHEN the ride goes down
	ride.SetOperational(sim, false)

	// THEN the occupant keeps its slot
	if ride.Occupancy() != 1 {
		t.Errorf("occupancy after failure: got %d, want 1", ride.Occupancy())
	}
}

func TestRide_Release_WithoutGrant_Panics(t *testing.T) {
	sim := mustSimulator(testConfig())
	defer func() {
		if recover() == nil {
			t.Error("Release on empty ride did not panic")
		}
	}()
	sim.Rides[0].Release(sim)
}
