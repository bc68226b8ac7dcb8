package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Ride is a capacity-limited service station. Requests beyond capacity, or
// made while the ride is down, park the requesting process on a FIFO wait
// queue; freed slots and repairs drain that queue strictly in order.
//
// Occupancy and the wait queue are only ever touched by the process the
// Simulator is currently resuming, so no locking is needed: the event loop
// is the single writer.
type Ride struct {
	index           int
	capacity        int
	occupancy       int
	operational     bool
	waiters         []Process
	serviceDuration float64 // minutes per grant, fixed for the run
}

// NewRide creates an operational, empty ride.
func NewRide(index, capacity int, serviceDuration float64) *Ride {
	return &Ride{
		index:           index,
		capacity:        capacity,
		operational:     true,
		serviceDuration: serviceDuration,
	}
}

// Request claims a slot for p. It returns true when a slot is granted
// immediately (occupancy below capacity and the ride operational). Otherwise
// p is appended to the tail of the wait queue and remains suspended until a
// grant resumes it; Request then returns false and p must yield.
func (r *Ride) Request(sim *Simulator, p Process) bool {
	if r.operational && r.occupancy < r.capacity {
		r.occupancy++
		return true
	}
	r.waiters = append(r.waiters, p)
	return false
}

// Release frees the slot held by the current process and hands it to the
// head of the wait queue if the ride is operational.
func (r *Ride) Release(sim *Simulator) {
	if r.occupancy <= 0 {
		panic(fmt.Sprintf("Release: ride %d has no outstanding grants", r.index))
	}
	r.occupancy--
	r.grantWaiters(sim)
}

// SetOperational toggles whether the ride accepts new occupants. Going down
// does not evict processes already holding slots; their service simply runs
// to completion. Coming back up drains the wait queue into the free slots in
// FIFO order.
func (r *Ride) SetOperational(sim *Simulator, up bool) {
	r.operational = up
	if up {
		r.grantWaiters(sim)
	}
}

// grantWaiters moves queued processes into free slots, scheduling each
// granted process to resume at the current instant. The zero-delay wakeup
// keeps the single-active-process rule: the grantee runs only after the
// process that freed the slot has yielded.
func (r *Ride) grantWaiters(sim *Simulator) {
	for r.operational && r.occupancy < r.capacity && len(r.waiters) > 0 {
		next := r.waiters[0]
		r.waiters = r.waiters[1:]
		r.occupancy++
		logrus.Debugf("[%6.1fm] ride %d grants a slot to %s", sim.Clock, r.index, next.Name())
		sim.ScheduleAfter(0, next)
	}
}

// Index returns the ride's position in the simulator's ride list.
func (r *Ride) Index() int { return r.index }

// Capacity returns the fixed slot count.
func (r *Ride) Capacity() int { return r.capacity }

// Occupancy returns the number of slots currently granted.
func (r *Ride) Occupancy() int { return r.occupancy }

// Operational reports whether the ride is accepting new occupants.
func (r *Ride) Operational() bool { return r.operational }

// QueueLen returns the number of processes parked on the wait queue.
func (r *Ride) QueueLen() int { return len(r.waiters) }

// ServiceDuration returns the per-grant service duration for this run.
func (r *Ride) ServiceDuration() float64 { return r.serviceDuration }
