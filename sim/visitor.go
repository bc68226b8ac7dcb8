package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// visitorPhase is the continuation state of a Visitor between resumptions.
type visitorPhase int

const (
	visitorArrived visitorPhase = iota // first resume: pick a ride, request it
	visitorQueued                      // suspended on a ride's wait queue
	visitorRiding                      // suspended on the service timer
)

// Visitor is the ephemeral process modelling one park guest: pick a ride,
// queue for a slot, occupy it for the ride's service duration, release it,
// record the outcome. It completes (and is dropped) after a single ride, or
// immediately under the retry policy when every draw lands on a downed ride.
type Visitor struct {
	id          int
	arrivedAt   float64
	rideIdx     int
	requestedAt float64
	phase       visitorPhase
}

// NewVisitor creates a visitor spawned at the given arrival timestamp.
func NewVisitor(id int, arrivedAt float64) *Visitor {
	return &Visitor{id: id, arrivedAt: arrivedAt}
}

func (v *Visitor) Name() string {
	return fmt.Sprintf("visitor %d", v.id)
}

func (v *Visitor) Resume(sim *Simulator) {
	switch v.phase {
	case visitorArrived:
		sim.Metrics.RecordArrival(v.arrivedAt)
		logrus.Infof("[%6.1fm] visitor %d arrived", sim.Clock, v.id)

		ride, ok := v.selectRide(sim)
		if !ok {
			logrus.Infof("[%6.1fm] visitor %d couldn't find any working ride", sim.Clock, v.id)
			return
		}
		v.rideIdx = ride.Index()
		v.requestedAt = sim.Clock
		if ride.Request(sim, v) {
			v.beginRide(sim, ride)
			return
		}
		v.phase = visitorQueued
		logrus.Infof("[%6.1fm] visitor %d queued for ride %d", sim.Clock, v.id, v.rideIdx)

	case visitorQueued:
		// A slot was granted on our behalf while we sat in the wait queue.
		v.beginRide(sim, sim.Rides[v.rideIdx])

	case visitorRiding:
		logrus.Infof("[%6.1fm] visitor %d finished ride %d", sim.Clock, v.id, v.rideIdx)
		sim.Rides[v.rideIdx].Release(sim)
	}
}

// selectRide applies the configured selection policy. Under PolicyRetry the
// visitor redraws while the pick is down, up to RetryLimit extra attempts,
// then gives up; under PolicyQueue the first draw is final, downed or not.
func (v *Visitor) selectRide(sim *Simulator) (*Ride, bool) {
	rng := sim.rng.ForSubsystem(SubsystemSelection)
	idx := rng.Intn(len(sim.Rides))
	if sim.Config.Policy == PolicyQueue {
		return sim.Rides[idx], true
	}

	attempts := 0
	for !sim.Rides[idx].Operational() && attempts < sim.Config.RetryLimit {
		logrus.Infof("[%6.1fm] visitor %d found ride %d out of service", sim.Clock, v.id, idx)
		idx = rng.Intn(len(sim.Rides))
		attempts++
	}
	if !sim.Rides[idx].Operational() {
		return nil, false
	}
	return sim.Rides[idx], true
}

// beginRide runs at the instant a slot is granted: record the queue wait,
// count the usage, and suspend on the service timer.
func (v *Visitor) beginRide(sim *Simulator, ride *Ride) {
	wait := sim.Clock - v.requestedAt
	sim.Metrics.RecordQueueWait(wait)
	sim.Metrics.RecordUsage(ride.Index())
	logrus.Infof("[%6.1fm] visitor %d started ride %d after waiting %.2f min",
		sim.Clock, v.id, ride.Index(), wait)
	v.phase = visitorRiding
	sim.ScheduleAfter(ride.ServiceDuration(), v)
}
