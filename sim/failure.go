package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// FailureCycle is the long-lived process that takes one ride through
// alternating up/down phases: exponentially distributed time-to-failure,
// then an exponentially distributed repair. Outages only gate new grants;
// occupants already riding are never evicted. The cycle repeats until the
// horizon abandons it.
type FailureCycle struct {
	ride *Ride
	down bool
}

// NewFailureCycle creates a cycle for the given ride.
func NewFailureCycle(ride *Ride) *FailureCycle {
	return &FailureCycle{ride: ride}
}

func (c *FailureCycle) Name() string {
	return fmt.Sprintf("failure cycle ride %d", c.ride.Index())
}

// Start schedules the first failure.
func (c *FailureCycle) Start(sim *Simulator) {
	ttf := Exponential(sim.rng.ForSubsystem(SubsystemRide(c.ride.Index())), sim.Config.Failure.MeanTimeToFailure)
	sim.ScheduleAfter(ttf, c)
}

func (c *FailureCycle) Resume(sim *Simulator) {
	rng := sim.rng.ForSubsystem(SubsystemRide(c.ride.Index()))
	if !c.down {
		if c.ride.Operational() {
			c.ride.SetOperational(sim, false)
			sim.Metrics.RecordFailure(c.ride.Index())
			logrus.Warnf("[%6.1fm] ride %d FAILED", sim.Clock, c.ride.Index())
		}
		c.down = true
		sim.ScheduleAfter(Exponential(rng, sim.Config.Failure.MeanRepair), c)
		return
	}
	c.ride.SetOperational(sim, true)
	logrus.Infof("[%6.1fm] ride %d repaired", sim.Clock, c.ride.Index())
	c.down = false
	sim.ScheduleAfter(Exponential(rng, sim.Config.Failure.MeanTimeToFailure), c)
}
