package sim

import (
	"github.com/sirupsen/logrus"
)

// ArrivalGenerator is the long-lived process that feeds visitors into the
// park. Each wakeup spawns one visitor and suspends for an exponentially
// distributed gap whose mean tracks the rate band the clock currently sits
// in. It never terminates on its own; the horizon cutoff abandons it.
type ArrivalGenerator struct {
	bands  []RateBand
	nextID int
}

// NewArrivalGenerator creates a generator over the given rate schedule.
// Bands must be validated (non-empty, ascending, positive rates).
func NewArrivalGenerator(bands []RateBand) *ArrivalGenerator {
	return &ArrivalGenerator{bands: bands}
}

func (g *ArrivalGenerator) Name() string {
	return "arrival generator"
}

// Start schedules the first arrival. Split from Resume so the generator's
// initial suspension happens at construction time, before the event loop
// spins up.
func (g *ArrivalGenerator) Start(sim *Simulator) {
	g.scheduleNext(sim)
}

func (g *ArrivalGenerator) Resume(sim *Simulator) {
	g.nextID++
	v := NewVisitor(g.nextID, sim.Clock)
	logrus.Debugf("[%6.1fm] spawning visitor %d", sim.Clock, g.nextID)
	sim.Spawn(v)
	g.scheduleNext(sim)
}

func (g *ArrivalGenerator) scheduleNext(sim *Simulator) {
	rate := rateAt(g.bands, sim.Clock)
	gap := Exponential(sim.rng.ForSubsystem(SubsystemArrivals), 60.0/rate)
	sim.ScheduleAfter(gap, g)
}

// rateAt returns the arrival rate (visitors/minute) of the band covering
// elapsed time t: the last band whose Start is <= t.
func rateAt(bands []RateBand, t float64) float64 {
	rate := bands[0].Rate
	for _, b := range bands {
		if b.Start > t {
			break
		}
		rate = b.Rate
	}
	return rate
}
