// sim/simulator.go
package sim

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"
)

// Simulator is the core object that holds simulation time, system state, and
// the event loop. Time is logical (minutes), single-threaded, and advances
// only by jumping to the due-time of the next pending wakeup; exactly one
// process runs at any simulated instant.
type Simulator struct {
	Clock   float64
	Horizon float64
	// Events holds the pending wakeups of every suspended process.
	Events *EventQueue
	// Rides are the capacity-limited stations visitors contend for.
	Rides   []*Ride
	Metrics *Metrics
	Config  Config

	rng      *PartitionedRNG
	arrivals *ArrivalGenerator
}

// NewSimulator validates cfg and builds a ready-to-run simulator: rides with
// their service durations drawn, the arrival generator (when rate bands are
// configured) and the per-ride failure cycles (when outages are enabled)
// already suspended on their first timers.
func NewSimulator(cfg Config) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	sim := &Simulator{
		Horizon: cfg.Horizon,
		Events:  NewEventQueue(),
		Metrics: NewMetrics(cfg.Rides),
		Config:  cfg,
		rng:     NewPartitionedRNG(NewSimulationKey(cfg.Seed)),
	}

	serviceRng := sim.rng.ForSubsystem(SubsystemService)
	shared := Triangular(serviceRng, cfg.Service.Min, cfg.Service.Mode, cfg.Service.Max)
	sim.Rides = make([]*Ride, cfg.Rides)
	for i := range sim.Rides {
		dur := shared // ride 0 reuses the first draw in both modes
		if cfg.Service.PerRide && i > 0 {
			dur = Triangular(serviceRng, cfg.Service.Min, cfg.Service.Mode, cfg.Service.Max)
		}
		sim.Rides[i] = NewRide(i, cfg.Capacity, dur)
	}

	if len(cfg.ArrivalBands) > 0 {
		sim.arrivals = NewArrivalGenerator(cfg.ArrivalBands)
		sim.arrivals.Start(sim)
	}
	if cfg.Failure.Enabled {
		for _, ride := range sim.Rides {
			NewFailureCycle(ride).Start(sim)
		}
	}
	return sim, nil
}

// ScheduleAfter suspends p until delay minutes past the current clock.
// Delay must be finite and non-negative; anything else is a contract
// violation inside the engine, so it panics rather than returning an error.
func (sim *Simulator) ScheduleAfter(delay float64, p Process) {
	if delay < 0 || math.IsNaN(delay) || math.IsInf(delay, 0) {
		panic(fmt.Errorf("%w: delay %v scheduling %s", ErrInvalidDelay, delay, p.Name()))
	}
	sim.Events.Push(sim.Clock+delay, p)
}

// Spawn makes p runnable at the current instant. It runs after the active
// process yields, in scheduling order among same-instant wakeups.
func (sim *Simulator) Spawn(p Process) {
	sim.ScheduleAfter(0, p)
}

// InjectVisitor schedules a visitor to arrive at the given absolute time,
// bypassing the arrival generator. at must not be in the simulated past.
// Used when arrival bands are left empty and the caller drives the workload.
func (sim *Simulator) InjectVisitor(id int, at float64) {
	sim.ScheduleAfter(at-sim.Clock, NewVisitor(id, at))
}

// Run drives the event loop: repeatedly advance the clock to the earliest
// pending wakeup and resume its process, until no wakeup remains below the
// horizon. Processes still suspended at that point are abandoned in place —
// no cleanup, no partial samples — and the frozen snapshot is returned.
func (sim *Simulator) Run() *Snapshot {
	for sim.Events.Len() > 0 {
		due, _ := sim.Events.NextDue()
		if due >= sim.Horizon {
			break
		}
		at, proc := sim.Events.Pop()
		sim.Clock = at
		logrus.Debugf("[%6.1fm] resuming %s", sim.Clock, proc.Name())
		proc.Resume(sim)
	}
	logrus.Infof("[%6.1fm] simulation ended (%d wakeups abandoned)", sim.Clock, sim.Events.Len())
	return sim.Metrics.Snapshot(sim.Horizon, sim.MeanServiceDuration())
}

// MeanServiceDuration returns the mean of the per-ride service durations in
// effect for this run. Feeds the utilization aggregate.
func (sim *Simulator) MeanServiceDuration() float64 {
	durs := make([]float64, len(sim.Rides))
	for i, r := range sim.Rides {
		durs[i] = r.ServiceDuration()
	}
	return stat.Mean(durs, nil)
}
