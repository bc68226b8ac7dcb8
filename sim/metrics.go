// Tracks per-run statistics: queue-wait samples, per-ride usage and failure
// counters, and arrival timestamps. Append-only while the run is in flight;
// aggregation happens once, against the frozen snapshot.

package sim

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Metrics accumulates raw samples during a run. Only completing visitor
// processes and failure/repair cycles append to it; nothing reads it until
// the event loop has halted.
type Metrics struct {
	QueueWaits    []float64 // one sample per granted ride slot (minutes)
	ArrivalTimes  []float64 // one timestamp per spawned visitor, in spawn order
	UsageCounts   []int     // per ride
	FailureCounts []int     // per ride
}

// NewMetrics creates an empty collector for the given number of rides.
func NewMetrics(rides int) *Metrics {
	return &Metrics{
		QueueWaits:    make([]float64, 0),
		ArrivalTimes:  make([]float64, 0),
		UsageCounts:   make([]int, rides),
		FailureCounts: make([]int, rides),
	}
}

// RecordQueueWait appends one queue-wait sample (minutes).
func (m *Metrics) RecordQueueWait(wait float64) {
	m.QueueWaits = append(m.QueueWaits, wait)
}

// RecordArrival appends one visitor arrival timestamp.
func (m *Metrics) RecordArrival(t float64) {
	m.ArrivalTimes = append(m.ArrivalTimes, t)
}

// RecordUsage counts one completed grant on the given ride.
func (m *Metrics) RecordUsage(ride int) {
	m.UsageCounts[ride]++
}

// RecordFailure counts one outage of the given ride.
func (m *Metrics) RecordFailure(ride int) {
	m.FailureCounts[ride]++
}

// Snapshot is the immutable aggregate a run returns to its callers: console
// renderers, chart pipelines, and the like all consume this one value.
type Snapshot struct {
	TotalVisitors int       // visitors spawned before the horizon
	QueueWaits    []float64 // in grant order
	UsageCounts   []int     // per ride
	FailureCounts []int     // per ride
	ArrivalTimes  []float64 // in spawn order
	AvgQueueWait  float64   // minutes; 0 when no grants happened
	Utilization   float64   // Σusage·meanService / (horizon·rides)
}

// Snapshot freezes the collected samples and computes the derived aggregates.
// meanServiceDuration is the mean of the per-ride service durations in
// effect for the run.
func (m *Metrics) Snapshot(horizon, meanServiceDuration float64) *Snapshot {
	s := &Snapshot{
		TotalVisitors: len(m.ArrivalTimes),
		QueueWaits:    append([]float64(nil), m.QueueWaits...),
		UsageCounts:   append([]int(nil), m.UsageCounts...),
		FailureCounts: append([]int(nil), m.FailureCounts...),
		ArrivalTimes:  append([]float64(nil), m.ArrivalTimes...),
	}
	if len(m.QueueWaits) > 0 {
		s.AvgQueueWait = stat.Mean(m.QueueWaits, nil)
	}
	if horizon > 0 && len(m.UsageCounts) > 0 {
		total := 0
		for _, n := range m.UsageCounts {
			total += n
		}
		s.Utilization = float64(total) * meanServiceDuration / (horizon * float64(len(m.UsageCounts)))
	}
	return s
}

// Print displays the per-ride table and the summary block at the end of a run.
func (s *Snapshot) Print() {
	fmt.Println("=== Simulation Results ===")
	fmt.Printf("%-8s %12s %10s\n", "Ride", "Usage Count", "Failures")
	for i := range s.UsageCounts {
		fmt.Printf("%-8s %12d %10d\n", fmt.Sprintf("Ride %d", i), s.UsageCounts[i], s.FailureCounts[i])
	}
	fmt.Println()
	fmt.Printf("Total visitors       : %d\n", s.TotalVisitors)
	fmt.Printf("Visitors served      : %d\n", len(s.QueueWaits))
	fmt.Printf("Average queue time   : %.2f minutes\n", s.AvgQueueWait)
	fmt.Printf("Average utilization  : %.2f%%\n", s.Utilization*100)
}
