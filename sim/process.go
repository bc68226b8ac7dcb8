package sim

// Process is a cooperative unit of simulated behavior driven by the
// Simulator's event loop. A process is resumed when a wakeup it scheduled
// comes due, or when a ride grants it a slot it was queued for. Between
// resumptions it holds its own continuation state; exactly one process runs
// at any simulated instant.
//
// A process suspends by returning from Resume after either scheduling a
// timer wakeup (ScheduleAfter) or enqueueing itself on a ride (Request
// returning false). Returning without doing either completes the process:
// nothing references it afterwards and it is never resumed again. Processes
// still suspended when the horizon is reached are abandoned in place.
type Process interface {
	// Name identifies the process in event-trace logs.
	Name() string
	// Resume runs the process until its next suspension point or completion.
	Resume(sim *Simulator)
}
