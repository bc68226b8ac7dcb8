// Package sim implements a discrete-event simulation of a queueing network:
// visitors competing for a small set of capacity-limited rides under
// time-varying arrival pressure and stochastic outages.
//
// The engine is single-threaded and cooperative. Visitors, the arrival
// generator, and the per-ride failure cycles are Process values that suspend
// on timers or on ride wait queues; the Simulator's event loop advances a
// logical clock to the next pending wakeup and resumes whichever process is
// due. A run is fully determined by its Config and seed, and produces one
// immutable Snapshot.
package sim
