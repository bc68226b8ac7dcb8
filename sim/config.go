package sim

import (
	"fmt"
	"math"
)

// Visitor selection policies (see Visitor.selectRide).
const (
	// PolicyQueue picks one ride uniformly at random and requests it
	// unconditionally, queueing even if the ride is currently down.
	PolicyQueue = "queue"
	// PolicyRetry redraws uniformly while the picked ride is down, up to
	// RetryLimit attempts, then gives up without ever queueing.
	PolicyRetry = "retry"
)

// RateBand is one segment of the piecewise arrival-rate schedule. The band
// applies from Start (minutes of elapsed simulation time) until the next
// band's Start, or forever for the last band.
type RateBand struct {
	Start float64 `yaml:"start"`
	Rate  float64 `yaml:"rate"` // visitors per minute
}

// ServiceConfig groups ride service duration parameters. Durations are drawn
// once at simulator construction from a triangular distribution: one draw per
// ride when PerRide is set, a single shared draw otherwise.
type ServiceConfig struct {
	Min     float64 `yaml:"min"`  // minutes
	Mode    float64 `yaml:"mode"` // minutes
	Max     float64 `yaml:"max"`  // minutes
	PerRide bool    `yaml:"per_ride"`
}

// FailureConfig groups the stochastic outage model. When Enabled is false no
// failure/repair cycles are started and rides never go down.
type FailureConfig struct {
	Enabled           bool    `yaml:"enabled"`
	MeanTimeToFailure float64 `yaml:"mean_time_to_failure"` // minutes
	MeanRepair        float64 `yaml:"mean_repair"`          // minutes
}

// Config enumerates everything a run depends on. A Config plus a seed fully
// determines the statistics snapshot a run produces.
//
// ArrivalBands empty means no arrival generator is started; the caller
// injects visitors via Simulator.InjectVisitor instead. Tests use this mode.
type Config struct {
	Seed         int64         `yaml:"seed"`
	Horizon      float64       `yaml:"horizon"` // simulation minutes
	Rides        int           `yaml:"rides"`
	Capacity     int           `yaml:"capacity"` // per ride
	ArrivalBands []RateBand    `yaml:"arrival_bands,omitempty"`
	Service      ServiceConfig `yaml:"service"`
	Failure      FailureConfig `yaml:"failure"`
	Policy       string        `yaml:"policy"`
	RetryLimit   int           `yaml:"retry_limit,omitempty"`
}

// DefaultConfig returns the reference scenario: an 8-hour day, three rides of
// capacity 10, arrival pressure stepping up every two hours, ~90-minute mean
// time between outages with ~15-minute repairs, and visitors that give up
// after five draws landing on a downed ride.
func DefaultConfig() Config {
	return Config{
		Seed:     42,
		Horizon:  480,
		Rides:    3,
		Capacity: 10,
		ArrivalBands: []RateBand{
			{Start: 0, Rate: 5},
			{Start: 120, Rate: 10},
			{Start: 240, Rate: 15},
		},
		Service:    ServiceConfig{Min: 4, Mode: 5, Max: 6, PerRide: true},
		Failure:    FailureConfig{Enabled: true, MeanTimeToFailure: 90, MeanRepair: 15},
		Policy:     PolicyRetry,
		RetryLimit: 5,
	}
}

// finite rejects NaN and infinities. Every numeric knob passes through it
// before its range checks run; NaN compares false and slips past them.
func finite(name string, val float64) error {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return fmt.Errorf("%s must be a finite number, got %f", name, val)
	}
	return nil
}

// Validate reports the first invalid field, before any run starts.
// Contention, outages, and the horizon cutoff are normal outcomes and are
// never validation concerns.
func (c Config) Validate() error {
	if err := finite("horizon", c.Horizon); err != nil {
		return err
	}
	if c.Horizon < 0 {
		return fmt.Errorf("horizon must be non-negative, got %f", c.Horizon)
	}
	if c.Rides <= 0 {
		return fmt.Errorf("rides must be positive, got %d", c.Rides)
	}
	if c.Capacity <= 0 {
		return fmt.Errorf("capacity must be positive, got %d", c.Capacity)
	}
	for i, b := range c.ArrivalBands {
		if err := finite(fmt.Sprintf("arrival band %d start", i), b.Start); err != nil {
			return err
		}
		if err := finite(fmt.Sprintf("arrival band %d rate", i), b.Rate); err != nil {
			return err
		}
		if b.Rate <= 0 {
			return fmt.Errorf("arrival band %d: rate must be positive, got %f", i, b.Rate)
		}
		if i == 0 && b.Start != 0 {
			return fmt.Errorf("arrival band 0 must start at 0, got %f", b.Start)
		}
		if i > 0 && b.Start <= c.ArrivalBands[i-1].Start {
			return fmt.Errorf("arrival band %d: start %f not after previous start %f",
				i, b.Start, c.ArrivalBands[i-1].Start)
		}
	}
	s := c.Service
	if err := finite("service min", s.Min); err != nil {
		return err
	}
	if err := finite("service mode", s.Mode); err != nil {
		return err
	}
	if err := finite("service max", s.Max); err != nil {
		return err
	}
	if s.Min < 0 || s.Mode < s.Min || s.Max < s.Mode || s.Max <= 0 {
		return fmt.Errorf("service duration: need 0 <= min <= mode <= max and max > 0, got (%f, %f, %f)",
			s.Min, s.Mode, s.Max)
	}
	if c.Failure.Enabled {
		if err := finite("mean_time_to_failure", c.Failure.MeanTimeToFailure); err != nil {
			return err
		}
		if c.Failure.MeanTimeToFailure <= 0 {
			return fmt.Errorf("mean_time_to_failure must be positive, got %f", c.Failure.MeanTimeToFailure)
		}
		if err := finite("mean_repair", c.Failure.MeanRepair); err != nil {
			return err
		}
		if c.Failure.MeanRepair <= 0 {
			return fmt.Errorf("mean_repair must be positive, got %f", c.Failure.MeanRepair)
		}
	}
	switch c.Policy {
	case PolicyQueue:
	case PolicyRetry:
		if c.RetryLimit <= 0 {
			return fmt.Errorf("retry_limit must be positive with policy %q, got %d", PolicyRetry, c.RetryLimit)
		}
	default:
		return fmt.Errorf("unknown policy %q; valid: %s, %s", c.Policy, PolicyQueue, PolicyRetry)
	}
	return nil
}
