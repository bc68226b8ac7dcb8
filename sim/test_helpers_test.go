package sim

// Shared test doubles and fixtures for the sim package.

// stubProcess is a minimal Process whose resume behavior is injected by the
// test. Used to observe scheduling order and to drive rides directly.
type stubProcess struct {
	name     string
	onResume func(sim *Simulator)
}

func (p *stubProcess) Name() string {
	if p.name == "" {
		return "stub"
	}
	return p.name
}

func (p *stubProcess) Resume(sim *Simulator) {
	if p.onResume != nil {
		p.onResume(sim)
	}
}

// testConfig returns a minimal valid config: one ride of capacity one, a
// fixed 5-minute service duration, no arrival generator (tests inject
// visitors), and no outages.
func testConfig() Config {
	return Config{
		Seed:     1,
		Horizon:  100,
		Rides:    1,
		Capacity: 1,
		Service:  ServiceConfig{Min: 5, Mode: 5, Max: 5},
		Policy:   PolicyQueue,
	}
}

// mustSimulator builds a simulator from cfg, panicking on config errors.
// Only for tests whose subject is not validation itself.
func mustSimulator(cfg Config) *Simulator {
	s, err := NewSimulator(cfg)
	if err != nil {
		panic(err)
	}
	return s
}
