package service

import (
	"math/rand/v2"
	"time"
)

// Scenario is the closed set of demand situations the estimator can report.
type Scenario int

const (
	ScenarioPeak Scenario = iota
	ScenarioShoulder
	ScenarioOffPeak
)

var scenarios = [...]Scenario{ScenarioPeak, ScenarioShoulder, ScenarioOffPeak}

// Score returns the fixed demand score of the scenario, in [0, 1].
func (s Scenario) Score() float64 {
	switch s {
	case ScenarioPeak:
		return 0.9
	case ScenarioShoulder:
		return 0.5
	case ScenarioOffPeak:
		return 0.2
	}
	return 0
}

// Description returns the scenario label.
func (s Scenario) Description() string {
	switch s {
	case ScenarioPeak:
		return "Peak"
	case ScenarioShoulder:
		return "Shoulder"
	case ScenarioOffPeak:
		return "Off-Peak"
	}
	return "Unknown"
}

// Estimate is one demand reading. Every reading is independent; nothing is
// persisted between calls.
type Estimate struct {
	Score       float64   `json:"demand_score"`
	Description string    `json:"demand_description"`
	Timestamp   time.Time `json:"timestamp"`
}

// Estimator draws a scenario uniformly at random.
type Estimator struct {
	pick func(n int) int
	now  func() time.Time
}

// NewEstimator returns an estimator backed by math/rand.
func NewEstimator() *Estimator {
	return &Estimator{
		pick: rand.IntN,
		now:  time.Now,
	}
}

// Estimate returns a fresh reading.
func (e *Estimator) Estimate() Estimate {
	scenario := scenarios[e.pick(len(scenarios))]
	return Estimate{
		Score:       scenario.Score(),
		Description: scenario.Description(),
		Timestamp:   e.now().UTC(),
	}
}
