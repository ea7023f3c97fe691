package service

import (
	"testing"
	"time"
)

func TestEstimateScoresMatchScenarios(t *testing.T) {
	e := NewEstimator()
	valid := map[float64]string{
		0.9: "Peak",
		0.5: "Shoulder",
		0.2: "Off-Peak",
	}

	seen := make(map[string]int)
	for i := 0; i < 1000; i++ {
		est := e.Estimate()
		desc, ok := valid[est.Score]
		if !ok {
			t.Fatalf("score %v outside the scenario set", est.Score)
		}
		if est.Description != desc {
			t.Fatalf("score %v paired with %q, want %q", est.Score, est.Description, desc)
		}
		seen[est.Description]++
	}

	for _, desc := range []string{"Peak", "Shoulder", "Off-Peak"} {
		if seen[desc] == 0 {
			t.Fatalf("scenario %q never drawn in 1000 calls: %v", desc, seen)
		}
	}
}

func TestEstimateDrawIsUniformOverVariants(t *testing.T) {
	draws := []int{0, 1, 2, 2, 1, 0}
	idx := 0
	e := &Estimator{
		pick: func(n int) int {
			if n != len(scenarios) {
				t.Fatalf("pick called with n=%d, want %d", n, len(scenarios))
			}
			d := draws[idx%len(draws)]
			idx++
			return d
		},
		now: func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) },
	}

	want := []string{"Peak", "Shoulder", "Off-Peak", "Off-Peak", "Shoulder", "Peak"}
	for i, desc := range want {
		est := e.Estimate()
		if est.Description != desc {
			t.Fatalf("draw %d: got %q, want %q", i, est.Description, desc)
		}
		if !est.Timestamp.Equal(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)) {
			t.Fatalf("timestamp not taken from clock: %v", est.Timestamp)
		}
	}
}
