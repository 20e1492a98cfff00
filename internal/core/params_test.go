package core

import "testing"

func TestParameterControlAdjustChoices(t *testing.T) {
	ctrl := ParameterControl{Key: "cell_size", Type: ParamTypeInt, Choices: []int{5, 10, 25, 50}}

	cases := []struct {
		current, dir, want int
	}{
		{25, 1, 50},
		{25, -1, 10},
		{50, 1, 50},
		{5, -1, 5},
		{30, 1, 50},
		{30, -1, 25},
		{1, 1, 5},
	}
	for _, tc := range cases {
		if got := ctrl.Adjust(tc.current, tc.dir); got != tc.want {
			t.Fatalf("Adjust(%d,%d)=%d, expected %d", tc.current, tc.dir, got, tc.want)
		}
	}
}

func TestParameterControlAdjustRange(t *testing.T) {
	ctrl := ParameterControl{Key: "interval_ms", Type: ParamTypeInt, Step: 50, Min: 10, Max: 1000}
	if got := ctrl.Adjust(200, 1); got != 250 {
		t.Fatalf("expected 250, got %d", got)
	}
	if got := ctrl.Adjust(30, -1); got != 10 {
		t.Fatalf("expected clamp to 10, got %d", got)
	}
	if got := ctrl.Adjust(990, 1); got != 1000 {
		t.Fatalf("expected clamp to 1000, got %d", got)
	}
}

func TestParameterSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{{
		Name:   "Timing",
		Params: []Parameter{{Key: "interval_ms", Value: "200"}},
	}}}
	if p, ok := snap.Lookup("interval_ms"); !ok || p.Value != "200" {
		t.Fatalf("lookup failed: %+v %v", p, ok)
	}
	if _, ok := snap.Lookup("missing"); ok {
		t.Fatal("unexpected hit")
	}
}
