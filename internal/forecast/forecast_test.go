package forecast

import (
	"testing"
	"time"
)

func TestProject_steadyBurn(t *testing.T) {
	// Halfway through the window at 50% -> projected 100%, not on track.
	resetsAt := time.Now().Add(FiveHourWindow / 2)
	p := Project(50, resetsAt, FiveHourWindow)
	if p.ProjectedPct < 99 || p.ProjectedPct > 101 {
		t.Errorf("projected: got %.1f want ~100", p.ProjectedPct)
	}
	if p.OnTrack {
		t.Error("expected not on track")
	}
}

func TestProject_lightUsage(t *testing.T) {
	// Halfway through at 10% -> projected ~20%, on track.
	resetsAt := time.Now().Add(FiveHourWindow / 2)
	p := Project(10, resetsAt, FiveHourWindow)
	if !p.OnTrack {
		t.Errorf("expected on track, projected %.1f", p.ProjectedPct)
	}
}

func TestProject_windowJustStarted(t *testing.T) {
	// Reset further away than the window length means no elapsed time yet.
	resetsAt := time.Now().Add(FiveHourWindow + time.Minute)
	p := Project(40, resetsAt, FiveHourWindow)
	if p.ProjectedPct != 40 || !p.OnTrack {
		t.Errorf("got %+v, want passthrough on-track", p)
	}
}

func TestIndicator(t *testing.T) {
	cases := []struct {
		pct  float64
		want string
	}{
		{50, "on track"},
		{90, "tight"},
		{100, "over limit"},
		{140, "over limit"},
	}
	for _, c := range cases {
		got := Projection{ProjectedPct: c.pct}.Indicator()
		if got != c.want {
			t.Errorf("%.0f%%: got %q want %q", c.pct, got, c.want)
		}
	}
}
