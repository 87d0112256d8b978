package curriculum

import (
	"testing"
	"time"
)

func TestTrackForWeekday(t *testing.T) {
	cases := []struct {
		day  time.Weekday
		want Track
	}{
		{time.Sunday, TrackStrategy},
		{time.Monday, TrackCoding},
		{time.Tuesday, TrackMarketing},
		{time.Wednesday, TrackCoding},
		{time.Thursday, TrackMarketing},
		{time.Friday, TrackCoding},
		{time.Saturday, TrackOps},
	}
	for _, c := range cases {
		if got := TrackForWeekday(c.day); got != c.want {
			t.Fatalf("TrackForWeekday(%v)=%v, want %v", c.day, got, c.want)
		}
	}
}

func TestModuleCounts(t *testing.T) {
	counts := map[Track]int{
		TrackCoding:    12,
		TrackMarketing: 12,
		TrackOps:       12,
		TrackStrategy:  7,
	}
	for tr, want := range counts {
		if got := len(Modules(tr)); got != want {
			t.Fatalf("len(Modules(%v))=%d, want %d", tr, got, want)
		}
	}
	if Modules(Track(99)) != nil {
		t.Fatalf("Modules of invalid track should be nil")
	}
}

func TestBuildPhrases(t *testing.T) {
	cases := map[Track]string{
		TrackCoding:    "Implement feature or script",
		TrackMarketing: "Draft content/ads",
		TrackOps:       "Complete sub-task of ops item",
		TrackStrategy:  "Plan upcoming week",
		Track(99):      "Plan upcoming week",
	}
	for tr, want := range cases {
		if got := BuildPhrase(tr); got != want {
			t.Fatalf("BuildPhrase(%v)=%q, want %q", tr, got, want)
		}
	}
}

func TestPhaseNarrativeClamps(t *testing.T) {
	if got := PhaseNarrative(0); got != "Compile SKU/size/color data into master sheet" {
		t.Fatalf("phase 0 narrative=%q", got)
	}
	if got := PhaseNarrative(-3); got != PhaseNarrative(0) {
		t.Fatalf("negative phase should clamp to 0, got %q", got)
	}
	if got := PhaseNarrative(9); got != "KPI review & optimize" {
		t.Fatalf("high phase should clamp to 4, got %q", got)
	}
}

func TestTrackNames(t *testing.T) {
	if TrackOps.String() != "BMI Ops Project" {
		t.Fatalf("TrackOps.String()=%q", TrackOps.String())
	}
	if Track(99).IsValid() {
		t.Fatalf("Track(99) should be invalid")
	}
}
