package control

import "testing"

func TestEngagement_AlternatingCallbacks(t *testing.T) {
	var events []string
	e := &Engagement{
		OnStart: func() { events = append(events, "start") },
		OnEnd:   func() { events = append(events, "end") },
	}

	// present, present, absent, present
	e.Observe(true)
	e.Observe(true)
	e.Observe(false)
	e.Observe(true)

	want := []string{"start", "end", "start"}
	if len(events) != len(want) {
		t.Fatalf("events = %v, want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Fatalf("events = %v, want %v", events, want)
		}
	}
}

func TestEngagement_Transitions(t *testing.T) {
	e := &Engagement{}

	if got := e.Observe(true); got != TransitionStarted {
		t.Errorf("first present = %v, want started", got)
	}
	if got := e.Observe(true); got != TransitionNone {
		t.Errorf("second present = %v, want none", got)
	}
	if got := e.Observe(false); got != TransitionEnded {
		t.Errorf("absent = %v, want ended", got)
	}
	if got := e.Observe(false); got != TransitionNone {
		t.Errorf("absent while idle = %v, want none", got)
	}
}

func TestEngagement_GraceFramesToleratesDropouts(t *testing.T) {
	e := &Engagement{GraceFrames: 2}

	e.Observe(true)
	if e.Observe(false) != TransitionNone {
		t.Fatal("first dropout within grace should not end engagement")
	}
	if e.Observe(false) != TransitionNone {
		t.Fatal("second dropout within grace should not end engagement")
	}
	if !e.Engaged() {
		t.Fatal("still engaged during grace window")
	}
	if e.Observe(false) != TransitionEnded {
		t.Fatal("third dropout should end engagement")
	}

	// Reappearing resets the streak.
	e.Observe(true)
	e.Observe(false)
	if e.Observe(true) != TransitionNone {
		t.Fatal("reappearing within grace should keep the session alive")
	}
	e.Observe(false)
	e.Observe(false)
	if e.Observe(false) != TransitionEnded {
		t.Fatal("streak should restart after the hand reappears")
	}
}

func TestEngagement_BaselineLifecycle(t *testing.T) {
	e := &Engagement{}

	if _, _, ok := e.Baseline(); ok {
		t.Fatal("baseline should be absent before engagement")
	}

	e.Observe(true)
	e.SetBaseline(0.5, 0.25)

	x, span, ok := e.Baseline()
	if !ok || x != 0.5 || span != 0.25 {
		t.Fatalf("baseline = (%v, %v, %v), want (0.5, 0.25, true)", x, span, ok)
	}

	// Losing the hand clears the references.
	e.Observe(false)
	if _, _, ok := e.Baseline(); ok {
		t.Fatal("baseline should be cleared when engagement ends")
	}
}
