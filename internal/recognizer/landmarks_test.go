package recognizer

import (
	"math"
	"testing"
)

func TestDistance(t *testing.T) {
	got := Distance(Point{X: 0, Y: 0}, Point{X: 3, Y: 4})
	if got != 5 {
		t.Errorf("Distance() = %v, want 5", got)
	}
}

func TestHand_Span(t *testing.T) {
	hand := OpenHand()
	span := hand.Span()

	if span <= 0 {
		t.Fatalf("span = %v, want positive", span)
	}

	// The wrist to middle-MCP segment is rigid: curling the fingers into a
	// fist must not change the span.
	fist := Fist()
	if math.Abs(fist.Span()-span) > 1e-9 {
		t.Errorf("fist span = %v, open span = %v; pose must not affect span", fist.Span(), span)
	}
}

func TestHand_Translated(t *testing.T) {
	hand := OpenHand()
	moved := hand.Translated(0.02, -0.01)

	for i := range hand.Points {
		if math.Abs(moved.Points[i].X-hand.Points[i].X-0.02) > 1e-12 {
			t.Fatalf("landmark %d x not translated", i)
		}
		if math.Abs(moved.Points[i].Y-hand.Points[i].Y+0.01) > 1e-12 {
			t.Fatalf("landmark %d y not translated", i)
		}
	}

	// Translation preserves the span.
	if math.Abs(moved.Span()-hand.Span()) > 1e-9 {
		t.Errorf("translated span = %v, want %v", moved.Span(), hand.Span())
	}
}

func TestHand_Scaled(t *testing.T) {
	hand := OpenHand()
	closer := hand.Scaled(1.1)

	want := hand.Span() * 1.1
	if math.Abs(closer.Span()-want) > 1e-9 {
		t.Errorf("scaled span = %v, want %v", closer.Span(), want)
	}

	// Scaling is about the wrist, so the wrist stays put.
	if closer.Points[Wrist] != hand.Points[Wrist] {
		t.Error("wrist moved during scaling")
	}
}

func TestBestHand(t *testing.T) {
	hands := []jsonHand{
		{Score: 0.4},
		{Score: 0.9},
		{Score: 0.7},
	}

	got := bestHand(hands, 0.5)
	if got == nil || got.Score != 0.9 {
		t.Fatalf("bestHand() = %+v, want score 0.9", got)
	}

	if got := bestHand(hands, 0.95); got != nil {
		t.Errorf("bestHand(below floor) = %+v, want nil", got)
	}

	if got := bestHand(nil, 0.5); got != nil {
		t.Errorf("bestHand(no hands) = %+v, want nil", got)
	}
}

func TestMockRecognizer_Sequence(t *testing.T) {
	m := NewMockRecognizer()

	open := OpenHand()
	m.SetSequence([]*Hand{&open, nil, &open})

	h, err := m.Recognize(nil, 0)
	if err != nil || h == nil {
		t.Fatalf("frame 1 = (%v, %v), want hand", h, err)
	}
	h, _ = m.Recognize(nil, 1)
	if h != nil {
		t.Fatal("frame 2 should have no hand")
	}
	h, _ = m.Recognize(nil, 2)
	if h == nil {
		t.Fatal("frame 3 should have a hand")
	}
	// Past the end the final entry repeats.
	h, _ = m.Recognize(nil, 3)
	if h == nil {
		t.Fatal("exhausted sequence should repeat the final entry")
	}
}
