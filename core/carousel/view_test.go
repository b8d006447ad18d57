package carousel

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
)

func plainLines(s string) []string {
	return strings.Split(ansi.Strip(s), "\n")
}

func TestViewFillsBox(t *testing.T) {
	c, _ := newTestCarousel(t, 3)
	out := c.View(60, 14)
	lines := strings.Split(out, "\n")
	if len(lines) != 14 {
		t.Fatalf("line count = %d, want 14", len(lines))
	}
	for i, line := range lines {
		if w := ansi.StringWidth(line); w > 60 {
			t.Fatalf("line %d width = %d, exceeds 60", i, w)
		}
	}
	plain := ansi.Strip(out)
	for _, want := range []string{"Space 1", "Space 2", "Space 3", "content of space 1"} {
		if !strings.Contains(plain, want) {
			t.Fatalf("view missing %q:\n%s", want, plain)
		}
	}
}

func TestViewDrawsNextCardEdge(t *testing.T) {
	c, sched := newTestCarousel(t, 2)
	lines := plainLines(c.View(40, 10))
	edge := lines[len(lines)-1]
	if !strings.HasPrefix(edge, strings.Repeat(" ", stackInset)+"╰") {
		t.Fatalf("expected inset card edge under the active card, got %q", edge)
	}

	c.Next()
	run(c, sched, 2*time.Second)
	lines = plainLines(c.View(40, 10))
	if last := lines[len(lines)-1]; !strings.HasPrefix(last, "╰") {
		t.Fatalf("last tab should fill the area without a stack edge, got %q", last)
	}
}

func TestViewShowsOutgoingThenIncomingCard(t *testing.T) {
	c, sched := newTestCarousel(t, 3)
	c.SelectTab(1)
	if plain := ansi.Strip(c.View(60, 12)); !strings.Contains(plain, "content of space 1") {
		t.Fatalf("outgoing card should be visible at the start of the transition:\n%s", plain)
	}
	run(c, sched, 2*time.Second)
	plain := ansi.Strip(c.View(60, 12))
	if !strings.Contains(plain, "content of space 2") {
		t.Fatalf("incoming card missing after the transition:\n%s", plain)
	}
	if c.Moving() {
		t.Fatalf("transition should have settled")
	}
}

func TestViewTracksDragAtHalfSpeed(t *testing.T) {
	c, _ := newTestCarousel(t, 3)
	before := plainLines(c.View(60, 12))
	topBefore := strings.Index(before[panelTop], "╭")

	c.BeginDrag(50)
	c.UpdateDrag(70)
	during := plainLines(c.View(60, 12))
	centreRow := panelTop + (len(during)-panelTop-2)/2
	idxBefore := strings.Index(before[centreRow], "│")
	idxDuring := strings.Index(during[centreRow], "│")
	if idxDuring-idxBefore != 10 {
		t.Fatalf("card moved %d columns for a 20-column drag, want 10", idxDuring-idxBefore)
	}
	if topBefore != 0 {
		t.Fatalf("card should start flush left, got %d", topBefore)
	}
}

func TestViewSettlesAfterShortDrag(t *testing.T) {
	c, sched := newTestCarousel(t, 3)
	c.BeginDrag(50)
	c.UpdateDrag(62)
	c.EndDrag()
	if !c.Moving() {
		t.Fatalf("released card should spring back")
	}
	run(c, sched, 2*time.Second)
	if c.Moving() {
		t.Fatalf("card should settle back in place")
	}
	lines := plainLines(c.View(60, 12))
	if !strings.HasPrefix(lines[panelTop], "╭") {
		t.Fatalf("card not back at the left edge: %q", lines[panelTop])
	}
}

func TestViewTinyBoxes(t *testing.T) {
	c, _ := newTestCarousel(t, 3)
	if out := c.View(0, 10); out != "" {
		t.Fatalf("zero width should render nothing")
	}
	if got := len(strings.Split(c.View(20, 1), "\n")); got != 1 {
		t.Fatalf("height 1 rendered %d lines", got)
	}
}
