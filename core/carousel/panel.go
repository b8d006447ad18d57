package carousel

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

const (
	// dragDamping scales the pointer delta into the card's live offset.
	dragDamping = 0.5
	// tiltFactor shears the card while dragging, in columns per row per cell
	// of drag offset.
	tiltFactor  = 0.005
	fadeSeconds = 0.2

	// stiffness 300, damping 30, mass 1
	slideFrequency = 17.32
	slideDamping   = 0.866

	settleEpsilon = 0.25
)

type panelPhase int

const (
	panelIdle panelPhase = iota
	panelExit
	panelEnter
)

// panelState animates the content card: the outgoing card slides away and
// fades out, then the incoming one slides in and fades in.
type panelState struct {
	phase    panelPhase
	from     int
	dir      Direction
	distance float64
	x, vx    float64
	opacity  float64
}

func (p *panelState) start(from int, dir Direction, distance float64) {
	if p.phase == panelIdle {
		p.opacity = 1
	}
	p.phase = panelExit
	p.from = from
	p.dir = dir
	p.distance = distance
}

// hold pins the card at x, e.g. where a drag let go of it.
func (p *panelState) hold(x float64) {
	p.x = x
	p.vx = 0
}

func (p panelState) exitTarget() float64 {
	if p.dir == DirectionLeft {
		return -p.distance
	}
	return p.distance
}

func (p panelState) enterStart() float64 {
	if p.dir == DirectionLeft {
		return p.distance
	}
	return -p.distance
}

func (p *panelState) step(dt float64, fps int) {
	spring := harmonica.NewSpring(harmonica.FPS(fps), slideFrequency, slideDamping)
	switch p.phase {
	case panelExit:
		p.opacity -= dt / fadeSeconds
		p.x, p.vx = spring.Update(p.x, p.vx, p.exitTarget())
		if p.opacity <= 0 {
			p.opacity = 0
			p.phase = panelEnter
			p.x, p.vx = p.enterStart(), 0
		}
	case panelEnter:
		p.opacity = math.Min(1, p.opacity+dt/fadeSeconds)
		p.x, p.vx = spring.Update(p.x, p.vx, 0)
		if p.opacity >= 1 && settled(p.x, p.vx, 0) {
			p.phase = panelIdle
			p.x, p.vx = 0, 0
		}
	default:
		if p.x == 0 {
			return
		}
		p.x, p.vx = spring.Update(p.x, p.vx, 0)
		if settled(p.x, p.vx, 0) {
			p.x, p.vx = 0, 0
		}
	}
}

func (p panelState) moving() bool {
	return p.phase != panelIdle || p.x != 0
}

// shown is the index of the tab whose card is on screen.
func (p panelState) shown(active int) int {
	if p.phase == panelExit {
		return p.from
	}
	return active
}

func (p panelState) alpha() float64 {
	if p.phase == panelIdle {
		return 1
	}
	return p.opacity
}

func settled(pos, vel, target float64) bool {
	return math.Abs(pos-target) < settleEpsilon && math.Abs(vel) < settleEpsilon
}
