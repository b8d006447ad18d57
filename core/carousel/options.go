package carousel

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

const (
	DefaultLockDuration   = 300 * time.Millisecond
	DefaultNoiseThreshold = 10
	DefaultSwipeRatio     = 0.2
	DefaultFrameRate      = 60
)

// Boundary decides what Next and Previous do at either end of the tabs.
type Boundary int

const (
	// Clamp makes Next at the last tab and Previous at the first a no-op.
	Clamp Boundary = iota
	// Wrap moves from the last tab to the first and back.
	Wrap
)

func (b Boundary) String() string {
	if b == Wrap {
		return "wrap"
	}
	return "clamp"
}

// ParseBoundary maps "clamp" and "wrap", in any case, to a Boundary.
func ParseBoundary(s string) (Boundary, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "clamp":
		return Clamp, true
	case "wrap":
		return Wrap, true
	}
	return Clamp, false
}

type options struct {
	scheduler   Scheduler
	lock        time.Duration
	noise       int
	swipeRatio  float64
	boundary    Boundary
	autoAdvance time.Duration
	frameRate   int
	logger      *log.Logger
	styles      Styles
	keys        KeyMap
}

func defaultOptions() options {
	return options{
		scheduler:  TickScheduler{},
		lock:       DefaultLockDuration,
		noise:      DefaultNoiseThreshold,
		swipeRatio: DefaultSwipeRatio,
		boundary:   Clamp,
		frameRate:  DefaultFrameRate,
		logger:     log.New(io.Discard),
		styles:     DefaultStyles(),
		keys:       DefaultKeyMap(),
	}
}

type Option func(*options)

func WithScheduler(s Scheduler) Option {
	return func(o *options) {
		if s != nil {
			o.scheduler = s
		}
	}
}

// WithLockDuration sets how long navigation stays locked after a tab change.
func WithLockDuration(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.lock = d
		}
	}
}

// WithNoiseThreshold sets the drag distance below which no direction is reported.
func WithNoiseThreshold(cells int) Option {
	return func(o *options) {
		if cells >= 0 {
			o.noise = cells
		}
	}
}

// WithSwipeRatio sets the fraction of the viewport width a drag must cover to
// change tab.
func WithSwipeRatio(r float64) Option {
	return func(o *options) {
		if r > 0 && r <= 1 {
			o.swipeRatio = r
		}
	}
}

func WithBoundary(b Boundary) Option {
	return func(o *options) { o.boundary = b }
}

// WithAutoAdvance enables autoplay: Next is called every d. Zero disables it.
func WithAutoAdvance(d time.Duration) Option {
	return func(o *options) {
		if d >= 0 {
			o.autoAdvance = d
		}
	}
}

func WithFrameRate(fps int) Option {
	return func(o *options) {
		if fps > 0 {
			o.frameRate = fps
		}
	}
}

func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func WithStyles(s Styles) Option {
	return func(o *options) { o.styles = s }
}

func WithKeyMap(k KeyMap) Option {
	return func(o *options) { o.keys = k }
}
