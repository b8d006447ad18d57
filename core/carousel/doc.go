// Package carousel implements a swipeable tab carousel: a strip of labelled
// tabs over a stack of content cards, navigable by key, click or drag.
//
// All state changes happen inside Update or the navigation methods, which
// return the tea.Cmd that delivers any follow-up message (animation lock
// release, animation frames, autoplay ticks). Timing goes through a Scheduler
// so tests can drive the clock by hand.
package carousel
