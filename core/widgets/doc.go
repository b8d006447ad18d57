// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing helpers (card chrome, colour fades, popup overlay compositor)
//
// Not allowed here:
// - key handling, pointer handling, carousel state transitions, or scope logic
package widgets
