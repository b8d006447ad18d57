// Package core contains app-wide contracts and state orchestration.
//
// Allowed here:
// - model routing, message contracts, command and key registries
// - hosting the carousel and translating terminal input into its coordinates
//
// Not allowed here:
// - concrete screen/modal rendering implementations
// - carousel state transitions (see core/carousel)
// - low-level widget rendering primitives
package core
