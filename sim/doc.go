// Package sim provides the step-chain substrate of a discrete-event process
// simulator: the polymorphic activity abstraction, the trajectory that owns
// a chain of activities, and the helpers an external scheduler needs to
// drive simulated arrivals through a chain.
//
// # Reading Guide
//
// Start with these three files to understand the substrate:
//   - activity.go: the Activity contract and the embeddable Base node
//   - trajectory.go: chain ownership, append, deep cloning, printing
//   - walker.go: driving a single arrival through a chain
//
// # Architecture
//
// The package defines the contract every concrete step kind (delays, seizes,
// branches, batches, ...) is built on. Only one concrete kind ships here,
// Timeout, which doubles as the reference implementation; richer step
// catalogs live outside this module and plug in by embedding Base.
//
// Activity parameters are resolved at execution time through ValueSource:
// a fixed constant, a deferred host closure, or a callback bound to the
// executing arrival. Resolution happens fresh on every access so stochastic
// and state-dependent parameters vary per execution.
//
// Chains are doubly linked. The physical links are what ownership, cloning
// and printing operate on; the walker follows the virtual Next method, which
// branching and looping kinds override to return a computed successor.
package sim
