// Package phys implements the particle integration core.
//
// The package is a pure tick function over a set of bodies:
//
//   - [Body]: a circular particle (position, velocity, mass, size)
//   - [Params]: world geometry and force constants
//   - [Step]: one simulation tick (forces, integration, collisions,
//     boundaries), returning the IDs of despawned bodies
//
// Step reads all pairwise state through a snapshot taken at tick start, so
// results are independent of body order and a future caller may parallelize
// across bodies against the shared read-only snapshot. The package holds no
// state of its own; the host owns body storage, identity and the run/pause
// loop.
package phys
