// Package system moves the bodies of a solar system over time and turns
// them into per-frame [orrery.Entity] values.
//
// A [System] is built once from a list of [Body] definitions. Each body
// either stays put, orbits a fixed point in the XZ plane, or orbits
// another body by name. Entities(t) resolves every position for time t,
// parents before children, and applies spin and tangent-facing yaw.
//
// The package also carries the sample system used by the orrery command
// and two camera rigs: [FollowCamera], which trails a target along its
// local axes, and [OrbitCamera], which circles a point at a fixed height.
package system
