// Package arena implements the bouncing-ball simulation core.
//
// An [Arena] owns every [Ball] and advances them with a fixed-timestep
// [Arena.Tick]. Balls come in four kinds:
//
//   - plain: bounces off the walls, optionally rainbow
//   - collidable: swaps velocity with overlapping collidables
//   - evolutive: grows on each new wall contact, explodes into fragments
//   - fragment: short-lived rainbow ball spawned by an explosion
//
// A global [Event] scales speed or resizes/recolors every ball for a fixed
// duration. The arena exposes pure render state through [Arena.Balls] and
// [Arena.Stats]; drawing is left to the front-ends.
//
// # Coordinates
//
// Arena space has its origin at the bottom-left corner with y growing
// upward. The strip [0, Bounds.Floor) at the bottom is reserved for the
// control bar, so balls live in [0, Width] × [Floor, Height].
//
// # Thread Safety
//
// Arena instances are NOT thread-safe. A front-end owns its arena and drives
// input and ticks from a single goroutine.
package arena
