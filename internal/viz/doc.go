// Package viz is the terminal front-end: a ball pit drawn with Braille
// dots inside a Bubble Tea program.
//
// Click or drag with the left mouse button to spawn balls. A click in the
// arena while a panel is open closes it.
//
// # Key Bindings
//
//	Space - Pause/Resume
//	R     - Reset the arena
//	E     - Random event
//	1-5   - Force SPEED, SLOWED, RAINBOW, GIANT, MINI
//	A/G/C/B - Rainbow, growing, collidable, giant ball at the center
//	?     - Stats panel (pauses while open)
//	!     - Debug panel (pauses while open)
//	H     - Hide the side panel
//	V     - Velocity streaks
//	M     - Mute sound effects
//	T     - Cycle color themes
//	Q     - Quit
package viz
