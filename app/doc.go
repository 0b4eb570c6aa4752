// Package app wires the HAL to the physics world: each frame it drains key
// edges, reads the held controls, steps the world by the clock delta and
// redraws the scene.
package app
