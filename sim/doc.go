// Package sim is the simulation core of the shooter: the player square, its bullets,
// the homing enemies, the menu/playing/gameover lifecycle and the spawn and fire timers.
//
// The package performs no I/O. A driver owns one World, feeds it an Input snapshot and
// the current wall-clock time once per frame, forwards the returned events to sound and
// logging, and hands a Snapshot to the renderer.
package sim
