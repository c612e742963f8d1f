// Package scene provides the core animation primitives for evalviz.
//
// The package defines the building blocks of a deterministic animation
// timeline:
//
//   - [Object]: a renderable tree node (text, rectangle, line, group)
//   - [Animation]: a tween mutating one object over a timeline step
//   - [Scene]: plays steps against a [FrameSink] at a fixed frame rate
//
// Playback is single-pass: a scene script calls Play and Wait in order,
// each call samples its frames immediately, and the frame count for a
// given script and frame rate is a pure function of the recorded step
// durations.
//
// # Example
//
//	sc, _ := scene.New(ctx, 30, sink)
//	title := scene.NewText("let x = 1")
//	sc.Play(scene.Write(title))
//	sc.Wait(0.5)
//
// # Thread Safety
//
// Scene and Object instances are NOT thread-safe; a scene is owned by
// the single rendering pass that plays it.
package scene
