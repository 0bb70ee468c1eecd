// Package jamjar is the pointer interaction engine of a point-and-click shop
// game, built on [Ebitengine] and [Donburi].
//
// It turns raw mouse input into hover highlights, single-entity drag and
// drop, UI button presses and scene transitions. Entities live in a donburi
// world; the engine owns the systems that read and write their
// [InteractionData] and [ButtonData] components.
//
// # Quick start
//
//	eng, err := jamjar.NewEngine(jamjar.Config{WindowWidth: 800, WindowHeight: 600})
//	if err != nil {
//		log.Fatal(err)
//	}
//	jar := eng.Spawn(jamjar.EntityDef{
//		Name: "jar",
//		Box:  jamjar.BoxFromSize(0, 0, 48, 64),
//		Caps: jamjar.Hoverable | jamjar.Draggable,
//	})
//	eng.OnDroppedOnto(func(ev jamjar.DroppedOntoEvent) {
//		if ev.Src == jar {
//			// ...
//		}
//	})
//
// Call [Engine.Update] from ebiten's Update and [Engine.Draw] from Draw.
//
// # Frame order
//
// Each Update runs, in order: cursor tracking, hover detection, drag
// pick-up, button state machines, drag follow, drag release, drop
// resolution, tint feedback, event callbacks, deferred despawns. Events
// produced during a frame are readable through [Engine.Events] until the
// next Update and are also published to donburi's event queues.
//
// # Hit testing
//
// Every hit test goes through [Box.Contains], which treats points on an
// edge as outside. When several entities are under the cursor, a
// [PickPolicy] chooses one; the default [TopmostFirst] prefers higher Z,
// then smaller boxes, then later spawns.
//
// # Scenes
//
// [SceneMachine] holds one active [Scene]. Transition requests are applied
// at the end of [SceneMachine.Update]; the last request of a frame wins.
//
// # Testing
//
// [ScriptedInput] replaces the mouse with queued synthetic frames, and
// [LoadTestScript] drives it from a YAML script for automated play-throughs
// with screenshots.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package jamjar
