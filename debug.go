package jamjar

import (
	"fmt"
	"os"
	"time"

	"github.com/yohamta/donburi"
)

// debugStats holds per-frame timing and interaction counts.
// Only populated when the engine is in debug mode.
type debugStats struct {
	updateTime time.Duration
	drawTime   time.Duration
	entities   int
	hovered    int
	events     int
}

// debugLogEvery is the number of updates between two stats lines.
const debugLogEvery = 120

// collectStats records the counts for the frame that just finished.
func (e *Engine) collectStats(updateTime time.Duration) {
	e.stats.updateTime = updateTime
	e.stats.entities = e.world.Len()
	e.stats.events = e.events.Len()
	e.stats.hovered = 0
	interactiveQuery.Each(e.world, func(entry *donburi.Entry) {
		if Interaction.Get(entry).State.Has(Hovered) {
			e.stats.hovered++
		}
	})
}

// debugLog prints the latest stats to stderr every debugLogEvery updates.
func (e *Engine) debugLog() {
	if !e.debug || e.tick%debugLogEvery != 0 {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[jamjar] update: %v | draw: %v | entities: %d | hovered: %d | events: %d\n",
		e.stats.updateTime, e.stats.drawTime, e.stats.entities, e.stats.hovered, e.stats.events)
}

// debugCheckEntity warns on stderr when an operation names an entity that no
// longer exists.
func (e *Engine) debugCheckEntity(ent donburi.Entity, op string) bool {
	if e.world.Valid(ent) {
		return true
	}
	if e.debug {
		_, _ = fmt.Fprintf(os.Stderr, "[jamjar] warning: %s on removed entity %v\n", op, ent)
	}
	return false
}
