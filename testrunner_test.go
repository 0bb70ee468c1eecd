package jamjar

import (
	"strings"
	"testing"
)

func TestLoadTestScriptErrors(t *testing.T) {
	tests := []struct {
		name, script, wantErr string
	}{
		{"malformed", "steps: [", "parse test script"},
		{"empty", "steps: []", "no steps"},
		{"unknown action", "steps:\n  - action: jump\n", `unknown action "jump"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadTestScript([]byte(tt.script))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("err = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestTestRunnerDrivesDrag(t *testing.T) {
	script := `
steps:
  - {action: move, x: 100, y: 100}
  - {action: drag, from_x: 100, from_y: 100, to_x: 400, to_y: 300, frames: 4}
  - {action: wait, frames: 2}
`
	r, err := LoadTestScript([]byte(script))
	if err != nil {
		t.Fatal(err)
	}

	e, _ := newTestEngine(t)
	e.SetInput(NewEbitenInput())
	e.SetTestRunner(r)
	if _, ok := e.Input().(*ScriptedInput); !ok {
		t.Fatal("SetTestRunner did not install a ScriptedInput")
	}
	// Keep the real mouse out of the test.
	e.Input().(*ScriptedInput).Fallback = nil

	token := spawnItem(e, "token", 100, 100, 20, 20, 1, Hoverable|Draggable)
	pot := spawnItem(e, "cauldron", 400, 300, 100, 100, 0, DropTarget)

	var onto []DroppedOntoEvent
	e.OnDroppedOnto(func(ev DroppedOntoEvent) { onto = append(onto, ev) })

	for i := 0; i < 60 && !r.Done(); i++ {
		run(t, e, 1)
	}
	if !r.Done() {
		t.Fatal("runner did not finish")
	}
	if len(onto) != 1 || onto[0].Src != token || onto[0].Dst != pot {
		t.Errorf("DroppedOnto = %v", onto)
	}
}

func TestTestRunnerScreenshotQueued(t *testing.T) {
	r, err := LoadTestScript([]byte("steps:\n  - {action: screenshot, label: start}\n"))
	if err != nil {
		t.Fatal(err)
	}
	e, _ := newTestEngine(t)
	e.SetTestRunner(r)
	run(t, e, 1)
	if len(e.shots) != 1 || e.shots[0] != "start" {
		t.Errorf("shots = %v, want [start]", e.shots)
	}
	if !r.Done() {
		t.Error("runner not done after its only step")
	}
}
