package jamjar

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `yaml:"action"`
	Label  string  `yaml:"label,omitempty"`
	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
	FromX  float64 `yaml:"from_x,omitempty"`
	FromY  float64 `yaml:"from_y,omitempty"`
	ToX    float64 `yaml:"to_x,omitempty"`
	ToY    float64 `yaml:"to_y,omitempty"`
	Frames int     `yaml:"frames,omitempty"`
}

// testScript is the top-level YAML structure for a test script.
type testScript struct {
	Steps []testStep `yaml:"steps"`
}

// TestRunner sequences scripted pointer input and screenshots across frames
// for automated play-throughs. Attach it with Engine.SetTestRunner.
//
// Script format:
//
//	steps:
//	  - {action: move, x: 100, y: 80}
//	  - {action: drag, from_x: 100, from_y: 80, to_x: 400, to_y: 300, frames: 10}
//	  - {action: click, x: 620, y: 40}
//	  - {action: wait, frames: 30}
//	  - {action: screenshot, label: after-click}
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a YAML test script and returns a TestRunner.
func LoadTestScript(data []byte) (*TestRunner, error) {
	var script testScript
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "move", "press", "release", "click", "drag", "wait", "screenshot":
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner. The engine's input is wrapped in a
// ScriptedInput, if it is not one already, so the runner can queue frames.
// The runner advances at the start of every Update.
func (e *Engine) SetTestRunner(runner *TestRunner) {
	e.runner = runner
	if _, ok := e.input.(*ScriptedInput); !ok {
		e.input = NewScriptedInput(e.input)
	}
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one frame.
func (r *TestRunner) step(e *Engine, in *ScriptedInput) {
	if r.done {
		return
	}
	// Wait for queued frames to drain before advancing.
	if in.Pending() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		e.Screenshot(st.Label)
	case "move":
		in.InjectMove(st.X, st.Y)
	case "press":
		in.InjectPress(st.X, st.Y)
	case "release":
		in.InjectRelease(st.X, st.Y)
	case "click":
		in.InjectClick(st.X, st.Y)
	case "drag":
		in.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && in.Pending() == 0 {
		r.done = true
	}
}
