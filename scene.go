package jamjar

import (
	"errors"
	"fmt"
	"os"
)

var (
	// ErrUnknownScene is returned when a scene id was never registered.
	ErrUnknownScene = errors.New("unknown scene")
	// ErrDuplicateScene is returned when a scene id is registered twice.
	ErrDuplicateScene = errors.New("scene already registered")
	// ErrNoScene is returned by Update before Start.
	ErrNoScene = errors.New("no active scene")
)

// SceneID identifies a registered scene.
type SceneID int

// Scene is a top-level game mode. Enter and Exit run exactly once per
// activation; Update runs every frame while the scene is active.
type Scene interface {
	Enter()
	Update(dt float64) error
	Exit()
}

// SceneHooks adapts plain functions to Scene. Nil hooks are skipped.
type SceneHooks struct {
	OnEnter  func()
	OnUpdate func(dt float64) error
	OnExit   func()
}

func (h SceneHooks) Enter() {
	if h.OnEnter != nil {
		h.OnEnter()
	}
}

func (h SceneHooks) Update(dt float64) error {
	if h.OnUpdate != nil {
		return h.OnUpdate(dt)
	}
	return nil
}

func (h SceneHooks) Exit() {
	if h.OnExit != nil {
		h.OnExit()
	}
}

// SceneMachine holds exactly one active scene. Transition requests are
// queued and applied at the end of Update: the old scene's Exit runs, then
// the new scene's Enter, with no update hook in between. When several
// requests arrive in one frame the last one wins.
type SceneMachine struct {
	scenes  map[SceneID]Scene
	names   map[SceneID]string
	current SceneID
	started bool
	pending SceneID
	queued  bool
	debug   bool
}

// NewSceneMachine creates an empty machine.
func NewSceneMachine() *SceneMachine {
	return &SceneMachine{
		scenes: make(map[SceneID]Scene),
		names:  make(map[SceneID]string),
	}
}

// SetDebugMode enables transition logging to stderr.
func (m *SceneMachine) SetDebugMode(enabled bool) { m.debug = enabled }

// Register adds a scene under id with a display name for logs.
func (m *SceneMachine) Register(id SceneID, name string, s Scene) error {
	if _, ok := m.scenes[id]; ok {
		return fmt.Errorf("jamjar: register scene %q: %w", name, ErrDuplicateScene)
	}
	m.scenes[id] = s
	m.names[id] = name
	return nil
}

// Name returns the display name of id.
func (m *SceneMachine) Name(id SceneID) string {
	if n, ok := m.names[id]; ok {
		return n
	}
	return fmt.Sprintf("scene(%d)", int(id))
}

// Start activates the initial scene and runs its Enter.
func (m *SceneMachine) Start(id SceneID) error {
	s, ok := m.scenes[id]
	if !ok {
		return fmt.Errorf("jamjar: start scene %d: %w", int(id), ErrUnknownScene)
	}
	m.current = id
	m.started = true
	m.queued = false
	m.logf("start %s", m.Name(id))
	s.Enter()
	return nil
}

// Request queues a transition to id. A request for the active scene with no
// other transition pending is ignored.
func (m *SceneMachine) Request(id SceneID) error {
	if _, ok := m.scenes[id]; !ok {
		return fmt.Errorf("jamjar: request scene %d: %w", int(id), ErrUnknownScene)
	}
	if m.queued && m.pending != id {
		m.logf("request %s replaces %s", m.Name(id), m.Name(m.pending))
	}
	m.pending = id
	m.queued = true
	return nil
}

// Current returns the active scene id.
func (m *SceneMachine) Current() (SceneID, bool) { return m.current, m.started }

// Pending returns the queued transition, if any.
func (m *SceneMachine) Pending() (SceneID, bool) { return m.pending, m.queued }

// Update runs the active scene's Update, then applies a queued transition.
func (m *SceneMachine) Update(dt float64) error {
	if !m.started {
		return fmt.Errorf("jamjar: update scenes: %w", ErrNoScene)
	}
	if err := m.scenes[m.current].Update(dt); err != nil {
		return fmt.Errorf("jamjar: update scene %s: %w", m.Name(m.current), err)
	}
	m.apply()
	return nil
}

func (m *SceneMachine) apply() {
	if !m.queued {
		return
	}
	next := m.pending
	m.queued = false
	if next == m.current {
		return
	}
	m.logf("%s -> %s", m.Name(m.current), m.Name(next))
	m.scenes[m.current].Exit()
	m.current = next
	m.scenes[next].Enter()
}

func (m *SceneMachine) logf(format string, args ...any) {
	if !m.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[jamjar] scene: "+format+"\n", args...)
}
