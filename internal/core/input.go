package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the simulation to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - steer left
	ActionRight          // D, Right arrow - steer right
	ActionUp             // W, Up arrow - rise
	ActionDown           // S, Down arrow - dive
	ActionBoost          // Space - burst of speed while energy lasts
	ActionPause          // P - pause/unpause
	ActionEndRun         // E - end the current run
	ActionRestart        // R - start a new run after the current one ended
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionBoost:
		return "Boost"
	case ActionPause:
		return "Pause"
	case ActionEndRun:
		return "EndRun"
	case ActionRestart:
		return "Restart"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// TouchState is the active touch/drag gesture, if any.
type TouchState struct {
	Active bool
	X, Y   float64 // Normalized to [-1, 1], y up
}

// InputFrame is the polled input snapshot for one simulation tick.
// The simulation reads it and never mutates it.
type InputFrame struct {
	// Actions holds every action considered down this tick.
	Actions map[Action]bool

	// PointerX and PointerY are pointer axes normalized to [-1, 1], y up.
	PointerX, PointerY float64

	Touch TouchState
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as down for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is down this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.PointerX = f.PointerX
	clone.PointerY = f.PointerY
	clone.Touch = f.Touch
	return clone
}

// Steering returns the lateral axes the movement controller should follow.
// An active touch gesture takes precedence over the pointer.
func (f InputFrame) Steering() (x, y float64) {
	if f.Touch.Active {
		return f.Touch.X, f.Touch.Y
	}
	return f.PointerX, f.PointerY
}

// DefaultHoldWindow is how long a key press counts as held without a repeat.
const DefaultHoldWindow = 250 * time.Millisecond

// InputTracker aggregates raw device events into InputFrame snapshots.
// Terminals report key presses (and auto-repeats) but never releases, so a
// pressed action stays down until HoldWindow passes without another press,
// or until Release is called by a host that does see key-up events.
type InputTracker struct {
	HoldWindow time.Duration

	pressed map[Action]time.Time
	pointer struct{ x, y float64 }
	touch   TouchState
}

// NewInputTracker creates a tracker with the given hold window.
// A non-positive window falls back to DefaultHoldWindow.
func NewInputTracker(hold time.Duration) *InputTracker {
	if hold <= 0 {
		hold = DefaultHoldWindow
	}
	return &InputTracker{
		HoldWindow: hold,
		pressed:    make(map[Action]time.Time),
	}
}

// Press records a key-down (or auto-repeat) for an action.
func (t *InputTracker) Press(a Action, at time.Time) {
	if a == ActionNone {
		return
	}
	t.pressed[a] = at
}

// Release records a key-up for an action.
func (t *InputTracker) Release(a Action) {
	delete(t.pressed, a)
}

// Pointer records the latest pointer position, already normalized.
func (t *InputTracker) Pointer(x, y float64) {
	t.pointer.x = ClampF(x, -1, 1)
	t.pointer.y = ClampF(y, -1, 1)
}

// TouchStart begins a touch gesture at the given normalized position.
func (t *InputTracker) TouchStart(x, y float64) {
	t.touch = TouchState{Active: true, X: ClampF(x, -1, 1), Y: ClampF(y, -1, 1)}
}

// TouchMove updates an active touch gesture. Ignored when no touch is active.
func (t *InputTracker) TouchMove(x, y float64) {
	if !t.touch.Active {
		return
	}
	t.touch.X = ClampF(x, -1, 1)
	t.touch.Y = ClampF(y, -1, 1)
}

// TouchEnd finishes the active touch gesture.
func (t *InputTracker) TouchEnd() {
	t.touch = TouchState{}
}

// Reset forgets all held keys and gestures.
func (t *InputTracker) Reset() {
	for k := range t.pressed {
		delete(t.pressed, k)
	}
	t.pointer.x, t.pointer.y = 0, 0
	t.touch = TouchState{}
}

// Snapshot returns the input frame as of now, expiring stale key presses.
func (t *InputTracker) Snapshot(now time.Time) InputFrame {
	frame := NewInputFrame()
	for a, at := range t.pressed {
		if now.Sub(at) > t.HoldWindow {
			delete(t.pressed, a)
			continue
		}
		frame.Set(a)
	}
	frame.PointerX = t.pointer.x
	frame.PointerY = t.pointer.y
	frame.Touch = t.touch
	return frame
}

// NormalizePointer maps a cell position in a w*h viewport to axes in
// [-1, 1] with y pointing up.
func NormalizePointer(col, row, w, h int) (x, y float64) {
	if w <= 1 || h <= 1 {
		return 0, 0
	}
	x = float64(col)/float64(w-1)*2 - 1
	y = -(float64(row)/float64(h-1)*2 - 1)
	return ClampF(x, -1, 1), ClampF(y, -1, 1)
}
