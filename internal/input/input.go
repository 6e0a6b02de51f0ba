package input

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action represents a logical action, not a physical key
type Action int

const (
	ActionQuit Action = iota
	ActionPauseSpin
	ActionToggleTexture
	ActionToggleOverlay
	ActionCycleModel
	ActionCount // Sentinel value for array sizing
)

// InputManager maps physical keys to logical actions and tracks per-frame
// edge state
type InputManager struct {
	mu sync.RWMutex

	// Key to action mapping (one key can map to multiple actions)
	keyToActions map[glfw.Key][]Action

	// Current frame state (indexed by Action)
	currentState [ActionCount]bool

	// Previous frame state (for edge detection)
	prevState [ActionCount]bool

	justPressed [ActionCount]bool
}

// NewInputManager creates a new InputManager with default key bindings
func NewInputManager() *InputManager {
	im := &InputManager{
		keyToActions: make(map[glfw.Key][]Action),
	}

	im.BindKey(glfw.KeyEscape, ActionQuit)
	im.BindKey(glfw.KeySpace, ActionPauseSpin)
	im.BindKey(glfw.KeyT, ActionToggleTexture)
	im.BindKey(glfw.KeyF3, ActionToggleOverlay)
	im.BindKey(glfw.KeyTab, ActionCycleModel)

	return im
}

// BindKey binds a physical key to a logical action
func (im *InputManager) BindKey(key glfw.Key, action Action) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if action < 0 || action >= ActionCount {
		return
	}
	im.keyToActions[key] = append(im.keyToActions[key], action)
}

// InstallCallbacks hooks the manager into a window's key events
func (im *InputManager) InstallCallbacks(win *glfw.Window) {
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, event glfw.Action, _ glfw.ModifierKey) {
		if event == glfw.Repeat {
			return
		}
		im.mu.Lock()
		defer im.mu.Unlock()
		for _, action := range im.keyToActions[key] {
			im.currentState[action] = event == glfw.Press
		}
	})
}

// Update advances the edge-detection state; call once per frame after event
// polling
func (im *InputManager) Update() {
	im.mu.Lock()
	defer im.mu.Unlock()

	for a := Action(0); a < ActionCount; a++ {
		im.justPressed[a] = im.currentState[a] && !im.prevState[a]
		im.prevState[a] = im.currentState[a]
	}
}

// IsPressed reports whether the action's key is currently held
func (im *InputManager) IsPressed(action Action) bool {
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.currentState[action]
}

// JustPressed reports whether the action's key went down this frame
func (im *InputManager) JustPressed(action Action) bool {
	im.mu.RLock()
	defer im.mu.RUnlock()
	return im.justPressed[action]
}

// Press and Release drive the manager directly; tests and replay tooling use
// them in place of GLFW callbacks.
func (im *InputManager) Press(key glfw.Key)   { im.setKey(key, true) }
func (im *InputManager) Release(key glfw.Key) { im.setKey(key, false) }

func (im *InputManager) setKey(key glfw.Key, down bool) {
	im.mu.Lock()
	defer im.mu.Unlock()
	for _, action := range im.keyToActions[key] {
		im.currentState[action] = down
	}
}
