package input

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func TestJustPressedEdge(t *testing.T) {
	im := NewInputManager()

	im.Press(glfw.KeyEscape)
	im.Update()
	if !im.IsPressed(ActionQuit) {
		t.Fatalf("quit not pressed after key down")
	}
	if !im.JustPressed(ActionQuit) {
		t.Fatalf("quit not just-pressed on the first frame")
	}

	im.Update()
	if im.JustPressed(ActionQuit) {
		t.Fatalf("quit still just-pressed on the second frame")
	}
	if !im.IsPressed(ActionQuit) {
		t.Fatalf("quit released while key is still down")
	}

	im.Release(glfw.KeyEscape)
	im.Update()
	if im.IsPressed(ActionQuit) {
		t.Fatalf("quit pressed after key up")
	}
}

func TestBindKeyMultipleActions(t *testing.T) {
	im := NewInputManager()
	im.BindKey(glfw.KeyQ, ActionQuit)
	im.BindKey(glfw.KeyQ, ActionPauseSpin)

	im.Press(glfw.KeyQ)
	im.Update()
	if !im.IsPressed(ActionQuit) || !im.IsPressed(ActionPauseSpin) {
		t.Fatalf("both actions should fire from one key")
	}
}

func TestBindKeyRejectsBadAction(t *testing.T) {
	im := NewInputManager()
	im.BindKey(glfw.KeyQ, ActionCount)
	im.BindKey(glfw.KeyQ, Action(-1))

	im.Press(glfw.KeyQ)
	im.Update()
	for a := Action(0); a < ActionCount; a++ {
		if im.IsPressed(a) {
			t.Fatalf("action %d pressed from an unbound key", a)
		}
	}
}
