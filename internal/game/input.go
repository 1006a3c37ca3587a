package game

import "github.com/go-gl/glfw/v3.3/glfw"

// Steering holds the drag-steer state written by glfw mouse callbacks.
// glfw fires callbacks inside PollEvents on the main thread, so plain fields
// are safe here; a port with a separate input thread would need an atomic
// around value to avoid a torn read.
type Steering struct {
	dragging bool
	value    float64 // normalized cursor X; 0.5 = neutral
}

func NewSteering() *Steering {
	return &Steering{value: 0.5}
}

// Value returns the last known steering position. It persists after the
// drag ends, so the camera offset holds until the next drag.
func (s *Steering) Value() float64 { return s.value }

// Attach registers the press/move/release callbacks on the window.
// The value only updates on cursor movement while the button is held.
func (s *Steering) Attach(window *glfw.Window) {
	window.SetMouseButtonCallback(func(w *glfw.Window, b glfw.MouseButton, a glfw.Action, _ glfw.ModifierKey) {
		if b != glfw.MouseButtonLeft {
			return
		}
		switch a {
		case glfw.Press:
			s.dragging = true
		case glfw.Release:
			s.dragging = false
		}
	})
	window.SetCursorPosCallback(func(w *glfw.Window, x, _ float64) {
		if !s.dragging {
			return
		}
		winW, _ := w.GetSize()
		s.value = steerFromCursor(x, winW)
	})
}

// steerFromCursor normalizes a cursor X coordinate to [0,1]. glfw keeps
// reporting positions outside the window while a drag is held, so the result
// is clamped explicitly rather than trusting on-screen coordinates.
func steerFromCursor(x float64, winW int) float64 {
	if winW <= 0 {
		return 0.5
	}
	return clampF(x/float64(winW), 0, 1)
}
