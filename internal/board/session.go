// Package board tracks the drag-and-drop state of a puzzle board: stacking
// order, pointer gestures and the initial tray layout. It knows nothing about
// widgets; the ui package drives it from fyne events.
package board

// Session is the per-board interaction context. It hands out stacking values
// so the most recently touched tile is always on top.
type Session struct {
	z int
}

func NewSession() *Session {
	return &Session{}
}

// NextZ returns a stacking value greater than every value returned before.
func (s *Session) NextZ() int {
	s.z++
	return s.z
}

// Current returns the last value handed out, or 0 if none was.
func (s *Session) Current() int {
	return s.z
}
