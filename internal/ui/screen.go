// Package ui draws generated dungeons, as plain or coloured text and on a
// tcell terminal screen.
package ui

import "github.com/gdamore/tcell/v2"

// Screen is the terminal surface the dungeon viewer draws on.
type Screen struct {
	screen tcell.Screen
}

// NewScreen opens the controlling terminal for the viewer.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewScreenFrom(s)
}

// NewScreenFrom initializes s, which may be a simulation screen.
func NewScreenFrom(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	s.Clear()
	return &Screen{screen: s}, nil
}

// Close hands the terminal back to the shell.
func (s *Screen) Close() {
	s.screen.Fini()
}

// PollEvent blocks until the next key, resize or interrupt event. It
// returns nil once the screen is closed.
func (s *Screen) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

// Interrupt wakes a pending PollEvent with an *tcell.EventInterrupt.
func (s *Screen) Interrupt() {
	_ = s.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

// Clear blanks the back buffer before a new frame.
func (s *Screen) Clear() {
	s.screen.Clear()
}

// Show presents the current frame.
func (s *Screen) Show() {
	s.screen.Show()
}

// SetContent puts one rune of the dungeon drawing at x, y.
func (s *Screen) SetContent(x, y int, r rune, style tcell.Style) {
	s.screen.SetContent(x, y, r, nil, style)
}

// Size returns the visible area in cells.
func (s *Screen) Size() (width, height int) {
	return s.screen.Size()
}

// Sync redraws everything, e.g. after the terminal was resized.
func (s *Screen) Sync() {
	s.screen.Sync()
}
