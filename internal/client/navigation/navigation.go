// Package navigation models the screen stack of the client.
package navigation

import "sync"

// Screen names a place in the client.
type Screen string

const (
	ScreenLogin    Screen = "login"
	ScreenRegister Screen = "register"
	ScreenSettings Screen = "settings"
)

// Navigator is what the flows are allowed to do with the stack.
type Navigator interface {
	// GoBack pops the current screen.
	GoBack()
	// PopToTop resets the stack to its root screen.
	PopToTop()
}

// Stack is a Navigator backed by a slice. The root screen is never popped.
type Stack struct {
	mu      sync.Mutex
	screens []Screen
}

func NewStack(root Screen) *Stack {
	return &Stack{screens: []Screen{root}}
}

// Push opens s on top of the current screen.
func (s *Stack) Push(screen Screen) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screens = append(s.screens, screen)
}

func (s *Stack) GoBack() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.screens) > 1 {
		s.screens = s.screens[:len(s.screens)-1]
	}
}

func (s *Stack) PopToTop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screens = s.screens[:1]
}

// Current returns the screen on top.
func (s *Stack) Current() Screen {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.screens[len(s.screens)-1]
}

// Depth returns the number of screens on the stack.
func (s *Stack) Depth() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.screens)
}
