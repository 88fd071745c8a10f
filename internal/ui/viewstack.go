package ui

// ViewStack manages the navigation stack of screens (push/pop).
type ViewStack struct {
	Stack []Screen
}

// Push adds a screen to the top of the stack.
func (s *ViewStack) Push(v Screen) {
	s.Stack = append(s.Stack, v)
}

// Pop removes the top screen, disposes it and returns it.
// Returns nil if the stack is empty.
func (s *ViewStack) Pop() Screen {
	if len(s.Stack) == 0 {
		return nil
	}
	top := s.Stack[len(s.Stack)-1]
	s.Stack = s.Stack[:len(s.Stack)-1]
	top.Dispose()
	return top
}

// Peek returns the top screen without removing it.
func (s *ViewStack) Peek() Screen {
	if len(s.Stack) == 0 {
		return nil
	}
	return s.Stack[len(s.Stack)-1]
}

// Find returns the live screen with the given id, or nil.
func (s *ViewStack) Find(id int) Screen {
	for _, v := range s.Stack {
		if v.ID() == id {
			return v
		}
	}
	return nil
}

// Len returns the number of screens in the stack.
func (s *ViewStack) Len() int {
	return len(s.Stack)
}
