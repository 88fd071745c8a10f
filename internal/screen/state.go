// Package screen models the fetch-display-refresh lifecycle of a remote
// list or detail screen.
//
// A State is either Loading, Success or Failed. Refreshing is tracked
// separately and never moves the state back to Loading. Every fetch is issued
// a Ticket; only the most recently issued ticket may resolve the state, so a
// slow response that a newer fetch superseded is dropped.
package screen

// Phase is the rendering mode of a screen.
type Phase int

const (
	PhaseLoading Phase = iota // before the first fetch completes
	PhaseSuccess              // data is available
	PhaseFailed               // the last fetch failed
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "Loading"
	case PhaseSuccess:
		return "Success"
	case PhaseFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Ticket identifies one issued fetch.
type Ticket uint64

// State holds the lifecycle of one screen instance. The zero value is not
// usable; call New.
type State[T any] struct {
	phase      Phase
	data       T
	message    string
	refreshing bool

	issued   Ticket
	disposed bool
	failMsg  string
}

// New returns a State in Loading. failMessage is the fixed text shown for any
// failed fetch.
func New[T any](failMessage string) *State[T] {
	return &State[T]{phase: PhaseLoading, failMsg: failMessage}
}

// Phase returns the current rendering mode.
func (s *State[T]) Phase() Phase { return s.phase }

// Loading reports whether the blocking loading indicator should show.
func (s *State[T]) Loading() bool { return s.phase == PhaseLoading }

// Refreshing reports whether a pull-to-refresh is outstanding.
func (s *State[T]) Refreshing() bool { return s.refreshing }

// Data returns the payload and whether the state is Success.
func (s *State[T]) Data() (T, bool) {
	if s.phase != PhaseSuccess {
		var zero T
		return zero, false
	}
	return s.data, true
}

// Error returns the display message and whether the state is Failed.
func (s *State[T]) Error() (string, bool) {
	if s.phase != PhaseFailed {
		return "", false
	}
	return s.message, true
}

// Disposed reports whether the owning screen has gone away.
func (s *State[T]) Disposed() bool { return s.disposed }

// Begin issues the ticket for the initial fetch. The phase stays Loading.
func (s *State[T]) Begin() Ticket {
	return s.next()
}

// Reset returns to Loading and issues a ticket for a fresh fetch cycle.
// Used when the identifying route parameters change. Any outstanding fetch,
// including a refresh, is superseded.
func (s *State[T]) Reset() Ticket {
	var zero T
	s.phase = PhaseLoading
	s.data = zero
	s.message = ""
	s.refreshing = false
	return s.next()
}

// BeginRefresh marks a refresh as outstanding and issues its ticket. The
// phase is left unchanged.
func (s *State[T]) BeginRefresh() Ticket {
	s.refreshing = true
	return s.next()
}

// Resolve applies the outcome of the fetch identified by t. It reports
// whether the outcome was applied; outcomes of superseded tickets and
// outcomes arriving after Dispose are dropped.
func (s *State[T]) Resolve(t Ticket, data T, err error) bool {
	if s.disposed || t != s.issued {
		return false
	}
	if err != nil {
		var zero T
		s.phase = PhaseFailed
		s.data = zero
		s.message = s.failMsg
	} else {
		s.phase = PhaseSuccess
		s.data = data
		s.message = ""
	}
	s.refreshing = false
	return true
}

// Dispose detaches the state from its screen. Later resolutions are ignored.
func (s *State[T]) Dispose() {
	s.disposed = true
	s.refreshing = false
}

func (s *State[T]) next() Ticket {
	s.issued++
	return s.issued
}
