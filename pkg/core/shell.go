package core

// Shell is the channel from widgets back to the host during event handling.
type Shell struct {
	messages      []any
	layoutInvalid bool
	invalidations int
}

// Publish queues a message for the application.
func (s *Shell) Publish(msg any) {
	s.messages = append(s.messages, msg)
}

// Messages returns the published messages in order.
func (s *Shell) Messages() []any {
	return s.messages
}

// InvalidateLayout signals that geometry measured for the tree is stale and
// must be recomputed before the next draw. Every call is counted.
func (s *Shell) InvalidateLayout() {
	s.layoutInvalid = true
	s.invalidations++
}

// IsLayoutInvalid reports whether any widget invalidated the layout.
func (s *Shell) IsLayoutInvalid() bool {
	return s.layoutInvalid
}

// Invalidations returns how many times InvalidateLayout was called.
func (s *Shell) Invalidations() int {
	return s.invalidations
}

// Status reports whether an event was consumed.
type Status int

const (
	// StatusIgnored lets the event continue to other nodes.
	StatusIgnored Status = iota
	// StatusCaptured stops the event.
	StatusCaptured
)

// Merge returns StatusCaptured if either status is captured.
func (s Status) Merge(other Status) Status {
	if s == StatusCaptured || other == StatusCaptured {
		return StatusCaptured
	}
	return StatusIgnored
}

func (s Status) String() string {
	if s == StatusCaptured {
		return "captured"
	}
	return "ignored"
}
