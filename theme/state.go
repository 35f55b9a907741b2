package theme

import "errors"

// ErrUnreadable marks a stored value that could not be decoded while the
// storage itself stays writable. The next Save replaces the bad value.
var ErrUnreadable = errors.New("unreadable preference")

// Storage persists the dark mode flag between sessions.
type Storage interface {
	// Load returns the stored value. ok is false when nothing has been stored.
	Load() (value bool, ok bool, err error)
	Save(value bool) error
}

// Option configures a State.
type Option func(*State)

// WithErrorHandler receives storage failures. They never reach the visitor.
func WithErrorHandler(fn func(error)) Option {
	return func(s *State) {
		s.onError = fn
	}
}

// State is the single source of truth for the dark mode flag.
// It is not safe for concurrent use; each request owns its own State.
type State struct {
	enabled     bool
	storage     Storage
	persistent  bool
	onError     func(error)
	subscribers []*subscriber
}

type subscriber struct {
	fn func(bool)
}

// New restores the flag from storage, falling back to defaultValue when
// nothing is stored. A nil storage or a failed read leaves the State
// memory-only for its lifetime, unless the failure wraps ErrUnreadable.
func New(storage Storage, defaultValue bool, opts ...Option) *State {
	s := &State{
		enabled:    defaultValue,
		storage:    storage,
		persistent: storage != nil,
	}
	for _, opt := range opts {
		opt(s)
	}
	if !s.persistent {
		return s
	}
	v, ok, err := storage.Load()
	if errors.Is(err, ErrUnreadable) {
		s.report(err)
		return s
	}
	if err != nil {
		s.degrade(err)
		return s
	}
	if ok {
		s.enabled = v
	}
	return s
}

// Value reports whether dark mode is enabled.
func (s *State) Value() bool {
	return s.enabled
}

// Persistent reports whether writes still reach storage.
func (s *State) Persistent() bool {
	return s.persistent
}

// Toggle flips the flag, persists it and notifies subscribers in
// registration order. It returns the new value.
func (s *State) Toggle() bool {
	s.enabled = !s.enabled
	if s.persistent {
		if err := s.storage.Save(s.enabled); err != nil {
			s.degrade(err)
		}
	}
	s.notify()
	return s.enabled
}

// Subscribe registers fn to be called after every Toggle. The returned
// function removes the registration; calling it twice is harmless.
func (s *State) Subscribe(fn func(enabled bool)) (unsubscribe func()) {
	sub := &subscriber{fn: fn}
	s.subscribers = append(s.subscribers, sub)
	return func() {
		for i, existing := range s.subscribers {
			if existing == sub {
				s.subscribers = append(s.subscribers[:i], s.subscribers[i+1:]...)
				return
			}
		}
	}
}

func (s *State) notify() {
	// Copy so a subscriber may unsubscribe itself mid-notification.
	subs := make([]*subscriber, len(s.subscribers))
	copy(subs, s.subscribers)
	for _, sub := range subs {
		sub.fn(s.enabled)
	}
}

func (s *State) degrade(err error) {
	s.persistent = false
	s.report(err)
}

func (s *State) report(err error) {
	if s.onError != nil {
		s.onError(err)
	}
}
