package session

import (
	"sync"

	"github.com/pkg/errors"
)

// UpdateType names the part of the state an emitted update changed
type UpdateType string

const (
	MatrixChange     UpdateType = "matrix:change"
	GameStateChange  UpdateType = "gameState:change"
	BorderModeChange UpdateType = "borderMode:change"
	DrawModeChange   UpdateType = "drawMode:change"
	PatternChange    UpdateType = "pattern:change"
)

// ErrNoChange may be returned by a Patch to drop the update silently
var ErrNoChange = errors.New("no change")

// Subscriber is a view or control that reacts to state updates
type Subscriber interface {
	OnUpdate(kind UpdateType, next, prev State)
}

// SubscriberFunc adapts a function to Subscriber
type SubscriberFunc func(kind UpdateType, next, prev State)

// OnUpdate calls f
func (f SubscriberFunc) OnUpdate(kind UpdateType, next, prev State) { f(kind, next, prev) }

// Patch edits a copy of the current state
type Patch func(s *State) error

// Dispatcher owns the current State and fans updates out to subscribers.
//
// Patches and notifications run under one lock, so every builder call made
// from a patch sees the latest matrix. Subscribers must not call Emit.
type Dispatcher struct {
	mu          sync.Mutex
	state       State
	subscribers []Subscriber
}

// NewDispatcher returns a Dispatcher holding initial. The liveness summary is
// recomputed from the initial matrix.
func NewDispatcher(initial State) *Dispatcher {
	initial.MatrixState = initial.Matrix.Summary()
	return &Dispatcher{state: initial}
}

// Subscribe registers s; subscribers are notified in registration order
func (d *Dispatcher) Subscribe(s Subscriber) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.subscribers = append(d.subscribers, s)
}

// State returns a snapshot of the current state
func (d *Dispatcher) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Emit applies patch to the current state and notifies subscribers. It
// reports whether an update was published.
func (d *Dispatcher) Emit(kind UpdateType, patch Patch) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	prev := d.state
	next := prev
	if err := patch(&next); err != nil {
		if errors.Is(err, ErrNoChange) {
			return false, nil
		}
		return false, errors.Wrapf(err, "[Emit] %s", kind)
	}

	d.state = next
	for _, s := range d.subscribers {
		s.OnUpdate(kind, next, prev)
	}
	return true, nil
}
