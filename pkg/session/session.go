// Package session holds the process-wide state shared by the extraction
// coordinator and the export components: the submitted URL, the last
// produced style-guide document, the in-flight flag and the visible state of
// the controls bound to them.
package session

import "sync"

// Labels of the submit control.
const (
	IdleLabel = "Extract Styles"
	BusyLabel = "Extracting..."
)

// Trigger is the submit control as the UI should render it.
type Trigger struct {
	Disabled bool
	Label    string
}

// State is created once at startup and passed to every component that needs
// it. The zero value is not ready for use; call New.
type State struct {
	mu              sync.RWMutex
	url             string
	document        string
	inFlight        bool
	trigger         Trigger
	documentVisible bool
}

// New returns an idle State with no document.
func New() *State {
	return &State{trigger: Trigger{Label: IdleLabel}}
}

// URL returns the last submitted, trimmed URL.
func (s *State) URL() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.url
}

// Document returns the most recently produced document, or "" before the
// first successful extraction.
func (s *State) Document() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.document
}

// InFlight reports whether an extraction request is running.
func (s *State) InFlight() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inFlight
}

// Trigger returns the current state of the submit control.
func (s *State) Trigger() Trigger {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.trigger
}

// DocumentVisible reports whether the document region is shown.
func (s *State) DocumentVisible() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.documentVisible
}

// Begin marks a request for url as started: the trigger is disabled and
// relabelled and the previous document is hidden. It returns false, and
// changes nothing, if a request is already in flight.
func (s *State) Begin(url string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight {
		return false
	}
	s.url = url
	s.inFlight = true
	s.trigger = Trigger{Disabled: true, Label: BusyLabel}
	s.documentVisible = false
	return true
}

// Publish stores doc as the current document and shows it.
func (s *State) Publish(doc string) {
	s.mu.Lock()
	s.document = doc
	s.documentVisible = true
	s.mu.Unlock()
}

// Finish ends the in-flight request and restores the trigger.
func (s *State) Finish() {
	s.mu.Lock()
	s.inFlight = false
	s.trigger = Trigger{Label: IdleLabel}
	s.mu.Unlock()
}
