package status

import (
	"sync"
	"time"
)

// SuccessTimeout is how long a success message stays visible before it is
// cleared automatically.
const SuccessTimeout = 3 * time.Second

// Severity tags a status message.
type Severity int

const (
	// None is the cleared state.
	None Severity = iota
	Loading
	Success
	Error
)

func (s Severity) String() string {
	switch s {
	case Loading:
		return "loading"
	case Success:
		return "success"
	case Error:
		return "error"
	default:
		return ""
	}
}

// Status is a single status message instance. ID increases with every Show
// and Clear, so a deferred clear can tell whether the message it was
// scheduled for is still the one on display.
type Status struct {
	ID       uint64
	Message  string
	Severity Severity
}

// IsZero reports whether the status is in the cleared state.
func (s Status) IsZero() bool {
	return s.Severity == None && s.Message == ""
}

// Scheduler runs fn once after d. The returned stop function cancels the
// pending call and reports whether it did so before fn started.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) (stop func() bool)
}

type timerScheduler struct{}

func (timerScheduler) AfterFunc(d time.Duration, fn func()) func() bool {
	return time.AfterFunc(d, fn).Stop
}

// Reporter holds the one current status message.
type Reporter struct {
	mu        sync.Mutex
	current   Status
	seq       uint64
	scheduler Scheduler
	stop      func() bool // cancels the pending auto-clear, if any
	listeners []func(Status)
}

// NewReporter returns a Reporter that schedules its auto-clears with s.
// A nil Scheduler uses real timers.
func NewReporter(s Scheduler) *Reporter {
	if s == nil {
		s = timerScheduler{}
	}
	return &Reporter{scheduler: s}
}

// Subscribe registers fn to be called after every status change, including
// the ones made by the auto-clear timer. fn is called without the reporter
// lock held.
func (r *Reporter) Subscribe(fn func(Status)) {
	if fn == nil {
		return
	}
	r.mu.Lock()
	r.listeners = append(r.listeners, fn)
	r.mu.Unlock()
}

// Current returns the status on display.
func (r *Reporter) Current() Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Show replaces the current message and severity. Success messages are
// cleared after SuccessTimeout unless another Show or Clear comes first.
func (r *Reporter) Show(message string, severity Severity) Status {
	r.mu.Lock()
	r.cancelPendingLocked()
	r.seq++
	st := Status{ID: r.seq, Message: message, Severity: severity}
	r.current = st

	if severity == Success {
		id := st.ID
		r.stop = r.scheduler.AfterFunc(SuccessTimeout, func() {
			r.expire(id)
		})
	}
	listeners := r.listeners
	r.mu.Unlock()

	notify(listeners, st)
	return st
}

// Clear resets the reporter to the empty, severity-less state.
func (r *Reporter) Clear() {
	r.mu.Lock()
	r.cancelPendingLocked()
	r.seq++
	r.current = Status{ID: r.seq}
	st := r.current
	listeners := r.listeners
	r.mu.Unlock()

	notify(listeners, st)
}

// expire clears the status only if it is still the instance id.
func (r *Reporter) expire(id uint64) {
	r.mu.Lock()
	if r.current.ID != id {
		r.mu.Unlock()
		return
	}
	r.stop = nil
	r.seq++
	r.current = Status{ID: r.seq}
	st := r.current
	listeners := r.listeners
	r.mu.Unlock()

	notify(listeners, st)
}

func (r *Reporter) cancelPendingLocked() {
	if r.stop != nil {
		r.stop()
		r.stop = nil
	}
}

func notify(listeners []func(Status), st Status) {
	for _, fn := range listeners {
		fn(st)
	}
}
