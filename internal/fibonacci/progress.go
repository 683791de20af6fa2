package fibonacci

import "sync"

// ProgressUpdate carries a single progress notification from a running
// calculation to whoever is displaying or recording it.
type ProgressUpdate struct {
	// CalculatorIndex identifies which calculator instance the update
	// belongs to when several run concurrently.
	CalculatorIndex int
	// Value is the normalized progress in [0.0, 1.0].
	Value float64
}

// ProgressReporter is the callback the core algorithms use to report
// progress. Implementations must be cheap and non-blocking: the reporter is
// invoked from inside the calculation loop.
type ProgressReporter func(progress float64)

// ProgressObserver receives progress updates for a calculator instance.
type ProgressObserver interface {
	Update(calcIndex int, progress float64)
}

// ProgressSubject fans a calculation's progress out to any number of
// registered observers (UI channel, logging, metrics). It is safe for
// concurrent use.
type ProgressSubject struct {
	mu        sync.RWMutex
	observers []ProgressObserver
}

// NewProgressSubject creates an empty subject.
func NewProgressSubject() *ProgressSubject {
	return &ProgressSubject{}
}

// Register adds an observer. Nil observers are ignored.
func (s *ProgressSubject) Register(o ProgressObserver) {
	if o == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, o)
}

// Notify forwards a progress value to every registered observer.
func (s *ProgressSubject) Notify(calcIndex int, progress float64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.observers {
		o.Update(calcIndex, progress)
	}
}

// AsProgressReporter adapts the subject to the ProgressReporter callback
// used by the core algorithms, binding it to one calculator index.
func (s *ProgressSubject) AsProgressReporter(calcIndex int) ProgressReporter {
	return func(progress float64) {
		s.Notify(calcIndex, progress)
	}
}
