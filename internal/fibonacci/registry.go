package fibonacci

import (
	"fmt"
	"sort"
	"sync"
)

// CalculatorFactory creates and caches Calculator instances by name. It
// decouples the layers that select an algorithm (config, HTTP API) from the
// concrete implementations.
type CalculatorFactory interface {
	// Get returns the cached Calculator for name, creating it on first use.
	Get(name string) (Calculator, error)

	// List returns the sorted names of all registered calculators.
	List() []string

	// GetAll returns every registered calculator, keyed by name.
	GetAll() map[string]Calculator
}

// DefaultFactory is the standard CalculatorFactory implementation: a
// thread-safe registry of constructors with instance caching.
type DefaultFactory struct {
	mu          sync.RWMutex
	creators    map[string]func() coreCalculator
	calculators map[string]Calculator
}

// NewDefaultFactory creates a factory with the standard algorithms
// registered:
//   - "matrix": MatrixExponentiation (O(log n), symmetric matrix powers)
//   - "iterative": IterativeAddition (O(n), reference)
func NewDefaultFactory() *DefaultFactory {
	f := &DefaultFactory{
		creators:    make(map[string]func() coreCalculator),
		calculators: make(map[string]Calculator),
	}
	f.register("matrix", func() coreCalculator { return &MatrixExponentiation{} })
	f.register("iterative", func() coreCalculator { return &IterativeAddition{} })
	return f
}

func (f *DefaultFactory) register(name string, creator func() coreCalculator) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creators[name] = creator
	delete(f.calculators, name)
}

// Get returns the Calculator registered under name, creating and caching it
// on first use.
func (f *DefaultFactory) Get(name string) (Calculator, error) {
	f.mu.RLock()
	if calc, ok := f.calculators[name]; ok {
		f.mu.RUnlock()
		return calc, nil
	}
	f.mu.RUnlock()

	f.mu.Lock()
	defer f.mu.Unlock()
	if calc, ok := f.calculators[name]; ok {
		return calc, nil
	}
	creator, ok := f.creators[name]
	if !ok {
		return nil, fmt.Errorf("unknown calculator: %s", name)
	}
	calc := NewCalculator(creator())
	f.calculators[name] = calc
	return calc, nil
}

// List returns the sorted names of all registered calculators.
func (f *DefaultFactory) List() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	names := make([]string, 0, len(f.creators))
	for name := range f.creators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetAll returns every registered calculator, keyed by name.
func (f *DefaultFactory) GetAll() map[string]Calculator {
	all := make(map[string]Calculator)
	for _, name := range f.List() {
		calc, err := f.Get(name)
		if err != nil {
			continue
		}
		all[name] = calc
	}
	return all
}
