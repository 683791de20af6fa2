// Package parallel provides small utilities for concurrent operations.
package parallel

import "sync"

// ErrorCollector records the first error reported by a set of goroutines.
// It is safe for concurrent use. The server shutdown path uses it to gather
// the outcome of the listener and shutdown goroutines without imposing an
// ordering on them.
type ErrorCollector struct {
	once sync.Once
	err  error
}

// SetError records err if no error has been recorded yet. Nil errors are
// ignored.
func (c *ErrorCollector) SetError(err error) {
	if err != nil {
		c.once.Do(func() {
			c.err = err
		})
	}
}

// Err returns the first recorded error, or nil. Call it after the reporting
// goroutines have finished.
func (c *ErrorCollector) Err() error {
	return c.err
}
