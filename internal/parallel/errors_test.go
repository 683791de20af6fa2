package parallel

import (
	"errors"
	"sync"
	"testing"
)

func TestErrorCollector(t *testing.T) {
	t.Parallel()

	t.Run("empty collector has no error", func(t *testing.T) {
		t.Parallel()
		var ec ErrorCollector
		if ec.Err() != nil {
			t.Errorf("Err() = %v, want nil", ec.Err())
		}
	})

	t.Run("nil errors are ignored", func(t *testing.T) {
		t.Parallel()
		var ec ErrorCollector
		ec.SetError(nil)
		later := errors.New("later")
		ec.SetError(later)
		if ec.Err() != later {
			t.Errorf("Err() = %v, want %v", ec.Err(), later)
		}
	})

	t.Run("keeps the first error only", func(t *testing.T) {
		t.Parallel()
		var ec ErrorCollector
		first := errors.New("first")
		ec.SetError(first)
		ec.SetError(errors.New("second"))
		if ec.Err() != first {
			t.Errorf("Err() = %v, want %v", ec.Err(), first)
		}
	})

	t.Run("concurrent reporting records exactly one error", func(t *testing.T) {
		t.Parallel()
		var ec ErrorCollector
		var wg sync.WaitGroup
		for i := 0; i < 32; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				ec.SetError(errors.New("worker error"))
			}()
		}
		wg.Wait()
		if ec.Err() == nil {
			t.Errorf("no error recorded after concurrent SetError calls")
		}
	})
}
