package resilience

import "sync"

type singleFlightCall struct {
	wg  sync.WaitGroup
	val any
	err error
}

// SingleFlight collapses concurrent calls sharing one key into a single
// execution, handing every waiter the same result.
type SingleFlight struct {
	mu    sync.Mutex
	calls map[string]*singleFlightCall
}

// Do runs fn for key unless another call with the same key is already in
// flight, in which case it waits for that call and returns its result.
// shared reports whether the result came from another caller's execution.
func (s *SingleFlight) Do(key string, fn func() (any, error)) (val any, err error, shared bool) {
	s.mu.Lock()
	if s.calls == nil {
		s.calls = make(map[string]*singleFlightCall)
	}
	if existing, ok := s.calls[key]; ok {
		s.mu.Unlock()
		existing.wg.Wait()
		return existing.val, existing.err, true
	}

	call := &singleFlightCall{}
	call.wg.Add(1)
	s.calls[key] = call
	s.mu.Unlock()

	call.val, call.err = fn()
	call.wg.Done()

	s.mu.Lock()
	delete(s.calls, key)
	s.mu.Unlock()

	return call.val, call.err, false
}
