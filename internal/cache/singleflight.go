package cache

import (
	"fmt"
	"sync"
)

// singleFlight deduplicates concurrent loads for the same key.
type singleFlight struct {
	mu    sync.Mutex
	calls map[string]*call
}

type call struct {
	wg  sync.WaitGroup
	val any
	err error
}

// do runs fn once per key at a time; concurrent callers for the same key
// wait for the in-flight result. shared reports whether the result came
// from another caller's invocation.
func (g *singleFlight) do(key string, fn func() (any, error)) (val any, err error, shared bool) {
	g.mu.Lock()
	if g.calls == nil {
		g.calls = make(map[string]*call)
	}

	if c, ok := g.calls[key]; ok {
		g.mu.Unlock()
		c.wg.Wait()
		return c.val, c.err, true
	}

	c := &call{}
	c.wg.Add(1)
	g.calls[key] = c
	g.mu.Unlock()

	// Done and key removal run even when fn panics, so waiters are never
	// stranded and the key stays usable. The panic reaches every caller
	// as an error.
	defer func() {
		if r := recover(); r != nil {
			c.err = fmt.Errorf("load for key %q panicked: %v", key, r)
		}
		c.wg.Done()
		g.mu.Lock()
		delete(g.calls, key)
		g.mu.Unlock()
		val, err = c.val, c.err
	}()

	c.val, c.err = fn()
	return c.val, c.err, false
}
