// Package unitlock provides a mutex keyed by transport unit business key.
//
// Starting a transport order checks that no other order for the same unit is
// already in the Started state and then commits the transition. Two concurrent
// requests for the same unit could both observe a zero count before either
// commits, so the caller must hold the unit's lock for the whole
// check-and-commit sequence. The state machine itself has no cross-instance
// coordination.
package unitlock

import "sync"

// KeyedMutex serializes critical sections per string key. Locks for distinct
// keys are independent. Lock entries are reference counted and removed once
// the last holder releases them, so the map does not grow with the number of
// distinct units ever seen.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[string]*lockEntry
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// NewKeyedMutex creates an empty KeyedMutex.
func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{
		locks: make(map[string]*lockEntry),
	}
}

// Lock acquires the lock for key, blocking until it is available.
func (k *KeyedMutex) Lock(key string) {
	k.mu.Lock()
	entry, ok := k.locks[key]
	if !ok {
		entry = &lockEntry{}
		k.locks[key] = entry
	}
	entry.refs++
	k.mu.Unlock()

	entry.mu.Lock()
}

// Unlock releases the lock for key. Unlocking a key that is not held panics,
// matching sync.Mutex semantics.
func (k *KeyedMutex) Unlock(key string) {
	k.mu.Lock()
	entry, ok := k.locks[key]
	if !ok {
		k.mu.Unlock()
		panic("unitlock: unlock of unlocked key " + key)
	}
	entry.refs--
	if entry.refs == 0 {
		delete(k.locks, key)
	}
	k.mu.Unlock()

	entry.mu.Unlock()
}
