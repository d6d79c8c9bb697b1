package swap

import "sync"

// hashLocker serializes work per source transaction hash. Entries are
// reference counted and dropped once no caller holds or waits on them.
type hashLocker struct {
	mu    sync.Mutex
	locks map[string]*hashLock
}

type hashLock struct {
	mu   sync.Mutex
	refs int
}

func newHashLocker() *hashLocker {
	return &hashLocker{locks: make(map[string]*hashLock)}
}

// Lock blocks until key is free and returns the matching unlock func
func (l *hashLocker) Lock(key string) func() {
	l.mu.Lock()
	lk, ok := l.locks[key]
	if !ok {
		lk = &hashLock{}
		l.locks[key] = lk
	}
	lk.refs++
	l.mu.Unlock()

	lk.mu.Lock()

	return func() {
		lk.mu.Unlock()

		l.mu.Lock()
		lk.refs--
		if lk.refs == 0 {
			delete(l.locks, key)
		}
		l.mu.Unlock()
	}
}

func (l *hashLocker) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
