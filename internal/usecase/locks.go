package usecase

import "sync"

type keyedLock struct {
	mu   sync.Mutex
	refs int
}

// gameLocks serialises work per game id. Entries are dropped once nobody holds or waits on them.
type gameLocks struct {
	mu    sync.Mutex
	locks map[string]*keyedLock
}

func newGameLocks() *gameLocks {
	return &gameLocks{
		locks: make(map[string]*keyedLock),
	}
}

// Lock blocks until id is free and returns the matching unlock func.
func (that *gameLocks) Lock(id string) func() {
	that.mu.Lock()
	lock, ok := that.locks[id]
	if !ok {
		lock = &keyedLock{}
		that.locks[id] = lock
	}
	lock.refs++
	that.mu.Unlock()

	lock.mu.Lock()

	return func() {
		lock.mu.Unlock()

		that.mu.Lock()
		lock.refs--
		if lock.refs == 0 {
			delete(that.locks, id)
		}
		that.mu.Unlock()
	}
}

func (that *gameLocks) size() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return len(that.locks)
}
