package lock

import (
	"sync"

	"github.com/google/uuid"
)

// IDLocker serializes work per entity id. Locks for distinct ids never
// contend; mutexes are created lazily and kept for the process lifetime.
type IDLocker struct {
	mapMutex sync.Mutex
	idMap    map[uuid.UUID]*sync.Mutex
}

func NewIDLocker() *IDLocker {
	return &IDLocker{
		idMap: make(map[uuid.UUID]*sync.Mutex),
	}
}

func (l *IDLocker) Acquire(id uuid.UUID) {
	l.mapMutex.Lock()
	idMutex, ok := l.idMap[id]
	if !ok {
		idMutex = &sync.Mutex{}
		l.idMap[id] = idMutex
	}
	l.mapMutex.Unlock()
	idMutex.Lock()
}

func (l *IDLocker) Release(id uuid.UUID) {
	l.mapMutex.Lock()
	idMutex, ok := l.idMap[id]
	l.mapMutex.Unlock()
	if !ok {
		return
	}
	idMutex.Unlock()
}

func (l *IDLocker) WithLock(id uuid.UUID, f func() error) error {
	l.Acquire(id)
	defer l.Release(id)
	return f()
}
