package lock

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestWithLockSerializesSameID(t *testing.T) {
	locker := NewIDLocker()
	id := uuid.New()

	const workers = 20
	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = locker.WithLock(id, func() error {
				// unsynchronized increment; only the lock protects it
				counter++
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, workers, counter)
}

func TestDistinctIDsDoNotBlock(t *testing.T) {
	locker := NewIDLocker()
	a, b := uuid.New(), uuid.New()

	locker.Acquire(a)
	done := make(chan struct{})
	go func() {
		locker.Acquire(b)
		locker.Release(b)
		close(done)
	}()
	<-done // would deadlock if b contended with a
	locker.Release(a)
}

func TestWithLockPropagatesError(t *testing.T) {
	locker := NewIDLocker()
	id := uuid.New()

	want := assert.AnError
	got := locker.WithLock(id, func() error { return want })
	assert.ErrorIs(t, got, want)

	// the lock is free again after an error
	locker.Acquire(id)
	locker.Release(id)
}
