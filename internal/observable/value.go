// Package observable holds a single value that many readers can watch while
// exactly one owner writes it.
package observable

import "sync"

// Observable is the read-only view handed to readers of a Value.
type Observable[T any] interface {
	Get() (T, bool)
	Subscribe() (<-chan T, func())
}

type Value[T any] struct {
	mu     sync.RWMutex
	value  T
	isSet  bool
	nextID int
	subs   map[int]chan T
}

func NewValue[T any]() *Value[T] {
	return &Value[T]{
		subs: make(map[int]chan T),
	}
}

// Get returns the current value and false while it has never been set.
func (v *Value[T]) Get() (T, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return v.value, v.isSet
}

func (v *Value[T]) Set(value T) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.value = value
	v.isSet = true

	for _, ch := range v.subs {
		offerLatest(ch, value)
	}
}

// Subscribe returns a channel that always holds the latest value. A value set
// before the call is delivered immediately. The returned func unsubscribes and
// closes the channel.
func (v *Value[T]) Subscribe() (<-chan T, func()) {
	v.mu.Lock()
	defer v.mu.Unlock()

	id := v.nextID
	v.nextID++

	ch := make(chan T, 1)
	if v.isSet {
		ch <- v.value
	}
	v.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			v.mu.Lock()
			defer v.mu.Unlock()

			delete(v.subs, id)
			close(ch)
		})
	}
}

// offerLatest replaces a pending unread value so writers never block.
// Callers hold the write lock, so ch has no other sender.
func offerLatest[T any](ch chan T, value T) {
	select {
	case <-ch:
	default:
	}
	ch <- value
}
