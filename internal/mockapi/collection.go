package mockapi

import (
	"errors"
	"sync"
)

var (
	errNotFound = errors.New("mockapi: not found")
	errConflict = errors.New("mockapi: conflict")
)

// Collection is an ordered, concurrency-safe in-memory table keyed by id.
type Collection[T any] struct {
	mu    sync.RWMutex
	order []string
	items map[string]T
	idOf  func(T) string
}

func NewCollection[T any](idOf func(T) string) *Collection[T] {
	return &Collection[T]{items: make(map[string]T), idOf: idOf}
}

// All returns items in insertion order.
func (c *Collection[T]) All() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.items[id])
	}
	return out
}

func (c *Collection[T]) Get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	item, ok := c.items[id]
	return item, ok
}

func (c *Collection[T]) Find(match func(T) bool) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, id := range c.order {
		if item := c.items[id]; match(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Insert adds item unless conflicts reports a clash with a stored item.
func (c *Collection[T]) Insert(item T, conflicts func(a, b T) bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.idOf(item)
	if _, ok := c.items[id]; ok {
		return errConflict
	}
	if c.clashes(id, item, conflicts) {
		return errConflict
	}
	c.order = append(c.order, id)
	c.items[id] = item
	return nil
}

// Update applies fn to a copy of the stored item and keeps it when fn succeeds
// and the result clashes with no other item.
func (c *Collection[T]) Update(id string, fn func(*T) error, conflicts func(a, b T) bool) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	item, ok := c.items[id]
	if !ok {
		return zero, errNotFound
	}
	if err := fn(&item); err != nil {
		return zero, err
	}
	if c.clashes(id, item, conflicts) {
		return zero, errConflict
	}
	c.items[id] = item
	return item, nil
}

func (c *Collection[T]) Delete(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.items[id]; !ok {
		return false
	}
	delete(c.items, id)
	for i, v := range c.order {
		if v == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *Collection[T]) clashes(id string, item T, conflicts func(a, b T) bool) bool {
	if conflicts == nil {
		return false
	}
	for _, other := range c.order {
		if other != id && conflicts(item, c.items[other]) {
			return true
		}
	}
	return false
}
