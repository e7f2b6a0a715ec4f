package dataobj

import (
	"slices"
	"sync"

	"github.com/google/uuid"
)

// Listener receives change events emitted on an Object.
type Listener func(event ChangeEvent)

type subscription struct {
	id       string
	listener Listener
}

// Object is a ready-made Host: a thread-safe key/value store plus a
// synchronous listener registry.
//
// The locks guard the map and the registry only. Array operations on the same
// key must still be serialized by the caller.
type Object struct {
	mu   sync.RWMutex
	data map[string]any

	lmu       sync.RWMutex
	listeners map[string][]subscription
}

// NewObject creates an empty object.
func NewObject() *Object {
	return &Object{
		data:      make(map[string]any),
		listeners: make(map[string][]subscription),
	}
}

// Get retrieves a value by key. ok is false if the key does not exist.
func (o *Object) Get(key string) (any, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	v, ok := o.data[key]
	return v, ok
}

// Set stores a value by key.
func (o *Object) Set(key string, value any) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.data[key] = value
}

// Delete removes a key from the object.
func (o *Object) Delete(key string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.data, key)
}

// Keys returns the stored keys in sorted order.
func (o *Object) Keys() []string {
	o.mu.RLock()
	defer o.mu.RUnlock()

	keys := make([]string, 0, len(o.data))
	for k := range o.data {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Snapshot returns a copy of all data for serialization.
// Tracked arrays are copied as well; other values are shared.
func (o *Object) Snapshot() map[string]any {
	o.mu.RLock()
	defer o.mu.RUnlock()

	snap := make(map[string]any, len(o.data))
	for k, v := range o.data {
		if arr, ok := v.([]any); ok {
			v = slices.Clone(arr)
		}
		snap[k] = v
	}
	return snap
}

// Restore replaces all data with a copy of snap. Listeners are kept.
// Tracked arrays are copied so later mutations do not write into snap.
func (o *Object) Restore(snap map[string]any) {
	data := make(map[string]any, len(snap))
	for k, v := range snap {
		if arr, ok := v.([]any); ok {
			v = slices.Clone(arr)
		}
		data[k] = v
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	o.data = data
}

// On registers l for events named name and returns its subscription ID.
func (o *Object) On(name string, l Listener) string {
	id := uuid.NewString()

	o.lmu.Lock()
	defer o.lmu.Unlock()
	o.listeners[name] = append(o.listeners[name], subscription{id: id, listener: l})
	return id
}

// Off removes the subscription with the given ID.
// It reports whether a subscription was removed.
func (o *Object) Off(id string) bool {
	o.lmu.Lock()
	defer o.lmu.Unlock()

	for name, subs := range o.listeners {
		i := slices.IndexFunc(subs, func(s subscription) bool { return s.id == id })
		if i < 0 {
			continue
		}
		subs = slices.Delete(slices.Clone(subs), i, i+1)
		if len(subs) == 0 {
			delete(o.listeners, name)
		} else {
			o.listeners[name] = subs
		}
		return true
	}
	return false
}

// Emit calls the listeners registered for name in registration order.
//
// Listeners run synchronously on the caller's goroutine with no lock held, so
// they may call back into the object. Subscriptions added or removed by a
// listener take effect from the next Emit. Listener panics are not recovered.
func (o *Object) Emit(name string, event ChangeEvent) {
	o.lmu.RLock()
	subs := o.listeners[name]
	o.lmu.RUnlock()

	for _, s := range subs {
		s.listener(event)
	}
}

// ArrayPush appends value to the array at key. See the package function.
func (o *Object) ArrayPush(key string, value any) error {
	return ArrayPush(o, key, value)
}

// ArrayPushUnique appends value unless present. See the package function.
func (o *Object) ArrayPushUnique(key string, value any, match Predicate) error {
	return ArrayPushUnique(o, key, value, match)
}

// ArrayInsertUnique inserts value at index unless present. See the package function.
func (o *Object) ArrayInsertUnique(key string, index int, value any, match Predicate) error {
	return ArrayInsertUnique(o, key, index, value, match)
}

// ArrayRemove removes the first match of value. See the package function.
func (o *Object) ArrayRemove(key string, value any, match Predicate) error {
	return ArrayRemove(o, key, value, match)
}

// ArrayPop removes and returns the last element. See the package function.
func (o *Object) ArrayPop(key string) (any, bool, error) {
	return ArrayPop(o, key)
}

// IndexOf locates value in the array at key. See the package function.
func (o *Object) IndexOf(key string, value any, match Predicate) (int, error) {
	return IndexOf(o, key, value, match)
}
