package dataobj

import (
	"fmt"
	"slices"
)

// ensureArray resolves key to the []any stored on h, storing an empty one
// first when the key holds nothing.
func ensureArray(h Host, key string) ([]any, error) {
	v, ok := h.Get(key)
	if !ok || v == nil {
		arr := []any{}
		h.Set(key, arr)
		return arr, nil
	}

	arr, ok := v.([]any)
	if !ok {
		logger.Debug("array guard rejected value", "key", key, "type", fmt.Sprintf("%T", v))
		return nil, &TypeMismatchError{Key: key, Value: v}
	}
	return arr, nil
}

// commit stores arr back on h and emits the change pair for it.
func commit(h Host, key string, old, arr []any, kind Kind, item any, index int) {
	h.Set(key, arr)

	event := ChangeEvent{
		Key:      key,
		OldValue: old,
		NewValue: slices.Clone(arr),
		Kind:     kind,
		Item:     item,
		Index:    index,
	}

	logger.Debug("array mutation", "key", key, "kind", kind, "index", index)

	h.Emit(EventChange, event)
	h.Emit(ChangeEventName(key), event)
}

// ArrayPush appends value to the array at key and always emits an add event.
func ArrayPush(h Host, key string, value any) error {
	arr, err := ensureArray(h, key)
	if err != nil {
		return err
	}

	old := slices.Clone(arr)
	arr = append(arr, value)
	commit(h, key, old, arr, KindAdd, value, len(arr)-1)
	return nil
}

// ArrayPushUnique appends value unless the array already holds it.
// match replaces the identity check when non-nil.
func ArrayPushUnique(h Host, key string, value any, match Predicate) error {
	arr, err := ensureArray(h, key)
	if err != nil {
		return err
	}

	if _, found := findIndex(arr, value, match); found {
		return nil
	}

	old := slices.Clone(arr)
	arr = append(arr, value)
	commit(h, key, old, arr, KindAdd, value, len(arr)-1)
	return nil
}

// ArrayInsertUnique inserts value at index unless the array already holds it.
//
// An index past the end appends. A negative index counts back from the end
// and is clamped to 0. The emitted event carries index exactly as given.
func ArrayInsertUnique(h Host, key string, index int, value any, match Predicate) error {
	arr, err := ensureArray(h, key)
	if err != nil {
		return err
	}

	if _, found := findIndex(arr, value, match); found {
		return nil
	}

	old := slices.Clone(arr)
	arr = slices.Insert(arr, spliceIndex(index, len(arr)), value)
	commit(h, key, old, arr, KindAdd, value, index)
	return nil
}

// ArrayRemove removes the first element matching value, if any.
func ArrayRemove(h Host, key string, value any, match Predicate) error {
	arr, err := ensureArray(h, key)
	if err != nil {
		return err
	}

	i, found := findIndex(arr, value, match)
	if !found {
		return nil
	}

	old := slices.Clone(arr)
	removed := arr[i]
	arr = slices.Delete(arr, i, i+1)
	commit(h, key, old, arr, KindRemove, removed, i)
	return nil
}

// ArrayPop removes the last element of the array at key and returns it.
// ok is false when the array was empty, in which case nothing is emitted.
func ArrayPop(h Host, key string) (item any, ok bool, err error) {
	arr, err := ensureArray(h, key)
	if err != nil {
		return nil, false, err
	}
	if len(arr) == 0 {
		return nil, false, nil
	}

	old := slices.Clone(arr)
	last := len(arr) - 1
	item = arr[last]
	arr = slices.Delete(arr, last, last+1)
	commit(h, key, old, arr, KindRemove, item, last)
	return item, true, nil
}

// IndexOf returns the position of value (or of the first element accepted by
// match) in the array at key, or NotFound. Like the mutators it initializes an
// absent key.
func IndexOf(h Host, key string, value any, match Predicate) (int, error) {
	arr, err := ensureArray(h, key)
	if err != nil {
		return NotFound, err
	}
	i, _ := findIndex(arr, value, match)
	return i, nil
}

// spliceIndex resolves a requested insertion index against length n.
func spliceIndex(index, n int) int {
	switch {
	case index < 0:
		return max(n+index, 0)
	case index > n:
		return n
	default:
		return index
	}
}
