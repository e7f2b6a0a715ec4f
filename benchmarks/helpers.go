// Package benchmarks provides shared helpers for benchmark tests.
package benchmarks

import (
	"fmt"

	"github.com/comalice/dataobj"
)

// GenStrings returns n distinct string elements.
func GenStrings(n int) []any {
	arr := make([]any, n)
	for i := range arr {
		arr[i] = fmt.Sprintf("item-%d", i)
	}
	return arr
}

// GenRecords returns n map elements keyed by "id".
func GenRecords(n int) []any {
	arr := make([]any, n)
	for i := range arr {
		arr[i] = map[string]any{"id": i, "name": fmt.Sprintf("rec-%d", i)}
	}
	return arr
}

// ByID matches map elements whose "id" equals id.
func ByID(id int) dataobj.Predicate {
	return func(item any) bool {
		m, ok := item.(map[string]any)
		return ok && m["id"] == id
	}
}

// NewObject returns an Object holding arr at key with count listeners on
// every change.
func NewObject(key string, arr []any, count int) *dataobj.Object {
	obj := dataobj.NewObject()
	if arr != nil {
		obj.Set(key, arr)
	}
	for i := 0; i < count; i++ {
		obj.On(dataobj.EventChange, func(dataobj.ChangeEvent) {})
	}
	return obj
}
