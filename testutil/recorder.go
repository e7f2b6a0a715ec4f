// Package testutil provides a fake host for exercising array operations
// without an Object.
package testutil

import (
	"github.com/comalice/dataobj"
)

// Emission is one recorded Emit call.
type Emission struct {
	Name  string
	Event dataobj.ChangeEvent
}

// RecordingHost is a map-backed dataobj.Host that records every emission.
// It is not safe for concurrent use.
type RecordingHost struct {
	Data      map[string]any
	Emissions []Emission
	Sets      int

	// OnEmit, if set, is called after an emission is recorded.
	OnEmit func(name string, event dataobj.ChangeEvent)
}

// NewRecordingHost creates an empty RecordingHost.
func NewRecordingHost() *RecordingHost {
	return &RecordingHost{Data: make(map[string]any)}
}

// Get returns the value stored at key.
func (h *RecordingHost) Get(key string) (any, bool) {
	v, ok := h.Data[key]
	return v, ok
}

// Set stores value at key and counts the write.
func (h *RecordingHost) Set(key string, value any) {
	h.Sets++
	h.Data[key] = value
}

// Emit records the emission and calls OnEmit if set.
func (h *RecordingHost) Emit(name string, event dataobj.ChangeEvent) {
	h.Emissions = append(h.Emissions, Emission{Name: name, Event: event})
	if h.OnEmit != nil {
		h.OnEmit(name, event)
	}
}

// Names returns the recorded event names in emission order.
func (h *RecordingHost) Names() []string {
	names := make([]string, len(h.Emissions))
	for i, e := range h.Emissions {
		names[i] = e.Name
	}
	return names
}

// Array returns the []any stored at key, or nil if the key holds something else.
func (h *RecordingHost) Array(key string) []any {
	arr, _ := h.Data[key].([]any)
	return arr
}

// Reset drops recorded emissions and the Set counter, keeping data.
func (h *RecordingHost) Reset() {
	h.Emissions = nil
	h.Sets = 0
}
