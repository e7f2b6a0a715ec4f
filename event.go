package dataobj

// Kind classifies a completed array mutation.
type Kind string

const (
	KindAdd    Kind = "array.add"
	KindRemove Kind = "array.remove"
)

// EventChange is emitted for every mutation regardless of key.
const EventChange = "change"

// ChangeEventName returns the key-scoped event name, "change:<key>".
func ChangeEventName(key string) string {
	return EventChange + ":" + key
}

// ChangeEvent describes one completed mutation of the array stored at Key.
//
// OldValue holds the elements before the mutation and NewValue the elements
// after it. Both are copies taken when the event is built, so mutating them
// does not touch the host. Elements themselves are shared (shallow copy).
//
// Events are values and should be treated as read-only by listeners.
type ChangeEvent struct {
	Key      string `json:"key" yaml:"key"`
	OldValue []any  `json:"oldValue" yaml:"oldValue"`
	NewValue []any  `json:"newValue" yaml:"newValue"`
	Kind     Kind   `json:"kind" yaml:"kind"`
	Item     any    `json:"item" yaml:"item"`
	Index    int    `json:"index" yaml:"index"`
}
