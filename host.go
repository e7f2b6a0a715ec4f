package dataobj

// Store is the key/value capability a host provides.
// Get reports ok == false for keys that hold no value.
type Store interface {
	Get(key string) (any, bool)
	Set(key string, value any)
}

// Emitter is the event capability a host provides.
// Delivery order, listener registration and listener failures are owned by the
// implementation.
type Emitter interface {
	Emit(name string, event ChangeEvent)
}

// Host is the receiver every array operation works against.
type Host interface {
	Store
	Emitter
}
