// Package dataobj adds array-valued, change-tracked properties to a key/value
// host.
//
// A host is anything implementing [Host]: a [Store] with Get/Set plus an
// [Emitter]. The package functions [ArrayPush], [ArrayPushUnique],
// [ArrayInsertUnique], [ArrayRemove] and [ArrayPop] treat the value at a key as
// a []any, mutate it and emit a [ChangeEvent] describing the delta. [Object]
// is a ready-made host exposing the same operations as methods.
//
// Guard:
//   - An absent key (or one holding an untyped nil) is initialized to an empty
//     []any and written back before the mutator proceeds, even when the
//     mutator ends up doing nothing.
//   - Any other non-[]any value fails with a [*TypeMismatchError] before
//     anything is mutated or emitted.
//
// Events:
//   - Every completed mutation emits [EventChange] first and then
//     "change:<key>" (see [ChangeEventName]) with the same payload.
//   - OldValue and NewValue are independent copies. Listeners may keep them.
//   - No-op calls (value already present, value not found, empty pop) emit
//     nothing.
//
// Concurrency: mutators run synchronously and are not atomic. Callers must
// serialize writers to the same key. Listeners run on the mutating goroutine
// before the mutator returns; a listener that mutates the same key again sees
// and changes the live array, and the outer call's event has already been
// built by then.
package dataobj
