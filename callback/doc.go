// Package callback provides a dispatcher that invokes registered functions
// with an event value.
//
// Plain functions are held strongly. Methods registered through
// RegisterMethod hold their owner only through a weak pointer, so
// subscribing an object never keeps it alive: once the owner is garbage
// collected its registration is dropped on the next Call.
//
//	changed := callback.New[string]()
//	callback.RegisterMethod(changed, view, (*View).Refresh)
//	changed.Call("title")
package callback
