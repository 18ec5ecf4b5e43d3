// Package registry implements the prototype registry used to reconstruct a
// concrete entity type from a stored name alone. Each concrete type in a
// polymorphic entity family registers one prototype instance under its type
// name; Create then clones that prototype to produce a new, blank instance
// of the right concrete type without the caller knowing any types.
//
// Registration is first-wins: once a name is taken later registrations
// never replace it, and the rejected prototype is disposed of immediately
// so it cannot leak. The registry owns every prototype it accepted and
// disposes of all of them when it is closed; no prototype may be used after
// Close.
//
// Thread Safety:
//
// The registry is backed by a concurrent map and all methods are safe for
// concurrent use, except that Close must not race with Add or Create.
package registry
