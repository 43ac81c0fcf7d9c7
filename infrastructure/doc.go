// Package infrastructure contains concrete implementations of the core
// interfaces: loggers and caches. Everything here is swappable; the core
// only ever sees the interfaces package.
package infrastructure
