// Package cache provides a small LRU cache for resolved values.
//
// The engine uses it to keep parsed dimension expressions, keyed by their
// normalized text. Capacity is counted in entries.
package cache
