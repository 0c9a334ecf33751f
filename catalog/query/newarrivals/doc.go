// Package newarrivals implements the New Arrivals query: the books added to
// the catalog within a time window and still in it, newest first.
package newarrivals
