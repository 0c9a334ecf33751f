// Package repository keeps books, members and loans in ordered containers.
//
// Every repository owns one container kept sorted by its key through sorted
// inserts. Queries returning several records hand out a new container which
// the caller owns; single-record lookups return a copy of the record.
// Repositories are not safe for concurrent use.
package repository
