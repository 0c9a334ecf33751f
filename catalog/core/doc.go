// Package core contains the catalog's domain: books, members and loans,
// their validation rules, orderings and printers, the lending policy,
// the domain events and the pure lending decision.
//
// Nothing in this package performs I/O. Storage lives in package repository,
// orchestration in package service and event plumbing in package shell.
package core
