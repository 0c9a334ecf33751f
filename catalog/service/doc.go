// Package service implements the library's use cases on top of the repositories.
//
// Services validate requests, enforce the lending rules, keep books, members
// and loans consistent with each other (rolling back partial changes), and
// record domain events when a journal is configured.
package service
