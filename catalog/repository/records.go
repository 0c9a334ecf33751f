package repository

import (
	"github.com/AntonStoeckl/library-catalog-go/container"
)

func findOne[T any](records *container.Container[T], predicate func(*T) bool, notFound error) (T, error) {
	node := records.FindIf(predicate)
	if node == nil {
		var zero T
		return zero, notFound
	}

	return *node.Record(), nil
}

func countWhere[T any](records *container.Container[T], predicate func(*T) bool) int {
	n := 0
	for record := range records.All() {
		if predicate(record) {
			n++
		}
	}

	return n
}
