// Package helper provides test doubles shared by the tests of the catalog packages.
package helper
