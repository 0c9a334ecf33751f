// Command librarian runs the library catalog on an in-memory journal.
package main

import (
	"os"
)

var (
	version = "dev/unknown"
)

func main() {
	rootCmd := newRootCmd()
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
