// Command booktrackerctl administers a Book Tracker database: schema
// migrations, the shared public catalog and user accounts.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
