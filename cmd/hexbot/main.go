package main

import (
	"github.com/tebeka/atexit"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// Fatal runs the registered handlers, which release the process handle.
		atexit.Fatal(err)
	}
	atexit.Exit(0)
}
