// Package main provides stripedemo, a small driver for striped.Counter.
//
// It spawns a set of workers, each incrementing its own lane, and a reporter
// that logs the running sum until the workers are done.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
