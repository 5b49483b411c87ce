// Package main is the entrypoint of subgrab.
package main

import (
	"context"
	"os"
	"time"

	"subgrab/internal/cfg"
)

// main is the main entrypoint of the program (duh!).
func main() {
	startTime := time.Now()

	os.Exit(cfg.Execute(context.Background(), cfg.Program{StartTime: startTime}, os.Args[1:]))
}
