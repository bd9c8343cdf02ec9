package main

import (
	"os"
)

// @title FX Rates API
// @version 1.0
// @description Read-only currency exchange rates served from a static rate table.

// @host localhost:8020
// @BasePath /
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
