package main

import (
	"context"
	"fmt"
	"os"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain())
}

func realMain() int {
	args := os.Args

	initLogger(logLevelFromArgs(args))

	app := buildApp()
	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	return 0
}

// logLevelFromArgs scans for --log-level ahead of flag parsing so the logger
// is configured before the command action runs.
func logLevelFromArgs(args []string) string {
	for i, a := range args {
		if a == "--log-level" && i+1 < len(args) {
			return args[i+1]
		}
	}
	if level := os.Getenv("MATCACHE_LOG"); level != "" {
		return level
	}
	return "info"
}
