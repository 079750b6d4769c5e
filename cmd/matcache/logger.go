package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/apex/log"
)

// initLogger sets up Apex with a custom handler and the requested level.
func initLogger(level string) {
	if level == "" {
		level = "info"
	}
	log.SetHandler(&lineHandler{})
	log.SetLevelFromString(strings.ToLower(level))
}

// lineHandler formats log messages and writes to stdout
type lineHandler struct{}

// HandleLog implements the log.Handler interface
func (h *lineHandler) HandleLog(e *log.Entry) error {
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	level := strings.ToUpper(e.Level.String())
	fmt.Fprintf(os.Stdout, "%s %.1s %s\n", timestamp, level, e.Message)
	return nil
}
