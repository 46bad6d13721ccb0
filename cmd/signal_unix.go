//go:build !windows

package cmd

import (
	"os"
	"syscall"
)

// shutdownSignals stop a running simulation gracefully.
// On Unix systems, this includes both SIGINT and SIGTERM.
var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}
