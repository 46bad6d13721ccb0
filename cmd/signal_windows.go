//go:build windows

package cmd

import (
	"os"
)

// shutdownSignals stop a running simulation gracefully.
// On Windows, only os.Interrupt (Ctrl+C) is supported; SIGTERM does not exist.
var shutdownSignals = []os.Signal{os.Interrupt}
