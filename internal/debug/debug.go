// Package debug provides the debug log sink shared by layout and the widget.
package debug

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	out io.Writer
	mu  sync.Mutex
)

func init() {
	if v := os.Getenv("HASHTAGS_DEBUG"); v != "" && v != "0" && v != "false" {
		out = os.Stderr
	}
}

// SetOutput sets the log destination. Pass nil to disable logging.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
}

// Enabled reports whether debug output is on.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return out != nil
}

// Logf writes a debug line if logging is enabled.
func Logf(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if out != nil {
		fmt.Fprintf(out, format+"\n", args...)
	}
}
