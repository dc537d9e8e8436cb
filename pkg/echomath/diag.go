package echomath

import (
	"io"
	"os"
	"sync"
)

var diag = struct {
	mu  sync.Mutex
	out io.Writer
}{out: os.Stderr}

// SetOutput sets the destination for Dump output. It returns the previous
// writer so callers can restore it.
func SetOutput(w io.Writer) io.Writer {
	diag.mu.Lock()
	defer diag.mu.Unlock()
	prev := diag.out
	diag.out = w
	return prev
}

// printLine writes s plus a newline in a single Write. Write errors are
// dropped; diagnostics are best-effort.
func printLine(s string) {
	diag.mu.Lock()
	defer diag.mu.Unlock()
	if diag.out == nil {
		return
	}
	_, _ = io.WriteString(diag.out, s+"\n")
}
