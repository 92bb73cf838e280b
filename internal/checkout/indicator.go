package checkout

import (
	"fmt"
	"io"
	"sync"
)

// Indicator is the in-flight loading display.
type Indicator interface {
	Show(msg string)
	Dismiss()
}

type nopIndicator struct{}

func (nopIndicator) Show(string) {}
func (nopIndicator) Dismiss()    {}

// WriterIndicator prints the loading message and a done marker.
type WriterIndicator struct {
	Out io.Writer

	mu      sync.Mutex
	showing bool
}

func (w *WriterIndicator) Show(msg string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.showing = true
	fmt.Fprintf(w.Out, "%s ", msg)
}

func (w *WriterIndicator) Dismiss() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.showing {
		return
	}
	w.showing = false
	fmt.Fprintln(w.Out, "selesai")
}
