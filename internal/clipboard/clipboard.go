// Package clipboard provides cross-platform clipboard support.
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// Writer copies text somewhere the user can paste it from.
type Writer interface {
	Write(text string) error
}

// System writes to the OS clipboard (pbcopy, xclip/xsel/wl-copy, or the
// Windows clipboard API).
type System struct{}

// Write copies text to the system clipboard.
func (System) Write(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("writing clipboard: %w", err)
	}
	return nil
}

// Available checks if clipboard functionality is available.
func Available() bool {
	return !clipboard.Unsupported
}

// Memory keeps the last written text in process. It backs headless sessions
// where no system clipboard exists.
type Memory struct {
	text string
}

// Write stores text.
func (m *Memory) Write(text string) error {
	m.text = text
	return nil
}

// Text returns the last written text.
func (m *Memory) Text() string {
	return m.text
}

// Default returns the system clipboard when one is available and an
// in-memory clipboard otherwise.
func Default() Writer {
	if Available() {
		return System{}
	}
	return &Memory{}
}
