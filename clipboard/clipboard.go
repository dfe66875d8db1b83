// Package clipboard holds the process-wide text clipboard shared by
// edit controls. The dispatch loop is single threaded, but access is
// serialized anyway so a threaded poller cannot corrupt it.
package clipboard

import "sync"

// Clipboard is a mutex-guarded text store
type Clipboard struct {
	mu   sync.Mutex
	text string
}

// New creates an empty clipboard
func New() *Clipboard {
	return &Clipboard{}
}

// Set replaces the clipboard contents
func (c *Clipboard) Set(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.text = text
}

// Get returns the clipboard contents
func (c *Clipboard) Get() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text
}

// Clear empties the clipboard
func (c *Clipboard) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.text = ""
}

// HasContent reports whether any text is stored
func (c *Clipboard) HasContent() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text != ""
}

var defaultClipboard = New()

// Default returns the process-wide clipboard
func Default() *Clipboard {
	return defaultClipboard
}
