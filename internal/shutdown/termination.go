package shutdown

import (
	"fmt"
	"os"
	"sync"

	cn "github.com/Rendinex/VTCRendinex/constant"
)

// Handler defines a function that handles a failed report
type Handler func(reason string)

// DefaultHandler prints the reason and exits with a failure status
func DefaultHandler(reason string) {
	fmt.Fprintln(os.Stderr, "LICENSE REPORT FAILED: "+reason)
	os.Exit(cn.ExitCodeFailure)
}

// Manager applies the exit-status policy to the outcome of a report. In the
// default, non-strict mode a failed report still ends the process normally.
type Manager struct {
	handler Handler
	strict  bool
	mu      sync.RWMutex
}

// New creates a new termination manager with the default handler
func New(strict bool) *Manager {
	return &Manager{
		handler: DefaultHandler,
		strict:  strict,
	}
}

// SetHandler updates the termination handler
func (m *Manager) SetHandler(handler Handler) {
	if handler == nil {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.handler = handler
}

// Strict reports whether failures terminate with a non-zero status
func (m *Manager) Strict() bool {
	return m.strict
}

// Finish terminates when err is non-nil and the manager is strict
func (m *Manager) Finish(err error) {
	if err == nil || !m.strict {
		return
	}

	m.Terminate(err.Error())
}

// Terminate invokes the termination handler
func (m *Manager) Terminate(reason string) {
	m.mu.RLock()
	handler := m.handler
	m.mu.RUnlock()

	handler(reason)
}
