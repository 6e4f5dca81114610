package lingo

import (
	"sync"

	"github.com/dmitrymomot/lingo/pkg/prefs"
)

var (
	defaultMu     sync.Mutex
	defaultEngine *Engine
)

// Default returns the process-wide engine, lazily constructing it on
// first access. The shared instance is the only one built with a
// preference store out of the box, so only it remembers the active
// locale across sessions. Engines created via New stay fully isolated,
// which keeps tests independent of the shared instance.
func Default() *Engine {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultEngine == nil {
		// Construction with default options cannot fail.
		defaultEngine, _ = New(WithPreferenceStore(prefs.NewMemory()))
	}

	return defaultEngine
}

// SetDefault replaces the process-wide engine, letting applications wire
// their own bus, store and namespaces into the shared instance. A nil
// engine resets it, so the next Default call constructs a fresh one.
func SetDefault(e *Engine) {
	defaultMu.Lock()
	defaultEngine = e
	defaultMu.Unlock()
}
