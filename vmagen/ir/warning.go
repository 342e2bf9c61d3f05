package ir

import (
	"fmt"
	"sync"
)

// Warning codes reported during generation. Warnings never fail a run; each
// one names a single item that was skipped or overridden.
const (
	WarnUnconfiguredEnum = "unconfigured-enum"
	WarnDuplicateConfig  = "duplicate-config"
	WarnPrefixMismatch   = "prefix-mismatch"
	WarnMissingEnumName  = "missing-enum-name"
)

// Warning is a non-fatal diagnostic surfaced to the build log.
type Warning struct {
	Code    string
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Code, w.Message)
}

// Warnings collects diagnostics. Scanner callbacks may run without an
// ordering or threading guarantee, so appends are locked.
type Warnings struct {
	mu   sync.Mutex
	list []Warning
}

// Addf records a warning with a formatted message.
func (w *Warnings) Addf(code, format string, args ...any) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.list = append(w.list, Warning{Code: code, Message: fmt.Sprintf(format, args...)})
}

// All returns the recorded warnings in order.
func (w *Warnings) All() []Warning {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]Warning, len(w.list))
	copy(out, w.list)
	return out
}
