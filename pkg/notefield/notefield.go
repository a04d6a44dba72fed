// Package notefield implements the append-only editing protocol for
// clinical note fields (complaints, clinical comments, action plans).
// Text loaded from storage is frozen; a session may only append after it.
package notefield

import (
	"strings"
	"sync"
	"time"
)

// EditOutcome reports how an edit attempt was resolved.
type EditOutcome int

const (
	// Accepted means the displayed value preserved the frozen prefix and
	// the suffix was updated.
	Accepted EditOutcome = iota
	// RejectedEditToFrozenRegion means the edit touched frozen history;
	// session state is unchanged and a transient warning is raised.
	RejectedEditToFrozenRegion
)

// WarningDuration is how long a rejection warning stays visible before
// clearing itself.
const WarningDuration = 2 * time.Second

// Field tracks one note field through an editing session. The rejection
// warning clears on a timer goroutine, so all state is mutex-guarded.
type Field struct {
	mu             sync.Mutex
	frozenPrefix   string
	editableSuffix string
	warning        bool
	warnTimer      *time.Timer
	warnAfter      time.Duration
}

// New creates a Field whose frozen prefix is the stored note text.
// An empty prefix leaves the whole field editable.
func New(frozenPrefix string) *Field {
	return &Field{frozenPrefix: frozenPrefix, warnAfter: WarningDuration}
}

// NewWithWarningDuration is New with a custom warning lifetime.
func NewWithWarningDuration(frozenPrefix string, d time.Duration) *Field {
	return &Field{frozenPrefix: frozenPrefix, warnAfter: d}
}

// Extends reports whether candidate keeps the frozen text intact, i.e. it is
// the frozen text itself or the frozen text with more appended. This is the
// single definition of a legal edit, shared by the interactive field and the
// server-side check on stored notes.
func Extends(frozen, candidate string) bool {
	return strings.HasPrefix(candidate, frozen)
}

// ApplyEdit reconciles the full displayed text of the control against the
// frozen prefix. If the prefix survived, the remainder becomes the new
// editable suffix. Otherwise the edit is rejected, the suffix keeps its
// previous value (the control snaps back on next render), and the warning
// timer is re-armed.
func (f *Field) ApplyEdit(displayed string) EditOutcome {
	f.mu.Lock()
	defer f.mu.Unlock()

	if Extends(f.frozenPrefix, displayed) {
		f.editableSuffix = displayed[len(f.frozenPrefix):]
		return Accepted
	}

	f.warning = true
	if f.warnTimer != nil {
		f.warnTimer.Stop()
	}
	f.warnTimer = time.AfterFunc(f.warnAfter, func() {
		f.mu.Lock()
		f.warning = false
		f.mu.Unlock()
	})
	return RejectedEditToFrozenRegion
}

// Value returns the text to display: frozen prefix plus editable suffix.
func (f *Field) Value() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.frozenPrefix + f.editableSuffix
}

// FrozenPrefix returns the immutable portion of the field.
func (f *Field) FrozenPrefix() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.frozenPrefix
}

// Suffix returns the session's editable portion.
func (f *Field) Suffix() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.editableSuffix
}

// WarningActive reports whether a rejection warning is currently shown.
func (f *Field) WarningActive() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.warning
}

// Commit returns the final value and promotes it to the frozen prefix for
// the next session, clearing the suffix.
func (f *Field) Commit() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	final := f.frozenPrefix + f.editableSuffix
	f.frozenPrefix = final
	f.editableSuffix = ""
	return final
}

// Close cancels any pending warning timer. Call on component teardown.
func (f *Field) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.warnTimer != nil {
		f.warnTimer.Stop()
		f.warnTimer = nil
	}
	f.warning = false
}
