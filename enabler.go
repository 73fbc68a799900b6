package winpriv

import "fmt"

// EnableOutcome reports what EnablePrivilege did.
type EnableOutcome int

const (
	// EnableNone means no token state changed: the privilege was
	// already enabled, removed, or owned by another live Enabler.
	EnableNone EnableOutcome = iota
	// EnableModified means the privilege went from disabled to enabled
	// and this Enabler now owns disabling it again.
	EnableModified
)

// Enabler enables privileges for the duration of an operation and puts
// back exactly what it changed, exactly once, on Close. Enablers on the
// same Manager share one token per target process and never fight over
// a privilege: whichever instance flipped it owns flipping it back.
//
// Callers sharing a token should close Enablers in the reverse order
// they were acquired; out-of-order closing is well defined but makes
// the restoration order the callers' problem.
type Enabler struct {
	m   *Manager
	tok *Token

	// opened marks that this instance opened the token and registered
	// it in the handle cache; only the opener evicts the cache entry.
	opened bool
	// releaseRef marks that this instance holds a token reference of
	// its own to drop on Close. False for caller-supplied tokens.
	releaseRef bool

	closed bool // guarded by m.ownerMu
}

// NewEnabler returns an Enabler bound to the token of the given
// process, pass 0 as PID for self token. Enablers targeting the same
// process reuse one open token; the lookup-or-open is done under the
// handle-cache lock so duplicate handles never proliferate. A failure
// to open the token leaves no state behind.
func (m *Manager) NewEnabler(pid int) (*Enabler, error) {
	m.handleMu.Lock()
	defer m.handleMu.Unlock()

	if t, ok := m.handles[pid]; ok {
		t.acquire()
		return &Enabler{m: m, tok: t, releaseRef: true}, nil
	}

	t, err := m.OpenProcessToken(pid)
	if err != nil {
		return nil, err
	}
	m.handles[pid] = t
	return &Enabler{m: m, tok: t, opened: true, releaseRef: true}, nil
}

// NewEnablerForToken returns an Enabler operating on a caller-supplied
// token. The caller keeps ownership of the token and must close it
// after the Enabler.
func (m *Manager) NewEnablerForToken(t *Token) *Enabler {
	return &Enabler{m: m, tok: t}
}

// EnablePrivilege enables p if no other live Enabler owns it, its
// current state is disabled, and the adjustment actually changed state.
// Any unmet condition is a silent no-op returning EnableNone, so nested
// or repeated enabling from unrelated code paths never double-toggles.
// Only genuine OS call failures come back as errors.
func (e *Enabler) EnablePrivilege(p Privilege) (EnableOutcome, error) {
	// The whole owned/disabled/adjust/record sequence must be one
	// atomic unit under the ledger lock, or two racing callers could
	// both claim p.
	e.m.ownerMu.Lock()
	defer e.m.ownerMu.Unlock()

	if e.closed {
		return EnableNone, ErrEnablerClosed
	}
	if _, owned := e.m.owners[p]; owned {
		return EnableNone, nil
	}

	col, err := e.tok.Privileges()
	if err != nil {
		return EnableNone, err
	}
	attr, err := e.m.AttributesOf(col, p)
	if err != nil {
		return EnableNone, err
	}
	if attr.State() != StateDisabled {
		return EnableNone, nil
	}

	n, err := e.m.adjust(e.tok, p, PrivilegeEnabled)
	if err != nil {
		return EnableNone, err
	}
	if n == PrivilegeUnchanged {
		return EnableNone, nil
	}

	e.m.owners[p] = e
	logger.Debug(fmt.Sprintf("enabled %s on pid %d", p, e.tok.pid))
	return EnableModified, nil
}

// EnablePrivileges enables each of the given privileges in order,
// skipping those already enabled or owned elsewhere. It stops at the
// first OS failure; privileges enabled before the failure stay owned
// and are still restored on Close.
func (e *Enabler) EnablePrivileges(privs ...Privilege) error {
	for _, p := range privs {
		if _, err := e.EnablePrivilege(p); err != nil {
			return err
		}
	}
	return nil
}

// Close disables every privilege this Enabler enabled, drops the
// ownership ledger entries, and releases its token reference. Only the
// first Close does anything; closing twice is a no-op. Each disable
// attempt is independent: a failure is logged and does not stop the
// remaining privileges from being restored, and the first such error is
// returned once all attempts are done.
func (e *Enabler) Close() error {
	e.m.ownerMu.Lock()
	if e.closed {
		e.m.ownerMu.Unlock()
		return nil
	}
	e.closed = true

	var firstErr error
	for p, owner := range e.m.owners {
		if owner != e {
			continue
		}
		delete(e.m.owners, p)
		if _, err := e.m.adjust(e.tok, p, PrivilegeDisabled); err != nil {
			logger.Error(fmt.Sprintf("failed to restore %s on pid %d: %v", p, e.tok.pid, err))
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	e.m.ownerMu.Unlock()

	if e.opened {
		e.m.handleMu.Lock()
		if e.m.handles[e.tok.pid] == e.tok {
			delete(e.m.handles, e.tok.pid)
		}
		e.m.handleMu.Unlock()
	}
	if e.releaseRef {
		if err := e.tok.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
