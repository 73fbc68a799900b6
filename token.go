package winpriv

import "sync"

// Token is a reference-counted handle to a process's access token. The
// underlying OS handle is closed exactly once, when the last holder
// calls Close.
type Token struct {
	m   *Manager
	raw rawHandle
	pid int

	mu   sync.Mutex
	refs int
}

// OpenProcessToken opens the access token of a process by PID, pass 0
// as PID for self token. The returned token is private to the caller;
// it does not participate in the Enabler handle cache.
func (m *Manager) OpenProcessToken(pid int) (*Token, error) {
	raw, err := m.api.openProcessToken(pid)
	if err != nil {
		return nil, err
	}
	return &Token{m: m, raw: raw, pid: pid, refs: 1}, nil
}

func (t *Token) acquire() {
	t.mu.Lock()
	t.refs++
	t.mu.Unlock()
}

// Close releases one reference. The OS handle goes away when the count
// reaches zero; closing past zero reports ErrTokenClosed.
func (t *Token) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.refs == 0 {
		return ErrTokenClosed
	}
	t.refs--
	if t.refs > 0 {
		return nil
	}
	return t.m.api.closeHandle(t.raw)
}
