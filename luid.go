package winpriv

import "unicode/utf16"

// LUID is a locally unique identifier, the OS-local handle for a
// privilege. It is meaningless outside the process that looked it up,
// but stable for a privilege name within a boot, which is what makes
// process-lifetime caching safe.
type LUID struct {
	LowPart  uint32
	HighPart int32
}

// ResolveLUID maps a privilege to its LUID, memoizing the answer for
// the life of the Manager. Cache entries are never mutated or removed.
func (m *Manager) ResolveLUID(p Privilege) (LUID, error) {
	m.luidMu.RLock()
	luid, ok := m.luids[p]
	m.luidMu.RUnlock()
	if ok {
		return luid, nil
	}

	// Holding the write lock across the lookup keeps a name from being
	// resolved twice under racing misses.
	m.luidMu.Lock()
	defer m.luidMu.Unlock()
	if luid, ok := m.luids[p]; ok {
		return luid, nil
	}
	luid, err := m.api.lookupPrivilegeValue(string(p))
	if err != nil {
		return LUID{}, err
	}
	m.luids[p] = luid
	return luid, nil
}

// lookupName resolves a LUID back to the privilege name the OS knows it
// by. Names are variable length, so this takes the probe-then-fill path;
// the probe reporting a too-small buffer is the expected outcome.
func (m *Manager) lookupName(luid LUID) (string, error) {
	var buf []uint16
	n, err := queryVariableLengthBuffer(
		func(retLen *uint32) error {
			return m.api.lookupPrivilegeName(luid, nil, retLen)
		},
		func(size uint32, retLen *uint32) error {
			buf = make([]uint16, size)
			return m.api.lookupPrivilegeName(luid, buf, retLen)
		},
	)
	if err != nil {
		return "", err
	}
	return string(utf16.Decode(buf[:n])), nil
}
