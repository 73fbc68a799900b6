package winpriv

import "encoding/binary"

// PreviousPrivilegeCount reports whether an adjustment changed token
// state: the number of privileges the OS says it modified, 0 or 1.
type PreviousPrivilegeCount uint32

const (
	PrivilegeUnchanged PreviousPrivilegeCount = 0
	PrivilegeModified  PreviousPrivilegeCount = 1
)

// adjust transitions one privilege on one token to the target attribute
// in a single atomic call, asking the OS for the previous state back.
// The OS reporting "not all privileges assigned" on an otherwise
// successful call is not a failure; it shows up as zero modified
// entries. Only a failed call is an error.
func (m *Manager) adjust(t *Token, p Privilege, attr PrivilegeAttribute) (PreviousPrivilegeCount, error) {
	luid, err := m.ResolveLUID(p)
	if err != nil {
		return PrivilegeUnchanged, err
	}

	newState := marshalTokenPrivileges(luid, attr)
	prevState := make([]byte, len(newState))
	var retLen uint32
	if err := m.api.adjustTokenPrivileges(t.raw, newState, prevState, &retLen); err != nil {
		return PrivilegeUnchanged, err
	}
	if retLen < tokenPrivilegesHeaderSize {
		return PrivilegeUnchanged, nil
	}
	if binary.LittleEndian.Uint32(prevState) == 0 {
		return PrivilegeUnchanged, nil
	}
	return PrivilegeModified, nil
}

// Enable turns the privilege on, reporting whether that changed state.
func (t *Token) Enable(p Privilege) (PreviousPrivilegeCount, error) {
	return t.m.adjust(t, p, PrivilegeEnabled)
}

// Disable turns the privilege off, reporting whether that changed state.
func (t *Token) Disable(p Privilege) (PreviousPrivilegeCount, error) {
	return t.m.adjust(t, p, PrivilegeDisabled)
}

// Remove strips the privilege from the token for good. Removal is
// one-way; no later Enable can bring it back for the life of the token.
func (t *Token) Remove(p Privilege) (PreviousPrivilegeCount, error) {
	return t.m.adjust(t, p, PrivilegeRemoved)
}
