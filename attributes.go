package winpriv

// PrivilegeAttribute holds the raw attribute word the OS keeps per
// privilege in a token.
type PrivilegeAttribute uint32

const (
	PrivilegeDisabled         PrivilegeAttribute = 0x00000000
	PrivilegeEnabledByDefault PrivilegeAttribute = 0x00000001
	PrivilegeEnabled          PrivilegeAttribute = 0x00000002
	PrivilegeRemoved          PrivilegeAttribute = 0x00000004
	PrivilegeUsedForAccess    PrivilegeAttribute = 0x80000000
)

// PrivilegeState is the attribute word collapsed to the three states
// callers act on. EnabledByDefault counts as Enabled.
type PrivilegeState int

const (
	StateDisabled PrivilegeState = iota
	StateEnabled
	StateRemoved
)

// State collapses the attribute word. Removed wins over everything else;
// a privilege can never come back once removed from a token.
func (a PrivilegeAttribute) State() PrivilegeState {
	switch {
	case a&PrivilegeRemoved != 0:
		return StateRemoved
	case a&(PrivilegeEnabled|PrivilegeEnabledByDefault) != 0:
		return StateEnabled
	default:
		return StateDisabled
	}
}

// PrivilegeAndAttributes pairs a privilege with the attribute word it
// carried when a token was queried. Value equality by both fields.
type PrivilegeAndAttributes struct {
	Privilege  Privilege
	Attributes PrivilegeAttribute
}

// PrivilegeCollection is a point-in-time snapshot of a token's
// privileges. It is never live; re-query after adjusting.
type PrivilegeCollection []PrivilegeAndAttributes
