package winpriv

// Privileges snapshots the token's full privilege set. OS privileges
// whose names fall outside the closed set are silently dropped. A token
// holding zero privileges yields an empty collection, not an error; the
// OS signals that case by answering the size probe outright.
func (t *Token) Privileges() (PrivilegeCollection, error) {
	var buf []byte
	n, err := queryVariableLengthBuffer(
		func(retLen *uint32) error {
			return t.m.api.getTokenInformation(t.raw, nil, retLen)
		},
		func(size uint32, retLen *uint32) error {
			buf = make([]byte, size)
			return t.m.api.getTokenInformation(t.raw, buf, retLen)
		},
	)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return PrivilegeCollection{}, nil
	}

	raw := parseTokenPrivileges(buf[:n])
	col := make(PrivilegeCollection, 0, len(raw))
	for _, r := range raw {
		name, err := t.m.lookupName(r.luid)
		if err != nil {
			return nil, err
		}
		p, ok := privilegeFromName(name)
		if !ok {
			continue
		}
		col = append(col, PrivilegeAndAttributes{Privilege: p, Attributes: r.attributes})
	}
	return col, nil
}

// AttributesOf scans a previously fetched collection for a privilege.
// A privilege absent from the collection has either never been assigned
// to the token or been removed from it; the two are observably
// equivalent, so both report PrivilegeRemoved. The miss path still
// resolves the privilege's LUID, warming the cache and surfacing a
// lookup failure for a name the OS does not recognize.
func (m *Manager) AttributesOf(c PrivilegeCollection, p Privilege) (PrivilegeAttribute, error) {
	for _, pa := range c {
		if pa.Privilege == p {
			return pa.Attributes, nil
		}
	}
	if _, err := m.ResolveLUID(p); err != nil {
		return 0, err
	}
	return PrivilegeRemoved, nil
}
