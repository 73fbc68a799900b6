package winpriv

import (
	"encoding/binary"
	"errors"
	"sync"
	"unicode/utf16"
)

var (
	errFakeNoPrivilege = errors.New("a specified privilege does not exist")
	errFakeNoProcess   = errors.New("the parameter is incorrect")
	errFakeBadHandle   = errors.New("the handle is invalid")
)

type fakeEntry struct {
	luid LUID
	attr PrivilegeAttribute
}

type fakeToken struct {
	privs []fakeEntry
}

// fakeOS implements nativeAPI over in-memory token state so the
// library's behavior can be exercised without a live kernel. Token
// state is keyed per pid; every open hands out a fresh handle onto the
// shared state, mirroring how process token handles behave.
type fakeOS struct {
	mu sync.Mutex

	luidSeq uint32
	luids   map[string]LUID
	names   map[LUID]string

	procs     map[int]*fakeToken
	handles   map[rawHandle]*fakeToken
	handleSeq rawHandle
	opens     map[int]int
	closes    int

	lookupValueCalls map[string]int
	failLookupValue  map[string]error
	failDisable      map[string]error
}

func newFakeOS() *fakeOS {
	return &fakeOS{
		luids:            make(map[string]LUID),
		names:            make(map[LUID]string),
		procs:            make(map[int]*fakeToken),
		handles:          make(map[rawHandle]*fakeToken),
		opens:            make(map[int]int),
		lookupValueCalls: make(map[string]int),
		failLookupValue:  make(map[string]error),
		failDisable:      make(map[string]error),
	}
}

// luidFor assigns LUIDs sequentially per name. Caller holds f.mu.
func (f *fakeOS) luidFor(name string) LUID {
	if l, ok := f.luids[name]; ok {
		return l
	}
	f.luidSeq++
	l := LUID{LowPart: f.luidSeq}
	f.luids[name] = l
	f.names[l] = name
	return l
}

func (f *fakeOS) setProcess(pid int, privs ...PrivilegeAndAttributes) {
	f.mu.Lock()
	defer f.mu.Unlock()
	tok := &fakeToken{}
	for _, pa := range privs {
		tok.privs = append(tok.privs, fakeEntry{luid: f.luidFor(string(pa.Privilege)), attr: pa.Attributes})
	}
	f.procs[pid] = tok
}

// addForeign grants the token a privilege whose name falls outside the
// library's closed set.
func (f *fakeOS) addForeign(pid int, name string, attr PrivilegeAttribute) {
	f.mu.Lock()
	defer f.mu.Unlock()
	tok := f.procs[pid]
	tok.privs = append(tok.privs, fakeEntry{luid: f.luidFor(name), attr: attr})
}

func (f *fakeOS) valueLookups(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lookupValueCalls[name]
}

func (f *fakeOS) openCount(pid int) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.opens[pid]
}

func (f *fakeOS) closeCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closes
}

func (f *fakeOS) lookupPrivilegeValue(name string) (LUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lookupValueCalls[name]++
	if err := f.failLookupValue[name]; err != nil {
		return LUID{}, newNativeCallError("LookupPrivilegeValue", err)
	}
	if _, ok := privilegeFromName(name); !ok {
		if _, seeded := f.luids[name]; !seeded {
			return LUID{}, newNativeCallError("LookupPrivilegeValue", errFakeNoPrivilege)
		}
	}
	return f.luidFor(name), nil
}

func (f *fakeOS) lookupPrivilegeName(luid LUID, buf []uint16, cch *uint32) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	name, ok := f.names[luid]
	if !ok {
		return newNativeCallError("LookupPrivilegeName", errFakeNoPrivilege)
	}
	u := utf16.Encode([]rune(name))
	if len(buf) < len(u)+1 {
		*cch = uint32(len(u) + 1)
		return errInsufficientBuffer
	}
	copy(buf, u)
	buf[len(u)] = 0
	*cch = uint32(len(u))
	return nil
}

func (f *fakeOS) getTokenInformation(t rawHandle, buf []byte, retLen *uint32) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	tok, ok := f.handles[t]
	if !ok {
		return newNativeCallError("GetTokenInformation", errFakeBadHandle)
	}
	if len(tok.privs) == 0 && len(buf) == 0 {
		*retLen = 0
		return nil
	}
	need := tokenPrivilegesHeaderSize + luidAndAttributesSize*len(tok.privs)
	if len(buf) < need {
		*retLen = uint32(need)
		return errInsufficientBuffer
	}
	binary.LittleEndian.PutUint32(buf, uint32(len(tok.privs)))
	for i, e := range tok.privs {
		off := tokenPrivilegesHeaderSize + i*luidAndAttributesSize
		binary.LittleEndian.PutUint32(buf[off:], e.luid.LowPart)
		binary.LittleEndian.PutUint32(buf[off+4:], uint32(e.luid.HighPart))
		binary.LittleEndian.PutUint32(buf[off+8:], uint32(e.attr))
	}
	*retLen = uint32(need)
	return nil
}

func (f *fakeOS) adjustTokenPrivileges(t rawHandle, newState, prevState []byte, retLen *uint32) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	tok, ok := f.handles[t]
	if !ok {
		return newNativeCallError("AdjustTokenPrivileges", errFakeBadHandle)
	}

	var changed []fakeEntry
	for _, r := range parseTokenPrivileges(newState) {
		idx := -1
		for i := range tok.privs {
			if tok.privs[i].luid == r.luid {
				idx = i
				break
			}
		}
		if idx < 0 {
			// Privilege not assigned: the call still succeeds, it just
			// modifies nothing (ERROR_NOT_ALL_ASSIGNED semantics).
			continue
		}
		old := tok.privs[idx]
		switch {
		case r.attributes&PrivilegeRemoved != 0:
			tok.privs = append(tok.privs[:idx], tok.privs[idx+1:]...)
			changed = append(changed, old)
		case r.attributes&PrivilegeEnabled != 0:
			if old.attr.State() == StateEnabled {
				continue
			}
			tok.privs[idx].attr = old.attr | PrivilegeEnabled
			changed = append(changed, old)
		default:
			if err := f.failDisable[f.names[r.luid]]; err != nil {
				return newNativeCallError("AdjustTokenPrivileges", err)
			}
			if old.attr.State() == StateDisabled {
				continue
			}
			tok.privs[idx].attr = PrivilegeDisabled
			changed = append(changed, old)
		}
	}

	if len(prevState) < tokenPrivilegesHeaderSize {
		*retLen = 0
		return nil
	}
	n := 0
	for _, e := range changed {
		off := tokenPrivilegesHeaderSize + n*luidAndAttributesSize
		if off+luidAndAttributesSize > len(prevState) {
			break
		}
		binary.LittleEndian.PutUint32(prevState[off:], e.luid.LowPart)
		binary.LittleEndian.PutUint32(prevState[off+4:], uint32(e.luid.HighPart))
		binary.LittleEndian.PutUint32(prevState[off+8:], uint32(e.attr))
		n++
	}
	binary.LittleEndian.PutUint32(prevState, uint32(n))
	*retLen = uint32(tokenPrivilegesHeaderSize + n*luidAndAttributesSize)
	return nil
}

func (f *fakeOS) openProcessToken(pid int) (rawHandle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	tok, ok := f.procs[pid]
	if !ok {
		return 0, newNativeCallError("OpenProcessToken", errFakeNoProcess)
	}
	f.handleSeq++
	f.handles[f.handleSeq] = tok
	f.opens[pid]++
	return f.handleSeq, nil
}

func (f *fakeOS) closeHandle(h rawHandle) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.handles[h]; !ok {
		return newNativeCallError("CloseHandle", errFakeBadHandle)
	}
	delete(f.handles, h)
	f.closes++
	return nil
}
