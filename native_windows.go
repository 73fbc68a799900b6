//go:build windows
// +build windows

package winpriv

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// NewManager returns a Manager backed by the live windows token APIs.
func NewManager() *Manager {
	return newManager(winAPI{})
}

var (
	modadvapi32 = windows.NewLazySystemDLL("advapi32.dll")

	// LookupPrivilegeNameW has no x/sys wrapper.
	procLookupPrivilegeNameW = modadvapi32.NewProc("LookupPrivilegeNameW")
)

type winAPI struct{}

func (winAPI) lookupPrivilegeValue(name string) (LUID, error) {
	var luid windows.LUID
	if err := windows.LookupPrivilegeValue(nil, windows.StringToUTF16Ptr(name), &luid); err != nil {
		return LUID{}, newNativeCallError("LookupPrivilegeValue", err)
	}
	return LUID{LowPart: luid.LowPart, HighPart: luid.HighPart}, nil
}

func (winAPI) lookupPrivilegeName(luid LUID, buf []uint16, cch *uint32) error {
	wl := windows.LUID{LowPart: luid.LowPart, HighPart: luid.HighPart}
	var p *uint16
	if len(buf) > 0 {
		p = &buf[0]
	}
	r1, _, err := procLookupPrivilegeNameW.Call(
		0,
		uintptr(unsafe.Pointer(&wl)),
		uintptr(unsafe.Pointer(p)),
		uintptr(unsafe.Pointer(cch)),
	)
	if r1 == 0 {
		if err == windows.ERROR_INSUFFICIENT_BUFFER {
			return errInsufficientBuffer
		}
		return newNativeCallError("LookupPrivilegeName", err)
	}
	return nil
}

func (winAPI) getTokenInformation(t rawHandle, buf []byte, retLen *uint32) error {
	var p *byte
	if len(buf) > 0 {
		p = &buf[0]
	}
	err := windows.GetTokenInformation(windows.Token(t), windows.TokenPrivileges, p, uint32(len(buf)), retLen)
	if err == windows.ERROR_INSUFFICIENT_BUFFER {
		return errInsufficientBuffer
	}
	if err != nil {
		return newNativeCallError("GetTokenInformation", err)
	}
	return nil
}

func (winAPI) adjustTokenPrivileges(t rawHandle, newState, prevState []byte, retLen *uint32) error {
	var prev *windows.Tokenprivileges
	if len(prevState) > 0 {
		prev = (*windows.Tokenprivileges)(unsafe.Pointer(&prevState[0]))
	}
	err := windows.AdjustTokenPrivileges(
		windows.Token(t),
		false,
		(*windows.Tokenprivileges)(unsafe.Pointer(&newState[0])),
		uint32(len(prevState)),
		prev,
		retLen,
	)
	if err != nil {
		return newNativeCallError("AdjustTokenPrivileges", err)
	}
	return nil
}

func (winAPI) openProcessToken(pid int) (rawHandle, error) {
	var (
		t          windows.Token
		procHandle windows.Handle
		err        error
	)

	if pid == 0 {
		procHandle = windows.CurrentProcess()
	} else {
		procHandle, err = windows.OpenProcess(windows.PROCESS_QUERY_INFORMATION, false, uint32(pid))
		if err != nil {
			return 0, newNativeCallError("OpenProcess", err)
		}
		defer windows.CloseHandle(procHandle)
	}

	if err := windows.OpenProcessToken(procHandle, windows.TOKEN_QUERY|windows.TOKEN_ADJUST_PRIVILEGES, &t); err != nil {
		return 0, newNativeCallError("OpenProcessToken", err)
	}
	return rawHandle(t), nil
}

func (winAPI) closeHandle(h rawHandle) error {
	if err := windows.CloseHandle(windows.Handle(h)); err != nil {
		return newNativeCallError("CloseHandle", err)
	}
	return nil
}
