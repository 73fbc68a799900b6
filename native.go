package winpriv

import "errors"

// rawHandle is an opaque OS handle value as the kernel hands it out.
type rawHandle uintptr

// errInsufficientBuffer is the normalized form of the OS telling a
// size-discovery probe that the buffer was too small. It is an expected
// outcome of the probe step, never a failure.
var errInsufficientBuffer = errors.New("insufficient buffer")

// nativeAPI is the OS capability the library consumes. Implementations
// report genuine call failures as *NativeCallError and a too-small
// buffer on size probes as errInsufficientBuffer.
type nativeAPI interface {
	// lookupPrivilegeValue resolves a privilege name to its LUID.
	// One-shot; LUIDs are fixed size.
	lookupPrivilegeValue(name string) (LUID, error)

	// lookupPrivilegeName writes the UTF-16 name of a LUID into buf.
	// cch carries the buffer length in characters on the way in and the
	// required (probe) or written (fill) length on the way out.
	lookupPrivilegeName(luid LUID, buf []uint16, cch *uint32) error

	// getTokenInformation fills buf with the token's raw
	// TOKEN_PRIVILEGES block, reporting the byte length via retLen.
	getTokenInformation(t rawHandle, buf []byte, retLen *uint32) error

	// adjustTokenPrivileges applies the TOKEN_PRIVILEGES block in
	// newState and writes the previous state of any privileges it
	// actually modified into prevState. A privilege the token does not
	// hold is not a call failure; it simply shows up as zero modified
	// entries in prevState.
	adjustTokenPrivileges(t rawHandle, newState, prevState []byte, retLen *uint32) error

	// openProcessToken opens the access token of the process with the
	// given pid, 0 meaning the current process, with query and
	// adjust-privileges rights.
	openProcessToken(pid int) (rawHandle, error)

	// closeHandle releases an OS handle. A handle that will not close
	// indicates unrecoverable resource state and is surfaced as fatal.
	closeHandle(h rawHandle) error
}
