package winpriv

import (
	"errors"
	"fmt"
)

var (
	ErrEnablerClosed = errors.New("enabler is already closed")
	ErrTokenClosed   = errors.New("token is already closed")
)

// NativeCallError reports a failed OS call. It wraps the underlying
// errno so callers can errors.Is/As against windows error values.
type NativeCallError struct {
	Call string
	Err  error
}

func newNativeCallError(call string, err error) error {
	return &NativeCallError{Call: call, Err: err}
}

func (e *NativeCallError) Error() string {
	return fmt.Sprintf("error while %s: %v", e.Call, e.Err)
}

func (e *NativeCallError) Unwrap() error {
	return e.Err
}
