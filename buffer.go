package winpriv

import (
	"encoding/binary"
	"errors"
)

// TOKEN_PRIVILEGES wire layout: a uint32 count followed by count
// LUID_AND_ATTRIBUTES records of {LowPart, HighPart, Attributes}.
// Windows targets are little-endian.
const (
	tokenPrivilegesHeaderSize = 4
	luidAndAttributesSize     = 12
)

// queryVariableLengthBuffer runs the probe-then-fill protocol shared by
// every variable-length OS query. probe is invoked with a zero-length
// buffer to discover the required size; if it succeeds outright the
// result is legitimately empty. fill is invoked once with the size the
// probe reported and must issue the same call against a buffer it
// allocated. Returns the length the fill call reported.
func queryVariableLengthBuffer(probe func(retLen *uint32) error, fill func(size uint32, retLen *uint32) error) (uint32, error) {
	var size uint32
	err := probe(&size)
	if err == nil {
		return 0, nil
	}
	if !errors.Is(err, errInsufficientBuffer) {
		return 0, err
	}
	if err := fill(size, &size); err != nil {
		return 0, err
	}
	return size, nil
}

type rawPrivilege struct {
	luid       LUID
	attributes PrivilegeAttribute
}

func marshalTokenPrivileges(luid LUID, attr PrivilegeAttribute) []byte {
	buf := make([]byte, tokenPrivilegesHeaderSize+luidAndAttributesSize)
	binary.LittleEndian.PutUint32(buf[0:], 1)
	binary.LittleEndian.PutUint32(buf[4:], luid.LowPart)
	binary.LittleEndian.PutUint32(buf[8:], uint32(luid.HighPart))
	binary.LittleEndian.PutUint32(buf[12:], uint32(attr))
	return buf
}

func parseTokenPrivileges(buf []byte) []rawPrivilege {
	if len(buf) < tokenPrivilegesHeaderSize {
		return nil
	}
	count := int(binary.LittleEndian.Uint32(buf))
	out := make([]rawPrivilege, 0, count)
	for i := 0; i < count; i++ {
		off := tokenPrivilegesHeaderSize + i*luidAndAttributesSize
		if off+luidAndAttributesSize > len(buf) {
			break
		}
		out = append(out, rawPrivilege{
			luid: LUID{
				LowPart:  binary.LittleEndian.Uint32(buf[off:]),
				HighPart: int32(binary.LittleEndian.Uint32(buf[off+4:])),
			},
			attributes: PrivilegeAttribute(binary.LittleEndian.Uint32(buf[off+8:])),
		})
	}
	return out
}
