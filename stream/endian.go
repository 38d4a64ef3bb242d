package stream

import (
	"encoding/binary"
	"io"
	"math/bits"
)

// hostBigEndian is true when the running machine stores integers big-endian.
var hostBigEndian = binary.NativeEndian.Uint16([]byte{0x12, 0x34}) == 0x1234

// SwapByteOrder16 reverses the bytes of v.
func SwapByteOrder16(v uint16) uint16 {
	return bits.ReverseBytes16(v)
}

// SwapByteOrder32 reverses the bytes of v.
func SwapByteOrder32(v uint32) uint32 {
	return bits.ReverseBytes32(v)
}

// memoryOrder is the order in which a host lays integers out in memory.
func memoryOrder(bigEndianHost bool) binary.ByteOrder {
	if bigEndianHost {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// Persisted integers are little-endian. The helpers below reinterpret raw
// bytes the way the host would and swap on big-endian hosts.

func diskToHost16(raw []byte, bigEndianHost bool) uint16 {
	v := memoryOrder(bigEndianHost).Uint16(raw)
	if bigEndianHost {
		v = SwapByteOrder16(v)
	}
	return v
}

func diskToHost32(raw []byte, bigEndianHost bool) uint32 {
	v := memoryOrder(bigEndianHost).Uint32(raw)
	if bigEndianHost {
		v = SwapByteOrder32(v)
	}
	return v
}

func hostToDisk16(dst []byte, v uint16, bigEndianHost bool) {
	if bigEndianHost {
		v = SwapByteOrder16(v)
	}
	memoryOrder(bigEndianHost).PutUint16(dst, v)
}

func hostToDisk32(dst []byte, v uint32, bigEndianHost bool) {
	if bigEndianHost {
		v = SwapByteOrder32(v)
	}
	memoryOrder(bigEndianHost).PutUint32(dst, v)
}

// ReadIntoObj reads binary.Size(*obj) bytes from s into obj.
//
// 16 and 32-bit integers are converted from the persisted little-endian order
// to host order. Every other fixed-size type is copied as raw host-order
// memory. It reports false when fewer bytes than needed were available or
// the type has no fixed size; obj is left unchanged in that case.
func ReadIntoObj[T any](s *InputStream, obj *T) bool {
	return readIntoObj(s, obj, hostBigEndian)
}

func readIntoObj[T any](s *InputStream, obj *T, bigEndianHost bool) bool {
	size := binary.Size(obj)
	if size <= 0 {
		return false
	}
	raw := make([]byte, size)
	if _, err := io.ReadFull(s, raw); err != nil {
		return false
	}

	switch p := any(obj).(type) {
	case *uint16:
		*p = diskToHost16(raw, bigEndianHost)
	case *int16:
		*p = int16(diskToHost16(raw, bigEndianHost))
	case *uint32:
		*p = diskToHost32(raw, bigEndianHost)
	case *int32:
		*p = int32(diskToHost32(raw, bigEndianHost))
	default:
		if _, err := binary.Decode(raw, memoryOrder(bigEndianHost), obj); err != nil {
			return false
		}
	}
	return true
}

// WriteObj writes v to s in the layout ReadIntoObj expects. It reports false
// unless every byte was accepted.
func WriteObj[T any](s *OutputStream, v T) bool {
	return writeObj(s, v, hostBigEndian)
}

func writeObj[T any](s *OutputStream, v T, bigEndianHost bool) bool {
	size := binary.Size(v)
	if size <= 0 {
		return false
	}
	raw := make([]byte, size)

	switch x := any(v).(type) {
	case uint16:
		hostToDisk16(raw, x, bigEndianHost)
	case int16:
		hostToDisk16(raw, uint16(x), bigEndianHost)
	case uint32:
		hostToDisk32(raw, x, bigEndianHost)
	case int32:
		hostToDisk32(raw, uint32(x), bigEndianHost)
	default:
		if _, err := binary.Encode(raw, memoryOrder(bigEndianHost), v); err != nil {
			return false
		}
	}

	n, err := s.Write(raw)
	return err == nil && n == size
}
