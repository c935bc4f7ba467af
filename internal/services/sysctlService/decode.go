package sysctlservice

import (
	"encoding/binary"
	"unicode/utf8"
)

// Integer is the set of fixed-width integers a value can be decoded as.
type Integer interface {
	~int16 | ~uint16 | ~int32 | ~uint32 | ~int64 | ~uint64
}

// SizeOf returns the encoded width of T in bytes.
func SizeOf[T Integer]() int {
	var zero T
	return binary.Size(zero)
}

// Decode reads b as a native-endian T. b must be exactly as long as T.
func Decode[T Integer](b []byte) (T, error) {
	size := SizeOf[T]()
	if len(b) != size {
		return 0, &SizeMismatchError{Expected: size, Actual: len(b)}
	}

	switch size {
	case 2:
		return T(binary.NativeEndian.Uint16(b)), nil
	case 4:
		return T(binary.NativeEndian.Uint32(b)), nil
	default:
		return T(binary.NativeEndian.Uint64(b)), nil
	}
}

// Encode is the inverse of Decode.
func Encode[T Integer](v T) []byte {
	switch SizeOf[T]() {
	case 2:
		return binary.NativeEndian.AppendUint16(nil, uint16(v))
	case 4:
		return binary.NativeEndian.AppendUint32(nil, uint32(v))
	default:
		return binary.NativeEndian.AppendUint64(nil, uint64(v))
	}
}

// DecodeString reads b as UTF-8, dropping one trailing NUL terminator.
func DecodeString(b []byte) (string, error) {
	if n := len(b); n > 0 && b[n-1] == 0 {
		b = b[:n-1]
	}

	if !utf8.Valid(b) {
		return "", &MalformedEncodingError{Offset: firstInvalid(b)}
	}

	return string(b), nil
}

// EncodeString returns s as a NUL terminated C string.
func EncodeString(s string) []byte {
	b := make([]byte, 0, len(s)+1)
	b = append(b, s...)
	return append(b, 0)
}

func firstInvalid(b []byte) int {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return len(b)
}
