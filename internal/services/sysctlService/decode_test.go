package sysctlservice

import (
	"errors"
	"testing"
)

func TestDecodeInt32Size(t *testing.T) {
	if _, err := Decode[int32](make([]byte, 4)); err != nil {
		t.Fatalf("Decode[int32] on 4 bytes: %v", err)
	}

	_, err := Decode[int32](make([]byte, 5))
	var sizeErr *SizeMismatchError
	if !errors.As(err, &sizeErr) {
		t.Fatalf("Decode[int32] on 5 bytes: got %v, want SizeMismatchError", err)
	}
	if sizeErr.Expected != 4 || sizeErr.Actual != 5 {
		t.Fatalf("SizeMismatchError = %+v, want expected 4 actual 5", sizeErr)
	}
}

func TestDecodeNeverPads(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		run  func([]byte) error
	}{
		{"uint64 short", make([]byte, 4), func(b []byte) error { _, err := Decode[uint64](b); return err }},
		{"int16 long", make([]byte, 4), func(b []byte) error { _, err := Decode[int16](b); return err }},
		{"uint32 empty", nil, func(b []byte) error { _, err := Decode[uint32](b); return err }},
	}

	for _, tc := range tests {
		var sizeErr *SizeMismatchError
		if err := tc.run(tc.in); !errors.As(err, &sizeErr) {
			t.Errorf("%s: got %v, want SizeMismatchError", tc.name, err)
		}
	}
}

func TestEncodeDecodeValues(t *testing.T) {
	if got, err := Decode[int32](Encode(int32(-12))); err != nil || got != -12 {
		t.Fatalf("int32 = %d, %v; want -12", got, err)
	}
	if got, err := Decode[uint64](Encode(uint64(17179869184))); err != nil || got != 17179869184 {
		t.Fatalf("uint64 = %d, %v; want 17179869184", got, err)
	}
	if got, err := Decode[uint16](Encode(uint16(0xbeef))); err != nil || got != 0xbeef {
		t.Fatalf("uint16 = %#x, %v; want 0xbeef", got, err)
	}
}

func TestDecodeString(t *testing.T) {
	tests := []struct {
		in   []byte
		want string
	}{
		{[]byte("test-host.local\x00"), "test-host.local"},
		{[]byte("no-terminator"), "no-terminator"},
		{[]byte("two\x00\x00"), "two\x00"},
		{[]byte{0}, ""},
		{nil, ""},
	}

	for _, tc := range tests {
		got, err := DecodeString(tc.in)
		if err != nil {
			t.Fatalf("DecodeString(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("DecodeString(%q) = %q; want %q", tc.in, got, tc.want)
		}
	}
}

func TestDecodeStringMalformed(t *testing.T) {
	_, err := DecodeString([]byte{'o', 'k', 0xff, 0xfe, 0})

	var encErr *MalformedEncodingError
	if !errors.As(err, &encErr) {
		t.Fatalf("got %v, want MalformedEncodingError", err)
	}
	if encErr.Offset != 2 {
		t.Fatalf("Offset = %d; want 2", encErr.Offset)
	}
}
