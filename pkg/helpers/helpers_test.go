package helpers

import (
	"bytes"
	"errors"
	"testing"
)

func TestTruncateLeadingZeros(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want []byte
	}{
		{"no zeros", []byte{1, 2, 3}, []byte{1, 2, 3}},
		{"leading zeros", []byte{0, 0, 1, 2}, []byte{1, 2}},
		{"interior zero kept", []byte{0, 1, 0, 2}, []byte{1, 0, 2}},
		{"all zeros", []byte{0, 0, 0}, []byte{}},
		{"empty", []byte{}, []byte{}},
		{"single zero", []byte{0}, []byte{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncateLeadingZeros(tt.in)
			if !bytes.Equal(got, tt.want) {
				t.Errorf("TruncateLeadingZeros(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestToHex(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"empty", nil, ""},
		{"single", []byte{0xab}, "AB"},
		{"multi", []byte{0xde, 0xad, 0xbe, 0xef}, "DEADBEEF"},
		{"leading zero byte", []byte{0x00, 0x01}, "0001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToHex(tt.in); got != tt.want {
				t.Errorf("ToHex(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFromHex(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    []byte
		wantErr bool
	}{
		{"plain", "deadbeef", []byte{0xde, 0xad, 0xbe, 0xef}, false},
		{"uppercase", "DEADBEEF", []byte{0xde, 0xad, 0xbe, 0xef}, false},
		{"0x prefix", "0xdeadbeef", []byte{0xde, 0xad, 0xbe, 0xef}, false},
		{"0X prefix", "0XDEADBEEF", []byte{0xde, 0xad, 0xbe, 0xef}, false},
		{"leading whitespace", "  0xff", []byte{0xff}, false},
		{"empty", "", []byte{}, false},
		{"prefix only", "0x", []byte{}, false},
		{"odd length", "0xf", nil, true},
		{"odd length no prefix", "abc", nil, true},
		{"non-hex", "0xzz", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromHex(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidHex) {
					t.Fatalf("FromHex(%q) error = %v, want ErrInvalidHex", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("FromHex(%q) unexpected error: %v", tt.in, err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("FromHex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	cases := [][]byte{
		{},
		{0x00},
		{0x00, 0x00, 0xff},
		{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef},
	}
	for _, b := range cases {
		decoded, err := FromHex(ToHex(b))
		if err != nil {
			t.Fatalf("round trip failed for %v: %v", b, err)
		}
		if !bytes.Equal(decoded, b) {
			t.Errorf("round trip mismatch: got %v, want %v", decoded, b)
		}
	}
}

func TestUint64ToBytes(t *testing.T) {
	tests := []struct {
		in   uint64
		want []byte
	}{
		{0, []byte{}},
		{1, []byte{0x01}},
		{0x80, []byte{0x80}},
		{0x100, []byte{0x01, 0x00}},
		{0x5208, []byte{0x52, 0x08}},
		{0x4a817c800, []byte{0x04, 0xa8, 0x17, 0xc8, 0x00}},
	}
	for _, tt := range tests {
		if got := Uint64ToBytes(tt.in); !bytes.Equal(got, tt.want) {
			t.Errorf("Uint64ToBytes(%#x) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestUint32ToBytes(t *testing.T) {
	if got := Uint32ToBytes(0); len(got) != 0 {
		t.Errorf("Uint32ToBytes(0) = %v, want empty", got)
	}
	if got := Uint32ToBytes(21000); !bytes.Equal(got, []byte{0x52, 0x08}) {
		t.Errorf("Uint32ToBytes(21000) = %v, want [52 08]", got)
	}
}

func TestAddStripHexPrefix(t *testing.T) {
	if got := AddHexPrefix("ff"); got != "0xff" {
		t.Errorf("AddHexPrefix = %s", got)
	}
	if got := StripHexPrefix("0Xff"); got != "ff" {
		t.Errorf("StripHexPrefix = %s", got)
	}
	if got := StripHexPrefix("ff"); got != "ff" {
		t.Errorf("StripHexPrefix without prefix = %s", got)
	}
}

func TestKeccak256(t *testing.T) {
	// keccak256("") is a well-known constant.
	got := ToHex(Keccak256(nil))
	want := "C5D2460186F7233C927E7DB2DCC703C0E500B653CA82273B7BFAD8045D85A470"
	if got != want {
		t.Errorf("Keccak256(nil) = %s, want %s", got, want)
	}
}
