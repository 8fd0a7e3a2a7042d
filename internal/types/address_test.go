package types

import (
	"bytes"
	"errors"
	"testing"
)

func TestParseAddress(t *testing.T) {
	const want = "0x3535353535353535353535353535353535353535"

	tests := []struct {
		name string
		in   string
	}{
		{"lowercase with prefix", "0x3535353535353535353535353535353535353535"},
		{"uppercase prefix", "0X3535353535353535353535353535353535353535"},
		{"no prefix", "3535353535353535353535353535353535353535"},
		{"surrounding whitespace", " 0x3535353535353535353535353535353535353535 "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := ParseAddress(tt.in)
			if err != nil {
				t.Fatalf("ParseAddress(%q): %v", tt.in, err)
			}
			if a.String() != want {
				t.Errorf("String() = %s, want %s", a.String(), want)
			}
		})
	}
}

func TestParseAddressCaseInsensitive(t *testing.T) {
	upper, err := ParseAddress("0XAB5801A7D398351B8BE11C439E05C5B3259AEC9B")
	if err != nil {
		t.Fatal(err)
	}
	lower, err := ParseAddress("ab5801a7d398351b8be11c439e05c5b3259aec9b")
	if err != nil {
		t.Fatal(err)
	}
	if upper != lower {
		t.Error("mixed-case parses should be equal byte-wise")
	}
}

func TestParseAddressErrors(t *testing.T) {
	for _, in := range []string{"", "0x12", "0x" + "35353535353535353535353535353535353535", "0xzz35353535353535353535353535353535353535"} {
		if _, err := ParseAddress(in); !errors.Is(err, ErrInvalidAddress) {
			t.Errorf("ParseAddress(%q) error = %v, want ErrInvalidAddress", in, err)
		}
	}
}

func TestAddressFromBytes(t *testing.T) {
	// A 32-byte input keeps the trailing 20 bytes (hash-to-address rule).
	full := make([]byte, 32)
	for i := range full {
		full[i] = byte(i)
	}
	a, err := AddressFromBytes(full)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Bytes(), full[12:]) {
		t.Errorf("AddressFromBytes kept %x, want trailing 20 bytes %x", a.Bytes(), full[12:])
	}

	if _, err := AddressFromBytes(make([]byte, 19)); !errors.Is(err, ErrInvalidAddress) {
		t.Errorf("short input error = %v, want ErrInvalidAddress", err)
	}
}

func TestChecksum(t *testing.T) {
	// EIP-55 reference vectors.
	vectors := []string{
		"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
		"0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359",
		"0xdbF03B407c01E7cD3CBea99509d93f8DDDC8C6FB",
		"0xD1220A0cf47c7B9Be7A2E6BA89F429762e7b9aDb",
	}
	for _, v := range vectors {
		a, err := ParseAddress(v)
		if err != nil {
			t.Fatalf("ParseAddress(%q): %v", v, err)
		}
		if got := a.Checksum(); got != v {
			t.Errorf("Checksum() = %s, want %s", got, v)
		}
	}
}
