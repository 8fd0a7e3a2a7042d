package abi

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/quartznode/evmkit/internal/types"
)

func mustAddress(t *testing.T, s string) types.Address {
	t.Helper()
	a, err := types.ParseAddress(s)
	if err != nil {
		t.Fatal(err)
	}
	return a
}

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(strings.ReplaceAll(s, " ", ""))
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestEncodeStaticPadding(t *testing.T) {
	tests := []struct {
		name string
		item Item
		want string
	}{
		{"uint 1000", Uint(1000), "00000000000000000000000000000000000000000000000000000000000003e8"},
		{"uint 0", Uint(0), "0000000000000000000000000000000000000000000000000000000000000000"},
		{"bool true", Bool(true), "0000000000000000000000000000000000000000000000000000000000000001"},
		{"bool false", Bool(false), "0000000000000000000000000000000000000000000000000000000000000000"},
		{"address", Addr(mustAddress(t, "0x0000000000000000000000000000000000000001")),
			"0000000000000000000000000000000000000000000000000000000000000001"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeItem(tt.item)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(got, mustHex(t, tt.want)) {
				t.Errorf("EncodeItem = %x, want %s", got, tt.want)
			}
		})
	}
}

func TestEncodeStaticOversized(t *testing.T) {
	item := Bytes(nil)
	item.kind = KindUint
	item.payload = make([]byte, 33)
	if _, err := EncodeItem(item); err == nil {
		t.Error("expected error for payload wider than one word")
	}
}

func TestEncodeString(t *testing.T) {
	got, err := EncodeItem(String("hello"))
	if err != nil {
		t.Fatal(err)
	}
	want := mustHex(t,
		"0000000000000000000000000000000000000000000000000000000000000005"+
			"68656c6c6f000000000000000000000000000000000000000000000000000000")
	if !bytes.Equal(got, want) {
		t.Errorf("EncodeItem(hello) = %x, want %x", got, want)
	}
}

func TestEncodeBytesExactWord(t *testing.T) {
	// A 32-byte payload needs no padding: length word + one payload word.
	payload := bytes.Repeat([]byte{0xab}, 32)
	got, err := EncodeItem(Bytes(payload))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 64 {
		t.Fatalf("encoded length = %d, want 64", len(got))
	}
	if got[31] != 32 {
		t.Errorf("length word = %d, want 32", got[31])
	}
	if !bytes.Equal(got[32:], payload) {
		t.Error("payload word mismatch")
	}
}

func TestEncodeArray(t *testing.T) {
	got, err := EncodeItem(Array(Uint(1), Uint(2), Uint(3)))
	if err != nil {
		t.Fatal(err)
	}
	want := mustHex(t,
		"0000000000000000000000000000000000000000000000000000000000000003"+
			"0000000000000000000000000000000000000000000000000000000000000001"+
			"0000000000000000000000000000000000000000000000000000000000000002"+
			"0000000000000000000000000000000000000000000000000000000000000003")
	if !bytes.Equal(got, want) {
		t.Errorf("array encoding = %x, want %x", got, want)
	}

	if _, err := EncodeItem(Array(String("no"))); err == nil {
		t.Error("expected error for dynamic array elements")
	}
}

func TestTransferSelector(t *testing.T) {
	call := NewContractCall("transfer",
		Addr(mustAddress(t, "0x0000000000000000000000000000000000000001")),
		Uint(1000))

	if sig := call.Signature(); sig != "transfer(address,uint256)" {
		t.Errorf("Signature = %s", sig)
	}
	sel := call.Selector()
	if !bytes.Equal(sel[:], []byte{0xa9, 0x05, 0x9c, 0xbb}) {
		t.Errorf("selector = %x, want a9059cbb", sel)
	}
}

func TestBalanceOfSelector(t *testing.T) {
	call := NewERC20BalanceOf(mustAddress(t, "0x0000000000000000000000000000000000000001"))
	sel := call.Selector()
	if !bytes.Equal(sel[:], []byte{0x70, 0xa0, 0x82, 0x31}) {
		t.Errorf("balanceOf selector = %x, want 70a08231", sel)
	}
}

func TestTransferData(t *testing.T) {
	call := NewERC20Transfer(mustAddress(t, "0x0000000000000000000000000000000000000001"), types.FromUint64(1000))
	got, err := call.Data()
	if err != nil {
		t.Fatal(err)
	}
	want := mustHex(t,
		"a9059cbb"+
			"0000000000000000000000000000000000000000000000000000000000000001"+
			"00000000000000000000000000000000000000000000000000000000000003e8")
	if !bytes.Equal(got, want) {
		t.Errorf("Data() = %x, want %x", got, want)
	}
}

func TestDynamicArgumentLayout(t *testing.T) {
	// One string argument: head is a single offset word (0x20), tail is the
	// length word plus the padded payload.
	call := NewContractCall("greet", String("hello"))
	got, err := call.Data()
	if err != nil {
		t.Fatal(err)
	}
	want := call.Selector()
	expected := append(want[:],
		mustHex(t,
			"0000000000000000000000000000000000000000000000000000000000000020"+
				"0000000000000000000000000000000000000000000000000000000000000005"+
				"68656c6c6f000000000000000000000000000000000000000000000000000000")...)
	if !bytes.Equal(got, expected) {
		t.Errorf("Data() = %x, want %x", got, expected)
	}
}

func TestMixedStaticDynamicLayout(t *testing.T) {
	// f(uint256,string,uint256): offsets start at head size 3*32 = 96.
	call := NewContractCall("f", Uint(7), String("abc"), Uint(9))
	got, err := call.Data()
	if err != nil {
		t.Fatal(err)
	}
	body := got[4:]
	if body[31] != 7 {
		t.Errorf("first head word = %d, want 7", body[31])
	}
	if offset := body[63]; offset != 96 {
		t.Errorf("dynamic offset = %d, want 96", offset)
	}
	if body[95] != 9 {
		t.Errorf("third head word = %d, want 9", body[95])
	}
	if length := body[127]; length != 3 {
		t.Errorf("tail length word = %d, want 3", length)
	}
	if !bytes.Equal(body[128:131], []byte("abc")) {
		t.Error("tail payload mismatch")
	}
}

func TestBoolHandle(t *testing.T) {
	call := NewContractCall("setFlag", Bool(true))
	if sig := call.Signature(); sig != "setFlag(bool)" {
		t.Errorf("Signature = %s, want setFlag(bool)", sig)
	}
}

func TestWithHandle(t *testing.T) {
	item := Uint(5).WithHandle("uint64")
	call := NewContractCall("tick", item)
	if sig := call.Signature(); sig != "tick(uint64)" {
		t.Errorf("Signature = %s, want tick(uint64)", sig)
	}
}

func TestArrayHandle(t *testing.T) {
	call := NewContractCall("batch", Array(Uint(1), Uint(2)))
	if sig := call.Signature(); sig != "batch(uint256[])" {
		t.Errorf("Signature = %s, want batch(uint256[])", sig)
	}
}
