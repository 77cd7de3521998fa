package abi

import (
	"bytes"
	"errors"
	"math/big"
	"testing"

	"github.com/sunyihoo/ethabi/common"
)

func TestEncodePacked(t *testing.T) {
	t.Parallel()
	tests := []struct {
		types  []string
		values []interface{}
		want   string
	}{
		{
			[]string{"int16", "bytes1", "uint16", "string"},
			[]interface{}{big.NewInt(-1), []byte{0x42}, uint16(3), "Hello, world!"},
			"ffff42000348656c6c6f2c20776f726c6421",
		},
		{
			[]string{"address", "bool", "uint8"},
			[]interface{}{alice, true, uint8(7)},
			"5aaeb6053f3e94c9b9a09f33669435e7ef1beaed" + "01" + "07",
		},
		{
			[]string{"uint16[]"},
			[]interface{}{[]interface{}{1, 2}},
			word("01") + word("02"),
		},
		{
			[]string{"bytes2[2]", "bool[]"},
			[]interface{}{[][]byte{{0xca, 0xfe}, {0xbe, 0xef}}, []bool{true}},
			rword("cafe") + rword("beef") + word("01"),
		},
		{
			[]string{"bytes", "string"},
			[]interface{}{[]byte{}, ""},
			"",
		},
		{
			[]string{"int256"},
			[]interface{}{big.NewInt(-2)},
			"fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffe",
		},
	}
	for i, test := range tests {
		have, err := EncodePacked(test.types, test.values)
		if err != nil {
			t.Fatalf("test %d (%v): %v", i, test.types, err)
		}
		if want := common.Hex2Bytes(test.want); !bytes.Equal(have, want) {
			t.Errorf("test %d (%v): have %x, want %x", i, test.types, have, want)
		}
	}
}

func TestEncodePackedErrors(t *testing.T) {
	t.Parallel()
	var lengthErr *LengthMismatchError
	if _, err := EncodePacked([]string{"uint8"}, nil); !errors.As(err, &lengthErr) {
		t.Errorf("expected LengthMismatchError, got %v", err)
	}
	var rangeErr *IntegerOutOfRangeError
	if _, err := EncodePacked([]string{"uint8"}, []interface{}{256}); !errors.As(err, &rangeErr) {
		t.Errorf("expected IntegerOutOfRangeError, got %v", err)
	}
	var sizeErr *BytesSizeMismatchError
	if _, err := EncodePacked([]string{"bytes2"}, []interface{}{[]byte{1}}); !errors.As(err, &sizeErr) {
		t.Errorf("expected BytesSizeMismatchError, got %v", err)
	}
	var arrayErr *ArrayLengthMismatchError
	if _, err := EncodePacked([]string{"uint8[2]"}, []interface{}{[]uint8{1}}); !errors.As(err, &arrayErr) {
		t.Errorf("expected ArrayLengthMismatchError, got %v", err)
	}
	var typeErr *InvalidAbiTypeError
	if _, err := EncodePacked([]string{"uint9"}, []interface{}{1}); !errors.As(err, &typeErr) {
		t.Errorf("expected InvalidAbiTypeError, got %v", err)
	}
}
