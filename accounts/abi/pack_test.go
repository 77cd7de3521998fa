// Copyright 2017 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package abi

import (
	"bytes"
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/holiman/uint256"
	"github.com/sunyihoo/ethabi/common"
	"github.com/sunyihoo/ethabi/common/hexutil"
)

// word left pads a hex string to a 32 byte word.
func word(h string) string {
	return strings.Repeat("0", 64-len(h)) + h
}

// rword right pads a hex string to a 32 byte word.
func rword(h string) string {
	return h + strings.Repeat("0", 64-len(h))
}

func hexWords(words ...string) []byte {
	return common.Hex2Bytes(strings.Join(words, ""))
}

func mustArgs(t *testing.T, kinds ...string) Arguments {
	t.Helper()
	args := make(Arguments, len(kinds))
	for i, kind := range kinds {
		typ, err := NewType(kind, "", nil)
		if err != nil {
			t.Fatalf("type %s: %v", kind, err)
		}
		args[i] = Argument{Type: typ}
	}
	return args
}

func TestPackVectors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		kinds  []string
		values []interface{}
		want   []byte
	}{
		{
			[]string{"uint256"}, []interface{}{big.NewInt(69420)},
			hexWords(word("010f2c")),
		},
		{
			[]string{"string"}, []interface{}{"wagmi"},
			hexWords(word("20"), word("05"), rword("7761676d69")),
		},
		{
			[]string{"uint256[3]"}, []interface{}{[]*big.Int{big.NewInt(69420), big.NewInt(42069), big.NewInt(420420420)}},
			hexWords(word("010f2c"), word("a455"), word("190f1b44")),
		},
		{
			[]string{"string[]"}, []interface{}{[]string{"a", "b"}},
			hexWords(word("20"), word("02"), word("40"), word("80"), word("01"), rword("61"), word("01"), rword("62")),
		},
		{
			[]string{"uint8", "bytes", "bool"}, []interface{}{uint8(7), []byte{0xca, 0xfe}, true},
			hexWords(word("07"), word("60"), word("01"), word("02"), rword("cafe")),
		},
		{
			[]string{"bytes"}, []interface{}{[]byte{}},
			hexWords(word("20"), word("00")),
		},
		{
			[]string{"int8"}, []interface{}{int8(-1)},
			hexWords(strings.Repeat("f", 64)),
		},
		{
			[]string{"int128"}, []interface{}{new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))},
			hexWords(strings.Repeat("f", 32) + "8" + strings.Repeat("0", 31)),
		},
		{
			[]string{"address"}, []interface{}{"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"},
			hexWords(word("5aaeb6053f3e94c9b9a09f33669435e7ef1beaed")),
		},
		{
			[]string{"bytes4"}, []interface{}{"0xa9059cbb"},
			hexWords(rword("a9059cbb")),
		},
		{
			[]string{"uint256"}, []interface{}{uint256.NewInt(42)},
			hexWords(word("2a")),
		},
		{
			[]string{"uint256[2][2]"}, []interface{}{[][]uint64{{1, 2}, {3, 4}}},
			hexWords(word("01"), word("02"), word("03"), word("04")),
		},
		{
			[]string{"uint256[][]"}, []interface{}{[][]uint64{{1}, {2, 3}}},
			hexWords(
				word("20"), word("02"), word("40"), word("80"),
				word("01"), word("01"),
				word("02"), word("02"), word("03"),
			),
		},
	}
	for i, test := range tests {
		packed, err := mustArgs(t, test.kinds...).Pack(test.values...)
		if err != nil {
			t.Fatalf("test %d (%v): pack failed: %v", i, test.kinds, err)
		}
		if !bytes.Equal(packed, test.want) {
			t.Errorf("test %d (%v): encoding mismatch\nhave %x\nwant %x", i, test.kinds, packed, test.want)
		}
		if len(packed)%32 != 0 {
			t.Errorf("test %d: encoding is not word aligned: %d bytes", i, len(packed))
		}
	}
}

func TestPackTuple(t *testing.T) {
	t.Parallel()
	typ, err := NewType("tuple", "", []ArgumentMarshaling{{Name: "a", Type: "uint256"}, {Name: "b", Type: "string"}})
	if err != nil {
		t.Fatal(err)
	}
	args := Arguments{{Name: "t", Type: typ}}
	want := hexWords(word("20"), word("01"), word("40"), word("01"), rword("78"))

	type pair struct {
		A *big.Int
		B string
	}
	for i, value := range []interface{}{
		[]interface{}{big.NewInt(1), "x"},
		map[string]interface{}{"a": 1, "b": "x"},
		pair{A: big.NewInt(1), B: "x"},
		&pair{A: big.NewInt(1), B: "x"},
		NewValues([]interface{}{uint8(1), "x"}, nil),
	} {
		packed, err := args.Pack(value)
		if err != nil {
			t.Fatalf("value %d: pack failed: %v", i, err)
		}
		if !bytes.Equal(packed, want) {
			t.Errorf("value %d: encoding mismatch\nhave %x\nwant %x", i, packed, want)
		}
	}
}

func TestPackIntegerBounds(t *testing.T) {
	t.Parallel()
	pow := func(n uint) *big.Int { return new(big.Int).Lsh(big.NewInt(1), n) }
	sub := func(a *big.Int, b int64) *big.Int { return new(big.Int).Sub(a, big.NewInt(b)) }
	neg := func(a *big.Int) *big.Int { return new(big.Int).Neg(a) }

	tests := []struct {
		kind string
		ok   []*big.Int
		bad  []*big.Int
	}{
		{"uint8", []*big.Int{big.NewInt(0), big.NewInt(255)}, []*big.Int{big.NewInt(-1), big.NewInt(256)}},
		{"int8", []*big.Int{big.NewInt(-128), big.NewInt(127)}, []*big.Int{big.NewInt(-129), big.NewInt(128)}},
		{"uint256", []*big.Int{big.NewInt(0), sub(pow(256), 1)}, []*big.Int{big.NewInt(-1), pow(256)}},
		{"int128", []*big.Int{neg(pow(127)), sub(pow(127), 1)}, []*big.Int{sub(neg(pow(127)), 1), pow(127)}},
		{"int256", []*big.Int{neg(pow(255)), sub(pow(255), 1)}, []*big.Int{sub(neg(pow(255)), 1), pow(255)}},
	}
	for _, test := range tests {
		args := mustArgs(t, test.kind)
		for _, v := range test.ok {
			if _, err := args.Pack(v); err != nil {
				t.Errorf("%s: %v rejected: %v", test.kind, v, err)
			}
		}
		for _, v := range test.bad {
			_, err := args.Pack(v)
			var rangeErr *IntegerOutOfRangeError
			if !errors.As(err, &rangeErr) {
				t.Errorf("%s: %v not rejected as out of range: %v", test.kind, v, err)
				continue
			}
			if rangeErr.Type != test.kind || rangeErr.Min == nil || rangeErr.Max == nil {
				t.Errorf("%s: incomplete range error: %+v", test.kind, rangeErr)
			}
		}
	}
}

func TestPackErrors(t *testing.T) {
	t.Parallel()
	var (
		lengthErr   *LengthMismatchError
		arrayErr    *ArrayLengthMismatchError
		invalidArr  *InvalidArrayError
		sizeErr     *BytesSizeMismatchError
		addrErr     *InvalidAddressError
		boolErr     *InvalidBooleanError
		mismatchErr *TypeMismatchError
	)
	tests := []struct {
		kinds  []string
		values []interface{}
		target interface{}
	}{
		{[]string{"uint256", "bool"}, []interface{}{1}, &lengthErr},
		{[]string{"uint256[3]"}, []interface{}{[]int{1, 2}}, &arrayErr},
		{[]string{"uint256[]"}, []interface{}{42}, &invalidArr},
		{[]string{"bytes4"}, []interface{}{[]byte{1, 2, 3}}, &sizeErr},
		{[]string{"bytes32"}, []interface{}{"0x1234"}, &sizeErr},
		{[]string{"address"}, []interface{}{"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAeD"}, &addrErr},
		{[]string{"address"}, []interface{}{"0x1234"}, &addrErr},
		{[]string{"address"}, []interface{}{"5aaeb6053f3e94c9b9a09f33669435e7ef1beaed"}, &addrErr},
		{[]string{"bool"}, []interface{}{1}, &boolErr},
		{[]string{"uint256"}, []interface{}{"42"}, &mismatchErr},
		{[]string{"string"}, []interface{}{42}, &mismatchErr},
	}
	for i, test := range tests {
		_, err := mustArgs(t, test.kinds...).Pack(test.values...)
		if err == nil {
			t.Errorf("test %d (%v): expected error", i, test.kinds)
			continue
		}
		if !errors.As(err, test.target) {
			t.Errorf("test %d (%v): wrong error type %T: %v", i, test.kinds, err, err)
		}
	}
}

func TestPackAcceptedInputs(t *testing.T) {
	t.Parallel()
	addr := common.HexToAddress("0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed")
	tests := []struct {
		kind   string
		values []interface{}
	}{
		{"uint64", []interface{}{42, int64(42), uint64(42), big.NewInt(42), *big.NewInt(42), uint256.NewInt(42), *uint256.NewInt(42)}},
		{"address", []interface{}{addr, &addr, [20]byte(addr), "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed", "0x5AAEB6053F3E94C9B9A09F33669435E7EF1BEAED"}},
		{"bytes2", []interface{}{[]byte{1, 2}, hexutil.Bytes{1, 2}, [2]byte{1, 2}, "0x0102"}},
	}
	for _, test := range tests {
		args := mustArgs(t, test.kind)
		first, err := args.Pack(test.values[0])
		if err != nil {
			t.Fatalf("%s: %v", test.kind, err)
		}
		for i, v := range test.values[1:] {
			packed, err := args.Pack(v)
			if err != nil {
				t.Errorf("%s: value %d (%T) rejected: %v", test.kind, i+1, v, err)
				continue
			}
			if !bytes.Equal(packed, first) {
				t.Errorf("%s: value %d (%T) encodes differently: %x != %x", test.kind, i+1, v, packed, first)
			}
		}
	}
}
