// Copyright 2015 The go-ethereum Authors
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
	"reflect"
	"strings"
	"testing"

	"github.com/sunyihoo/ethabi/common"
	"github.com/sunyihoo/ethabi/common/hexutil"
)

const erc20JSON = `[
	{"type":"constructor","inputs":[{"name":"supply","type":"uint256"},{"name":"symbol","type":"string"}]},
	{"type":"function","name":"balanceOf","stateMutability":"view","inputs":[{"name":"owner","type":"address"}],"outputs":[{"name":"balance","type":"uint256"}]},
	{"type":"function","name":"transfer","inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"transfer","inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]},
	{"type":"event","name":"Transfer","inputs":[{"name":"from","type":"address","indexed":true},{"name":"to","type":"address","indexed":true},{"name":"value","type":"uint256"}]},
	{"type":"error","name":"InsufficientBalance","inputs":[{"name":"available","type":"uint256"},{"name":"required","type":"uint256"}]},
	{"type":"fallback","stateMutability":"nonpayable"},
	{"type":"receive","stateMutability":"payable"}
]`

const overloadJSON = `[
	{"type":"function","name":"foo","inputs":[{"name":"a","type":"uint256"}]},
	{"type":"function","name":"foo","inputs":[{"name":"a","type":"address"}]},
	{"type":"function","name":"foo","inputs":[{"name":"a","type":"uint256"},{"name":"b","type":"uint256"}]},
	{"type":"function","name":"bar","inputs":[{"name":"a","type":"uint256"}]},
	{"type":"function","name":"bar","inputs":[{"name":"a","type":"uint128"}]}
]`

var (
	alice = common.HexToAddress("0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed")
	bob   = common.HexToAddress("0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359")
)

func mustJSON(t *testing.T, def string) ABI {
	t.Helper()
	parsed, err := JSON(strings.NewReader(def))
	if err != nil {
		t.Fatalf("failed to parse abi: %v", err)
	}
	return parsed
}

func TestReader(t *testing.T) {
	t.Parallel()
	parsed := mustJSON(t, erc20JSON)

	if len(parsed.Methods) != 2 {
		t.Fatalf("duplicate function not collapsed: %d methods", len(parsed.Methods))
	}
	if _, ok := parsed.Methods["transfer0"]; ok {
		t.Fatalf("identical redeclaration must not create an overload")
	}
	if !parsed.HasFallback() || !parsed.HasReceive() {
		t.Fatalf("fallback or receive missing")
	}
	if len(parsed.Constructor.Inputs) != 2 {
		t.Fatalf("constructor inputs: have %d, want 2", len(parsed.Constructor.Inputs))
	}
	method := parsed.Methods["balanceOf"]
	if method.Sig != "balanceOf(address)" || !bytes.Equal(method.ID, common.FromHex("70a08231")) {
		t.Fatalf("balanceOf: sig %s id %x", method.Sig, method.ID)
	}
	if method.StateMutability != "view" || !method.IsConstant() {
		t.Fatalf("balanceOf should be a view function")
	}
	event := parsed.Events["Transfer"]
	if event.ID != common.HexToHash("0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef") {
		t.Fatalf("Transfer topic: %x", event.ID)
	}
	custom := parsed.Errors["InsufficientBalance"]
	if !bytes.Equal(custom.Selector(), common.FromHex("cf479181")) {
		t.Fatalf("InsufficientBalance selector: %x", custom.Selector())
	}
}

func TestReaderErrors(t *testing.T) {
	t.Parallel()
	tests := []string{
		`{"type":"function"}`,
		`[{"type":"frobnicate","name":"x"}]`,
		`[{"type":"function","name":"f","inputs":[{"name":"a","type":"uint7"}]}]`,
		`[{"type":"receive","stateMutability":"nonpayable"}]`,
		`[{"type":"fallback"},{"type":"fallback"}]`,
	}
	for i, def := range tests {
		if _, err := JSON(strings.NewReader(def)); err == nil {
			t.Errorf("test %d: expected error for %s", i, def)
		}
	}
}

func TestOverloadNames(t *testing.T) {
	t.Parallel()
	parsed := mustJSON(t, overloadJSON)
	want := map[string]string{
		"foo":  "foo(uint256)",
		"foo0": "foo(address)",
		"foo1": "foo(uint256,uint256)",
		"bar":  "bar(uint256)",
		"bar0": "bar(uint128)",
	}
	for name, sig := range want {
		method, ok := parsed.Methods[name]
		if !ok {
			t.Errorf("method %s missing", name)
			continue
		}
		if method.Sig != sig {
			t.Errorf("method %s: sig %s, want %s", name, method.Sig, sig)
		}
		if method.RawName != strings.TrimRight(name, "01") {
			t.Errorf("method %s: raw name %s", name, method.RawName)
		}
	}
}

func TestOverloads(t *testing.T) {
	t.Parallel()
	parsed := mustJSON(t, overloadJSON)

	var sigs []string
	for _, m := range parsed.Overloads("foo") {
		sigs = append(sigs, m.Sig)
	}
	if want := []string{"foo(uint256)", "foo(address)", "foo(uint256,uint256)"}; !reflect.DeepEqual(sigs, want) {
		t.Errorf("overloads of foo: have %v, want %v", sigs, want)
	}
	if got := parsed.Overloads("foo0"); len(got) != 1 || got[0].Sig != "foo(address)" {
		t.Errorf("resolved name foo0: have %v", got)
	}
	if got := parsed.Overloads("baz"); len(got) != 0 {
		t.Errorf("unknown name returned %d overloads", len(got))
	}
}

func TestEncodeFunctionData(t *testing.T) {
	t.Parallel()
	parsed := mustJSON(t, erc20JSON)
	data, err := parsed.EncodeFunctionData("transfer", alice, big.NewInt(1000))
	if err != nil {
		t.Fatal(err)
	}
	want := append(common.FromHex("a9059cbb"), hexWords(word("5aaeb6053f3e94c9b9a09f33669435e7ef1beaed"), word("03e8"))...)
	if !bytes.Equal(data, want) {
		t.Fatalf("calldata mismatch:\nhave %x\nwant %x", data, want)
	}
	// Pack addresses the same function by resolved name.
	packed, err := parsed.Pack("transfer", alice, big.NewInt(1000))
	if err != nil || !bytes.Equal(packed, want) {
		t.Fatalf("Pack mismatch: %x, %v", packed, err)
	}
	// The selector of a method must not be shared with the encoding.
	method := parsed.Methods["transfer"]
	if !bytes.Equal(method.ID, common.FromHex("a9059cbb")) {
		t.Fatalf("method id modified: %x", method.ID)
	}

	var notFound *ItemNotFoundError
	if _, err := parsed.EncodeFunctionData("mint", alice); !errors.As(err, &notFound) {
		t.Fatalf("expected ItemNotFoundError, got %v", err)
	}
	var mismatch *LengthMismatchError
	if _, err := parsed.EncodeFunctionData("transfer", alice); !errors.As(err, &mismatch) {
		t.Fatalf("expected LengthMismatchError, got %v", err)
	}
}

func TestOverloadResolution(t *testing.T) {
	t.Parallel()
	parsed := mustJSON(t, overloadJSON)

	// Permissive resolution picks the first overload by argument count.
	data, err := parsed.EncodeFunctionData("foo", big.NewInt(1))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data[:4], common.FromHex("2fbebd38")) {
		t.Errorf("foo(uint256) selector: %x", data[:4])
	}
	data, err = parsed.EncodeFunctionData("foo", big.NewInt(1), big.NewInt(2))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data[:4], common.FromHex("04bc52f8")) {
		t.Errorf("foo(uint256,uint256) selector: %x", data[:4])
	}
	var typeErr *TypeMismatchError
	if _, err := parsed.EncodeFunctionData("foo", alice); !errors.As(err, &typeErr) {
		t.Errorf("permissive: expected TypeMismatchError, got %v", err)
	}

	// Strict resolution finds the only overload accepting the value.
	data, err = parsed.EncodeFunctionDataStrict("foo", alice)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data[:4], common.FromHex("fdf80bda")) {
		t.Errorf("foo(address) selector: %x", data[:4])
	}
	var ambiguous *AmbiguousOverloadError
	if _, err := parsed.EncodeFunctionDataStrict("bar", big.NewInt(1)); !errors.As(err, &ambiguous) {
		t.Fatalf("expected AmbiguousOverloadError, got %v", err)
	}
	if len(ambiguous.Signatures) != 2 {
		t.Errorf("ambiguous signatures: %v", ambiguous.Signatures)
	}
	if _, err := parsed.EncodeFunctionDataStrict("foo", "nope"); err == nil {
		t.Errorf("strict: expected error when no overload matches")
	}
	// A resolved name bypasses overload selection.
	data, err = parsed.EncodeFunctionDataStrict("bar0", big.NewInt(1))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data[:4], parsed.Methods["bar0"].ID) {
		t.Errorf("bar0 selector: %x", data[:4])
	}
}

func TestDecodeFunctionData(t *testing.T) {
	t.Parallel()
	parsed := mustJSON(t, erc20JSON)
	data, err := parsed.EncodeFunctionData("transfer", bob, big.NewInt(7))
	if err != nil {
		t.Fatal(err)
	}
	method, args, err := parsed.DecodeFunctionData(data)
	if err != nil {
		t.Fatal(err)
	}
	if method.Name != "transfer" {
		t.Fatalf("decoded method %s", method.Name)
	}
	if to, _ := args.Get("to"); to != bob {
		t.Errorf("to: have %v, want %v", to, bob)
	}
	if amount, _ := args.Get("amount"); amount.(*big.Int).Int64() != 7 {
		t.Errorf("amount: have %v", amount)
	}

	var notFound *SignatureNotFoundError
	if _, _, err := parsed.DecodeFunctionData(common.FromHex("deadbeef")); !errors.As(err, &notFound) {
		t.Errorf("expected SignatureNotFoundError, got %v", err)
	}
	if _, _, err := parsed.DecodeFunctionData([]byte{0xa9, 0x05}); err == nil {
		t.Errorf("expected error for short call data")
	}
}

func TestFunctionResult(t *testing.T) {
	t.Parallel()
	parsed := mustJSON(t, erc20JSON)
	data, err := parsed.EncodeFunctionResult("balanceOf", big.NewInt(69420))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, hexWords(word("010f2c"))) {
		t.Fatalf("result encoding: %x", data)
	}
	values, err := parsed.DecodeFunctionResult("balanceOf", data)
	if err != nil {
		t.Fatal(err)
	}
	if balance, ok := values.Get("balance"); !ok || balance.(*big.Int).Int64() != 69420 {
		t.Fatalf("balance: %v", values)
	}
	// Unnamed outputs are positional.
	values, err = parsed.DecodeFunctionResult("transfer", hexWords(word("01")))
	if err != nil {
		t.Fatal(err)
	}
	if values.Named() || values.At(0) != true {
		t.Fatalf("transfer result: %v", values)
	}

	if _, err := parsed.DecodeFunctionResult("balanceOf", nil); !errors.Is(err, ErrZeroData) {
		t.Errorf("expected ErrZeroData, got %v", err)
	}
	var sizeErr *DataSizeInvalidError
	if _, err := parsed.DecodeFunctionResult("balanceOf", make([]byte, 31)); !errors.As(err, &sizeErr) {
		t.Errorf("expected DataSizeInvalidError, got %v", err)
	}
	var notFound *ItemNotFoundError
	if _, err := parsed.DecodeFunctionResult("totalSupply", data); !errors.As(err, &notFound) {
		t.Errorf("expected ItemNotFoundError, got %v", err)
	}
}

func TestEncodeDeployData(t *testing.T) {
	t.Parallel()
	parsed := mustJSON(t, erc20JSON)
	bytecode := common.FromHex("6080604052")
	data, err := parsed.EncodeDeployData(bytecode, big.NewInt(1), "TKN")
	if err != nil {
		t.Fatal(err)
	}
	want := append(common.CopyBytes(bytecode), hexWords(word("01"), word("40"), word("03"), rword("544b4e"))...)
	if !bytes.Equal(data, want) {
		t.Fatalf("deploy data mismatch:\nhave %x\nwant %x", data, want)
	}
	if !bytes.Equal(bytecode, common.FromHex("6080604052")) {
		t.Fatalf("bytecode modified")
	}
	// Without a declared constructor only the bytecode remains.
	empty := mustJSON(t, overloadJSON)
	data, err = empty.EncodeDeployData(bytecode)
	if err != nil || !bytes.Equal(data, bytecode) {
		t.Fatalf("deploy without constructor: %x, %v", data, err)
	}
}

func TestErrorResults(t *testing.T) {
	t.Parallel()
	parsed := mustJSON(t, erc20JSON)

	data, err := parsed.EncodeErrorResult("InsufficientBalance", big.NewInt(1), big.NewInt(2))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data[:4], common.FromHex("cf479181")) {
		t.Fatalf("custom error selector: %x", data[:4])
	}
	name, args, err := parsed.DecodeErrorResult(data)
	if err != nil {
		t.Fatal(err)
	}
	if name != "InsufficientBalance" {
		t.Fatalf("decoded error %s", name)
	}
	if required, _ := args.Get("required"); required.(*big.Int).Int64() != 2 {
		t.Fatalf("required: %v", args)
	}

	revert, err := parsed.EncodeErrorResult("Error", "not enough")
	if err != nil {
		t.Fatal(err)
	}
	want := append(common.FromHex("08c379a0"), hexWords(word("20"), word("0a"), rword(hexutil.Encode([]byte("not enough"))[2:]))...)
	if !bytes.Equal(revert, want) {
		t.Fatalf("revert encoding:\nhave %x\nwant %x", revert, want)
	}
	name, args, err = parsed.DecodeErrorResult(revert)
	if err != nil || name != "Error" || args.At(0) != "not enough" {
		t.Fatalf("decoded revert: %s %v %v", name, args, err)
	}
	reason, err := UnpackRevert(revert)
	if err != nil || reason != "not enough" {
		t.Fatalf("revert reason: %q, %v", reason, err)
	}

	var notFound *SignatureNotFoundError
	if _, _, err := parsed.DecodeErrorResult(common.FromHex("deadbeef")); !errors.As(err, &notFound) {
		t.Fatalf("expected SignatureNotFoundError, got %v", err)
	}
}

func TestUnpackRevert(t *testing.T) {
	t.Parallel()
	var abi ABI
	tests := []struct {
		code *big.Int
		want string
	}{
		{big.NewInt(0x01), "assert(false)"},
		{big.NewInt(0x11), "arithmetic underflow or overflow"},
		{big.NewInt(0x12), "division or modulo by zero"},
		{big.NewInt(0x99), "unknown panic code: 0x99"},
	}
	for _, test := range tests {
		data, err := abi.EncodeErrorResult("Panic", test.code)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(data[:4], common.FromHex("4e487b71")) {
			t.Fatalf("panic selector: %x", data[:4])
		}
		reason, err := UnpackRevert(data)
		if err != nil {
			t.Fatal(err)
		}
		if reason != test.want {
			t.Errorf("code %#x: reason %q, want %q", test.code, reason, test.want)
		}
	}
	if _, err := UnpackRevert(common.FromHex("deadbeef")); err == nil {
		t.Errorf("expected error for unknown selector")
	}
	if _, err := UnpackRevert([]byte{0x08}); err == nil {
		t.Errorf("expected error for short data")
	}
}
