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
	"errors"
	"strings"
	"testing"
)

func TestTypeCanonicalForm(t *testing.T) {
	t.Parallel()
	tests := []struct {
		typ        string
		components []ArgumentMarshaling
		want       string
		kind       byte
		dynamic    bool
		size       int
	}{
		{"uint", nil, "uint256", UintTy, false, 32},
		{"int", nil, "int256", IntTy, false, 32},
		{"uint8", nil, "uint8", UintTy, false, 32},
		{"int24", nil, "int24", IntTy, false, 32},
		{"bool", nil, "bool", BoolTy, false, 32},
		{"address", nil, "address", AddressTy, false, 32},
		{"bytes1", nil, "bytes1", FixedBytesTy, false, 32},
		{"bytes32", nil, "bytes32", FixedBytesTy, false, 32},
		{"bytes", nil, "bytes", BytesTy, true, 32},
		{"string", nil, "string", StringTy, true, 32},
		{"uint[]", nil, "uint256[]", SliceTy, true, 32},
		{"uint256[3]", nil, "uint256[3]", ArrayTy, false, 96},
		{"uint256[2][3]", nil, "uint256[2][3]", ArrayTy, false, 192},
		{"string[2]", nil, "string[2]", ArrayTy, true, 32},
		{"bytes32[][2]", nil, "bytes32[][2]", ArrayTy, true, 32},
		{"tuple", []ArgumentMarshaling{{Name: "a", Type: "uint"}, {Name: "b", Type: "bool"}}, "(uint256,bool)", TupleTy, false, 64},
		{"tuple", []ArgumentMarshaling{{Name: "a", Type: "uint256"}, {Name: "b", Type: "string"}}, "(uint256,string)", TupleTy, true, 32},
		{"tuple[2]", []ArgumentMarshaling{{Name: "a", Type: "uint256"}, {Name: "b", Type: "address"}}, "(uint256,address)[2]", ArrayTy, false, 128},
		{"tuple[]", []ArgumentMarshaling{{Name: "a", Type: "uint256"}}, "(uint256)[]", SliceTy, true, 32},
		{"tuple", []ArgumentMarshaling{
			{Name: "inner", Type: "tuple", Components: []ArgumentMarshaling{{Name: "x", Type: "int8"}, {Name: "y", Type: "bytes"}}},
			{Name: "z", Type: "uint256[2]"},
		}, "((int8,bytes),uint256[2])", TupleTy, true, 32},
	}
	for i, test := range tests {
		typ, err := NewType(test.typ, "", test.components)
		if err != nil {
			t.Fatalf("test %d (%s): unexpected error: %v", i, test.typ, err)
		}
		if typ.String() != test.want {
			t.Errorf("test %d: canonical form mismatch: have %s, want %s", i, typ.String(), test.want)
		}
		if typ.T != test.kind {
			t.Errorf("test %d (%s): kind mismatch: have %d, want %d", i, test.typ, typ.T, test.kind)
		}
		if typ.IsDynamic() != test.dynamic {
			t.Errorf("test %d (%s): dynamic mismatch: have %v, want %v", i, test.typ, typ.IsDynamic(), test.dynamic)
		}
		if size := getTypeSize(typ); size != test.size {
			t.Errorf("test %d (%s): head size mismatch: have %d, want %d", i, test.typ, size, test.size)
		}
	}
}

func TestInvalidTypes(t *testing.T) {
	t.Parallel()
	for _, typ := range []string{
		"", "uint7", "uint0", "uint264", "int257", "int08", "bytes0", "bytes33",
		"fixed", "ufixed128x18", "function", "bool8", "address20", "string1",
		"uint256[", "uint256]", "uint256[0]", "uint256[01]", "uint256[-1]", "uint256[a]",
		"tuple", "Uint256", "foo",
		"uint8[576460752303423488]", "uint256[33554433]", "uint8[2][576460752303423488]",
		"uint8[576460752303423488][2]", "string[33554433]", "uint256[1024][32769]",
	} {
		_, err := NewType(typ, "", nil)
		var invalid *InvalidAbiTypeError
		if !errors.As(err, &invalid) {
			t.Errorf("type %q: expected InvalidAbiTypeError, got %v", typ, err)
		}
	}
}

func TestArraySizeLimit(t *testing.T) {
	t.Parallel()
	typ, err := NewType("uint256[33554432]", "", nil)
	if err != nil {
		t.Fatalf("largest array rejected: %v", err)
	}
	if size := getTypeSize(typ); size != maxTypeSize {
		t.Errorf("head size mismatch: have %d, want %d", size, maxTypeSize)
	}
	// An oversized array in a JSON ABI fails at parse time instead of at decode time.
	_, err = JSON(strings.NewReader(`[{"type":"function","name":"f","inputs":[],"outputs":[{"name":"","type":"uint8[576460752303423488]"}]}]`))
	var invalid *InvalidAbiTypeError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidAbiTypeError, got %v", err)
	}
}

func TestContractInternalType(t *testing.T) {
	t.Parallel()
	typ, err := NewType("IERC20", "contract IERC20", nil)
	if err != nil {
		t.Fatal(err)
	}
	if typ.T != AddressTy || typ.String() != "address" {
		t.Fatalf("contract type not mapped to address: %v", typ)
	}
}

// Structurally different tuples share the type string "tuple" and must not
// influence each other.
func TestTupleTypesAreIndependent(t *testing.T) {
	t.Parallel()
	a, err := NewType("tuple", "", []ArgumentMarshaling{{Name: "a", Type: "uint256"}})
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewType("tuple", "", []ArgumentMarshaling{{Name: "b", Type: "string"}})
	if err != nil {
		t.Fatal(err)
	}
	if a.String() != "(uint256)" || b.String() != "(string)" {
		t.Fatalf("tuple types leaked: %s %s", a, b)
	}
	if a.IsDynamic() || !b.IsDynamic() {
		t.Fatalf("tuple classification leaked")
	}
}

// The static/dynamic classification of a type is the same at the top level
// and nested inside a tuple or an array.
func TestClassificationInvariance(t *testing.T) {
	t.Parallel()
	for _, kind := range []string{"uint256", "bytes", "string", "uint8[2]", "string[2]", "address[]"} {
		top, err := NewType(kind, "", nil)
		if err != nil {
			t.Fatal(err)
		}
		tuple, err := NewType("tuple", "", []ArgumentMarshaling{{Name: "v", Type: kind}})
		if err != nil {
			t.Fatal(err)
		}
		array, err := NewType(kind+"[1]", "", nil)
		if err != nil {
			t.Fatal(err)
		}
		if top.IsDynamic() != tuple.IsDynamic() || top.IsDynamic() != array.IsDynamic() {
			t.Errorf("%s: classification differs: top %v, tuple %v, array %v", kind, top.IsDynamic(), tuple.IsDynamic(), array.IsDynamic())
		}
	}
}
