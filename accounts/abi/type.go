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
	"regexp"
	"strconv"
	"strings"
)

// Type enumerator
const (
	IntTy byte = iota
	UintTy
	BoolTy
	StringTy
	SliceTy
	ArrayTy
	TupleTy
	AddressTy
	FixedBytesTy
	BytesTy
)

// Type is the reflection of the supported argument type.
// Type 是对支持的参数类型的反射。
type Type struct {
	Elem *Type // 数组或切片的元素类型
	Size int   // 整数位宽、bytesN 的字节数或定长数组长度
	T    byte  // Our own type checking

	stringKind string // canonical form used for signatures 用于派生签名的规范形式

	// Tuple relative fields
	TupleRawName  string   // Raw struct name defined in source code, may be empty.
	TupleElems    []*Type  // Type information of all tuple fields
	TupleRawNames []string // Raw field name of all tuple fields, may contain empty names
}

// typeRegex parses the abi sub types: a lower case base name followed by an
// optional bit or byte width.
// typeRegex 解析 ABI 子类型：基础名称后跟可选的位宽或字节宽度。
var typeRegex = regexp.MustCompile(`^([a-z]+)([0-9]*)$`)

// maxTypeSize bounds the encoded head size of a fixed array type in bytes.
// No real payload comes close, and it keeps size arithmetic from overflowing.
const maxTypeSize = 1 << 30

// NewType creates a new reflection type of abi type given in t.
//
// Every call builds a fresh descriptor. Two tuples sharing the string "tuple"
// can carry different components, so descriptors are never cached by name.
// NewType 根据给定的 t 创建一个新的 ABI 类型描述。每次调用都会构建新的描述符，
// 不按类型字符串缓存，因为两个 "tuple" 可以有不同的成员。
func NewType(t string, internalType string, components []ArgumentMarshaling) (typ Type, err error) {
	// check that array brackets are equal if they exist
	// 检查数组括号是否存在且数量相等
	if strings.Count(t, "[") != strings.Count(t, "]") {
		return Type{}, &InvalidAbiTypeError{Type: t}
	}
	typ.stringKind = t

	// if there are brackets, get ready to go into slice/array mode and
	// recursively create the type
	// 如果有括号，准备进入切片/数组模式并递归创建类型
	if strings.Count(t, "[") != 0 {
		// Note internalType can be empty here.
		subInternal := internalType
		if i := strings.LastIndex(internalType, "["); i != -1 {
			subInternal = subInternal[:i]
		}
		i := strings.LastIndex(t, "[")
		sliced := t[i:]
		if !strings.HasSuffix(sliced, "]") {
			return Type{}, &InvalidAbiTypeError{Type: t}
		}
		embeddedType, err := NewType(t[:i], subInternal, components)
		if err != nil {
			return Type{}, err
		}
		typ.Elem = &embeddedType
		typ.stringKind = embeddedType.stringKind + sliced

		if size := sliced[1 : len(sliced)-1]; size == "" {
			// is a slice
			typ.T = SliceTy
		} else {
			// is an array
			n, err := strconv.Atoi(size)
			if err != nil || n <= 0 || size[0] < '1' || size[0] > '9' {
				return Type{}, &InvalidAbiTypeError{Type: t}
			}
			// The head of the array must stay addressable.
			// 数组在头部占用的字节数不能超过 maxTypeSize。
			if elemSize := getTypeSize(embeddedType); n > maxTypeSize/elemSize {
				return Type{}, &InvalidAbiTypeError{Type: t}
			}
			typ.T = ArrayTy
			typ.Size = n
		}
		return typ, nil
	}
	// parse the type and size of the abi-type.
	// 解析 ABI 类型的类型和大小。
	matches := typeRegex.FindStringSubmatch(t)
	if matches == nil {
		if t == "" || !strings.HasPrefix(internalType, "contract ") {
			return Type{}, &InvalidAbiTypeError{Type: t}
		}
		matches = []string{t, t, ""}
	}
	// varSize is the size of the variable
	var varSize int
	if len(matches[2]) > 0 {
		if matches[2][0] == '0' {
			return Type{}, &InvalidAbiTypeError{Type: t}
		}
		varSize, err = strconv.Atoi(matches[2])
		if err != nil {
			return Type{}, &InvalidAbiTypeError{Type: t}
		}
	}
	hasSize := len(matches[2]) > 0

	// varType is the parsed abi type
	switch varType := matches[1]; varType {
	case "int", "uint":
		if !hasSize {
			// uint and int are aliases of uint256 and int256
			// uint 和 int 是 uint256 和 int256 的别名
			varSize = 256
			typ.stringKind = varType + "256"
		}
		if varSize < 8 || varSize > 256 || varSize%8 != 0 {
			return Type{}, &InvalidAbiTypeError{Type: t}
		}
		typ.Size = varSize
		typ.T = IntTy
		if varType == "uint" {
			typ.T = UintTy
		}
	case "bool":
		if hasSize {
			return Type{}, &InvalidAbiTypeError{Type: t}
		}
		typ.T = BoolTy
	case "address":
		if hasSize {
			return Type{}, &InvalidAbiTypeError{Type: t}
		}
		typ.Size = 20
		typ.T = AddressTy
	case "string":
		if hasSize {
			return Type{}, &InvalidAbiTypeError{Type: t}
		}
		typ.T = StringTy
	case "bytes":
		if !hasSize {
			typ.T = BytesTy
		} else {
			if varSize > 32 {
				return Type{}, &InvalidAbiTypeError{Type: t}
			}
			typ.T = FixedBytesTy
			typ.Size = varSize
		}
	case "tuple":
		if hasSize || len(components) == 0 {
			return Type{}, &InvalidAbiTypeError{Type: t}
		}
		var (
			elems []*Type
			names []string
			kinds []string
		)
		for _, c := range components {
			cType, err := NewType(c.Type, c.InternalType, c.Components)
			if err != nil {
				return Type{}, err
			}
			elems = append(elems, &cType)
			names = append(names, c.Name)
			kinds = append(kinds, cType.stringKind)
		}
		typ.TupleElems = elems
		typ.TupleRawNames = names
		typ.T = TupleTy
		typ.stringKind = "(" + strings.Join(kinds, ",") + ")"

		const structPrefix = "struct "
		// After solidity 0.5.10, a new field of abi "internalType"
		// is introduced. From that we can obtain the struct name
		// user defined in the source code.
		if strings.HasPrefix(internalType, structPrefix) {
			// Foo.Bar type definition is not allowed in golang,
			// convert the format to FooBar
			typ.TupleRawName = strings.ReplaceAll(internalType[len(structPrefix):], ".", "")
		}
	default:
		// Contract types are encoded as their address.
		// 合约类型按地址编码。
		if strings.HasPrefix(internalType, "contract ") {
			typ.Size = 20
			typ.T = AddressTy
			typ.stringKind = "address"
		} else {
			return Type{}, &InvalidAbiTypeError{Type: t}
		}
	}
	return typ, nil
}

// String implements Stringer. It returns the canonical form used in
// signatures, with tuples expanded and integer aliases resolved.
// String 实现 Stringer 接口，返回签名中使用的规范形式。
func (t Type) String() (out string) {
	return t.stringKind
}

// IsDynamic reports whether values of the type are encoded out of line.
func (t Type) IsDynamic() bool {
	return isDynamicType(t)
}

// requiresLengthPrefix returns whether the type requires any sort of length
// prefixing.
func (t Type) requiresLengthPrefix() bool {
	return t.T == StringTy || t.T == BytesTy || t.T == SliceTy
}

// isDynamicType returns true if the type is dynamic.
// The following types are called “dynamic”:
// * bytes
// * string
// * T[] for any T
// * T[k] for any dynamic T and any k >= 0
// * (T1,...,Tk) if Ti is dynamic for some 1 <= i <= k
// isDynamicType 如果类型是动态的，则返回 true。
func isDynamicType(t Type) bool {
	if t.T == TupleTy {
		for _, elem := range t.TupleElems {
			if isDynamicType(*elem) {
				return true
			}
		}
		return false
	}
	return t.T == StringTy || t.T == BytesTy || t.T == SliceTy || (t.T == ArrayTy && isDynamicType(*t.Elem))
}

// getTypeSize returns the size that this type needs to occupy.
// We distinguish static and dynamic types. Static types are encoded in-place
// and dynamic types are encoded at a separately allocated location after the
// current block.
// So for a static variable, the size returned represents the size that the
// variable actually occupies.
// For a dynamic variable, the returned size is fixed 32 bytes, which is used
// to store the location reference for actual value storage.
// getTypeSize 返回此类型在头部需要占用的空间大小。静态类型原地编码，
// 动态类型固定占用 32 字节用于存放偏移量。
func getTypeSize(t Type) int {
	if t.T == ArrayTy && !isDynamicType(*t.Elem) {
		// Recursively calculate type size if it is a nested array
		if t.Elem.T == ArrayTy || t.Elem.T == TupleTy {
			return t.Size * getTypeSize(*t.Elem)
		}
		return t.Size * 32
	} else if t.T == TupleTy && !isDynamicType(t) {
		total := 0
		for _, elem := range t.TupleElems {
			total += getTypeSize(*elem)
		}
		return total
	}
	return 32
}

// repeat returns n references to the same element type, the parameter list
// of an array with n elements.
func repeat(elem *Type, n int) []*Type {
	types := make([]*Type, n)
	for i := range types {
		types[i] = elem
	}
	return types
}
