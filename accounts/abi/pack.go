// Copyright 2016 The go-ethereum Authors
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
	"math/big"

	"github.com/holiman/uint256"
	"github.com/sunyihoo/ethabi/common"
	"github.com/sunyihoo/ethabi/common/math"
)

// 以太坊 ABI 要求所有数据都对齐到 32 字节：数字和地址左填充，bytesN/bytes/string 右填充。
// 动态类型（string、bytes、T[] 以及包含它们的数组和元组）在头部只写一个偏移量，内容写在尾部。

// packList encodes values as a parameter list using the head/tail layout.
// It serves top-level argument lists, tuples and the elements of arrays.
//
// enc(X) = head(X(1)) ... head(X(k)) tail(X(1)) ... tail(X(k))
//
// where for a static Ti head(X(i)) = enc(X(i)) and tail(X(i)) is empty, and
// for a dynamic Ti head(X(i)) is the offset of tail(X(i)) counted from the
// start of the list and tail(X(i)) = enc(X(i)).
// packList 使用 head/tail 布局将值编码为参数列表，用于顶层参数列表、元组和数组元素。
// 偏移量从列表起始位置开始计算。
func packList(types []*Type, values []interface{}) ([]byte, error) {
	if len(types) != len(values) {
		return nil, &LengthMismatchError{Expected: len(types), Given: len(values)}
	}
	// Calculate prefix occupied size.
	// 计算头部占用的大小。
	headSize := 0
	for _, t := range types {
		headSize += getTypeSize(*t)
	}
	var head, tail []byte
	for i, t := range types {
		packed, err := t.pack(values[i])
		if err != nil {
			return nil, err
		}
		if isDynamicType(*t) {
			head = append(head, packNum(headSize+len(tail))...)
			tail = append(tail, packed...)
		} else {
			head = append(head, packed...)
		}
	}
	return append(head, tail...), nil
}

// pack encodes a single value of type t. Static values return their full
// inline encoding, dynamic values return the payload that goes to the tail.
// pack 编码单个类型为 t 的值。静态值返回完整的内联编码，动态值返回写入尾部的内容。
func (t Type) pack(value interface{}) ([]byte, error) {
	switch t.T {
	case IntTy, UintTy:
		return packInteger(t, value)
	case BoolTy:
		b, err := toBool(value)
		if err != nil {
			return nil, err
		}
		return packBool(b), nil
	case AddressTy:
		addr, err := toAddress(t, value)
		if err != nil {
			return nil, err
		}
		return common.LeftPadBytes(addr[:], 32), nil
	case FixedBytesTy:
		b, err := toBytes(t, value)
		if err != nil {
			return nil, err
		}
		if len(b) != t.Size {
			return nil, &BytesSizeMismatchError{Type: t.String(), Expected: t.Size, Given: len(b)}
		}
		return common.RightPadBytes(common.CopyBytes(b), 32), nil
	case BytesTy:
		b, err := toBytes(t, value)
		if err != nil {
			return nil, err
		}
		return packBytesSlice(b, len(b)), nil
	case StringTy:
		s, err := toString(t, value)
		if err != nil {
			return nil, err
		}
		return packBytesSlice([]byte(s), len(s)), nil
	case SliceTy, ArrayTy:
		elems, err := toElements(t, value)
		if err != nil {
			return nil, err
		}
		if t.T == ArrayTy && len(elems) != t.Size {
			return nil, &ArrayLengthMismatchError{Type: t.String(), Expected: t.Size, Given: len(elems)}
		}
		packed, err := packList(repeat(t.Elem, len(elems)), elems)
		if err != nil {
			return nil, err
		}
		if t.requiresLengthPrefix() {
			// append length
			// 动态数组需要额外的元素个数前缀
			return append(packNum(len(elems)), packed...), nil
		}
		return packed, nil
	case TupleTy:
		values, err := toTupleValues(t, value)
		if err != nil {
			return nil, err
		}
		return packList(t.TupleElems, values)
	default:
		return nil, &InvalidAbiTypeError{Type: t.String()}
	}
}

// packBytesSlice packs the given bytes as [L, V] as the canonical representation
// bytes slice.
// packBytesSlice 将给定的字节数据打包为 [L, V] 的规范表示形式，
// L 表示长度，V 表示右填充到 32 字节对齐的数据。
func packBytesSlice(bytes []byte, l int) []byte {
	len := packNum(l)
	return append(len, common.RightPadBytes(bytes, (l+31)/32*32)...)
}

// packBool encodes a boolean as a word of 0 or 1.
func packBool(b bool) []byte {
	if b {
		return math.PaddedBigBytes(common.Big1, 32)
	}
	return math.PaddedBigBytes(common.Big0, 32)
}

// packInteger range checks value against the declared width of t and returns
// its 32 byte big-endian two's complement encoding.
// packInteger 按 t 声明的位宽检查取值范围，并返回 32 字节大端二进制补码编码。
func packInteger(t Type, value interface{}) ([]byte, error) {
	n, err := toBigInt(t, value)
	if err != nil {
		return nil, err
	}
	min, max := integerBounds(t)
	if n.Cmp(min) < 0 || n.Cmp(max) > 0 {
		return nil, &IntegerOutOfRangeError{Type: t.String(), Value: n, Min: min, Max: max}
	}
	// FromBig wraps negative numbers into two's complement.
	word, _ := uint256.FromBig(n)
	b := word.Bytes32()
	return b[:], nil
}

// integerBounds returns the inclusive range of an integer type.
func integerBounds(t Type) (min, max *big.Int) {
	if t.T == IntTy {
		return math.SignedBounds(t.Size)
	}
	return math.UnsignedBounds(t.Size)
}

// packNum packs a non-negative length or offset into a word.
// packNum 将非负的长度或偏移量打包为一个字。
func packNum(n int) []byte {
	b := new(uint256.Int).SetUint64(uint64(n)).Bytes32()
	return b[:]
}
