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
	"github.com/sunyihoo/ethabi/common"
)

// EncodePacked returns the non-standard packed encoding of values, the one
// Solidity's abi.encodePacked produces. Integers take their own width, bool
// one byte, address 20 bytes and bytesN N bytes. string and bytes are written
// as is without a length. Array elements are padded to 32 bytes each. Tuples
// are not supported.
//
// The encoding is ambiguous for adjacent dynamic values and is meant for
// hashing, e.g. keccak256(abi.encodePacked(...)).
// EncodePacked 返回 Solidity abi.encodePacked 使用的紧凑编码：整数按自身位宽，bool 1 字节，
// 地址 20 字节，bytesN 为 N 字节，string 和 bytes 原样写入且不带长度，数组元素各自填充到 32 字节。
// 不支持元组。
func EncodePacked(types []string, values []interface{}) ([]byte, error) {
	if len(types) != len(values) {
		return nil, &LengthMismatchError{Expected: len(types), Given: len(values)}
	}
	var out []byte
	for i, kind := range types {
		t, err := NewType(kind, "", nil)
		if err != nil {
			return nil, err
		}
		packed, err := packPacked(t, values[i], false)
		if err != nil {
			return nil, err
		}
		out = append(out, packed...)
	}
	return out, nil
}

// packPacked encodes a single value. Inside an array every element occupies a
// full word.
func packPacked(t Type, value interface{}, inArray bool) ([]byte, error) {
	switch t.T {
	case IntTy, UintTy:
		word, err := packInteger(t, value)
		if err != nil {
			return nil, err
		}
		if inArray {
			return word, nil
		}
		return word[32-t.Size/8:], nil
	case BoolTy:
		b, err := toBool(value)
		if err != nil {
			return nil, err
		}
		if inArray {
			return packBool(b), nil
		}
		if b {
			return []byte{1}, nil
		}
		return []byte{0}, nil
	case AddressTy:
		addr, err := toAddress(t, value)
		if err != nil {
			return nil, err
		}
		if inArray {
			return common.LeftPadBytes(addr[:], 32), nil
		}
		return common.CopyBytes(addr[:]), nil
	case FixedBytesTy:
		b, err := toBytes(t, value)
		if err != nil {
			return nil, err
		}
		if len(b) != t.Size {
			return nil, &BytesSizeMismatchError{Type: t.String(), Expected: t.Size, Given: len(b)}
		}
		if inArray {
			return common.RightPadBytes(common.CopyBytes(b), 32), nil
		}
		return common.CopyBytes(b), nil
	case BytesTy:
		b, err := toBytes(t, value)
		if err != nil {
			return nil, err
		}
		return common.CopyBytes(b), nil
	case StringTy:
		s, err := toString(t, value)
		if err != nil {
			return nil, err
		}
		return []byte(s), nil
	case SliceTy, ArrayTy:
		elems, err := toElements(t, value)
		if err != nil {
			return nil, err
		}
		if t.T == ArrayTy && len(elems) != t.Size {
			return nil, &ArrayLengthMismatchError{Type: t.String(), Expected: t.Size, Given: len(elems)}
		}
		var out []byte
		for _, elem := range elems {
			packed, err := packPacked(*t.Elem, elem, true)
			if err != nil {
				return nil, err
			}
			out = append(out, packed...)
		}
		return out, nil
	default:
		return nil, &UnsupportedPackedTypeError{Type: t.String()}
	}
}
