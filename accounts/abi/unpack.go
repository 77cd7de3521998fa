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
	"math/big"
	"strings"

	"github.com/holiman/uint256"
	"github.com/sunyihoo/ethabi/common"
	"github.com/sunyihoo/ethabi/common/hexutil"
)

var (
	// MaxUint256 is the maximum value that can be represented by a uint256.
	// MaxUint256 是 uint256 可以表示的最大值。
	MaxUint256 = new(big.Int).Sub(new(big.Int).Lsh(common.Big1, 256), common.Big1)
	// MaxInt256 is the maximum value that can be represented by a int256.
	// MaxInt256 是 int256 可以表示的最大值。
	MaxInt256 = new(big.Int).Sub(new(big.Int).Lsh(common.Big1, 255), common.Big1)
)

// unpackList decodes a parameter list laid out with the head/tail encoding.
// Offsets found in the head are relative to the start of region.
// unpackList 解码按 head/tail 布局编码的参数列表，头部中的偏移量相对于 region 的起始位置。
func unpackList(types []*Type, region []byte) ([]interface{}, error) {
	values := make([]interface{}, len(types))
	cursor := 0
	for i, t := range types {
		var (
			value interface{}
			err   error
		)
		if isDynamicType(*t) {
			offset, err := readSize(*t, region, cursor)
			if err != nil {
				return nil, err
			}
			value, err = unpackDynamic(*t, region[offset:])
			if err != nil {
				return nil, err
			}
		} else {
			value, err = unpackStatic(*t, region, cursor)
			if err != nil {
				return nil, err
			}
		}
		values[i] = value
		cursor += getTypeSize(*t)
	}
	return values, nil
}

// unpackStatic decodes a static value stored inline at index. Static arrays
// and tuples span several consecutive words.
// unpackStatic 解码内联存放在 index 处的静态值，静态数组和元组占用连续的多个字。
func unpackStatic(t Type, region []byte, index int) (interface{}, error) {
	size := getTypeSize(t)
	if index+size > len(region) {
		return nil, &DataSizeTooSmallError{Params: t.String(), Size: len(region), Offset: index + size}
	}
	switch t.T {
	case ArrayTy:
		return unpackList(repeat(t.Elem, t.Size), region[index:index+size])
	case TupleTy:
		values, err := unpackList(t.TupleElems, region[index:index+size])
		if err != nil {
			return nil, err
		}
		return NewValues(values, t.TupleRawNames), nil
	default:
		return readWord(t, region[index:index+32])
	}
}

// unpackDynamic decodes the payload of a dynamic value. The payload starts at
// the offset the head pointed to.
// unpackDynamic 解码动态值的内容，payload 从头部偏移量指向的位置开始。
func unpackDynamic(t Type, payload []byte) (interface{}, error) {
	switch t.T {
	case StringTy, BytesTy:
		length, err := readLength(t, payload, 1)
		if err != nil {
			return nil, err
		}
		content := payload[32 : 32+length]
		if t.T == StringTy {
			return string(content), nil
		}
		return hexutil.Bytes(common.CopyBytes(content)), nil
	case SliceTy:
		length, err := readLength(t, payload, getTypeSize(*t.Elem))
		if err != nil {
			return nil, err
		}
		return unpackList(repeat(t.Elem, length), payload[32:])
	case ArrayTy:
		// Each element of a dynamic fixed array has an offset word in the head.
		if t.Size*32 > len(payload) {
			return nil, &DataSizeTooSmallError{Params: t.String(), Size: len(payload), Offset: t.Size * 32}
		}
		return unpackList(repeat(t.Elem, t.Size), payload)
	case TupleTy:
		values, err := unpackList(t.TupleElems, payload)
		if err != nil {
			return nil, err
		}
		return NewValues(values, t.TupleRawNames), nil
	default:
		return nil, &InvalidAbiTypeError{Type: t.String()}
	}
}

// readWord decodes a single word holding an integer, bool, address or bytesN.
// readWord 解码存放整数、布尔值、地址或 bytesN 的单个字。
func readWord(t Type, word []byte) (interface{}, error) {
	switch t.T {
	case IntTy, UintTy:
		return ReadInteger(t, word), nil
	case BoolTy:
		return readBool(word)
	case AddressTy:
		return common.BytesToAddress(word[12:32]), nil
	case FixedBytesTy:
		return hexutil.Bytes(common.CopyBytes(word[:t.Size])), nil
	default:
		return nil, &InvalidAbiTypeError{Type: t.String()}
	}
}

// ReadInteger reads the integer based on its kind and returns the appropriate value.
// The full word is read as unsigned. Signed types are then sign extended from
// bit Size-1.
// ReadInteger 将完整的字按无符号数读取，有符号类型再从第 Size-1 位做符号扩展。
func ReadInteger(typ Type, b []byte) *big.Int {
	word := new(uint256.Int).SetBytes(b)
	if typ.T == UintTy {
		return word.ToBig()
	}
	if typ.Size < 256 {
		word.ExtendSign(word, uint256.NewInt(uint64(typ.Size/8-1)))
	}
	if word.Sign() >= 0 {
		return word.ToBig()
	}
	// Two's complement: the magnitude of a negative number is its negation.
	abs := new(uint256.Int).Neg(word).ToBig()
	return abs.Neg(abs)
}

// readBool reads a bool.
// readBool 读取布尔值，只接受 0 和 1。
func readBool(word []byte) (bool, error) {
	for _, b := range word[:31] {
		if b != 0 {
			return false, &InvalidBooleanError{Value: hexutil.Bytes(common.CopyBytes(word))}
		}
	}
	switch word[31] {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, &InvalidBooleanError{Value: hexutil.Bytes(common.CopyBytes(word))}
	}
}

// readSize reads the word at index as an offset into region.
// readSize 将 index 处的字读取为 region 内的偏移量。
func readSize(t Type, region []byte, index int) (int, error) {
	if index+32 > len(region) {
		return 0, &DataSizeTooSmallError{Params: t.String(), Size: len(region), Offset: index + 32}
	}
	offset := new(uint256.Int).SetBytes(region[index : index+32])
	if !offset.IsUint64() || offset.Uint64() > uint64(len(region)) {
		return 0, &DataSizeTooSmallError{Params: t.String(), Size: len(region), Offset: saturate(offset)}
	}
	return int(offset.Uint64()), nil
}

// readLength reads the length prefix of a dynamic payload and checks that
// length items of elemSize bytes follow it.
// readLength 读取动态内容的长度前缀，并检查其后是否有 length 个 elemSize 字节的元素。
func readLength(t Type, payload []byte, elemSize int) (int, error) {
	if len(payload) < 32 {
		return 0, &DataSizeTooSmallError{Params: t.String(), Size: len(payload), Offset: 32}
	}
	length := new(uint256.Int).SetBytes(payload[:32])
	avail := uint64(len(payload) - 32)
	if !length.IsUint64() || length.Uint64() > avail {
		return 0, &DataSizeTooSmallError{Params: t.String(), Size: len(payload), Offset: saturate(length)}
	}
	n := length.Uint64()
	if elemSize > 0 && n*uint64(elemSize) > avail {
		return 0, &DataSizeTooSmallError{Params: t.String(), Size: len(payload), Offset: 32 + int(n)*elemSize}
	}
	return int(n), nil
}

// saturate converts a word to an int for error reporting, clamping large
// values.
func saturate(v *uint256.Int) int {
	const maxInt = int(^uint(0) >> 1)
	if !v.IsUint64() || v.Uint64() > uint64(maxInt) {
		return maxInt
	}
	return int(v.Uint64())
}

// paramsString formats a parameter list for error reporting.
func paramsString(types []*Type) string {
	kinds := make([]string, len(types))
	for i, t := range types {
		kinds[i] = t.String()
	}
	return "(" + strings.Join(kinds, ",") + ")"
}
