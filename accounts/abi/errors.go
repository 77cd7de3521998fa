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
	"errors"
	"fmt"
	"math/big"
	"strings"
)

var (
	// ErrZeroData is returned when empty data is decoded against a non-empty
	// parameter list. It is kept apart from malformed data: a call to an
	// address without code returns nothing at all.
	// ErrZeroData 在空数据按非空参数列表解码时返回，与数据损坏区分开：
	// 调用没有代码的地址时返回值为空。
	ErrZeroData = errors.New("abi: attempting to unmarshal an empty string while arguments are expected")

	// ErrEmptyTopics is returned when an event has to be resolved from its
	// signature topic but no topic is given.
	ErrEmptyTopics = errors.New("abi: cannot extract event signature from empty topics")
)

// InvalidAbiTypeError is returned for a type string that does not name a
// supported ABI type.
type InvalidAbiTypeError struct {
	Type string
}

func (e *InvalidAbiTypeError) Error() string {
	return fmt.Sprintf("abi: type %q is not a valid encoding type", e.Type)
}

// LengthMismatchError is returned when the number of values differs from the
// number of parameters.
type LengthMismatchError struct {
	Expected int
	Given    int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("abi: argument count mismatch: expected %d, got %d", e.Expected, e.Given)
}

// ArrayLengthMismatchError is returned when a value for a fixed size array
// has the wrong number of elements.
type ArrayLengthMismatchError struct {
	Type     string
	Expected int
	Given    int
}

func (e *ArrayLengthMismatchError) Error() string {
	return fmt.Sprintf("abi: array length mismatch for type %s: expected length %d, given length %d", e.Type, e.Expected, e.Given)
}

// InvalidArrayError is returned when a non-array value is given for an array type.
type InvalidArrayError struct {
	Type  string
	Value interface{}
}

func (e *InvalidArrayError) Error() string {
	return fmt.Sprintf("abi: value of Go type %T is not a valid array for %s", e.Value, e.Type)
}

// BytesSizeMismatchError is returned when a bytesN value has the wrong length.
type BytesSizeMismatchError struct {
	Type     string
	Expected int
	Given    int
}

func (e *BytesSizeMismatchError) Error() string {
	return fmt.Sprintf("abi: size of %s mismatch: expected %d bytes, given %d bytes", e.Type, e.Expected, e.Given)
}

// IntegerOutOfRangeError is returned when a number does not fit the declared
// integer width. Min and Max are the inclusive bounds of the type.
// IntegerOutOfRangeError 在数字超出声明的整数位宽时返回，Min 和 Max 为该类型的闭区间边界。
type IntegerOutOfRangeError struct {
	Type  string
	Value *big.Int
	Min   *big.Int
	Max   *big.Int
}

func (e *IntegerOutOfRangeError) Error() string {
	kind := "unsigned"
	if strings.HasPrefix(e.Type, "int") {
		kind = "signed"
	}
	return fmt.Sprintf("abi: number %v is not in safe %s-bit %s integer range (%v to %v)",
		e.Value, strings.TrimLeft(e.Type, "uint"), kind, e.Min, e.Max)
}

// InvalidAddressError is returned for a malformed address or one whose mixed
// case letters fail the EIP-55 checksum.
type InvalidAddressError struct {
	Address string
}

func (e *InvalidAddressError) Error() string {
	return fmt.Sprintf("abi: address %q is invalid", e.Address)
}

// InvalidBooleanError is returned when a value is neither true nor false. On
// decode the value is the offending 32 byte word.
type InvalidBooleanError struct {
	Value interface{}
}

func (e *InvalidBooleanError) Error() string {
	return fmt.Sprintf("abi: %v is not a valid boolean", e.Value)
}

// SignatureNotFoundError is returned when a selector or topic does not match
// any entry of the ABI.
type SignatureNotFoundError struct {
	Kind      string // function, event or error
	Signature string
}

func (e *SignatureNotFoundError) Error() string {
	return fmt.Sprintf("abi: %s signature %s not found on ABI", e.Kind, e.Signature)
}

// DataSizeTooSmallError is returned for malformed data: a head cursor, an
// offset or a length pointing past the end of the input.
type DataSizeTooSmallError struct {
	Params string // type being decoded
	Size   int    // size of the region, in bytes
	Offset int    // first byte past the end that was required
}

func (e *DataSizeTooSmallError) Error() string {
	return fmt.Sprintf("abi: data size of %d bytes is too small for %s, need %d bytes", e.Size, e.Params, e.Offset)
}

// DataSizeInvalidError is returned for return data that is not word aligned.
type DataSizeInvalidError struct {
	Size int
}

func (e *DataSizeInvalidError) Error() string {
	return fmt.Sprintf("abi: data size of %d bytes is invalid, size must be a multiple of 32", e.Size)
}

// TypeMismatchError is returned when a Go value cannot represent the ABI type.
type TypeMismatchError struct {
	Type  string
	Value interface{}
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("abi: cannot use %T as type %s as argument", e.Value, e.Type)
}

// ItemNotFoundError is returned when a function, event or error is looked up
// by a name the ABI does not define.
type ItemNotFoundError struct {
	Kind string
	Name string
}

func (e *ItemNotFoundError) Error() string {
	return fmt.Sprintf("abi: %s %q not found on ABI", e.Kind, e.Name)
}

// AmbiguousOverloadError is returned by strict overload resolution when the
// arguments encode against more than one overload.
type AmbiguousOverloadError struct {
	Name       string
	Signatures []string
}

func (e *AmbiguousOverloadError) Error() string {
	return fmt.Sprintf("abi: call to %s is ambiguous between %s", e.Name, strings.Join(e.Signatures, ", "))
}

// TopicsMismatchError is returned when a log carries fewer topics than the
// event has indexed parameters.
type TopicsMismatchError struct {
	Event string
	Param string
}

func (e *TopicsMismatchError) Error() string {
	return fmt.Sprintf("abi: expected a topic for indexed event parameter %q on event %s", e.Param, e.Event)
}

// UnsupportedIndexedTypeError is returned when a filter topic is requested for
// an indexed array or tuple parameter.
type UnsupportedIndexedTypeError struct {
	Type string
}

func (e *UnsupportedIndexedTypeError) Error() string {
	return fmt.Sprintf("abi: filter on indexed parameter of type %s is not supported", e.Type)
}

// UnsupportedPackedTypeError is returned by EncodePacked for tuples.
type UnsupportedPackedTypeError struct {
	Type string
}

func (e *UnsupportedPackedTypeError) Error() string {
	return fmt.Sprintf("abi: type %s is not supported for packed encoding", e.Type)
}
