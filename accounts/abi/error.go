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
	"bytes"
	"fmt"
	"strings"

	"github.com/sunyihoo/ethabi/common"
)

// Error represents an error defined in the ABI (Application Binary Interface).
// It includes the error name, input arguments, string representation, signature, and a unique ID.
// Error 表示在 ABI（应用二进制接口）中定义的错误。
// 它包括错误名称、输入参数、字符串表示、签名以及唯一标识符。
type Error struct {
	Name   string
	Inputs Arguments
	str    string

	// Sig contains the string signature according to the ABI spec.
	// e.g. error foo(uint32 a, int b) = "foo(uint32,int256)"
	// Please note that "int" is substitute for its canonical representation "int256"
	Sig string

	// ID returns the canonical representation of the error's signature used by the
	// abi definition to identify event names and types. Revert data starts with
	// its first 4 bytes.
	// ID 是错误签名的 Keccak256 哈希，revert 数据以其前 4 个字节开头。
	ID common.Hash
}

// NewError creates a new Error instance with the given name and inputs.
// It precomputes the string and signature representations,
// and calculates the unique ID based on the signature.
// NewError 使用给定的名称和输入参数创建一个新的 Error 实例，
// 预计算字符串和签名表示，并根据签名计算唯一的 ID。
func NewError(name string, inputs Arguments) Error {
	names := make([]string, len(inputs))
	for i, input := range inputs {
		// 生成字符串表示形式，例如 "uint32 a"
		names[i] = input.Type.String()
		if input.Name != "" {
			names[i] += " " + input.Name
		}
	}
	// 根据 ABI 规范生成签名字符串，例如 "foo(uint32,int256)"
	sig := Signature(name, inputs)

	return Error{
		Name:   name,
		Inputs: inputs,
		str:    fmt.Sprintf("error %v(%v)", name, strings.Join(names, ", ")),
		Sig:    sig,
		ID:     EventTopic(sig),
	}
}

// String returns the string representation of the error.
// String 返回错误的字符串表示形式。
func (e Error) String() string {
	return e.str
}

// Selector returns the 4 byte prefix of revert data carrying this error.
func (e Error) Selector() []byte {
	return common.CopyBytes(e.ID[:4])
}

// Pack encodes args as revert data of this error.
// Pack 将 args 编码为该错误的 revert 数据。
func (e *Error) Pack(args ...interface{}) ([]byte, error) {
	encoded, err := e.Inputs.Pack(args...)
	if err != nil {
		return nil, err
	}
	return append(e.Selector(), encoded...), nil
}

// Unpack decodes the provided data into the error's input arguments.
// It first checks if the data matches the error's identifier (first 4 bytes),
// then unpacks the remaining data into the error's inputs.
// Unpack 将提供的数据解码为错误的输入参数。
// 它首先检查数据是否匹配错误的标识符（前 4 字节），然后将剩余数据解码为错误的输入。
func (e *Error) Unpack(data []byte) (*Values, error) {
	if len(data) < 4 {
		// 数据长度不足时返回错误
		return nil, fmt.Errorf("insufficient data for unpacking: have %d, want at least 4", len(data))
	}
	if !bytes.Equal(data[:4], e.ID[:4]) {
		// 如果前 4 字节不匹配错误的 ID，返回错误
		return nil, &SignatureNotFoundError{Kind: "error", Signature: fmt.Sprintf("%#x", data[:4])}
	}
	// 解码剩余数据为错误的输入参数
	return e.Inputs.Unpack(data[4:])
}
