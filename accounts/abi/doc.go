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

// Package abi implements the Ethereum Contract ABI (Application Binary
// Interface): the canonical binary encoding of contract call arguments,
// return values, revert data and event logs.
//
// Parameter lists are encoded with the head/tail layout. Static values are
// written inline, dynamic values (string, bytes, T[] and any array or tuple
// containing one) leave an offset in the head and their payload in the tail.
// Every encoding is a whole number of 32 byte words.
//
// Decoded values use a fixed set of Go types:
//
//	intN, uintN   *big.Int
//	bool          bool
//	address       common.Address
//	bytesN, bytes hexutil.Bytes
//	string        string
//	T[k], T[]     []interface{}
//	tuple         *Values
//
// Function calls are addressed by their 4 byte selector and events by their
// 32 byte topic, both derived from the Keccak256 hash of the canonical
// signature, e.g. transfer(address,uint256).
// abi 包实现了以太坊合约 ABI（应用二进制接口）：合约调用参数、返回值、revert 数据和事件日志的规范二进制编码。
//
// 参数列表使用 head/tail 布局编码：静态值内联写入，动态值（string、bytes、T[] 以及包含它们的数组或元组）
// 在头部写入偏移量，内容写入尾部。所有编码都是 32 字节的整数倍。
package abi
