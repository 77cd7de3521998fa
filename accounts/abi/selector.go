// Copyright 2022 The go-ethereum Authors
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
	"github.com/sunyihoo/ethabi/crypto"
)

// 函数选择器是规范签名 Keccak256 哈希的前 4 个字节，事件主题是完整的 32 字节哈希。
// 规范签名不含参数名和 indexed 标记，元组展开为 (t1,t2,...)，例如
// transfer(address,uint256) -> 0xa9059cbb
// Transfer(address,address,uint256) -> 0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef

// FunctionSelector returns the 4 byte selector of a canonical function
// signature such as "transfer(address,uint256)".
// FunctionSelector 返回规范函数签名的 4 字节选择器。
func FunctionSelector(signature string) []byte {
	// Full slice expression so appending to the selector never writes into
	// the rest of the hash.
	return crypto.Keccak256([]byte(signature))[:4:4]
}

// EventTopic returns the topic0 of a canonical event signature, the full
// Keccak256 hash of it.
// EventTopic 返回规范事件签名的 topic0，即其完整的 Keccak256 哈希。
func EventTopic(signature string) common.Hash {
	return crypto.Keccak256Hash([]byte(signature))
}

// Signature builds the canonical signature of name applied to args.
// Argument names and indexed flags are not part of it.
// Signature 构建 name 作用于 args 的规范签名，不包含参数名和 indexed 标记。
func Signature(name string, args Arguments) string {
	return name + args.String()
}
