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

import "fmt"

// ResolveNameConflict returns rawName if it is free, otherwise the first free
// name of the form rawName0, rawName1, ... as judged by used.
//
// Overloaded functions and events share a Solidity name but need distinct
// keys in ABI.Methods and ABI.Events: the first declaration keeps the raw
// name, later ones become foo0, foo1 and so on.
// ResolveNameConflict 为重载的函数和事件生成唯一名称：第一个声明保留原名，
// 之后的依次为 foo0、foo1 等。
func ResolveNameConflict(rawName string, used func(string) bool) string {
	name := rawName
	for idx := 0; used(name); idx++ {
		name = fmt.Sprintf("%s%d", rawName, idx)
	}
	return name
}
