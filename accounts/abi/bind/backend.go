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

package bind

import (
	"errors"

	"github.com/sunyihoo/ethabi"
)

var (
	// ErrNoCode is returned by call operations for which the requested recipient
	// contract to operate on does not exist in the state db or does not have any
	// code associated with it (i.e. self-destructed).
	// ErrNoCode 在调用操作中返回，当目标合约在状态数据库中不存在或没有关联的代码（例如自毁）时。
	ErrNoCode = errors.New("no contract code at given address")

	// ErrNoFilterer is returned by log operations on a contract bound without a
	// log filterer.
	// ErrNoFilterer 在未绑定日志过滤器的合约上执行日志操作时返回。
	ErrNoFilterer = errors.New("contract bound without a log filterer")

	// ErrNoCaller is returned by Call on a contract bound without a caller.
	// ErrNoCaller 在未绑定调用器的合约上执行 Call 时返回。
	ErrNoCaller = errors.New("contract bound without a caller")
)

// ContractCaller defines the methods needed to allow operating with a contract on a read
// only basis.
// ContractCaller 定义了以只读方式与合约交互所需的方法。
type ContractCaller interface {
	// CodeAt returns the code of the given account. This is needed to differentiate
	// between contract internal errors and the local chain being out of sync.
	// CodeAt 返回给定账户的代码。这是为了区分合约内部错误和本地链不同步的情况。
	ethereum.CodeReader

	// CallContract executes an Ethereum contract call with the specified data as the
	// input.
	// CallContract 执行一个以太坊合约调用，指定数据作为输入。
	ethereum.ContractCaller
}

// ContractFilterer defines the methods needed to access log events using one-off
// queries or continuous event subscriptions.
// ContractFilterer 定义了使用一次性查询或连续事件订阅访问日志事件所需的方法。
type ContractFilterer interface {
	ethereum.LogFilterer // 日志过滤器
}

// ContractBackend defines the methods needed to read from contracts and their logs.
// ContractBackend 定义了读取合约及其日志所需的方法。
type ContractBackend interface {
	ContractCaller   // 合约调用器
	ContractFilterer // 合约过滤器
}
