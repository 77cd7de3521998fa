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

// Package ethereum defines interfaces for interacting with Ethereum.
package ethereum

import (
	"context"
	"errors"
	"math/big"

	"github.com/sunyihoo/ethabi/common"
	"github.com/sunyihoo/ethabi/core/types"
)

// NotFound is returned by API methods if the requested item does not exist.
// NotFound 由 API 方法返回，如果请求的项不存在。
var NotFound = errors.New("not found")

// Subscription represents an event subscription where events are
// delivered on a data channel.
// Subscription 表示事件订阅，其中事件通过数据通道传递。
type Subscription interface {
	// Unsubscribe cancels the sending of events to the data channel
	// and closes the error channel.
	// Unsubscribe 取消向数据通道发送事件，并关闭错误通道。
	Unsubscribe()
	// Err returns the subscription error channel. The error channel receives
	// a value if there is an issue with the subscription (e.g. the network connection
	// delivering the events has been closed). Only one value will ever be sent.
	// The error channel is closed by Unsubscribe.
	// Err 返回订阅的错误通道。如果订阅出现问题（例如传递事件的网络连接已关闭），错误通道会接收到一个值。
	// 仅会发送一个值。错误通道由 Unsubscribe 关闭。
	Err() <-chan error
}

// CallMsg contains parameters for contract calls.
// CallMsg 包含合约调用的参数，对应 eth_call 的调用对象。
type CallMsg struct {
	From     common.Address  // the sender of the 'transaction' '交易'的发送者
	To       *common.Address // the destination contract (nil for contract creation) 目标合约地址（若为 nil，则表示合约创建）
	Gas      uint64          // if 0, the call executes with near-infinite gas 如果为 0，调用将以近乎无限的 Gas 执行
	GasPrice *big.Int        // wei <-> gas exchange ratio   Wei 与 Gas 的交换比率
	Value    *big.Int        // amount of wei sent along with the call 调用时发送的 Wei 数量
	Data     []byte          // input data, usually an ABI-encoded contract method invocation 输入数据，通常是 ABI 编码的合约方法调用
}

// A ContractCaller provides contract calls, essentially transactions that are executed by
// the EVM but not mined into the blockchain. ContractCall is a low-level method to
// execute such calls. The bind package builds on it to encode the call data and
// decode the returned data.
//
// ContractCaller 提供合约调用，实质上是 EVM 执行但不被挖入区块链的交易。
// bind 包基于它编码调用数据并解码返回数据。
type ContractCaller interface {
	CallContract(ctx context.Context, call CallMsg, blockNumber *big.Int) ([]byte, error)
}

// CodeReader returns the code deployed at an account. It tells an empty call result
// caused by a missing contract apart from one returned by the contract.
// CodeReader 返回账户上部署的代码，用于区分由于合约不存在导致的空调用结果和合约返回的空结果。
type CodeReader interface {
	CodeAt(ctx context.Context, account common.Address, blockNumber *big.Int) ([]byte, error)
}

// FilterQuery contains options for contract log filtering.
// FilterQuery 包含合约日志过滤的选项。
type FilterQuery struct {
	BlockHash *common.Hash     // used by eth_getLogs, return logs only from block with this hash 仅返回此哈希对应区块的日志
	FromBlock *big.Int         // beginning of the queried range, nil means genesis block 查询范围的起始区块，nil 表示创世区块
	ToBlock   *big.Int         // end of the range, nil means latest block 查询范围的结束区块，nil 表示最新区块
	Addresses []common.Address // restricts matches to events created by specific contracts 限制匹配特定合约创建的事件

	// The Topic list restricts matches to particular event topics. Each event has a list
	// of topics. Topics matches a prefix of that list. An empty element slice matches any
	// topic. Non-empty elements represent an alternative that matches any of the
	// contained topics.
	//
	// Examples:
	// {} or nil          matches any topic list
	// {{A}}              matches topic A in first position
	// {{}, {B}}          matches any topic in first position AND B in second position
	// {{A}, {B}}         matches topic A in first position AND B in second position
	// {{A, B}, {C, D}}   matches topic (A OR B) in first position AND (C OR D) in second position
	//
	// Topics 列表限制匹配特定的事件主题。空元素切片匹配任何主题，非空元素表示匹配其中任一主题。
	// abi.ABI.EncodeEventTopics 生成的就是这种形式。
	Topics [][]common.Hash
}

// LogFilterer provides access to contract log events using a one-off query or continuous
// event subscription.
//
// Logs received through a streaming query subscription may have Removed set to true,
// indicating that the log was reverted due to a chain reorganisation.
// LogFilterer 通过一次性查询或持续的事件订阅访问合约日志事件。
// 通过订阅收到的日志可能将 Removed 设置为 true，表示该日志因链重组而被回滚。
type LogFilterer interface {
	FilterLogs(ctx context.Context, q FilterQuery) ([]types.Log, error)
	SubscribeFilterLogs(ctx context.Context, q FilterQuery, ch chan<- types.Log) (Subscription, error)
}
