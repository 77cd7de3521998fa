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
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/sunyihoo/ethabi"
	"github.com/sunyihoo/ethabi/accounts/abi"
	"github.com/sunyihoo/ethabi/common"
	"github.com/sunyihoo/ethabi/common/hexutil"
	"github.com/sunyihoo/ethabi/core/types"
	"github.com/sunyihoo/ethabi/log"
)

// CallOpts is the collection of options to fine tune a contract call request.
// CallOpts 是用于微调合约调用请求的选项集合。
type CallOpts struct {
	From        common.Address  // Optional the sender address, otherwise the first account is used 可选的发送者地址
	BlockNumber *big.Int        // Optional the block number on which the call should be performed 可选的执行调用的区块号
	Context     context.Context // Network context to support cancellation and timeouts (nil = no timeout) 支持取消和超时的网络上下文（nil 表示无超时）
	Strict      bool            // Resolve overloads strictly, see abi.ABI.EncodeFunctionDataStrict 严格解析重载
}

// FilterOpts is the collection of options to fine tune filtering for events
// within a bound contract.
// FilterOpts 是用于微调已绑定合约内事件过滤的选项集合。
type FilterOpts struct {
	Start uint64  // Start of the queried range 查询范围的起始区块
	End   *uint64 // End of the range (nil = latest) 查询范围的结束区块（nil 表示最新）

	Context context.Context // Network context to support cancellation and timeouts (nil = no timeout) 网络上下文
}

// WatchOpts is the collection of options to fine tune subscribing for events
// within a bound contract.
// WatchOpts 是用于微调已绑定合约内事件订阅的选项集合。
type WatchOpts struct {
	Start   *uint64         // Start of the queried range (nil = latest) 查询范围的起始区块（nil 表示最新）
	Context context.Context // Network context to support cancellation and timeouts (nil = no timeout) 网络上下文
}

// RevertError is returned by Call when the contract reverted with data that
// decodes against the ABI errors or the builtin Error and Panic.
// RevertError 在合约 revert 且 revert 数据能按 ABI 错误或内置的 Error、Panic 解码时由 Call 返回。
type RevertError struct {
	Name string      // name of the error, e.g. Error, Panic or a custom error 错误名称
	Args *abi.Values // decoded error arguments 解码后的错误参数
	Data []byte      // raw revert data 原始 revert 数据

	err error
}

func (e *RevertError) Error() string {
	if reason, err := abi.UnpackRevert(e.Data); err == nil {
		return fmt.Sprintf("execution reverted: %s", reason)
	}
	return fmt.Sprintf("execution reverted: %s%v", e.Name, e.Args)
}

func (e *RevertError) Unwrap() error { return e.err }

// dataError is implemented by call errors carrying the revert data of the
// call, as JSON-RPC clients report them.
type dataError interface {
	ErrorData() interface{}
}

// BoundContract is the base wrapper object that reflects a contract on the
// Ethereum network. It contains a collection of methods that are used by the
// higher level contract bindings to operate.
// BoundContract 是反映以太坊网络上合约的基础包装对象，包含高层合约绑定所使用的方法集合。
type BoundContract struct {
	address  common.Address   // Deployment address of the contract on the Ethereum blockchain 合约在以太坊区块链上的部署地址
	abi      abi.ABI          // Reflect based ABI to access the correct Ethereum methods 用于访问正确以太坊方法的 ABI
	caller   ContractCaller   // Read interface to interact with the blockchain 与区块链交互的读取接口
	filterer ContractFilterer // Event filtering to interact with the blockchain 与区块链交互的事件过滤接口
	logger   log.Logger
}

// NewBoundContract creates a low level contract interface through which calls
// and log queries may be made. The filterer may be nil for contracts that are
// only called.
// NewBoundContract 创建一个底层合约接口，通过它可以进行调用和日志查询。只用于调用的合约 filterer 可以为 nil。
func NewBoundContract(address common.Address, abi abi.ABI, caller ContractCaller, filterer ContractFilterer) *BoundContract {
	return &BoundContract{
		address:  address,
		abi:      abi,
		caller:   caller,
		filterer: filterer,
		logger:   log.New("contract", address),
	}
}

// Address returns the deployment address of the contract.
func (c *BoundContract) Address() common.Address {
	return c.address
}

// Call invokes the (constant) contract method with params as input values and
// returns the decoded output values.
// Call 以 params 作为输入值调用（常量）合约方法，并返回解码后的输出值。
func (c *BoundContract) Call(opts *CallOpts, method string, params ...interface{}) (*abi.Values, error) {
	if c.caller == nil {
		return nil, ErrNoCaller
	}
	// Don't crash on a lazy user
	// 防止用户未提供选项时崩溃
	if opts == nil {
		opts = new(CallOpts)
	}
	encode := c.abi.EncodeFunctionData
	if opts.Strict {
		encode = c.abi.EncodeFunctionDataStrict
	}
	input, err := encode(method, params...)
	if err != nil {
		return nil, err
	}
	// The selector identifies the overload the arguments were encoded for.
	// 选择器标识了参数编码所针对的重载。
	resolved, err := c.abi.MethodById(input)
	if err != nil {
		return nil, err
	}
	var (
		ctx    = ensureContext(opts.Context)
		msg    = ethereum.CallMsg{From: opts.From, To: &c.address, Data: input}
		output []byte
	)
	output, err = c.caller.CallContract(ctx, msg, opts.BlockNumber)
	if err != nil {
		return nil, c.revertError(err)
	}
	if len(output) == 0 && len(resolved.Outputs) > 0 {
		// Make sure we have a contract to operate on, and bail out otherwise.
		// 确保有合约可操作，否则退出。
		if code, err := c.caller.CodeAt(ctx, c.address, opts.BlockNumber); err != nil {
			return nil, err
		} else if len(code) == 0 {
			c.logger.Debug("Call to account without code", "method", resolved.Sig)
			return nil, ErrNoCode
		}
	}
	c.logger.Trace("Contract call", "method", resolved.Sig, "output", len(output))
	return c.abi.DecodeFunctionResult(resolved.Name, output)
}

// revertError decodes the revert data carried by a call error. Errors without
// data, or with data that does not decode, are returned unchanged.
// revertError 解码调用错误携带的 revert 数据，没有数据或无法解码的错误原样返回。
func (c *BoundContract) revertError(err error) error {
	var de dataError
	if !errors.As(err, &de) {
		return err
	}
	var data []byte
	switch v := de.ErrorData().(type) {
	case []byte:
		data = v
	case hexutil.Bytes:
		data = v
	case string:
		decoded, derr := hexutil.Decode(v)
		if derr != nil {
			return err
		}
		data = decoded
	default:
		return err
	}
	name, args, derr := c.abi.DecodeErrorResult(data)
	if derr != nil {
		return err
	}
	return &RevertError{Name: name, Args: args, Data: data, err: err}
}

// filterQuery assembles the log filter for the named event. Every query entry
// lists the accepted values of one indexed argument, an empty entry matches
// anything.
// filterQuery 为指定事件组装日志过滤器。每个查询项列出一个 indexed 参数可接受的值，空项匹配任意值。
func (c *BoundContract) filterQuery(name string, query [][]interface{}) (ethereum.FilterQuery, error) {
	args := make([]interface{}, len(query))
	for i, rules := range query {
		switch len(rules) {
		case 0:
		case 1:
			args[i] = rules[0]
		default:
			args[i] = rules
		}
	}
	topics, err := c.abi.EncodeEventTopics(name, args...)
	if err != nil {
		return ethereum.FilterQuery{}, err
	}
	return ethereum.FilterQuery{
		Addresses: []common.Address{c.address},
		Topics:    topics,
	}, nil
}

// FilterLogs filters contract logs for past blocks and decodes them. Logs that
// do not decode against the event fail the whole query.
// FilterLogs 过滤过去区块中的合约日志并解码，任何无法按事件解码的日志都会导致整个查询失败。
func (c *BoundContract) FilterLogs(opts *FilterOpts, name string, query ...[]interface{}) ([]abi.DecodedLog, error) {
	if c.filterer == nil {
		return nil, ErrNoFilterer
	}
	// Don't crash on a lazy user
	// 防止用户未提供选项时崩溃
	if opts == nil {
		opts = new(FilterOpts)
	}
	config, err := c.filterQuery(name, query)
	if err != nil {
		return nil, err
	}
	config.FromBlock = new(big.Int).SetUint64(opts.Start)
	if opts.End != nil {
		config.ToBlock = new(big.Int).SetUint64(*opts.End)
	}
	logs, err := c.filterer.FilterLogs(ensureContext(opts.Context), config)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("Filtered logs", "event", name, "from", opts.Start, "count", len(logs))

	decoded := make([]abi.DecodedLog, 0, len(logs))
	for i := range logs {
		event, err := c.UnpackLog(name, logs[i])
		if err != nil {
			return nil, fmt.Errorf("log %d of tx %s: %w", logs[i].Index, logs[i].TxHash.Hex(), err)
		}
		decoded = append(decoded, abi.DecodedLog{Log: &logs[i], EventName: event.EventName, Args: event.Args})
	}
	return decoded, nil
}

// WatchLogs filters subscribes to contract logs for future blocks, returning a
// subscription object that can be used to tear down the watcher. The delivered
// logs are raw, UnpackLog decodes them.
// WatchLogs 订阅未来区块中的合约日志，返回可用于停止监听的订阅对象。投递的日志为原始日志，由 UnpackLog 解码。
func (c *BoundContract) WatchLogs(opts *WatchOpts, name string, query ...[]interface{}) (<-chan types.Log, ethereum.Subscription, error) {
	if c.filterer == nil {
		return nil, nil, ErrNoFilterer
	}
	// Don't crash on a lazy user
	// 防止用户未提供选项时崩溃
	if opts == nil {
		opts = new(WatchOpts)
	}
	config, err := c.filterQuery(name, query)
	if err != nil {
		return nil, nil, err
	}
	if opts.Start != nil {
		config.FromBlock = new(big.Int).SetUint64(*opts.Start)
	}
	logs := make(chan types.Log, 128)
	sub, err := c.filterer.SubscribeFilterLogs(ensureContext(opts.Context), config, logs)
	if err != nil {
		return nil, nil, err
	}
	return logs, sub, nil
}

// UnpackLog decodes a log of the named event emitted by this contract.
// UnpackLog 解码本合约发出的指定事件的日志。
func (c *BoundContract) UnpackLog(event string, log types.Log) (*abi.DecodedEvent, error) {
	// Only the emitter is checked here, topic0 is matched by the decoder.
	// 这里只检查日志的发出者，topic0 由解码器匹配。
	if log.Address != c.address {
		return nil, fmt.Errorf("abi: log emitted by %s, not by contract %s", log.Address.Hex(), c.address.Hex())
	}
	return c.abi.DecodeEventLog(event, log.Topics, log.Data)
}

// ensureContext is a helper method to ensure a context is not nil, even if the
// user specified it as such.
// ensureContext 是一个辅助方法，确保上下文不为 nil，即使用户将其指定为 nil。
func ensureContext(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
