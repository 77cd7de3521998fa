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

package abi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/sunyihoo/ethabi/common"
)

// The ABI holds information about a contract's context and available
// invocable methods. It will allow you to type check function calls and
// packs data accordingly.
// ABI 包含有关合约上下文和可用可调用方法的信息。它将允许您对函数调用进行类型检查并相应地打包数据。
// 解析完成后 ABI 只读，可以被多个 goroutine 并发使用。
type ABI struct {
	Constructor Method
	Methods     map[string]Method
	Events      map[string]Event
	Errors      map[string]Error

	// Additional "special" functions introduced in solidity v0.6.0.
	// It's separated from the original default fallback. Each contract
	// can only define one fallback and receive function.
	// Solidity v0.6.0 中引入的附加“特殊”函数。每个合约只能定义一个回退和接收函数。
	Fallback Method // Note it's also used to represent legacy fallback before v0.6.0 注意，它也用于表示 v0.6.0 之前的遗留回退函数
	Receive  Method

	// Declaration order of the resolved names, used by overload resolution
	// and selector lookups.
	// 解析后名称的声明顺序，用于重载解析和选择器查找。
	methodOrder []string
	eventOrder  []string
	errorOrder  []string
}

// JSON returns a parsed ABI interface and error if it failed.
// JSON 返回解析后的 ABI 接口，如果失败则返回错误。
func JSON(reader io.Reader) (ABI, error) {
	dec := json.NewDecoder(reader)

	var abi ABI
	if err := dec.Decode(&abi); err != nil {
		return ABI{}, err
	}
	return abi, nil
}

// sortedKeys returns the keys of m in lexical order. It serves ABIs assembled
// by hand, which carry no declaration order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// methods returns the functions in declaration order.
func (abi *ABI) methods() []Method {
	order := abi.methodOrder
	if len(order) != len(abi.Methods) {
		order = sortedKeys(abi.Methods)
	}
	methods := make([]Method, 0, len(order))
	for _, name := range order {
		methods = append(methods, abi.Methods[name])
	}
	return methods
}

// events returns the events in declaration order.
func (abi *ABI) events() []Event {
	order := abi.eventOrder
	if len(order) != len(abi.Events) {
		order = sortedKeys(abi.Events)
	}
	events := make([]Event, 0, len(order))
	for _, name := range order {
		events = append(events, abi.Events[name])
	}
	return events
}

// errors returns the custom errors in declaration order.
func (abi *ABI) errors() []Error {
	order := abi.errorOrder
	if len(order) != len(abi.Errors) {
		order = sortedKeys(abi.Errors)
	}
	errs := make([]Error, 0, len(order))
	for _, name := range order {
		errs = append(errs, abi.Errors[name])
	}
	return errs
}

// Pack the given method name to conform the ABI. Method call's data
// will consist of method_id, args0, arg1, ... argN. Method id consists
// of 4 bytes and arguments are all 32 bytes.
// Method ids are created from the first 4 bytes of the hash of the
// methods string signature. (signature = baz(uint32,string32))
// The name is the resolved one, overloads are addressed as foo, foo0 and so on.
// An empty name packs the constructor arguments.
// Pack 将给定的方法名称打包以符合 ABI。方法调用的数据将包括 method_id、args0、arg1 ... argN。
// 名称是解析后的名称，重载函数依次为 foo、foo0 等，空名称表示构造函数。
func (abi ABI) Pack(name string, args ...interface{}) ([]byte, error) {
	// Fetch the ABI of the requested method
	// 获取所请求方法的 ABI
	if name == "" {
		// constructor
		// 构造函数
		return abi.Constructor.Inputs.Pack(args...)
	}
	method, exist := abi.Methods[name]
	if !exist {
		return nil, &ItemNotFoundError{Kind: "function", Name: name}
	}
	arguments, err := method.Inputs.Pack(args...)
	if err != nil {
		return nil, err
	}
	// Pack up the method ID too if not a constructor and return
	// 如果不是构造函数，也打包方法 ID 并返回
	return append(method.ID[:4:4], arguments...), nil
}

// Overloads returns the functions whose raw name is name, in declaration
// order. A resolved name such as foo0 addresses that single overload.
// Overloads 按声明顺序返回原始名称为 name 的函数，解析后的名称（如 foo0）只对应一个重载。
func (abi *ABI) Overloads(name string) []Method {
	var candidates []Method
	for _, method := range abi.methods() {
		if method.RawName == name {
			candidates = append(candidates, method)
		}
	}
	if len(candidates) == 0 {
		if method, ok := abi.Methods[name]; ok {
			candidates = append(candidates, method)
		}
	}
	return candidates
}

// methodByName resolves a function for a call with argc arguments: the first
// declared overload taking argc inputs, or the first overload when none does.
// methodByName 为携带 argc 个参数的调用解析函数：第一个输入数量为 argc 的重载，
// 都不匹配时取第一个重载。
func (abi *ABI) methodByName(name string, argc int) (*Method, error) {
	candidates := abi.Overloads(name)
	if len(candidates) == 0 {
		return nil, &ItemNotFoundError{Kind: "function", Name: name}
	}
	for _, method := range candidates {
		if len(method.Inputs) == argc {
			return &method, nil
		}
	}
	return &candidates[0], nil
}

// EncodeFunctionData encodes a call to the function name: its selector
// followed by the encoded arguments. Overloads are resolved by argument count,
// the first declared function with a matching input count wins.
// EncodeFunctionData 编码对函数 name 的调用：选择器后跟编码后的参数。
// 重载按参数数量解析，第一个输入数量匹配的函数胜出。
func (abi *ABI) EncodeFunctionData(name string, args ...interface{}) ([]byte, error) {
	method, err := abi.methodByName(name, len(args))
	if err != nil {
		return nil, err
	}
	encoded, err := method.Inputs.Pack(args...)
	if err != nil {
		return nil, err
	}
	return append(method.ID[:4:4], encoded...), nil
}

// EncodeFunctionDataStrict is EncodeFunctionData with strict overload
// resolution. The arguments are encoded against every overload taking that
// many inputs, and exactly one of them has to accept them.
// EncodeFunctionDataStrict 使用严格的重载解析：参数会按每个输入数量匹配的重载尝试编码，
// 必须恰好有一个重载接受这些参数，否则返回 AmbiguousOverloadError。
func (abi *ABI) EncodeFunctionDataStrict(name string, args ...interface{}) ([]byte, error) {
	var (
		candidates = abi.Overloads(name)
		matches    []string
		result     []byte
		firstErr   error
	)
	if len(candidates) == 0 {
		return nil, &ItemNotFoundError{Kind: "function", Name: name}
	}
	for _, method := range candidates {
		if len(method.Inputs) != len(args) {
			continue
		}
		encoded, err := method.Inputs.Pack(args...)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		matches = append(matches, method.Sig)
		result = append(method.ID[:4:4], encoded...)
	}
	switch len(matches) {
	case 0:
		if firstErr == nil {
			firstErr = &LengthMismatchError{Expected: len(candidates[0].Inputs), Given: len(args)}
		}
		return nil, firstErr
	case 1:
		return result, nil
	default:
		return nil, &AmbiguousOverloadError{Name: name, Signatures: matches}
	}
}

// DecodeFunctionData decodes call data: it resolves the function by selector
// and decodes the arguments that follow.
// DecodeFunctionData 解码调用数据：按选择器解析函数并解码其后的参数。
func (abi *ABI) DecodeFunctionData(data []byte) (*Method, *Values, error) {
	method, err := abi.MethodById(data)
	if err != nil {
		return nil, nil, err
	}
	args, err := method.Inputs.Unpack(data[4:])
	if err != nil {
		return nil, nil, err
	}
	return method, args, nil
}

// EncodeFunctionResult encodes values as the return data of the function name.
// EncodeFunctionResult 将 values 编码为函数 name 的返回数据。
func (abi *ABI) EncodeFunctionResult(name string, values ...interface{}) ([]byte, error) {
	candidates := abi.Overloads(name)
	if len(candidates) == 0 {
		return nil, &ItemNotFoundError{Kind: "function", Name: name}
	}
	method := candidates[0]
	for _, candidate := range candidates {
		if len(candidate.Outputs) == len(values) {
			method = candidate
			break
		}
	}
	return method.Outputs.Pack(values...)
}

// DecodeFunctionResult decodes the return data of the function name. Empty
// data for a function with outputs gives ErrZeroData, typically because the
// called address has no code.
// DecodeFunctionResult 解码函数 name 的返回数据。有输出的函数收到空数据时返回 ErrZeroData，
// 通常是因为被调用的地址上没有代码。
func (abi *ABI) DecodeFunctionResult(name string, data []byte) (*Values, error) {
	method, ok := abi.Methods[name]
	if !ok {
		candidates := abi.Overloads(name)
		if len(candidates) == 0 {
			return nil, &ItemNotFoundError{Kind: "function", Name: name}
		}
		method = candidates[0]
	}
	if len(data)%32 != 0 {
		return nil, &DataSizeInvalidError{Size: len(data)}
	}
	return method.Outputs.Unpack(data)
}

// EncodeDeployData returns the contract creation data: the bytecode followed
// by the encoded constructor arguments.
// EncodeDeployData 返回合约创建数据：字节码后跟编码后的构造函数参数。
func (abi *ABI) EncodeDeployData(bytecode []byte, args ...interface{}) ([]byte, error) {
	encoded, err := abi.Constructor.Inputs.Pack(args...)
	if err != nil {
		return nil, err
	}
	return append(common.CopyBytes(bytecode), encoded...), nil
}

func (abi ABI) getArguments(name string, data []byte) (Arguments, error) {
	// since there can't be naming collisions with contracts and events,
	// we need to decide whether we're calling a method, event or an error
	// 由于合约和事件之间不会有命名冲突，我们需要决定我们是在调用方法、事件还是错误
	var args Arguments
	if method, ok := abi.Methods[name]; ok {
		if len(data)%32 != 0 {
			return nil, &DataSizeInvalidError{Size: len(data)}
		}
		args = method.Outputs
	}
	if event, ok := abi.Events[name]; ok {
		args = event.Inputs
	}
	if err, ok := abi.Errors[name]; ok {
		args = err.Inputs
	}
	if args == nil {
		return nil, &ItemNotFoundError{Kind: "method, event or error", Name: name}
	}
	return args, nil
}

// Unpack unpacks the output according to the abi specification.
// Unpack 根据 ABI 规范解包输出。
func (abi ABI) Unpack(name string, data []byte) (*Values, error) {
	args, err := abi.getArguments(name, data)
	if err != nil {
		return nil, err
	}
	return args.Unpack(data)
}

// UnpackIntoMap unpacks a log into the provided map[string]interface{}.
// UnpackIntoMap 将日志解包到提供的 map[string]interface{} 中。
func (abi ABI) UnpackIntoMap(v map[string]interface{}, name string, data []byte) (err error) {
	args, err := abi.getArguments(name, data)
	if err != nil {
		return err
	}
	return args.UnpackIntoMap(v, data)
}

// UnmarshalJSON implements json.Unmarshaler interface.
// UnmarshalJSON 实现 json.Unmarshaler 接口。
func (abi *ABI) UnmarshalJSON(data []byte) error {
	var fields []struct {
		Type    string
		Name    string
		Inputs  []Argument
		Outputs []Argument

		// Status indicator which can be: "pure", "view",
		// "nonpayable" or "payable".
		// 状态指示器，可以是："pure"、"view"、"nonpayable" 或 "payable"。
		StateMutability string

		// Deprecated Status indicators, but removed in v0.6.0.
		// 已废弃的状态指示器，但在 v0.6.0 中移除。
		Constant bool // True if function is either pure or view 如果函数是 pure 或 view，则为 True
		Payable  bool // True if function is payable 如果函数是 payable，则为 True

		// Event relevant indicator represents the event is
		// declared as anonymous.
		// 与事件相关的指示器，表示事件被声明为匿名的。
		Anonymous bool
	}
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	abi.Methods = make(map[string]Method)
	abi.Events = make(map[string]Event)
	abi.Errors = make(map[string]Error)
	abi.methodOrder, abi.eventOrder, abi.errorOrder = nil, nil, nil

	// Inherited interfaces may repeat an item verbatim, keep the first one.
	// 继承的接口可能原样重复某个条目，只保留第一个。
	seen := mapset.NewThreadUnsafeSet[string]()
	for _, field := range fields {
		switch field.Type {
		case "constructor":
			abi.Constructor = NewMethod("", "", Constructor, field.StateMutability, field.Constant, field.Payable, field.Inputs, nil)
		// empty defaults to function according to the abi spec
		// 根据 ABI 规范，空类型默认为函数
		case "function", "":
			sig := Signature(field.Name, field.Inputs)
			if !seen.Add("function " + sig) {
				continue
			}
			name := ResolveNameConflict(field.Name, func(s string) bool { _, ok := abi.Methods[s]; return ok })
			abi.Methods[name] = NewMethod(name, field.Name, Function, field.StateMutability, field.Constant, field.Payable, field.Inputs, field.Outputs)
			abi.methodOrder = append(abi.methodOrder, name)
		case "fallback":
			// New introduced function type in v0.6.0, check more detail
			// here https://solidity.readthedocs.io/en/v0.6.0/contracts.html#fallback-function
			// 在 v0.6.0 中引入的新函数类型
			if abi.HasFallback() {
				return errors.New("only single fallback is allowed")
			}
			abi.Fallback = NewMethod("", "", Fallback, field.StateMutability, field.Constant, field.Payable, nil, nil)
		case "receive":
			// New introduced function type in v0.6.0, check more detail
			// here https://solidity.readthedocs.io/en/v0.6.0/contracts.html#fallback-function
			if abi.HasReceive() {
				return errors.New("only single receive is allowed")
			}
			if field.StateMutability != "payable" {
				return errors.New("the statemutability of receive can only be payable")
			}
			abi.Receive = NewMethod("", "", Receive, field.StateMutability, field.Constant, field.Payable, nil, nil)
		case "event":
			sig := Signature(field.Name, field.Inputs)
			if !seen.Add(fmt.Sprintf("event %s %t", sig, field.Anonymous)) {
				continue
			}
			name := ResolveNameConflict(field.Name, func(s string) bool { _, ok := abi.Events[s]; return ok })
			abi.Events[name] = NewEvent(name, field.Name, field.Anonymous, field.Inputs)
			abi.eventOrder = append(abi.eventOrder, name)
		case "error":
			// Errors cannot be overloaded or overridden but are inherited,
			// no need to resolve the name conflict here.
			// 错误不能被重载或覆盖，但可以被继承，此处无需解析名称冲突。
			if _, ok := abi.Errors[field.Name]; ok {
				continue
			}
			abi.Errors[field.Name] = NewError(field.Name, field.Inputs)
			abi.errorOrder = append(abi.errorOrder, field.Name)
		default:
			return fmt.Errorf("abi: could not recognize type %v of field %v", field.Type, field.Name)
		}
	}
	return nil
}

// MethodById looks up a method by the 4-byte id,
// returns nil if none found.
// MethodById 通过 4 字节 ID 查找方法，如果未找到则返回 SignatureNotFoundError。
func (abi *ABI) MethodById(sigdata []byte) (*Method, error) {
	if len(sigdata) < 4 {
		return nil, fmt.Errorf("data too short (%d bytes) for abi method lookup", len(sigdata))
	}
	for _, method := range abi.methods() {
		if bytes.Equal(method.ID, sigdata[:4]) {
			return &method, nil
		}
	}
	return nil, &SignatureNotFoundError{Kind: "function", Signature: fmt.Sprintf("%#x", sigdata[:4])}
}

// EventByID looks a non-anonymous event up by its topic hash in the ABI.
// EventByID 通过主题哈希在 ABI 中查找非匿名事件。
func (abi *ABI) EventByID(topic common.Hash) (*Event, error) {
	for _, event := range abi.events() {
		if !event.Anonymous && event.ID == topic {
			return &event, nil
		}
	}
	return nil, &SignatureNotFoundError{Kind: "event", Signature: topic.Hex()}
}

// ErrorByID looks up an error by the 4-byte id.
// ErrorByID 通过 4 字节 ID 查找错误。
func (abi *ABI) ErrorByID(sigdata [4]byte) (*Error, error) {
	for _, errABI := range abi.errors() {
		if bytes.Equal(errABI.ID[:4], sigdata[:]) {
			return &errABI, nil
		}
	}
	return nil, &SignatureNotFoundError{Kind: "error", Signature: fmt.Sprintf("%#x", sigdata[:])}
}

// HasFallback returns an indicator whether a fallback function is included.
// HasFallback 返回一个指示器，指示是否包含回退函数。
func (abi *ABI) HasFallback() bool {
	return abi.Fallback.Type == Fallback
}

// HasReceive returns an indicator whether a receive function is included.
// HasReceive 返回一个指示器，指示是否包含接收函数。
func (abi *ABI) HasReceive() bool {
	return abi.Receive.Type == Receive
}

var (
	// revertError is the builtin error raised by require and revert with a reason.
	// revertError 是 require 和带原因的 revert 抛出的内置错误。
	revertError = NewError("Error", Arguments{{Name: "message", Type: mustNewType("string")}})

	// panicError is the builtin error raised by failing assertions and checked
	// arithmetic.
	// panicError 是断言失败和算术检查抛出的内置错误。
	panicError = NewError("Panic", Arguments{{Name: "code", Type: mustNewType("uint256")}})
)

// revertSelector is a special function selector for revert reason unpacking.
// revertSelector 是用于解包 revert 原因的特殊函数选择器。
var revertSelector = revertError.Selector()

// panicSelector is a special function selector for panic reason unpacking.
// panicSelector 是用于解包 panic 原因的特殊函数选择器。
var panicSelector = panicError.Selector()

func mustNewType(t string) Type {
	typ, err := NewType(t, "", nil)
	if err != nil {
		panic(err)
	}
	return typ
}

// panicReasons map is for readable panic codes
// see this linkage for the details
// https://docs.soliditylang.org/en/v0.8.21/control-structures.html#panic-via-assert-and-error-via-require
// the reason string list is copied from ether.js
// https://github.com/ethers-io/ethers.js/blob/fa3a883ff7c88611ce766f58bdd4b8ac90814470/src.ts/abi/interface.ts#L207-L218
// panicReasons 映射用于可读的 panic 代码
var panicReasons = map[uint64]string{
	0x00: "generic panic",                                         // 通用 panic
	0x01: "assert(false)",                                         // assert(false)
	0x11: "arithmetic underflow or overflow",                      // 算术下溢或溢出
	0x12: "division or modulo by zero",                            // 除以零或模零
	0x21: "enum overflow",                                         // 枚举溢出
	0x22: "invalid encoded storage byte array accessed",           // 访问无效编码的存储字节数组
	0x31: "out-of-bounds array access; popping on an empty array", // 数组越界访问；在空数组上弹出
	0x32: "out-of-bounds access of an array or bytesN",            // 数组或 bytesN 越界访问
	0x41: "out of memory",                                         // 内存不足
	0x51: "uninitialized function",                                // 未初始化函数
}

// EncodeErrorResult encodes revert data for the custom error name. The builtin
// Error(string) and Panic(uint256) are available when the ABI does not
// declare errors with those names.
// EncodeErrorResult 编码自定义错误 name 的 revert 数据。ABI 未声明同名错误时，
// 也可以使用内置的 Error(string) 和 Panic(uint256)。
func (abi *ABI) EncodeErrorResult(name string, args ...interface{}) ([]byte, error) {
	errABI, ok := abi.Errors[name]
	if !ok {
		switch name {
		case revertError.Name:
			errABI = revertError
		case panicError.Name:
			errABI = panicError
		default:
			return nil, &ItemNotFoundError{Kind: "error", Name: name}
		}
	}
	return errABI.Pack(args...)
}

// DecodeErrorResult decodes revert data into the error name and its arguments.
// Custom errors of the ABI are tried first, then Error(string) and
// Panic(uint256).
// DecodeErrorResult 将 revert 数据解码为错误名称及其参数，先匹配 ABI 中的自定义错误，
// 再匹配内置的 Error(string) 和 Panic(uint256)。
func (abi *ABI) DecodeErrorResult(data []byte) (string, *Values, error) {
	if len(data) < 4 {
		return "", nil, fmt.Errorf("insufficient data for unpacking: have %d, want at least 4", len(data))
	}
	var id [4]byte
	copy(id[:], data[:4])

	errABI, err := abi.ErrorByID(id)
	if err != nil {
		switch {
		case bytes.Equal(id[:], revertSelector):
			errABI = &revertError
		case bytes.Equal(id[:], panicSelector):
			errABI = &panicError
		default:
			return "", nil, err
		}
	}
	args, err := errABI.Unpack(data)
	if err != nil {
		return "", nil, err
	}
	return errABI.Name, args, nil
}

// UnpackRevert resolves the abi-encoded revert reason. According to the solidity
// spec https://solidity.readthedocs.io/en/latest/control-structures.html#revert,
// the provided revert reason is abi-encoded as if it were a call to function
// `Error(string)` or `Panic(uint256)`. So it's a special tool for it.
// UnpackRevert 解析 ABI 编码的 revert 原因。提供的 revert 原因被 ABI 编码为如同调用函数
// `Error(string)` 或 `Panic(uint256)`。因此这是一个专用工具。
func UnpackRevert(data []byte) (string, error) {
	if len(data) < 4 {
		return "", errors.New("invalid data for unpacking")
	}
	switch {
	case bytes.Equal(data[:4], revertSelector):
		unpacked, err := revertError.Inputs.Unpack(data[4:])
		if err != nil {
			return "", err
		}
		return unpacked.At(0).(string), nil
	case bytes.Equal(data[:4], panicSelector):
		unpacked, err := panicError.Inputs.Unpack(data[4:])
		if err != nil {
			return "", err
		}
		pCode := unpacked.At(0).(*big.Int)
		// uint64 safety check for future
		// but the code is not bigger than MAX(uint64) now
		// 为未来进行 uint64 安全检查，但目前代码不超过 MAX(uint64)
		if pCode.IsUint64() {
			if reason, ok := panicReasons[pCode.Uint64()]; ok {
				return reason, nil
			}
		}
		return fmt.Sprintf("unknown panic code: %#x", pCode), nil
	default:
		return "", errors.New("invalid data for unpacking")
	}
}
